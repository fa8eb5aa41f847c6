package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "agency-backend/internal/auth"
	"agency-backend/internal/captcha"
	"agency-backend/internal/chat"
	"agency-backend/internal/leads"
	"agency-backend/internal/mailer"
	"agency-backend/internal/newsletter"
	"agency-backend/internal/pricing"
	"agency-backend/internal/quiz"
	"agency-backend/internal/shared/config"
	"agency-backend/internal/shared/server"
	"agency-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Mailer            mailer.Mailer
	Captcha           captcha.Verifier
	QuizSessions      *quiz.SessionStore
	LeadsRepo         leads.Repo
	LeadsService      *leads.Service
	ChatService       *chat.Service
	NewsletterService *newsletter.Service
	PricingHandler    *pricing.Handler
	QuizHandler       *quiz.Handler
	ContactHandler    *leads.Handler
	ChatHandler       *chat.Handler
	NewsletterHandler *newsletter.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sender, err := buildMailer(cfg)
	if err != nil {
		return nil, err
	}
	verifier, err := buildCaptcha(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Mailer:       sender,
		Captcha:      verifier,
		QuizSessions: quiz.NewSessionStore(nil),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		PricingHandler:    app.PricingHandler,
		QuizHandler:       app.QuizHandler,
		ContactHandler:    app.ContactHandler,
		ChatHandler:       app.ChatHandler,
		NewsletterHandler: app.NewsletterHandler,
		GoogleAuth:        app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; leads kept in memory")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; leads kept in memory: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; leads kept in memory: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildMailer(cfg config.Config) (mailer.Mailer, error) {
	if strings.TrimSpace(cfg.ResendAPIKey) == "" {
		log.Printf("bootstrap: RESEND_API_KEY empty; email dispatch is log-only")
		return mailer.Placeholder{}, nil
	}
	return mailer.NewResend(cfg.ResendAPIKey)
}

func buildCaptcha(cfg config.Config) (captcha.Verifier, error) {
	if strings.TrimSpace(cfg.RecaptchaSecret) == "" {
		log.Printf("bootstrap: RECAPTCHA_SECRET empty; captcha checks are disabled")
		return captcha.Disabled{}, nil
	}
	return captcha.NewRecaptcha(cfg.RecaptchaSecret, cfg.RecaptchaThreshold)
}

func buildServices(app *App) {
	var leadsRepo leads.Repo
	if app.DB != nil {
		leadsRepo = &leads.PGRepo{DB: app.DB}
	} else {
		leadsRepo = leads.NewMemoryRepo()
	}

	leadsSvc := &leads.Service{
		Repo:      leadsRepo,
		Mailer:    app.Mailer,
		Captcha:   app.Captcha,
		Sessions:  app.QuizSessions,
		EmailFrom: app.Config.EmailFrom,
		EmailTo:   app.Config.EmailTo,
	}
	chatSvc := &chat.Service{
		Mailer:    app.Mailer,
		Captcha:   app.Captcha,
		EmailFrom: app.Config.EmailFrom,
		EmailTo:   app.Config.EmailTo,
	}
	newsletterSvc := &newsletter.Service{
		Mailer:    app.Mailer,
		Captcha:   app.Captcha,
		EmailFrom: app.Config.EmailFrom,
		EmailTo:   app.Config.EmailTo,
	}

	app.LeadsRepo = leadsRepo
	app.LeadsService = leadsSvc
	app.ChatService = chatSvc
	app.NewsletterService = newsletterSvc
	app.PricingHandler = pricing.NewHandler(app.QuizSessions)
	app.QuizHandler = quiz.NewHandler(app.QuizSessions)
	app.ContactHandler = leads.NewHandler(leadsSvc)
	app.ChatHandler = chat.NewHandler(chatSvc)
	app.NewsletterHandler = newsletter.NewHandler(newsletterSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.Config.AdminEmails,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
