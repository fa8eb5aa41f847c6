package quiz

// Lookup tables are typed data rather than switch statements so that scoring
// and labeling stay total functions over a closed set.

var budgetScores = map[string]int{
	"budget-conscious": 1,
	"moderate":         2,
	"premium":          3,
	"enterprise":       4,
	"flexible":         4,
	"need-guidance":    2,
}

var urgencyScores = map[string]int{
	"flexible":     1,
	"three-months": 2,
	"one-month":    3,
	"urgent":       4,
}

var scopeScores = map[string]int{
	"simple-landing": 1,
	"full-website":   2,
	"ecommerce":      3,
	"custom-app":     4,
	"not-sure":       2,
}

// Selecting any of these bumps complexity by one step.
var complexFeatures = map[string]bool{
	"payments":      true,
	"user-accounts": true,
	"booking":       true,
	"integrations":  true,
	"analytics":     true,
}

var scopeSolutions = map[string]SolutionType{
	"simple-landing": SolutionLanding,
	"full-website":   SolutionWebsite,
	"ecommerce":      SolutionEcommerce,
	"custom-app":     SolutionCustomApp,
}

type solutionProfile struct {
	Name           string
	Description    string
	Timeline       string
	UrgentTimeline string
	InvestMin      int
	InvestMax      int
	PageDescriptor string
}

var solutionProfiles = map[SolutionType]solutionProfile{
	SolutionLanding: {
		Name:           "Landing Page",
		Description:    "A focused single-page site built to convert visitors into leads.",
		Timeline:       "2-3 weeks",
		UrgentTimeline: "1-2 weeks",
		InvestMin:      750,
		InvestMax:      1500,
		PageDescriptor: "Single conversion-focused page",
	},
	SolutionWebsite: {
		Name:           "Business Website",
		Description:    "A multi-page site presenting your services, team and proof points.",
		Timeline:       "4-6 weeks",
		UrgentTimeline: "3-4 weeks",
		InvestMin:      1700,
		InvestMax:      3500,
		PageDescriptor: "Up to 12 pages",
	},
	SolutionEcommerce: {
		Name:           "Online Store",
		Description:    "A storefront with product management, cart and checkout.",
		Timeline:       "6-10 weeks",
		UrgentTimeline: "5-8 weeks",
		InvestMin:      3100,
		InvestMax:      6000,
		PageDescriptor: "Product catalog and checkout",
	},
	SolutionCustomApp: {
		Name:           "Custom Web Application",
		Description:    "A tailored application with the workflows your business runs on.",
		Timeline:       "8-14 weeks",
		UrgentTimeline: "6-10 weeks",
		InvestMin:      5000,
		InvestMax:      12000,
		PageDescriptor: "Tailored screens and workflows",
	},
}

const seoInclude = "Search engine optimization"

var universalIncludes = []string{
	"Custom design",
	"Mobile-responsive build",
}

var featureIncludes = map[string]string{
	"cms":             "Content management system",
	"blog":            "Blog setup",
	"multilingual":    "Multilingual content",
	"booking":         "Online booking and scheduling",
	"payments":        "Secure payment processing",
	"user-accounts":   "Customer accounts",
	"crm-integration": "CRM integration",
	"integrations":    "Third-party integrations",
	"analytics":       "Analytics dashboard",
	"newsletter":      "Email newsletter integration",
	"live-chat":       "Live chat widget",
	"seo":             seoInclude,
}
