package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sharedauth "agency-backend/internal/shared/auth"
	"agency-backend/internal/shared/config"
)

func TestHealthEndpoint(t *testing.T) {
	r := NewRouter(RouterDeps{Config: config.Config{}})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body["ok"] {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := NewRouter(RouterDeps{Config: config.Config{}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAdminRoutesRejectNonAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: "google:123", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	r := NewRouter(RouterDeps{Config: config.Config{}})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAdminMetricsWithAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: "admin:123", Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	r := NewRouter(RouterDeps{Config: config.Config{}})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "text/plain; version=0.0.4" {
		t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9001": ":9001",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
