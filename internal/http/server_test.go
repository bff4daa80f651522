package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mymoney/internal/graph"
	"mymoney/internal/services"
	"mymoney/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	expenses := services.NewExpenseService(store)
	incomes := services.NewIncomeService(store)
	investments := services.NewInvestmentService(store)
	resolver := &graph.Resolver{
		Categories:  services.NewCategoryService(store),
		Expenses:    expenses,
		Incomes:     incomes,
		Investments: investments,
		Settings:    services.NewSettingsService(store),
		Dashboard:   services.NewDashboardService(expenses, incomes, investments),
	}
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}

	s := NewServer(":0", schema, "http://localhost:3000", false)
	t.Cleanup(func() { s.rateLimiter.stop() })
	return s
}

func TestHealthProbes(t *testing.T) {
	s := newTestServer(t)

	for _, tt := range []struct {
		path string
		want string
	}{
		{"/healthz", "ok"},
		{"/readyz", "ready"},
	} {
		rec := httptest.NewRecorder()
		s.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", tt.path, rec.Code)
		}
		if rec.Body.String() != tt.want {
			t.Errorf("%s body = %q, want %q", tt.path, rec.Body.String(), tt.want)
		}
	}
}

func TestGraphQLEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"query":"{ health settings { mainCurrency language } }"}`)
	req := httptest.NewRequest(http.MethodPost, "/graphql", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Health   string `json:"health"`
			Settings struct {
				MainCurrency string `json:"mainCurrency"`
				Language     string `json:"language"`
			} `json:"settings"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) > 0 {
		t.Fatalf("graphql errors: %v", resp.Errors)
	}
	if resp.Data.Health != "ok" {
		t.Errorf("health = %q, want ok", resp.Data.Health)
	}
	if resp.Data.Settings.MainCurrency != "USD" || resp.Data.Settings.Language != "en" {
		t.Errorf("settings = %+v, want USD/en", resp.Data.Settings)
	}
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("allow-methods = %q", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"query":"{ health }"}`)
	req := httptest.NewRequest(http.MethodPost, "/graphql", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := &rateLimiter{clients: make(map[string]*clientInfo), stopCleanup: make(chan struct{})}

	for i := 0; i < requestsPerMinute; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request over budget was allowed")
	}
	// Another client is unaffected.
	if !rl.allow("10.0.0.2") {
		t.Error("second client limited")
	}

	// The counter resets after a quiet minute.
	rl.clients["10.0.0.1"].lastRequest = time.Now().Add(-2 * time.Minute)
	if !rl.allow("10.0.0.1") {
		t.Error("stale client still limited")
	}
}

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"direct", "203.0.113.9:1234", "", "", "203.0.113.9"},
		{"forwarded via trusted proxy", "127.0.0.1:1234", "203.0.113.9", "", "203.0.113.9"},
		{"forwarded chain", "10.1.2.3:1234", "203.0.113.9, 10.1.2.3", "", "203.0.113.9"},
		{"real-ip via trusted proxy", "192.168.1.1:1234", "", "203.0.113.9", "203.0.113.9"},
		{"untrusted proxy ignored", "203.0.113.50:1234", "1.2.3.4", "", "203.0.113.50"},
		{"garbage forwarded header", "127.0.0.1:1234", "not-an-ip", "", "127.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := extractClientIP(req); got != tt.want {
				t.Errorf("extractClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
