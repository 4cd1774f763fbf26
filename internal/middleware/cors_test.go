package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"HEYNOM_BACK-END/internal/config"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	cfg := &config.CORSConfig{
		AllowedOrigins:   []string{"http://localhost:5173", "https://heynom.example"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}

	newHandler := func(called *bool) http.Handler {
		return CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			*called = true
			w.WriteHeader(http.StatusOK)
		}), cfg)
	}

	t.Run("allowed origin is reflected with credentials", func(t *testing.T) {
		t.Parallel()

		var called bool
		req := httptest.NewRequest(http.MethodGet, "/api/food/", nil)
		req.Header.Set("Origin", "https://heynom.example")
		w := httptest.NewRecorder()
		newHandler(&called).ServeHTTP(w, req)

		if !called {
			t.Error("handler should run")
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://heynom.example" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q", got)
		}
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		t.Parallel()

		var called bool
		req := httptest.NewRequest(http.MethodGet, "/api/food/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		newHandler(&called).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight is answered without reaching the handler", func(t *testing.T) {
		t.Parallel()

		var called bool
		req := httptest.NewRequest(http.MethodOptions, "/api/food/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")
		w := httptest.NewRecorder()
		newHandler(&called).ServeHTTP(w, req)

		if called {
			t.Error("handler should not run for preflight")
		}
		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
	})
}
