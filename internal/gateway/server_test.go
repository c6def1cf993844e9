package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/config"
	"medicheck/cli/internal/service"
	"medicheck/cli/internal/session"
)

// upstream fakes the monitoring backend with canned responses.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.PostForm.Get("password") != "good" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail": "Incorrect email or password"}`))
			return
		}
		w.Write([]byte(`{
			"access_token": "tok-gw",
			"token_type": "bearer",
			"user": {"id": 1, "username": "alice", "email": "alice@example.com", "user_type": "user"}
		}`))
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "username": "alice", "email": "alice@example.com", "user_type": "user"}`))
	})
	mux.HandleFunc("GET /dashboard/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-gw" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		w.Write([]byte(`{"total_products": 12, "unread_alerts": 2}`))
	})
	mux.HandleFunc("GET /alerts/count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unread_count": 2}`))
	})
	mux.HandleFunc("GET /admin/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "Not enough permissions"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) (*Server, *session.Manager) {
	t.Helper()
	backend := upstream(t)

	sessions := session.NewManager(&session.MemoryStore{}, zerolog.Nop())
	client := api.NewClient(backend.URL, 5*time.Second, sessions, zerolog.Nop())
	sessions.Bind(service.NewUsers(client))

	cfg := &config.AppConfig{}
	srv := NewServer(cfg, sessions, Services{
		Dashboard: service.NewDashboard(client),
		Alerts:    service.NewAlerts(client),
		Admin:     service.NewAdmin(client),
	}, zerolog.Nop())

	return srv, sessions
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode %s %s response: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestSessionEndpointStates(t *testing.T) {
	srv, sessions := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/session", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["state"] != "logged_out" {
		t.Errorf("state = %v, want logged_out", body["state"])
	}

	_, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/login", `{"username": "alice@example.com", "password": "good"}`)

	_, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/session", "")
	if body["state"] != "logged_in" {
		t.Errorf("state after login = %v, want logged_in", body["state"])
	}
	user, ok := body["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Errorf("user = %v, want alice", body["user"])
	}

	sessions.Logout()
	_, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/session", "")
	if body["state"] != "logged_out" {
		t.Errorf("state after logout = %v", body["state"])
	}
	if _, present := body["user"]; present {
		t.Error("user still present after logout")
	}
}

func TestLoginRejectedPassesDetailThrough(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/login", `{"username": "alice@example.com", "password": "bad"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if body["error"] != "Incorrect email or password" {
		t.Errorf("error = %v, want upstream detail", body["error"])
	}
}

func TestDataRoutesGatedBySessionState(t *testing.T) {
	srv, sessions := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("logged out: status = %d, want 401", rec.Code)
	}
	if body["error"] != "not_logged_in" {
		t.Errorf("error = %v", body["error"])
	}

	if _, err := sessions.Login(context.Background(), "alice@example.com", "good"); err != nil {
		t.Fatal(err)
	}

	rec, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logged in: status = %d, body %v", rec.Code, body)
	}
	if body["total_products"] != float64(12) {
		t.Errorf("total_products = %v, want 12", body["total_products"])
	}
}

func TestRestoringStateReturns503(t *testing.T) {
	store := &session.MemoryStore{}
	if err := store.Save("tok-pending"); err != nil {
		t.Fatal(err)
	}
	backend := upstream(t)

	sessions := session.NewManager(store, zerolog.Nop())
	client := api.NewClient(backend.URL, 5*time.Second, sessions, zerolog.Nop())
	sessions.Bind(service.NewUsers(client))

	srv := NewServer(&config.AppConfig{}, sessions, Services{
		Alerts: service.NewAlerts(client),
	}, zerolog.Nop())

	// Restore has not run yet, so the session is still settling.
	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/alerts/count", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body["error"] != "session_restoring" {
		t.Errorf("error = %v", body["error"])
	}
}

// TestUpstreamUnauthorizedDoesNotLogOut pins the asymmetry: a 401 on a
// data route relays the failure but leaves the session alone.
func TestUpstreamUnauthorizedDoesNotLogOut(t *testing.T) {
	srv, sessions := newTestServer(t)
	if _, err := sessions.Login(context.Background(), "alice@example.com", "good"); err != nil {
		t.Fatal(err)
	}

	rec, _ := doJSON(t, srv.Handler(), http.MethodGet, "/api/admin/stats", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want relayed 403", rec.Code)
	}

	if got := sessions.Current().State; got != session.StateLoggedIn {
		t.Errorf("session state = %v, want still logged in", got)
	}
}

func TestRequestIDEchoedAndValidated(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("X-Request-Id", "11111111-2222-3333-4444-555555555555")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("well-formed id not echoed: %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-Id")
	if got == "" || got == "not-a-uuid" {
		t.Errorf("malformed id not replaced: %q", got)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	srv, sessions := newTestServer(t)
	if _, err := sessions.Login(context.Background(), "alice@example.com", "good"); err != nil {
		t.Fatal(err)
	}

	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/logout", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := sessions.Current().State; got != session.StateLoggedOut {
		t.Errorf("state = %v, want logged_out", got)
	}
}
