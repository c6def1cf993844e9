package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func staticToken(token string) TokenSource {
	return TokenSourceFunc(func() string { return token })
}

func newTestClient(serverURL, token string) *Client {
	return NewClient(serverURL, 5*time.Second, staticToken(token), zerolog.Nop())
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	if err := newTestClient(srv.URL, "tok-123").Get(context.Background(), "/ping", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header missing")
	}
	if !out.OK {
		t.Error("response not decoded")
	}
}

func TestGetOmitsHeaderWithoutToken(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL, "").Get(context.Background(), "/ping", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sawAuth {
		t.Error("Authorization header sent with empty token")
	}
}

func TestLoginFormEncodesCredentials(t *testing.T) {
	var gotContentType, gotBody string
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, sawAuth = r.Header["Authorization"]
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotBody = r.PostForm.Encode()
		w.Write([]byte(`{"access_token": "tok", "token_type": "bearer"}`))
	}))
	defer srv.Close()

	form := url.Values{}
	form.Set("username", "alice@example.com")
	form.Set("password", "p&ss word")

	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := newTestClient(srv.URL, "stale-token").LoginForm(context.Background(), "/users/login", form, &out)
	if err != nil {
		t.Fatalf("LoginForm: %v", err)
	}

	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form-urlencoded", gotContentType)
	}
	if sawAuth {
		t.Error("login request carried an Authorization header")
	}
	if !strings.Contains(gotBody, "username=alice%40example.com") {
		t.Errorf("form body = %q, missing encoded username", gotBody)
	}
	if out.AccessToken != "tok" {
		t.Errorf("access_token = %q, want tok", out.AccessToken)
	}
}

func TestErrorDetailSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Incorrect email or password"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL, "").Get(context.Background(), "/users/login", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.Kind != KindClient {
		t.Errorf("kind = %v, want %v", apiErr.Kind, KindClient)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "Incorrect email or password" {
		t.Errorf("message = %q, want backend detail", apiErr.Message)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   ErrorKind
		msg    string
	}{
		{"unauthorized", 401, `{"detail": "Could not validate credentials"}`, KindUnauthorized, "Could not validate credentials"},
		{"forbidden", 403, `{"detail": "Not enough permissions"}`, KindUnauthorized, "Not enough permissions"},
		{"not found", 404, `{"detail": "Product not found"}`, KindClient, "Product not found"},
		{"server", 500, `internal`, KindServer, "an unknown error occurred"},
		{"empty body", 502, ``, KindServer, "an unknown error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(srv.URL, "tok").Get(context.Background(), "/x", nil)
			apiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("error %T is not *Error", err)
			}
			if apiErr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", apiErr.Kind, tt.kind)
			}
			if apiErr.Message != tt.msg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.msg)
			}
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := newTestClient(srv.URL, "").Get(context.Background(), "/x", nil)
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.Kind != KindNetwork {
		t.Errorf("kind = %v, want %v", apiErr.Kind, KindNetwork)
	}
}

func TestNoContentResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out map[string]any
	if err := newTestClient(srv.URL, "tok").Delete(context.Background(), "/products/1", &out); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if out != nil {
		t.Errorf("out = %v, want untouched nil", out)
	}
}

func TestMalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not-a-number"`))
	}))
	defer srv.Close()

	var out struct {
		ID int `json:"id"`
	}
	err := newTestClient(srv.URL, "tok").Get(context.Background(), "/x", &out)
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.Kind != KindMalformed {
		t.Errorf("kind = %v, want %v", apiErr.Kind, KindMalformed)
	}
}

func TestPostSendsJSON(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 9}`))
	}))
	defer srv.Close()

	var out struct {
		ID int `json:"id"`
	}
	body := map[string]string{"name": "Insulin Batch 12"}
	if err := newTestClient(srv.URL, "tok").Post(context.Background(), "/products", body, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if !strings.Contains(gotBody, `"Insulin Batch 12"`) {
		t.Errorf("body = %q, missing payload", gotBody)
	}
	if out.ID != 9 {
		t.Errorf("id = %d, want 9", out.ID)
	}
}
