package watch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/service"
)

func alertsBackend(t *testing.T, body string) *service.Alerts {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	tokens := api.TokenSourceFunc(func() string { return "tok" })
	return service.NewAlerts(api.NewClient(srv.URL, 5*time.Second, tokens, zerolog.Nop()))
}

func TestPollLogsOnlyUnseenAlerts(t *testing.T) {
	alerts := alertsBackend(t, `[
		{"id": 12, "product_id": 3, "alert_type": "temperature", "severity": "critical", "message": "Cold chain breach"},
		{"id": 11, "product_id": 3, "alert_type": "humidity", "severity": "low", "message": "Humidity drift"}
	]`)

	var buf bytes.Buffer
	p := NewPoller(alerts, true, zerolog.New(&buf))

	p.poll(context.Background())
	if p.lastSeenID != 12 {
		t.Errorf("lastSeenID = %d, want 12", p.lastSeenID)
	}
	first := buf.String()
	if !strings.Contains(first, "Cold chain breach") || !strings.Contains(first, "Humidity drift") {
		t.Errorf("first poll missed alerts: %s", first)
	}
	if !strings.Contains(first, `"level":"error"`) {
		t.Error("critical alert not logged at error level")
	}

	buf.Reset()
	p.poll(context.Background())
	if out := buf.String(); strings.Contains(out, "Cold chain breach") {
		t.Errorf("second poll repeated a seen alert: %s", out)
	}
}

func TestStopWaitsForScheduledWork(t *testing.T) {
	alerts := alertsBackend(t, `[]`)
	p := NewPoller(alerts, true, zerolog.Nop())

	// Far-future schedule so nothing fires between Start and Stop.
	if err := p.Start(context.Background(), "0 0 0 1 1 *"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return with no poll in flight")
	}
}

func TestPollSurvivesBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail": "upstream down"}`))
	}))
	t.Cleanup(srv.Close)

	tokens := api.TokenSourceFunc(func() string { return "tok" })
	alerts := service.NewAlerts(api.NewClient(srv.URL, 5*time.Second, tokens, zerolog.Nop()))

	var buf bytes.Buffer
	p := NewPoller(alerts, true, zerolog.New(&buf))

	p.poll(context.Background())
	if p.lastSeenID != 0 {
		t.Errorf("lastSeenID moved on failure: %d", p.lastSeenID)
	}
	if !strings.Contains(buf.String(), "alert poll failed") {
		t.Errorf("failure not logged: %s", buf.String())
	}
}
