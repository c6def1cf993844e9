package watch

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"medicheck/cli/internal/service"
)

// Poller periodically pulls alerts from the backend and logs the ones
// it has not seen yet. It is the dashboard's alert badge as a
// long-running command.
type Poller struct {
	cron       *cron.Cron
	alerts     *service.Alerts
	log        zerolog.Logger
	unreadOnly bool

	lastSeenID int
}

func NewPoller(alerts *service.Alerts, unreadOnly bool, log zerolog.Logger) *Poller {
	return &Poller{
		cron:       cron.New(cron.WithSeconds()),
		alerts:     alerts,
		log:        log,
		unreadOnly: unreadOnly,
	}
}

// Start schedules polling with the given six-field cron spec and runs
// one poll immediately so a fresh watch is not silent for a minute.
func (p *Poller) Start(ctx context.Context, schedule string) error {
	if _, err := p.cron.AddFunc(schedule, func() { p.poll(ctx) }); err != nil {
		return err
	}

	p.poll(ctx)
	p.cron.Start()
	return nil
}

// Stop halts scheduling and waits for an in-flight poll to finish,
// bounded at five seconds.
func (p *Poller) Stop() {
	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		p.log.Warn().Msg("poll still running at shutdown")
	}
}

func (p *Poller) poll(ctx context.Context) {
	alerts, err := p.alerts.List(ctx, p.unreadOnly, 50)
	if err != nil {
		p.log.Error().Err(err).Msg("alert poll failed")
		return
	}

	fresh := 0
	for i := len(alerts) - 1; i >= 0; i-- {
		alert := alerts[i]
		if alert.ID <= p.lastSeenID {
			continue
		}
		p.lastSeenID = alert.ID
		fresh++

		event := p.log.Info()
		switch alert.Severity {
		case "high", "critical":
			event = p.log.Error()
		case "medium":
			event = p.log.Warn()
		}
		event.
			Int("alert_id", alert.ID).
			Int("product_id", alert.ProductID).
			Str("type", alert.AlertType).
			Str("severity", string(alert.Severity)).
			Msg(alert.Message)
	}

	p.log.Debug().Int("fresh", fresh).Int("total", len(alerts)).Msg("alert poll complete")
}
