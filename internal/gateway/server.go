// Package gateway serves the authenticated dashboard data to a local
// browser. It is a thin relay: every data route reads through the
// shared session manager and the typed API services, and nothing is
// computed locally.
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"medicheck/cli/internal/config"
	"medicheck/cli/internal/service"
	"medicheck/cli/internal/session"
)

type Services struct {
	Dashboard *service.Dashboard
	Alerts    *service.Alerts
	Admin     *service.Admin
}

type Server struct {
	engine   *gin.Engine
	server   *http.Server
	sessions *session.Manager
	svc      Services
	log      zerolog.Logger
}

func NewServer(cfg *config.AppConfig, sessions *session.Manager, svc Services, log zerolog.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		requestID(),
		requestLogger(log),
		recovery(log),
		cors(cfg.Gateway.AllowOrigins),
	)

	s := &Server{
		engine:   engine,
		sessions: sessions,
		svc:      svc,
		log:      log,
	}
	s.register(engine.Group("/api"))

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Gateway.Host, cfg.Gateway.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Gateway.ReadTimeout,
		WriteTimeout: cfg.Gateway.WriteTimeout,
		IdleTimeout:  cfg.Gateway.IdleTimeout,
	}

	return s
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("gateway starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("gateway shutting down")
	return s.server.Shutdown(ctx)
}
