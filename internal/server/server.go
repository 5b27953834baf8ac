package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vzahanych/wind-activity-app/internal/activity"
	"github.com/vzahanych/wind-activity-app/internal/config"
	"github.com/vzahanych/wind-activity-app/internal/dashboard"
	"github.com/vzahanych/wind-activity-app/internal/server/handlers"
	"github.com/vzahanych/wind-activity-app/internal/server/middlewares"
	"github.com/vzahanych/wind-activity-app/internal/units"
	"github.com/vzahanych/wind-activity-app/pkg/telemetry"
	"go.uber.org/zap"
)

type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	server  *http.Server
	builder *dashboard.Builder
	metrics *handlers.MetricsHandler
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

func NewServer(cfg *config.Config, logger *zap.Logger, tele *telemetry.Telemetry) (*Server, error) {
	unit, err := units.ParseWindUnit(cfg.Dashboard.WindUnit)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()

	metricsHandler, err := handlers.NewMetricsHandler(logger, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	httpMetrics, err := middlewares.NewMetricsMiddleware(logger, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register http metrics: %w", err)
	}

	matcher := activity.NewMatcher(cfg.Matcher.DisplayHours...)
	builder := dashboard.NewBuilder(matcher, logger, tele, dashboard.Options{
		Concurrency: cfg.Dashboard.Concurrency,
		Stale:       staleFromConfig(cfg.Dashboard),
		Metrics:     metricsHandler,
	})

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(middlewares.RequestIDMiddleware(logger))
	engine.Use(middlewares.LoggingMiddleware(logger, true, "/health/live", "/health/ready", "/metrics"))
	engine.Use(middlewares.RecoveryMiddleware(logger, true))
	engine.Use(middlewares.TelemetryMiddleware(logger, tele))
	engine.Use(httpMetrics.Handler())

	s := &Server{
		cfg:     cfg,
		engine:  engine,
		builder: builder,
		metrics: metricsHandler,
		logger:  logger,
		tele:    tele,
	}

	s.setupRoutes(matcher, unit)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s, nil
}

// staleFromConfig hides wind values of today's hours that ended more than the
// configured grace ago. The policy is evaluated against the wall clock on each call.
func staleFromConfig(cfg config.DashboardConfig) dashboard.StalePolicy {
	grace := time.Duration(cfg.StaleGraceMinutes) * time.Minute
	return dashboard.StalePolicyFunc(func(date string, hour int) bool {
		return dashboard.PastHours(time.Now(), grace).IsStale(date, hour)
	})
}

func (s *Server) setupRoutes(matcher *activity.Matcher, unit units.WindUnit) {
	activities := handlers.NewActivityHandler(matcher, s.metrics, s.logger)
	dash := handlers.NewDashboardHandler(s.builder, unit, s.logger)
	health := handlers.NewHealthHandler(s.logger, s.cfg.Version)

	// Business endpoints
	v1 := s.engine.Group("/v1", middlewares.BodyLimitMiddleware(s.cfg.Server.MaxBodyBytes))
	v1.POST("/activities/match", activities.Match)
	v1.POST("/activities/daily", activities.Daily)
	v1.POST("/dashboard", dash.Build)
	v1.GET("/compass", activities.Compass)

	// Health endpoints (Kubernetes friendly)
	s.engine.GET("/health", health.Health)
	s.engine.GET("/health/live", health.Liveness)
	s.engine.GET("/health/ready", health.Readiness)

	// Monitoring endpoints
	s.engine.GET("/metrics", s.metrics.ServeMetrics)
}

// Handler returns the root HTTP handler, gzip-wrapped when enabled.
func (s *Server) Handler() http.Handler {
	if s.cfg.Server.Gzip {
		return gzhttp.GzipHandler(s.engine)
	}
	return s.engine
}

func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
