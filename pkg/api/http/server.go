package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kamathhrishi/openbb-formd-filings/internal/widgets"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
)

// Backend is the upstream data source the widget handlers pull from.
type Backend interface {
	SecurityTypes(ctx context.Context, metric, year string) (*backend.SecurityTypes, error)
	IndustryDistribution(ctx context.Context, metric, year string) ([]backend.DistributionItem, error)
	MonthlyTimeSeries(ctx context.Context, metric string) ([]backend.MonthlyPoint, error)
	IndustryTimeSeries(ctx context.Context, metric, industry string) ([]backend.IndustryPoint, error)
	TopFundraisers(ctx context.Context, metric, year, industry string) ([]backend.Fundraiser, error)
	LocationDistribution(ctx context.Context, metric, year string) ([]backend.DistributionItem, error)
	LatestFilings(ctx context.Context, page, perPage int) (*backend.FilingsPage, error)
}

// Metrics records served requests and widget builds. A nil Metrics disables
// recording.
type Metrics interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
	IncWidgetBuilt(widget, status string)
}

// Server represents the HTTP API server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	backend Backend
	logger  *zap.Logger
	metrics Metrics

	widgets map[string]widgets.Widget
	apps    []widgets.App
	intro   string
}

// Config holds HTTP server configuration
type Config struct {
	Port    int
	Backend Backend
	Logger  *zap.Logger
	Metrics Metrics
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(cfg.Logger))
	router.Use(metricsMiddleware(cfg.Metrics))

	s := &Server{
		router:  router,
		backend: cfg.Backend,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		widgets: widgets.Registry(),
		apps:    widgets.Apps(),
		intro:   widgets.IntroMarkdown(),
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Service info and operational endpoints
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Discovery documents for the dashboard host
	s.router.GET("/widgets.json", s.handleWidgets)
	s.router.GET("/apps.json", s.handleApps)

	// Widget data endpoints; each path matches a widget id in the registry
	s.router.GET("/form_d_intro", s.handleIntro)
	s.router.GET("/latest_filings", s.handleLatestFilings)
	s.router.GET("/security_types", s.handleSecurityTypes)
	s.router.GET("/top_industries", s.handleTopIndustries)
	s.router.GET("/monthly_activity", s.handleMonthlyActivity)
	s.router.GET("/yearly_statistics", s.handleYearlyStatistics)
	s.router.GET("/top_fundraisers", s.handleTopFundraisers)
	s.router.GET("/location_distribution", s.handleLocationDistribution)

	// Dropdown options for the year parameter
	s.router.GET(widgets.YearsEndpoint, s.handleAvailableYears)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")))
	}
}
