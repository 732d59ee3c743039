package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/config"
	"github.com/dafibh/dompet/dompet-backend/internal/handler"
	"github.com/dafibh/dompet/dompet-backend/internal/metrics"
	"github.com/dafibh/dompet/dompet-backend/internal/middleware"
	"github.com/dafibh/dompet/dompet-backend/internal/report"
	"github.com/dafibh/dompet/dompet-backend/internal/repository"
	"github.com/dafibh/dompet/dompet-backend/internal/repository/storage"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Dompet API
// @version 1.0
// @description Personal ledger of income, outcome and savings with confirm-before-mutate proposals, weekly and daily summaries and monthly PDF reports.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	// Open transaction store
	store, closeStore, err := repository.OpenTransactionStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("Failed to open transaction store")
	}
	defer closeStore()
	log.Info().Str("backend", cfg.StoreBackend).Msg("Transaction store opened")

	// Open report storage
	objects, err := openReportStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Report.Backend).Msg("Failed to open report storage")
	}

	m := metrics.New()
	hub := websocket.NewHub()

	// Initialize services
	ledger := service.NewLedger(store)
	ledger.SetEventPublisher(hub)
	ledger.SetMetrics(m)
	if err := ledger.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load ledger")
	}

	commandService := service.NewCommandService(ledger, cfg.ProposalTTL, cfg.Timezone)
	sweeper := service.NewProposalSweeper(commandService, log.Logger, cfg.ProposalTTL)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	renderer := report.NewPDFRenderer(report.NewFormatter(), cfg.Report.PageLines)
	sink := report.NewDocumentSink(objects, renderer, cfg.Report.Prefix)
	reportService := service.NewReportService(ledger, sink, cfg.Timezone)
	reportService.SetEventPublisher(hub)
	reportService.SetMetrics(m)

	// Initialize handlers
	handlers := handler.Handlers{
		Transactions: handler.NewTransactionHandler(ledger, commandService),
		Proposals:    handler.NewProposalHandler(commandService),
		Summary:      handler.NewSummaryHandler(ledger, reportService),
		Reports:      handler.NewReportHandler(reportService, sink),
		WebSocket:    handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
		Docs:         handler.NewDocsHandler(apiServers(cfg)...),
	}

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		// swagger UI relies on inline scripts
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/swagger")
		},
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	e.Use(m.Middleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":       "ok",
			"transactions": ledger.Len(),
			"clients":      hub.ClientCount(),
		})
	})

	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Register API routes
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(rateLimiter))

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("timezone", cfg.Timezone.String()).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openReportStore opens the object store selected by cfg.Report.Backend
func openReportStore(ctx context.Context, cfg *config.Config) (report.ObjectStore, error) {
	if cfg.Report.Backend == config.ReportS3 {
		return storage.NewS3Store(ctx, cfg.S3, cfg.Report.URLExpiry)
	}
	return storage.NewLocalStore(cfg.Report.Dir)
}

func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}

func apiServers(cfg *config.Config) []handler.Server {
	servers := []handler.Server{
		{URL: "http://localhost:" + cfg.Port, Description: "Local Development"},
	}
	if cfg.PublicURL != "" {
		servers = append(servers, handler.Server{URL: cfg.PublicURL, Description: "Production"})
	}
	return servers
}
