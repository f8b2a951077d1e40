package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cialfor/intake/internal/api/handlers"
	"github.com/cialfor/intake/internal/config"
	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/logging"
	"github.com/cialfor/intake/internal/mailer"
	"github.com/cialfor/intake/internal/server/routes"
)

// ServiceName identifies this process in traces.
const ServiceName = "cialfor-intake"

// HTTP adapters
const (
	AdapterGin    = "gin"
	AdapterStdlib = "stdlib"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg     *config.Config
	logger  *logging.Logger
	adapter string

	limiter *intake.RateLimiter
	service *intake.Service
	handler http.Handler
}

// NewServer builds the intake pipeline around sender and the HTTP adapter
// that serves it.
func NewServer(cfg *config.Config, sender mailer.Sender, logger *logging.Logger, adapter string) (*Server, error) {
	if adapter == "" {
		adapter = AdapterGin
	}
	if logger == nil {
		logger = logging.Discard()
	}

	limiter := intake.NewRateLimiter(intake.RateLimitConfig{
		Window:  cfg.RateWindow,
		Max:     cfg.RateMax,
		MaxKeys: cfg.RateMaxKeys,
	})
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		adapter: adapter,
		limiter: limiter,
		service: NewService(cfg, limiter, sender, logger),
	}

	opts := handlers.ContactOptions{
		MaxBodyBytes: cfg.MaxBodyBytes,
		TrustProxy:   cfg.TrustProxy,
		Logger:       logger,
	}

	switch adapter {
	case AdapterGin:
		s.handler = s.ginHandler(opts)
	case AdapterStdlib:
		s.handler = s.stdlibHandler(opts)
	default:
		return nil, fmt.Errorf("unknown adapter %q (want %s or %s)", adapter, AdapterGin, AdapterStdlib)
	}

	return s, nil
}

// NewService wires the rate limiter, router and dispatcher described by cfg.
func NewService(cfg *config.Config, limiter intake.Limiter, sender mailer.Sender, logger *logging.Logger) *intake.Service {
	dispatcher := intake.NewDispatcher(sender, intake.DispatchConfig{
		From:    intake.FromAddress(cfg.FromName, cfg.FromEmail),
		Timeout: cfg.DeliveryTimeout,
		RPS:     cfg.ProviderRPS,
		Burst:   cfg.ProviderBurst,
	})
	router := intake.Router{InfoAddress: cfg.InfoEmail, SalesAddress: cfg.SalesEmail}

	return intake.NewService(limiter, router, dispatcher, intake.WithLogger(logger))
}

func (s *Server) ginHandler(opts handlers.ContactOptions) http.Handler {
	// Drop gin's own logger; requests are logged by our middleware. Outside
	// production gin stays in debug mode and route registrations go to our
	// logger at debug level.
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		logger := s.logger
		gin.DebugPrintRouteFunc = func(method, path, _ string, _ int) {
			logger.Debug("Route %s %s", method, path)
		}
	}
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()
	router.HandleMethodNotAllowed = false

	routes.SetupGlobalMiddleware(router, s.logger, routes.Options{
		ServiceName:    ServiceName,
		AllowedOrigins: s.cfg.AllowedOrigins,
		RequestTimeout: s.cfg.RequestTimeout,
		TrustProxy:     s.cfg.TrustProxy,
	})
	routes.Setup(router, &routes.Handlers{
		Health:  handlers.NewHealthHandler(),
		Contact: handlers.NewContactHandler(s.service, opts),
	}, s.logger)

	return router
}

func (s *Server) stdlibHandler(opts handlers.ContactOptions) http.Handler {
	health := handlers.NewHealthHandler()

	mux := http.NewServeMux()
	mux.Handle(routes.ContactPath, handlers.NewContactHTTPHandler(s.service, opts))
	mux.HandleFunc("/health", health.HTTPCheck)

	return otelhttp.NewHandler(withTimeout(mux, s.cfg.RequestTimeout), ServiceName)
}

func withTimeout(next http.Handler, d time.Duration) http.Handler {
	if d <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Service returns the intake pipeline behind the handler.
func (s *Server) Service() *intake.Service {
	return s.service
}

// Limiter returns the per-ip rate limiter.
func (s *Server) Limiter() *intake.RateLimiter {
	return s.limiter
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.limiter.StartSweeper(ctx, s.cfg.RateSweepInterval, func(removed int) {
		if removed > 0 {
			s.logger.Debug("Rate limiter sweep removed %d idle keys, %d tracked", removed, s.limiter.Len())
		}
	})

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s (%s adapter, %s transport)", srv.Addr, s.adapter, s.cfg.Transport)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
