package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/changelog"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/privilege"
	"github.com/heartmarshall/glossary-backend/internal/auth"
	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/metrics"
	"github.com/heartmarshall/glossary-backend/internal/service/access"
	"github.com/heartmarshall/glossary-backend/internal/service/entitystore"
	"github.com/heartmarshall/glossary-backend/internal/service/glossary"
	"github.com/heartmarshall/glossary-backend/internal/transport/middleware"
	"github.com/heartmarshall/glossary-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx ends or SIGINT/SIGTERM arrives, then
// drains in-flight creations before returning.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := SetupTracing(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flush traces", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	components := Build(cfg, pool, logger)
	defer components.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      components.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Components holds the wired service graph on top of a connection pool.
type Components struct {
	cfg        *config.Config
	pool       *pgxpool.Pool
	logger     *slog.Logger
	store      *entitystore.Service
	dispatcher *glossary.Dispatcher
	jwt        *auth.JWTManager
	metrics    *metrics.Registry
	limiter    *middleware.RateLimiter
}

// Build wires repositories, services and transport dependencies.
func Build(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Components {
	entityRepo := entity.New(pool)
	changeRepo := changelog.New(pool)
	privilegeRepo := privilege.New(pool)
	txm := postgres.NewTxManager(pool)

	store := entitystore.NewService(logger, entityRepo, changeRepo, txm)
	gate := access.NewGate(logger, privilegeRepo, entityRepo)
	registry := metrics.NewRegistry()

	creator := glossary.NewService(
		logger,
		entitystore.NewClient(store),
		store,
		gate,
		glossary.WithRecorder(registry),
		glossary.WithPreferredOwnershipType(cfg.Glossary.OwnershipType()),
	)

	return &Components{
		cfg:        cfg,
		pool:       pool,
		logger:     logger,
		store:      store,
		dispatcher: glossary.NewDispatcher(logger, creator, cfg.Glossary.WorkerLimit),
		jwt:        auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		metrics:    registry,
		limiter:    middleware.NewRateLimiter(time.Minute),
	}
}

// JWT exposes the token manager used to authenticate requests.
func (c *Components) JWT() *auth.JWTManager { return c.jwt }

// Handler returns the root HTTP handler with routes and middleware.
func (c *Components) Handler() http.Handler {
	health := rest.NewHealthHandler(BuildVersion(),
		rest.Check{Name: "database", Critical: true, Probe: c.pool.Ping},
		rest.Check{Name: "ownership_type", Probe: c.probeOwnershipType},
	)
	terms := rest.NewGlossaryHandler(c.dispatcher, c.cfg.Glossary.RequestTimeout, c.logger)

	var createTerm http.Handler = http.HandlerFunc(terms.CreateTerm)
	if c.cfg.Glossary.CreateRateLimit > 0 {
		createTerm = c.limiter.Limit(c.cfg.Glossary.CreateRateLimit)(createTerm)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("POST /api/glossary/terms", c.metrics.Instrument("create_glossary_term", createTerm))
	if c.cfg.Metrics.Enabled {
		mux.Handle("GET "+c.cfg.Metrics.Path, c.metrics.Handler())
	}

	quiet := []string{"/live", "/ready", c.cfg.Metrics.Path}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(c.logger),
		middleware.Except(middleware.Tracing(), quiet...),
		middleware.CORS(c.cfg.CORS),
		middleware.Except(middleware.Logger(c.logger), quiet...),
		middleware.Auth(c.jwt),
	)(mux)
}

// probeOwnershipType reports a missing preferred ownership type. Creation
// still works without it, falling back to the "none" classification.
func (c *Components) probeOwnershipType(ctx context.Context) error {
	urn := c.cfg.Glossary.OwnershipType().Urn()
	ok, err := c.store.Exists(ctx, urn)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s not found", urn)
	}
	return nil
}

// Close stops accepting creations, waits for running ones and stops
// background workers.
// The pool is owned by the caller.
func (c *Components) Close() {
	c.dispatcher.Close()
	c.limiter.Stop()
}
