package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/langportal-backend/internal/config"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/heartmarshall/langportal-backend/internal/service/catalog"
	"github.com/heartmarshall/langportal-backend/internal/service/practice"
	"github.com/heartmarshall/langportal-backend/internal/transport/middleware"
	"github.com/heartmarshall/langportal-backend/internal/transport/rest"
	"github.com/heartmarshall/langportal-backend/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled and serves the REST API until
// ctx is cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, logger, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	providers, err := NewProviders(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}

	catalogSvc, practiceSvc := NewServices(logger, pool, providers, cfg)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Health:      rest.NewHealthHandler(pool, practiceSvc, Version),
		Sessions:    rest.NewSessionHandler(practiceSvc, logger),
		Catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		RateLimit:   cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return practiceSvc.RunJanitor(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Int("live_sessions", practiceSvc.LiveCount()))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewServices wires the catalog and practice services onto the database pool.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, p Providers, cfg *config.Config) (*catalog.Service, *practice.Service) {
	words := word.New(pool)
	sessions := session.New(pool)

	catalogSvc := catalog.NewService(logger, words, p.Generator, p.Fallback)

	practiceSvc := practice.NewService(
		logger,
		practice.NewItemSource(catalogSvc, nil),
		sessions,
		catalogSvc,
		p.Explainer,
		p.Evaluator,
		PracticeConfig(cfg),
	)
	return catalogSvc, practiceSvc
}

// PracticeConfig converts the loaded configuration to practice.Config.
func PracticeConfig(cfg *config.Config) practice.Config {
	return practice.Config{
		MaxQuizQuestions: cfg.Practice.MaxQuizQuestions,
		WritingBounds: domain.WordBounds{
			Min: cfg.Practice.WritingMinWords,
			Max: cfg.Practice.WritingMaxWords,
		},
		PromptCount:     cfg.Writing.PromptCount,
		DefaultLevel:    domain.WritingLevel(cfg.Writing.DefaultLevel),
		IdleTTL:         cfg.Practice.SessionIdleTTL,
		JanitorInterval: cfg.Practice.JanitorInterval,
	}
}
