package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "setsync/internal/adapter/http"
	"setsync/internal/adapter/memory"
	"setsync/internal/adapter/postgres"
	"setsync/internal/adapter/semantic"
	"setsync/internal/adapter/usecase"
	"setsync/internal/config"
	"setsync/internal/config/configs"
	"setsync/internal/core/domain"
	"setsync/internal/core/port"
	"setsync/internal/db"
)

// stores bundles the persistence ports selected by configuration.
type stores struct {
	contracts port.ContractRepository
	campaigns port.CampaignStore
	close     func()
}

// main loads configuration, selects a store, wires the audit, publish and
// view use cases and serves HTTP until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	policy, err := usecase.ParsePolicy(cfg.Audit.TimeframePolicy, cfg.Audit.ToneUnavailable)
	if err != nil {
		logger.Error("invalid audit policy", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store setup error", slog.Any("error", err))
		return
	}
	defer st.close()

	if cfg.Semantic.URL == "" {
		logger.Warn("no inference endpoint configured, semantic checks use fallbacks")
	}
	checker := semantic.NewClient(semantic.Config{
		URL:     cfg.Semantic.URL,
		APIKey:  cfg.Semantic.APIKey,
		Model:   cfg.Semantic.Model,
		Timeout: cfg.Semantic.Timeout,
	}, &http.Client{}, logger)

	handler := httpadapter.NewHandler(
		usecase.NewAuditUseCase(st.contracts, st.campaigns, checker, policy, logger),
		usecase.NewPublishUseCase(st.campaigns, logger),
		usecase.NewViewUseCase(st.contracts, st.campaigns),
		logger,
		cfg.HTTP.MaxBodyBytes,
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (*stores, error) {
	driver, err := cfg.Store.DriverName()
	if err != nil {
		return nil, err
	}

	if driver == configs.StoreMemory {
		var contracts []*domain.Contract
		if cfg.Store.Seed {
			contracts = db.DefaultContracts()
		}
		s := memory.NewStore(contracts...)
		logger.Info("using memory store", slog.Int("contracts", len(contracts)))
		return &stores{contracts: s, campaigns: s, close: func() {}}, nil
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Store.Seed {
		if err = db.Seed(ctx, pool, db.DefaultContracts()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	s := postgres.NewStore(pool)
	logger.Info("using postgres store")
	return &stores{contracts: s, campaigns: s, close: pool.Close}, nil
}
