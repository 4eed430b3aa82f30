package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fennwick/TallyBot_Go/internal/catalog"
	"github.com/fennwick/TallyBot_Go/internal/config"
	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/handler"
	"github.com/fennwick/TallyBot_Go/internal/reward"
	"github.com/fennwick/TallyBot_Go/internal/scheduler"
	"github.com/fennwick/TallyBot_Go/internal/server"
	"github.com/fennwick/TallyBot_Go/internal/store"
	"github.com/fennwick/TallyBot_Go/internal/store/filestore"
	"github.com/fennwick/TallyBot_Go/internal/store/sqlitestore"
	"github.com/fennwick/TallyBot_Go/internal/transfer"
	"github.com/fennwick/TallyBot_Go/internal/wager"
	"github.com/fennwick/TallyBot_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	initLogger(cfg)

	ctx := context.Background()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load gift card catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Gift card catalog loaded", "path", cfg.CatalogPath, "kinds", len(cat.Kinds()))

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		slog.Error("Failed to open snapshot backend", "backend", cfg.DataBackend, "error", err)
		os.Exit(1)
	}

	st := store.New(domain.Settings{
		DailyReward:         cfg.DailyReward,
		MaxStreakMultiplier: cfg.MaxStreakMultiplier,
	})
	if err := st.LoadFrom(ctx, backend); err != nil {
		// A corrupt snapshot must not brick the service; start empty and
		// leave the bad file for the operator to inspect.
		slog.Error("Snapshot restore failed, starting with empty ledger", "error", err)
	}

	pool := worker.NewPool(cfg.FlushWorkers, cfg.FlushQueueSize)
	pool.Start()

	flusher := store.NewFlusher(st, backend, pool)
	sched := scheduler.New(pool)
	sched.Schedule(cfg.SnapshotInterval, flusher)

	rewardService := reward.NewService(st, flusher)
	wagerService := wager.NewService(st, flusher)
	transferService := transfer.NewService(st, cat, flusher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, st, cat, backend, rewardService, wagerService, transferService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	// Drain in order: stop the periodic trigger, stop the workers, then
	// take one last synchronous snapshot so nothing mutated since the
	// previous flush is lost.
	sched.Stop()
	pool.Stop()
	if err := flusher.FlushSync(shutdownCtx); err != nil {
		slog.Error("Final snapshot save failed", "error", err)
	}

	if err := closeBackend(); err != nil {
		slog.Error("Backend close failed", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openBackend selects the snapshot backend from configuration. The
// returned close func is a no-op for the file backend.
func openBackend(cfg *config.Config) (serverBackend, func() error, error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		b, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using sqlite snapshot backend", "path", cfg.SQLitePath)
		return b, b.Close, nil
	default:
		b, err := filestore.New(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using file snapshot backend", "path", cfg.DataFile)
		return b, func() error { return nil }, nil
	}
}

// serverBackend is what main needs from a snapshot backend: persistence
// for the store plus a health probe for the readiness endpoint.
type serverBackend interface {
	store.Backend
	handler.HealthChecker
}
