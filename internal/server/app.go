// Package server wires configuration, storage, services and the HTTP API
// into a runnable EcoPulse server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ecopulse/ecopulse/internal/logging"
	"github.com/ecopulse/ecopulse/internal/server/config"
	"github.com/ecopulse/ecopulse/internal/server/httpapi"
	"github.com/ecopulse/ecopulse/internal/server/repositories/memory"
	"github.com/ecopulse/ecopulse/internal/server/repositories/repomanager"
	"github.com/ecopulse/ecopulse/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.Server
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// logOutput is where the JSON logger writes.
var logOutput io.Writer = os.Stdout

// NewApp validates cfg, connects to the store, applies migrations and builds
// the HTTP server. A missing signing secret is a startup error.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(logOutput, cfg.LogLevel)

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)
	if cfg.DatabaseDSN == memory.DSN {
		logger.Warn(ctx, "using in-memory storage; data is lost on exit")
		rm = memory.NewManager()
	} else {
		var err error
		db, err = openDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db ping error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	us := services.NewUserService(db, rm, cfg)
	ls := services.NewLogService(db, rm, cfg)

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		http:   httpapi.NewServer(cfg.HTTPAddr, logger, us, ls),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.http.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			runErr = err
			cancelFunc()
		}
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
