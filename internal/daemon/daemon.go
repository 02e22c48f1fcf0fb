package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ecoquest-app/ecoquest/internal/api"
	"github.com/ecoquest-app/ecoquest/internal/app/generator"
	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/health"
	_ "github.com/ecoquest-app/ecoquest/internal/infra/metrics" // Register Prometheus metrics
	"github.com/ecoquest-app/ecoquest/internal/infra/sqlite"
)

// Daemon is the core EcoQuest runtime. It wires together all services.
type Daemon struct {
	Config    Config
	DB        *sqlite.DB
	Store     *progression.Store
	Generator generator.Generator
	Server    *api.Server
	Health    *health.Checker
	cancel    context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New(version string) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg, version)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config, version string) (*Daemon, error) {
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = filepath.Join(ecoquestHome(), "data")
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := progression.NewStore(db)
	if err := store.Initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize game state: %w", err)
	}

	gen := generator.New(cfg.Generator.URL, cfg.GeneratorTimeout())

	checker := health.NewChecker(db, dataDir)

	srv := api.NewServer(store, gen, version)
	srv.SetHealth(checker)
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:    cfg,
		DB:        db,
		Store:     store,
		Generator: gen,
		Server:    srv,
		Health:    checker,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Health checker runs for the lifetime of the server.
	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("EcoQuest serving on http://%s\n", addr)
	if d.Config.Generator.URL != "" {
		fmt.Printf("  Content service: %s\n", d.Config.Generator.URL)
	}
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
