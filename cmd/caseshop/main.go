// Package main is the entry point for the caseshop CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"caseshop/internal/app"
	"caseshop/internal/backend/restapi"
	"caseshop/internal/cli"
	"caseshop/internal/commands"
	"caseshop/internal/config"
	"caseshop/internal/logging"
	"caseshop/internal/storage"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newApp)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// newApp wires the REST backend and the configured storage into an App.
func newApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	log := logging.New(logging.Options{Debug: cfg.Debug, Quiet: cfg.Quiet})

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := restapi.New(cfg, log.Named("api"))
	if err != nil {
		if c, ok := store.(io.Closer); ok {
			c.Close()
		}
		return nil, err
	}

	log.Debug("starting",
		zap.String("api", cfg.APIURL),
		zap.String("storage", cfg.Storage),
		zap.String("config", cfg.Dir))

	return app.New(app.Options{
		Config:  cfg,
		Service: svc,
		Store:   store,
		Logger:  log,
	})
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.Storage == config.StorageRedis {
		return storage.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	}
	return storage.NewFileStore(cfg.StatePath()), nil
}
