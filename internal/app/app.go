package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/logger"
	"lotostats_backend/migrations"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

// Bootstrap loads the environment and prepares the database. Shared by the
// server and the maintenance commands.
func (a *App) Bootstrap(ctx context.Context) error {
	logger.Init(&logger.Options{})

	if err := config.Load(".env"); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}
	a.initServiceProvider()

	if err := a.applySchema(ctx); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// applySchema runs the idempotent schema on startup, so a fresh database
// needs no manual migration step.
func (a *App) applySchema(ctx context.Context) error {
	_, err := a.ServiceProvider.DBClient(ctx).Exec(ctx, migrations.Schema)
	return err
}

func (a *App) Run() error {
	ctx := context.Background()
	if err := a.Bootstrap(ctx); err != nil {
		return err
	}

	r := a.ServiceProvider.Router(ctx)
	address := a.ServiceProvider.HTTPCfg().Address()

	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, r)
}
