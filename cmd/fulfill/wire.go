package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/fulfill/internal/cli"
	"github.com/alexanderramin/fulfill/internal/config"
	"github.com/alexanderramin/fulfill/internal/repository"
	"github.com/alexanderramin/fulfill/internal/service"
)

// openBackend opens the storage selected by cfg.Store.Backend.
func openBackend(ctx context.Context, cfg *config.Config) (*repository.Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		return repository.OpenRedisBackend(ctx, repository.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.BackendSQLite:
		b, err := repository.OpenSQLiteBackend(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// wireServices builds every service over b and installs them on app.
func wireServices(app *cli.App, b *repository.Backend, cfg *config.Config, logger *slog.Logger) {
	observer := service.NewLogUseCaseObserver(logger)

	app.Clients = service.NewClientService(b.Gateway, b.UoW, cfg.Journey.StarterSet, observer)
	app.Attachments = service.NewAttachmentService(b.Gateway, b.Blobs, b.UoW, observer)
	app.Journeys = service.NewJourneyService(b.Gateway, b.UoW)
	app.Tasks = service.NewTaskService(b.Gateway, b.UoW)
	app.Import = service.NewImportService(b.UoW, observer)
	app.Dashboard = service.NewDashboardService(b.Gateway, time.Now)
	app.Users = service.NewUserService(b.Gateway, b.UoW)
}
