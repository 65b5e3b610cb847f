package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/internal/workers"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// App owns the client's storages, remote adapter and services for the life
// of one CLI invocation.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens the local store and wires the client services. Without a
// remote address the app runs local-only; without an access token it has
// no session and nothing is synchronised.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var remote adapter.RemoteStore
	if cfg.RemoteConfigured() {
		remote, err = adapter.NewHTTPRemoteStore(cfg.Adapter, logger)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("create remote adapter: %w", err)
		}
	}

	services, err := service.NewClientServices(storages, remote, *cfg, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	if cfg.Adapter.AccessToken != "" {
		userID, err := utils.ParseUserIDFromJWT(cfg.Adapter.AccessToken)
		if err != nil {
			logger.Warn().Err(err).Msg("access token carries no user, sync is disabled")
		} else {
			services.SyncService.SetSession(models.Session{UserID: userID, AccessToken: cfg.Adapter.AccessToken})
		}
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		logger:   logger,
	}, nil
}

// Services exposes the wired client services to the CLI commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// UserID returns the signed-in user or "" without a session.
func (a *App) UserID() string {
	return a.services.SyncService.Session().UserID
}

// Start reloads operations left pending by a previous run and, when signed
// in against a remote store, starts the network probe and background sync.
func (a *App) Start(ctx context.Context) error {
	if err := a.services.SyncService.Restore(ctx); err != nil {
		return fmt.Errorf("restore sync queue: %w", err)
	}

	userID := a.UserID()
	if !a.cfg.RemoteConfigured() || userID == "" {
		a.logger.Info().
			Bool("remote_configured", a.cfg.RemoteConfigured()).
			Bool("signed_in", userID != "").
			Msg("running local-only")
		return nil
	}

	a.workers = workers.New(
		a.services.NetworkMonitor,
		workers.Func{
			StartFunc: func(ctx context.Context) {
				a.services.SyncService.StartBackgroundSync(ctx, userID, a.cfg.Workers.SyncInterval)
			},
			StopFunc: a.services.SyncService.StopBackgroundSync,
		},
	)
	a.workers.Start(ctx)
	return nil
}

// Close stops background work and closes the local store.
func (a *App) Close() error {
	if a.workers != nil {
		a.workers.Stop()
	}
	a.services.Close()
	return a.storages.Close()
}

// Run starts the app, runs fn and closes the app again.
func (a *App) Run(ctx context.Context, fn func(ctx context.Context, services *service.ClientServices) error) (err error) {
	defer func() {
		err = errors.Join(err, a.Close())
	}()

	if err = a.Start(ctx); err != nil {
		return err
	}
	return fn(ctx, a.services)
}
