package service

import (
	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/validators"
)

type ClientServices struct {
	CardService      ClientCardService
	SyncService      ClientSyncService
	MigrationService ClientMigrationService
	NetworkMonitor   ClientNetworkMonitor
}

// NewClientServices wires the client services. remote is nil in local-only
// mode.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	validator, err := validators.NewCardValidator()
	if err != nil {
		return nil, err
	}

	syncSvc := NewClientSyncService(storages, remote, cfg, logger)

	return &ClientServices{
		CardService:      NewClientCardService(storages.CardRepository, remote, syncSvc, validator, logger),
		SyncService:      syncSvc,
		MigrationService: NewClientMigrationService(storages.CardRepository, remote, cfg.Adapter.RequestTimeout, logger),
		NetworkMonitor:   NewClientNetworkMonitor(remote, syncSvc, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, logger),
	}, nil
}

// Close stops the background work of the client services.
func (s *ClientServices) Close() {
	s.NetworkMonitor.Stop()
	s.SyncService.Close()
}
