package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// CardRepository is the SQLite-backed local card store.
	CardRepository LocalCardRepository

	// SyncQueueRepository persists pending sync operations. It is nil when
	// the queue is configured as volatile.
	SyncQueueRepository SyncQueueRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.Path, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateClient].
//  3. Wires the card repository and, unless cfg.VolatileQueue is set, the
//     sync queue repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &ClientStorages{
		CardRepository: NewLocalCardRepository(db, logger),
		db:             db,
	}
	if !cfg.VolatileQueue {
		storages.SyncQueueRepository = NewLocalSyncQueueRepository(db, logger)
	}

	return storages, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
