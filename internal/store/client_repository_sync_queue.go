package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

type localSyncQueueRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSyncQueueRepository constructs a [SyncQueueRepository] backed by the
// sync_queue table of the local database.
func NewLocalSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	return &localSyncQueueRepository{
		DB:     db,
		logger: logger,
	}
}

// Save stores op. Saving an id that is already present is a no-op, so an
// operation re-queued for retry keeps its original position.
func (r *localSyncQueueRepository) Save(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(op.Payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	if _, err = r.DB.ExecContext(ctx, insertSyncOperation, op.ID, string(op.Type), string(payload), op.EnqueuedAt.UTC()); err != nil {
		log.Err(err).
			Str("func", "localSyncQueueRepository.Save").
			Str("operation_id", op.ID).
			Msg("failed to persist sync operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSyncQueueRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, deleteSyncOperation, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSyncQueueRepository.Delete").
			Str("operation_id", id).
			Msg("failed to delete sync operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOperationNotFound
	}

	return nil
}

// List returns pending operations oldest first. Rows whose payload cannot be
// decoded are removed from the table and left out of the result.
func (r *localSyncQueueRepository) List(ctx context.Context) ([]models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	ops, corrupted, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	// the single sqlite connection is busy until rows are closed, so purge afterwards
	for _, id := range corrupted {
		log.Warn().
			Str("func", "localSyncQueueRepository.List").
			Str("operation_id", id).
			Msg("dropping sync operation with unreadable payload")
		if _, err = r.DB.ExecContext(ctx, deleteSyncOperation, id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return ops, nil
}

func (r *localSyncQueueRepository) list(ctx context.Context) ([]models.SyncOperation, []string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectSyncOperations)
	if err != nil {
		log.Err(err).Str("func", "localSyncQueueRepository.List").Msg("failed to query sync operations")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var corrupted []string
	ops := make([]models.SyncOperation, 0, 16)
	for rows.Next() {
		var (
			op         models.SyncOperation
			opType     string
			payload    string
			enqueuedAt time.Time
		)
		if err = rows.Scan(&op.ID, &opType, &payload, &enqueuedAt); err != nil {
			log.Err(err).Str("func", "localSyncQueueRepository.List").Msg("failed to scan sync operation")
			return nil, nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal([]byte(payload), &op.Payload); err != nil {
			corrupted = append(corrupted, op.ID)
			continue
		}
		op.Type = models.OperationType(opType)
		op.EnqueuedAt = enqueuedAt
		ops = append(ops, op)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ops, corrupted, nil
}
