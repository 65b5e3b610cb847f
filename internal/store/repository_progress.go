package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// progressRepository is the PostgreSQL-backed implementation of
// [ProgressRepository] over the user_card_progress table.
type progressRepository struct {
	*DB
	logger *logger.Logger
}

// NewProgressRepository constructs a [ProgressRepository] backed by the
// provided database connection and logger.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *progressRepository) GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, selectUserProgress, userID)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.GetProgress").
			Str("user_id", userID).
			Msg("failed to query progress")
		return nil, p.wrapError(err)
	}
	defer rows.Close()

	records := make([]models.ProgressRecord, 0, 64)
	for rows.Next() {
		record, scanErr := scanProgress(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "progressRepository.GetProgress").
				Str("user_id", userID).
				Msg("failed to scan progress row")
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// UpsertProgress writes all records in one statement; a batch either lands
// completely or not at all.
func (p *progressRepository) UpsertProgress(ctx context.Context, records []models.ProgressRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	query, args, err := buildUpsertProgressQuery(dedupeProgress(records))
	if err != nil {
		log.Err(err).Str("func", "progressRepository.UpsertProgress").Msg("failed to create query")
		return err
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "progressRepository.UpsertProgress").
			Int("records", len(records)).
			Msg("failed to upsert progress")
		return p.wrapError(err)
	}

	return nil
}

// IncrementProgress applies delta atomically inside PostgreSQL.
func (p *progressRepository) IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, incrementProgress, delta.UserID, delta.CardID, delta.ScoreDelta, delta.ViewDelta)
	record, err := scanProgress(row)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.IncrementProgress").
			Str("user_id", delta.UserID).
			Int64("card_id", delta.CardID).
			Msg("failed to increment progress")
		return models.ProgressRecord{}, p.wrapError(err)
	}

	return record, nil
}

func (p *progressRepository) wrapError(err error) error {
	switch {
	case postgresError(err) == pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUnknownCard, err)
	case p.classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrTransient, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func scanProgress(row rowScanner) (models.ProgressRecord, error) {
	var (
		record        models.ProgressRecord
		lastPracticed sql.NullTime
	)

	if err := row.Scan(&record.UserID, &record.CardID, &record.CardScore, &record.ViewCount, &lastPracticed); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if lastPracticed.Valid {
		t := lastPracticed.Time
		record.LastPracticedAt = &t
	}

	return record, nil
}

// dedupeProgress keeps the last record per (user, card); PostgreSQL refuses
// to touch the same row twice in one INSERT … ON CONFLICT.
func dedupeProgress(records []models.ProgressRecord) []models.ProgressRecord {
	type key struct {
		userID string
		cardID int64
	}

	index := make(map[key]int, len(records))
	out := make([]models.ProgressRecord, 0, len(records))
	for _, r := range records {
		k := key{r.UserID, r.CardID}
		if i, ok := index[k]; ok {
			out[i] = r
			continue
		}
		index[k] = len(out)
		out = append(out, r)
	}
	return out
}
