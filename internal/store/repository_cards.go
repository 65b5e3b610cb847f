package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// cardRepository is the PostgreSQL-backed implementation of [CardRepository].
type cardRepository struct {
	*DB
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] backed by the provided
// database connection and logger.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertCards inserts or updates cards by word in one statement and returns
// the stored rows. Duplicate words inside one batch are rejected by
// PostgreSQL, so callers de-duplicate first.
func (c *cardRepository) UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	if len(cards) == 0 {
		return []models.Card{}, nil
	}

	query, args, err := buildUpsertCardsQuery(cards)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.UpsertCards").Msg("failed to create query")
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cardRepository.UpsertCards").
			Int("cards", len(cards)).
			Msg("failed to upsert cards")
		return nil, c.wrapError(err)
	}
	defer rows.Close()

	return scanRemoteCards(ctx, rows, len(cards))
}

// GetAllCards returns the whole corpus ordered by id.
func (c *cardRepository) GetAllCards(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllCardsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.GetAllCards").Msg("failed to query cards")
		return nil, c.wrapError(err)
	}
	defer rows.Close()

	return scanRemoteCards(ctx, rows, 256)
}

// GetCardRefs returns the id/word mapping of the corpus.
func (c *cardRepository) GetCardRefs(ctx context.Context) ([]models.CardRef, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, selectCardRefs)
	if err != nil {
		log.Err(err).Str("func", "cardRepository.GetCardRefs").Msg("failed to query card refs")
		return nil, c.wrapError(err)
	}
	defer rows.Close()

	refs := make([]models.CardRef, 0, 256)
	for rows.Next() {
		var ref models.CardRef
		if err = rows.Scan(&ref.ID, &ref.Word); err != nil {
			log.Err(err).Str("func", "cardRepository.GetCardRefs").Msg("failed to scan card ref")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return refs, nil
}

// wrapError maps a driver error onto the package sentinels.
func (c *cardRepository) wrapError(err error) error {
	switch {
	case postgresError(err) == pgerrcode.UniqueViolation,
		postgresError(err) == pgerrcode.CardinalityViolation:
		return fmt.Errorf("%w: %w", ErrCardAlreadyExists, err)
	case c.classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrTransient, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func scanRemoteCards(ctx context.Context, rows *sql.Rows, capacity int) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	cards := make([]models.Card, 0, capacity)
	for rows.Next() {
		var (
			card      models.Card
			cardType  string
			tags      []byte
			examples  []byte
			createdAt time.Time
		)

		scanErr := rows.Scan(
			&card.ID,
			&card.Word,
			&card.Definition,
			&cardType,
			&card.Level,
			&card.Collection,
			&tags,
			&card.Gender,
			&card.Plural,
			&card.VerbType,
			&card.Auxiliary,
			&examples,
			&card.Context,
			&createdAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "scanRemoteCards").Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		card.Type = models.CardType(cardType)
		card.CreatedDate = &createdAt
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &card.Tags); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
			}
			if len(card.Tags) == 0 {
				card.Tags = nil
			}
		}
		if len(examples) > 0 {
			var ex models.VerbExample
			if err := json.Unmarshal(examples, &ex); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
			}
			card.Examples = &ex
		}

		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "scanRemoteCards").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cards, nil
}
