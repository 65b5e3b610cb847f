package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// localCardRepository is the SQLite-backed implementation of
// [LocalCardRepository]. Tags live in the card_tags side table and are
// folded back into [models.Card.Tags] on read.
type localCardRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalCardRepository constructs a [LocalCardRepository] on top of a
// migrated SQLite database.
func NewLocalCardRepository(db *DB, logger *logger.Logger) LocalCardRepository {
	return &localCardRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (l *localCardRepository) Add(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	card.ID = 0
	card.CreatedDate = &now
	card.CardScore = 0
	card.ViewCount = 0
	card.LastPracticedAt = nil
	card.Tags = normalizeTags(card.Tags)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localCardRepository.Add").Msg("failed to begin transaction")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	id, err := insertCard(ctx, tx, card)
	if err != nil {
		log.Err(err).Str("func", "localCardRepository.Add").Str("word", card.Word).Msg("failed to insert card")
		return models.Card{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "localCardRepository.Add").Msg("failed to commit transaction")
		return models.Card{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	card.ID = id
	return card, nil
}

func (l *localCardRepository) Update(ctx context.Context, id int64, update models.CardUpdate) (models.Card, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localCardRepository.Update").Msg("failed to begin transaction")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := getCardByID(ctx, tx, id)
	if err != nil {
		return models.Card{}, err
	}

	updated := update.Apply(current)
	updated.ID = id

	query, args, err := buildUpdateCardQuery(updated)
	if err != nil {
		return models.Card{}, err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localCardRepository.Update").Int64("id", id).Msg("failed to update card")
		return models.Card{}, classifySQLiteError(err)
	}

	if update.Tags != nil {
		updated.Tags = normalizeTags(updated.Tags)
		if err = replaceCardTags(ctx, tx, id, updated.Tags); err != nil {
			return models.Card{}, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "localCardRepository.Update").Msg("failed to commit transaction")
		return models.Card{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return updated, nil
}

func (l *localCardRepository) Get(ctx context.Context, id int64) (models.Card, error) {
	return getCardByID(ctx, l.DB, id)
}

func (l *localCardRepository) FindByWord(ctx context.Context, word string) (models.Card, error) {
	query, args, err := buildSelectCardByWordQuery(word)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanCard(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	return card, err
}

func (l *localCardRepository) List(ctx context.Context) ([]models.Card, error) {
	return l.Query(ctx, models.CardFilter{})
}

func (l *localCardRepository) Query(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	query, args, err := buildSelectCardsQuery(filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localCardRepository.Query").Msg("failed to create query")
		return nil, err
	}

	return l.selectCards(ctx, "localCardRepository.Query", query, args)
}

func (l *localCardRepository) ListWithProgress(ctx context.Context) ([]models.Card, error) {
	query, args, err := buildSelectCardsWithProgressQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.selectCards(ctx, "localCardRepository.ListWithProgress", query, args)
}

func (l *localCardRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCardTags, id); err != nil {
		log.Err(err).Str("func", "localCardRepository.Delete").Int64("id", id).Msg("failed to delete card tags")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, deleteCard, id)
	if err != nil {
		log.Err(err).Str("func", "localCardRepository.Delete").Int64("id", id).Msg("failed to delete card")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCardNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (l *localCardRepository) ApplyProgress(ctx context.Context, id int64, scoreDelta, viewDelta int, at time.Time) (models.Card, error) {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, applyCardProgress, scoreDelta, viewDelta, at.UTC(), id)
	if err != nil {
		log.Err(err).Str("func", "localCardRepository.ApplyProgress").Int64("id", id).Msg("failed to apply progress")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Card{}, ErrCardNotFound
	}

	return getCardByID(ctx, l.DB, id)
}

func (l *localCardRepository) ReplaceAll(ctx context.Context, cards []models.Card) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localCardRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = clearCards(ctx, tx); err != nil {
		return err
	}

	for idx, card := range cards {
		if card.CreatedDate == nil {
			now := time.Now().UTC()
			card.CreatedDate = &now
		}
		card.Tags = normalizeTags(card.Tags)

		if _, err = insertCard(ctx, tx, card); err != nil {
			log.Err(err).
				Str("func", "localCardRepository.ReplaceAll").
				Int("iteration", idx+1).
				Int("total", len(cards)).
				Str("word", card.Word).
				Msg("failed to insert card")
			return fmt.Errorf("failed to insert card at index %d: %w", idx, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "localCardRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "localCardRepository.ReplaceAll").Int("cards", len(cards)).Msg("local store replaced")
	return nil
}

func (l *localCardRepository) Clear(ctx context.Context) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = clearCards(ctx, tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}
	return nil
}

func (l *localCardRepository) CountByType(ctx context.Context) (map[models.CardType]int, error) {
	rows, err := l.DB.QueryContext(ctx, countCardsByType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.CardType]int, len(models.CardTypes))
	for rows.Next() {
		var t string
		var n int
		if err = rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[models.CardType(t)] = n
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (l *localCardRepository) Collections(ctx context.Context) ([]string, error) {
	return l.selectStrings(ctx, selectCollections)
}

func (l *localCardRepository) Tags(ctx context.Context) ([]string, error) {
	return l.selectStrings(ctx, selectTags)
}

func (l *localCardRepository) selectStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 16)
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (l *localCardRepository) selectCards(ctx context.Context, funcName, query string, args []any) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0, 64)
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan card row")
			return nil, scanErr
		}
		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cards, nil
}

func getCardByID(ctx context.Context, q queryer, id int64) (models.Card, error) {
	query, args, err := buildSelectCardByIDQuery(id)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	card, err := scanCard(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	return card, err
}

func insertCard(ctx context.Context, q queryer, card models.Card) (int64, error) {
	query, args, err := buildInsertCardQuery(card)
	if err != nil {
		return 0, err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classifySQLiteError(err)
	}

	id := card.ID
	if id == 0 {
		if id, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = replaceCardTags(ctx, q, id, card.Tags); err != nil {
		return 0, err
	}

	return id, nil
}

func replaceCardTags(ctx context.Context, q queryer, cardID int64, tags []string) error {
	if _, err := q.ExecContext(ctx, deleteCardTags, cardID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if len(tags) == 0 {
		return nil
	}

	query, args, err := buildInsertCardTagsQuery(cardID, tags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func clearCards(ctx context.Context, q queryer) error {
	if _, err := q.ExecContext(ctx, deleteAllCardTags); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err := q.ExecContext(ctx, deleteAllCards); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func scanCard(row rowScanner) (models.Card, error) {
	var (
		card          models.Card
		cardType      string
		examples      sql.NullString
		createdDate   sql.NullTime
		lastPracticed sql.NullTime
		tags          sql.NullString
	)

	err := row.Scan(
		&card.ID,
		&card.Word,
		&card.Definition,
		&cardType,
		&card.Level,
		&card.Collection,
		&card.Gender,
		&card.Plural,
		&card.VerbType,
		&card.Auxiliary,
		&examples,
		&card.Context,
		&card.CardScore,
		&card.ViewCount,
		&createdDate,
		&lastPracticed,
		&tags,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, err
	}
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	card.Type = models.CardType(cardType)
	if examples.Valid && examples.String != "" {
		var ex models.VerbExample
		if err = json.Unmarshal([]byte(examples.String), &ex); err != nil {
			return models.Card{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		card.Examples = &ex
	}
	if createdDate.Valid {
		t := createdDate.Time
		card.CreatedDate = &t
	}
	if lastPracticed.Valid {
		t := lastPracticed.Time
		card.LastPracticedAt = &t
	}
	if tags.Valid && tags.String != "" {
		card.Tags = strings.Split(tags.String, tagSeparator)
		sort.Strings(card.Tags)
	}

	return card, nil
}

// normalizeTags trims, de-duplicates and sorts tags, dropping empty ones.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)

	if len(out) == 0 {
		return nil
	}
	return out
}

// classifySQLiteError maps a failed card write to the store errors. A busy
// database is reported as [ErrTransient].
func classifySQLiteError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %w", ErrCardAlreadyExists, err)
	}
	if NewSQLiteErrorClassifier().Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
