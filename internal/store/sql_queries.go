package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

var postgres = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var remoteCardColumns = []string{
	"id",
	"word",
	"definition",
	"type",
	"level",
	"collection",
	"tags",
	"gender",
	"plural",
	"verb_type",
	"auxiliary",
	"examples",
	"context",
	"created_at",
}

const (
	selectCardRefs = `SELECT id, word FROM cards ORDER BY id;`

	selectUserProgress = `
		SELECT user_id, card_id, card_score, view_count, last_practiced_at
		FROM user_card_progress
		WHERE user_id = $1
		ORDER BY card_id;`

	// incrementProgress creates the record on first practice and otherwise
	// adds the deltas in place, so concurrent devices never lose updates.
	incrementProgress = `
		INSERT INTO user_card_progress AS p (user_id, card_id, card_score, view_count, last_practiced_at, updated_at)
		VALUES ($1, $2, $3, GREATEST($4, 0), NOW(), NOW())
		ON CONFLICT (user_id, card_id) DO UPDATE SET
			card_score        = p.card_score + $3,
			view_count        = GREATEST(p.view_count + $4, 0),
			last_practiced_at = NOW(),
			updated_at        = NOW()
		RETURNING user_id, card_id, card_score, view_count, last_practiced_at;`
)

func buildSelectAllCardsQuery() (string, []any, error) {
	return postgres.Select(remoteCardColumns...).From("cards").OrderBy("id").ToSql()
}

// buildUpsertCardsQuery inserts cards and, on a word collision, overwrites the
// descriptive fields of the existing row. The id of an existing row is kept.
func buildUpsertCardsQuery(cards []models.Card) (string, []any, error) {
	qb := postgres.Insert("cards").Columns(
		"word", "definition", "type", "level", "collection", "tags",
		"gender", "plural", "verb_type", "auxiliary", "examples", "context",
	)

	for _, card := range cards {
		tags := card.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}

		var examples any
		if card.Examples != nil {
			b, err := json.Marshal(card.Examples)
			if err != nil {
				return "", nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
			}
			examples = string(b)
		}

		qb = qb.Values(
			card.Word, card.Definition, string(card.Type), card.Level, card.Collection, string(tagsJSON),
			card.Gender, card.Plural, card.VerbType, card.Auxiliary, examples, card.Context,
		)
	}

	query, args, err := qb.Suffix(`ON CONFLICT (word) DO UPDATE SET
			definition = EXCLUDED.definition,
			type       = EXCLUDED.type,
			level      = EXCLUDED.level,
			collection = EXCLUDED.collection,
			tags       = EXCLUDED.tags,
			gender     = EXCLUDED.gender,
			plural     = EXCLUDED.plural,
			verb_type  = EXCLUDED.verb_type,
			auxiliary  = EXCLUDED.auxiliary,
			examples   = EXCLUDED.examples,
			context    = EXCLUDED.context`).
		Suffix("RETURNING id, word, definition, type, level, collection, tags, gender, plural, verb_type, auxiliary, examples, context, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertProgressQuery writes records, overwriting existing (user, card)
// pairs with the submitted values.
func buildUpsertProgressQuery(records []models.ProgressRecord) (string, []any, error) {
	qb := postgres.Insert("user_card_progress").
		Columns("user_id", "card_id", "card_score", "view_count", "last_practiced_at")

	for _, r := range records {
		qb = qb.Values(r.UserID, r.CardID, r.CardScore, r.ViewCount, nullableTime(r.LastPracticedAt))
	}

	query, args, err := qb.Suffix(`ON CONFLICT (user_id, card_id) DO UPDATE SET
			card_score        = EXCLUDED.card_score,
			view_count        = EXCLUDED.view_count,
			last_practiced_at = EXCLUDED.last_practiced_at,
			updated_at        = NOW()`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
