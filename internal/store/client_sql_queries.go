// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

// tagSeparator joins tags inside group_concat; it cannot appear in user input
// typed on a keyboard.
const tagSeparator = "\x1f"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var localCardColumns = []string{
	"id",
	"word",
	"definition",
	"type",
	"level",
	"collection",
	"gender",
	"plural",
	"verb_type",
	"auxiliary",
	"examples",
	"context",
	"card_score",
	"view_count",
	"created_date",
	"last_practiced_at",
	"(SELECT group_concat(tag, char(31)) FROM card_tags WHERE card_tags.card_id = cards.id) AS tags",
}

const (
	countCardsByType = `SELECT type, COUNT(*) FROM cards GROUP BY type;`

	selectCollections = `SELECT DISTINCT collection FROM cards WHERE collection <> '' ORDER BY collection;`

	selectTags = `SELECT DISTINCT tag FROM card_tags ORDER BY tag;`

	deleteAllCardTags = `DELETE FROM card_tags;`
	deleteAllCards    = `DELETE FROM cards;`

	deleteCardTags = `DELETE FROM card_tags WHERE card_id = ?;`
	deleteCard     = `DELETE FROM cards WHERE id = ?;`

	applyCardProgress = `
		UPDATE cards SET
			card_score        = card_score + ?,
			view_count        = MAX(view_count + ?, 0),
			last_practiced_at = ?
		WHERE id = ?;`

	insertSyncOperation = `
		INSERT INTO sync_queue (id, type, payload, enqueued_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING;`

	deleteSyncOperation = `DELETE FROM sync_queue WHERE id = ?;`

	selectSyncOperations = `
		SELECT id, type, payload, enqueued_at
		FROM sync_queue
		ORDER BY enqueued_at, rowid;`
)

// buildSelectCardsQuery renders filter as a SELECT over cards. Every set
// criterion becomes one AND-ed predicate.
func buildSelectCardsQuery(filter models.CardFilter) (string, []any, error) {
	qb := sqlite.Select(localCardColumns...).From("cards")

	if filter.Collection != "" {
		qb = qb.Where(sq.Eq{"collection": filter.Collection})
	}

	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		qb = qb.Where(sq.Eq{"type": types})
	}

	if filter.ScoreMin != nil {
		qb = qb.Where(sq.GtOrEq{"card_score": *filter.ScoreMin})
	}

	if filter.ScoreMax != nil {
		qb = qb.Where(sq.LtOrEq{"card_score": *filter.ScoreMax})
	}

	if len(filter.Tags) > 0 {
		args := make([]any, 0, len(filter.Tags))
		for _, tag := range filter.Tags {
			args = append(args, tag)
		}
		qb = qb.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM card_tags WHERE card_tags.card_id = cards.id AND card_tags.tag IN ("+
				sq.Placeholders(len(args))+"))",
			args...,
		))
	}

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		qb = qb.Where(sq.Expr(`(word LIKE ? ESCAPE '\' OR definition LIKE ? ESCAPE '\')`, pattern, pattern))
	}

	query, args, err := qb.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCardByIDQuery(id int64) (string, []any, error) {
	return sqlite.Select(localCardColumns...).From("cards").Where(sq.Eq{"id": id}).ToSql()
}

func buildSelectCardByWordQuery(word string) (string, []any, error) {
	return sqlite.Select(localCardColumns...).From("cards").Where(sq.Eq{"word": word}).ToSql()
}

func buildSelectCardsWithProgressQuery() (string, []any, error) {
	return sqlite.Select(localCardColumns...).
		From("cards").
		Where(sq.Or{sq.NotEq{"card_score": 0}, sq.NotEq{"view_count": 0}}).
		OrderBy("id").
		ToSql()
}

// buildInsertCardQuery inserts card as-is. A zero ID lets SQLite assign one.
func buildInsertCardQuery(card models.Card) (string, []any, error) {
	examples, err := encodeExamples(card.Examples)
	if err != nil {
		return "", nil, err
	}

	columns := []string{
		"word", "definition", "type", "level", "collection", "gender", "plural",
		"verb_type", "auxiliary", "examples", "context", "card_score", "view_count",
		"created_date", "last_practiced_at",
	}
	values := []any{
		card.Word, card.Definition, string(card.Type), card.Level, card.Collection, card.Gender, card.Plural,
		card.VerbType, card.Auxiliary, examples, card.Context, card.CardScore, card.ViewCount,
		nullableTime(card.CreatedDate), nullableTime(card.LastPracticedAt),
	}
	if card.ID != 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]any{card.ID}, values...)
	}

	return sqlite.Insert("cards").Columns(columns...).Values(values...).ToSql()
}

// buildUpdateCardQuery writes the descriptive fields of card. Progress
// columns are never touched here.
func buildUpdateCardQuery(card models.Card) (string, []any, error) {
	examples, err := encodeExamples(card.Examples)
	if err != nil {
		return "", nil, err
	}

	return sqlite.Update("cards").
		SetMap(map[string]any{
			"word":       card.Word,
			"definition": card.Definition,
			"type":       string(card.Type),
			"level":      card.Level,
			"collection": card.Collection,
			"gender":     card.Gender,
			"plural":     card.Plural,
			"verb_type":  card.VerbType,
			"auxiliary":  card.Auxiliary,
			"examples":   examples,
			"context":    card.Context,
		}).
		Where(sq.Eq{"id": card.ID}).
		ToSql()
}

func buildInsertCardTagsQuery(cardID int64, tags []string) (string, []any, error) {
	qb := sqlite.Insert("card_tags").Columns("card_id", "tag").Options("OR IGNORE")
	for _, tag := range tags {
		qb = qb.Values(cardID, tag)
	}
	return qb.ToSql()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func encodeExamples(ex *models.VerbExample) (any, error) {
	if ex == nil {
		return nil, nil
	}
	b, err := json.Marshal(ex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
