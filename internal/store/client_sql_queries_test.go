package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

func Test_buildSelectCardsQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.CardFilter
		contains []string
		args     []any
	}{
		{
			name:     "no criteria",
			filter:   models.CardFilter{},
			contains: []string{"FROM cards ORDER BY id"},
			args:     nil,
		},
		{
			name:     "collection and types",
			filter:   models.CardFilter{Collection: "Business", Types: []models.CardType{models.CardTypeNoun, models.CardTypeVerb}},
			contains: []string{"collection = ?", "type IN (?,?)"},
			args:     []any{"Business", "noun", "verb"},
		},
		{
			name:     "score bounds",
			filter:   models.CardFilter{ScoreMin: intPtr(-2), ScoreMax: intPtr(4)},
			contains: []string{"card_score >= ?", "card_score <= ?"},
			args:     []any{-2, 4},
		},
		{
			name:     "tags",
			filter:   models.CardFilter{Tags: []string{"a", "b"}},
			contains: []string{"EXISTS (SELECT 1 FROM card_tags", "card_tags.tag IN (?,?)"},
			args:     []any{"a", "b"},
		},
		{
			name:     "search escapes wildcards",
			filter:   models.CardFilter{Search: "50%_off"},
			contains: []string{"word LIKE ? ESCAPE", "definition LIKE ? ESCAPE"},
			args:     []any{`%50\%\_off%`, `%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectCardsQuery(tt.filter)
			require.NoError(t, err)
			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			if tt.args == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func Test_buildInsertCardQuery(t *testing.T) {
	t.Run("without id", func(t *testing.T) {
		query, args, err := buildInsertCardQuery(models.Card{Word: "w", Definition: "d", Type: models.CardTypeNoun})
		require.NoError(t, err)
		assert.Contains(t, query, "INSERT INTO cards (word,")
		assert.Len(t, args, 15)
		assert.Nil(t, args[9], "examples column stays NULL")
	})

	t.Run("with id and examples", func(t *testing.T) {
		query, args, err := buildInsertCardQuery(models.Card{
			ID: 9, Word: "w", Definition: "d", Type: models.CardTypeVerb,
			Examples: &models.VerbExample{DE: "de", EN: "en"},
		})
		require.NoError(t, err)
		assert.Contains(t, query, "INSERT INTO cards (id,word,")
		require.Len(t, args, 16)
		assert.Equal(t, int64(9), args[0])
		assert.JSONEq(t, `{"de":"de","en":"en"}`, args[10].(string))
	})
}

func Test_buildUpdateCardQuery_LeavesProgressAlone(t *testing.T) {
	query, _, err := buildUpdateCardQuery(models.Card{ID: 1, Word: "w"})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE cards SET")
	assert.NotContains(t, query, "card_score")
	assert.NotContains(t, query, "view_count")
}

func Test_buildInsertCardTagsQuery(t *testing.T) {
	query, args, err := buildInsertCardTagsQuery(3, []string{"a", "b"})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT OR IGNORE INTO card_tags")
	assert.Equal(t, []any{int64(3), "a", int64(3), "b"}, args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
