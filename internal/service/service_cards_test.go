package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/mock"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

func TestDedupeCardsByWord(t *testing.T) {
	tests := []struct {
		name  string
		cards []models.Card
		want  []models.Card
	}{
		{name: "empty", cards: nil, want: nil},
		{
			name:  "no duplicates",
			cards: []models.Card{{Word: "a"}, {Word: "b"}},
			want:  []models.Card{{Word: "a"}, {Word: "b"}},
		},
		{
			name:  "last occurrence wins",
			cards: []models.Card{{Word: "a", Definition: "old"}, {Word: "b"}, {Word: "a", Definition: "new"}},
			want:  []models.Card{{Word: "b"}, {Word: "a", Definition: "new"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeCardsByWord(tt.cards))
		})
	}
}

func TestCardService_UpsertCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCardRepository(ctrl)
	svc := NewCardService(repo, logger.Nop())

	repo.EXPECT().
		UpsertCards(gomock.Any(), []models.Card{{Word: "der Hund", Definition: "hound"}}).
		Return([]models.Card{{ID: 3, Word: "der Hund", Definition: "hound"}}, nil)

	stored, err := svc.UpsertCards(context.Background(), []models.Card{
		{Word: "der Hund", Definition: "dog"},
		{Word: "der Hund", Definition: "hound"},
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, int64(3), stored[0].ID)
}

func TestCardService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCardRepository(ctrl)
	svc := NewCardService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetAllCards(gomock.Any()).Return([]models.Card{{ID: 1, Word: "gehen"}}, nil)
	repo.EXPECT().GetCardRefs(gomock.Any()).Return([]models.CardRef{{ID: 1, Word: "gehen"}}, nil)

	cards, err := svc.GetAllCards(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	refs, err := svc.GetCardRefs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CardRef{{ID: 1, Word: "gehen"}}, refs)
}
