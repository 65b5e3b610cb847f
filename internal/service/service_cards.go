package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

type cardService struct {
	cardRepository store.CardRepository

	logger *logger.Logger
}

func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		logger:         logger,
	}
}

// UpsertCards stores cards keyed by word. When a batch names the same word
// more than once, the last occurrence is stored.
func (c *cardService) UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error) {
	return c.cardRepository.UpsertCards(ctx, dedupeCardsByWord(cards))
}

func (c *cardService) GetAllCards(ctx context.Context) ([]models.Card, error) {
	return c.cardRepository.GetAllCards(ctx)
}

func (c *cardService) GetCardRefs(ctx context.Context) ([]models.CardRef, error) {
	return c.cardRepository.GetCardRefs(ctx)
}

func dedupeCardsByWord(cards []models.Card) []models.Card {
	last := make(map[string]int, len(cards))
	for i, card := range cards {
		last[card.Word] = i
	}
	if len(last) == len(cards) {
		return cards
	}

	out := make([]models.Card, 0, len(last))
	for i, card := range cards {
		if last[card.Word] == i {
			out = append(out, card)
		}
	}
	return out
}
