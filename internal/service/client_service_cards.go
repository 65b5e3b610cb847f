package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/validators"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// practiceViewDelta is the number of views one answered question adds.
const practiceViewDelta = 1

type clientCardService struct {
	local     store.LocalCardRepository
	remote    adapter.RemoteStore
	sync      ClientSyncService
	validator validators.Validator

	logger *logger.Logger
}

// NewClientCardService creates the local card service. Practice results are
// forwarded to syncService; remote may be nil in local-only mode.
func NewClientCardService(local store.LocalCardRepository, remote adapter.RemoteStore, syncService ClientSyncService, validator validators.Validator, logger *logger.Logger) ClientCardService {
	return &clientCardService{
		local:     local,
		remote:    remote,
		sync:      syncService,
		validator: validator,
		logger:    logger,
	}
}

func (c *clientCardService) Add(ctx context.Context, card models.Card) (models.Card, error) {
	if err := c.validator.Validate(ctx, card); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return c.local.Add(ctx, card)
}

func (c *clientCardService) Update(ctx context.Context, id int64, update models.CardUpdate) (models.Card, error) {
	current, err := c.local.Get(ctx, id)
	if err != nil {
		return models.Card{}, err
	}
	if err = c.validator.Validate(ctx, update.Apply(current)); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return c.local.Update(ctx, id, update)
}

func (c *clientCardService) Get(ctx context.Context, id int64) (models.Card, error) {
	return c.local.Get(ctx, id)
}

func (c *clientCardService) List(ctx context.Context) ([]models.Card, error) {
	return c.local.List(ctx)
}

func (c *clientCardService) Query(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	if filter.IsEmpty() {
		return c.local.List(ctx)
	}
	return c.local.Query(ctx, filter)
}

func (c *clientCardService) Delete(ctx context.Context, id int64) error {
	return c.local.Delete(ctx, id)
}

func (c *clientCardService) ImportCards(ctx context.Context, cards []models.Card, checkDuplicates bool) (models.ImportResult, error) {
	log := c.logger.With().Str("func", "clientCardService.ImportCards").Logger()
	result := models.ImportResult{Total: len(cards)}

	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if checkDuplicates {
			_, err := c.local.FindByWord(ctx, card.Word)
			if err == nil {
				result.Duplicates++
				result.DuplicateWords = append(result.DuplicateWords, card.Word)
				continue
			}
			if !errors.Is(err, store.ErrCardNotFound) {
				return result, fmt.Errorf("look up %q: %w", card.Word, err)
			}
		}

		if _, err := c.Add(ctx, card); err != nil {
			result.Errors++
			log.Warn().Err(err).Str("word", card.Word).Msg("card not imported")
			continue
		}
		result.Imported++
	}

	log.Info().
		Int("total", result.Total).
		Int("imported", result.Imported).
		Int("duplicates", result.Duplicates).
		Int("errors", result.Errors).
		Msg("cards imported")
	return result, nil
}

func (c *clientCardService) ReplaceAllCards(ctx context.Context, cards []models.Card) (models.ImportResult, error) {
	if err := c.local.Clear(ctx); err != nil {
		return models.ImportResult{}, fmt.Errorf("clear local cards: %w", err)
	}
	return c.ImportCards(ctx, cards, false)
}

func (c *clientCardService) ExportCards(ctx context.Context, filter models.CardFilter) (models.CardsFile, error) {
	cards, err := c.Query(ctx, filter)
	if err != nil {
		return models.CardsFile{}, err
	}

	exported := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		card.ID = 0
		card.CreatedDate = nil
		card.CardScore = 0
		card.ViewCount = 0
		card.LastPracticedAt = nil
		exported = append(exported, card)
	}

	return models.CardsFile{
		Version:  models.CardsFileVersion,
		Exported: time.Now().UTC(),
		Cards:    exported,
	}, nil
}

func (c *clientCardService) PublishCards(ctx context.Context, cards []models.Card) ([]models.Card, error) {
	if c.remote == nil {
		return nil, ErrRemoteNotConfigured
	}
	if err := c.validator.Validate(ctx, cards); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return c.remote.UpsertCards(ctx, cards)
}

func (c *clientCardService) Stats(ctx context.Context) (models.CardStats, error) {
	byType, err := c.local.CountByType(ctx)
	if err != nil {
		return models.CardStats{}, err
	}
	collections, err := c.local.Collections(ctx)
	if err != nil {
		return models.CardStats{}, err
	}
	tags, err := c.local.Tags(ctx)
	if err != nil {
		return models.CardStats{}, err
	}

	stats := models.CardStats{
		ByType:      make(map[models.CardType]int, len(models.CardTypes)),
		Collections: collections,
		Tags:        tags,
	}
	for _, t := range models.CardTypes {
		stats.ByType[t] = byType[t]
	}
	for _, n := range byType {
		stats.TotalCards += n
	}
	return stats, nil
}

func (c *clientCardService) Collections(ctx context.Context) ([]string, error) {
	return c.local.Collections(ctx)
}

func (c *clientCardService) Tags(ctx context.Context) ([]string, error) {
	return c.local.Tags(ctx)
}

func (c *clientCardService) RecordPractice(ctx context.Context, cardID int64, scoreDelta int) (models.Card, error) {
	card, err := c.local.ApplyProgress(ctx, cardID, scoreDelta, practiceViewDelta, time.Now().UTC())
	if err != nil {
		return models.Card{}, err
	}

	if err = c.sync.QueueProgressUpdate(ctx, cardID, scoreDelta, practiceViewDelta); err != nil {
		c.logger.Err(err).
			Str("func", "clientCardService.RecordPractice").
			Int64("card_id", cardID).
			Msg("failed to queue remote progress update")
	}
	return card, nil
}
