package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-keeper/internal/validators"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// CardServiceWrapper defines middleware composition for CardService.
// Implementations wrap an existing CardService to add behavior such as
// validating.
type CardServiceWrapper interface {
	Wrap(CardService) CardService // returns a decorated CardService applying additional behavior
}

// ProgressServiceWrapper defines middleware composition for ProgressService.
type ProgressServiceWrapper interface {
	Wrap(ProgressService) ProgressService
}

// CardValidationService validates card batches before they reach the inner
// CardService.
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService(validator validators.Validator) CardServiceWrapper {
	return &CardValidationService{validator: validator}
}

func (v *CardValidationService) UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error) {
	if err := v.validator.Validate(ctx, cards); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpsertCards(ctx, cards)
}

func (v *CardValidationService) GetAllCards(ctx context.Context) ([]models.Card, error) {
	return v.inner.GetAllCards(ctx)
}

func (v *CardValidationService) GetCardRefs(ctx context.Context) ([]models.CardRef, error) {
	return v.inner.GetCardRefs(ctx)
}

func (v *CardValidationService) Wrap(inner CardService) CardService {
	v.inner = inner
	return v
}

// ProgressValidationService validates progress payloads before they reach
// the inner ProgressService. The user id is filled in from the context later,
// so only card ids and counters are checked here.
type ProgressValidationService struct {
	inner     ProgressService
	validator validators.Validator
}

func NewProgressValidationService(validator validators.Validator) ProgressServiceWrapper {
	return &ProgressValidationService{validator: validator}
}

func (v *ProgressValidationService) GetProgress(ctx context.Context) ([]models.ProgressRecord, error) {
	return v.inner.GetProgress(ctx)
}

func (v *ProgressValidationService) UpsertProgress(ctx context.Context, records []models.ProgressRecord) error {
	if err := v.validator.Validate(ctx, records, validators.FieldCardID, validators.FieldViewCount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpsertProgress(ctx, records)
}

func (v *ProgressValidationService) IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error) {
	if err := v.validator.Validate(ctx, delta, validators.FieldCardID); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.IncrementProgress(ctx, delta)
}

func (v *ProgressValidationService) Wrap(inner ProgressService) ProgressService {
	v.inner = inner
	return v
}
