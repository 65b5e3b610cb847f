// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// CardRepository is the remote store's shared card corpus.
type CardRepository interface {
	// UpsertCards inserts cards or updates the existing ones matched by word
	// and returns them with their server-assigned ids.
	UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error)

	// GetAllCards returns the whole corpus ordered by id.
	GetAllCards(ctx context.Context) ([]models.Card, error)

	// GetCardRefs returns the id/word mapping of the corpus.
	GetCardRefs(ctx context.Context) ([]models.CardRef, error)
}

// ProgressRepository holds per-user learning progress.
type ProgressRepository interface {
	// GetProgress returns every progress record of userID.
	GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error)

	// UpsertProgress writes records, overwriting existing (user, card) pairs.
	UpsertProgress(ctx context.Context, records []models.ProgressRecord) error

	// IncrementProgress atomically adds delta to the (user, card) record,
	// creating it when absent, and returns the resulting record.
	IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error)
}
