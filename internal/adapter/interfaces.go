// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the remote card and
// progress store.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// and the migration coordinator from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the contract the client requires from the authoritative
// remote store. Implementations attach the bearer token to every call and map
// transport failures onto the sentinels of this package.
type RemoteStore interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// Ping checks that the remote store is reachable.
	Ping(ctx context.Context) error

	// UpsertCards inserts cards or updates existing ones matched by word and
	// returns the stored rows with their remote ids.
	UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error)

	// FetchAllCards returns the whole remote corpus.
	FetchAllCards(ctx context.Context) ([]models.Card, error)

	// FetchCardRefs returns only the id/word mapping of the corpus.
	FetchCardRefs(ctx context.Context) ([]models.CardRef, error)

	// FetchProgress returns the progress records of userID. The HTTP
	// implementation resolves the user from the bearer token.
	FetchProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error)

	// UpsertProgress merges records on (user id, card id). Re-sending the
	// same batch is harmless.
	UpsertProgress(ctx context.Context, records []models.ProgressRecord) error

	// IncrementProgress atomically adds delta on the remote side and returns
	// the resulting record.
	IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error)
}
