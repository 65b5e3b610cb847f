package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCardRepository is the on-device card store.
type LocalCardRepository interface {
	// Add stores card with a fresh id, CreatedDate set to now and zeroed
	// progress.
	Add(ctx context.Context, card models.Card) (models.Card, error)
	// Update merges the non-nil fields of update into the card with id.
	Update(ctx context.Context, id int64, update models.CardUpdate) (models.Card, error)
	Get(ctx context.Context, id int64) (models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	// Query returns the cards matching every criterion of filter.
	Query(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	// ListWithProgress returns cards with non-zero score or views.
	ListWithProgress(ctx context.Context) ([]models.Card, error)
	// FindByWord returns the card with the given word.
	FindByWord(ctx context.Context, word string) (models.Card, error)
	Delete(ctx context.Context, id int64) error
	// ApplyProgress adds the deltas to the card's score and views and stamps
	// the practice time.
	ApplyProgress(ctx context.Context, id int64, scoreDelta, viewDelta int, at time.Time) (models.Card, error)
	// ReplaceAll clears the store and inserts cards as given, ids and
	// progress included, in one transaction.
	ReplaceAll(ctx context.Context, cards []models.Card) error
	Clear(ctx context.Context) error
	// CountByType returns the number of cards per type.
	CountByType(ctx context.Context) (map[models.CardType]int, error)
	// Collections returns the sorted distinct non-empty collections.
	Collections(ctx context.Context) ([]string, error)
	// Tags returns the sorted distinct tags.
	Tags(ctx context.Context) ([]string, error)
}

// SyncQueueRepository persists pending sync operations so that they survive
// restarts. Retry counters are not persisted.
type SyncQueueRepository interface {
	Save(ctx context.Context, op models.SyncOperation) error
	Delete(ctx context.Context, id string) error
	// List returns the persisted operations in enqueue order.
	List(ctx context.Context) ([]models.SyncOperation, error)
}
