package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService is the offline-first sync engine. It owns the mutation
// queue, drains it against the remote store while the network is available
// and refreshes the local card store from the remote one.
//
// When no remote store is configured every method is a neutral no-op: reads
// report an empty, offline status and commands return [ErrRemoteNotConfigured]
// where the caller needs to know.
type ClientSyncService interface {
	// SetSession switches the engine to the given identity. The access token
	// is attached to every subsequent remote call; an empty user id means
	// nobody is signed in.
	SetSession(session models.Session)

	// Session returns the identity the engine currently works for.
	Session() models.Session

	// Restore loads operations persisted by a previous run into the queue.
	// Retry budgets start from zero.
	Restore(ctx context.Context) error

	// Enqueue appends op to the mutation queue, persisting it when the queue
	// is durable, and triggers a flush when online and idle.
	Enqueue(ctx context.Context, op models.SyncOperation) error

	// QueueProgressUpdate enqueues a progress delta for cardID on behalf of
	// the signed-in user. It is a no-op when nobody is signed in.
	QueueProgressUpdate(ctx context.Context, cardID int64, scoreDelta, viewDelta int) error

	// Flush drains the queue once. It is skipped when offline, empty, or when
	// another flush or cache refresh holds the engine. Failed operations are
	// re-queued with a growing delay until the attempt ceiling is reached.
	Flush(ctx context.Context) (models.FlushResult, error)

	// UpdateLocalCache replaces the local store with the remote cards merged
	// with userID's progress. It waits for an in-flight flush to settle.
	UpdateLocalCache(ctx context.Context, userID string) error

	// ForceSync flushes the queue and then refreshes the local cache.
	ForceSync(ctx context.Context) (models.FlushResult, error)

	// StartBackgroundSync flushes immediately and then every interval until
	// StopBackgroundSync. A running schedule is replaced.
	StartBackgroundSync(ctx context.Context, userID string, interval time.Duration)

	// StopBackgroundSync cancels the schedule without aborting a flush that
	// is already running. Safe to call repeatedly.
	StopBackgroundSync()

	// OnNetworkOnline records that the network is available and flushes.
	OnNetworkOnline(ctx context.Context)

	// OnNetworkOffline records that the network is gone.
	OnNetworkOffline()

	// Status returns a snapshot of the engine state.
	Status() models.SyncStatus

	// Subscribe returns a channel receiving every status change, starting
	// with the current one, and a func that unsubscribes.
	Subscribe() (<-chan models.SyncStatus, func())

	// Close cancels parked retries, waits for a running flush to finish its
	// remote calls and closes all subscriptions. Persisted operations are
	// kept for the next run.
	Close()
}

// ClientSyncJob runs a recurring flush in the background.
type ClientSyncJob interface {
	// Start flushes right away and then on every tick of interval. A job
	// that is already running is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the schedule and waits for the goroutine to exit.
	Stop()
}

// ClientNetworkMonitor probes the remote store and reports connectivity
// changes to the sync engine.
type ClientNetworkMonitor interface {
	Start(ctx context.Context)
	Stop()
}

// ClientMigrationService moves progress collected before sign-in into the
// signed-in user's remote record.
//
// States advance Idle → Detected → Prompted → Migrating → Completed | Failed.
// Local data is never removed implicitly; see ClearLocalData.
type ClientMigrationService interface {
	// State returns the current state of the migration.
	State() models.MigrationState

	// Detect looks for local cards with progress. The state becomes Detected
	// when there are any, Idle otherwise.
	Detect(ctx context.Context) (models.MigrationStats, error)

	// Prompt records that the user has been offered the migration.
	Prompt() error

	// Skip declines the migration and returns to Idle.
	Skip() error

	// Migrate upserts the local progress into userID's remote record.
	// Success in the result reflects the transport outcome only; cards unknown
	// to the remote store are counted in Errors.
	Migrate(ctx context.Context, userID string) (models.MigrationResult, error)

	// ClearLocalData empties the local card store.
	ClearLocalData(ctx context.Context) error
}

// ClientCardService manages the local card collection.
type ClientCardService interface {
	Add(ctx context.Context, card models.Card) (models.Card, error)
	Update(ctx context.Context, id int64, update models.CardUpdate) (models.Card, error)
	Get(ctx context.Context, id int64) (models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	Query(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	Delete(ctx context.Context, id int64) error

	// ImportCards adds cards one by one. With checkDuplicates set, cards whose
	// word already exists are skipped and reported.
	ImportCards(ctx context.Context, cards []models.Card, checkDuplicates bool) (models.ImportResult, error)

	// ReplaceAllCards empties the store and adds cards.
	ReplaceAllCards(ctx context.Context, cards []models.Card) (models.ImportResult, error)

	// ExportCards builds an exchange file of the cards matching filter with
	// ids and progress stripped.
	ExportCards(ctx context.Context, filter models.CardFilter) (models.CardsFile, error)

	// PublishCards uploads cards to the remote corpus.
	PublishCards(ctx context.Context, cards []models.Card) ([]models.Card, error)

	Stats(ctx context.Context) (models.CardStats, error)
	Collections(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)

	// RecordPractice applies an answer to the local card, counting one view,
	// and queues the same delta for the remote store.
	RecordPractice(ctx context.Context, cardID int64, scoreDelta int) (models.Card, error)
}
