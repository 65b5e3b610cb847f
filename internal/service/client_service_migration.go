package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

type clientMigrationService struct {
	local  store.LocalCardRepository
	remote adapter.RemoteStore

	requestTimeout time.Duration

	mu    sync.Mutex
	state models.MigrationState

	logger *logger.Logger
}

// NewClientMigrationService creates the migration coordinator in the Idle
// state. A nil remote makes every migration a no-op.
func NewClientMigrationService(local store.LocalCardRepository, remote adapter.RemoteStore, requestTimeout time.Duration, logger *logger.Logger) ClientMigrationService {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	return &clientMigrationService{
		local:          local,
		remote:         remote,
		requestTimeout: requestTimeout,
		state:          models.MigrationIdle,
		logger:         logger,
	}
}

func (m *clientMigrationService) State() models.MigrationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Detect implements ClientMigrationService. Without a remote store there is
// nowhere to migrate to and the coordinator stays Idle. A completed migration
// is final for the lifetime of the coordinator.
func (m *clientMigrationService) Detect(ctx context.Context) (models.MigrationStats, error) {
	if m.remote == nil {
		return models.MigrationStats{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == models.MigrationMigrating || m.state == models.MigrationCompleted {
		return models.MigrationStats{}, fmt.Errorf("%w: detect while %s", ErrInvalidMigrationTransition, m.state)
	}

	cards, err := m.local.ListWithProgress(ctx)
	if err != nil {
		return models.MigrationStats{}, fmt.Errorf("scan local progress: %w", err)
	}

	if len(cards) == 0 {
		m.state = models.MigrationIdle
		return models.MigrationStats{}, nil
	}

	m.state = models.MigrationDetected
	return models.MigrationStats{HasData: true, Count: len(cards)}, nil
}

func (m *clientMigrationService) Prompt() error {
	return m.transition(models.MigrationPrompted, models.MigrationDetected)
}

func (m *clientMigrationService) Skip() error {
	return m.transition(models.MigrationIdle, models.MigrationPrompted)
}

func (m *clientMigrationService) transition(to models.MigrationState, from ...models.MigrationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range from {
		if m.state == f {
			m.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidMigrationTransition, m.state, to)
}

// Migrate implements ClientMigrationService. It can run from Prompted, or
// again from Failed.
func (m *clientMigrationService) Migrate(ctx context.Context, userID string) (models.MigrationResult, error) {
	if m.remote == nil {
		return models.MigrationResult{}, ErrRemoteNotConfigured
	}
	if userID == "" {
		return models.MigrationResult{}, ErrNotAuthenticated
	}
	if err := m.transition(models.MigrationMigrating, models.MigrationPrompted, models.MigrationFailed); err != nil {
		return models.MigrationResult{}, err
	}

	log := m.logger.With().Str("func", "clientMigrationService.Migrate").Str("user_id", userID).Logger()

	cards, err := m.local.ListWithProgress(ctx)
	if err != nil {
		m.setState(models.MigrationFailed)
		return models.MigrationResult{}, fmt.Errorf("scan local progress: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, m.requestTimeout)
	defer cancel()

	refs, err := m.remote.FetchCardRefs(callCtx)
	if err != nil {
		m.setState(models.MigrationFailed)
		log.Err(err).Msg("failed to read remote card mapping")
		return models.MigrationResult{Errors: len(cards)}, fmt.Errorf("%w: fetch card mapping: %w", ErrMigrationFailed, err)
	}

	ids := make(map[string]int64, len(refs))
	for _, ref := range refs {
		// the last row wins when the remote holds the same word twice
		ids[ref.Word] = ref.ID
	}

	now := time.Now().UTC()
	records := make([]models.ProgressRecord, 0, len(cards))
	unmapped := 0
	for _, card := range cards {
		id, ok := ids[card.Word]
		if !ok {
			unmapped++
			log.Warn().Str("word", card.Word).Msg("card is unknown to the remote store, skipped")
			continue
		}

		practiced := now
		if card.LastPracticedAt != nil {
			practiced = *card.LastPracticedAt
		}
		records = append(records, models.ProgressRecord{
			UserID:          userID,
			CardID:          id,
			CardScore:       card.CardScore,
			ViewCount:       card.ViewCount,
			LastPracticedAt: &practiced,
		})
	}

	if len(records) > 0 {
		if err = m.remote.UpsertProgress(callCtx, records); err != nil {
			m.setState(models.MigrationFailed)
			log.Err(err).Int("records", len(records)).Msg("progress upsert failed")
			return models.MigrationResult{Errors: unmapped + len(records)},
				fmt.Errorf("%w: upsert progress: %w", ErrMigrationFailed, err)
		}
	}

	m.setState(models.MigrationCompleted)
	log.Info().Int("migrated", len(records)).Int("errors", unmapped).Msg("local progress migrated")

	return models.MigrationResult{Success: true, Migrated: len(records), Errors: unmapped}, nil
}

func (m *clientMigrationService) setState(state models.MigrationState) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

// ClearLocalData implements ClientMigrationService. It refuses to run in the
// middle of a migration.
func (m *clientMigrationService) ClearLocalData(ctx context.Context) error {
	if m.State() == models.MigrationMigrating {
		return fmt.Errorf("%w: clear while migrating", ErrInvalidMigrationTransition)
	}
	if err := m.local.Clear(ctx); err != nil {
		return fmt.Errorf("clear local cards: %w", err)
	}
	return nil
}
