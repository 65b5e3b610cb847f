package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/mock"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestClientStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		Path: filepath.Join(t.TempDir(), "cards.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

// seedPracticed adds a noun card for every word and gives it a score of
// index+1 and one view.
func seedPracticed(t *testing.T, local store.LocalCardRepository, words ...string) {
	t.Helper()
	ctx := context.Background()

	for i, word := range words {
		card, err := local.Add(ctx, models.Card{Word: word, Definition: word + " (en)", Type: models.CardTypeNoun})
		require.NoError(t, err)
		_, err = local.ApplyProgress(ctx, card.ID, i+1, 1, time.Now().UTC())
		require.NoError(t, err)
	}
}

func newTestMigration(t *testing.T) (ClientMigrationService, store.LocalCardRepository, *mock.MockRemoteStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	local := newTestClientStorages(t).CardRepository

	return NewClientMigrationService(local, remote, time.Second, logger.Nop()), local, remote
}

// ── Detect ───────────────────────────────────────────────────────────────────

func TestClientMigrationService_Detect_NoProgressNoPrompt(t *testing.T) {
	m, local, _ := newTestMigration(t)
	ctx := context.Background()

	_, err := local.Add(ctx, models.Card{Word: "der Hund", Definition: "dog", Type: models.CardTypeNoun})
	require.NoError(t, err)

	stats, err := m.Detect(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MigrationStats{}, stats)
	assert.Equal(t, models.MigrationIdle, m.State())

	assert.ErrorIs(t, m.Prompt(), ErrInvalidMigrationTransition)
}

func TestClientMigrationService_Detect_CountsPracticedCards(t *testing.T) {
	m, local, _ := newTestMigration(t)
	ctx := context.Background()

	seedPracticed(t, local, "der Hund", "die Katze")
	_, err := local.Add(ctx, models.Card{Word: "das Pferd", Definition: "horse", Type: models.CardTypeNoun})
	require.NoError(t, err)

	stats, err := m.Detect(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MigrationStats{HasData: true, Count: 2}, stats)
	assert.Equal(t, models.MigrationDetected, m.State())
}

// ── Prompt / Skip ────────────────────────────────────────────────────────────

func TestClientMigrationService_Skip_KeepsLocalData(t *testing.T) {
	m, local, _ := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund")

	_, err := m.Detect(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Prompt())
	assert.Equal(t, models.MigrationPrompted, m.State())

	require.NoError(t, m.Skip())
	assert.Equal(t, models.MigrationIdle, m.State())
	assert.ErrorIs(t, m.Skip(), ErrInvalidMigrationTransition)

	cards, err := local.ListWithProgress(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

// ── Migrate ──────────────────────────────────────────────────────────────────

func TestClientMigrationService_Migrate_SkipsUnmappedWords(t *testing.T) {
	m, local, remote := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund", "die Katze", "das Pferd", "der Vogel", "das Einhorn")

	remote.EXPECT().FetchCardRefs(gomock.Any()).Return([]models.CardRef{
		{ID: 101, Word: "der Hund"},
		{ID: 102, Word: "die Katze"},
		{ID: 103, Word: "das Pferd"},
		{ID: 104, Word: "der Vogel"},
		{ID: 105, Word: "die Maus"},
	}, nil)
	remote.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ProgressRecord) error {
			require.Len(t, records, 4)
			byCard := make(map[int64]models.ProgressRecord)
			for _, r := range records {
				assert.Equal(t, "user-1", r.UserID)
				assert.NotNil(t, r.LastPracticedAt)
				assert.Equal(t, 1, r.ViewCount)
				byCard[r.CardID] = r
			}
			assert.Equal(t, 1, byCard[101].CardScore)
			assert.Equal(t, 4, byCard[104].CardScore)
			return nil
		})

	_, err := m.Detect(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Prompt())

	result, err := m.Migrate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.MigrationResult{Success: true, Migrated: 4, Errors: 1}, result)
	assert.Equal(t, models.MigrationCompleted, m.State())

	cards, err := local.ListWithProgress(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 5, "local progress is not cleared by a migration")
}

func TestClientMigrationService_Migrate_DuplicateRemoteWordLastWins(t *testing.T) {
	m, local, remote := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund")

	remote.EXPECT().FetchCardRefs(gomock.Any()).Return([]models.CardRef{
		{ID: 1, Word: "der Hund"},
		{ID: 2, Word: "der Hund"},
	}, nil)
	remote.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ProgressRecord) error {
			require.Len(t, records, 1)
			assert.Equal(t, int64(2), records[0].CardID)
			return nil
		})

	_, err := m.Detect(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Prompt())
	_, err = m.Migrate(ctx, "user-1")
	require.NoError(t, err)
}

func TestClientMigrationService_Migrate_NothingMapped(t *testing.T) {
	m, local, remote := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund", "die Katze")

	remote.EXPECT().FetchCardRefs(gomock.Any()).Return(nil, nil)

	_, err := m.Detect(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Prompt())

	result, err := m.Migrate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.MigrationResult{Success: true, Errors: 2}, result)
}

func TestClientMigrationService_Migrate_TransportFailures(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(remote *mock.MockRemoteStore)
		errors int
	}{
		{
			name: "mapping read fails",
			setup: func(remote *mock.MockRemoteStore) {
				remote.EXPECT().FetchCardRefs(gomock.Any()).Return(nil, adapter.ErrServiceUnavailable)
			},
			errors: 3,
		},
		{
			name: "upsert fails",
			setup: func(remote *mock.MockRemoteStore) {
				remote.EXPECT().FetchCardRefs(gomock.Any()).Return([]models.CardRef{
					{ID: 1, Word: "der Hund"}, {ID: 2, Word: "die Katze"},
				}, nil)
				remote.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).Return(adapter.ErrServiceUnavailable)
			},
			errors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, local, remote := newTestMigration(t)
			ctx := context.Background()
			seedPracticed(t, local, "der Hund", "die Katze", "das Pferd")
			tt.setup(remote)

			_, err := m.Detect(ctx)
			require.NoError(t, err)
			require.NoError(t, m.Prompt())

			result, err := m.Migrate(ctx, "user-1")
			assert.ErrorIs(t, err, ErrMigrationFailed)
			assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
			assert.False(t, result.Success)
			assert.Zero(t, result.Migrated)
			assert.Equal(t, tt.errors, result.Errors)
			assert.Equal(t, models.MigrationFailed, m.State())

			cards, err := local.ListWithProgress(ctx)
			require.NoError(t, err)
			assert.Len(t, cards, 3)
		})
	}
}

func TestClientMigrationService_Migrate_RetryAfterFailure(t *testing.T) {
	m, local, remote := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund")

	gomock.InOrder(
		remote.EXPECT().FetchCardRefs(gomock.Any()).Return(nil, errors.New("timeout")),
		remote.EXPECT().FetchCardRefs(gomock.Any()).Return([]models.CardRef{{ID: 1, Word: "der Hund"}}, nil),
		remote.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := m.Detect(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Prompt())

	_, err = m.Migrate(ctx, "user-1")
	require.Error(t, err)

	result, err := m.Migrate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.MigrationResult{Success: true, Migrated: 1}, result)
}

func TestClientMigrationService_Detect_AfterCompletionIsRejected(t *testing.T) {
	m, local, remote := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund")

	remote.EXPECT().FetchCardRefs(gomock.Any()).Return([]models.CardRef{{ID: 1, Word: "der Hund"}}, nil)
	remote.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := m.Detect(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Prompt())
	_, err = m.Migrate(ctx, "user-1")
	require.NoError(t, err)

	_, err = m.Detect(ctx)
	assert.ErrorIs(t, err, ErrInvalidMigrationTransition)
	assert.Equal(t, models.MigrationCompleted, m.State())
	assert.ErrorIs(t, m.Prompt(), ErrInvalidMigrationTransition)
}

func TestClientMigrationService_Migrate_Preconditions(t *testing.T) {
	m, _, _ := newTestMigration(t)
	ctx := context.Background()

	_, err := m.Migrate(ctx, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = m.Migrate(ctx, "user-1")
	assert.ErrorIs(t, err, ErrInvalidMigrationTransition)
	assert.Equal(t, models.MigrationIdle, m.State())
}

func TestClientMigrationService_ClearLocalData(t *testing.T) {
	m, local, _ := newTestMigration(t)
	ctx := context.Background()
	seedPracticed(t, local, "der Hund", "die Katze")

	require.NoError(t, m.ClearLocalData(ctx))

	cards, err := local.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestClientMigrationService_LocalOnlyMode(t *testing.T) {
	local := newTestClientStorages(t).CardRepository
	seedPracticed(t, local, "der Hund")
	m := NewClientMigrationService(local, nil, time.Second, logger.Nop())
	ctx := context.Background()

	stats, err := m.Detect(ctx)
	require.NoError(t, err)
	assert.False(t, stats.HasData)
	assert.Equal(t, models.MigrationIdle, m.State())

	_, err = m.Migrate(ctx, "user-1")
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
}
