// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
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

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func testClientConfig(retryDelay time.Duration) config.ClientConfig {
	return config.ClientConfig{
		Adapter: config.ClientAdapter{RequestTimeout: time.Second},
		Workers: config.ClientWorkers{
			SyncInterval:     time.Hour,
			RetryDelay:       retryDelay,
			MaxRetryAttempts: 3,
			ProbeInterval:    time.Hour,
		},
	}
}

type syncFixture struct {
	svc    *clientSyncService
	local  *mock.MockLocalCardRepository
	queue  *mock.MockSyncQueueRepository
	remote *mock.MockRemoteStore
}

// newTestSyncSvc builds an engine that starts offline with a volatile queue.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller, retryDelay time.Duration, durable bool) syncFixture {
	t.Helper()

	f := syncFixture{
		local:  mock.NewMockLocalCardRepository(ctrl),
		remote: mock.NewMockRemoteStore(ctrl),
	}
	storages := &store.ClientStorages{CardRepository: f.local}
	if durable {
		f.queue = mock.NewMockSyncQueueRepository(ctrl)
		storages.SyncQueueRepository = f.queue
	}

	f.svc = NewClientSyncService(storages, f.remote, testClientConfig(retryDelay), logger.Nop()).(*clientSyncService)
	f.svc.OnNetworkOffline()
	t.Cleanup(f.svc.Close)

	return f
}

func (f syncFixture) setOnline(online bool) {
	f.svc.mu.Lock()
	f.svc.online = online
	f.svc.mu.Unlock()
}

func progressOp(id string, cardID int64) models.SyncOperation {
	return models.SyncOperation{
		ID:      id,
		Type:    models.OperationUpdateProgress,
		Payload: models.ProgressDelta{UserID: "user-1", CardID: cardID, ScoreDelta: 1, ViewDelta: 1},
	}
}

func settled(svc *clientSyncService) func() bool {
	return func() bool {
		st := svc.Status()
		return st.QueueSize == 0 && !st.Syncing
	}
}

// ── Enqueue / Flush ──────────────────────────────────────────────────────────

func TestClientSyncService_Flush_DeliversEachOperationOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, f.svc.Enqueue(ctx, progressOp(fmt.Sprintf("op-%d", i), i)))
	}
	assert.Equal(t, 3, f.svc.Status().QueueSize)

	var mu sync.Mutex
	var delivered []int64
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.ProgressDelta) (models.ProgressRecord, error) {
			mu.Lock()
			delivered = append(delivered, d.CardID)
			mu.Unlock()
			return models.ProgressRecord{UserID: d.UserID, CardID: d.CardID}, nil
		}).Times(3)

	f.setOnline(true)
	result, err := f.svc.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Delivered: 3}, result)
	assert.Equal(t, []int64{1, 2, 3}, delivered)

	again, err := f.svc.Flush(ctx)
	require.NoError(t, err)
	assert.True(t, again.Skipped)

	st := f.svc.Status()
	assert.Zero(t, st.QueueSize)
	assert.False(t, st.Syncing)
	assert.NotNil(t, st.LastSyncedAt)
}

func TestClientSyncService_Flush_SkippedWhileOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)

	require.NoError(t, f.svc.Enqueue(context.Background(), progressOp("op-1", 1)))

	result, err := f.svc.Flush(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, 1, f.svc.Status().QueueSize)
}

func TestClientSyncService_Flush_SkippedWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	f.setOnline(true)

	result, err := f.svc.Flush(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestClientSyncService_Flush_ConcurrentCallsRunOnePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))

	entered := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.ProgressDelta) (models.ProgressRecord, error) {
			close(entered)
			<-release
			return models.ProgressRecord{}, nil
		}).Times(1)

	f.setOnline(true)

	done := make(chan models.FlushResult)
	go func() {
		result, _ := f.svc.Flush(ctx)
		done <- result
	}()
	<-entered

	assert.True(t, f.svc.Status().Syncing)
	for i := 0; i < 5; i++ {
		result, err := f.svc.Flush(ctx)
		require.NoError(t, err)
		assert.True(t, result.Skipped)
	}

	close(release)
	assert.Equal(t, models.FlushResult{Delivered: 1}, <-done)
	assert.False(t, f.svc.Status().Syncing)
}

func TestClientSyncService_Flush_PicksUpOperationsQueuedDuringPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.ProgressDelta) (models.ProgressRecord, error) {
			if d.CardID == 1 {
				close(entered)
				<-release
			}
			return models.ProgressRecord{UserID: d.UserID, CardID: d.CardID}, nil
		}).Times(2)

	f.setOnline(true)
	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))
	<-entered

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-2", 2)))
	f.svc.mu.Lock()
	assert.Equal(t, 1, f.svc.queue.pendingLen())
	f.svc.mu.Unlock()
	close(release)

	require.Eventually(t, settled(f.svc), waitFor, tick)
}

// ── Retries ──────────────────────────────────────────────────────────────────

func TestClientSyncService_Retry_DropsAfterThreeAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Millisecond, false)

	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		Return(models.ProgressRecord{}, adapter.ErrServiceUnavailable).
		Times(3)

	f.setOnline(true)
	require.NoError(t, f.svc.Enqueue(context.Background(), progressOp("op-1", 1)))

	require.Eventually(t, func() bool {
		f.svc.mu.Lock()
		defer f.svc.mu.Unlock()
		return f.svc.queue.size() == 0 && !f.svc.syncing && len(f.svc.queue.attempts) == 0
	}, waitFor, tick)
}

func TestClientSyncService_Retry_ParkedOperationStaysInQueueSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		Return(models.ProgressRecord{}, errors.New("connection reset"))

	f.setOnline(true)
	result, err := f.svc.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlushResult{Rescheduled: 1}, result)

	st := f.svc.Status()
	assert.Equal(t, 1, st.QueueSize)
	assert.Nil(t, st.LastSyncedAt)

	f.svc.mu.Lock()
	assert.Equal(t, 1, f.svc.queue.attempts["op-1"])
	assert.Len(t, f.svc.timers, 1)
	f.svc.mu.Unlock()
}

func TestClientSyncService_Flush_DropsWithoutRetry(t *testing.T) {
	tests := []struct {
		name  string
		op    models.SyncOperation
		setup func(remote *mock.MockRemoteStore)
	}{
		{
			name:  "missing user",
			op:    models.SyncOperation{ID: "op-1", Type: models.OperationUpdateProgress, Payload: models.ProgressDelta{CardID: 1}},
			setup: func(*mock.MockRemoteStore) {},
		},
		{
			name:  "missing card",
			op:    models.SyncOperation{ID: "op-1", Type: models.OperationUpdateProgress, Payload: models.ProgressDelta{UserID: "u"}},
			setup: func(*mock.MockRemoteStore) {},
		},
		{
			name: "card unknown to remote",
			op:   progressOp("op-1", 404),
			setup: func(remote *mock.MockRemoteStore) {
				remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
					Return(models.ProgressRecord{}, adapter.ErrUnprocessable)
			},
		},
		{
			name: "forbidden",
			op:   progressOp("op-1", 1),
			setup: func(remote *mock.MockRemoteStore) {
				remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
					Return(models.ProgressRecord{}, adapter.ErrForbidden)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestSyncSvc(t, ctrl, time.Hour, false)
			tt.setup(f.remote)

			require.NoError(t, f.svc.Enqueue(context.Background(), tt.op))
			f.setOnline(true)

			result, err := f.svc.Flush(context.Background())
			require.NoError(t, err)
			assert.Equal(t, models.FlushResult{Dropped: 1}, result)
			assert.Zero(t, f.svc.Status().QueueSize)
		})
	}
}

// ── Online / offline ─────────────────────────────────────────────────────────

func TestClientSyncService_OfflineQueueFlushesWhenOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))
	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-2", 2)))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, f.svc.Status().QueueSize)

	var mu sync.Mutex
	var delivered []int64
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.ProgressDelta) (models.ProgressRecord, error) {
			mu.Lock()
			delivered = append(delivered, d.CardID)
			mu.Unlock()
			return models.ProgressRecord{}, nil
		}).Times(2)

	f.svc.OnNetworkOnline(ctx)

	require.Eventually(t, settled(f.svc), waitFor, tick)
	mu.Lock()
	assert.Equal(t, []int64{1, 2}, delivered)
	mu.Unlock()
	assert.True(t, f.svc.Status().Online)
}

func TestClientSyncService_EnqueueWhileOnlineFlushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	f.setOnline(true)

	f.remote.EXPECT().IncrementProgress(gomock.Any(), progressOp("", 5).Payload).
		Return(models.ProgressRecord{}, nil)

	require.NoError(t, f.svc.Enqueue(context.Background(), progressOp("op-1", 5)))
	require.Eventually(t, settled(f.svc), waitFor, tick)
}

// ── QueueProgressUpdate ──────────────────────────────────────────────────────

func TestClientSyncService_QueueProgressUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.QueueProgressUpdate(ctx, 7, 1, 1))
	assert.Zero(t, f.svc.Status().QueueSize, "nobody signed in")

	f.remote.EXPECT().SetToken("token-1")
	f.svc.SetSession(models.Session{UserID: "user-1", AccessToken: "token-1"})

	require.NoError(t, f.svc.QueueProgressUpdate(ctx, 7, -1, 1))

	f.svc.mu.Lock()
	defer f.svc.mu.Unlock()
	require.Len(t, f.svc.queue.pending, 1)
	op := f.svc.queue.pending[0]
	assert.True(t, strings.HasPrefix(op.ID, "progress-7-"), op.ID)
	assert.Equal(t, models.OperationUpdateProgress, op.Type)
	assert.Equal(t, models.ProgressDelta{UserID: "user-1", CardID: 7, ScoreDelta: -1, ViewDelta: 1}, op.Payload)
	assert.False(t, op.EnqueuedAt.IsZero())
}

// ── Persistence ──────────────────────────────────────────────────────────────

func TestClientSyncService_DurableQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, true)
	ctx := context.Background()

	restored := []models.SyncOperation{progressOp("op-1", 1), progressOp("op-2", 2)}
	f.queue.EXPECT().List(gomock.Any()).Return(restored, nil)
	require.NoError(t, f.svc.Restore(ctx))
	assert.Equal(t, 2, f.svc.Status().QueueSize)

	f.queue.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.SyncOperation) error {
			assert.Equal(t, "op-3", op.ID)
			assert.False(t, op.EnqueuedAt.IsZero())
			return nil
		})
	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-3", 3)))

	gomock.InOrder(
		f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).Return(models.ProgressRecord{}, nil),
		f.queue.EXPECT().Delete(gomock.Any(), "op-1").Return(nil),
	)
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).Return(models.ProgressRecord{}, nil).Times(2)
	f.queue.EXPECT().Delete(gomock.Any(), "op-2").Return(nil)
	f.queue.EXPECT().Delete(gomock.Any(), "op-3").Return(store.ErrOperationNotFound)

	f.setOnline(true)
	result, err := f.svc.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Delivered)
}

func TestClientSyncService_Restore_SkipsKnownOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, true)
	ctx := context.Background()

	f.queue.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))

	f.queue.EXPECT().List(gomock.Any()).Return([]models.SyncOperation{progressOp("op-1", 1)}, nil)
	require.NoError(t, f.svc.Restore(ctx))
	assert.Equal(t, 1, f.svc.Status().QueueSize)
}

// ── Cache refresh ────────────────────────────────────────────────────────────

func TestClientSyncService_UpdateLocalCache_ReplacesWithMergedRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)

	remoteCards := []models.Card{
		{ID: 10, Word: "der Hund", Definition: "dog", Type: models.CardTypeNoun},
		{ID: 11, Word: "die Katze", Definition: "cat", Type: models.CardTypeNoun},
	}
	practiced := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f.remote.EXPECT().FetchAllCards(gomock.Any()).Return(remoteCards, nil)
	f.remote.EXPECT().FetchProgress(gomock.Any(), "user-1").Return([]models.ProgressRecord{
		{UserID: "user-1", CardID: 10, CardScore: 4, ViewCount: 2, LastPracticedAt: &practiced},
	}, nil)
	f.local.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cards []models.Card) error {
			require.Len(t, cards, 2)
			assert.Equal(t, int64(10), cards[0].ID)
			assert.Equal(t, 4, cards[0].CardScore)
			assert.Equal(t, 2, cards[0].ViewCount)
			assert.Zero(t, cards[1].CardScore)
			assert.Zero(t, cards[1].ViewCount)
			return nil
		})

	require.NoError(t, f.svc.UpdateLocalCache(context.Background(), "user-1"))
}

func TestClientSyncService_UpdateLocalCache_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.UpdateLocalCache(ctx, ""), ErrNotAuthenticated)

	f.remote.EXPECT().FetchAllCards(gomock.Any()).Return(nil, adapter.ErrBadGateway)
	assert.ErrorIs(t, f.svc.UpdateLocalCache(ctx, "user-1"), adapter.ErrBadGateway)

	f.remote.EXPECT().FetchAllCards(gomock.Any()).Return(nil, nil)
	f.remote.EXPECT().FetchProgress(gomock.Any(), "user-1").Return(nil, nil)
	f.local.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(store.ErrCardAlreadyExists)
	assert.ErrorIs(t, f.svc.UpdateLocalCache(ctx, "user-1"), store.ErrCardAlreadyExists)
}

func TestClientSyncService_UpdateLocalCache_WaitsForFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))

	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var order []string
	record := func(step string) {
		mu.Lock()
		order = append(order, step)
		mu.Unlock()
	}

	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.ProgressDelta) (models.ProgressRecord, error) {
			close(entered)
			<-release
			record("flush")
			return models.ProgressRecord{}, nil
		})
	f.remote.EXPECT().FetchAllCards(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.Card, error) {
			record("refresh")
			return nil, nil
		})
	f.remote.EXPECT().FetchProgress(gomock.Any(), "user-1").Return(nil, nil)
	f.local.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	f.setOnline(true)
	flushed := make(chan struct{})
	go func() {
		_, _ = f.svc.Flush(ctx)
		close(flushed)
	}()
	<-entered

	refreshed := make(chan error)
	go func() { refreshed <- f.svc.UpdateLocalCache(ctx, "user-1") }()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-refreshed)
	<-flushed

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"flush", "refresh"}, order)
}

// ── ForceSync ────────────────────────────────────────────────────────────────

func TestClientSyncService_ForceSync_FlushesThenRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	f.remote.EXPECT().SetToken("token")
	f.svc.SetSession(models.Session{UserID: "user-1", AccessToken: "token"})
	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))

	gomock.InOrder(
		f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).Return(models.ProgressRecord{}, nil),
		f.remote.EXPECT().FetchAllCards(gomock.Any()).Return(nil, nil),
		f.remote.EXPECT().FetchProgress(gomock.Any(), "user-1").Return(nil, nil),
		f.local.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil),
	)

	f.setOnline(true)
	result, err := f.svc.ForceSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Delivered)
}

func TestClientSyncService_ForceSync_ReportsRefreshFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)

	_, err := f.svc.ForceSync(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	f.remote.EXPECT().SetToken("")
	f.svc.SetSession(models.Session{UserID: "user-1"})
	f.remote.EXPECT().FetchAllCards(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	_, err = f.svc.ForceSync(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── Background sync ──────────────────────────────────────────────────────────

func TestClientSyncService_StartBackgroundSync_FlushesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).Return(models.ProgressRecord{}, nil)

	f.setOnline(true)
	f.svc.StartBackgroundSync(ctx, "user-1", time.Hour)
	require.Eventually(t, settled(f.svc), waitFor, tick)

	f.svc.StopBackgroundSync()
	f.svc.StopBackgroundSync()
}

func TestClientSyncService_StartBackgroundSync_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)
	ctx := context.Background()

	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))
	f.setOnline(true)

	f.svc.StartBackgroundSync(ctx, "", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, f.svc.Status().QueueSize)
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestClientSyncService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)

	updates, unsubscribe := f.svc.Subscribe()

	initial := <-updates
	assert.False(t, initial.Online)

	require.NoError(t, f.svc.Enqueue(context.Background(), progressOp("op-1", 1)))
	next := <-updates
	assert.Equal(t, 1, next.QueueSize)

	unsubscribe()
	unsubscribe()
	_, open := <-updates
	assert.False(t, open)
}

func TestClientSyncService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, false)

	updates, _ := f.svc.Subscribe()
	<-updates

	f.svc.Close()
	f.svc.Close()

	_, open := <-updates
	assert.False(t, open)
	assert.ErrorIs(t, f.svc.Enqueue(context.Background(), progressOp("op-1", 1)), ErrSyncServiceClosed)
}

func TestClientSyncService_Close_LetsRunningFlushFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, true)
	ctx := context.Background()

	entered := make(chan struct{})
	callErr := make(chan error, 1)
	f.queue.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	f.queue.EXPECT().Delete(gomock.Any(), "op-1").Return(nil)
	f.remote.EXPECT().IncrementProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d models.ProgressDelta) (models.ProgressRecord, error) {
			close(entered)
			select {
			case <-time.After(50 * time.Millisecond):
				callErr <- nil
				return models.ProgressRecord{UserID: d.UserID, CardID: d.CardID}, nil
			case <-ctx.Done():
				callErr <- ctx.Err()
				return models.ProgressRecord{}, ctx.Err()
			}
		})

	f.setOnline(true)
	require.NoError(t, f.svc.Enqueue(ctx, progressOp("op-1", 1)))
	<-entered

	f.svc.Close()

	select {
	case err := <-callErr:
		assert.NoError(t, err)
	default:
		t.Fatal("Close returned before the running increment finished")
	}

	f.svc.mu.Lock()
	defer f.svc.mu.Unlock()
	assert.Zero(t, f.svc.queue.size())
	assert.Empty(t, f.svc.queue.attempts)
	assert.NotNil(t, f.svc.lastSyncedAt)
}

func TestClientSyncService_Enqueue_AfterCloseIsNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestSyncSvc(t, ctrl, time.Hour, true)

	f.svc.Close()

	// the queue mock expects no Save
	assert.ErrorIs(t, f.svc.Enqueue(context.Background(), progressOp("op-1", 1)), ErrSyncServiceClosed)
}

// ── Local-only mode ──────────────────────────────────────────────────────────

func TestClientSyncService_LocalOnlyMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalCardRepository(ctrl)
	svc := NewClientSyncService(&store.ClientStorages{CardRepository: local}, nil, testClientConfig(time.Hour), logger.Nop())
	t.Cleanup(svc.Close)
	ctx := context.Background()

	svc.SetSession(models.Session{UserID: "user-1"})
	svc.OnNetworkOnline(ctx)

	assert.False(t, svc.Status().Online)
	assert.NoError(t, svc.QueueProgressUpdate(ctx, 1, 1, 1))
	assert.Zero(t, svc.Status().QueueSize)
	assert.ErrorIs(t, svc.Enqueue(ctx, progressOp("op-1", 1)), ErrRemoteNotConfigured)

	result, err := svc.Flush(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	_, err = svc.ForceSync(ctx)
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	assert.ErrorIs(t, svc.UpdateLocalCache(ctx, "user-1"), ErrRemoteNotConfigured)

	svc.StartBackgroundSync(ctx, "user-1", time.Millisecond)
	svc.StopBackgroundSync()
}
