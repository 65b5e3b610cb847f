// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

const (
	defaultRetryDelay       = 5 * time.Second
	defaultMaxRetryAttempts = 3
	defaultRequestTimeout   = 10 * time.Second
)

// clientSyncService is the sync engine. All mutable state is guarded by mu;
// remote calls are made outside of it.
type clientSyncService struct {
	local     store.LocalCardRepository
	persisted store.SyncQueueRepository // nil for a volatile queue
	remote    adapter.RemoteStore       // nil in local-only mode

	retryDelay     time.Duration
	maxAttempts    int
	requestTimeout time.Duration

	job    ClientSyncJob
	status *statusBroadcaster

	// ctx outlives individual calls; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	idle         *sync.Cond
	queue        *mutationQueue
	timers       map[string]*time.Timer
	session      models.Session
	online       bool
	syncing      bool
	refreshing   bool
	closed       bool
	lastSyncedAt *time.Time

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncService builds the sync engine over the local storages and
// remote. A nil remote puts the engine into local-only mode.
func NewClientSyncService(storages *store.ClientStorages, remote adapter.RemoteStore, cfg config.ClientConfig, logger *logger.Logger) ClientSyncService {
	ctx, cancel := context.WithCancel(context.Background())

	s := &clientSyncService{
		local:          storages.CardRepository,
		persisted:      storages.SyncQueueRepository,
		remote:         remote,
		retryDelay:     cfg.Workers.RetryDelay,
		maxAttempts:    cfg.Workers.MaxRetryAttempts,
		requestTimeout: cfg.Adapter.RequestTimeout,
		status:         newStatusBroadcaster(),
		ctx:            ctx,
		cancel:         cancel,
		queue:          newMutationQueue(),
		timers:         make(map[string]*time.Timer),
		online:         remote != nil,
		logger:         logger,
	}
	if s.retryDelay <= 0 {
		s.retryDelay = defaultRetryDelay
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = defaultMaxRetryAttempts
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.idle = sync.NewCond(&s.mu)
	s.job = NewClientSyncJob(s)

	return s
}

func (s *clientSyncService) SetSession(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if s.remote != nil {
		s.remote.SetToken(session.AccessToken)
	}
}

func (s *clientSyncService) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *clientSyncService) Restore(ctx context.Context) error {
	if s.persisted == nil {
		return nil
	}

	ops, err := s.persisted.List(ctx)
	if err != nil {
		return fmt.Errorf("restore sync queue: %w", err)
	}

	s.mu.Lock()
	for _, op := range ops {
		if !s.queue.contains(op.ID) {
			s.queue.push(op)
		}
	}
	s.mu.Unlock()

	if len(ops) > 0 {
		s.logger.Info().Int("operations", len(ops)).Msg("restored pending sync operations")
		s.publish()
	}
	return nil
}

func (s *clientSyncService) Enqueue(ctx context.Context, op models.SyncOperation) error {
	if s.remote == nil {
		return ErrRemoteNotConfigured
	}
	if op.ID == "" {
		op.ID = utils.NewOperationID()
	}
	if op.Type == "" {
		op.Type = models.OperationUpdateProgress
	}
	op.EnqueuedAt = time.Now().UTC()

	if s.isClosed() {
		return ErrSyncServiceClosed
	}
	if s.persisted != nil {
		if err := s.persisted.Save(ctx, op); err != nil {
			// the operation still lives in memory for this run
			s.logger.Err(err).
				Str("func", "clientSyncService.Enqueue").
				Str("operation_id", op.ID).
				Msg("failed to persist sync operation")
		}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.forgetPersisted(ctx, op.ID)
		return ErrSyncServiceClosed
	}
	s.queue.push(op)
	kick := s.online && !s.syncing && !s.refreshing
	if kick {
		s.wg.Add(1)
	}
	s.mu.Unlock()

	s.publish()
	if kick {
		go s.flushInBackground()
	}
	return nil
}

func (s *clientSyncService) QueueProgressUpdate(ctx context.Context, cardID int64, scoreDelta, viewDelta int) error {
	if s.remote == nil {
		return nil
	}

	userID := s.Session().UserID
	if userID == "" {
		s.logger.Warn().
			Str("func", "clientSyncService.QueueProgressUpdate").
			Int64("card_id", cardID).
			Msg("no authenticated user, progress update not queued")
		return nil
	}

	op := models.SyncOperation{
		ID:   utils.ProgressOperationID(cardID, time.Now()),
		Type: models.OperationUpdateProgress,
		Payload: models.ProgressDelta{
			UserID:     userID,
			CardID:     cardID,
			ScoreDelta: scoreDelta,
			ViewDelta:  viewDelta,
		},
	}
	return s.Enqueue(ctx, op)
}

func (s *clientSyncService) Flush(ctx context.Context) (models.FlushResult, error) {
	if s.remote == nil {
		return models.FlushResult{Skipped: true}, nil
	}

	s.mu.Lock()
	if s.closed || !s.online || s.syncing || s.refreshing || s.queue.pendingLen() == 0 {
		s.mu.Unlock()
		return models.FlushResult{Skipped: true}, nil
	}
	ops := s.queue.drain()
	s.syncing = true
	s.mu.Unlock()
	s.publish()

	log := s.logger.With().Str("func", "clientSyncService.Flush").Logger()
	log.Debug().Int("operations", len(ops)).Msg("flushing sync queue")

	var result models.FlushResult
	for _, op := range ops {
		err := s.deliver(ctx, op)
		switch {
		case err == nil:
			result.Delivered++
			s.settle(ctx, op.ID)

		case errors.Is(err, ErrMalformedOperation) || adapter.IsPermanent(err):
			result.Dropped++
			log.Err(err).Str("operation_id", op.ID).Msg("dropping undeliverable sync operation")
			s.settle(ctx, op.ID)

		default:
			if s.retryLater(op) {
				result.Rescheduled++
				log.Warn().Err(err).Str("operation_id", op.ID).Msg("sync operation failed, retry scheduled")
				continue
			}
			result.Dropped++
			log.Err(err).Str("operation_id", op.ID).Msg("sync operation failed too many times, dropping")
			s.settle(ctx, op.ID)
		}
	}

	s.mu.Lock()
	s.syncing = false
	if s.queue.size() == 0 {
		now := time.Now().UTC()
		s.lastSyncedAt = &now
	}
	// operations enqueued or requeued during the pass get their own pass
	kick := !s.closed && s.online && !s.refreshing && s.queue.pendingLen() > 0
	if kick {
		s.wg.Add(1)
	}
	s.idle.Broadcast()
	s.mu.Unlock()
	s.publish()
	if kick {
		go s.flushInBackground()
	}

	log.Debug().
		Int("delivered", result.Delivered).
		Int("rescheduled", result.Rescheduled).
		Int("dropped", result.Dropped).
		Msg("sync queue flushed")

	return result, nil
}

// deliver sends a single operation to the remote store.
func (s *clientSyncService) deliver(ctx context.Context, op models.SyncOperation) error {
	if op.Type != models.OperationUpdateProgress || op.Payload.UserID == "" || op.Payload.CardID == 0 {
		return fmt.Errorf("%w: %s", ErrMalformedOperation, op.ID)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	_, err := s.remote.IncrementProgress(callCtx, op.Payload)
	return err
}

// settle forgets op id for good: its counter and its persisted copy.
func (s *clientSyncService) settle(ctx context.Context, id string) {
	s.mu.Lock()
	s.queue.forget(id)
	s.mu.Unlock()

	s.forgetPersisted(ctx, id)
}

func (s *clientSyncService) forgetPersisted(ctx context.Context, id string) {
	if s.persisted == nil {
		return
	}
	if err := s.persisted.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrOperationNotFound) {
		s.logger.Err(err).
			Str("func", "clientSyncService.forgetPersisted").
			Str("operation_id", id).
			Msg("failed to remove persisted sync operation")
	}
}

func (s *clientSyncService) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// retryLater counts a failed attempt and parks op on a timer of
// attempts × retryDelay. It reports false once the attempt ceiling is hit.
func (s *clientSyncService) retryLater(op models.SyncOperation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempts := s.queue.fail(op.ID)
	if attempts >= s.maxAttempts {
		return false
	}
	if s.closed {
		// only a durable queue can carry the operation into the next run
		return s.persisted != nil
	}

	s.queue.park()
	s.timers[op.ID] = time.AfterFunc(time.Duration(attempts)*s.retryDelay, func() {
		s.requeue(op)
	})
	return true
}

func (s *clientSyncService) requeue(op models.SyncOperation) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, op.ID)
	s.queue.unpark(op)
	s.wg.Add(1)
	s.mu.Unlock()

	s.publish()
	go s.flushInBackground()
}

func (s *clientSyncService) flushInBackground() {
	defer s.wg.Done()
	_, _ = s.Flush(s.ctx)
}

func (s *clientSyncService) UpdateLocalCache(ctx context.Context, userID string) error {
	if s.remote == nil {
		return ErrRemoteNotConfigured
	}
	if userID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	for s.syncing || s.refreshing {
		s.idle.Wait()
	}
	if s.closed {
		s.mu.Unlock()
		return ErrSyncServiceClosed
	}
	s.refreshing = true
	s.mu.Unlock()

	defer s.finishRefresh()

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	cards, err := s.remote.FetchAllCards(callCtx)
	if err != nil {
		return fmt.Errorf("fetch remote cards: %w", err)
	}
	progress, err := s.remote.FetchProgress(callCtx, userID)
	if err != nil {
		return fmt.Errorf("fetch remote progress: %w", err)
	}

	merged := models.MergeProgress(cards, progress)
	if err = s.local.ReplaceAll(ctx, merged); err != nil {
		return fmt.Errorf("replace local cards: %w", err)
	}

	s.logger.Info().
		Str("func", "clientSyncService.UpdateLocalCache").
		Int("cards", len(merged)).
		Int("progress_records", len(progress)).
		Msg("local cache refreshed")
	return nil
}

// finishRefresh releases the engine and flushes what queued up meanwhile.
func (s *clientSyncService) finishRefresh() {
	s.mu.Lock()
	s.refreshing = false
	kick := !s.closed && s.online && s.queue.pendingLen() > 0
	if kick {
		s.wg.Add(1)
	}
	s.idle.Broadcast()
	s.mu.Unlock()

	if kick {
		go s.flushInBackground()
	}
}

func (s *clientSyncService) ForceSync(ctx context.Context) (models.FlushResult, error) {
	if s.remote == nil {
		return models.FlushResult{Skipped: true}, ErrRemoteNotConfigured
	}

	userID := s.Session().UserID
	if userID == "" {
		return models.FlushResult{Skipped: true}, ErrNotAuthenticated
	}

	result, err := s.Flush(ctx)
	if err != nil {
		return result, err
	}
	return result, s.UpdateLocalCache(ctx, userID)
}

func (s *clientSyncService) StartBackgroundSync(ctx context.Context, userID string, interval time.Duration) {
	if s.remote == nil || userID == "" {
		s.logger.Debug().
			Bool("remote_configured", s.remote != nil).
			Msg("background sync not started")
		return
	}
	s.job.Start(ctx, interval)
}

func (s *clientSyncService) StopBackgroundSync() {
	s.job.Stop()
}

func (s *clientSyncService) OnNetworkOnline(ctx context.Context) {
	if s.remote == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.online = true
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().Msg("network is online")
	s.publish()
	go s.flushInBackground()
}

func (s *clientSyncService) OnNetworkOffline() {
	if s.remote == nil {
		return
	}

	s.mu.Lock()
	s.online = false
	s.mu.Unlock()

	s.logger.Info().Msg("network is offline")
	s.publish()
}

func (s *clientSyncService) Status() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *clientSyncService) statusLocked() models.SyncStatus {
	status := models.SyncStatus{
		Online:    s.online,
		Syncing:   s.syncing,
		QueueSize: s.queue.size(),
	}
	if s.lastSyncedAt != nil {
		at := *s.lastSyncedAt
		status.LastSyncedAt = &at
	}
	return status
}

func (s *clientSyncService) publish() {
	s.status.publish(s.Status())
}

func (s *clientSyncService) Subscribe() (<-chan models.SyncStatus, func()) {
	return s.status.subscribe(s.Status())
}

func (s *clientSyncService) Close() {
	s.job.Stop()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.idle.Broadcast()
	s.mu.Unlock()

	// Passes already running finish their remote calls; each call is bounded
	// by the request timeout.
	s.wg.Wait()
	s.cancel()
	s.status.close()
}
