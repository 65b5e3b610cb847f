package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

const defaultSyncInterval = 30 * time.Second

type flusher interface {
	Flush(ctx context.Context) (models.FlushResult, error)
}

type clientSyncJob struct {
	flusher flusher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls f.Flush on a ticker.
// The job is idle until Start is called.
func NewClientSyncJob(f flusher) ClientSyncJob {
	return &clientSyncJob{flusher: f}
}

// Start implements ClientSyncJob. It stops any previously running job, flushes
// once and then launches a background goroutine that flushes every interval.
// If interval is zero or negative it defaults to 30 seconds. The goroutine
// exits when ctx is cancelled or Stop is called.
//
// Flushes run on a context detached from the job, so stopping the job never
// aborts a pass that has already started.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	flushCtx := context.WithoutCancel(ctx)

	go func() {
		defer j.wg.Done()

		_, _ = j.flusher.Flush(flushCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.flusher.Flush(flushCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
