package workers

import (
	"context"
	"sync"
)

// Workers starts its workers in order and stops them in reverse order.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
	started bool
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker once. Repeated calls are no-ops until Stop.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.started = true
}

// Stop stops the started workers. It is safe to call without Start.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.started = false
}
