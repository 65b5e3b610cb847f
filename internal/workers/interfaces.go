// Package workers groups the client's background workers so they can be
// started and stopped as one unit.
package workers

import "context"

// Worker is a background worker. Start must not block; the worker runs on
// its own goroutines until Stop is called or ctx is cancelled.
//
// Example implementation:
//
//	type ticker struct{ cancel context.CancelFunc }
//
//	func (t *ticker) Start(ctx context.Context) { ... }
//	func (t *ticker) Stop()                     { t.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Func adapts a pair of functions to a Worker.
type Func struct {
	StartFunc func(ctx context.Context)
	StopFunc  func()
}

func (f Func) Start(ctx context.Context) {
	if f.StartFunc != nil {
		f.StartFunc(ctx)
	}
}

func (f Func) Stop() {
	if f.StopFunc != nil {
		f.StopFunc()
	}
}
