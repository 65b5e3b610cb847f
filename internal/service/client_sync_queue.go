package service

import (
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// mutationQueue holds the pending remote operations of the sync engine
// together with their delivery attempt counters.
//
// It is not safe for concurrent use; the engine guards it with its mutex.
type mutationQueue struct {
	pending  []models.SyncOperation
	attempts map[string]int
	// parked counts operations waiting on a retry timer.
	parked int
}

func newMutationQueue() *mutationQueue {
	return &mutationQueue{attempts: make(map[string]int)}
}

func (q *mutationQueue) push(ops ...models.SyncOperation) {
	q.pending = append(q.pending, ops...)
}

// drain returns the pending operations in enqueue order and empties the
// queue.
func (q *mutationQueue) drain() []models.SyncOperation {
	ops := q.pending
	q.pending = nil
	return ops
}

// fail counts a failed attempt of id and returns the total so far.
func (q *mutationQueue) fail(id string) int {
	q.attempts[id]++
	return q.attempts[id]
}

func (q *mutationQueue) forget(id string) {
	delete(q.attempts, id)
}

func (q *mutationQueue) park() {
	q.parked++
}

// unpark moves a parked operation back into the queue.
func (q *mutationQueue) unpark(op models.SyncOperation) {
	if q.parked > 0 {
		q.parked--
	}
	q.push(op)
}

func (q *mutationQueue) contains(id string) bool {
	for _, op := range q.pending {
		if op.ID == id {
			return true
		}
	}
	return false
}

func (q *mutationQueue) pendingLen() int {
	return len(q.pending)
}

// size counts queued and parked operations.
func (q *mutationQueue) size() int {
	return len(q.pending) + q.parked
}
