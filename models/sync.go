package models

import "time"

// OperationType tags the kind of a queued remote mutation.
type OperationType string

// OperationUpdateProgress applies a [ProgressDelta] on the remote store.
const OperationUpdateProgress OperationType = "UPDATE_PROGRESS"

// SyncOperation is a pending remote mutation held in the mutation queue.
//
// ID is generated on the client and is globally unique per operation. It is
// the idempotency key towards the remote store and the key under which retry
// attempts are counted.
type SyncOperation struct {
	ID         string        `json:"id"`
	Type       OperationType `json:"type"`
	Payload    ProgressDelta `json:"payload"`
	EnqueuedAt time.Time     `json:"enqueued_at"`
}

// SyncStatus is the observable state of the sync engine.
type SyncStatus struct {
	// Online mirrors the last network availability signal.
	Online bool `json:"online"`

	// Syncing is true only while a flush pass is draining the queue.
	Syncing bool `json:"syncing"`

	// QueueSize is the number of operations still waiting for delivery,
	// including those parked for a delayed retry.
	QueueSize int `json:"queue_size"`

	// LastSyncedAt is the time the last flush pass left nothing pending.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// FlushResult reports what a single flush pass did.
type FlushResult struct {
	// Skipped is true when the single-flight guard (or an offline, empty or
	// disabled engine) turned the call into a no-op.
	Skipped bool

	Delivered   int
	Rescheduled int
	Dropped     int
}
