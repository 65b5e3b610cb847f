package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOperationID returns a time-ordered UUIDv7. If the clock source fails it
// falls back to a random v4, which is still unique.
func NewOperationID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// ProgressOperationID names a progress update for cardID queued at the given
// time. The uuid suffix keeps ids unique for updates within one clock tick.
func ProgressOperationID(cardID int64, at time.Time) string {
	return fmt.Sprintf("progress-%d-%d-%s", cardID, at.UnixNano(), NewOperationID())
}
