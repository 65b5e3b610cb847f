package service

import (
	"sync"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

const statusBufferSize = 8

// statusBroadcaster fans sync status changes out to subscribers. A slow
// subscriber loses intermediate values but always receives the latest one.
type statusBroadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan models.SyncStatus
	nextID int
	closed bool
}

func newStatusBroadcaster() *statusBroadcaster {
	return &statusBroadcaster{subs: make(map[int]chan models.SyncStatus)}
}

// subscribe registers a new subscriber and sends it current.
func (b *statusBroadcaster) subscribe(current models.SyncStatus) (<-chan models.SyncStatus, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan models.SyncStatus, statusBufferSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	ch <- current

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *statusBroadcaster) publish(status models.SyncStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- status:
			continue
		default:
		}
		// full: drop the oldest value to make room for the newest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- status:
		default:
		}
	}
}

func (b *statusBroadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
