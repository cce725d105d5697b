package notify

import (
	model "auction-ledger/internal/models"
	"auction-ledger/utils"
	"sync"
)

// Notifier delivers auction notifications to external observers.
// Delivery is best-effort; implementations must not block or fail the caller.
type Notifier interface {
	ProductRenamed(event model.ProductRenamed)
}

// LogNotifier writes notifications to the structured log
type LogNotifier struct{}

// ProductRenamed logs the rename event
func (LogNotifier) ProductRenamed(event model.ProductRenamed) {
	utils.Info("notification: product renamed", map[string]any{
		"event_id": event.EventID,
		"from":     event.From,
		"product":  event.Product,
	})
}

// Feed keeps the most recent notifications in memory for polling clients
type Feed struct {
	mu       sync.RWMutex
	capacity int
	events   []model.ProductRenamed
}

// NewFeed creates a feed holding at most capacity events
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 1
	}
	return &Feed{capacity: capacity}
}

// ProductRenamed appends the event, dropping the oldest when full
func (f *Feed) ProductRenamed(event model.ProductRenamed) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.events) == f.capacity {
		copy(f.events, f.events[1:])
		f.events = f.events[:len(f.events)-1]
	}
	f.events = append(f.events, event)
}

// Events returns a copy of the buffered events, oldest first
func (f *Feed) Events() []model.ProductRenamed {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return append([]model.ProductRenamed(nil), f.events...)
}

// Fanout forwards each notification to every wrapped notifier
type Fanout []Notifier

// ProductRenamed forwards the event
func (f Fanout) ProductRenamed(event model.ProductRenamed) {
	for _, n := range f {
		n.ProductRenamed(event)
	}
}
