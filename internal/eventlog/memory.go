package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the journal in process memory
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	events []Event
	now    func() time.Time
}

// NewMemoryRepository creates an empty in-memory journal
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// LogEvent appends an event
func (r *MemoryRepository) LogEvent(_ context.Context, eventType string, sessionID *string, payload, metadata map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.events = append(r.events, Event{
		ID:        r.nextID,
		EventType: eventType,
		SessionID: sessionID,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: r.now(),
	})
	return nil
}

// GetEventsBySession returns up to limit events of one session, newest first
func (r *MemoryRepository) GetEventsBySession(_ context.Context, sessionID string, limit int) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Event
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		evt := r.events[i]
		if evt.SessionID != nil && *evt.SessionID == sessionID {
			out = append(out, evt)
		}
	}
	return out, nil
}

// CleanupOldEvents drops events older than retentionDays
func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().AddDate(0, 0, -retentionDays)
	kept := r.events[:0]
	for _, evt := range r.events {
		if !evt.CreatedAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	deleted := int64(len(r.events) - len(kept))
	r.events = kept
	return deleted, nil
}
