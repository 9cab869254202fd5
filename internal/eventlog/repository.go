package eventlog

import (
	"context"
	"time"
)

// Event is a journal entry
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	SessionID *string                `json:"session_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Repository defines the interface for event journal storage
type Repository interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, eventType string, sessionID *string, payload, metadata map[string]interface{}) error

	// GetEventsBySession returns up to limit events of one session, newest first
	GetEventsBySession(ctx context.Context, sessionID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
