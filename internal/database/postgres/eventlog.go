package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SoulCrawler_Go/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository for PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *EventLogRepository) LogEvent(ctx context.Context, eventType string, sessionID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO event_log (event_type, session_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextLogEvent, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextLogEvent, err)
		}
	}

	if _, err := r.db.Exec(ctx, query, eventType, sessionID, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrContextLogEvent, err)
	}
	return nil
}

// GetEventsBySession returns up to limit events of one session, newest first
func (r *EventLogRepository) GetEventsBySession(ctx context.Context, sessionID string, limit int) ([]eventlog.Event, error) {
	query := `
		SELECT id, event_type, session_id::text, payload, metadata, created_at
		FROM event_log
		WHERE session_id = $1
		ORDER BY id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM event_log
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextCleanupEvents, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON, metadataJSON []byte

		if err := rows.Scan(&evt.ID, &evt.EventType, &evt.SessionID, &payloadJSON, &metadataJSON, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextGetEvents, err)
		}
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextGetEvents, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextGetEvents, err)
			}
		}
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetEvents, err)
	}
	return events, nil
}
