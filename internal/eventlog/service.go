// Package eventlog keeps a journal of game events per session, replacing the running
// combat text with a queryable history.
package eventlog

import (
	"context"

	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
)

// Service handles event journal business logic
type Service interface {
	// Subscribe registers the journal to listen to all game events
	Subscribe(bus event.Bus) error

	// History returns the latest events of a session, newest first
	History(ctx context.Context, sessionID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event journal service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload into a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}

	var sessionID *string
	if sid, ok := evt.GetMetadataValue(event.MetadataKeySessionID).(string); ok && sid != "" {
		sessionID = &sid
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), sessionID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSessionID, sessionID)
	return nil
}

// History returns the latest events of a session
func (s *service) History(ctx context.Context, sessionID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.GetEventsBySession(ctx, sessionID, limit)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
