package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// Save defines the interface for snapshot persistence
type Save interface {
	// SaveSnapshot inserts or replaces the record for its session.
	SaveSnapshot(ctx context.Context, record domain.SaveRecord) error
	// LoadSnapshot returns domain.ErrSessionNotFound when no record exists.
	LoadSnapshot(ctx context.Context, sessionID uuid.UUID) (*domain.SaveRecord, error)
	DeleteSnapshot(ctx context.Context, sessionID uuid.UUID) error
	// ListSaves returns every record, most recently updated first, without snapshot bytes.
	ListSaves(ctx context.Context) ([]domain.SaveRecord, error)
}
