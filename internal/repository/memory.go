package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// MemorySave keeps saves in process memory. It is used when no database is configured.
type MemorySave struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.SaveRecord
}

// NewMemorySave creates an empty in-memory save store
func NewMemorySave() *MemorySave {
	return &MemorySave{records: make(map[uuid.UUID]domain.SaveRecord)}
}

// SaveSnapshot stores a copy of record
func (m *MemorySave) SaveSnapshot(_ context.Context, record domain.SaveRecord) error {
	record.Snapshot = append([]byte(nil), record.Snapshot...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.SessionID] = record
	return nil
}

// LoadSnapshot returns a copy of the stored record
func (m *MemorySave) LoadSnapshot(_ context.Context, sessionID uuid.UUID) (*domain.SaveRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	record.Snapshot = append([]byte(nil), record.Snapshot...)
	return &record, nil
}

// DeleteSnapshot removes a record. Deleting a missing record is not an error.
func (m *MemorySave) DeleteSnapshot(_ context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, sessionID)
	return nil
}

// ListSaves returns the records, most recently updated first
func (m *MemorySave) ListSaves(_ context.Context) ([]domain.SaveRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	saves := make([]domain.SaveRecord, 0, len(m.records))
	for _, record := range m.records {
		record.Snapshot = nil
		saves = append(saves, record)
	}
	sort.Slice(saves, func(i, j int) bool {
		return saves[i].UpdatedAt.After(saves[j].UpdatedAt)
	})
	return saves, nil
}
