package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// MockSaveRepository is a mock implementation of repository.Save
type MockSaveRepository struct {
	mock.Mock
}

func (m *MockSaveRepository) SaveSnapshot(ctx context.Context, record domain.SaveRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSaveRepository) LoadSnapshot(ctx context.Context, sessionID uuid.UUID) (*domain.SaveRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaveRecord), args.Error(1)
}

func (m *MockSaveRepository) DeleteSnapshot(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSaveRepository) ListSaves(ctx context.Context) ([]domain.SaveRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaveRecord), args.Error(1)
}
