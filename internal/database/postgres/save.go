package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// SaveRepository implements repository.Save for PostgreSQL
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// SaveSnapshot upserts the record for its session
func (r *SaveRepository) SaveSnapshot(ctx context.Context, record domain.SaveRecord) error {
	query := `
		INSERT INTO saves (session_id, character_name, level, snapshot, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id) DO UPDATE
		SET character_name = EXCLUDED.character_name,
			level = EXCLUDED.level,
			snapshot = EXCLUDED.snapshot,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		record.SessionID, record.CharacterName, record.Level, string(record.Snapshot), record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveSnapshot, err)
	}
	return nil
}

// LoadSnapshot returns the stored record for a session
func (r *SaveRepository) LoadSnapshot(ctx context.Context, sessionID uuid.UUID) (*domain.SaveRecord, error) {
	query := `
		SELECT session_id, character_name, level, snapshot::text, updated_at
		FROM saves
		WHERE session_id = $1
	`
	var record domain.SaveRecord
	var snapshot string
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&record.SessionID, &record.CharacterName, &record.Level, &snapshot, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadSnapshot, err)
	}
	record.Snapshot = []byte(snapshot)
	return &record, nil
}

// DeleteSnapshot removes the record for a session
func (r *SaveRepository) DeleteSnapshot(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM saves WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteSnapshot, err)
	}
	return nil
}

// ListSaves returns every record without its snapshot, most recent first
func (r *SaveRepository) ListSaves(ctx context.Context) ([]domain.SaveRecord, error) {
	query := `
		SELECT session_id, character_name, level, updated_at
		FROM saves
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListSaves, err)
	}
	defer rows.Close()

	var saves []domain.SaveRecord
	for rows.Next() {
		var record domain.SaveRecord
		if err := rows.Scan(&record.SessionID, &record.CharacterName, &record.Level, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextListSaves, err)
		}
		saves = append(saves, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListSaves, err)
	}
	return saves, nil
}
