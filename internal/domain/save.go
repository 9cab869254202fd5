package domain

import (
	"time"

	"github.com/google/uuid"
)

// SaveRecord is a stored character snapshot. Snapshot holds the encoded bytes so a
// corrupt save is detected when it is decoded, not when it is read.
type SaveRecord struct {
	SessionID     uuid.UUID `json:"session_id"`
	CharacterName string    `json:"character_name"`
	Level         int       `json:"level"`
	Snapshot      []byte    `json:"snapshot"`
	UpdatedAt     time.Time `json:"updated_at"`
}
