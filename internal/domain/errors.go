package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidConstruction = "invalid construction"
	ErrMsgInvalidOperation    = "invalid operation"
	ErrMsgMalformedSnapshot   = "malformed snapshot"

	ErrMsgNotEquipment      = "item is not equipment"
	ErrMsgNotConsumable     = "item is not consumable"
	ErrMsgIndexOutOfRange   = "inventory index out of range"
	ErrMsgSlotEmpty         = "equipment slot is empty"
	ErrMsgNoEncounter       = "no active encounter"
	ErrMsgEncounterOver     = "encounter is over"
	ErrMsgEncounterActive   = "an encounter is already active"
	ErrMsgCharacterDefeated = "character has been defeated"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgSessionNotFound   = "session not found"
)

// The three error kinds. Every refinement below wraps one of them, so callers can
// branch on the kind with errors.Is and on the detail with the refinement.
var (
	ErrInvalidConstruction = errors.New(ErrMsgInvalidConstruction)
	ErrInvalidOperation    = errors.New(ErrMsgInvalidOperation)
	ErrMalformedSnapshot   = errors.New(ErrMsgMalformedSnapshot)
)

// Invalid operation refinements
var (
	ErrNotEquipment      = invalidOperation(ErrMsgNotEquipment)
	ErrNotConsumable     = invalidOperation(ErrMsgNotConsumable)
	ErrIndexOutOfRange   = invalidOperation(ErrMsgIndexOutOfRange)
	ErrSlotEmpty         = invalidOperation(ErrMsgSlotEmpty)
	ErrNoEncounter       = invalidOperation(ErrMsgNoEncounter)
	ErrEncounterOver     = invalidOperation(ErrMsgEncounterOver)
	ErrEncounterActive   = invalidOperation(ErrMsgEncounterActive)
	ErrCharacterDefeated = invalidOperation(ErrMsgCharacterDefeated)
	ErrInsufficientFunds = invalidOperation(ErrMsgInsufficientFunds)
)

// ErrSessionNotFound is returned by session lookups and save stores.
var ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

func invalidOperation(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, msg)
}
