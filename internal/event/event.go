package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Game event types
const (
	EncounterStarted  Type = domain.EventTypeEncounterStarted
	AttackResolved    Type = domain.EventTypeAttackResolved
	MonsterDefeated   Type = domain.EventTypeMonsterDefeated
	CharacterDefeated Type = domain.EventTypeCharacterDefeated
	EncounterFled     Type = domain.EventTypeEncounterFled
	LootDropped       Type = domain.EventTypeLootDropped
	LevelUp           Type = domain.EventTypeLevelUp
	ItemSold          Type = domain.EventTypeItemSold
	ItemBought        Type = domain.EventTypeItemBought
	ItemUsed          Type = domain.EventTypeItemUsed
)

// AllTypes lists every game event type, for subscribers that want the full stream.
var AllTypes = []Type{
	EncounterStarted, AttackResolved, MonsterDefeated, CharacterDefeated, EncounterFled,
	LootDropped, LevelUp, ItemSold, ItemBought, ItemUsed,
}

func newEvent(eventType Type, sessionID string, payload interface{}) Event {
	var metadata Metadata
	if sessionID != "" {
		metadata = Metadata{MetadataKeySessionID: sessionID}
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     eventType,
		Payload:  payload,
		Metadata: metadata,
	}
}

// Type-safe event constructors

// NewEncounterStartedEvent creates an encounter.started event
func NewEncounterStartedEvent(p domain.EncounterStartedPayload) Event {
	return newEvent(EncounterStarted, p.SessionID, p)
}

// NewAttackResolvedEvent creates a combat.attack event
func NewAttackResolvedEvent(p domain.AttackResolvedPayload) Event {
	return newEvent(AttackResolved, p.SessionID, p)
}

// NewMonsterDefeatedEvent creates a monster.defeated event
func NewMonsterDefeatedEvent(p domain.MonsterDefeatedPayload) Event {
	return newEvent(MonsterDefeated, p.SessionID, p)
}

// NewCharacterDefeatedEvent creates a character.defeated event
func NewCharacterDefeatedEvent(p domain.CharacterDefeatedPayload) Event {
	return newEvent(CharacterDefeated, p.SessionID, p)
}

// NewEncounterFledEvent creates an encounter.fled event
func NewEncounterFledEvent(p domain.EncounterFledPayload) Event {
	return newEvent(EncounterFled, p.SessionID, p)
}

// NewLootDroppedEvent creates a loot.dropped event
func NewLootDroppedEvent(p domain.LootDroppedPayload) Event {
	return newEvent(LootDropped, p.SessionID, p)
}

// NewLevelUpEvent creates a character.level_up event
func NewLevelUpEvent(p domain.LevelUpPayload) Event {
	return newEvent(LevelUp, p.SessionID, p)
}

// NewItemSoldEvent creates an item.sold event
func NewItemSoldEvent(p domain.ItemSoldPayload) Event {
	return newEvent(ItemSold, p.SessionID, p)
}

// NewItemBoughtEvent creates an item.bought event
func NewItemBoughtEvent(p domain.ItemBoughtPayload) Event {
	return newEvent(ItemBought, p.SessionID, p)
}

// NewItemUsedEvent creates an item.used event
func NewItemUsedEvent(p domain.ItemUsedPayload) Event {
	return newEvent(ItemUsed, p.SessionID, p)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously, in subscription order.
// All handlers run even when one fails; their errors are combined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Nop is a Bus that drops every event.
type Nop struct{}

// Publish discards the event.
func (Nop) Publish(context.Context, Event) error { return nil }

// Subscribe ignores the handler.
func (Nop) Subscribe(Type, Handler) {}
