package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeEncounterStarted is published when a live monster enters the fight
	EventTypeEncounterStarted = "encounter.started"

	// EventTypeAttackResolved is published for every hit, by either side
	EventTypeAttackResolved = "combat.attack"

	// EventTypeMonsterDefeated is published when a monster reaches zero health
	EventTypeMonsterDefeated = "monster.defeated"

	// EventTypeCharacterDefeated is published when the character reaches zero health
	EventTypeCharacterDefeated = "character.defeated"

	// EventTypeEncounterFled is published for every flee attempt
	EventTypeEncounterFled = "encounter.fled"

	// EventTypeLootDropped is published when a victory grants an item
	EventTypeLootDropped = "loot.dropped"

	// EventTypeLevelUp is published once per level gained
	EventTypeLevelUp = "character.level_up"

	// EventTypeItemSold is published when an item is sold to the shop
	EventTypeItemSold = "item.sold"

	// EventTypeItemBought is published when an item is bought from the shop
	EventTypeItemBought = "item.bought"

	// EventTypeItemUsed is published when a consumable item is used
	EventTypeItemUsed = "item.used"
)

// ItemUsedPayload is the event payload for item.used events
type ItemUsedPayload struct {
	SessionID string    `json:"session_id,omitempty"`
	ItemName  string    `json:"item_name"`
	Attribute Attribute `json:"attribute"`
	Amount    int       `json:"amount"`
}
