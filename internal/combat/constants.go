package combat

// Combat tuning
const (
	// DefenseFactor scales the defender's defense before it is subtracted from an attack.
	DefenseFactor = 0.5

	// MinimumDamage is the floor for every hit.
	MinimumDamage = 1

	// FleeChance is the probability that a flee attempt succeeds.
	FleeChance = 0.5
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEncounterStarted   = "Encounter started"
	LogMsgPlayerHit          = "Player attack resolved"
	LogMsgMonsterHit         = "Monster attack resolved"
	LogMsgMonsterDefeated    = "Monster defeated"
	LogMsgCharacterDefeated  = "Character defeated"
	LogMsgLootDropped        = "Loot dropped"
	LogMsgLevelUp            = "Character leveled up"
	LogMsgFleeAttempt        = "Flee attempted"
	LogMsgEventPublishFailed = "Failed to publish combat event"
)

// Log field keys for structured logging
const (
	LogFieldMonster  = "monster"
	LogFieldVariant  = "variant"
	LogFieldDamage   = "damage"
	LogFieldCritical = "critical"
	LogFieldEnraged  = "enraged"
	LogFieldHealth   = "health"
	LogFieldItem     = "item"
	LogFieldRarity   = "rarity"
	LogFieldLevel    = "level"
	LogFieldEscaped  = "escaped"
	LogFieldEvent    = "event"
	LogFieldError    = "error"
)
