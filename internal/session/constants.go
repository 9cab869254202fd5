package session

// CacheSchemaVersion is the current version of the cached session layout.
// Increment this when Session changes shape to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Error context strings
const (
	ErrContextNewSession   = "failed to create session"
	ErrContextSaveSession  = "failed to save session"
	ErrContextLoadSession  = "failed to load session"
	ErrMsgNilDependencyFmt = "session manager requires %s"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSessionCreated     = "Session created"
	LogMsgSessionSaved       = "Session saved"
	LogMsgSessionLoaded      = "Session loaded"
	LogMsgSessionDeleted     = "Session deleted"
	LogMsgLoadRejected       = "Stored snapshot rejected"
	LogMsgItemEquipped       = "Item equipped"
	LogMsgItemUnequipped     = "Item unequipped"
	LogMsgItemUsed           = "Item used"
	LogMsgItemSold           = "Item sold"
	LogMsgItemBought         = "Item bought"
	LogMsgEventPublishFailed = "Failed to publish session event"
)

// Log field keys
const (
	LogFieldCharacter = "character"
	LogFieldLevel     = "level"
	LogFieldItem      = "item"
	LogFieldSlot      = "slot"
	LogFieldAmount    = "amount"
	LogFieldGold      = "gold"
	LogFieldSeed      = "seed"
	LogFieldEvent     = "event"
	LogFieldError     = "error"
)
