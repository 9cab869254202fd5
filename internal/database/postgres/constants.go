package postgres

// Error context strings
const (
	ErrContextSaveSnapshot   = "failed to save snapshot"
	ErrContextLoadSnapshot   = "failed to load snapshot"
	ErrContextDeleteSnapshot = "failed to delete snapshot"
	ErrContextListSaves      = "failed to list saves"
)

// Event log error context strings
const (
	ErrContextLogEvent      = "failed to log event"
	ErrContextGetEvents     = "failed to get events"
	ErrContextCleanupEvents = "failed to clean up events"
)
