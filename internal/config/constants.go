package config

import "time"

// Environment variable names
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogAddSource      = "LOG_ADD_SOURCE"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvRNGSeed           = "RNG_SEED"
	EnvSessionCacheSize  = "SESSION_CACHE_SIZE"
	EnvSessionCacheTTL   = "SESSION_CACHE_TTL"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvLootTablesPath    = "LOOT_TABLES_PATH"
	EnvMonstersPath      = "MONSTERS_PATH"
	EnvEventLogRetention = "EVENT_LOG_RETENTION_DAYS"
)

// Defaults
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "soulcrawler"
	DefaultVersion           = "dev"
	DefaultSessionCacheSize  = 128
	DefaultSessionCacheTTL   = 30 * time.Minute
	DefaultDBMaxConns        = 4
	DefaultEventLogRetention = 30 // days
)
