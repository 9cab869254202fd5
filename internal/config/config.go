package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/SoulCrawler_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	LogLevel     string
	LogFormat    string
	LogAddSource bool
	Environment  string
	ServiceName  string
	Version      string

	// RNGSeed seeds every game roll. Zero draws a seed from the clock.
	RNGSeed int64

	SessionCacheSize int
	SessionCacheTTL  time.Duration

	// DatabaseURL selects Postgres saves. Empty keeps saves in memory.
	DatabaseURL string
	DBMaxConns  int

	// Optional overrides of the bundled game data
	LootTablesPath string
	MonstersPath   string

	// EventLogRetentionDays is how long journal entries are kept in Postgres.
	EventLogRetentionDays int
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		LogAddSource:     getEnvAsBool(EnvLogAddSource, false),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, DefaultVersion),
		RNGSeed:          getEnvAsInt64(EnvRNGSeed, 0),
		SessionCacheSize: getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionCacheTTL:  getEnvAsDuration(EnvSessionCacheTTL, DefaultSessionCacheTTL),
		DatabaseURL:      getEnv(EnvDatabaseURL, ""),
		DBMaxConns:       getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		LootTablesPath:   getEnv(EnvLootTablesPath, ""),
		MonstersPath:     getEnv(EnvMonstersPath, ""),

		EventLogRetentionDays: getEnvAsInt(EnvEventLogRetention, DefaultEventLogRetention),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.LogAddSource)
}

// UsesDatabase reports whether saves go to Postgres
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 retrieves a 64-bit integer environment variable, falling back on parse errors
func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration environment variable, falling back on parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves a boolean environment variable, falling back on parse errors
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
