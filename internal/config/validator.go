package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/SoulCrawler_Go/internal/logger"
)

var validLogLevels = map[string]bool{
	logger.LogLevelDebug:   true,
	logger.LogLevelInfo:    true,
	logger.LogLevelWarn:    true,
	logger.LogLevelWarning: true,
	logger.LogLevelError:   true,
}

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	var errs []error

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("%s must be one of debug, info, warn, error (got %q)", EnvLogLevel, c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case logger.LogFormatJSON, logger.LogFormatText:
	default:
		errs = append(errs, fmt.Errorf("%s must be json or text (got %q)", EnvLogFormat, c.LogFormat))
	}
	if c.SessionCacheSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive (got %d)", EnvSessionCacheSize, c.SessionCacheSize))
	}
	if c.SessionCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive (got %s)", EnvSessionCacheTTL, c.SessionCacheTTL))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive (got %d)", EnvDBMaxConns, c.DBMaxConns))
	}
	if c.EventLogRetentionDays < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1 (got %d)", EnvEventLogRetention, c.EventLogRetentionDays))
	}
	if c.UsesDatabase() && !strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		errs = append(errs, fmt.Errorf("%s must be a postgres:// URL", EnvDatabaseURL))
	}
	for key, path := range map[string]string{EnvLootTablesPath: c.LootTablesPath, EnvMonstersPath: c.MonstersPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Warnings returns non-fatal notes about settings that are valid but unusual
func (c *Config) Warnings() []string {
	var warnings []string
	if c.RNGSeed != 0 && c.Environment == logger.EnvironmentProduction {
		warnings = append(warnings, fmt.Sprintf("%s is fixed in production; every session will replay the same rolls", EnvRNGSeed))
	}
	if !c.UsesDatabase() {
		warnings = append(warnings, fmt.Sprintf("%s is not set; saves are kept in memory and lost on exit", EnvDatabaseURL))
	}
	return warnings
}
