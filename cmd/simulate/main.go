// Command simulate plays a SoulCrawler session on autopilot and prints a summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SoulCrawler_Go/internal/config"
	"github.com/osse101/SoulCrawler_Go/internal/database"
	"github.com/osse101/SoulCrawler_Go/internal/database/postgres"
	"github.com/osse101/SoulCrawler_Go/internal/encounter"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/eventlog"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
	"github.com/osse101/SoulCrawler_Go/internal/loot"
	"github.com/osse101/SoulCrawler_Go/internal/metrics"
	"github.com/osse101/SoulCrawler_Go/internal/repository"
	"github.com/osse101/SoulCrawler_Go/internal/session"
	"github.com/osse101/SoulCrawler_Go/internal/validation"
)

// Database pool lifetimes for the short-lived simulator
const (
	dbMaxIdle = 5 * time.Minute
	dbMaxLife = 30 * time.Minute
)

// historyLines is how many journal entries the summary ends with.
const historyLines = 8

func main() {
	encounters := flag.Int("encounters", 25, "number of encounters to play")
	seed := flag.Int64("seed", 0, "random seed (overrides RNG_SEED; 0 keeps the configured seed)")
	name := flag.String("name", "wanderer", "character name")
	resume := flag.String("resume", "", "session id of a save to continue")
	flag.Parse()

	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.RNGSeed = *seed
	}
	logger.InitLogger(cfg.Logger())

	if err := run(context.Background(), cfg, *name, *resume, *encounters); err != nil {
		logger.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, name, resume string, encounters int) error {
	for _, w := range cfg.Warnings() {
		logger.Warn("Configuration warning", "warning", w)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	journal := eventlog.NewService(st.journal)
	if cfg.UsesDatabase() {
		if err := eventlog.NewCleanupJob(journal, cfg.EventLogRetentionDays).Process(ctx); err != nil {
			logger.Warn("Journal cleanup skipped", "error", err)
		}
	}

	manager, err := newManager(cfg, st.saves, journal)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, manager, name, resume)
	if err != nil {
		return err
	}

	t, err := newAutopilot(s).run(ctx, encounters)
	if err != nil {
		return fmt.Errorf("autopilot stopped: %w", err)
	}

	if err := manager.Save(ctx, s.ID); err != nil {
		return err
	}

	printSummary(os.Stdout, s.ID.String(), s.Character, t)

	history, err := journal.History(ctx, s.ID.String(), historyLines)
	if err != nil {
		return err
	}
	printHistory(os.Stdout, history)
	return nil
}

func newManager(cfg *config.Config, saves repository.Save, journal eventlog.Service) (*session.Manager, error) {
	validator := validation.NewSchemaValidator()

	roster, err := loadRoster(cfg, validator)
	if err != nil {
		return nil, err
	}
	table, err := loadLootTable(cfg, validator)
	if err != nil {
		return nil, err
	}

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)
	if err := journal.Subscribe(bus); err != nil {
		return nil, err
	}

	return session.NewManager(session.Options{
		Roster:    roster,
		Loot:      table,
		Bus:       bus,
		Saves:     saves,
		Seed:      cfg.RNGSeed,
		CacheSize: cfg.SessionCacheSize,
		CacheTTL:  cfg.SessionCacheTTL,
	})
}

// loadRoster reads MONSTERS_PATH when set and the bundled roster otherwise.
func loadRoster(cfg *config.Config, validator validation.SchemaValidator) (*encounter.Roster, error) {
	if cfg.MonstersPath != "" {
		return encounter.LoadRosterFile(cfg.MonstersPath, validator)
	}
	return encounter.DefaultRoster()
}

// loadLootTable reads LOOT_TABLES_PATH when set and the bundled tables otherwise.
func loadLootTable(cfg *config.Config, validator validation.SchemaValidator) (*loot.Table, error) {
	if cfg.LootTablesPath != "" {
		return loot.LoadFile(cfg.LootTablesPath, validator)
	}
	return loot.Default()
}

// stores holds the persistence backends chosen by configuration.
type stores struct {
	saves   repository.Save
	journal eventlog.Repository
	close   func()
}

// openStores picks Postgres when DATABASE_URL is set, memory otherwise.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if !cfg.UsesDatabase() {
		return &stores{
			saves:   repository.NewMemorySave(),
			journal: eventlog.NewMemoryRepository(),
			close:   func() {},
		}, nil
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		saves:   postgres.NewSaveRepository(pool),
		journal: postgres.NewEventLogRepository(pool),
		close:   pool.Close,
	}, nil
}

func openSession(ctx context.Context, manager *session.Manager, name, resume string) (*session.Session, error) {
	if resume == "" {
		return manager.New(ctx, name)
	}

	id, err := uuid.Parse(resume)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", resume, err)
	}
	return manager.Load(ctx, id)
}
