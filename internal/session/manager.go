package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SoulCrawler_Go/internal/character"
	"github.com/osse101/SoulCrawler_Go/internal/combat"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/economy"
	"github.com/osse101/SoulCrawler_Go/internal/encounter"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
	"github.com/osse101/SoulCrawler_Go/internal/loot"
	"github.com/osse101/SoulCrawler_Go/internal/repository"
	"github.com/osse101/SoulCrawler_Go/internal/snapshot"
	"github.com/osse101/SoulCrawler_Go/internal/utils"
)

// Default cache settings
const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 30 * time.Minute
)

// Options configures a Manager. Roster, Loot and Saves are required.
type Options struct {
	Roster *encounter.Roster
	Loot   *loot.Table
	Shop   *economy.Shop // nil uses the starter catalog
	Bus    event.Bus     // nil drops events
	Saves  repository.Save

	// Seed seeds each session's random source. Zero seeds from the clock.
	Seed int64

	CacheSize int
	CacheTTL  time.Duration
}

// Manager creates, caches, saves and restores sessions. Its methods are safe for
// concurrent use; the sessions it hands out are not.
type Manager struct {
	roster *encounter.Roster
	loot   *loot.Table
	shop   *economy.Shop
	bus    event.Bus
	saves  repository.Save
	seed   int64
	cache  *sessionCache
}

// NewManager validates opts and returns a Manager.
func NewManager(opts Options) (*Manager, error) {
	switch {
	case opts.Roster == nil:
		return nil, fmt.Errorf(ErrMsgNilDependencyFmt, "a monster roster")
	case opts.Loot == nil:
		return nil, fmt.Errorf(ErrMsgNilDependencyFmt, "a loot table")
	case opts.Saves == nil:
		return nil, fmt.Errorf(ErrMsgNilDependencyFmt, "a save repository")
	}

	if opts.Shop == nil {
		opts.Shop = economy.DefaultShop()
	}
	if opts.Bus == nil {
		opts.Bus = event.Nop{}
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}

	return &Manager{
		roster: opts.Roster,
		loot:   opts.Loot,
		shop:   opts.Shop,
		bus:    opts.Bus,
		saves:  opts.Saves,
		seed:   opts.Seed,
		cache:  newSessionCache(opts.CacheSize, opts.CacheTTL),
	}, nil
}

// New creates a level 1 character named name and caches its session.
func (m *Manager) New(ctx context.Context, name string) (*Session, error) {
	c, err := character.New(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextNewSession, err)
	}

	s, err := m.newSession(uuid.New(), c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextNewSession, err)
	}
	m.cache.Set(s)

	logger.FromContext(s.context(ctx)).Info(LogMsgSessionCreated, LogFieldCharacter, c.Name, LogFieldSeed, m.seed)
	return s, nil
}

// Get returns a cached session, or domain.ErrSessionNotFound.
func (m *Manager) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}

// Save writes a snapshot of the cached session's character.
func (m *Manager) Save(ctx context.Context, id uuid.UUID) error {
	s, err := m.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}

	data, err := s.Snapshot().Encode()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}

	record := domain.SaveRecord{
		SessionID:     id,
		CharacterName: s.Character.Name,
		Level:         s.Character.Level,
		Snapshot:      data,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := m.saves.SaveSnapshot(ctx, record); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}

	logger.FromContext(s.context(ctx)).Info(LogMsgSessionSaved, LogFieldCharacter, record.CharacterName, LogFieldLevel, record.Level)
	return nil
}

// Load restores a saved session and caches it, replacing any cached copy. A stored
// snapshot that fails validation returns domain.ErrMalformedSnapshot and leaves the
// cache untouched.
func (m *Manager) Load(ctx context.Context, id uuid.UUID) (*Session, error) {
	ctx = logger.WithSessionID(ctx, id.String())
	log := logger.FromContext(ctx)

	record, err := m.saves.LoadSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadSession, err)
	}

	snap, err := snapshot.Decode(record.Snapshot)
	if err != nil {
		log.Warn(LogMsgLoadRejected, LogFieldError, err)
		return nil, fmt.Errorf("%s: %w", ErrContextLoadSession, err)
	}
	c, err := snapshot.Restore(snap)
	if err != nil {
		log.Warn(LogMsgLoadRejected, LogFieldError, err)
		return nil, fmt.Errorf("%s: %w", ErrContextLoadSession, err)
	}

	s, err := m.newSession(id, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadSession, err)
	}
	m.cache.Set(s)

	log.Info(LogMsgSessionLoaded, LogFieldCharacter, c.Name, LogFieldLevel, c.Level)
	return s, nil
}

// Delete drops the session from the cache and from storage.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	m.cache.Invalidate(id)
	if err := m.saves.DeleteSnapshot(ctx, id); err != nil {
		return err
	}
	logger.FromContext(logger.WithSessionID(ctx, id.String())).Info(LogMsgSessionDeleted)
	return nil
}

// List returns the stored saves, most recent first.
func (m *Manager) List(ctx context.Context) ([]domain.SaveRecord, error) {
	return m.saves.ListSaves(ctx)
}

// Active returns the number of cached sessions.
func (m *Manager) Active() int {
	return m.cache.Len()
}

// newSession gives each session its own random source, since *rand.Rand is not safe
// for concurrent use.
func (m *Manager) newSession(id uuid.UUID, c *domain.Character) (*Session, error) {
	rng := utils.NewRoller(m.seed)
	selector, err := encounter.NewSelector(m.roster, rng)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		Character: c,
		resolver:  combat.NewResolver(rng, selector, m.loot, m.bus),
		shop:      m.shop,
		bus:       m.bus,
	}, nil
}
