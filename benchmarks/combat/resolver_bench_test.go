package combat_bench

import (
	"context"
	"testing"

	"github.com/osse101/SoulCrawler_Go/internal/character"
	"github.com/osse101/SoulCrawler_Go/internal/combat"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/encounter"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/loot"
	"github.com/osse101/SoulCrawler_Go/internal/metrics"
	"github.com/osse101/SoulCrawler_Go/internal/snapshot"
	"github.com/osse101/SoulCrawler_Go/internal/utils"
)

// StubBus implements event.Bus without doing any work
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func newResolver(b *testing.B, bus event.Bus) *combat.Resolver {
	b.Helper()
	rng := utils.NewRoller(1)
	roster, err := encounter.DefaultRoster()
	if err != nil {
		b.Fatalf("DefaultRoster failed: %v", err)
	}
	selector, err := encounter.NewSelector(roster, rng)
	if err != nil {
		b.Fatalf("NewSelector failed: %v", err)
	}
	table, err := loot.Default()
	if err != nil {
		b.Fatalf("loot.Default failed: %v", err)
	}
	return combat.NewResolver(rng, selector, table, bus)
}

// sturdyCharacter never dies, so every iteration fights a full encounter.
func sturdyCharacter(b *testing.B) *domain.Character {
	b.Helper()
	c, err := character.New("bench")
	if err != nil {
		b.Fatalf("character.New failed: %v", err)
	}
	c.MaxHealth, c.Health = 1_000_000, 1_000_000
	return c
}

func benchmarkEncounters(b *testing.B, bus event.Bus) {
	resolver := newResolver(b, bus)
	c := sturdyCharacter(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc, err := resolver.StartEncounter(ctx, c)
		if err != nil {
			b.Fatalf("StartEncounter failed: %v", err)
		}
		for !enc.IsOver() {
			if _, err := resolver.ResolveAttackExchange(ctx, c, enc); err != nil {
				b.Fatalf("ResolveAttackExchange failed: %v", err)
			}
		}
		// Keep the pool at the starting tier and the inventory small.
		c.DefeatedEnemies = 0
		c.Inventory = c.Inventory[:0]
	}
}

// BenchmarkEncounter_NoSubscribers measures the combat rules alone.
func BenchmarkEncounter_NoSubscribers(b *testing.B) {
	benchmarkEncounters(b, &StubBus{})
}

// BenchmarkEncounter_WithMetrics includes the metrics subscriber on a real bus.
func BenchmarkEncounter_WithMetrics(b *testing.B) {
	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)
	benchmarkEncounters(b, bus)
}

// BenchmarkSnapshotRoundTrip measures capture, encode, decode and restore.
func BenchmarkSnapshotRoundTrip(b *testing.B) {
	c := sturdyCharacter(b)
	c.MaxHealth, c.Health = 100, 100

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := snapshot.Capture(c).Encode()
		if err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
		s, err := snapshot.Decode(data)
		if err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
		if _, err := snapshot.Restore(s); err != nil {
			b.Fatalf("Restore failed: %v", err)
		}
	}
}
