package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoulCrawler_Go/internal/combat"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
	"github.com/osse101/SoulCrawler_Go/internal/repository"
)

// captured records every event published on a bus.
type captured struct {
	events []event.Event
}

func captureEvents(bus *event.MemoryBus) *captured {
	c := &captured{}
	for _, t := range event.AllTypes {
		bus.Subscribe(t, func(_ context.Context, evt event.Event) error {
			c.events = append(c.events, evt)
			return nil
		})
	}
	return c
}

func (c *captured) ofType(t event.Type) []event.Event {
	var out []event.Event
	for _, evt := range c.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func newTestSession(t *testing.T) (*Session, *captured) {
	t.Helper()
	bus := event.NewMemoryBus()
	rec := captureEvents(bus)
	m := newTestManager(t, repository.NewMemorySave(), bus, 3)
	s, err := m.New(context.Background(), "Aria")
	require.NoError(t, err)
	return s, rec
}

func TestSession_AttackWithoutEncounter(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Attack(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoEncounter)
	_, err = s.Flee(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoEncounter)
}

func TestSession_ExploreWhileFighting(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestSession(t)

	enc, err := s.Explore(ctx)
	require.NoError(t, err)
	assert.Equal(t, combat.StateExchange, enc.State)
	assert.Same(t, enc, s.Encounter)

	_, err = s.Explore(ctx)
	assert.ErrorIs(t, err, domain.ErrEncounterActive)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	started := rec.ofType(event.EncounterStarted)
	require.Len(t, started, 1)
	assert.Equal(t, s.ID.String(), started[0].GetMetadataValue(event.MetadataKeySessionID))
}

func TestSession_FightToTheEnd(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)

	_, err := s.Explore(ctx)
	require.NoError(t, err)
	for !s.Encounter.IsOver() {
		_, err := s.Attack(ctx)
		require.NoError(t, err)
	}

	_, err = s.Attack(ctx)
	assert.ErrorIs(t, err, domain.ErrEncounterOver)

	if s.Encounter.State == combat.StateVictory {
		_, err = s.Explore(ctx)
		assert.NoError(t, err, "a finished encounter frees the character to explore")
	}
}

func TestSession_DefeatIsFinal(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	_, err := s.Buy(ctx, 0)
	require.NoError(t, err)

	s.Character.Attack = 0
	s.Character.Health = 1
	_, err = s.Explore(ctx)
	require.NoError(t, err)
	result, err := s.Attack(ctx)
	require.NoError(t, err)
	require.Equal(t, combat.StateDefeat, result.State)
	require.Equal(t, 0, s.Character.Health)

	_, err = s.Use(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
	_, err = s.Equip(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
	_, err = s.Unequip(ctx, domain.SlotWeapon, "")
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
	_, err = s.Sell(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
	_, err = s.Buy(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)

	assert.Equal(t, 0, s.Character.Health)
	assert.Len(t, s.Character.Inventory, 1)

	_, err = s.Explore(ctx)
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
}

func TestSession_ShopClosedDuringEncounter(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	_, err := s.Buy(ctx, 0)
	require.NoError(t, err)

	_, err = s.Explore(ctx)
	require.NoError(t, err)

	_, err = s.Buy(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrEncounterActive)
	_, err = s.Sell(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrEncounterActive)

	// Potions still work mid-fight
	s.Character.Health = 40
	result, err := s.Use(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 60, result.Amount)
}

func TestSession_BuyUseSellPublishEvents(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestSession(t)
	startingGold := s.Character.Gold

	bought, err := s.Buy(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, startingGold-bought.GoldSpent, s.Character.Gold)

	_, err = s.Buy(ctx, 0)
	require.NoError(t, err)

	s.Character.Health = 50
	_, err = s.Use(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, s.Character.MaxHealth, s.Character.Health)

	sold, err := s.Sell(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, s.Character.Inventory)

	require.Len(t, rec.ofType(event.ItemBought), 2)
	used := rec.ofType(event.ItemUsed)
	require.Len(t, used, 1)
	payload, err := event.DecodePayload[domain.ItemUsedPayload](used[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 50, payload.Amount)
	assert.Equal(t, domain.AttrHealth, payload.Attribute)

	soldEvents := rec.ofType(event.ItemSold)
	require.Len(t, soldEvents, 1)
	soldPayload, err := event.DecodePayload[domain.ItemSoldPayload](soldEvents[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, sold.GoldGained, soldPayload.Gold)
	assert.Equal(t, s.ID.String(), soldPayload.SessionID)
}

func TestSession_EquipAndUnequip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	s.Character.Gold = 1000

	_, err := s.Buy(ctx, 1) // Iron Longsword
	require.NoError(t, err)

	result, err := s.Equip(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, result.Displaced)
	require.NotNil(t, s.Character.Equipment.Weapon)
	assert.Empty(t, s.Character.Inventory)

	item, err := s.Unequip(ctx, domain.SlotWeapon, "")
	require.NoError(t, err)
	assert.Equal(t, result.Equipped, *item)
	assert.Nil(t, s.Character.Equipment.Weapon)
	assert.Equal(t, []domain.Item{result.Equipped}, s.Character.Inventory)

	_, err = s.Unequip(ctx, domain.SlotWeapon, "")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestSession_SnapshotIsDetached(t *testing.T) {
	s, _ := newTestSession(t)

	snap := s.Snapshot()
	s.Character.Gold = 0

	assert.Equal(t, domain.StartingGold, snap.Gold)
	assert.Equal(t, "Aria", snap.Name)
}

func TestSession_ContextCarriesSessionID(t *testing.T) {
	s, _ := newTestSession(t)

	id, ok := logger.SessionIDFromContext(s.context(context.Background()))
	require.True(t, ok)
	assert.Equal(t, s.ID.String(), id)
}

func TestSession_Listings(t *testing.T) {
	s, _ := newTestSession(t)

	listings := s.Listings()
	require.NotEmpty(t, listings)
	assert.Equal(t, 20, listings[0].Price)
}
