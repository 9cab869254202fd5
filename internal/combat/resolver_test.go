package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoulCrawler_Go/internal/character"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/encounter"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
	"github.com/osse101/SoulCrawler_Go/internal/loot"
	"github.com/osse101/SoulCrawler_Go/internal/utils"
)

// recorder collects every published event type in order.
type recorder struct {
	types []event.Type
}

func (r *recorder) subscribe(bus *event.MemoryBus) {
	for _, t := range event.AllTypes {
		bus.Subscribe(t, func(_ context.Context, evt event.Event) error {
			r.types = append(r.types, evt.Type)
			return nil
		})
	}
}

func newTestResolver(t *testing.T, rng utils.Roller) (*Resolver, *recorder) {
	t.Helper()
	roster, err := encounter.DefaultRoster()
	require.NoError(t, err)
	selector, err := encounter.NewSelector(roster, rng)
	require.NoError(t, err)
	table, err := loot.Default()
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	rec := &recorder{}
	rec.subscribe(bus)
	return NewResolver(rng, selector, table, bus), rec
}

func newTestCharacter(t *testing.T) *domain.Character {
	t.Helper()
	c, err := character.New("tester")
	require.NoError(t, err)
	return c
}

func skeleton() *domain.Monster {
	return &domain.Monster{Name: "Rotting Skeleton", Variant: domain.VariantNormal, Health: 50, InitialHealth: 50, Attack: 10, Defense: 3, Souls: 10, Gold: 5}
}

func boss(health int) *domain.Monster {
	return &domain.Monster{
		Name: "Warden", Variant: domain.VariantBoss, Health: health, InitialHealth: 100,
		Attack: 20, Defense: 0, Souls: 60, Gold: 40, Skills: []string{domain.SkillEnrage}, Enrage: domain.DefaultEnrage(),
	}
}

func TestResolveAttackExchange_DocumentedExample(t *testing.T) {
	rng := &utils.Scripted{Floats: []float64{0.99}}
	resolver, _ := newTestResolver(t, rng)
	c := newTestCharacter(t)
	enc := NewEncounter(skeleton())

	result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
	require.NoError(t, err)

	assert.Equal(t, 13, result.PlayerHit.Damage)
	assert.False(t, result.PlayerHit.Critical)
	assert.Equal(t, 37, enc.Monster.Health)

	require.NotNil(t, result.MonsterHit)
	assert.Equal(t, 7, result.MonsterHit.Damage)
	assert.Equal(t, 93, c.Health)
	assert.Equal(t, StateExchange, result.State)
	assert.Nil(t, result.Rewards)
	assert.Equal(t, 1, enc.Turns)
}

func TestResolveAttackExchange_CriticalHit(t *testing.T) {
	resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.01}})
	c := newTestCharacter(t)
	enc := NewEncounter(skeleton())

	result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
	require.NoError(t, err)

	assert.True(t, result.PlayerHit.Critical)
	assert.Equal(t, 21, result.PlayerHit.Damage)
}

func TestResolveAttackExchange_CriticalChanceIncludesEquipment(t *testing.T) {
	// 0.07 misses the base 5% but lands under 5% + 3% from the charm.
	resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.07}})
	c := newTestCharacter(t)
	charm := domain.Item{Name: "Charm", Kind: domain.KindEquipment, Slot: domain.SlotAccessory, AccessoryType: "charm", CriticalChance: 3, Rarity: domain.RarityCommon}
	c.Equipment.Set(domain.SlotAccessory, "charm", &charm)

	result, err := resolver.ResolveAttackExchange(context.Background(), c, NewEncounter(skeleton()))
	require.NoError(t, err)

	assert.True(t, result.PlayerHit.Critical)
}

func TestResolveAttackExchange_Lifesteal(t *testing.T) {
	resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.99}})
	c := newTestCharacter(t)
	c.Lifesteal = 50
	c.Health = 50

	result, err := resolver.ResolveAttackExchange(context.Background(), c, NewEncounter(skeleton()))
	require.NoError(t, err)

	assert.Equal(t, 6, result.PlayerHit.Healed)
	assert.Equal(t, 49, c.Health, "50 + 6 healed - 7 taken")
}

func TestResolveAttackExchange_VictoryWithLoot(t *testing.T) {
	// no critical, loot drop hit, first common candidate, lowest health roll
	rng := &utils.Scripted{Floats: []float64{0.99, 0.1}, Ints: []int{0, 0}}
	resolver, rec := newTestResolver(t, rng)
	c := newTestCharacter(t)
	m := skeleton()
	m.Health = 5
	enc := NewEncounter(m)

	result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
	require.NoError(t, err)

	assert.Equal(t, StateVictory, result.State)
	assert.Equal(t, StateVictory, enc.State)
	assert.Nil(t, result.MonsterHit, "a dead monster does not answer")
	assert.Equal(t, 0, m.Health)

	require.NotNil(t, result.Rewards)
	assert.Equal(t, 10, result.Rewards.Souls)
	assert.Equal(t, 5, result.Rewards.Gold)
	require.NotNil(t, result.Rewards.Loot)
	assert.Equal(t, "Healing Draught", result.Rewards.Loot.Name)

	assert.Equal(t, 10, c.Exp)
	assert.Equal(t, 10, c.Souls)
	assert.Equal(t, 55, c.Gold)
	assert.Equal(t, 1, c.DefeatedEnemies)
	assert.Equal(t, 100, c.Health)
	require.Len(t, c.Inventory, 1)

	assert.Equal(t, []event.Type{event.AttackResolved, event.MonsterDefeated, event.LootDropped}, rec.types)
}

func TestResolveAttackExchange_VictoryWithoutLoot(t *testing.T) {
	resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.99, loot.DropChance}})
	c := newTestCharacter(t)
	m := skeleton()
	m.Health = 1

	result, err := resolver.ResolveAttackExchange(context.Background(), c, NewEncounter(m))
	require.NoError(t, err)

	assert.Nil(t, result.Rewards.Loot)
	assert.Empty(t, c.Inventory)
}

func TestResolveAttackExchange_VictoryLevelsUp(t *testing.T) {
	resolver, rec := newTestResolver(t, &utils.Scripted{Floats: []float64{0.99, 0.9}})
	c := newTestCharacter(t)
	c.Exp = 95
	c.Health = 20
	m := skeleton()
	m.Health = 1

	result, err := resolver.ResolveAttackExchange(context.Background(), c, NewEncounter(m))
	require.NoError(t, err)

	require.Len(t, result.Rewards.LevelUps, 1)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 5, c.Exp)
	assert.Equal(t, 150, c.ExpToNextLevel)
	assert.Equal(t, 120, c.Health)
	assert.Contains(t, rec.types, event.LevelUp)
}

func TestResolveAttackExchange_Defeat(t *testing.T) {
	rng := &utils.Scripted{Floats: []float64{0.99}}
	resolver, rec := newTestResolver(t, rng)
	c := newTestCharacter(t)
	c.Health = 3
	enc := NewEncounter(skeleton())

	result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
	require.NoError(t, err)

	assert.Equal(t, StateDefeat, result.State)
	assert.Equal(t, 0, c.Health, "health is clamped at zero")
	assert.Contains(t, rec.types, event.CharacterDefeated)

	_, err = resolver.ResolveAttackExchange(context.Background(), c, enc)
	assert.ErrorIs(t, err, domain.ErrEncounterOver)

	_, err = resolver.StartEncounter(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestMonsterAttack_EnrageBoundary(t *testing.T) {
	tests := []struct {
		name       string
		playerAtk  int
		bossHealth int
		enraged    bool
		damage     int
	}{
		{"exactly 30 percent is not enraged", 70, 30, false, 17},
		{"just below 30 percent enrages", 71, 29, true, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.99}})
			c := newTestCharacter(t)
			c.Attack = tt.playerAtk
			enc := NewEncounter(boss(100))

			result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
			require.NoError(t, err)

			assert.Equal(t, tt.bossHealth, enc.Monster.Health)
			require.NotNil(t, result.MonsterHit)
			assert.Equal(t, tt.enraged, result.MonsterHit.Enraged)
			assert.Equal(t, tt.damage, result.MonsterHit.Damage)
		})
	}
}

func TestMonsterAttack_NormalMonsterNeverEnrages(t *testing.T) {
	resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.99}})
	c := newTestCharacter(t)
	m := skeleton()
	m.Health = 20 // 14 percent after the hit

	result, err := resolver.ResolveAttackExchange(context.Background(), c, NewEncounter(m))
	require.NoError(t, err)

	assert.False(t, result.MonsterHit.Enraged)
	assert.Equal(t, 7, result.MonsterHit.Damage)
}

func TestMonsterAttack_DamageReductionKeepsMinimum(t *testing.T) {
	resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.99}})
	c := newTestCharacter(t)
	plate := domain.Item{Name: "Plate", Kind: domain.KindEquipment, Slot: domain.SlotArmor, DamageReduction: 50, Rarity: domain.RarityCommon}
	c.Equipment.Set(domain.SlotArmor, "", &plate)

	result, err := resolver.ResolveAttackExchange(context.Background(), c, NewEncounter(skeleton()))
	require.NoError(t, err)

	assert.Equal(t, 1, result.MonsterHit.Damage)
	assert.Equal(t, 99, c.Health)
}

func TestAttemptFlee(t *testing.T) {
	t.Run("success ends the encounter unharmed", func(t *testing.T) {
		resolver, rec := newTestResolver(t, &utils.Scripted{Floats: []float64{0.3}})
		c := newTestCharacter(t)
		enc := NewEncounter(skeleton())

		result, err := resolver.AttemptFlee(context.Background(), c, enc)
		require.NoError(t, err)

		assert.True(t, result.Escaped)
		assert.Nil(t, result.MonsterHit)
		assert.Equal(t, StateFled, enc.State)
		assert.Equal(t, 100, c.Health)
		assert.Equal(t, 0, c.DefeatedEnemies)
		assert.Equal(t, []event.Type{event.EncounterFled}, rec.types)

		_, err = resolver.AttemptFlee(context.Background(), c, enc)
		assert.ErrorIs(t, err, domain.ErrEncounterOver)
	})

	t.Run("failure gives the monster a hit", func(t *testing.T) {
		resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{FleeChance}})
		c := newTestCharacter(t)
		enc := NewEncounter(skeleton())

		result, err := resolver.AttemptFlee(context.Background(), c, enc)
		require.NoError(t, err)

		assert.False(t, result.Escaped)
		require.NotNil(t, result.MonsterHit)
		assert.Equal(t, 93, c.Health)
		assert.Equal(t, StateExchange, result.State)
		assert.Equal(t, 50, enc.Monster.Health)
	})

	t.Run("failure can be fatal", func(t *testing.T) {
		resolver, _ := newTestResolver(t, &utils.Scripted{Floats: []float64{0.8}})
		c := newTestCharacter(t)
		c.Health = 1
		enc := NewEncounter(skeleton())

		result, err := resolver.AttemptFlee(context.Background(), c, enc)
		require.NoError(t, err)
		assert.Equal(t, StateDefeat, result.State)
	})
}

func TestActionsWithoutEncounter(t *testing.T) {
	resolver, _ := newTestResolver(t, &utils.Scripted{})
	c := newTestCharacter(t)

	_, err := resolver.ResolveAttackExchange(context.Background(), c, nil)
	assert.ErrorIs(t, err, domain.ErrNoEncounter)

	_, err = resolver.AttemptFlee(context.Background(), c, &Encounter{})
	assert.ErrorIs(t, err, domain.ErrNoEncounter)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestStartEncounter(t *testing.T) {
	resolver, rec := newTestResolver(t, &utils.Scripted{Ints: []int{1}})
	c := newTestCharacter(t)

	enc, err := resolver.StartEncounter(logger.WithSessionID(context.Background(), "s-1"), c)
	require.NoError(t, err)

	assert.Equal(t, "Shadow Bat", enc.Monster.Name)
	assert.Equal(t, StateExchange, enc.State)
	assert.Equal(t, []event.Type{event.EncounterStarted}, rec.types)
}

func TestEncounter_SameSeedSameFight(t *testing.T) {
	play := func(seed int64) ([]ExchangeResult, *domain.Character) {
		rng := utils.NewRoller(seed)
		resolver, _ := newTestResolver(t, rng)
		c := newTestCharacter(t)
		var results []ExchangeResult

		for fights := 0; fights < 15 && !c.IsDefeated(); fights++ {
			enc, err := resolver.StartEncounter(context.Background(), c)
			require.NoError(t, err)
			for !enc.IsOver() {
				result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
				require.NoError(t, err)
				results = append(results, *result)
			}
		}
		return results, c
	}

	first, c1 := play(2024)
	second, c2 := play(2024)

	assert.Equal(t, first, second)
	assert.Equal(t, c1, c2)
}

func TestEncounter_HealthStaysInBounds(t *testing.T) {
	resolver, _ := newTestResolver(t, utils.NewRoller(77))
	c := newTestCharacter(t)
	c.Lifesteal = 30

	for fights := 0; fights < 40 && !c.IsDefeated(); fights++ {
		enc, err := resolver.StartEncounter(context.Background(), c)
		require.NoError(t, err)
		for !enc.IsOver() {
			result, err := resolver.ResolveAttackExchange(context.Background(), c, enc)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.PlayerHit.Damage, MinimumDamage)
			if result.MonsterHit != nil {
				assert.GreaterOrEqual(t, result.MonsterHit.Damage, MinimumDamage)
			}
			assert.GreaterOrEqual(t, c.Health, 0)
			assert.LessOrEqual(t, c.Health, c.MaxHealth)
			assert.GreaterOrEqual(t, enc.Monster.Health, 0)
			assert.LessOrEqual(t, enc.Monster.Health, enc.Monster.InitialHealth)
			assert.Less(t, c.Exp, c.ExpToNextLevel)
		}
	}
}
