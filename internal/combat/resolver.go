// Package combat resolves encounters between the character and a monster: attack
// exchanges, flee attempts and the victory rewards.
package combat

import (
	"context"

	"github.com/osse101/SoulCrawler_Go/internal/character"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/encounter"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
	"github.com/osse101/SoulCrawler_Go/internal/loot"
	"github.com/osse101/SoulCrawler_Go/internal/utils"
)

// Hit describes one attack.
type Hit struct {
	Attacker     string
	Target       string
	Damage       int
	Critical     bool
	Enraged      bool
	Healed       int // lifesteal
	TargetHealth int
}

// Rewards are granted once, on victory.
type Rewards struct {
	Souls    int
	Gold     int
	Loot     *domain.Item
	LevelUps []character.LevelUp
}

// ExchangeResult is the outcome of one attack exchange. MonsterHit is nil when the
// monster died before it could answer; Rewards is set only on victory.
type ExchangeResult struct {
	PlayerHit  Hit
	MonsterHit *Hit
	State      State
	Rewards    *Rewards
}

// FleeResult is the outcome of a flee attempt. A failed attempt gives the monster a
// free hit.
type FleeResult struct {
	Escaped    bool
	MonsterHit *Hit
	State      State
}

// Resolver runs encounters. Every random draw goes through rng, in a fixed order per
// operation, so a seeded rng replays a session exactly.
type Resolver struct {
	rng      utils.Roller
	selector *encounter.Selector
	loot     *loot.Table
	bus      event.Bus
}

// NewResolver creates a resolver. A nil bus drops events.
func NewResolver(rng utils.Roller, selector *encounter.Selector, lootTable *loot.Table, bus event.Bus) *Resolver {
	if bus == nil {
		bus = event.Nop{}
	}
	return &Resolver{rng: rng, selector: selector, loot: lootTable, bus: bus}
}

// StartEncounter draws the next opponent for c. A defeated character cannot start one.
func (r *Resolver) StartEncounter(ctx context.Context, c *domain.Character) (*Encounter, error) {
	if c.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}

	m := r.selector.Select(c.DefeatedEnemies)
	enc := NewEncounter(m)

	logger.FromContext(ctx).Info(LogMsgEncounterStarted,
		LogFieldMonster, m.Name,
		LogFieldVariant, m.Variant,
		LogFieldHealth, m.Health)
	r.publish(ctx, event.NewEncounterStartedEvent(domain.EncounterStartedPayload{
		SessionID:       sessionID(ctx),
		MonsterName:     m.Name,
		Variant:         m.Variant,
		DefeatedEnemies: c.DefeatedEnemies,
	}))
	return enc, nil
}

// ResolveAttackExchange runs the character's attack and, if the monster survives, its
// answer. Acting on a finished or missing encounter is an invalid operation and changes
// nothing.
func (r *Resolver) ResolveAttackExchange(ctx context.Context, c *domain.Character, enc *Encounter) (*ExchangeResult, error) {
	if err := checkActive(enc); err != nil {
		return nil, err
	}
	enc.Turns++

	result := &ExchangeResult{PlayerHit: r.playerAttack(ctx, c, enc.Monster)}

	if enc.Monster.IsDefeated() {
		enc.State = StateVictory
		result.State = StateVictory
		result.Rewards = r.grantRewards(ctx, c, enc.Monster)
		return result, nil
	}

	hit := r.monsterAttack(ctx, c, enc)
	result.MonsterHit = &hit
	result.State = enc.State
	return result, nil
}

// AttemptFlee tries to escape. Success ends the encounter with no rewards and no
// damage; failure lets the monster attack and keeps the encounter going.
func (r *Resolver) AttemptFlee(ctx context.Context, c *domain.Character, enc *Encounter) (*FleeResult, error) {
	if err := checkActive(enc); err != nil {
		return nil, err
	}
	enc.Turns++

	escaped := utils.Chance(r.rng, FleeChance)
	logger.FromContext(ctx).Info(LogMsgFleeAttempt, LogFieldMonster, enc.Monster.Name, LogFieldEscaped, escaped)
	r.publish(ctx, event.NewEncounterFledEvent(domain.EncounterFledPayload{
		SessionID:   sessionID(ctx),
		MonsterName: enc.Monster.Name,
		Success:     escaped,
	}))

	if escaped {
		enc.State = StateFled
		return &FleeResult{Escaped: true, State: StateFled}, nil
	}

	hit := r.monsterAttack(ctx, c, enc)
	return &FleeResult{MonsterHit: &hit, State: enc.State}, nil
}

func (r *Resolver) playerAttack(ctx context.Context, c *domain.Character, m *domain.Monster) Hit {
	critical := utils.Chance(r.rng, float64(character.EffectiveCriticalChance(c))/100)
	damage := PlayerDamage(character.EffectiveAttack(c), c.CriticalEffect, critical, m.Defense)
	m.TakeDamage(damage)
	healed := c.Heal(LifestealHeal(damage, character.EffectiveLifesteal(c)))

	hit := Hit{
		Attacker:     c.Name,
		Target:       m.Name,
		Damage:       damage,
		Critical:     critical,
		Healed:       healed,
		TargetHealth: m.Health,
	}
	logger.FromContext(ctx).Debug(LogMsgPlayerHit,
		LogFieldMonster, m.Name,
		LogFieldDamage, damage,
		LogFieldCritical, critical,
		LogFieldHealth, m.Health)
	r.publishHit(ctx, hit)
	return hit
}

// monsterAttack is the single place where monster variants differ: a boss below its
// enrage threshold hits with the multiplied attack.
func (r *Resolver) monsterAttack(ctx context.Context, c *domain.Character, enc *Encounter) Hit {
	m := enc.Monster
	enraged := m.IsEnraged()
	damage := MonsterDamage(m.EffectiveAttack(), character.EffectiveDefense(c), character.EffectiveDamageReduction(c))
	c.TakeDamage(damage)

	hit := Hit{
		Attacker:     m.Name,
		Target:       c.Name,
		Damage:       damage,
		Enraged:      enraged,
		TargetHealth: c.Health,
	}
	log := logger.FromContext(ctx)
	log.Debug(LogMsgMonsterHit,
		LogFieldMonster, m.Name,
		LogFieldDamage, damage,
		LogFieldEnraged, enraged,
		LogFieldHealth, c.Health)
	r.publishHit(ctx, hit)

	if c.IsDefeated() {
		enc.State = StateDefeat
		log.Info(LogMsgCharacterDefeated, LogFieldMonster, m.Name, LogFieldLevel, c.Level)
		r.publish(ctx, event.NewCharacterDefeatedEvent(domain.CharacterDefeatedPayload{
			SessionID:       sessionID(ctx),
			CharacterName:   c.Name,
			KilledBy:        m.Name,
			Level:           c.Level,
			DefeatedEnemies: c.DefeatedEnemies,
		}))
	}
	return hit
}

// grantRewards applies the victory sequence: souls count as experience too, the loot
// roll happens before leveling, and leveling runs until exp is below the threshold.
func (r *Resolver) grantRewards(ctx context.Context, c *domain.Character, m *domain.Monster) *Rewards {
	log := logger.FromContext(ctx)
	sid := sessionID(ctx)

	c.Souls += m.Souls
	c.Gold += m.Gold
	c.DefeatedEnemies++
	rewards := &Rewards{Souls: m.Souls, Gold: m.Gold}

	log.Info(LogMsgMonsterDefeated, LogFieldMonster, m.Name, LogFieldVariant, m.Variant)
	r.publish(ctx, event.NewMonsterDefeatedEvent(domain.MonsterDefeatedPayload{
		SessionID:   sid,
		MonsterName: m.Name,
		Variant:     m.Variant,
		Souls:       m.Souls,
		Gold:        m.Gold,
	}))

	if item := r.loot.RollDrop(r.rng, c.Level); item != nil {
		c.AddItem(*item)
		rewards.Loot = item
		log.Info(LogMsgLootDropped, LogFieldItem, item.Name, LogFieldRarity, item.Rarity)
		r.publish(ctx, event.NewLootDroppedEvent(domain.LootDroppedPayload{
			SessionID: sid,
			ItemName:  item.Name,
			Rarity:    item.Rarity,
		}))
	}

	oldLevel := c.Level
	rewards.LevelUps = character.GainExperience(c, m.Souls)
	for _, up := range rewards.LevelUps {
		log.Info(LogMsgLevelUp, LogFieldLevel, up.Level)
		r.publish(ctx, event.NewLevelUpEvent(domain.LevelUpPayload{
			SessionID: sid,
			OldLevel:  oldLevel,
			NewLevel:  up.Level,
		}))
		oldLevel = up.Level
	}
	return rewards
}

func (r *Resolver) publishHit(ctx context.Context, hit Hit) {
	r.publish(ctx, event.NewAttackResolvedEvent(domain.AttackResolvedPayload{
		SessionID:    sessionID(ctx),
		Attacker:     hit.Attacker,
		Target:       hit.Target,
		Damage:       hit.Damage,
		Critical:     hit.Critical,
		Enraged:      hit.Enraged,
		TargetHealth: hit.TargetHealth,
	}))
}

// publish never fails the game action; subscriber errors are only logged.
func (r *Resolver) publish(ctx context.Context, evt event.Event) {
	if err := r.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, LogFieldEvent, evt.Type, LogFieldError, err)
	}
}

func sessionID(ctx context.Context) string {
	id, _ := logger.SessionIDFromContext(ctx)
	return id
}
