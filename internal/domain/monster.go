package domain

import (
	"fmt"
	"math"
)

// MonsterVariant tags the behavior a monster follows when it attacks.
type MonsterVariant string

const (
	VariantNormal MonsterVariant = "normal"
	VariantBoss   MonsterVariant = "boss"
)

// SkillEnrage is the flavor tag carried by bosses. Skills are display only; enraging
// is driven by the Boss variant and its Enrage rule.
const SkillEnrage = "enrage"

// Default boss enrage rule.
const (
	DefaultEnrageThreshold  = 0.3
	DefaultEnrageMultiplier = 1.5
)

// Enrage describes a boss attack multiplier that switches on below a health fraction.
type Enrage struct {
	Threshold  float64 `json:"threshold"`
	Multiplier float64 `json:"multiplier"`
}

// DefaultEnrage returns the standard boss rule: x1.5 attack below 30% health.
func DefaultEnrage() Enrage {
	return Enrage{Threshold: DefaultEnrageThreshold, Multiplier: DefaultEnrageMultiplier}
}

// Monster is a combat opponent. Prototypes are copied with Spawn before a fight.
type Monster struct {
	Name          string         `json:"name"`
	Variant       MonsterVariant `json:"variant"`
	Health        int            `json:"health"`
	InitialHealth int            `json:"initial_health"`
	Attack        int            `json:"attack"`
	Defense       int            `json:"defense"`
	Souls         int            `json:"souls"`
	Gold          int            `json:"gold"`
	Rarity        string         `json:"rarity,omitempty"`
	Skills        []string       `json:"skills,omitempty"`
	Enrage        Enrage         `json:"enrage,omitempty"`
}

// Validate checks the monster fields.
func (m *Monster) Validate() error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: monster name is required", ErrInvalidConstruction)
	case m.InitialHealth < 1:
		return fmt.Errorf("%w: monster %q needs positive initial health", ErrInvalidConstruction, m.Name)
	case m.Health < 0 || m.Health > m.InitialHealth:
		return fmt.Errorf("%w: monster %q health %d outside [0, %d]", ErrInvalidConstruction, m.Name, m.Health, m.InitialHealth)
	case m.Attack < 0 || m.Defense < 0 || m.Souls < 0 || m.Gold < 0:
		return fmt.Errorf("%w: monster %q has a negative stat", ErrInvalidConstruction, m.Name)
	}

	switch m.Variant {
	case VariantNormal:
	case VariantBoss:
		if m.Enrage.Threshold <= 0 || m.Enrage.Threshold >= 1 || m.Enrage.Multiplier < 1 {
			return fmt.Errorf("%w: boss %q has an invalid enrage rule", ErrInvalidConstruction, m.Name)
		}
	default:
		return fmt.Errorf("%w: monster %q has unknown variant %q", ErrInvalidConstruction, m.Name, m.Variant)
	}
	return nil
}

// Spawn returns a live copy of the prototype at full health.
func (m *Monster) Spawn() *Monster {
	live := *m
	live.Health = live.InitialHealth
	live.Skills = append([]string(nil), m.Skills...)
	return &live
}

// IsDefeated reports whether the monster has run out of health.
func (m *Monster) IsDefeated() bool {
	return m.Health <= 0
}

// TakeDamage removes amount health, never dropping below zero.
func (m *Monster) TakeDamage(amount int) {
	m.Health = max(0, m.Health-amount)
}

// IsEnraged reports whether a boss is below its enrage threshold. Normal monsters never enrage.
func (m *Monster) IsEnraged() bool {
	if m.Variant != VariantBoss {
		return false
	}
	return float64(m.Health) < m.Enrage.Threshold*float64(m.InitialHealth)
}

// EffectiveAttack is the attack value used for the monster's next hit.
func (m *Monster) EffectiveAttack() float64 {
	if m.IsEnraged() {
		return float64(m.Attack) * m.Enrage.Multiplier
	}
	return float64(m.Attack)
}

// HealthPercent returns current health as a whole percentage of initial health.
func (m *Monster) HealthPercent() int {
	if m.InitialHealth <= 0 {
		return 0
	}
	return int(math.Floor(float64(m.Health) * 100 / float64(m.InitialHealth)))
}
