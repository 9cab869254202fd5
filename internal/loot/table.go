// Package loot turns a victory into an item drawn from the tier matching the
// character's level.
package loot

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/utils"
	"github.com/osse101/SoulCrawler_Go/internal/validation"
)

//go:embed data/loot_tables.json
var defaultTables []byte

// Range is an inclusive [lo, hi] interval rolled as a uniform integer.
type Range [2]int

func (r Range) roll(rng utils.Roller) int {
	return utils.RandomInt(rng, r[0], r[1])
}

// Candidate is an item template. Every Range field is rolled when the item drops.
type Candidate struct {
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Kind            domain.ItemKind  `json:"kind"`
	EffectAttribute domain.Attribute `json:"effect_attribute,omitempty"`
	EffectValue     Range            `json:"effect_value"`
	Slot            domain.Slot      `json:"slot,omitempty"`
	AccessoryType   string           `json:"accessory_type,omitempty"`
	AttackBonus     Range            `json:"attack_bonus"`
	DefenseBonus    Range            `json:"defense_bonus"`
	CriticalChance  Range            `json:"critical_chance"`
	DamageReduction Range            `json:"damage_reduction"`
	Lifesteal       Range            `json:"lifesteal"`
}

type tablesConfig struct {
	Version string                        `json:"version"`
	Tiers   map[domain.Rarity][]Candidate `json:"tiers"`
}

// Table holds the candidates of every tier. It is read-only after loading.
type Table struct {
	tiers map[domain.Rarity][]Candidate
}

// Default loads the bundled loot tables.
func Default() (*Table, error) {
	return Load(defaultTables, validation.NewSchemaValidator())
}

// LoadFile loads loot tables from a JSON file on disk.
func LoadFile(path string, validator validation.SchemaValidator) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLootFile, err)
	}
	return Load(data, validator)
}

// Load validates data against the loot table schema and builds a Table. Every tier of
// the rarity ladder must have at least one candidate, and each candidate must produce a
// valid item at both ends of its ranges.
func Load(data []byte, validator validation.SchemaValidator) (*Table, error) {
	if err := validator.ValidateBytes(data, validation.SchemaLootTables); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToValidateSchema, err)
	}

	var cfg tablesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseLootFile, err)
	}
	if cfg.Version != ConfigVersion {
		return nil, fmt.Errorf(ErrMsgUnsupportedVersionFmt, cfg.Version, ConfigVersion)
	}

	for _, tier := range domain.Rarities {
		candidates := cfg.Tiers[tier]
		if len(candidates) == 0 {
			return nil, fmt.Errorf(ErrMsgMissingTierFmt, tier)
		}
		for _, c := range candidates {
			if err := c.validate(tier); err != nil {
				return nil, err
			}
		}
	}

	return &Table{tiers: cfg.Tiers}, nil
}

func (c Candidate) validate(tier domain.Rarity) error {
	ranges := map[string]Range{
		"effect_value":     c.EffectValue,
		"attack_bonus":     c.AttackBonus,
		"defense_bonus":    c.DefenseBonus,
		"critical_chance":  c.CriticalChance,
		"damage_reduction": c.DamageReduction,
		"lifesteal":        c.Lifesteal,
	}
	for field, r := range ranges {
		if r[0] > r[1] {
			return fmt.Errorf(ErrMsgInvalidRangeFmt, c.Name, field, r[0], r[1])
		}
	}

	for _, end := range []int{0, 1} {
		item := c.build(tier, func(r Range) int { return r[end] })
		if _, err := domain.NewItem(item); err != nil {
			return fmt.Errorf(ErrMsgInvalidCandidateFmt, c.Name, tier, err)
		}
	}
	return nil
}

func (c Candidate) build(tier domain.Rarity, value func(Range) int) domain.Item {
	return domain.Item{
		Name:            c.Name,
		Description:     c.Description,
		Kind:            c.Kind,
		EffectAttribute: c.EffectAttribute,
		EffectValue:     value(c.EffectValue),
		Slot:            c.Slot,
		AccessoryType:   c.AccessoryType,
		AttackBonus:     value(c.AttackBonus),
		DefenseBonus:    value(c.DefenseBonus),
		CriticalChance:  value(c.CriticalChance),
		DamageReduction: value(c.DamageReduction),
		Lifesteal:       value(c.Lifesteal),
		Rarity:          tier,
	}
}

// TierForLevel returns the loot tier unlocked at level. Levels below 1 count as 1.
func TierForLevel(level int) domain.Rarity {
	for _, step := range tierLadder {
		if level >= step.minLevel {
			return step.tier
		}
	}
	return domain.RarityCommon
}

// Candidates returns a copy of the candidates for tier.
func (t *Table) Candidates(tier domain.Rarity) []Candidate {
	return append([]Candidate(nil), t.tiers[tier]...)
}

// Roll always produces an item from the tier for level. One candidate is picked
// uniformly, then its ranges are rolled in field order.
func (t *Table) Roll(rng utils.Roller, level int) domain.Item {
	tier := TierForLevel(level)
	candidates := t.tiers[tier]
	c := candidates[utils.Pick(rng, len(candidates))]
	return c.build(tier, func(r Range) int { return r.roll(rng) })
}

// RollDrop applies the victory drop chance and returns nil on a miss.
func (t *Table) RollDrop(rng utils.Roller, level int) *domain.Item {
	if !utils.Chance(rng, DropChance) {
		return nil
	}
	item := t.Roll(rng, level)
	return &item
}
