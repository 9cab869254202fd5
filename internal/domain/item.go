package domain

import "fmt"

// ItemKind decides which Item fields carry meaning.
type ItemKind string

const (
	KindPotion    ItemKind = "potion"
	KindStat      ItemKind = "stat"
	KindEquipment ItemKind = "equipment"
)

// Slot is the equipment slot an item occupies when equipped.
type Slot string

const (
	SlotNone      Slot = ""
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Attribute names the stat a potion or stat item acts on.
type Attribute string

const (
	AttrNone           Attribute = ""
	AttrHealth         Attribute = "health"
	AttrAttack         Attribute = "attack"
	AttrDefense        Attribute = "defense"
	AttrStrength       Attribute = "strength"
	AttrAgility        Attribute = "agility"
	AttrIntelligence   Attribute = "intelligence"
	AttrHealthCapacity Attribute = "health_capacity"
	AttrCriticalChance Attribute = "critical_chance"
	AttrCriticalEffect Attribute = "critical_effect"
	AttrLifesteal      Attribute = "lifesteal"
)

// Rarity is the tier ladder driving prices and loot pools.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists the tiers from lowest to highest.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Rank returns the position of r on the rarity ladder, or -1 when unknown.
func (r Rarity) Rank() int {
	for i, tier := range Rarities {
		if tier == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is on the ladder.
func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// Item is an immutable value describing a potion, a stat boost or a piece of equipment.
// Fields outside the item's kind are ignored by pricing and effect application.
type Item struct {
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Kind            ItemKind  `json:"kind"`
	EffectAttribute Attribute `json:"effect_attribute,omitempty"`
	EffectValue     int       `json:"effect_value,omitempty"`
	Slot            Slot      `json:"slot,omitempty"`
	AccessoryType   string    `json:"accessory_type,omitempty"`
	AttackBonus     int       `json:"attack_bonus,omitempty"`
	DefenseBonus    int       `json:"defense_bonus,omitempty"`
	CriticalChance  int       `json:"critical_chance,omitempty"`
	DamageReduction int       `json:"damage_reduction,omitempty"`
	Lifesteal       int       `json:"lifesteal,omitempty"`
	GoldCost        int       `json:"gold_cost,omitempty"` // 0 means the price is computed
	Rarity          Rarity    `json:"rarity"`
}

// NewItem validates proto and returns it as an Item. An empty rarity defaults to common.
func NewItem(proto Item) (Item, error) {
	if proto.Rarity == "" {
		proto.Rarity = RarityCommon
	}
	if err := proto.Validate(); err != nil {
		return Item{}, err
	}
	return proto, nil
}

// Validate checks the fields required by the item's kind.
func (i Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidConstruction)
	}
	if !i.Rarity.Valid() {
		return fmt.Errorf("%w: item %q has unknown rarity %q", ErrInvalidConstruction, i.Name, i.Rarity)
	}
	if i.GoldCost < 0 {
		return fmt.Errorf("%w: item %q has negative gold cost", ErrInvalidConstruction, i.Name)
	}

	switch i.Kind {
	case KindPotion:
		switch i.EffectAttribute {
		case AttrHealth, AttrAttack, AttrDefense:
		default:
			return fmt.Errorf("%w: potion %q has unsupported effect %q", ErrInvalidConstruction, i.Name, i.EffectAttribute)
		}
		if i.EffectValue <= 0 {
			return fmt.Errorf("%w: potion %q needs a positive effect value", ErrInvalidConstruction, i.Name)
		}
	case KindStat:
		if !statAttributes[i.EffectAttribute] {
			return fmt.Errorf("%w: stat item %q has unsupported effect %q", ErrInvalidConstruction, i.Name, i.EffectAttribute)
		}
		if i.EffectValue <= 0 {
			return fmt.Errorf("%w: stat item %q needs a positive effect value", ErrInvalidConstruction, i.Name)
		}
	case KindEquipment:
		switch i.Slot {
		case SlotWeapon, SlotArmor:
		case SlotAccessory:
			if i.AccessoryType == "" {
				return fmt.Errorf("%w: accessory %q needs an accessory type", ErrInvalidConstruction, i.Name)
			}
		default:
			return fmt.Errorf("%w: equipment %q has unknown slot %q", ErrInvalidConstruction, i.Name, i.Slot)
		}
		if i.AttackBonus < 0 || i.DefenseBonus < 0 || i.CriticalChance < 0 || i.DamageReduction < 0 || i.Lifesteal < 0 {
			return fmt.Errorf("%w: equipment %q has a negative modifier", ErrInvalidConstruction, i.Name)
		}
	default:
		return fmt.Errorf("%w: item %q has unknown kind %q", ErrInvalidConstruction, i.Name, i.Kind)
	}
	return nil
}

// IsEquipment reports whether the item can be equipped.
func (i Item) IsEquipment() bool {
	return i.Kind == KindEquipment
}

// IsConsumable reports whether the item is used up by UseItem.
func (i Item) IsConsumable() bool {
	return i.Kind == KindPotion || i.Kind == KindStat
}

var statAttributes = map[Attribute]bool{
	AttrAttack:         true,
	AttrDefense:        true,
	AttrStrength:       true,
	AttrAgility:        true,
	AttrIntelligence:   true,
	AttrHealthCapacity: true,
	AttrCriticalChance: true,
	AttrCriticalEffect: true,
	AttrLifesteal:      true,
}
