package economy

import (
	"math"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// floorEpsilon absorbs float representation error (e.g. 110*1.3) before flooring.
const floorEpsilon = 1e-9

var rarityMultipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    1.0,
	domain.RarityUncommon:  1.5,
	domain.RarityRare:      2.5,
	domain.RarityEpic:      4.0,
	domain.RarityLegendary: 7.0,
}

var slotMultipliers = map[domain.Slot]float64{
	domain.SlotWeapon:    WeaponMultiplier,
	domain.SlotArmor:     ArmorMultiplier,
	domain.SlotAccessory: AccessoryMultiplier,
}

// RarityMultiplier returns the price multiplier for a tier. Unknown tiers price as common.
func RarityMultiplier(r domain.Rarity) float64 {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return 1.0
}

// Price computes the list price of an item from its fields, ignoring any stored gold cost.
// The result is floored and never below MinimumPrice.
func Price(item domain.Item) int {
	price := basePrice(item) * RarityMultiplier(item.Rarity)
	return max(MinimumPrice, int(math.Floor(price+floorEpsilon)))
}

func basePrice(item domain.Item) float64 {
	switch item.Kind {
	case domain.KindPotion:
		price := PotionBasePrice
		switch item.EffectAttribute {
		case domain.AttrHealth:
			price += float64(item.EffectValue) / PotionHealthDivisor
		case domain.AttrAttack, domain.AttrDefense:
			price += float64(item.EffectValue) * PotionStatWeight
		}
		return price

	case domain.KindStat:
		return StatBasePrice + float64(item.EffectValue)*StatEffectWeight

	case domain.KindEquipment:
		price := EquipmentBasePrice +
			float64(item.AttackBonus)*AttackBonusWeight +
			float64(item.DefenseBonus)*DefenseBonusWeight +
			float64(item.CriticalChance)*CriticalChanceWeight +
			float64(item.DamageReduction)*DamageReductionWeight +
			float64(item.Lifesteal)*LifestealWeight
		if m, ok := slotMultipliers[item.Slot]; ok {
			price *= m
		}
		return price
	}
	return 0
}

// ListPrice is what the shop charges: the stored gold cost when set, the computed price otherwise.
func ListPrice(item domain.Item) int {
	if item.GoldCost > 0 {
		return item.GoldCost
	}
	return Price(item)
}

// SellPrice calculates the sell price for an item based on its list price.
// Returns integer price (rounded down to prevent fractional currency).
func SellPrice(item domain.Item) int {
	return int(float64(ListPrice(item)) * SellPriceRatio)
}
