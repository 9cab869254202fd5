package character

import "github.com/osse101/SoulCrawler_Go/internal/domain"

// EffectiveAttack is base attack plus the weapon's and every accessory's attack bonus.
// Armor never adds attack.
func EffectiveAttack(c *domain.Character) int {
	total := c.Attack + sumAccessories(c, func(i domain.Item) int { return i.AttackBonus })
	if w := c.Equipment.Weapon; w != nil {
		total += w.AttackBonus
	}
	return total
}

// EffectiveDefense is base defense plus the armor's and every accessory's defense bonus.
// The weapon never adds defense.
func EffectiveDefense(c *domain.Character) int {
	total := c.Defense + sumAccessories(c, func(i domain.Item) int { return i.DefenseBonus })
	if a := c.Equipment.Armor; a != nil {
		total += a.DefenseBonus
	}
	return total
}

// EffectiveCriticalChance is base critical chance plus equipment, capped at 100.
func EffectiveCriticalChance(c *domain.Character) int {
	total := c.CriticalChance + sumEquipped(c, func(i domain.Item) int { return i.CriticalChance })
	return min(domain.MaxCriticalChance, total)
}

// EffectiveLifesteal is base lifesteal plus equipment.
func EffectiveLifesteal(c *domain.Character) int {
	return c.Lifesteal + sumEquipped(c, func(i domain.Item) int { return i.Lifesteal })
}

// EffectiveDamageReduction is the flat reduction granted by equipment.
func EffectiveDamageReduction(c *domain.Character) int {
	return sumEquipped(c, func(i domain.Item) int { return i.DamageReduction })
}

func sumEquipped(c *domain.Character, field func(domain.Item) int) int {
	total := 0
	for _, item := range c.Equipment.Equipped() {
		total += field(item)
	}
	return total
}

func sumAccessories(c *domain.Character, field func(domain.Item) int) int {
	total := 0
	for _, item := range c.Equipment.Accessories {
		if item != nil {
			total += field(*item)
		}
	}
	return total
}
