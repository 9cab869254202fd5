package combat

import "math"

// PlayerDamage computes the character's hit on a monster. criticalEffect is a percent
// multiplier (150 = x1.5) applied only on a critical hit.
func PlayerDamage(effectiveAttack, criticalEffect int, critical bool, monsterDefense int) int {
	multiplier := 1.0
	if critical {
		multiplier = float64(criticalEffect) / 100
	}
	raw := float64(effectiveAttack)*multiplier - float64(monsterDefense)*DefenseFactor
	return max(MinimumDamage, int(math.Floor(raw)))
}

// MonsterDamage computes a monster's hit on the character. Flat damage reduction from
// equipment applies after the defense roll and can never push a hit below the minimum.
func MonsterDamage(monsterAttack float64, effectiveDefense, damageReduction int) int {
	raw := math.Floor(monsterAttack - float64(effectiveDefense)*DefenseFactor)
	return max(MinimumDamage, int(raw)-damageReduction)
}

// LifestealHeal returns the health drained by a hit of damage at lifesteal percent.
func LifestealHeal(damage, lifesteal int) int {
	if lifesteal <= 0 {
		return 0
	}
	return damage * lifesteal / 100
}
