package character

import (
	"math"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// LevelUp describes one threshold crossing.
type LevelUp struct {
	Level          int
	ExpToNextLevel int
	MaxHealth      int
}

// GainExperience adds exp and applies every level-up it triggers, in order.
func GainExperience(c *domain.Character, exp int) []LevelUp {
	if exp > 0 {
		c.Exp += exp
	}
	return ApplyLevelUps(c)
}

// ApplyLevelUps levels the character while exp is at or above the threshold. Each crossing
// carries its remainder forward, so exp < ExpToNextLevel holds on return.
func ApplyLevelUps(c *domain.Character) []LevelUp {
	var crossings []LevelUp
	for c.ExpToNextLevel > 0 && c.Exp >= c.ExpToNextLevel {
		c.Exp -= c.ExpToNextLevel
		c.Level++
		c.ExpToNextLevel = int(math.Floor(float64(c.ExpToNextLevel) * domain.LevelUpExpGrowth))
		c.MaxHealth += domain.LevelUpMaxHealth
		c.Health = c.MaxHealth
		c.Attack += domain.LevelUpAttack
		c.Defense += domain.LevelUpDefense
		c.Strength += domain.LevelUpAttributeGain
		c.Agility += domain.LevelUpAttributeGain
		c.Intelligence += domain.LevelUpAttributeGain

		crossings = append(crossings, LevelUp{
			Level:          c.Level,
			ExpToNextLevel: c.ExpToNextLevel,
			MaxHealth:      c.MaxHealth,
		})
	}
	return crossings
}
