package domain

// Starting character values
const (
	StartingLevel          = 1
	StartingExpToNextLevel = 100
	StartingHealth         = 100
	StartingAttack         = 15
	StartingDefense        = 5
	StartingStrength       = 10
	StartingAgility        = 10
	StartingIntelligence   = 10
	StartingCriticalChance = 5   // percent
	StartingCriticalEffect = 150 // percent
	StartingLifesteal      = 0
	StartingGold           = 50
)

// Level-up gains
const (
	LevelUpExpGrowth     = 1.5
	LevelUpMaxHealth     = 20
	LevelUpAttack        = 5
	LevelUpDefense       = 3
	LevelUpAttributeGain = 2 // strength, agility and intelligence each
)

// MaxCriticalChance caps the critical chance after equipment bonuses.
const MaxCriticalChance = 100
