// Package character owns the player aggregate rules: creation, stat aggregation,
// equipment, consumables and leveling.
package character

import (
	"fmt"
	"strings"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// New creates a level 1 character with the starting stats.
func New(name string) (*domain.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConstruction, ErrMsgNameRequired)
	}

	return &domain.Character{
		Name:           name,
		Level:          domain.StartingLevel,
		ExpToNextLevel: domain.StartingExpToNextLevel,
		Health:         domain.StartingHealth,
		MaxHealth:      domain.StartingHealth,
		Attack:         domain.StartingAttack,
		Defense:        domain.StartingDefense,
		Strength:       domain.StartingStrength,
		Agility:        domain.StartingAgility,
		Intelligence:   domain.StartingIntelligence,
		CriticalChance: domain.StartingCriticalChance,
		CriticalEffect: domain.StartingCriticalEffect,
		Lifesteal:      domain.StartingLifesteal,
		Gold:           domain.StartingGold,
		Inventory:      []domain.Item{},
	}, nil
}
