package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

func TestNew(t *testing.T) {
	c, err := New("  Aria ")
	require.NoError(t, err)

	assert.Equal(t, "Aria", c.Name)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.Exp)
	assert.Equal(t, 100, c.ExpToNextLevel)
	assert.Equal(t, 100, c.Health)
	assert.Equal(t, 100, c.MaxHealth)
	assert.Equal(t, 15, c.Attack)
	assert.Equal(t, 5, c.Defense)
	assert.Equal(t, 10, c.Strength)
	assert.Equal(t, 10, c.Agility)
	assert.Equal(t, 10, c.Intelligence)
	assert.Equal(t, 5, c.CriticalChance)
	assert.Equal(t, 150, c.CriticalEffect)
	assert.Equal(t, 0, c.Lifesteal)
	assert.Equal(t, 50, c.Gold)
	assert.Equal(t, 0, c.Souls)
	assert.Empty(t, c.Inventory)
	assert.NoError(t, c.Validate())
}

func TestNew_RequiresName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := New(name)
		assert.ErrorIs(t, err, domain.ErrInvalidConstruction)
		assert.Contains(t, err.Error(), ErrMsgNameRequired)
	}
}

// newTestCharacter returns a fresh starting character.
func newTestCharacter(t *testing.T) *domain.Character {
	t.Helper()
	c, err := New("tester")
	require.NoError(t, err)
	return c
}

func sword(attack int) domain.Item {
	return domain.Item{Name: "Sword", Kind: domain.KindEquipment, Slot: domain.SlotWeapon, AttackBonus: attack, Rarity: domain.RarityCommon}
}

func mail(defense int) domain.Item {
	return domain.Item{Name: "Mail", Kind: domain.KindEquipment, Slot: domain.SlotArmor, DefenseBonus: defense, Rarity: domain.RarityCommon}
}

func ring(accessoryType string) domain.Item {
	return domain.Item{
		Name: "Ring of " + accessoryType, Kind: domain.KindEquipment, Slot: domain.SlotAccessory, AccessoryType: accessoryType,
		AttackBonus: 1, DefenseBonus: 2, CriticalChance: 60, DamageReduction: 3, Lifesteal: 4, Rarity: domain.RarityRare,
	}
}

func potion(attr domain.Attribute, value int) domain.Item {
	return domain.Item{Name: "Potion", Kind: domain.KindPotion, EffectAttribute: attr, EffectValue: value, Rarity: domain.RarityCommon}
}

func statItem(attr domain.Attribute, value int) domain.Item {
	return domain.Item{Name: "Tome", Kind: domain.KindStat, EffectAttribute: attr, EffectValue: value, Rarity: domain.RarityCommon}
}
