package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

func TestUseItem_HealthPotionClampsToMax(t *testing.T) {
	c := newTestCharacter(t)
	c.Health = 40
	c.AddItem(potion(domain.AttrHealth, 100))

	result, err := UseItem(c, 0)
	require.NoError(t, err)

	assert.Equal(t, 60, result.Amount)
	assert.Equal(t, domain.AttrHealth, result.Attribute)
	assert.Equal(t, 100, c.Health)
	assert.Empty(t, c.Inventory)
}

func TestUseItem_PermanentBoosts(t *testing.T) {
	tests := []struct {
		name   string
		item   domain.Item
		check  func(t *testing.T, c *domain.Character)
		amount int
	}{
		{
			name:   "attack potion",
			item:   potion(domain.AttrAttack, 4),
			amount: 4,
			check:  func(t *testing.T, c *domain.Character) { assert.Equal(t, 19, c.Attack) },
		},
		{
			name:   "defense potion",
			item:   potion(domain.AttrDefense, 2),
			amount: 2,
			check:  func(t *testing.T, c *domain.Character) { assert.Equal(t, 7, c.Defense) },
		},
		{
			name:   "strength tome",
			item:   statItem(domain.AttrStrength, 3),
			amount: 3,
			check:  func(t *testing.T, c *domain.Character) { assert.Equal(t, 13, c.Strength) },
		},
		{
			name:   "health capacity raises both",
			item:   statItem(domain.AttrHealthCapacity, 25),
			amount: 25,
			check: func(t *testing.T, c *domain.Character) {
				assert.Equal(t, 125, c.MaxHealth)
				assert.Equal(t, 125, c.Health)
			},
		},
		{
			name:   "critical chance is capped",
			item:   statItem(domain.AttrCriticalChance, 200),
			amount: 95,
			check:  func(t *testing.T, c *domain.Character) { assert.Equal(t, 100, c.CriticalChance) },
		},
		{
			name:   "critical effect",
			item:   statItem(domain.AttrCriticalEffect, 25),
			amount: 25,
			check:  func(t *testing.T, c *domain.Character) { assert.Equal(t, 175, c.CriticalEffect) },
		},
		{
			name:   "lifesteal",
			item:   statItem(domain.AttrLifesteal, 5),
			amount: 5,
			check:  func(t *testing.T, c *domain.Character) { assert.Equal(t, 5, c.Lifesteal) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter(t)
			c.AddItem(tt.item)

			result, err := UseItem(c, 0)
			require.NoError(t, err)

			assert.Equal(t, tt.amount, result.Amount)
			assert.Empty(t, c.Inventory)
			tt.check(t, c)
		})
	}
}

func TestUseItem_RemovesOnlyTheIndexedEntry(t *testing.T) {
	c := newTestCharacter(t)
	c.Health = 10
	c.AddItem(potion(domain.AttrHealth, 5))
	c.AddItem(potion(domain.AttrHealth, 5))

	_, err := UseItem(c, 1)
	require.NoError(t, err)

	assert.Len(t, c.Inventory, 1)
	assert.Equal(t, 15, c.Health)
}

func TestUseItem_Errors(t *testing.T) {
	c := newTestCharacter(t)
	c.AddItem(sword(3))

	_, err := UseItem(c, 0)
	assert.ErrorIs(t, err, domain.ErrNotConsumable)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = UseItem(c, 4)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	assert.Len(t, c.Inventory, 1)
	assert.Equal(t, 15, c.Attack)
}

func TestUseItem_DefeatedCharacter(t *testing.T) {
	c := newTestCharacter(t)
	c.Health = 0
	c.AddItem(potion(domain.AttrHealth, 100))
	c.AddItem(statItem(domain.AttrHealthCapacity, 20))

	for i := range c.Inventory {
		_, err := UseItem(c, i)
		assert.ErrorIs(t, err, domain.ErrCharacterDefeated)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	}

	assert.Equal(t, 0, c.Health)
	assert.Len(t, c.Inventory, 2)
}
