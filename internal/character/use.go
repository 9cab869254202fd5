package character

import (
	"fmt"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// UseResult reports the effect of a consumed item.
type UseResult struct {
	Item      domain.Item
	Attribute domain.Attribute
	Amount    int // actual change, e.g. health restored after clamping
}

// UseItem consumes the potion or stat item at index. Health potions restore up to
// MaxHealth; every other effect permanently raises the named stat. A defeated character
// cannot use anything.
func UseItem(c *domain.Character, index int) (*UseResult, error) {
	if c.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}
	item, err := c.ItemAt(index)
	if err != nil {
		return nil, err
	}
	if !item.IsConsumable() {
		return nil, fmt.Errorf(ErrMsgUseFmt, item.Name, domain.ErrNotConsumable)
	}

	amount, err := applyEffect(c, item)
	if err != nil {
		return nil, err
	}

	if _, err := c.RemoveAt(index); err != nil {
		return nil, err
	}
	return &UseResult{Item: item, Attribute: item.EffectAttribute, Amount: amount}, nil
}

func applyEffect(c *domain.Character, item domain.Item) (int, error) {
	v := item.EffectValue

	switch item.EffectAttribute {
	case domain.AttrHealth:
		if item.Kind != domain.KindPotion {
			break
		}
		return c.Heal(v), nil
	case domain.AttrAttack:
		c.Attack += v
		return v, nil
	case domain.AttrDefense:
		c.Defense += v
		return v, nil
	case domain.AttrStrength:
		c.Strength += v
		return v, nil
	case domain.AttrAgility:
		c.Agility += v
		return v, nil
	case domain.AttrIntelligence:
		c.Intelligence += v
		return v, nil
	case domain.AttrHealthCapacity:
		c.MaxHealth += v
		c.Health += v
		return v, nil
	case domain.AttrCriticalChance:
		before := c.CriticalChance
		c.CriticalChance = min(domain.MaxCriticalChance, c.CriticalChance+v)
		return c.CriticalChance - before, nil
	case domain.AttrCriticalEffect:
		c.CriticalEffect += v
		return v, nil
	case domain.AttrLifesteal:
		c.Lifesteal += v
		return v, nil
	}
	return 0, fmt.Errorf(ErrMsgUnsupportedEffectFmt, domain.ErrNotConsumable, item.Name, item.EffectAttribute)
}
