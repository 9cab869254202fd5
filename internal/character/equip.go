package character

import (
	"fmt"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// EquipResult reports what moved during an equip.
type EquipResult struct {
	Equipped  domain.Item
	Displaced *domain.Item // previous occupant, now back in the inventory
}

// Equip moves the inventory entry at index into its slot. Whatever occupied the slot
// goes back to the end of the inventory.
func Equip(c *domain.Character, index int) (*EquipResult, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return nil, err
	}
	if !item.IsEquipment() {
		return nil, fmt.Errorf(ErrMsgEquipFmt, item.Name, domain.ErrNotEquipment)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf(ErrMsgEquipFmt, item.Name, err)
	}

	if _, err := c.RemoveAt(index); err != nil {
		return nil, err
	}

	equipped := item
	displaced := c.Equipment.Set(item.Slot, item.AccessoryType, &equipped)
	if displaced != nil {
		c.AddItem(*displaced)
	}
	return &EquipResult{Equipped: item, Displaced: displaced}, nil
}

// Unequip moves the item in slot back to the inventory. accessoryType is only read for
// the accessory slot.
func Unequip(c *domain.Character, slot domain.Slot, accessoryType string) (*domain.Item, error) {
	switch slot {
	case domain.SlotWeapon, domain.SlotArmor, domain.SlotAccessory:
	default:
		return nil, fmt.Errorf(ErrMsgUnknownSlotFmt, domain.ErrInvalidOperation, slot)
	}

	if c.Equipment.Get(slot, accessoryType) == nil {
		return nil, fmt.Errorf(ErrMsgUnequipFmt, slot, domain.ErrSlotEmpty)
	}

	removed := c.Equipment.Set(slot, accessoryType, nil)
	c.AddItem(*removed)
	return removed, nil
}
