package domain

import "fmt"

// Equipment holds the items currently worn. Accessories are keyed by accessory type.
type Equipment struct {
	Weapon      *Item            `json:"weapon,omitempty"`
	Armor       *Item            `json:"armor,omitempty"`
	Accessories map[string]*Item `json:"accessories,omitempty"`
}

// Equipped returns every equipped item: weapon, armor, then accessories in map order.
func (e *Equipment) Equipped() []Item {
	items := make([]Item, 0, 2+len(e.Accessories))
	if e.Weapon != nil {
		items = append(items, *e.Weapon)
	}
	if e.Armor != nil {
		items = append(items, *e.Armor)
	}
	for _, acc := range e.Accessories {
		if acc != nil {
			items = append(items, *acc)
		}
	}
	return items
}

// Get returns the item in a slot, or nil when the slot is empty.
func (e *Equipment) Get(slot Slot, accessoryType string) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotAccessory:
		return e.Accessories[accessoryType]
	}
	return nil
}

// Set places item into a slot and returns whatever was there before.
func (e *Equipment) Set(slot Slot, accessoryType string, item *Item) *Item {
	var previous *Item
	switch slot {
	case SlotWeapon:
		previous, e.Weapon = e.Weapon, item
	case SlotArmor:
		previous, e.Armor = e.Armor, item
	case SlotAccessory:
		if e.Accessories == nil {
			e.Accessories = make(map[string]*Item)
		}
		previous = e.Accessories[accessoryType]
		if item == nil {
			delete(e.Accessories, accessoryType)
		} else {
			e.Accessories[accessoryType] = item
		}
	}
	return previous
}

// Character is the player aggregate. It is mutated only through combat, leveling and
// the equip/use/sell/buy operations.
type Character struct {
	Name            string    `json:"name"`
	Level           int       `json:"level"`
	Exp             int       `json:"exp"`
	ExpToNextLevel  int       `json:"exp_to_next_level"`
	Health          int       `json:"health"`
	MaxHealth       int       `json:"max_health"`
	Attack          int       `json:"attack"`
	Defense         int       `json:"defense"`
	Strength        int       `json:"strength"`
	Agility         int       `json:"agility"`
	Intelligence    int       `json:"intelligence"`
	CriticalChance  int       `json:"critical_chance"` // percent, 0-100
	CriticalEffect  int       `json:"critical_effect"` // percent multiplier, >= 100
	Lifesteal       int       `json:"lifesteal"`       // percent of damage dealt
	Gold            int       `json:"gold"`
	Souls           int       `json:"souls"`
	DefeatedEnemies int       `json:"defeated_enemies"`
	Inventory       []Item    `json:"inventory"`
	Equipment       Equipment `json:"equipment"`
}

// IsDefeated reports whether the character has run out of health.
func (c *Character) IsDefeated() bool {
	return c.Health <= 0
}

// AddItem appends item to the end of the inventory.
func (c *Character) AddItem(item Item) {
	c.Inventory = append(c.Inventory, item)
}

// ItemAt returns the inventory entry at index.
func (c *Character) ItemAt(index int) (Item, error) {
	if index < 0 || index >= len(c.Inventory) {
		return Item{}, fmt.Errorf("%w: %d (inventory has %d items)", ErrIndexOutOfRange, index, len(c.Inventory))
	}
	return c.Inventory[index], nil
}

// RemoveAt removes and returns the inventory entry at index, keeping the order of the rest.
func (c *Character) RemoveAt(index int) (Item, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return Item{}, err
	}
	c.Inventory = append(c.Inventory[:index], c.Inventory[index+1:]...)
	return item, nil
}

// Heal restores up to amount health without exceeding MaxHealth and returns the amount restored.
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.Health
	c.Health = min(c.MaxHealth, c.Health+amount)
	return c.Health - before
}

// TakeDamage removes amount health, never dropping below zero.
func (c *Character) TakeDamage(amount int) {
	c.Health = max(0, c.Health-amount)
}

// Validate checks the character invariants.
func (c *Character) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: character name is required", ErrInvalidConstruction)
	case c.Level < 1:
		return fmt.Errorf("%w: level must be at least 1, got %d", ErrInvalidConstruction, c.Level)
	case c.ExpToNextLevel < 1:
		return fmt.Errorf("%w: exp_to_next_level must be positive, got %d", ErrInvalidConstruction, c.ExpToNextLevel)
	case c.Exp < 0 || c.Exp >= c.ExpToNextLevel:
		return fmt.Errorf("%w: exp %d outside [0, %d)", ErrInvalidConstruction, c.Exp, c.ExpToNextLevel)
	case c.MaxHealth < 1:
		return fmt.Errorf("%w: max_health must be positive, got %d", ErrInvalidConstruction, c.MaxHealth)
	case c.Health < 0 || c.Health > c.MaxHealth:
		return fmt.Errorf("%w: health %d outside [0, %d]", ErrInvalidConstruction, c.Health, c.MaxHealth)
	case c.Attack < 0 || c.Defense < 0 || c.Strength < 0 || c.Agility < 0 || c.Intelligence < 0:
		return fmt.Errorf("%w: base stats must not be negative", ErrInvalidConstruction)
	case c.CriticalChance < 0 || c.CriticalChance > 100:
		return fmt.Errorf("%w: critical_chance %d outside [0, 100]", ErrInvalidConstruction, c.CriticalChance)
	case c.CriticalEffect < 100:
		return fmt.Errorf("%w: critical_effect must be at least 100, got %d", ErrInvalidConstruction, c.CriticalEffect)
	case c.Lifesteal < 0:
		return fmt.Errorf("%w: lifesteal must not be negative", ErrInvalidConstruction)
	case c.Gold < 0 || c.Souls < 0 || c.DefeatedEnemies < 0:
		return fmt.Errorf("%w: gold, souls and defeated_enemies must not be negative", ErrInvalidConstruction)
	}

	for i, item := range c.Inventory {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("inventory[%d]: %w", i, err)
		}
	}
	return c.validateEquipment()
}

func (c *Character) validateEquipment() error {
	check := func(slot Slot, accessoryType string, item *Item) error {
		if item == nil {
			return nil
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("equipment %s: %w", slot, err)
		}
		if !item.IsEquipment() || item.Slot != slot || (slot == SlotAccessory && item.AccessoryType != accessoryType) {
			return fmt.Errorf("%w: %q cannot occupy slot %s", ErrInvalidConstruction, item.Name, slot)
		}
		return nil
	}

	if err := check(SlotWeapon, "", c.Equipment.Weapon); err != nil {
		return err
	}
	if err := check(SlotArmor, "", c.Equipment.Armor); err != nil {
		return err
	}
	for accessoryType, item := range c.Equipment.Accessories {
		if err := check(SlotAccessory, accessoryType, item); err != nil {
			return err
		}
	}
	return nil
}
