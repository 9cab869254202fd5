package main

import (
	"context"
	"errors"

	"github.com/osse101/SoulCrawler_Go/internal/combat"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/economy"
	"github.com/osse101/SoulCrawler_Go/internal/session"
)

// Autopilot tuning
const (
	potionHealthRatio = 0.35
	inventoryCap      = 8
	potionReserve     = 3
	richGold          = 100
)

// tally counts what happened during a run.
type tally struct {
	Encounters int
	Victories  int
	Escapes    int
	Defeated   bool
	Potions    int
	Equipped   int
	Sold       int
	Bought     int
}

// autopilot plays a session with a fixed, greedy strategy.
type autopilot struct {
	s     *session.Session
	tally tally
}

func newAutopilot(s *session.Session) *autopilot {
	return &autopilot{s: s}
}

// run plays up to encounters fights, stopping early if the character dies.
func (a *autopilot) run(ctx context.Context, encounters int) (tally, error) {
	for i := 0; i < encounters && !a.s.Character.IsDefeated(); i++ {
		if err := a.tidyUp(ctx); err != nil {
			return a.tally, err
		}
		if err := a.fight(ctx); err != nil {
			return a.tally, err
		}
	}
	return a.tally, nil
}

func (a *autopilot) fight(ctx context.Context) error {
	if _, err := a.s.Explore(ctx); err != nil {
		return err
	}
	a.tally.Encounters++

	c := a.s.Character
	for !a.s.Encounter.IsOver() {
		if lowHealth(c) {
			if index := potionIndex(c.Inventory); index >= 0 {
				if _, err := a.s.Use(ctx, index); err != nil {
					return err
				}
				a.tally.Potions++
				continue
			}
			// Out of potions against a boss: run.
			if a.s.Encounter.Monster.Variant == domain.VariantBoss {
				if _, err := a.s.Flee(ctx); err != nil {
					return err
				}
				continue
			}
		}
		if _, err := a.s.Attack(ctx); err != nil {
			return err
		}
	}

	switch a.s.Encounter.State {
	case combat.StateVictory:
		a.tally.Victories++
	case combat.StateFled:
		a.tally.Escapes++
	case combat.StateDefeat:
		a.tally.Defeated = true
	}
	return nil
}

// tidyUp runs between fights: equip upgrades, sell surplus, restock potions.
func (a *autopilot) tidyUp(ctx context.Context) error {
	c := a.s.Character

	for index := upgradeIndex(c); index >= 0; index = upgradeIndex(c) {
		if _, err := a.s.Equip(ctx, index); err != nil {
			return err
		}
		a.tally.Equipped++
	}

	for len(c.Inventory) > inventoryCap {
		index := cheapestNonPotion(c.Inventory)
		if index < 0 {
			break
		}
		if _, err := a.s.Sell(ctx, index); err != nil {
			return err
		}
		a.tally.Sold++
	}

	shopIndex := potionListing(a.s.Listings())
	for shopIndex >= 0 && c.Gold >= richGold && countPotions(c.Inventory) < potionReserve {
		_, err := a.s.Buy(ctx, shopIndex)
		if errors.Is(err, domain.ErrInsufficientFunds) {
			break
		}
		if err != nil {
			return err
		}
		a.tally.Bought++
	}

	// Top up health between fights when a potion would be fully used.
	for c.MaxHealth-c.Health >= 100 {
		index := potionIndex(c.Inventory)
		if index < 0 {
			break
		}
		if _, err := a.s.Use(ctx, index); err != nil {
			return err
		}
		a.tally.Potions++
	}
	return nil
}

func lowHealth(c *domain.Character) bool {
	return float64(c.Health) < potionHealthRatio*float64(c.MaxHealth)
}

func isHealthPotion(item domain.Item) bool {
	return item.Kind == domain.KindPotion && item.EffectAttribute == domain.AttrHealth
}

// potionIndex returns the first health potion in the inventory, or -1.
func potionIndex(inventory []domain.Item) int {
	for i, item := range inventory {
		if isHealthPotion(item) {
			return i
		}
	}
	return -1
}

func countPotions(inventory []domain.Item) int {
	n := 0
	for _, item := range inventory {
		if isHealthPotion(item) {
			n++
		}
	}
	return n
}

func potionListing(listings []economy.Listing) int {
	for i, listing := range listings {
		if isHealthPotion(listing.Item) {
			return i
		}
	}
	return -1
}

// combatScore is what the autopilot maximizes when choosing equipment. Only the
// bonuses the slot actually contributes are counted.
func combatScore(item *domain.Item) int {
	if item == nil {
		return 0
	}
	switch item.Slot {
	case domain.SlotWeapon:
		return item.AttackBonus + item.DamageReduction
	case domain.SlotArmor:
		return item.DefenseBonus + item.DamageReduction
	}
	return item.AttackBonus + item.DefenseBonus + item.DamageReduction
}

// upgradeIndex returns an inventory item that beats what is in its slot, or -1.
func upgradeIndex(c *domain.Character) int {
	for i := range c.Inventory {
		item := &c.Inventory[i]
		if !item.IsEquipment() {
			continue
		}
		current := c.Equipment.Get(item.Slot, item.AccessoryType)
		if combatScore(item) > combatScore(current) {
			return i
		}
	}
	return -1
}

// cheapestNonPotion returns the lowest priced item that is not a health potion, or -1.
func cheapestNonPotion(inventory []domain.Item) int {
	best, bestPrice := -1, 0
	for i, item := range inventory {
		if isHealthPotion(item) {
			continue
		}
		if price := economy.SellPrice(item); best < 0 || price < bestPrice {
			best, bestPrice = i, price
		}
	}
	return best
}
