// Package session ties one character to its current encounter, its random source and
// the shop, and keeps active sessions cached and saved.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/SoulCrawler_Go/internal/character"
	"github.com/osse101/SoulCrawler_Go/internal/combat"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/economy"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
	"github.com/osse101/SoulCrawler_Go/internal/snapshot"
)

// Session is one player's game. It is not safe for concurrent use; drive it from a
// single caller. Once the character is defeated every operation fails with
// domain.ErrCharacterDefeated.
type Session struct {
	ID        uuid.UUID
	Character *domain.Character
	Encounter *combat.Encounter

	resolver *combat.Resolver
	shop     *economy.Shop
	bus      event.Bus
}

// Explore starts the next encounter. The previous one must be over.
func (s *Session) Explore(ctx context.Context) (*combat.Encounter, error) {
	if s.inEncounter() {
		return nil, fmt.Errorf("%w: fighting %s", domain.ErrEncounterActive, s.Encounter.Monster.Name)
	}

	enc, err := s.resolver.StartEncounter(s.context(ctx), s.Character)
	if err != nil {
		return nil, err
	}
	s.Encounter = enc
	return enc, nil
}

// Attack resolves one exchange in the current encounter.
func (s *Session) Attack(ctx context.Context) (*combat.ExchangeResult, error) {
	return s.resolver.ResolveAttackExchange(s.context(ctx), s.Character, s.Encounter)
}

// Flee tries to leave the current encounter.
func (s *Session) Flee(ctx context.Context) (*combat.FleeResult, error) {
	return s.resolver.AttemptFlee(s.context(ctx), s.Character, s.Encounter)
}

// Equip moves the inventory entry at index into its slot.
func (s *Session) Equip(ctx context.Context, index int) (*character.EquipResult, error) {
	if s.Character.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}
	result, err := character.Equip(s.Character, index)
	if err != nil {
		return nil, err
	}
	logger.FromContext(s.context(ctx)).Debug(LogMsgItemEquipped,
		LogFieldItem, result.Equipped.Name,
		LogFieldSlot, result.Equipped.Slot)
	return result, nil
}

// Unequip returns the item in slot to the inventory.
func (s *Session) Unequip(ctx context.Context, slot domain.Slot, accessoryType string) (*domain.Item, error) {
	if s.Character.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}
	item, err := character.Unequip(s.Character, slot, accessoryType)
	if err != nil {
		return nil, err
	}
	logger.FromContext(s.context(ctx)).Debug(LogMsgItemUnequipped, LogFieldItem, item.Name, LogFieldSlot, slot)
	return item, nil
}

// Use consumes the inventory entry at index. Potions may be drunk mid-fight.
func (s *Session) Use(ctx context.Context, index int) (*character.UseResult, error) {
	if s.Character.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}
	ctx = s.context(ctx)
	result, err := character.UseItem(s.Character, index)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgItemUsed, LogFieldItem, result.Item.Name, LogFieldAmount, result.Amount)
	s.publish(ctx, event.NewItemUsedEvent(domain.ItemUsedPayload{
		SessionID: s.ID.String(),
		ItemName:  result.Item.Name,
		Attribute: result.Attribute,
		Amount:    result.Amount,
	}))
	return result, nil
}

// Sell sells the inventory entry at index. The shop is closed during an encounter.
func (s *Session) Sell(ctx context.Context, index int) (*economy.SaleResult, error) {
	if s.Character.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}
	if s.inEncounter() {
		return nil, domain.ErrEncounterActive
	}

	ctx = s.context(ctx)
	result, err := economy.Sell(s.Character, index)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSold, LogFieldItem, result.Item.Name, LogFieldGold, result.GoldGained)
	s.publish(ctx, event.NewItemSoldEvent(domain.ItemSoldPayload{
		SessionID: s.ID.String(),
		ItemName:  result.Item.Name,
		Rarity:    result.Item.Rarity,
		Gold:      result.GoldGained,
	}))
	return result, nil
}

// Buy buys catalog entry index. The shop is closed during an encounter.
func (s *Session) Buy(ctx context.Context, index int) (*economy.PurchaseResult, error) {
	if s.Character.IsDefeated() {
		return nil, domain.ErrCharacterDefeated
	}
	if s.inEncounter() {
		return nil, domain.ErrEncounterActive
	}

	ctx = s.context(ctx)
	result, err := s.shop.Buy(s.Character, index)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemBought, LogFieldItem, result.Item.Name, LogFieldGold, result.GoldSpent)
	s.publish(ctx, event.NewItemBoughtEvent(domain.ItemBoughtPayload{
		SessionID: s.ID.String(),
		ItemName:  result.Item.Name,
		Gold:      result.GoldSpent,
	}))
	return result, nil
}

// Listings returns the shop catalog with current prices.
func (s *Session) Listings() []economy.Listing {
	return s.shop.Listings()
}

// Snapshot captures the character. The current encounter is not part of a save.
func (s *Session) Snapshot() *snapshot.Snapshot {
	return snapshot.Capture(s.Character)
}

func (s *Session) inEncounter() bool {
	return s.Encounter != nil && !s.Encounter.IsOver()
}

func (s *Session) context(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.ID.String())
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, LogFieldEvent, evt.Type, LogFieldError, err)
	}
}
