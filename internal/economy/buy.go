package economy

import (
	"fmt"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// Shop is a fixed catalog of items for sale. Its entries are never handed out by
// reference; buying appends a copy to the buyer's inventory.
type Shop struct {
	items []domain.Item
}

// NewShop validates the catalog and returns a Shop.
func NewShop(items []domain.Item) (*Shop, error) {
	catalog := make([]domain.Item, 0, len(items))
	for i, proto := range items {
		item, err := domain.NewItem(proto)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidCatalogItemFmt, i, err)
		}
		catalog = append(catalog, item)
	}
	return &Shop{items: catalog}, nil
}

// DefaultShop returns the starter town catalog.
func DefaultShop() *Shop {
	shop, err := NewShop(defaultCatalog)
	if err != nil {
		panic(err) // static data
	}
	return shop
}

// Listing is one catalog row with its current price.
type Listing struct {
	Item  domain.Item
	Price int
}

// Listings returns the catalog with list prices.
func (s *Shop) Listings() []Listing {
	listings := make([]Listing, len(s.items))
	for i, item := range s.items {
		listings[i] = Listing{Item: item, Price: ListPrice(item)}
	}
	return listings
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	Item      domain.Item
	GoldSpent int
}

// Buy charges the list price of catalog entry index and adds the item to the inventory.
// The character is left untouched when it cannot pay.
func (s *Shop) Buy(c *domain.Character, index int) (*PurchaseResult, error) {
	if index < 0 || index >= len(s.items) {
		return nil, fmt.Errorf(ErrMsgShopIndexFmt, index, domain.ErrIndexOutOfRange)
	}

	item := s.items[index]
	cost := ListPrice(item)
	if c.Gold < cost {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, item.Name, cost, c.Gold, domain.ErrInsufficientFunds)
	}

	c.Gold -= cost
	c.AddItem(item)
	return &PurchaseResult{Item: item, GoldSpent: cost}, nil
}

var defaultCatalog = []domain.Item{
	{
		Name:            "Healing Potion",
		Description:     "Restores 100 health",
		Kind:            domain.KindPotion,
		EffectAttribute: domain.AttrHealth,
		EffectValue:     100,
		GoldCost:        20,
		Rarity:          domain.RarityCommon,
	},
	{
		Name:        "Iron Longsword",
		Description: "+15 attack while equipped",
		Kind:        domain.KindEquipment,
		Slot:        domain.SlotWeapon,
		AttackBonus: 15,
		GoldCost:    150,
		Rarity:      domain.RarityCommon,
	},
	{
		Name:         "Leather Jerkin",
		Description:  "+6 defense while equipped",
		Kind:         domain.KindEquipment,
		Slot:         domain.SlotArmor,
		DefenseBonus: 6,
		Rarity:       domain.RarityCommon,
	},
	{
		Name:           "Lucky Charm",
		Description:    "+3% critical chance while equipped",
		Kind:           domain.KindEquipment,
		Slot:           domain.SlotAccessory,
		AccessoryType:  "charm",
		CriticalChance: 3,
		Rarity:         domain.RarityUncommon,
	},
}
