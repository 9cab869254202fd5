package economy

import (
	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// SaleResult describes a completed sale.
type SaleResult struct {
	Item       domain.Item
	GoldGained int
}

// Sell removes exactly the inventory entry at index and credits its sell price.
// Equipped items are not in the inventory and cannot be sold.
func Sell(c *domain.Character, index int) (*SaleResult, error) {
	item, err := c.RemoveAt(index)
	if err != nil {
		return nil, err
	}

	gold := SellPrice(item)
	c.Gold += gold
	return &SaleResult{Item: item, GoldGained: gold}, nil
}
