package economy

// Base prices by item kind
const (
	PotionBasePrice    = 10.0
	StatBasePrice      = 50.0
	EquipmentBasePrice = 30.0
)

// Per-point price weights
const (
	PotionHealthDivisor   = 5.0 // health potions add effect/5
	PotionStatWeight      = 2.0 // attack/defense potions add effect*2
	StatEffectWeight      = 5.0
	AttackBonusWeight     = 10.0
	DefenseBonusWeight    = 10.0
	CriticalChanceWeight  = 20.0
	DamageReductionWeight = 25.0
	LifestealWeight       = 30.0
)

// Slot multipliers for equipment
const (
	WeaponMultiplier    = 1.5
	ArmorMultiplier     = 1.3
	AccessoryMultiplier = 1.1
)

// MinimumPrice is the floor applied to every list price.
const MinimumPrice = 5

// SellPriceRatio is the share of the list price paid out when selling.
const SellPriceRatio = 0.8

// ==================== Error Messages ====================

const (
	ErrMsgShopIndexFmt          = "shop has no item at index %d: %w"
	ErrMsgInsufficientFundsFmt  = "cannot afford %s (cost: %d, balance: %d): %w"
	ErrMsgInvalidCatalogItemFmt = "invalid shop item at index %d: %w"
)
