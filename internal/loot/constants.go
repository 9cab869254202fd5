package loot

import "github.com/osse101/SoulCrawler_Go/internal/domain"

// DropChance is the probability that a victory yields a loot item.
const DropChance = 0.6

// tierLadder maps the minimum character level to the tier it unlocks, highest first.
var tierLadder = []struct {
	minLevel int
	tier     domain.Rarity
}{
	{20, domain.RarityLegendary},
	{15, domain.RarityEpic},
	{10, domain.RarityRare},
	{5, domain.RarityUncommon},
	{1, domain.RarityCommon},
}

// ConfigVersion is the expected loot table document version.
const ConfigVersion = "1.0"

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextFailedToLoadLootTables = "failed to load loot tables"
	ErrContextFailedToReadLootFile   = "failed to read loot tables file"
	ErrContextFailedToParseLootFile  = "failed to parse loot tables"
	ErrContextFailedToValidateSchema = "loot tables failed schema validation"
	ErrMsgUnsupportedVersionFmt      = "unsupported loot table version %q (expected %q)"
	ErrMsgMissingTierFmt             = "loot tier %q has no candidates"
	ErrMsgInvalidRangeFmt            = "candidate %q: %s range [%d, %d] is inverted"
	ErrMsgInvalidCandidateFmt        = "candidate %q in tier %q: %w"
)
