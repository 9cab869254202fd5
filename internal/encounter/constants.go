package encounter

// BossInterval is the number of victories between boss encounters.
const BossInterval = 10

// poolWidths lists how many of the difficulty-ordered prototypes are eligible, keyed
// by the victory count below which the width applies. Past the last step every
// prototype is eligible.
var poolWidths = []struct {
	below int
	width int
}{
	{5, 2},
	{10, 3},
	{20, 4},
}

// maxPoolWidth is the width once every threshold has been passed.
const maxPoolWidth = 5

// ConfigVersion is the expected monster document version.
const ConfigVersion = "1.0"

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextFailedToReadMonsterFile  = "failed to read monsters file"
	ErrContextFailedToParseMonsterFile = "failed to parse monsters"
	ErrContextFailedToValidateSchema   = "monsters failed schema validation"
	ErrMsgUnsupportedVersionFmt        = "unsupported monster file version %q (expected %q)"
	ErrMsgInvalidPrototypeFmt          = "prototype %d: %w"
)
