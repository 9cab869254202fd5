package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Combat metric names
const (
	MetricNameEncountersStarted = "encounters_started_total"
	MetricNameMonstersDefeated  = "monsters_defeated_total"
	MetricNameCharacterDeaths   = "character_deaths_total"
	MetricNameHitDamage         = "hit_damage"
	MetricNameCriticalHits      = "critical_hits_total"
	MetricNameEnragedHits       = "enraged_hits_total"
	MetricNameFleeAttempts      = "flee_attempts_total"
	MetricNameLootDropped       = "loot_dropped_total"
	MetricNameLevelUps          = "level_ups_total"
)

// Economy metric names
const (
	MetricNameItemsSold   = "items_sold_total"
	MetricNameItemsBought = "items_bought_total"
	MetricNameItemsUsed   = "items_used_total"
	MetricNameGoldEarned  = "gold_earned_total"
	MetricNameGoldSpent   = "gold_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextEncountersStarted = "Total number of encounters started"
	HelpTextMonstersDefeated  = "Total number of monsters defeated"
	HelpTextCharacterDeaths   = "Total number of characters defeated"
	HelpTextHitDamage         = "Damage dealt per hit"
	HelpTextCriticalHits      = "Total number of critical hits"
	HelpTextEnragedHits       = "Total number of hits by enraged bosses"
	HelpTextFleeAttempts      = "Total number of flee attempts"
	HelpTextLootDropped       = "Total number of loot drops"
	HelpTextLevelUps          = "Total number of levels gained"

	HelpTextItemsSold   = "Total number of items sold"
	HelpTextItemsBought = "Total number of items bought"
	HelpTextItemsUsed   = "Total number of items used"
	HelpTextGoldEarned  = "Total gold earned from selling items"
	HelpTextGoldSpent   = "Total gold spent buying items"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType    = "type"
	LabelVariant = "variant"
	LabelOutcome = "outcome"
	LabelRarity  = "rarity"
	LabelItem    = "item"
)

// Flee outcome label values
const (
	OutcomeEscaped = "escaped"
	OutcomeCaught  = "caught"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// DamageBuckets spans chip damage up to legendary-weapon critical hits.
var DamageBuckets = []float64{1, 5, 10, 20, 40, 80, 160, 320}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
