package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Combat Metrics
var (
	EncountersStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersStarted,
			Help: HelpTextEncountersStarted,
		},
		[]string{LabelVariant},
	)

	MonstersDefeated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMonstersDefeated,
			Help: HelpTextMonstersDefeated,
		},
		[]string{LabelVariant},
	)

	CharacterDeaths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharacterDeaths,
			Help: HelpTextCharacterDeaths,
		},
	)

	HitDamage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHitDamage,
			Help:    HelpTextHitDamage,
			Buckets: DamageBuckets,
		},
	)

	CriticalHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCriticalHits,
			Help: HelpTextCriticalHits,
		},
	)

	EnragedHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEnragedHits,
			Help: HelpTextEnragedHits,
		},
	)

	FleeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFleeAttempts,
			Help: HelpTextFleeAttempts,
		},
		[]string{LabelOutcome},
	)

	LootDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootDropped,
			Help: HelpTextLootDropped,
		},
		[]string{LabelRarity},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)
)

// Economy Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)
)
