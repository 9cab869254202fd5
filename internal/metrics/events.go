package metrics

import (
	"context"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/event"
	"github.com/osse101/SoulCrawler_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. A payload that cannot be decoded is
// counted as a handler error and skipped.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.EncounterStarted:
		p, err := event.DecodePayload[domain.EncounterStartedPayload](evt.Payload)
		if err != nil {
			return err
		}
		EncountersStarted.WithLabelValues(string(p.Variant)).Inc()

	case event.AttackResolved:
		p, err := event.DecodePayload[domain.AttackResolvedPayload](evt.Payload)
		if err != nil {
			return err
		}
		HitDamage.Observe(float64(p.Damage))
		if p.Critical {
			CriticalHits.Inc()
		}
		if p.Enraged {
			EnragedHits.Inc()
		}

	case event.MonsterDefeated:
		p, err := event.DecodePayload[domain.MonsterDefeatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		MonstersDefeated.WithLabelValues(string(p.Variant)).Inc()

	case event.CharacterDefeated:
		CharacterDeaths.Inc()

	case event.EncounterFled:
		p, err := event.DecodePayload[domain.EncounterFledPayload](evt.Payload)
		if err != nil {
			return err
		}
		outcome := OutcomeCaught
		if p.Success {
			outcome = OutcomeEscaped
		}
		FleeAttempts.WithLabelValues(outcome).Inc()

	case event.LootDropped:
		p, err := event.DecodePayload[domain.LootDroppedPayload](evt.Payload)
		if err != nil {
			return err
		}
		LootDropped.WithLabelValues(string(p.Rarity)).Inc()

	case event.LevelUp:
		LevelUps.Inc()

	case event.ItemSold:
		p, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsSold.WithLabelValues(p.ItemName).Inc()
		GoldEarned.Add(float64(p.Gold))

	case event.ItemBought:
		p, err := event.DecodePayload[domain.ItemBoughtPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsBought.WithLabelValues(p.ItemName).Inc()
		GoldSpent.Add(float64(p.Gold))

	case event.ItemUsed:
		p, err := event.DecodePayload[domain.ItemUsedPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsUsed.WithLabelValues(p.ItemName).Inc()
	}
	return nil
}
