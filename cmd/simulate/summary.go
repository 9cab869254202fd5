package main

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SoulCrawler_Go/internal/character"
	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/eventlog"
)

// printSummary writes the end-of-run report with grouped numbers.
func printSummary(w io.Writer, sessionID string, c *domain.Character, t tally) {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	outcome := "survived"
	if t.Defeated {
		outcome = "fell in battle"
	}

	p.Fprintf(w, "%s %s after %d encounters (session %s)\n", title.String(c.Name), outcome, t.Encounters, sessionID)
	p.Fprintf(w, "  Level %d  exp %d/%d  health %d/%d\n", c.Level, c.Exp, c.ExpToNextLevel, c.Health, c.MaxHealth)
	p.Fprintf(w, "  Attack %d  defense %d  crit %d%%\n",
		character.EffectiveAttack(c), character.EffectiveDefense(c), character.EffectiveCriticalChance(c))
	p.Fprintf(w, "  Victories %d  escapes %d  monsters slain %d\n", t.Victories, t.Escapes, c.DefeatedEnemies)
	p.Fprintf(w, "  Gold %d  souls %d\n", c.Gold, c.Souls)
	p.Fprintf(w, "  Potions drunk %d  items equipped %d  sold %d  bought %d\n", t.Potions, t.Equipped, t.Sold, t.Bought)

	for _, item := range c.Equipment.Equipped() {
		p.Fprintf(w, "  Wearing %s (%s)\n", item.Name, title.String(string(item.Rarity)))
	}
}

// printHistory writes the journal tail oldest first, one event per line.
func printHistory(w io.Writer, history []eventlog.Event) {
	if len(history) == 0 {
		return
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Last %d events:\n", len(history))
	for i := len(history) - 1; i >= 0; i-- {
		evt := history[i]
		p.Fprintf(w, "  %-20s %s\n", evt.EventType, describeEvent(evt.Payload))
	}
}

// describeEvent picks the most telling payload fields for a one-line description.
func describeEvent(payload map[string]interface{}) string {
	for _, key := range []string{"monster_name", "item_name", "target"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	if v, ok := payload["new_level"].(float64); ok {
		return message.NewPrinter(language.English).Sprintf("level %d", int(v))
	}
	return ""
}
