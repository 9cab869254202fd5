package combat

import (
	"fmt"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// State is the position of an encounter in its lifecycle.
type State string

const (
	StateExchange State = "exchange"
	StateVictory  State = "victory"
	StateDefeat   State = "defeat"
	StateFled     State = "fled"
)

// IsTerminal reports whether no further action is possible in this state.
func (s State) IsTerminal() bool {
	return s == StateVictory || s == StateDefeat || s == StateFled
}

// Encounter is one fight against a live monster copy.
type Encounter struct {
	Monster *domain.Monster `json:"monster"`
	State   State           `json:"state"`
	Turns   int             `json:"turns"`
}

// NewEncounter wraps a live monster in an encounter ready for the first exchange.
func NewEncounter(m *domain.Monster) *Encounter {
	return &Encounter{Monster: m, State: StateExchange}
}

// IsOver reports whether the encounter reached a terminal state.
func (e *Encounter) IsOver() bool {
	return e.State.IsTerminal()
}

func checkActive(enc *Encounter) error {
	if enc == nil || enc.Monster == nil {
		return domain.ErrNoEncounter
	}
	if enc.IsOver() {
		return fmt.Errorf("%w (%s against %s)", domain.ErrEncounterOver, enc.State, enc.Monster.Name)
	}
	return nil
}
