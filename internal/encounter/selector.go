// Package encounter picks the next opponent from the character's progress.
package encounter

import (
	"fmt"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/utils"
)

// Selector chooses opponents from a read-only roster.
type Selector struct {
	roster *Roster
	rng    utils.Roller
}

// NewSelector creates a selector. The roster needs at least one monster and one boss.
func NewSelector(roster *Roster, rng utils.Roller) (*Selector, error) {
	if len(roster.Monsters) == 0 || len(roster.Bosses) == 0 {
		return nil, fmt.Errorf("%w: roster needs at least one monster and one boss", domain.ErrInvalidConstruction)
	}
	return &Selector{roster: roster, rng: rng}, nil
}

// Select returns a fresh opponent for a character with defeatedEnemies victories.
// Every tenth victory meets the next boss on the ladder, staying on the last boss once
// the ladder runs out. Otherwise a normal monster is drawn uniformly from the eligible
// easiest prototypes.
func (s *Selector) Select(defeatedEnemies int) *domain.Monster {
	if IsBossEncounter(defeatedEnemies) {
		return s.roster.Bosses[BossIndex(defeatedEnemies, len(s.roster.Bosses))].Spawn()
	}

	eligible := min(PoolWidth(defeatedEnemies), len(s.roster.Monsters))
	return s.roster.Monsters[utils.Pick(s.rng, eligible)].Spawn()
}

// IsBossEncounter reports whether the next fight is a boss fight.
func IsBossEncounter(defeatedEnemies int) bool {
	return defeatedEnemies > 0 && defeatedEnemies%BossInterval == 0
}

// BossIndex returns the ladder position for a boss encounter, clamped to the last boss.
func BossIndex(defeatedEnemies, bosses int) int {
	return min(defeatedEnemies/BossInterval-1, bosses-1)
}

// PoolWidth returns how many of the easiest prototypes are eligible. The width never
// shrinks as victories accumulate.
func PoolWidth(defeatedEnemies int) int {
	for _, step := range poolWidths {
		if defeatedEnemies < step.below {
			return step.width
		}
	}
	return maxPoolWidth
}
