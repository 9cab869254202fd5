package encounter

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
	"github.com/osse101/SoulCrawler_Go/internal/validation"
)

//go:embed data/monsters.json
var defaultMonsters []byte

type prototypeConfig struct {
	Name    string         `json:"name"`
	Health  int            `json:"health"`
	Attack  int            `json:"attack"`
	Defense int            `json:"defense"`
	Souls   int            `json:"souls"`
	Gold    int            `json:"gold"`
	Rarity  string         `json:"rarity"`
	Skills  []string       `json:"skills"`
	Enrage  *domain.Enrage `json:"enrage"`
}

type rosterConfig struct {
	Version  string            `json:"version"`
	Monsters []prototypeConfig `json:"monsters"`
	Bosses   []prototypeConfig `json:"bosses"`
}

// Roster holds the monster and boss prototypes, each list ordered by difficulty.
type Roster struct {
	Monsters []domain.Monster
	Bosses   []domain.Monster
}

// DefaultRoster loads the bundled prototypes.
func DefaultRoster() (*Roster, error) {
	return LoadRoster(defaultMonsters, validation.NewSchemaValidator())
}

// LoadRosterFile loads prototypes from a JSON file on disk.
func LoadRosterFile(path string, validator validation.SchemaValidator) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadMonsterFile, err)
	}
	return LoadRoster(data, validator)
}

// LoadRoster validates data against the monster schema and builds a Roster.
func LoadRoster(data []byte, validator validation.SchemaValidator) (*Roster, error) {
	if err := validator.ValidateBytes(data, validation.SchemaMonsters); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToValidateSchema, err)
	}

	var cfg rosterConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseMonsterFile, err)
	}
	if cfg.Version != ConfigVersion {
		return nil, fmt.Errorf(ErrMsgUnsupportedVersionFmt, cfg.Version, ConfigVersion)
	}

	monsters, err := buildPrototypes(cfg.Monsters, domain.VariantNormal)
	if err != nil {
		return nil, err
	}
	bosses, err := buildPrototypes(cfg.Bosses, domain.VariantBoss)
	if err != nil {
		return nil, err
	}
	return &Roster{Monsters: monsters, Bosses: bosses}, nil
}

func buildPrototypes(configs []prototypeConfig, variant domain.MonsterVariant) ([]domain.Monster, error) {
	prototypes := make([]domain.Monster, 0, len(configs))
	for i, pc := range configs {
		m := domain.Monster{
			Name:          pc.Name,
			Variant:       variant,
			Health:        pc.Health,
			InitialHealth: pc.Health,
			Attack:        pc.Attack,
			Defense:       pc.Defense,
			Souls:         pc.Souls,
			Gold:          pc.Gold,
			Rarity:        pc.Rarity,
			Skills:        pc.Skills,
		}
		if variant == domain.VariantBoss {
			m.Enrage = domain.DefaultEnrage()
			if pc.Enrage != nil {
				m.Enrage = *pc.Enrage
			}
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidPrototypeFmt, i, err)
		}
		prototypes = append(prototypes, m)
	}
	return prototypes, nil
}
