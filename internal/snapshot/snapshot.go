// Package snapshot converts a character to and from its flat persisted form. Restoring
// rejects any snapshot that would break a character invariant before a character exists.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SoulCrawler_Go/internal/domain"
)

// CurrentVersion is written by Capture and the only version Restore accepts.
const CurrentVersion = 1

// Snapshot is the flat, self-describing save of a character.
type Snapshot struct {
	Version         int              `json:"version" validate:"eq=1"`
	Name            string           `json:"name" validate:"required,charname,max=64"`
	Level           int              `json:"level" validate:"min=1"`
	Exp             int              `json:"exp" validate:"min=0"`
	ExpToNextLevel  int              `json:"exp_to_next_level" validate:"min=1,gtfield=Exp"`
	Health          int              `json:"health" validate:"min=0,ltefield=MaxHealth"`
	MaxHealth       int              `json:"max_health" validate:"min=1"`
	Attack          int              `json:"attack" validate:"min=0"`
	Defense         int              `json:"defense" validate:"min=0"`
	Strength        int              `json:"strength" validate:"min=0"`
	Agility         int              `json:"agility" validate:"min=0"`
	Intelligence    int              `json:"intelligence" validate:"min=0"`
	CriticalChance  int              `json:"critical_chance" validate:"min=0,max=100"`
	CriticalEffect  int              `json:"critical_effect" validate:"min=100"`
	Lifesteal       int              `json:"lifesteal" validate:"min=0"`
	Gold            int              `json:"gold" validate:"min=0"`
	Souls           int              `json:"souls" validate:"min=0"`
	DefeatedEnemies int              `json:"defeated_enemies" validate:"min=0"`
	Inventory       []domain.Item    `json:"inventory"`
	Equipment       domain.Equipment `json:"equipment"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("charname", validateCharacterName)
		validate = v
	})
	return validate
}

// validateCharacterName rejects names that are blank or carry control characters.
func validateCharacterName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.TrimSpace(name) != name || name == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsControl) < 0
}

// Capture copies the character into a snapshot. The snapshot shares no memory with c.
func Capture(c *domain.Character) *Snapshot {
	return &Snapshot{
		Version:         CurrentVersion,
		Name:            c.Name,
		Level:           c.Level,
		Exp:             c.Exp,
		ExpToNextLevel:  c.ExpToNextLevel,
		Health:          c.Health,
		MaxHealth:       c.MaxHealth,
		Attack:          c.Attack,
		Defense:         c.Defense,
		Strength:        c.Strength,
		Agility:         c.Agility,
		Intelligence:    c.Intelligence,
		CriticalChance:  c.CriticalChance,
		CriticalEffect:  c.CriticalEffect,
		Lifesteal:       c.Lifesteal,
		Gold:            c.Gold,
		Souls:           c.Souls,
		DefeatedEnemies: c.DefeatedEnemies,
		Inventory:       append([]domain.Item{}, c.Inventory...),
		Equipment:       copyEquipment(c.Equipment),
	}
}

// Encode serializes the snapshot as JSON.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses and validates a serialized snapshot. Unknown fields are rejected.
func Decode(data []byte) (*Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the field tags, then the item and equipment rules.
func (s *Snapshot) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrMalformedSnapshot, describe(err))
	}

	// The character rules cover inventory items and slot consistency.
	if err := s.character().Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}
	return nil
}

// Restore validates the snapshot and rebuilds the character from it.
func Restore(s *Snapshot) (*domain.Character, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty snapshot", domain.ErrMalformedSnapshot)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.character(), nil
}

func (s *Snapshot) character() *domain.Character {
	return &domain.Character{
		Name:            s.Name,
		Level:           s.Level,
		Exp:             s.Exp,
		ExpToNextLevel:  s.ExpToNextLevel,
		Health:          s.Health,
		MaxHealth:       s.MaxHealth,
		Attack:          s.Attack,
		Defense:         s.Defense,
		Strength:        s.Strength,
		Agility:         s.Agility,
		Intelligence:    s.Intelligence,
		CriticalChance:  s.CriticalChance,
		CriticalEffect:  s.CriticalEffect,
		Lifesteal:       s.Lifesteal,
		Gold:            s.Gold,
		Souls:           s.Souls,
		DefeatedEnemies: s.DefeatedEnemies,
		Inventory:       append([]domain.Item{}, s.Inventory...),
		Equipment:       copyEquipment(s.Equipment),
	}
}

func copyEquipment(e domain.Equipment) domain.Equipment {
	var out domain.Equipment
	if e.Weapon != nil {
		w := *e.Weapon
		out.Weapon = &w
	}
	if e.Armor != nil {
		a := *e.Armor
		out.Armor = &a
	}
	for accessoryType, item := range e.Accessories {
		if item == nil {
			continue
		}
		acc := *item
		out.Set(domain.SlotAccessory, accessoryType, &acc)
	}
	return out
}

// describe flattens validator errors into "field: tag" pairs.
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
