// Package savedata keeps the sandbox's unlock set between runs using gdata.
package savedata

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/kinetic/config"
	"github.com/quasilyte/gdata"
)

const abilitiesItem = "abilities"

// Store wraps a gdata manager. A nil Store loads nothing and saves nothing.
type Store struct {
	m *gdata.Manager
}

func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, err
	}
	return &Store{m: m}, nil
}

// LoadAbilities returns the saved unlock set, or nil when nothing is saved.
func (s *Store) LoadAbilities() (*config.AbilityConfig, error) {
	if s == nil {
		return nil, nil
	}
	data, err := s.m.LoadItem(abilitiesItem)
	if err != nil {
		return nil, fmt.Errorf("load abilities: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var abilities config.AbilityConfig
	if err := json.Unmarshal(data, &abilities); err != nil {
		return nil, fmt.Errorf("parse saved abilities: %w", err)
	}
	return &abilities, nil
}

func (s *Store) SaveAbilities(a config.AbilityConfig) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode abilities: %w", err)
	}
	if err := s.m.SaveItem(abilitiesItem, data); err != nil {
		return fmt.Errorf("save abilities: %w", err)
	}
	return nil
}

// Path is where the unlock set lives, for log messages.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.m.ItemPath(abilitiesItem)
}
