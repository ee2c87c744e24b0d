package systems

import (
	"log"

	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/savedata"
)

var store *savedata.Store

// InitPersistence opens the save store for sandbox unlocks
func InitPersistence() error {
	s, err := savedata.Open("kinetic")
	if err != nil {
		return err
	}
	store = s
	return nil
}

// LoadAbilities returns the saved unlock set, or nil when nothing is saved or
// the save cannot be read.
func LoadAbilities() *cfg.AbilityConfig {
	saved, err := store.LoadAbilities()
	if err != nil {
		log.Printf("Warning: Could not load abilities: %v", err)
		return nil
	}
	return saved
}

// SaveAbilities writes the unlock set to disk. A failed write is logged and
// the sandbox keeps running with the unsaved gates.
func SaveAbilities(a cfg.AbilityConfig) {
	if err := store.SaveAbilities(a); err != nil {
		log.Printf("Warning: Could not save abilities to %s: %v", store.Path(), err)
	}
}
