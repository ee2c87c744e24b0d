package components

import "github.com/yohamta/donburi"

// SettingsData holds sandbox toggles that are not ability gates.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
