package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	hud := HUD.Get()
	require.NotNil(t, hud)
	small := Small.Get()
	assert.Less(t, small.Metrics().Height, hud.Metrics().Height)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	assert.Error(t, err)
	assert.Panics(t, func() { FontName("broken").Get() })
}
