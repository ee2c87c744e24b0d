package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/kinetic/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// DefaultLevel is the level the sandbox opens with.
const DefaultLevel = "sandbox"

// Levels exposes the embedded levels directory.
func Levels() fs.FS {
	return levelFS
}

// LoadLevel loads an embedded level by stem name.
func LoadLevel(name string) (*leveldata.Level, error) {
	levels, names, err := leveldata.LoadAll(levelFS, "levels")
	if err != nil {
		return nil, err
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q, have %v", name, names)
	}
	return level, nil
}
