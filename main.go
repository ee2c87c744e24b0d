package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/kinetic/assets"
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/fonts"
	"github.com/automoto/kinetic/scenes"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level *leveldata.Level) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(level),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLevel reads a TMX file from disk, or the embedded level by name.
func loadLevel(path string) (*leveldata.Level, error) {
	if path == "" {
		return assets.LoadLevel(assets.DefaultLevel)
	}
	if filepath.Ext(path) != ".tmx" {
		return assets.LoadLevel(path)
	}
	return leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func main() {
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "Draw colliders, probes and the state HUD")
	flag.StringVar(&config.Debug.TunablesPath, "tunables", "", "YAML tuning file, reloaded on save")
	flag.StringVar(&config.Debug.LevelPath, "level", "", "TMX file or embedded level name")
	flag.BoolVar(&config.Debug.AllAbilities, "all-abilities", false, "Unlock every ability")
	flag.Parse()

	if path := config.Debug.TunablesPath; path != "" {
		f, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load tunables: %v", err)
		}
		config.Movement = f.Movement
		config.Abilities = f.Abilities
	}
	if config.Debug.AllAbilities {
		config.Abilities = config.AllAbilities()
	}
	if path := config.Debug.TunablesPath; path != "" {
		if err := systems.WatchTunables(path); err != nil {
			log.Printf("Warning: Could not watch tunables: %v", err)
		}
		defer systems.StopTunables()
	}

	level, err := loadLevel(config.Debug.LevelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("kinetic")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(level)); err != nil {
		log.Fatal(err)
	}
}
