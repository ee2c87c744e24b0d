// Command kinetic-sim replays a scripted input sequence through the movement
// controller against a level and prints one CSV row per frame.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/automoto/kinetic/assets"
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/sim"
)

func main() {
	levelPath := flag.String("level", assets.DefaultLevel, "TMX file or embedded level name")
	tunablesPath := flag.String("tunables", "", "YAML tuning file (empty uses defaults)")
	scriptPath := flag.String("script", "", "YAML input script")
	realtime := flag.Bool("realtime", false, "Pace frames at the script's tick rate")
	allAbilities := flag.Bool("all-abilities", false, "Unlock every ability")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}

	tun := config.DefaultMovement()
	abilities := config.Abilities
	if *tunablesPath != "" {
		f, err := config.Load(*tunablesPath)
		if err != nil {
			log.Fatalf("Failed to load tunables: %v", err)
		}
		tun = f.Movement
		abilities = f.Abilities
	}
	if *allAbilities {
		abilities = config.AllAbilities()
	}

	level, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	script, err := sim.LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := sim.New(level, &tun, abilities, config.World)
	loop := sim.NewLoop(runner, script, *realtime)

	w := csv.NewWriter(os.Stdout)
	_ = w.Write([]string{"frame", "x", "y", "vx", "vy", "grounded", "wall_sliding", "mode", "double_jump", "deaths"})
	err = loop.Run(ctx, func(s sim.Sample) {
		_ = w.Write([]string{
			strconv.Itoa(s.Frame),
			formatFloat(s.X),
			formatFloat(s.Y),
			formatFloat(s.VX),
			formatFloat(s.VY),
			strconv.FormatBool(s.Grounded),
			strconv.FormatBool(s.WallSliding),
			s.Mode,
			strconv.FormatBool(s.DoubleJump),
			strconv.Itoa(s.Deaths),
		})
	})
	w.Flush()
	if err != nil {
		log.Printf("Stopped after %d frames: %v", runner.Frame, err)
	}
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to write trace: %v", err)
	}
}

func loadLevel(path string) (*leveldata.Level, error) {
	if filepath.Ext(path) != ".tmx" {
		return assets.LoadLevel(path)
	}
	return leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
