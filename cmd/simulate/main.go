// Package main runs the simulation headless and prints the event log.
//
// Usage:
//
//	go run ./cmd/simulate [flags]
//
// Flags:
//
//	--frames <n>      Maximum frames to simulate (default 3000)
//	--seed <n>        Random seed override (0 keeps the config value)
//	--config <path>   Game config YAML (default data/game.yaml)
//	--waves <path>    Wave table YAML (default data/waves.yaml)
//	--idle            Disable the autopilot (player never moves or fires)
//	--quiet           Only print the summary
//	--verbose         Enable system logging
//
// The summary is printed as YAML so runs can be diffed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/events"
	"github.com/decker502/plasmaraid/pkg/world"
)

var (
	framesFlag  = flag.Int("frames", 3000, "Maximum frames to simulate")
	seedFlag    = flag.Int64("seed", 0, "Random seed override (0 keeps the config value)")
	configFlag  = flag.String("config", config.DefaultGameConfigPath, "Game config YAML")
	wavesFlag   = flag.String("waves", config.DefaultWaveTablePath, "Wave table YAML")
	idleFlag    = flag.Bool("idle", false, "Disable the autopilot")
	quietFlag   = flag.Bool("quiet", false, "Only print the summary")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// summary 运行结束后的统计
type summary struct {
	Session  string         `yaml:"session"`
	Seed     int64          `yaml:"seed"`
	Frames   int            `yaml:"frames"`
	Outcome  string         `yaml:"outcome"`
	Score    int            `yaml:"score"`
	Lives    int            `yaml:"lives"`
	Wave     int            `yaml:"wave"`
	Enemies  int            `yaml:"enemies"`
	Effects  int            `yaml:"effects"`
	Counters map[string]int `yaml:"events"`
}

// run 推进模拟直到结束或达到帧数上限
func run(w *world.World, maxFrames int, pilot *autopilot, out io.Writer) summary {
	counters := map[string]int{}
	for w.Snapshot().Frame < maxFrames && !w.Finished() {
		if pilot != nil {
			pilot.apply(w, w.Snapshot())
		}
		evs := w.Advance()
		frame := w.Snapshot().Frame
		for _, ev := range evs {
			counters[eventName(ev)]++
			if out != nil {
				fmt.Fprintf(out, "%6d  %s\n", frame, ev)
			}
		}
	}

	snap := w.Snapshot()
	return summary{
		Session:  snap.SessionID,
		Seed:     w.Seed(),
		Frames:   snap.Frame,
		Outcome:  snap.Outcome.String(),
		Score:    snap.Score,
		Lives:    snap.Lives,
		Wave:     snap.Wave,
		Enemies:  len(snap.Enemies),
		Effects:  len(snap.Effects),
		Counters: counters,
	}
}

func eventName(ev events.Event) string {
	switch ev.(type) {
	case events.ProjectileEnemyCollision:
		return "projectile_hit"
	case events.PlayerEnemyCollision:
		return "player_hit"
	case events.NewWave:
		return "new_wave"
	case events.GameOver:
		return "game_over"
	case events.Win:
		return "win"
	default:
		return "unknown"
	}
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	waves, err := config.LoadWaveTable(*wavesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := world.New(cfg, waves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var pilot *autopilot
	if !*idleFlag {
		pilot = &autopilot{}
		w.StartFiring()
	}
	var out io.Writer = os.Stdout
	if *quietFlag {
		out = nil
	}

	s := run(w, *framesFlag, pilot, out)

	data, err := yaml.Marshal(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("---")
	fmt.Print(string(data))
}
