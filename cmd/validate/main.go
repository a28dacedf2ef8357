// Package main validates the game config and wave table YAML files.
//
// Usage:
//
//	go run ./cmd/validate [--config data/game.yaml] [--waves data/waves.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/plasmaraid/pkg/config"
)

var (
	configFlag = flag.String("config", config.DefaultGameConfigPath, "Game config YAML")
	wavesFlag  = flag.String("waves", config.DefaultWaveTablePath, "Wave table YAML")
)

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	failed := false

	cfg, err := config.LoadGameConfig(*configFlag)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		failed = true
	} else {
		fmt.Printf("✅ %s: screen=%d sprite=%d fps=%d lives=%d policy=%s\n",
			*configFlag, cfg.ScreenSize, cfg.SpriteSize, cfg.FramesPerSecond, cfg.Lives, cfg.PlayerHitPolicy)
		if cfg.Wave.Ceiling == 0 {
			fmt.Printf("✅ 无尽模式（没有波次上限）\n")
		} else {
			fmt.Printf("✅ 波次上限: %d\n", cfg.Wave.Ceiling)
		}
	}

	waves, err := config.LoadWaveTable(*wavesFlag)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		failed = true
	} else {
		for _, ordinal := range waves.Ordinals() {
			fmt.Printf("✅ wave %d: %d 个敌人\n", ordinal, waves.Layout(ordinal).EnemyCount())
		}
		fmt.Printf("✅ default: %d 个敌人\n", waves.Default.EnemyCount())
	}

	if failed {
		os.Exit(1)
	}
}
