package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/plasmaraid/pkg/app"
	"github.com/decker502/plasmaraid/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Game config YAML (default: embedded data/game.yaml)")
	wavesFlag   = flag.String("waves", "", "Wave table YAML (default: embedded data/waves.yaml)")
	seedFlag    = flag.Int64("seed", 0, "Random seed override (0 keeps the config value)")
	muteFlag    = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		WavesPath:  *wavesFlag,
		Seed:       *seedFlag,
		Mute:       *muteFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Plasma Raid")
	ebiten.SetTPS(gameApp.TPS())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
