// Package main provides an effect viewer tool for tuning the hit and
// explosion effects without playing a round.
//
// Usage:
//
//	go run ./cmd/effects [flags]
//
// Flags:
//
//	--config <path>       Game config YAML (effect parameters are read from it)
//	--effect <name>       Start with specific effect (e.g., --effect=ExplosionBlue)
//	--auto-play           Spawn the current effect at screen center every second
//
// Controls:
//
//	Mouse Click       - Spawn effect at cursor position
//	Left/Right Arrow  - Switch to previous/next effect
//	Space             - Spawn effect at screen center
//	P                 - Toggle pause
//	R                 - Clear all active effects
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/scenes"
	"github.com/decker502/plasmaraid/pkg/systems"
	"github.com/decker502/plasmaraid/pkg/world"
)

var (
	configFlag   = flag.String("config", "data/game.yaml", "Game config YAML")
	effectFlag   = flag.String("effect", "", "Start with specific effect name")
	autoPlayFlag = flag.Bool("auto-play", false, "Spawn the current effect every second")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit")

// EffectViewer implements ebiten.Game for the effect viewer
type EffectViewer struct {
	cfg       config.GameConfig
	particles *systems.ParticleSystem
	renderer  *scenes.Renderer

	current  int
	paused   bool
	autoPlay bool
	ticks    int
}

func newEffectViewer(cfg config.GameConfig) *EffectViewer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &EffectViewer{
		cfg:       cfg,
		particles: systems.NewParticleSystem(cfg, rng),
		renderer:  scenes.NewRenderer(cfg.SpriteSize, cfg.RenderScale),
		current:   presetIndex(*effectFlag),
		autoPlay:  *autoPlayFlag,
	}
}

func (v *EffectViewer) center() components.Coordinate {
	c := (v.cfg.ScreenSize - v.cfg.SpriteSize) / 2
	return components.C(c, c)
}

func (v *EffectViewer) spawn(at components.Coordinate) {
	p := presets[v.current]
	p.Emit(v.particles, at)
	log.Printf("[EffectViewer] Spawned %s at %s (active=%d)", p.Name, at, v.particles.Len())
}

// Update handles input and advances the effects one frame
func (v *EffectViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.current = cycle(v.current, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.current = cycle(v.current, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.particles = systems.NewParticleSystem(v.cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.spawn(v.center())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := v.renderer.Transform().FromRender(float64(mx), float64(my))
		// 鼠标位置作为效果中心，换算回精灵左上角
		half := float64(v.cfg.SpriteSize) / 2
		v.spawn(components.C(int(x-half), int(y-half)))
	}

	if v.paused {
		return nil
	}
	v.ticks++
	if v.autoPlay && v.ticks%v.cfg.FramesPerSecond == 0 {
		v.spawn(v.center())
	}
	v.particles.Update()
	return nil
}

// Draw renders the active effects and the help text
func (v *EffectViewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen, world.Snapshot{Effects: v.particles.Effects()})

	status := ""
	if v.paused {
		status = " [PAUSED]"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Effect %d/%d: %s%s", v.current+1, len(presets), presets[v.current].Name, status), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Active: %d", v.particles.Len()), 10, 26)
	ebitenutil.DebugPrintAt(screen, "Click/Space spawn  <- -> switch  P pause  R clear  Q quit", 10, 42)
}

// Layout returns the logical screen size
func (v *EffectViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := int(float64(v.cfg.ScreenSize) * v.cfg.RenderScale)
	return size, size
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	viewer := newEffectViewer(cfg)
	w, h := viewer.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Plasma Raid - Effect Viewer")
	ebiten.SetTPS(cfg.FramesPerSecond)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
