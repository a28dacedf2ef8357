package systems

import (
	"math/rand"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
)

// 星星速度分档
const (
	starMinSpeed    = 0.2
	starSlowSpeed   = 0.6
	starNormalSpeed = 1.8
	starMaxSpeed    = 2.5
	starCount       = 100
)

// Star 背景星星
// Layer 0 最近最亮，2 最远最暗
type Star struct {
	X, Y  float64
	Speed float64
	Layer int
}

// StarFieldSystem 滚动星空背景
// 纯视觉，星星向下漂移，越过底部后回到顶部（环绕而非钳制）
type StarFieldSystem struct {
	size  float64
	stars []Star
}

// NewStarFieldSystem 在屏幕内随机撒下星星
func NewStarFieldSystem(cfg config.GameConfig, rng *rand.Rand) *StarFieldSystem {
	size := float64(cfg.ScreenSize)
	stars := make([]Star, starCount)
	for i := range stars {
		speed := starMinSpeed + rng.Float64()*(starMaxSpeed-starMinSpeed)
		stars[i] = Star{
			X:     float64(rng.Intn(cfg.ScreenSize)),
			Y:     float64(rng.Intn(cfg.ScreenSize)),
			Speed: speed,
			Layer: starLayer(speed),
		}
	}
	return &StarFieldSystem{size: size, stars: stars}
}

func starLayer(speed float64) int {
	switch {
	case speed < starSlowSpeed:
		return 2
	case speed < starNormalSpeed:
		return 1
	default:
		return 0
	}
}

// Stars 返回星星（只读）
func (s *StarFieldSystem) Stars() []Star {
	return s.stars
}

// Update 推进一帧
func (s *StarFieldSystem) Update() {
	for i := range s.stars {
		st := &s.stars[i]
		st.Y = components.Wrap(st.Y+st.Speed, s.size)
	}
}
