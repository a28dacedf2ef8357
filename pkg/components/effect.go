package components

import (
	"image/color"

	"github.com/decker502/plasmaraid/pkg/types"
)

// EffectComponent 视觉效果实例（标签联合体）
//
// Kind 决定哪些字段有意义，ParticleSystem 用 switch 分派更新逻辑：
//   - Spark：X/Y、VX/VY、Friction
//   - Ring：X/Y、Stage、Tint
//   - Shockwave：X/Y、Radius、StartRadius、Growth
//   - Boom：X/Y、VX/VY、Friction、Size、ShrinkRate、Palette、Color
//
// 所有效果都有 Age 和 MaxAge。视觉效果不参与碰撞。
type EffectComponent struct {
	Kind types.EffectKind

	X, Y     float64
	VX, VY   float64
	Friction float64

	Age    int
	MaxAge int

	// Ring
	Stage  int
	Stages int
	Tint   color.RGBA

	// Shockwave
	Radius      float64
	StartRadius float64
	Growth      float64

	// Boom
	Size       float64
	ShrinkRate float64
	Palette    types.Palette
	Color      color.RGBA
	Center     bool
}
