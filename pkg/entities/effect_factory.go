package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/types"
)

// RingTint 小波纹的着色（橙色）
var RingTint = color.RGBA{R: 255, G: 163, B: 0, A: 255}

// centerBoomMaxAge 中心爆炸颗粒的 maxAge，短于散射颗粒
const centerBoomMaxAge = 5

// EffectFactory 视觉效果工厂
//
// 所有随机量都来自注入的 rng，固定种子下产出完全可复现。
// 效果以精灵中心为原点生成。
type EffectFactory struct {
	cfg        config.EffectsConfig
	spriteSize int
	rng        *rand.Rand
}

// NewEffectFactory 创建效果工厂
//
// 参数:
//   - cfg: 游戏配置（读取 Effects 与 SpriteSize）
//   - rng: 随机数源
//
// 返回:
//   - *EffectFactory: 工厂实例
func NewEffectFactory(cfg config.GameConfig, rng *rand.Rand) *EffectFactory {
	return &EffectFactory{
		cfg:        cfg.Effects,
		spriteSize: cfg.SpriteSize,
		rng:        rng,
	}
}

// center 返回精灵中心的浮点坐标
func (f *EffectFactory) center(at components.Coordinate) (float64, float64) {
	half := float64(f.spriteSize) / 2
	return float64(at.X) + half, float64(at.Y) + half
}

// SmallSparks 小火花爆发（非致命命中），速度偏向水平方向
func (f *EffectFactory) SmallSparks(at components.Coordinate) []components.EffectComponent {
	sc := f.cfg.Spark
	x, y := f.center(at)
	out := make([]components.EffectComponent, 0, sc.SmallCount)
	for i := 0; i < sc.SmallCount; i++ {
		out = append(out, components.EffectComponent{
			Kind:     types.EffectSpark,
			X:        x,
			Y:        y,
			VX:       sc.SmallSpeedX.Sample(f.rng),
			VY:       sc.SmallSpeedY.Sample(f.rng),
			Friction: sc.Friction,
			MaxAge:   sc.MaxAge.SampleInt(f.rng),
		})
	}
	return out
}

// LargeSparks 大火花爆发（摧毁/撞击），径向均匀散射
func (f *EffectFactory) LargeSparks(at components.Coordinate) []components.EffectComponent {
	sc := f.cfg.Spark
	x, y := f.center(at)
	out := make([]components.EffectComponent, 0, sc.LargeCount)
	for i := 0; i < sc.LargeCount; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := sc.LargeSpeed.Sample(f.rng)
		out = append(out, components.EffectComponent{
			Kind:     types.EffectSpark,
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Friction: sc.Friction,
			MaxAge:   sc.MaxAge.SampleInt(f.rng),
		})
	}
	return out
}

// Ring 小波纹
func (f *EffectFactory) Ring(at components.Coordinate) components.EffectComponent {
	x, y := f.center(at)
	return components.EffectComponent{
		Kind:   types.EffectRing,
		X:      x,
		Y:      y,
		MaxAge: f.cfg.Ring.MaxAge,
		Stages: f.cfg.Ring.Stages,
		Tint:   RingTint,
	}
}

// Shockwave 冲击波圆环
func (f *EffectFactory) Shockwave(at components.Coordinate) components.EffectComponent {
	sw := f.cfg.Shockwave
	x, y := f.center(at)
	return components.EffectComponent{
		Kind:        types.EffectShockwave,
		X:           x,
		Y:           y,
		MaxAge:      sw.MaxAge,
		Radius:      sw.StartRadius,
		StartRadius: sw.StartRadius,
		Growth:      sw.Growth,
	}
}

// Boom 爆炸：Count 个从精灵中心径向散射的颗粒 + 1 个位于精灵原点的中心大颗粒
// 散射颗粒的初始 age 与 maxAge 各自随机，颜色随 age 逐段跳变
func (f *EffectFactory) Boom(at components.Coordinate, palette types.Palette) []components.EffectComponent {
	bc := f.cfg.Boom
	x, y := f.center(at)
	ramp := float64(max(bc.RampFrames, 1))
	out := make([]components.EffectComponent, 0, bc.Count+1)
	for i := 0; i < bc.Count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := bc.Speed.Sample(f.rng)
		age := bc.StartAge.SampleInt(f.rng)
		out = append(out, components.EffectComponent{
			Kind:       types.EffectBoom,
			X:          x,
			Y:          y,
			VX:         math.Cos(angle) * speed,
			VY:         math.Sin(angle) * speed,
			Friction:   bc.Friction,
			Age:        age,
			MaxAge:     bc.MaxAge.SampleInt(f.rng),
			Size:       bc.Size.Sample(f.rng),
			ShrinkRate: bc.ShrinkRate,
			Palette:    palette,
			Color:      BoomColor(palette, float64(age)/ramp),
		})
	}
	out = append(out, components.EffectComponent{
		Kind:       types.EffectBoom,
		X:          float64(at.X),
		Y:          float64(at.Y),
		MaxAge:     centerBoomMaxAge,
		Size:       bc.CenterSize,
		ShrinkRate: bc.ShrinkRate,
		Palette:    palette,
		Color:      BoomColor(palette, 0),
		Center:     true,
	})
	return out
}

// HitBurst 非致命命中：小火花 + 小波纹
func (f *EffectFactory) HitBurst(at components.Coordinate) []components.EffectComponent {
	return append(f.SmallSparks(at), f.Ring(at))
}

// Explosion 摧毁或撞击：大火花 + 冲击波 + 爆炸颗粒
func (f *EffectFactory) Explosion(at components.Coordinate, palette types.Palette) []components.EffectComponent {
	out := f.LargeSparks(at)
	out = append(out, f.Shockwave(at))
	return append(out, f.Boom(at, palette)...)
}
