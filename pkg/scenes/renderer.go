package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/systems"
	"github.com/decker502/plasmaraid/pkg/types"
	"github.com/decker502/plasmaraid/pkg/utils"
	"github.com/decker502/plasmaraid/pkg/world"
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	playerColor     = color.RGBA{R: 41, G: 173, B: 255, A: 255}
	projectileColor = color.RGBA{R: 255, G: 236, B: 39, A: 255}
	flashColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	sparkColor      = color.RGBA{R: 255, G: 241, B: 232, A: 255}
	shockwaveColor  = color.RGBA{R: 255, G: 241, B: 232, A: 255}
)

// enemyColors 每种敌人的主色
var enemyColors = map[types.EnemyType]color.RGBA{
	types.EnemyBasic:    {R: 0, G: 228, B: 54, A: 255},
	types.EnemyTough:    {R: 255, G: 163, B: 0, A: 255},
	types.EnemySpinning: {R: 255, G: 119, B: 168, A: 255},
	types.EnemyBoss:     {R: 255, G: 0, B: 77, A: 255},
}

// starColors 按层次由近及远
var starColors = [...]color.RGBA{
	{R: 255, G: 241, B: 232, A: 255},
	{R: 194, G: 195, B: 199, A: 255},
	{R: 95, G: 87, B: 79, A: 255},
}

// Renderer 将快照画到屏幕上
// 只读快照，不修改模拟状态
type Renderer struct {
	transform  components.RenderTransform
	spriteSize float64
}

// NewRenderer 创建渲染器
//
// 参数：
//
//	spriteSize - 逻辑精灵边长
//	scale - 逻辑单位到像素的缩放
func NewRenderer(spriteSize int, scale float64) *Renderer {
	return &Renderer{
		transform:  components.RenderTransform{Scale: scale},
		spriteSize: float64(spriteSize),
	}
}

// Transform 返回坐标变换
func (r *Renderer) Transform() components.RenderTransform {
	return r.transform
}

// Draw 绘制一帧：星空、效果、子弹、敌人、玩家
func (r *Renderer) Draw(screen *ebiten.Image, snap world.Snapshot) {
	screen.Fill(backgroundColor)

	for _, s := range snap.Stars {
		r.drawStar(screen, s)
	}
	for i := range snap.Effects {
		r.drawEffect(screen, &snap.Effects[i])
	}
	for _, p := range snap.Projectiles {
		x, y := r.transform.ToRender(p.Position)
		w := r.transform.Scale
		// 子弹是精灵中央的一道细光
		vector.DrawFilledRect(screen, float32(x+r.pixels(r.spriteSize/2)-w), float32(y),
			float32(2*w), float32(r.pixels(r.spriteSize/2)), projectileColor, false)
	}
	for i := range snap.Enemies {
		r.drawEnemy(screen, &snap.Enemies[i])
	}
	if PlayerVisible(snap.Player, snap.Frame) {
		r.drawPlayer(screen, snap.Player)
	}
}

func (r *Renderer) pixels(units float64) float64 {
	return units * r.transform.Scale
}

func (r *Renderer) drawStar(screen *ebiten.Image, s systems.Star) {
	x, y := r.transform.PointToRender(s.X, s.Y)
	size := float32(r.transform.Scale)
	if s.Layer > 0 {
		size /= 2
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, StarColor(s.Layer), false)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p components.PlayerComponent) {
	x, y := r.transform.ToRender(p.Position)
	size := r.pixels(r.spriteSize)

	unit := r.pixels(1)

	// 机身
	vector.DrawFilledRect(screen, float32(x+size/2-unit), float32(y), float32(2*unit), float32(size), playerColor, false)
	// 机翼
	vector.DrawFilledRect(screen, float32(x), float32(y+size/2), float32(size), float32(size/4), playerColor, false)
	vector.DrawFilledRect(screen, float32(x+unit), float32(y+size-unit), float32(size-2*unit), float32(unit), playerColor, false)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *components.EnemyComponent) {
	x, y := r.transform.ToRender(e.Position)
	size := r.pixels(r.spriteSize)
	c := EnemyColor(e)

	// 动画帧改变机身宽度，做出摆动效果
	inset := r.pixels(float64(e.Frame%2) + 1)
	vector.DrawFilledRect(screen, float32(x+inset), float32(y+r.pixels(1)),
		float32(size-2*inset), float32(size-r.pixels(2)), c, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, c, false)
}

func (r *Renderer) drawEffect(screen *ebiten.Image, e *components.EffectComponent) {
	x, y := r.transform.PointToRender(e.X, e.Y)
	switch e.Kind {
	case types.EffectSpark:
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.transform.Scale), float32(r.transform.Scale), sparkColor, false)
	case types.EffectRing:
		radius := r.pixels(float64(e.Stage + 1))
		vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), float32(r.transform.Scale), e.Tint, true)
	case types.EffectShockwave:
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r.pixels(e.Radius)), float32(r.transform.Scale), ShockwaveColor(e), true)
	case types.EffectBoom:
		if e.Size <= 0 {
			return
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r.pixels(e.Size)), e.Color, true)
	}
}

// PlayerVisible 无敌期间玩家每 4 帧闪烁一次
func PlayerVisible(p components.PlayerComponent, frame int) bool {
	if !p.IsInvulnerable() {
		return true
	}
	return (frame/2)%2 == 0
}

// EnemyColor 敌人的绘制颜色，受击闪烁时为白色
func EnemyColor(e *components.EnemyComponent) color.RGBA {
	if e.HitFlash > 0 {
		return flashColor
	}
	if c, ok := enemyColors[e.Type]; ok {
		return c
	}
	return enemyColors[types.DefaultEnemyType]
}

// ShockwaveColor 冲击波随年龄淡出
// 预乘 alpha，RGB 与 A 同比例缩放
func ShockwaveColor(e *components.EffectComponent) color.RGBA {
	a := utils.FadeAlpha(e.Age, e.MaxAge)
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 255) }
	return color.RGBA{R: scale(shockwaveColor.R), G: scale(shockwaveColor.G), B: scale(shockwaveColor.B), A: a}
}

// StarColor 星星颜色，越远越暗
func StarColor(layer int) color.RGBA {
	if layer < 0 {
		layer = 0
	}
	if layer >= len(starColors) {
		layer = len(starColors) - 1
	}
	return starColors[layer]
}
