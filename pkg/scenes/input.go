package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/plasmaraid/pkg/types"
)

// directionBinding 一个方向键与其方向
type directionBinding struct {
	key       ebiten.Key
	direction types.Direction
}

// directionKeys 方向键映射（方向键与 WASD），按固定顺序遍历
// 同一帧按下多个方向键时，排在后面的生效
var directionKeys = []directionBinding{
	{ebiten.KeyArrowLeft, types.DirectionLeft},
	{ebiten.KeyArrowRight, types.DirectionRight},
	{ebiten.KeyArrowUp, types.DirectionUp},
	{ebiten.KeyArrowDown, types.DirectionDown},
	{ebiten.KeyA, types.DirectionLeft},
	{ebiten.KeyD, types.DirectionRight},
	{ebiten.KeyW, types.DirectionUp},
	{ebiten.KeyS, types.DirectionDown},
}

// fireKeys 开火键
var fireKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace}

// Controls 模拟核心接受的输入信号
type Controls interface {
	SetDirection(d types.Direction)
	ClearDirectionIfMatches(d types.Direction)
	StartFiring()
	EndFiring()
}

// KeyState 一帧内按键的边沿与按住状态
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

// ebitenKeys 从 inpututil 读取按键边沿
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }

// DirectionForKey 返回按键对应的方向，不是方向键时返回 false
func DirectionForKey(k ebiten.Key) (types.Direction, bool) {
	for _, b := range directionKeys {
		if b.key == k {
			return b.direction, true
		}
	}
	return types.DirectionNone, false
}

// TranslateInput 将平台按键边沿翻译为输入信号
//
// 先处理松开再处理按下，同一帧内"松开旧键、按下新键"时新方向生效。
// 开火键任意一个仍按住时，松开另一个不会停火。
func TranslateInput(keys KeyState, c Controls) {
	for _, b := range directionKeys {
		if keys.JustReleased(b.key) {
			c.ClearDirectionIfMatches(b.direction)
		}
	}
	for _, b := range directionKeys {
		if keys.JustPressed(b.key) {
			c.SetDirection(b.direction)
		}
	}

	released, pressed, held := false, false, false
	for _, k := range fireKeys {
		released = released || keys.JustReleased(k)
		pressed = pressed || keys.JustPressed(k)
		held = held || keys.Pressed(k)
	}
	if released && !held {
		c.EndFiring()
	}
	if pressed {
		c.StartFiring()
	}
}
