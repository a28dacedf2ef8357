package components

import (
	"fmt"

	"github.com/decker502/plasmaraid/pkg/types"
)

// Coordinate 逻辑网格上的整数坐标
//
// 网格大小为 ScreenSize × ScreenSize，y 轴向下为正。
// 合法游戏坐标位于 [0, ScreenSize)，精灵的左上角锚定在坐标上。
// 值类型，随意复制，从不共享。
type Coordinate struct {
	X int
	Y int
}

// C 构造 Coordinate 的便捷函数
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String 返回坐标的字符串表示
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move 按方向平移 step 个单位，不做边界检查
func (c Coordinate) Move(d types.Direction, step int) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx*step, Y: c.Y + dy*step}
}

// WrapIfNeeded 坐标离开 [0, edge] 时传送到对边
// 用于自由漫游的实体（背景、敌人的水平方向）
func (c Coordinate) WrapIfNeeded(edge int) Coordinate {
	c.X = Wrap(c.X, edge)
	c.Y = Wrap(c.Y, edge)
	return c
}

// Wrap 单轴环绕：小于 0 传送到 edge，大于 edge 传送到 0
// 星空等浮点坐标的实体也走这条规则
func Wrap[T int | float64](v, edge T) T {
	switch {
	case v < 0:
		return edge
	case v > edge:
		return 0
	}
	return v
}

// Contain 将坐标钳制在 [0, edge] 内
// 用于玩家，使其无法穿墙绕回；与 WrapIfNeeded 是两条不同的规则，不要合并
func (c Coordinate) Contain(edge int) Coordinate {
	c.X = clamp(c.X, 0, edge)
	c.Y = clamp(c.Y, 0, edge)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RenderTransform 逻辑坐标到渲染坐标的仿射变换
//
//	screenX = X*Scale + OffsetX
//	screenY = Y*Scale + OffsetY
type RenderTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// ToRender 将逻辑坐标转换为渲染坐标（像素）
func (rt RenderTransform) ToRender(c Coordinate) (float64, float64) {
	return rt.PointToRender(float64(c.X), float64(c.Y))
}

// PointToRender 转换浮点逻辑坐标（视觉效果使用浮点位置）
func (rt RenderTransform) PointToRender(x, y float64) (float64, float64) {
	return x*rt.Scale + rt.OffsetX, y*rt.Scale + rt.OffsetY
}

// FromRender 逆变换，Scale 为 0 时返回原点
func (rt RenderTransform) FromRender(sx, sy float64) (float64, float64) {
	if rt.Scale == 0 {
		return 0, 0
	}
	return (sx - rt.OffsetX) / rt.Scale, (sy - rt.OffsetY) / rt.Scale
}
