package systems

import "github.com/decker502/plasmaraid/pkg/components"

// Collides 检查两个同尺寸精灵的碰撞盒是否重叠
//
// 碰撞盒为 [x+pad, x+width-pad] × [y+pad, y+width-pad]（y 轴向下），
// 每侧收缩 pad 个单位，擦边不算命中。
// 只有当一个盒子完全位于另一个的左、右、上、下方时才判定为不碰撞，
// 因此边缘恰好接触也算碰撞。结果与参数顺序无关。
//
// 参数:
//   - a, b: 两个精灵的左上角坐标
//   - width: 精灵边长（SpriteSize）
//   - pad: 每侧收缩量（CollisionPad）
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true
func Collides(a, b components.Coordinate, width, pad int) bool {
	aLeft, aRight := a.X+pad, a.X+width-pad
	aTop, aBottom := a.Y+pad, a.Y+width-pad
	bLeft, bRight := b.X+pad, b.X+width-pad
	bTop, bBottom := b.Y+pad, b.Y+width-pad

	return !(aRight < bLeft ||
		aLeft > bRight ||
		aBottom < bTop ||
		aTop > bBottom)
}
