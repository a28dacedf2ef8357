// Package types 定义共享的基础类型
package types

// Direction 定义移动方向
// 玩家由输入设置方向，敌人固定向下，等离子弹固定向上
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionLeft:  "left",
	DirectionRight: "right",
	DirectionUp:    "up",
	DirectionDown:  "down",
}

// String 返回方向的配置字符串
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// Delta 返回单位步长下的 (dx, dy)，y 轴向下为正
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite 返回相反方向，DirectionNone 的相反方向仍是 DirectionNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	default:
		return DirectionNone
	}
}
