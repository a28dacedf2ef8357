package components

import "github.com/decker502/plasmaraid/pkg/types"

// PlayerComponent 玩家状态
//
// 三条相互独立的状态轴：
//   - Direction：最后按下的方向键，仅在松开同一个键时清除
//   - Firing / FireTimer：开火标志与下一发的倒计时（帧）
//   - Invulnerable：受击后的无敌倒计时（帧），大于 0 时忽略敌人碰撞
//
// 玩家不会死亡，只会失去生命。
type PlayerComponent struct {
	Position     Coordinate
	Direction    types.Direction
	Firing       bool
	FireTimer    int
	Invulnerable int
}

// IsInvulnerable 是否处于无敌窗口
func (p *PlayerComponent) IsInvulnerable() bool {
	return p.Invulnerable > 0
}
