package components

import "github.com/decker502/plasmaraid/pkg/types"

// EnemyComponent 敌人状态
//
// 状态机：alive(HitPoints>0) → hit(HitPoints-1, 闪烁) → destroyed(HitPoints==0)。
// 被摧毁的敌人在同一次碰撞中从活动集合移除，不存在"已死但可见"的帧。
type EnemyComponent struct {
	ID        uint64
	Type      types.EnemyType
	Position  Coordinate
	HitPoints int

	// 动画游标，独立于位置推进
	Frame     int // 当前动画帧
	FrameTick int // 当前帧已持续的模拟帧数

	// HitFlash 受击闪烁剩余帧数（纯视觉）
	HitFlash int
}
