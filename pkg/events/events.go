// Package events 定义模拟核心每帧产出的领域事件
//
// World.Advance() 返回一个事件切片，由宿主（场景、音效、HUD）在帧结束后消费。
// 事件均为值类型，只读，可安全保留。
package events

import (
	"fmt"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/types"
)

// Event 领域事件（封闭集合）
type Event interface {
	fmt.Stringer
	isEvent()
}

// ProjectileEnemyCollision 子弹命中敌人
// Destroyed 为 true 表示本次命中将敌人生命值归零，敌人已从活动集合移除
type ProjectileEnemyCollision struct {
	EnemyID      uint64
	ProjectileID uint64
	EnemyType    types.EnemyType
	Position     components.Coordinate // 敌人被命中时的坐标
	HitPoints    int                   // 命中后的剩余生命值
	Destroyed    bool
}

// PlayerEnemyCollision 玩家与敌人碰撞（玩家失去一条命）
type PlayerEnemyCollision struct {
	EnemyID  uint64
	Position components.Coordinate // 玩家坐标
}

// NewWave 新一波敌人生成
type NewWave struct {
	Ordinal    int
	EnemyCount int
}

// GameOver 生命值归零，整局只触发一次
type GameOver struct {
	Score int
	Wave  int
}

// Win 波次序号超过配置上限，整局只触发一次
type Win struct {
	Ordinal int
	Score   int
}

func (ProjectileEnemyCollision) isEvent() {}
func (PlayerEnemyCollision) isEvent()     {}
func (NewWave) isEvent()                  {}
func (GameOver) isEvent()                 {}
func (Win) isEvent()                      {}

func (e ProjectileEnemyCollision) String() string {
	return fmt.Sprintf("hit enemy=%d(%s) projectile=%d at=%v hp=%d destroyed=%t",
		e.EnemyID, e.EnemyType, e.ProjectileID, e.Position, e.HitPoints, e.Destroyed)
}

func (e PlayerEnemyCollision) String() string {
	return fmt.Sprintf("collision enemy=%d at=%v", e.EnemyID, e.Position)
}

func (e NewWave) String() string {
	return fmt.Sprintf("wave %d (%d enemies)", e.Ordinal, e.EnemyCount)
}

func (e GameOver) String() string {
	return fmt.Sprintf("game over score=%d wave=%d", e.Score, e.Wave)
}

func (e Win) String() string {
	return fmt.Sprintf("win after wave %d score=%d", e.Ordinal, e.Score)
}

// Count 统计切片中某一类事件的数量
func Count[T Event](evs []Event) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

// Filter 取出切片中某一类事件
func Filter[T Event](evs []Event) []T {
	var out []T
	for _, ev := range evs {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}
