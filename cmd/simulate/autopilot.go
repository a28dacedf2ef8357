package main

import (
	"github.com/decker502/plasmaraid/pkg/types"
	"github.com/decker502/plasmaraid/pkg/world"
)

// autopilot 简单的自动驾驶：对准最低的敌人并一直开火
type autopilot struct {
	direction types.Direction
}

// steer 根据快照返回本帧应保持的方向
//
// 目标是屏幕中最低（Y 最大）且仍在玩家上方的敌人；
// 没有目标时停下。
func (a *autopilot) steer(snap world.Snapshot) types.Direction {
	player := snap.Player.Position
	targetX, found := 0, false
	lowest := 0
	for _, e := range snap.Enemies {
		if e.Position.Y > player.Y {
			continue
		}
		if !found || e.Position.Y > lowest {
			targetX, lowest, found = e.Position.X, e.Position.Y, true
		}
	}

	switch {
	case !found || targetX == player.X:
		return types.DirectionNone
	case targetX < player.X:
		return types.DirectionLeft
	default:
		return types.DirectionRight
	}
}

// apply 把方向变化翻译成输入信号
func (a *autopilot) apply(w *world.World, snap world.Snapshot) {
	next := a.steer(snap)
	if next == a.direction {
		return
	}
	if a.direction != types.DirectionNone {
		w.ClearDirectionIfMatches(a.direction)
	}
	if next != types.DirectionNone {
		w.SetDirection(next)
	}
	a.direction = next
}
