package world

import (
	"slices"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/systems"
)

// Snapshot 渲染用的只读状态视图
//
// 所有切片都是副本，持有方可以随意保留，不会被后续 Advance 修改。
type Snapshot struct {
	SessionID string
	Frame     int
	Outcome   Outcome

	Player      components.PlayerComponent
	Projectiles []components.ProjectileComponent
	Enemies     []components.EnemyComponent
	Effects     []components.EffectComponent
	Stars       []systems.Star

	Score      int
	Lives      int
	TotalLives int
	Wave       int
}

// Snapshot 返回当前状态的只读副本
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		SessionID:   w.sessionID.String(),
		Frame:       w.frame,
		Outcome:     w.outcome,
		Player:      w.player.Player(),
		Projectiles: slices.Clone(w.projectiles.Projectiles()),
		Enemies:     slices.Clone(w.enemies.Enemies()),
		Effects:     slices.Clone(w.particles.Effects()),
		Stars:       slices.Clone(w.stars.Stars()),
		Score:       w.state.Score,
		Lives:       w.state.Lives,
		TotalLives:  w.state.TotalLives,
		Wave:        w.enemies.Wave(),
	}
}
