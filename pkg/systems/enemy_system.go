package systems

import (
	"math/rand"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/events"
	"github.com/decker502/plasmaraid/pkg/types"
)

// PlayerTarget 敌人系统对玩家的视图
type PlayerTarget interface {
	Position() components.Coordinate
	IsInvulnerable() bool
	Hit()
}

// EnemySystem 敌人与波次系统
//
// 每帧：
//  1. 活动集合为空时生成下一波（NewWave）
//  2. 所有敌人下落一步，越过底部的敌人传送到顶部随机列（不会被摧毁）
//  3. 推进动画游标与受击闪烁
//  4. 玩家碰撞检测（无敌期间跳过）
//
// 活动集合只包含生命值 > 0 的敌人。
type EnemySystem struct {
	cfg     config.GameConfig
	waves   *WaveSpawnSystem
	rng     *rand.Rand
	enemies []components.EnemyComponent
}

// NewEnemySystem 创建敌人系统，初始时活动集合为空
//
// 参数:
//   - cfg: 游戏配置
//   - waves: 波次生成系统
//   - rng: 随机数源（用于底部逃逸后的随机 X）
//
// 返回:
//   - *EnemySystem: 敌人系统实例
func NewEnemySystem(cfg config.GameConfig, waves *WaveSpawnSystem, rng *rand.Rand) *EnemySystem {
	return &EnemySystem{
		cfg:   cfg,
		waves: waves,
		rng:   rng,
	}
}

// Enemies 返回活动敌人（只读）
func (s *EnemySystem) Enemies() []components.EnemyComponent {
	return s.enemies
}

// Len 活动敌人数量
func (s *EnemySystem) Len() int {
	return len(s.enemies)
}

// Wave 当前波次序号
func (s *EnemySystem) Wave() int {
	return s.waves.Ordinal()
}

// Cleared 最后一波已清空且已达到波次上限
func (s *EnemySystem) Cleared() bool {
	return len(s.enemies) == 0 && s.waves.Exhausted()
}

// Add 直接加入敌人（生命值为 0 的忽略），用于测试与调试场景
func (s *EnemySystem) Add(enemies ...components.EnemyComponent) {
	for _, e := range enemies {
		if e.HitPoints > 0 {
			s.enemies = append(s.enemies, e)
		}
	}
}

// ResolveHit 用坐标 at 的子弹命中第一个重叠的敌人（反向扫描）
//
// 命中使生命值减一并触发闪烁；生命值归零的敌人立即从活动集合移除。
func (s *EnemySystem) ResolveHit(projectileID uint64, at components.Coordinate) (events.ProjectileEnemyCollision, bool) {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := &s.enemies[i]
		if !Collides(at, e.Position, s.cfg.SpriteSize, s.cfg.CollisionPad) {
			continue
		}

		e.HitPoints = max(e.HitPoints-1, 0)
		e.HitFlash = s.cfg.Enemy.HitFlashFrames
		ev := events.ProjectileEnemyCollision{
			EnemyID:      e.ID,
			ProjectileID: projectileID,
			EnemyType:    e.Type,
			Position:     e.Position,
			HitPoints:    e.HitPoints,
			Destroyed:    e.HitPoints == 0,
		}
		if ev.Destroyed {
			s.remove(i)
		}
		return ev, true
	}
	return events.ProjectileEnemyCollision{}, false
}

// Update 推进一帧并返回波次与玩家碰撞事件
func (s *EnemySystem) Update(player PlayerTarget) []events.Event {
	var evs []events.Event

	if len(s.enemies) == 0 {
		if batch, ok := s.waves.Next(); ok {
			s.enemies = append(s.enemies, batch...)
			evs = append(evs, events.NewWave{Ordinal: s.waves.Ordinal(), EnemyCount: len(batch)})
		}
	}

	for i := len(s.enemies) - 1; i >= 0; i-- {
		s.advance(&s.enemies[i])
	}

	return append(evs, s.collidePlayer(player)...)
}

func (s *EnemySystem) advance(e *components.EnemyComponent) {
	e.Position = e.Position.Move(types.DirectionDown, s.cfg.Enemy.Step)
	if e.Position.Y > s.cfg.ScreenSize {
		e.Position = components.C(s.rng.Intn(s.cfg.Edge()+1), -s.cfg.SpriteSize)
	}

	stats := e.Type.Stats()
	e.FrameTick++
	if e.FrameTick >= stats.FrameDelay {
		e.FrameTick = 0
		e.Frame = (e.Frame + 1) % max(stats.FrameCount, 1)
	}

	if e.HitFlash > 0 {
		e.HitFlash--
	}
}

// collidePlayer 玩家碰撞检测
//
// HitPolicyFirst：第一个重叠的敌人结算后立即结束扫描。
// HitPolicyEvery：所有重叠的敌人各结算一次，扫描结束后才进入无敌。
// 敌人不会因撞击玩家而被摧毁。
func (s *EnemySystem) collidePlayer(player PlayerTarget) []events.Event {
	if player.IsInvulnerable() {
		return nil
	}

	var evs []events.Event
	at := player.Position()
	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := &s.enemies[i]
		if !Collides(at, e.Position, s.cfg.SpriteSize, s.cfg.CollisionPad) {
			continue
		}
		evs = append(evs, events.PlayerEnemyCollision{EnemyID: e.ID, Position: at})
		if s.cfg.PlayerHitPolicy != config.HitPolicyEvery {
			break
		}
	}
	if len(evs) > 0 {
		player.Hit()
	}
	return evs
}

func (s *EnemySystem) remove(i int) {
	last := len(s.enemies) - 1
	s.enemies[i] = s.enemies[last]
	s.enemies = s.enemies[:last]
}
