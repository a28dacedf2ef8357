package systems

import (
	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/types"
)

// ProjectileSpawner 接收玩家射出的子弹
type ProjectileSpawner interface {
	Spawn(at components.Coordinate)
}

// PlayerSystem 玩家系统
//
// 负责：
//   - 方向输入（最后按下者优先，只有松开同一方向键才清除）
//   - 移动后钳制在屏幕内（不环绕）
//   - 开火冷却，按住开火键时每 FireCooldown 帧发射一枚
//   - 受击后的无敌倒计时
type PlayerSystem struct {
	cfg     config.GameConfig
	player  components.PlayerComponent
	spawner ProjectileSpawner
}

// NewPlayerSystem 创建玩家系统，玩家位于配置的起始坐标
//
// 参数:
//   - cfg: 游戏配置
//   - spawner: 子弹的接收方（通常是 ProjectileSystem）
//
// 返回:
//   - *PlayerSystem: 玩家系统实例
func NewPlayerSystem(cfg config.GameConfig, spawner ProjectileSpawner) *PlayerSystem {
	return &PlayerSystem{
		cfg: cfg,
		player: components.PlayerComponent{
			Position: components.C(cfg.Player.StartX, cfg.Player.StartY),
		},
		spawner: spawner,
	}
}

// Player 返回玩家状态的副本
func (s *PlayerSystem) Player() components.PlayerComponent {
	return s.player
}

// Position 返回玩家坐标
func (s *PlayerSystem) Position() components.Coordinate {
	return s.player.Position
}

// SetPosition 直接放置玩家（钳制到屏幕内），用于重开局和测试
func (s *PlayerSystem) SetPosition(at components.Coordinate) {
	s.player.Position = at.Contain(s.cfg.Edge())
}

// SetDirection 方向键按下
func (s *PlayerSystem) SetDirection(d types.Direction) {
	s.player.Direction = d
}

// ClearDirectionIfMatches 方向键松开，只有与当前方向一致时才清除
func (s *PlayerSystem) ClearDirectionIfMatches(d types.Direction) {
	if s.player.Direction == d {
		s.player.Direction = types.DirectionNone
	}
}

// StartFiring 开火键按下（幂等，不会重置冷却）
func (s *PlayerSystem) StartFiring() {
	s.player.Firing = true
}

// EndFiring 开火键松开，冷却继续倒数
func (s *PlayerSystem) EndFiring() {
	s.player.Firing = false
}

// IsInvulnerable 玩家是否处于无敌窗口
func (s *PlayerSystem) IsInvulnerable() bool {
	return s.player.IsInvulnerable()
}

// Hit 玩家受击，进入无敌窗口
func (s *PlayerSystem) Hit() {
	s.player.Invulnerable = s.cfg.InvulnerabilityFrames()
}

// Update 推进一帧：移动 → 钳制 → 开火计时 → 无敌倒计时
func (s *PlayerSystem) Update() {
	p := &s.player

	p.Position = p.Position.Move(p.Direction, s.cfg.Player.Step).Contain(s.cfg.Edge())

	if p.FireTimer > 0 {
		p.FireTimer--
	}
	if p.Firing && p.FireTimer == 0 {
		s.spawner.Spawn(p.Position)
		p.FireTimer = s.cfg.Player.FireCooldown
	}

	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}
