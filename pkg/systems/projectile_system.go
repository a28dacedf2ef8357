package systems

import (
	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/entities"
	"github.com/decker502/plasmaraid/pkg/events"
	"github.com/decker502/plasmaraid/pkg/types"
)

// HitResolver 结算一次子弹命中
// 返回 false 表示该坐标上没有可命中的敌人
type HitResolver interface {
	ResolveHit(projectileID uint64, at components.Coordinate) (events.ProjectileEnemyCollision, bool)
}

// ProjectileSystem 等离子弹池
//
// 每帧：向上移动 → 越过顶部一个精灵高度后静默剔除 → 与敌人碰撞检测。
// 每枚子弹每帧最多结算一次命中，命中后无论敌人是否被摧毁都移除子弹。
type ProjectileSystem struct {
	cfg         config.GameConfig
	ids         *entities.IDSource
	projectiles []components.ProjectileComponent
}

// NewProjectileSystem 创建子弹系统
//
// 参数:
//   - cfg: 游戏配置
//   - ids: 与敌人共享的 ID 分配器
//
// 返回:
//   - *ProjectileSystem: 子弹系统实例
func NewProjectileSystem(cfg config.GameConfig, ids *entities.IDSource) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg, ids: ids}
}

// Spawn 在指定坐标生成一枚子弹
func (s *ProjectileSystem) Spawn(at components.Coordinate) {
	s.projectiles = append(s.projectiles, entities.NewProjectile(s.ids, at))
}

// Projectiles 返回存活子弹（只读，调用方不要修改）
func (s *ProjectileSystem) Projectiles() []components.ProjectileComponent {
	return s.projectiles
}

// Len 存活子弹数量
func (s *ProjectileSystem) Len() int {
	return len(s.projectiles)
}

// Update 推进一帧并返回命中事件
//
// 反向遍历，移除时用末尾元素覆盖当前位置，不影响尚未访问的下标。
func (s *ProjectileSystem) Update(targets HitResolver) []events.Event {
	var evs []events.Event
	top := -s.cfg.SpriteSize

	for i := len(s.projectiles) - 1; i >= 0; i-- {
		p := &s.projectiles[i]
		p.Position = p.Position.Move(types.DirectionUp, s.cfg.Projectile.Step)

		if p.Position.Y < top {
			s.remove(i)
			continue
		}

		if ev, ok := targets.ResolveHit(p.ID, p.Position); ok {
			evs = append(evs, ev)
			s.remove(i)
		}
	}
	return evs
}

func (s *ProjectileSystem) remove(i int) {
	last := len(s.projectiles) - 1
	s.projectiles[i] = s.projectiles[last]
	s.projectiles = s.projectiles[:last]
}
