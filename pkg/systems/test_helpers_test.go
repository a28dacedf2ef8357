package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/entities"
	"github.com/decker502/plasmaraid/pkg/events"
)

// noTargets 没有任何敌人的命中结算器
type noTargets struct{}

func (noTargets) ResolveHit(uint64, components.Coordinate) (events.ProjectileEnemyCollision, bool) {
	return events.ProjectileEnemyCollision{}, false
}

// testRig 一组共享 ID 分配器的系统
type testRig struct {
	cfg         config.GameConfig
	ids         *entities.IDSource
	projectiles *ProjectileSystem
	player      *PlayerSystem
	waves       *WaveSpawnSystem
	enemies     *EnemySystem
}

func newTestRig(t *testing.T, cfg config.GameConfig) *testRig {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	ids := &entities.IDSource{}
	rng := rand.New(rand.NewSource(1))
	projectiles := NewProjectileSystem(cfg, ids)
	waves := NewWaveSpawnSystem(cfg, config.DefaultWaveTable(), ids)
	return &testRig{
		cfg:         cfg,
		ids:         ids,
		projectiles: projectiles,
		player:      NewPlayerSystem(cfg, projectiles),
		waves:       waves,
		enemies:     NewEnemySystem(cfg, waves, rng),
	}
}

// frame 按固定顺序推进一帧（不含效果）
func (r *testRig) frame() []events.Event {
	evs := r.projectiles.Update(r.enemies)
	r.player.Update()
	return append(evs, r.enemies.Update(r.player)...)
}
