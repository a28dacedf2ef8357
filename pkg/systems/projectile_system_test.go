package systems

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/entities"
	"github.com/decker502/plasmaraid/pkg/events"
	"github.com/decker502/plasmaraid/pkg/types"
)

func TestProjectileMovesUpAndIsCulled(t *testing.T) {
	r := newTestRig(t, config.DefaultGameConfig())
	r.projectiles.Spawn(components.C(64, 64))

	r.projectiles.Update(noTargets{})
	if got := r.projectiles.Projectiles()[0].Position; got != components.C(64, 60) {
		t.Fatalf("after 1 frame projectile at %v, want (64,60)", got)
	}

	// y = 64 - 4k；k=18 时 y=-8 仍在界内，k=19 时 y=-12 被剔除
	for i := 0; i < 17; i++ {
		r.projectiles.Update(noTargets{})
	}
	if r.projectiles.Len() != 1 {
		t.Fatalf("projectile culled too early at y=-8")
	}
	if evs := r.projectiles.Update(noTargets{}); len(evs) != 0 {
		t.Errorf("culling produced events: %v", evs)
	}
	if r.projectiles.Len() != 0 {
		t.Errorf("projectile still alive past the top edge")
	}
}

// TestFireScenario 玩家在 (64,64) 开火，1 帧后子弹出现在 (64,64)，60 帧内被剔除
func TestFireScenario(t *testing.T) {
	r := newTestRig(t, config.DefaultGameConfig())
	r.player.SetPosition(components.C(64, 64))
	r.player.StartFiring()
	r.player.Update()
	r.player.EndFiring()

	got := r.projectiles.Projectiles()
	if len(got) != 1 || got[0].Position != components.C(64, 64) {
		t.Fatalf("projectiles after 1 frame = %+v, want one at (64,64)", got)
	}

	for i := 0; i < 60; i++ {
		r.projectiles.Update(noTargets{})
		r.player.Update()
	}
	if r.projectiles.Len() != 0 {
		t.Errorf("%d projectiles alive after 60 frames", r.projectiles.Len())
	}
}

func TestToughEnemyTakesTwoHits(t *testing.T) {
	r := newTestRig(t, config.DefaultGameConfig())
	tough := entities.NewEnemy(r.ids, types.EnemyTough, components.C(64, 40))
	r.enemies.Add(tough)

	r.projectiles.Spawn(components.C(64, 48))
	evs := r.projectiles.Update(r.enemies)
	hits := events.Filter[events.ProjectileEnemyCollision](evs)
	if len(hits) != 1 {
		t.Fatalf("first shot: %d hit events, want 1", len(hits))
	}
	if hits[0].Destroyed || hits[0].EnemyID != tough.ID || hits[0].HitPoints != 1 {
		t.Errorf("first hit = %+v, want enemy %d hp=1 not destroyed", hits[0], tough.ID)
	}
	if r.enemies.Len() != 1 || r.enemies.Enemies()[0].HitPoints != 1 {
		t.Fatalf("tough enemy after one hit: %+v", r.enemies.Enemies())
	}
	if r.projectiles.Len() != 0 {
		t.Error("projectile not removed after a non-lethal hit")
	}

	r.projectiles.Spawn(components.C(64, 48))
	hits = events.Filter[events.ProjectileEnemyCollision](r.projectiles.Update(r.enemies))
	if len(hits) != 1 || !hits[0].Destroyed || hits[0].HitPoints != 0 {
		t.Fatalf("second hit = %+v, want destroyed", hits)
	}
	if r.enemies.Len() != 0 {
		t.Error("destroyed enemy still in the active set")
	}
}

func TestProjectileHitsAtMostOneEnemy(t *testing.T) {
	r := newTestRig(t, config.DefaultGameConfig())
	first := entities.NewEnemy(r.ids, types.EnemyBasic, components.C(30, 30))
	second := entities.NewEnemy(r.ids, types.EnemyBasic, components.C(30, 30))
	r.enemies.Add(first, second)

	r.projectiles.Spawn(components.C(30, 34))
	hits := events.Filter[events.ProjectileEnemyCollision](r.projectiles.Update(r.enemies))
	if len(hits) != 1 {
		t.Fatalf("%d hits for one projectile, want 1", len(hits))
	}
	// 反向扫描：最后插入的敌人先被命中
	if hits[0].EnemyID != second.ID {
		t.Errorf("hit enemy %d, want the last inserted %d", hits[0].EnemyID, second.ID)
	}
	if r.enemies.Len() != 1 || r.enemies.Enemies()[0].ID != first.ID {
		t.Errorf("survivors = %+v", r.enemies.Enemies())
	}
}

func TestProjectileMissKeepsFlying(t *testing.T) {
	r := newTestRig(t, config.DefaultGameConfig())
	r.enemies.Add(entities.NewEnemy(r.ids, types.EnemyBasic, components.C(100, 30)))
	r.projectiles.Spawn(components.C(10, 60))

	if evs := r.projectiles.Update(r.enemies); len(evs) != 0 {
		t.Fatalf("unexpected events %v", evs)
	}
	if r.projectiles.Len() != 1 || r.enemies.Len() != 1 {
		t.Errorf("miss removed something: projectiles=%d enemies=%d", r.projectiles.Len(), r.enemies.Len())
	}
}

// TestEnemyPresentIffAlive 任意命中序列后，活动集合中的敌人生命值都 > 0，
// 被摧毁的敌人都不在集合中
func TestEnemyPresentIffAlive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultGameConfig()
		ids := &entities.IDSource{}
		es := NewEnemySystem(cfg, NewWaveSpawnSystem(cfg, config.DefaultWaveTable(), ids), nil)
		ps := NewProjectileSystem(cfg, ids)

		allTypes := []types.EnemyType{types.EnemyBasic, types.EnemyTough, types.EnemySpinning, types.EnemyBoss}
		n := rapid.IntRange(1, 6).Draw(t, "enemies")
		for i := 0; i < n; i++ {
			typ := rapid.SampledFrom(allTypes).Draw(t, "type")
			col := rapid.IntRange(0, 3).Draw(t, "col")
			es.Add(entities.NewEnemy(ids, typ, components.C(col*16, 20)))
		}

		destroyed := map[uint64]bool{}
		shots := rapid.IntRange(0, 30).Draw(t, "shots")
		for i := 0; i < shots; i++ {
			col := rapid.IntRange(0, 3).Draw(t, "shotCol")
			ps.Spawn(components.C(col*16, 24))
			for _, hit := range events.Filter[events.ProjectileEnemyCollision](ps.Update(es)) {
				if hit.HitPoints < 0 {
					t.Fatalf("negative hit points in %+v", hit)
				}
				if hit.Destroyed {
					destroyed[hit.EnemyID] = true
				}
			}
			for _, e := range es.Enemies() {
				if e.HitPoints <= 0 {
					t.Fatalf("enemy %d with hp %d in the active set", e.ID, e.HitPoints)
				}
				if destroyed[e.ID] {
					t.Fatalf("destroyed enemy %d still active", e.ID)
				}
			}
		}
	})
}
