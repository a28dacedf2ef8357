// Package world 组装模拟核心并按固定顺序逐帧推进
//
// 宿主（ebiten 场景、无头模拟器、测试）只通过 World 交互：
// 输入信号 → Advance() → 事件切片 + Snapshot()。
// World 单线程使用，不加锁。
package world

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/entities"
	"github.com/decker502/plasmaraid/pkg/events"
	"github.com/decker502/plasmaraid/pkg/game"
	"github.com/decker502/plasmaraid/pkg/systems"
	"github.com/decker502/plasmaraid/pkg/types"
)

// Outcome 一局游戏的结局
type Outcome int

const (
	OutcomePlaying  Outcome = iota // 进行中
	OutcomeGameOver                // 生命归零
	OutcomeWon                     // 超过波次上限
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "game over"
	case OutcomeWon:
		return "won"
	default:
		return "playing"
	}
}

// World 一局游戏
type World struct {
	sessionID uuid.UUID
	cfg       config.GameConfig
	seed      int64
	frame     int
	outcome   Outcome

	ids         entities.IDSource
	state       *game.GameState
	player      *systems.PlayerSystem
	projectiles *systems.ProjectileSystem
	waves       *systems.WaveSpawnSystem
	enemies     *systems.EnemySystem
	particles   *systems.ParticleSystem
	stars       *systems.StarFieldSystem
}

// New 创建一局新游戏
//
// 参数:
//   - cfg: 游戏配置，Seed 为 0 时使用当前时间作为随机种子
//   - table: 波次表
//
// 返回:
//   - *World: 处于第 0 帧的新世界，第一次 Advance 生成第 1 波
//   - error: 配置或波次表无效
func New(cfg config.GameConfig, table config.WaveTable) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wave table: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		sessionID: uuid.New(),
		cfg:       cfg,
		seed:      seed,
		state:     game.NewGameState(cfg.Lives),
	}
	w.projectiles = systems.NewProjectileSystem(cfg, &w.ids)
	w.player = systems.NewPlayerSystem(cfg, w.projectiles)
	w.waves = systems.NewWaveSpawnSystem(cfg, table, &w.ids)
	w.enemies = systems.NewEnemySystem(cfg, w.waves, rng)
	w.particles = systems.NewParticleSystem(cfg, rng)
	w.stars = systems.NewStarFieldSystem(cfg, rng)

	log.Printf("[World] Session %s started (seed=%d, lives=%d, ceiling=%d)",
		w.sessionID, seed, cfg.Lives, cfg.Wave.Ceiling)
	return w, nil
}

// SessionID 本局的唯一标识
func (w *World) SessionID() uuid.UUID { return w.sessionID }

// Seed 本局实际使用的随机种子，可写回配置复现同一局
func (w *World) Seed() int64 { return w.seed }

// Config 本局配置
func (w *World) Config() config.GameConfig { return w.cfg }

// Outcome 当前结局
func (w *World) Outcome() Outcome { return w.outcome }

// Finished 是否已结束（游戏结束或胜利）
func (w *World) Finished() bool { return w.outcome != OutcomePlaying }

// SetDirection 方向键按下
func (w *World) SetDirection(d types.Direction) { w.player.SetDirection(d) }

// ClearDirectionIfMatches 方向键松开
func (w *World) ClearDirectionIfMatches(d types.Direction) { w.player.ClearDirectionIfMatches(d) }

// StartFiring 开火键按下
func (w *World) StartFiring() { w.player.StartFiring() }

// EndFiring 开火键松开
func (w *World) EndFiring() { w.player.EndFiring() }

// Advance 推进一帧并返回本帧产生的事件
//
// 顺序：
//  1. 子弹移动与命中结算（摧毁 +1 分）
//  2. 玩家移动、开火、无敌倒计时
//  3. 视觉效果（包含第 1 步新产生的效果）与星空
//  4. 敌人生成、下落、玩家碰撞（扣命）
//  5. 结局判定：生命归零 → GameOver，超过波次上限 → Win，各只触发一次
//
// 结束后再调用返回 nil，且不再修改任何状态。
func (w *World) Advance() []events.Event {
	if w.Finished() {
		return nil
	}
	w.frame++

	evs := w.projectiles.Update(w.enemies)
	for _, hit := range events.Filter[events.ProjectileEnemyCollision](evs) {
		if hit.Destroyed {
			w.state.AddScore(1)
			w.particles.EmitExplosion(hit.Position, types.PaletteRed)
		} else {
			w.particles.EmitHit(hit.Position)
		}
	}

	w.player.Update()

	w.particles.Update()
	w.stars.Update()

	for _, ev := range w.enemies.Update(w.player) {
		if collision, ok := ev.(events.PlayerEnemyCollision); ok {
			w.state.SubtractLife()
			w.particles.EmitExplosion(collision.Position, types.PaletteBlue)
		}
		evs = append(evs, ev)
	}

	switch {
	case w.state.IsDead():
		w.outcome = OutcomeGameOver
		evs = append(evs, events.GameOver{Score: w.state.Score, Wave: w.enemies.Wave()})
		log.Printf("[World] Session %s game over at frame %d (score=%d, wave=%d)",
			w.sessionID, w.frame, w.state.Score, w.enemies.Wave())
	case w.enemies.Cleared():
		w.outcome = OutcomeWon
		evs = append(evs, events.Win{Ordinal: w.enemies.Wave(), Score: w.state.Score})
		log.Printf("[World] Session %s won at frame %d (score=%d, wave=%d)",
			w.sessionID, w.frame, w.state.Score, w.enemies.Wave())
	}
	return evs
}
