package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/events"
	"github.com/decker502/plasmaraid/pkg/world"
)

// Env 创建场景所需的共享依赖
type Env struct {
	Config config.GameConfig
	Waves  config.WaveTable
	Sounds *SoundPlayer
}

// Result 一局游戏的结局，标题场景用来显示结算画面
type Result struct {
	Outcome world.Outcome
	Score   int
	Wave    int
}

// GameScene 游戏进行中的场景
//
// 每个 tick 推进一次模拟：读取输入、Advance、播放音效、更新横幅。
// 模拟结束后切换回标题场景并显示结局。
type GameScene struct {
	sm    *SceneManager
	env   Env
	world *world.World
	keys  KeyState

	renderer *Renderer
	hud      *HUD
	banner   WaveBanner

	snap         world.Snapshot
	lastShotID   uint64
	onFinishedFn func(Result)
}

// NewGameScene 创建新的一局
//
// 返回：
//
//	*GameScene - 游戏场景
//	error - 如果配置或波次表无效
func NewGameScene(sm *SceneManager, env Env) (*GameScene, error) {
	w, err := world.New(env.Config, env.Waves)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	sounds := env.Sounds
	if sounds == nil {
		sounds = NewSoundPlayer(nil, true)
		env.Sounds = sounds
	}

	s := &GameScene{
		sm:       sm,
		env:      env,
		world:    w,
		keys:     ebitenKeys{},
		renderer: NewRenderer(env.Config.SpriteSize, env.Config.RenderScale),
		hud:      NewHUD(env.Config.RenderScale),
	}
	s.onFinishedFn = s.showResult
	s.snap = w.Snapshot()
	log.Printf("[GameScene] New game (session=%s, seed=%d)", w.SessionID(), w.Seed())
	return s, nil
}

// World 返回模拟核心
func (s *GameScene) World() *world.World {
	return s.world
}

// Snapshot 返回最近一帧的快照
func (s *GameScene) Snapshot() world.Snapshot {
	return s.snap
}

// Banner 返回波次横幅
func (s *GameScene) Banner() *WaveBanner {
	return &s.banner
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.step(s.keys)
}

// step 执行一帧的全部逻辑，按键来源可替换
func (s *GameScene) step(keys KeyState) {
	if s.world.Finished() {
		return
	}

	TranslateInput(keys, s.world)
	evs := s.world.Advance()
	s.snap = s.world.Snapshot()

	s.env.Sounds.PlayAll(SoundsFor(evs, s.detectShot()))

	for _, wave := range events.Filter[events.NewWave](evs) {
		s.banner.Show(wave.Ordinal)
	}
	s.banner.Update()

	if s.world.Finished() {
		s.onFinishedFn(Result{Outcome: s.world.Outcome(), Score: s.snap.Score, Wave: s.snap.Wave})
	}
}

// detectShot 本帧是否出现了新的子弹
// 子弹 ID 单调递增，比较最大 ID 即可
func (s *GameScene) detectShot() bool {
	fired := false
	for _, p := range s.snap.Projectiles {
		if p.ID > s.lastShotID {
			s.lastShotID = p.ID
			fired = true
		}
	}
	return fired
}

func (s *GameScene) showResult(r Result) {
	log.Printf("[GameScene] Game finished: %s (score=%d, wave=%d)", r.Outcome, r.Score, r.Wave)
	s.sm.SwitchTo(NewTitleScene(s.sm, s.env.Config.RenderScale, &r))
}

// Draw 绘制游戏画面和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.snap)
	s.hud.Draw(screen, s.snap, s.env.Config.SpriteSize, &s.banner)
}

// NewSceneFactory 返回按名称创建场景的工厂
//
// 无法创建游戏场景时返回 nil，SceneManager 会保持当前场景。
func NewSceneFactory(sm *SceneManager, env Env) SceneFactory {
	return func(name string) Scene {
		switch name {
		case SceneTitle:
			return NewTitleScene(sm, env.Config.RenderScale, nil)
		case ScenePlay:
			s, err := NewGameScene(sm, env)
			if err != nil {
				log.Printf("[SceneFactory] 错误: %v", err)
				return nil
			}
			return s
		default:
			return nil
		}
	}
}
