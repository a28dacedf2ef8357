// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/scenes"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件，为空时使用嵌入的 data/game.yaml
	ConfigPath string
	// WavesPath 波次布局文件，为空时使用嵌入的 data/waves.yaml
	WavesPath string
	// Seed 覆盖配置文件中的随机种子（0 表示不覆盖）
	Seed int64
	// Mute 关闭音效
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	gameConfig               config.GameConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadSettings 读取游戏配置和波次表
//
// 返回：
//
//	config.GameConfig - 已验证的游戏配置（已应用 Seed 覆盖）
//	config.WaveTable - 已验证的波次表
//	error - 如果任一文件读取或验证失败
func LoadSettings(cfg Config) (config.GameConfig, config.WaveTable, error) {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGameConfigPath
	}
	wavesPath := cfg.WavesPath
	if wavesPath == "" {
		wavesPath = config.DefaultWaveTablePath
	}

	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return config.GameConfig{}, config.WaveTable{}, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		gameConfig.Seed = cfg.Seed
	}

	waves, err := config.LoadWaveTable(wavesPath)
	if err != nil {
		return config.GameConfig{}, config.WaveTable{}, fmt.Errorf("波次表加载失败: %w", err)
	}
	return gameConfig, waves, nil
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, waves, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	var audioContext *audio.Context
	if !cfg.Mute {
		audioContext = audio.NewContext(audioSampleRate)
	}
	sounds := scenes.NewSoundPlayer(audioContext, cfg.Mute)
	log.Printf("[App] SoundPlayer initialized (muted=%v)", sounds.Muted())

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(sceneManager, scenes.Env{
		Config: gameConfig,
		Waves:  waves,
		Sounds: sounds,
	}))
	sceneManager.Load(scenes.SceneTitle)

	log.Printf("[App] Starting (screen=%d, scale=%v, fps=%d)",
		gameConfig.ScreenSize, gameConfig.RenderScale, gameConfig.FramesPerSecond)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// WindowSize 返回窗口像素尺寸（逻辑尺寸乘以缩放）
func (a *App) WindowSize() (int, int) {
	return WindowSize(a.gameConfig)
}

// WindowSize 按配置计算窗口像素尺寸
func WindowSize(cfg config.GameConfig) (int, int) {
	size := int(float64(cfg.ScreenSize) * cfg.RenderScale)
	return size, size
}

// TPS 返回模拟帧率，每个 tick 推进一帧
func (a *App) TPS() int {
	return a.gameConfig.FramesPerSecond
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（TPS 由配置决定）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(a.gameConfig.FramesPerSecond))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 像素风画面使用最近邻滤波，全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
