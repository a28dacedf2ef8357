package config

import (
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/decker502/plasmaraid/internal/particle"
	"github.com/decker502/plasmaraid/pkg/embedded"
)

// DefaultGameConfigPath 嵌入的游戏配置文件路径
const DefaultGameConfigPath = "data/game.yaml"

// ErrUnknownPolicy 玩家碰撞策略无法识别
var ErrUnknownPolicy = errors.New("unknown player hit policy")

// HitPolicy 玩家与多个敌人同帧重叠时的结算策略
type HitPolicy string

const (
	// HitPolicyFirst 只结算第一个重叠的敌人，扫描立即结束
	HitPolicyFirst HitPolicy = "first"
	// HitPolicyEvery 每个重叠的敌人都扣一条命，结算完毕后才进入无敌
	HitPolicyEvery HitPolicy = "every"
)

// GameConfig 游戏模拟的全部常量
//
// 在 world 创建时传入各个系统，运行期间不可修改。
// 取代了散落在各处的全局屏幕常量。
type GameConfig struct {
	ScreenSize      int     `yaml:"screenSize"`      // 逻辑网格边长（单位）
	SpriteSize      int     `yaml:"spriteSize"`      // 精灵/碰撞盒边长（单位）
	FramesPerSecond int     `yaml:"framesPerSecond"` // 目标帧率
	RenderScale     float64 `yaml:"renderScale"`     // 逻辑单位到像素的缩放
	CollisionPad    int     `yaml:"collisionPad"`    // 碰撞盒每侧收缩量
	Lives           int     `yaml:"lives"`           // 初始生命数
	Seed            int64   `yaml:"seed"`            // 随机种子，0 表示使用当前时间

	// PlayerHitPolicy 玩家同帧碰撞多个敌人时的策略
	PlayerHitPolicy HitPolicy `yaml:"playerHitPolicy"`

	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Wave       WaveConfig       `yaml:"wave"`
	Effects    EffectsConfig    `yaml:"effects"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Step                   int `yaml:"step"`                   // 每帧移动距离
	StartX                 int `yaml:"startX"`                 // 初始坐标
	StartY                 int `yaml:"startY"`                 //
	FireCooldown           int `yaml:"fireCooldown"`           // 两次射击之间的帧数
	InvulnerabilitySeconds int `yaml:"invulnerabilitySeconds"` // 受击后无敌时长（秒）
}

// ProjectileConfig 等离子弹参数
type ProjectileConfig struct {
	Step int `yaml:"step"` // 每帧向上移动距离
}

// EnemyConfig 敌人参数
type EnemyConfig struct {
	Step           int `yaml:"step"`           // 每帧向下移动距离
	HitFlashFrames int `yaml:"hitFlashFrames"` // 受击闪烁帧数
}

// WaveConfig 波次布局参数
type WaveConfig struct {
	OriginX int `yaml:"originX"` // 第 0 列的 X 坐标
	OriginY int `yaml:"originY"` // 最后一行的 Y 坐标，其余行依次向上排列
	Spacing int `yaml:"spacing"` // 行列间距
	// Ceiling 通关波次，超过该波次时触发胜利，0 表示无尽模式
	Ceiling int `yaml:"ceiling"`
}

// EffectsConfig 视觉效果参数
type EffectsConfig struct {
	Spark     SparkConfig     `yaml:"spark"`
	Ring      RingConfig      `yaml:"ring"`
	Shockwave ShockwaveConfig `yaml:"shockwave"`
	Boom      BoomConfig      `yaml:"boom"`
}

// SparkConfig 火花参数
type SparkConfig struct {
	Friction    float64        `yaml:"friction"`    // 每帧速度乘数
	MaxAge      particle.Range `yaml:"maxAge"`      // 最大存活帧数范围
	SmallCount  int            `yaml:"smallCount"`  // 小爆发数量
	LargeCount  int            `yaml:"largeCount"`  // 大爆发数量
	SmallSpeedX particle.Range `yaml:"smallSpeedX"` // 小爆发水平速度（偏向水平散射）
	SmallSpeedY particle.Range `yaml:"smallSpeedY"` // 小爆发垂直速度
	LargeSpeed  particle.Range `yaml:"largeSpeed"`  // 大爆发径向速度
}

// RingConfig 小波纹参数
type RingConfig struct {
	Stages int `yaml:"stages"` // 贴图段数
	MaxAge int `yaml:"maxAge"` // 存活帧数
}

// ShockwaveConfig 冲击波参数
type ShockwaveConfig struct {
	StartRadius float64 `yaml:"startRadius"`
	Growth      float64 `yaml:"growth"` // 每帧半径增量
	MaxAge      int     `yaml:"maxAge"`
}

// BoomConfig 爆炸颗粒参数
type BoomConfig struct {
	Count      int            `yaml:"count"`      // 散射颗粒数量（不含中心颗粒）
	RampFrames int            `yaml:"rampFrames"` // 色带跨度帧数，之后保持最后颜色
	StartAge   particle.Range `yaml:"startAge"`   // 散射颗粒的初始 age
	MaxAge     particle.Range `yaml:"maxAge"`     // 散射颗粒的 maxAge，超过后开始收缩
	ShrinkRate float64        `yaml:"shrinkRate"` // 每帧尺寸减少量
	Size       particle.Range `yaml:"size"`       // 散射颗粒初始尺寸
	CenterSize float64        `yaml:"centerSize"` // 中心颗粒尺寸
	Speed      particle.Range `yaml:"speed"`      // 散射速度
	Friction   float64        `yaml:"friction"`
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() GameConfig {
	return GameConfig{
		ScreenSize:      128,
		SpriteSize:      8,
		FramesPerSecond: 30,
		RenderScale:     4,
		CollisionPad:    2,
		Lives:           4,
		PlayerHitPolicy: HitPolicyFirst,
		Player: PlayerConfig{
			Step:                   2,
			StartX:                 60,
			StartY:                 112,
			FireCooldown:           3,
			InvulnerabilitySeconds: 2,
		},
		Projectile: ProjectileConfig{Step: 4},
		Enemy:      EnemyConfig{Step: 2, HitFlashFrames: 4},
		Wave:       WaveConfig{OriginX: 20, OriginY: -16, Spacing: 16, Ceiling: 0},
		Effects: EffectsConfig{
			Spark: SparkConfig{
				Friction:    0.85,
				MaxAge:      particle.Range{Min: 10, Max: 20},
				SmallCount:  2,
				LargeCount:  30,
				SmallSpeedX: particle.Range{Min: -3, Max: 3},
				SmallSpeedY: particle.Range{Min: -1, Max: 1},
				LargeSpeed:  particle.Range{Min: 1, Max: 4},
			},
			Ring:      RingConfig{Stages: 5, MaxAge: 10},
			Shockwave: ShockwaveConfig{StartRadius: 4, Growth: 5, MaxAge: 5},
			Boom: BoomConfig{
				Count:      30,
				RampFrames: 15,
				StartAge:   particle.Range{Min: 0, Max: 2},
				MaxAge:     particle.Range{Min: 10, Max: 20},
				ShrinkRate: 0.5,
				Size:       particle.Range{Min: 1.5, Max: 3},
				CenterSize: 6,
				Speed:      particle.Range{Min: 0.5, Max: 2.5},
				Friction:   0.85,
			},
		},
	}
}

// Edge 返回坐标的最大合法值（ScreenSize - SpriteSize）
func (c GameConfig) Edge() int {
	return c.ScreenSize - c.SpriteSize
}

// InvulnerabilityFrames 返回受击后的无敌帧数
func (c GameConfig) InvulnerabilityFrames() int {
	return c.Player.InvulnerabilitySeconds * c.FramesPerSecond
}

// LoadGameConfig 从 YAML 文件加载游戏配置
//
// 文件中未出现的字段保留 DefaultGameConfig 的值。
//
// 参数：
//
//	path - 配置文件路径（"data/" 开头时优先读取嵌入文件）
//
// 返回：
//
//	GameConfig - 解析并验证后的配置
//	error - 如果文件读取、解析或验证失败
func LoadGameConfig(path string) (GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config in %s: %w", path, err)
	}

	log.Printf("[Config] Loaded game config from %s (screen=%d, lives=%d, ceiling=%d, policy=%s)",
		path, cfg.ScreenSize, cfg.Lives, cfg.Wave.Ceiling, cfg.PlayerHitPolicy)
	return cfg, nil
}

// ParseGameConfig 解析 YAML 数据并验证
func ParseGameConfig(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate 验证配置的完整性和合法性
func (c GameConfig) Validate() error {
	if c.ScreenSize <= 0 {
		return fmt.Errorf("screenSize must be positive, got %d", c.ScreenSize)
	}
	if c.SpriteSize <= 0 || c.SpriteSize >= c.ScreenSize {
		return fmt.Errorf("spriteSize must be in (0, %d), got %d", c.ScreenSize, c.SpriteSize)
	}
	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("framesPerSecond must be positive, got %d", c.FramesPerSecond)
	}
	if c.RenderScale <= 0 {
		return fmt.Errorf("renderScale must be positive, got %v", c.RenderScale)
	}
	if c.CollisionPad < 0 || 2*c.CollisionPad > c.SpriteSize {
		return fmt.Errorf("collisionPad must be in [0, %d], got %d", c.SpriteSize/2, c.CollisionPad)
	}
	if c.Lives < 1 {
		return fmt.Errorf("lives must be at least 1, got %d", c.Lives)
	}
	switch c.PlayerHitPolicy {
	case HitPolicyFirst, HitPolicyEvery:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.PlayerHitPolicy)
	}

	if c.Player.Step < 0 || c.Projectile.Step < 0 || c.Enemy.Step < 0 {
		return fmt.Errorf("movement steps cannot be negative (player=%d, projectile=%d, enemy=%d)",
			c.Player.Step, c.Projectile.Step, c.Enemy.Step)
	}
	if c.Projectile.Step == 0 {
		return fmt.Errorf("projectile step must be positive")
	}
	if c.Player.FireCooldown < 1 {
		return fmt.Errorf("player fireCooldown must be at least 1, got %d", c.Player.FireCooldown)
	}
	if c.Player.InvulnerabilitySeconds < 0 {
		return fmt.Errorf("player invulnerabilitySeconds cannot be negative, got %d", c.Player.InvulnerabilitySeconds)
	}
	edge := c.Edge()
	if c.Player.StartX < 0 || c.Player.StartX > edge || c.Player.StartY < 0 || c.Player.StartY > edge {
		return fmt.Errorf("player start (%d,%d) outside [0, %d]", c.Player.StartX, c.Player.StartY, edge)
	}
	if c.Enemy.HitFlashFrames < 0 {
		return fmt.Errorf("enemy hitFlashFrames cannot be negative, got %d", c.Enemy.HitFlashFrames)
	}

	if c.Wave.Spacing <= 0 {
		return fmt.Errorf("wave spacing must be positive, got %d", c.Wave.Spacing)
	}
	if c.Wave.Ceiling < 0 {
		return fmt.Errorf("wave ceiling cannot be negative, got %d", c.Wave.Ceiling)
	}

	return c.Effects.validate()
}

func (e EffectsConfig) validate() error {
	if e.Spark.Friction < 0 || e.Spark.Friction > 1 {
		return fmt.Errorf("spark friction must be in [0, 1], got %v", e.Spark.Friction)
	}
	if e.Spark.MaxAge.Min < 0 {
		return fmt.Errorf("spark maxAge cannot be negative, got %v", e.Spark.MaxAge)
	}
	if e.Spark.SmallCount < 0 || e.Spark.LargeCount < 0 {
		return fmt.Errorf("spark counts cannot be negative")
	}
	if e.Ring.Stages < 1 || e.Ring.MaxAge < 1 {
		return fmt.Errorf("ring stages and maxAge must be at least 1")
	}
	if e.Shockwave.MaxAge < 1 {
		return fmt.Errorf("shockwave maxAge must be at least 1, got %d", e.Shockwave.MaxAge)
	}
	if e.Boom.Count < 0 || e.Boom.RampFrames < 1 {
		return fmt.Errorf("boom count cannot be negative and rampFrames must be at least 1")
	}
	if e.Boom.StartAge.Min < 0 || e.Boom.MaxAge.Min < 0 {
		return fmt.Errorf("boom startAge and maxAge cannot be negative, got %v and %v", e.Boom.StartAge, e.Boom.MaxAge)
	}
	if e.Boom.ShrinkRate <= 0 {
		return fmt.Errorf("boom shrinkRate must be positive, got %v", e.Boom.ShrinkRate)
	}
	if e.Boom.Friction < 0 || e.Boom.Friction > 1 {
		return fmt.Errorf("boom friction must be in [0, 1], got %v", e.Boom.Friction)
	}
	return nil
}
