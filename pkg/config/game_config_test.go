package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/plasmaraid/internal/particle"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultGameConfig().Validate() = %v", err)
	}
	if cfg.Edge() != 120 {
		t.Errorf("Edge() = %d, want 120", cfg.Edge())
	}
	if cfg.InvulnerabilityFrames() != 60 {
		t.Errorf("InvulnerabilityFrames() = %d, want 60", cfg.InvulnerabilityFrames())
	}
}

func TestLoadGameConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("部分字段覆盖默认值", func(t *testing.T) {
		content := `
lives: 6
playerHitPolicy: every
wave:
  ceiling: 4
effects:
  spark:
    maxAge: "[5 8]"
`
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadGameConfig(path)
		if err != nil {
			t.Fatalf("LoadGameConfig failed: %v", err)
		}
		if cfg.Lives != 6 {
			t.Errorf("lives: expected 6, got %d", cfg.Lives)
		}
		if cfg.PlayerHitPolicy != HitPolicyEvery {
			t.Errorf("policy: expected every, got %s", cfg.PlayerHitPolicy)
		}
		if cfg.Wave.Ceiling != 4 {
			t.Errorf("ceiling: expected 4, got %d", cfg.Wave.Ceiling)
		}
		// 未覆盖的同级字段保留默认值
		if cfg.Wave.Spacing != 16 {
			t.Errorf("spacing: expected default 16, got %d", cfg.Wave.Spacing)
		}
		if cfg.Effects.Spark.MaxAge != (particle.Range{Min: 5, Max: 8}) {
			t.Errorf("spark maxAge: expected [5 8], got %v", cfg.Effects.Spark.MaxAge)
		}
		if cfg.Effects.Spark.Friction != 0.85 {
			t.Errorf("spark friction: expected default 0.85, got %v", cfg.Effects.Spark.Friction)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
	})

	t.Run("YAML 语法错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("lives: [unclosed\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := LoadGameConfig(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("Expected parse error, got %v", err)
		}
	})

	t.Run("内置 data/game.yaml 与默认值一致", func(t *testing.T) {
		cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game.yaml"))
		if err != nil {
			t.Fatalf("LoadGameConfig(data/game.yaml) failed: %v", err)
		}
		if cfg != DefaultGameConfig() {
			t.Errorf("data/game.yaml diverges from DefaultGameConfig:\n got %+v\nwant %+v", cfg, DefaultGameConfig())
		}
	})
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"screenSize 为 0", func(c *GameConfig) { c.ScreenSize = 0 }},
		{"spriteSize 大于屏幕", func(c *GameConfig) { c.SpriteSize = 200 }},
		{"fps 为 0", func(c *GameConfig) { c.FramesPerSecond = 0 }},
		{"renderScale 为 0", func(c *GameConfig) { c.RenderScale = 0 }},
		{"pad 过大", func(c *GameConfig) { c.CollisionPad = 5 }},
		{"lives 为 0", func(c *GameConfig) { c.Lives = 0 }},
		{"负步长", func(c *GameConfig) { c.Enemy.Step = -1 }},
		{"等离子弹不动", func(c *GameConfig) { c.Projectile.Step = 0 }},
		{"射击冷却为 0", func(c *GameConfig) { c.Player.FireCooldown = 0 }},
		{"出生点越界", func(c *GameConfig) { c.Player.StartX = 500 }},
		{"间距为 0", func(c *GameConfig) { c.Wave.Spacing = 0 }},
		{"负 ceiling", func(c *GameConfig) { c.Wave.Ceiling = -1 }},
		{"摩擦系数越界", func(c *GameConfig) { c.Effects.Spark.Friction = 1.5 }},
		{"波纹段数为 0", func(c *GameConfig) { c.Effects.Ring.Stages = 0 }},
		{"冲击波寿命为 0", func(c *GameConfig) { c.Effects.Shockwave.MaxAge = 0 }},
		{"收缩率为 0", func(c *GameConfig) { c.Effects.Boom.ShrinkRate = 0 }},
		{"爆炸初始 age 为负", func(c *GameConfig) { c.Effects.Boom.StartAge = particle.Range{Min: -1, Max: 2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() should fail for %s", tt.name)
			}
		})
	}
}

func TestGameConfigUnknownPolicy(t *testing.T) {
	_, err := ParseGameConfig([]byte("playerHitPolicy: sometimes\n"))
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestGameConfigZeroEnemyStepAllowed(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Enemy.Step = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("stationary enemies should be valid: %v", err)
	}
}
