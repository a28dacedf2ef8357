package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/decker502/plasmaraid/pkg/types"
)

func TestDefaultWaveTable(t *testing.T) {
	table := DefaultWaveTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("DefaultWaveTable().Validate() = %v", err)
	}

	if got := table.Ordinals(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("Ordinals() = %v, want [1 2 3 4]", got)
	}

	if got := table.Layout(1).EnemyCount(); got != 12 {
		t.Errorf("wave 1 enemy count = %d, want 12", got)
	}
	if got := table.Layout(4).Rows[0][2]; got != types.EnemyBoss {
		t.Errorf("wave 4 row 0 col 2 = %v, want boss", got)
	}
}

func TestWaveTableLayoutFallback(t *testing.T) {
	table := DefaultWaveTable()
	for _, ordinal := range []int{0, -7, 5, 99, 1 << 20} {
		got := table.Layout(ordinal)
		if !reflect.DeepEqual(got, table.Default) {
			t.Errorf("Layout(%d) should fall back to default layout", ordinal)
		}
	}
}

func TestParseWaveTable(t *testing.T) {
	t.Run("未知记号回退到 basic", func(t *testing.T) {
		table, err := ParseWaveTable([]byte(`
waves:
  1:
    - "B?T"
default:
  - "X"
`))
		if err != nil {
			t.Fatalf("ParseWaveTable failed: %v", err)
		}
		want := []types.EnemyType{types.EnemyBasic, types.DefaultEnemyType, types.EnemyTough}
		if got := table.Layout(1).Rows[0]; !reflect.DeepEqual(got, want) {
			t.Errorf("row = %v, want %v", got, want)
		}
	})

	t.Run("空 default 布局", func(t *testing.T) {
		_, err := ParseWaveTable([]byte("waves:\n  1: [\"B\"]\ndefault: [\"...\"]\n"))
		if err == nil {
			t.Error("Expected error for empty default layout")
		}
	})

	t.Run("空字面布局", func(t *testing.T) {
		_, err := ParseWaveTable([]byte("waves:\n  2: [\"..\"]\ndefault: [\"B\"]\n"))
		if err == nil {
			t.Error("Expected error for empty wave 2 layout")
		}
	})

	t.Run("序号小于 1", func(t *testing.T) {
		_, err := ParseWaveTable([]byte("waves:\n  0: [\"B\"]\ndefault: [\"B\"]\n"))
		if err == nil {
			t.Error("Expected error for ordinal 0")
		}
	})
}

func TestLoadWaveTableMatchesDefault(t *testing.T) {
	table, err := LoadWaveTable(filepath.Join("..", "..", "data", "waves.yaml"))
	if err != nil {
		t.Fatalf("LoadWaveTable(data/waves.yaml) failed: %v", err)
	}
	if !reflect.DeepEqual(table, DefaultWaveTable()) {
		t.Error("data/waves.yaml diverges from DefaultWaveTable()")
	}
}

func TestLoadWaveTableMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	if _, err := os.Stat(path); err == nil {
		t.Fatal("temp file unexpectedly exists")
	}
	if _, err := LoadWaveTable(path); err == nil {
		t.Error("Expected error for missing wave table file")
	}
}
