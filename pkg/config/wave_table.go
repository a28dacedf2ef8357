package config

import (
	"fmt"
	"log"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/decker502/plasmaraid/pkg/embedded"
	"github.com/decker502/plasmaraid/pkg/types"
)

// DefaultWaveTablePath 嵌入的波次布局文件路径
const DefaultWaveTablePath = "data/waves.yaml"

// WaveLayout 一波敌人的类型网格，Rows[row][col]
type WaveLayout struct {
	Rows [][]types.EnemyType
}

// EnemyCount 返回布局中非空格子的数量
func (l WaveLayout) EnemyCount() int {
	count := 0
	for _, row := range l.Rows {
		for _, t := range row {
			if t != types.EnemyNone {
				count++
			}
		}
	}
	return count
}

// WaveTable 波次布局表
//
// 前几波使用字面布局（按序号索引），之后的所有波次使用 Default 布局。
// 游戏本身没有设计终点，是否结束由 GameConfig.Wave.Ceiling 决定。
type WaveTable struct {
	Layouts map[int]WaveLayout
	Default WaveLayout
}

// Layout 返回指定序号的布局，序号不在表中时返回 Default
func (wt WaveTable) Layout(ordinal int) WaveLayout {
	if layout, ok := wt.Layouts[ordinal]; ok {
		return layout
	}
	return wt.Default
}

// Validate 验证每个布局至少包含一个敌人
// 空布局会让波次在生成后立即完成，导致每帧都推进波次
func (wt WaveTable) Validate() error {
	if wt.Default.EnemyCount() == 0 {
		return fmt.Errorf("default wave layout must contain at least one enemy")
	}
	for ordinal, layout := range wt.Layouts {
		if ordinal < 1 {
			return fmt.Errorf("wave ordinal must be at least 1, got %d", ordinal)
		}
		if layout.EnemyCount() == 0 {
			return fmt.Errorf("wave %d layout must contain at least one enemy", ordinal)
		}
	}
	return nil
}

// waveTableFile YAML 文件结构
//
//	waves:
//	  1:
//	    - "BBBBBB"
//	  2: [...]
//	default:
//	  - "TBSBT"
//
// 记号：'.' 空，'B' basic，'T' tough，'S' spinning，'X' boss
type waveTableFile struct {
	Waves   map[int][]string `yaml:"waves"`
	Default []string         `yaml:"default"`
}

// LoadWaveTable 从 YAML 文件加载波次布局表
func LoadWaveTable(path string) (WaveTable, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return WaveTable{}, fmt.Errorf("failed to read wave table file %s: %w", path, err)
	}

	table, err := ParseWaveTable(data)
	if err != nil {
		return WaveTable{}, fmt.Errorf("invalid wave table in %s: %w", path, err)
	}

	log.Printf("[Config] Loaded wave table from %s (%d literal waves)", path, len(table.Layouts))
	return table, nil
}

// ParseWaveTable 解析 YAML 数据并验证
func ParseWaveTable(data []byte) (WaveTable, error) {
	var file waveTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return WaveTable{}, fmt.Errorf("failed to parse wave table YAML: %w", err)
	}

	table := WaveTable{
		Layouts: make(map[int]WaveLayout, len(file.Waves)),
		Default: parseLayout("default", file.Default),
	}
	for ordinal, rows := range file.Waves {
		table.Layouts[ordinal] = parseLayout(fmt.Sprintf("wave %d", ordinal), rows)
	}

	if err := table.Validate(); err != nil {
		return WaveTable{}, err
	}
	return table, nil
}

// parseLayout 将记号字符串转换为类型网格，未知记号回退到默认类型
func parseLayout(name string, rows []string) WaveLayout {
	layout := WaveLayout{Rows: make([][]types.EnemyType, 0, len(rows))}
	for r, row := range rows {
		cells := make([]types.EnemyType, 0, len(row))
		for c, glyph := range row {
			t, ok := types.EnemyTypeFromGlyph(glyph)
			if !ok {
				log.Printf("[Config] Warning: %s row %d col %d: unknown glyph %q, using %s",
					name, r, c, glyph, types.DefaultEnemyType)
			}
			cells = append(cells, t)
		}
		layout.Rows = append(layout.Rows, cells)
	}
	return layout
}

// Ordinals 返回表中字面布局的序号（升序）
func (wt WaveTable) Ordinals() []int {
	ordinals := make([]int, 0, len(wt.Layouts))
	for ordinal := range wt.Layouts {
		ordinals = append(ordinals, ordinal)
	}
	sort.Ints(ordinals)
	return ordinals
}

// DefaultWaveTable 返回内置波次布局（与 data/waves.yaml 一致）
func DefaultWaveTable() WaveTable {
	return WaveTable{
		Layouts: map[int]WaveLayout{
			1: parseLayout("wave 1", []string{
				"BBBBBB",
				"BBBBBB",
			}),
			2: parseLayout("wave 2", []string{
				".TTTT.",
				"BBBBBB",
				"BBBBBB",
			}),
			3: parseLayout("wave 3", []string{
				"S.SS.S",
				"TTTTTT",
				"BB..BB",
			}),
			4: parseLayout("wave 4", []string{
				"..XX..",
				"SSTTSS",
				"TTBBTT",
			}),
		},
		Default: parseLayout("default", []string{
			"S.XX.S",
			"TSTTST",
			"BBBBBB",
		}),
	}
}
