package systems

import (
	"log"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/entities"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 维护波次序号（从 0 开始，第一次生成后为 1）
//   - 按序号查波次表，超出字面布局的序号使用默认布局
//   - 达到 Ceiling 后不再生成（0 表示无尽模式）
//
// 架构说明：
//   - 作为 EnemySystem 的依赖，由 EnemySystem 在活动集合为空时调用
//   - 使用 entities.NewWaveEnemies 创建敌人
type WaveSpawnSystem struct {
	wave    config.WaveConfig
	table   config.WaveTable
	ids     *entities.IDSource
	ordinal int
}

// NewWaveSpawnSystem 创建波次生成系统
//
// 参数：
//
//	cfg - 游戏配置（读取 Wave 布局参数与 Ceiling）
//	table - 波次表
//	ids - ID 分配器
func NewWaveSpawnSystem(cfg config.GameConfig, table config.WaveTable, ids *entities.IDSource) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		wave:  cfg.Wave,
		table: table,
		ids:   ids,
	}
}

// Ordinal 当前波次序号（尚未生成时为 0）
func (s *WaveSpawnSystem) Ordinal() int {
	return s.ordinal
}

// Exhausted 下一波是否超过上限
func (s *WaveSpawnSystem) Exhausted() bool {
	return s.wave.Ceiling > 0 && s.ordinal+1 > s.wave.Ceiling
}

// Next 生成下一波敌人
//
// 返回：
//
//	[]components.EnemyComponent - 新一波敌人
//	bool - false 表示已达到上限，序号保持不变
func (s *WaveSpawnSystem) Next() ([]components.EnemyComponent, bool) {
	if s.Exhausted() {
		return nil, false
	}
	s.ordinal++
	enemies := entities.NewWaveEnemies(s.ids, s.table.Layout(s.ordinal), s.wave)
	log.Printf("[WaveSpawnSystem] Wave %d spawned with %d enemies", s.ordinal, len(enemies))
	return enemies, true
}
