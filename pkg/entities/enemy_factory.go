package entities

import (
	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/types"
)

// NewEnemy 创建一个敌人
//
// 未知类型回退为 DefaultEnemyType，生命值取自类型属性表。
//
// 参数:
//   - ids: ID 分配器
//   - enemyType: 敌人类型
//   - at: 初始坐标
//
// 返回:
//   - components.EnemyComponent: 新敌人（值类型，由调用方放入活动集合）
func NewEnemy(ids *IDSource, enemyType types.EnemyType, at components.Coordinate) components.EnemyComponent {
	t := enemyType.Normalize()
	return components.EnemyComponent{
		ID:        ids.Next(),
		Type:      t,
		Position:  at,
		HitPoints: t.Stats().HitPoints,
	}
}

// NewWaveEnemies 按布局生成一整波敌人
//
// 行 r、列 c 的格子放在 (OriginX + c*Spacing, OriginY - (rows-1-r)*Spacing)，
// 即最后一行位于 OriginY，其余行依次向上（屏幕外）排列。
// EnemyNone 格子留空。生成顺序为行优先，决定了反向扫描时的命中优先级。
func NewWaveEnemies(ids *IDSource, layout config.WaveLayout, wave config.WaveConfig) []components.EnemyComponent {
	enemies := make([]components.EnemyComponent, 0, layout.EnemyCount())
	rows := len(layout.Rows)
	for r, row := range layout.Rows {
		for c, t := range row {
			if t == types.EnemyNone {
				continue
			}
			at := components.C(
				wave.OriginX+c*wave.Spacing,
				wave.OriginY-(rows-1-r)*wave.Spacing,
			)
			enemies = append(enemies, NewEnemy(ids, t, at))
		}
	}
	return enemies
}
