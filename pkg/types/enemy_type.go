package types

// EnemyType 定义敌人的类型
// 波次布局表中的每个格子对应一个 EnemyType
type EnemyType int

const (
	// EnemyNone 空格子，不生成敌人
	EnemyNone EnemyType = iota

	EnemyBasic    // 普通敌人，1 点血
	EnemyTough    // 装甲敌人，2 点血
	EnemySpinning // 旋转敌人，3 点血
	EnemyBoss     // 首领，5 点血
)

// DefaultEnemyType 未知类型查询时使用的回退类型
const DefaultEnemyType = EnemyBasic

// EnemyStats 单个敌人类型的静态属性
type EnemyStats struct {
	HitPoints  int // 初始血量
	FrameCount int // 动画帧数
	FrameDelay int // 每帧持续的模拟帧数（动画节奏）
}

// enemyStatsMap 敌人类型到属性的映射
var enemyStatsMap = map[EnemyType]EnemyStats{
	EnemyBasic:    {HitPoints: 1, FrameCount: 2, FrameDelay: 8},
	EnemyTough:    {HitPoints: 2, FrameCount: 2, FrameDelay: 6},
	EnemySpinning: {HitPoints: 3, FrameCount: 4, FrameDelay: 3},
	EnemyBoss:     {HitPoints: 5, FrameCount: 3, FrameDelay: 10},
}

// enemyTypeStringMap 敌人类型到配置字符串的映射
var enemyTypeStringMap = map[EnemyType]string{
	EnemyNone:     "none",
	EnemyBasic:    "basic",
	EnemyTough:    "tough",
	EnemySpinning: "spinning",
	EnemyBoss:     "boss",
}

// enemyTypeGlyphMap 波次布局文件中使用的单字符记号
var enemyTypeGlyphMap = map[rune]EnemyType{
	'.': EnemyNone,
	'B': EnemyBasic,
	'T': EnemyTough,
	'S': EnemySpinning,
	'X': EnemyBoss,
}

// stringToEnemyTypeMap 配置字符串到敌人类型的反向映射
var stringToEnemyTypeMap map[string]EnemyType

func init() {
	stringToEnemyTypeMap = make(map[string]EnemyType, len(enemyTypeStringMap))
	for t, s := range enemyTypeStringMap {
		stringToEnemyTypeMap[s] = t
	}
}

// String 返回敌人类型的配置字符串
func (t EnemyType) String() string {
	if s, ok := enemyTypeStringMap[t]; ok {
		return s
	}
	return enemyTypeStringMap[DefaultEnemyType]
}

// Stats 返回敌人类型的属性
// 未知类型回退到 DefaultEnemyType，EnemyNone 返回零值
func (t EnemyType) Stats() EnemyStats {
	if t == EnemyNone {
		return EnemyStats{}
	}
	if stats, ok := enemyStatsMap[t]; ok {
		return stats
	}
	return enemyStatsMap[DefaultEnemyType]
}

// Normalize 将未知类型映射为 DefaultEnemyType
func (t EnemyType) Normalize() EnemyType {
	if t == EnemyNone {
		return EnemyNone
	}
	if _, ok := enemyStatsMap[t]; ok {
		return t
	}
	return DefaultEnemyType
}

// ParseEnemyType 解析配置字符串，未知字符串返回 DefaultEnemyType 和 false
func ParseEnemyType(s string) (EnemyType, bool) {
	if t, ok := stringToEnemyTypeMap[s]; ok {
		return t, true
	}
	return DefaultEnemyType, false
}

// EnemyTypeFromGlyph 解析布局记号，未知记号返回 DefaultEnemyType 和 false
func EnemyTypeFromGlyph(r rune) (EnemyType, bool) {
	if t, ok := enemyTypeGlyphMap[r]; ok {
		return t, true
	}
	return DefaultEnemyType, false
}
