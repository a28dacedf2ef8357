package types

// EffectKind 视觉效果种类（封闭集合）
type EffectKind int

const (
	EffectSpark     EffectKind = iota // 火花
	EffectRing                        // 小波纹（5 段贴图）
	EffectShockwave                   // 冲击波圆环
	EffectBoom                        // 爆炸颗粒
)

func (k EffectKind) String() string {
	switch k {
	case EffectSpark:
		return "spark"
	case EffectRing:
		return "ring"
	case EffectShockwave:
		return "shockwave"
	case EffectBoom:
		return "boom"
	default:
		return "unknown"
	}
}

// Palette 爆炸颗粒的配色方案
type Palette int

const (
	PaletteRed  Palette = iota // 敌人被摧毁
	PaletteBlue                // 玩家被撞击
)

func (p Palette) String() string {
	if p == PaletteBlue {
		return "blue"
	}
	return "red"
}
