package entities

import (
	"image/color"

	"github.com/decker502/plasmaraid/internal/particle"
	"github.com/decker502/plasmaraid/pkg/types"
)

// boomSpan 色带跨度（帧），各节点按帧号给出
const boomSpan = 15

// at 把帧号换算为色带上的归一化时间
func at(age int) float64 {
	return float64(age) / boomSpan
}

// 爆炸颗粒的色带，t = age / 渐变帧数，颜色逐段跳变而非混合
// 两条色带共享同一组时间节点，只是颜色不同
var (
	redRamp = particle.NewSteppedColorRamp(
		particle.ColorStop{Time: at(0), Color: rgb(255, 241, 232)},  // white
		particle.ColorStop{Time: at(5), Color: rgb(255, 236, 39)},   // yellow
		particle.ColorStop{Time: at(7), Color: rgb(255, 163, 0)},    // orange
		particle.ColorStop{Time: at(10), Color: rgb(255, 0, 77)},    // red
		particle.ColorStop{Time: at(12), Color: rgb(131, 118, 156)}, // purple
		particle.ColorStop{Time: at(15), Color: rgb(95, 87, 79)},    // dark grey
	)
	blueRamp = particle.NewSteppedColorRamp(
		particle.ColorStop{Time: at(0), Color: rgb(255, 241, 232)},  // white
		particle.ColorStop{Time: at(5), Color: rgb(194, 195, 199)},  // light grey
		particle.ColorStop{Time: at(7), Color: rgb(41, 173, 255)},   // light blue
		particle.ColorStop{Time: at(10), Color: rgb(131, 118, 156)}, // medium grey
		particle.ColorStop{Time: at(12), Color: rgb(29, 43, 83)},    // dark blue
		particle.ColorStop{Time: at(15), Color: rgb(29, 43, 83)},
	)
)

// BoomColor 爆炸颗粒颜色，是 (palette, t) 的纯函数，t 超出 [0,1] 时钳制
func BoomColor(palette types.Palette, t float64) color.RGBA {
	if palette == types.PaletteBlue {
		return blueRamp.At(t)
	}
	return redRamp.At(t)
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
