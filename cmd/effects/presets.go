package main

import (
	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/systems"
	"github.com/decker502/plasmaraid/pkg/types"
)

// effectPreset 查看器中可生成的一种效果
type effectPreset struct {
	Name string
	Emit func(ps *systems.ParticleSystem, at components.Coordinate)
}

// presets 按切换顺序排列
var presets = []effectPreset{
	{"HitBurst", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.EmitHit(at) }},
	{"ExplosionRed", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.EmitExplosion(at, types.PaletteRed) }},
	{"ExplosionBlue", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.EmitExplosion(at, types.PaletteBlue) }},
	{"SmallSparks", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.Emit(ps.Factory().SmallSparks(at)...) }},
	{"LargeSparks", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.Emit(ps.Factory().LargeSparks(at)...) }},
	{"Ring", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.Emit(ps.Factory().Ring(at)) }},
	{"Shockwave", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.Emit(ps.Factory().Shockwave(at)) }},
	{"BoomRed", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.Emit(ps.Factory().Boom(at, types.PaletteRed)...) }},
	{"BoomBlue", func(ps *systems.ParticleSystem, at components.Coordinate) { ps.Emit(ps.Factory().Boom(at, types.PaletteBlue)...) }},
}

// presetIndex 按名称查找预设，找不到返回 0
func presetIndex(name string) int {
	for i, p := range presets {
		if p.Name == name {
			return i
		}
	}
	return 0
}

// cycle 在预设列表中循环移动
func cycle(index, delta int) int {
	n := len(presets)
	return ((index+delta)%n + n) % n
}
