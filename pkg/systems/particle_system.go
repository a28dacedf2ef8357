package systems

import (
	"math/rand"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/config"
	"github.com/decker502/plasmaraid/pkg/entities"
	"github.com/decker502/plasmaraid/pkg/types"
)

// ParticleSystem owns every live visual effect in one heterogeneous slice.
//
// Each frame it walks the slice in reverse, updates each effect according to
// its Kind, and swap-removes the ones that are no longer alive. Effects are
// visual only and never take part in collision.
type ParticleSystem struct {
	factory    *entities.EffectFactory
	rampFrames int
	effects    []components.EffectComponent
}

// NewParticleSystem creates an empty emitter.
func NewParticleSystem(cfg config.GameConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		factory:    entities.NewEffectFactory(cfg, rng),
		rampFrames: cfg.Effects.Boom.RampFrames,
	}
}

// Factory exposes the effect factory used by the emitter.
func (ps *ParticleSystem) Factory() *entities.EffectFactory {
	return ps.factory
}

// Emit adds effects to the live set.
func (ps *ParticleSystem) Emit(effects ...components.EffectComponent) {
	ps.effects = append(ps.effects, effects...)
}

// EmitHit spawns the non-lethal hit burst at a sprite coordinate.
func (ps *ParticleSystem) EmitHit(at components.Coordinate) {
	ps.Emit(ps.factory.HitBurst(at)...)
}

// EmitExplosion spawns the destroy/collision burst at a sprite coordinate.
func (ps *ParticleSystem) EmitExplosion(at components.Coordinate, palette types.Palette) {
	ps.Emit(ps.factory.Explosion(at, palette)...)
}

// Effects returns the live effects. Callers must not modify the slice.
func (ps *ParticleSystem) Effects() []components.EffectComponent {
	return ps.effects
}

// Len returns the number of live effects.
func (ps *ParticleSystem) Len() int {
	return len(ps.effects)
}

// Update advances every effect by one frame and evicts dead ones.
func (ps *ParticleSystem) Update() {
	for i := len(ps.effects) - 1; i >= 0; i-- {
		e := &ps.effects[i]
		ps.updateEffect(e)
		if !Alive(e) {
			last := len(ps.effects) - 1
			ps.effects[i] = ps.effects[last]
			ps.effects = ps.effects[:last]
		}
	}
}

func (ps *ParticleSystem) updateEffect(e *components.EffectComponent) {
	e.Age++
	switch e.Kind {
	case types.EffectSpark:
		drift(e)
	case types.EffectRing:
		if e.MaxAge > 0 {
			e.Stage = min(e.Age*e.Stages/e.MaxAge, e.Stages-1)
		}
	case types.EffectShockwave:
		// The drawable circle is rebuilt from Radius every frame by the renderer.
		e.Radius = e.StartRadius + float64(e.Age)*e.Growth
	case types.EffectBoom:
		drift(e)
		e.Color = entities.BoomColor(e.Palette, float64(e.Age)/float64(max(ps.rampFrames, 1)))
		if e.Age > e.MaxAge {
			e.Size -= e.ShrinkRate
		}
	}
}

// drift applies velocity then friction.
func drift(e *components.EffectComponent) {
	e.X += e.VX
	e.Y += e.VY
	e.VX *= e.Friction
	e.VY *= e.Friction
}

// Alive reports whether an effect should stay in the live set.
// Boom particles outlive MaxAge while they shrink and die once Size drops below zero.
func Alive(e *components.EffectComponent) bool {
	if e.Kind == types.EffectBoom {
		return e.Age <= e.MaxAge || e.Size >= 0
	}
	return e.Age <= e.MaxAge
}
