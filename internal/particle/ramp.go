package particle

import (
	"image/color"
	"math"
)

// ColorStop is one stop of a ColorRamp at normalized time Time.
type ColorStop struct {
	Time  float64
	Color color.RGBA
}

// ColorRamp maps normalized age to a color by evaluating each channel
// independently with EvaluateKeyframes. A ramp is immutable once built.
type ColorRamp struct {
	r, g, b, a    []Keyframe
	interpolation string
}

// NewColorRamp builds a ramp that blends linearly between stops sorted by Time.
func NewColorRamp(stops ...ColorStop) ColorRamp {
	return buildRamp("Linear", stops)
}

// NewSteppedColorRamp builds a ramp that holds each stop's color until the
// next stop, i.e. At(t) is the color of the last stop with Time <= t.
func NewSteppedColorRamp(stops ...ColorStop) ColorRamp {
	return buildRamp("Step", stops)
}

func buildRamp(interpolation string, stops []ColorStop) ColorRamp {
	ramp := ColorRamp{interpolation: interpolation}
	for _, s := range stops {
		ramp.r = append(ramp.r, Keyframe{Time: s.Time, Value: float64(s.Color.R)})
		ramp.g = append(ramp.g, Keyframe{Time: s.Time, Value: float64(s.Color.G)})
		ramp.b = append(ramp.b, Keyframe{Time: s.Time, Value: float64(s.Color.B)})
		ramp.a = append(ramp.a, Keyframe{Time: s.Time, Value: float64(s.Color.A)})
	}
	return ramp
}

// At returns the color at normalized time t (clamped to [0, 1]).
func (cr ColorRamp) At(t float64) color.RGBA {
	return color.RGBA{
		R: channel(EvaluateKeyframes(cr.r, t, cr.interpolation)),
		G: channel(EvaluateKeyframes(cr.g, t, cr.interpolation)),
		B: channel(EvaluateKeyframes(cr.b, t, cr.interpolation)),
		A: channel(EvaluateKeyframes(cr.a, t, cr.interpolation)),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
