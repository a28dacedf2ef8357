// Package particle provides value parsing and interpolation helpers for
// visual effect tuning: random ranges, keyframe curves and color ramps.
package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Keyframe represents a single keyframe in an animation curve.
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// Range is a closed [Min, Max] interval used for randomized effect values.
// In YAML it is written either as a fixed value ("15") or as "[10 20]".
type Range struct {
	Min float64
	Max float64
}

// ParseRange parses a value string from effect configuration.
// Supports two formats:
//   - Fixed value: "15" → Range{15, 15}
//   - Range: "[10 20]" → Range{10, 20}
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.Trim(s, "[]"))
		if len(parts) != 2 {
			return Range{}, fmt.Errorf("range %q must have exactly two values", s)
		}
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return Range{}, fmt.Errorf("range %q: %w", s, err)
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Range{}, fmt.Errorf("range %q: %w", s, err)
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		return Range{Min: lo, Max: hi}, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Range{Min: value, Max: value}, nil
}

// String formats the range the same way ParseRange reads it.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// UnmarshalYAML lets yaml.v3 decode a Range from a scalar node.
func (r *Range) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseRange(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the range in its string form.
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// Sample returns a random value in the range using rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// SampleInt returns a random integer in [round(Min), round(Max)].
func (r Range) SampleInt(rng *rand.Rand) int {
	lo := int(math.Round(r.Min))
	hi := int(math.Round(r.Max))
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// stepEpsilon absorbs float error when t is computed as age/frames
const stepEpsilon = 1e-9

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", "EaseOut", "Step")
//
// "Step" holds each keyframe's value until the next keyframe's Time.
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	// Clamp t to [0, 1]
	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	if interpolation == "Step" {
		v := keyframes[0].Value
		for _, k := range keyframes[1:] {
			if t+stepEpsilon < k.Time {
				break
			}
			v = k.Value
		}
		return v
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	// If t is beyond the last keyframe, return the last value
	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}
