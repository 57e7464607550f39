package colorscheme

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidValue is returned when a value outside the engine's input domain
// (NaN, negative or infinite) is passed to ColorFor.
var ErrInvalidValue = errors.New("value must be finite and non-negative")

// RGB is a 24-bit color as emitted in a truecolor escape sequence.
type RGB struct {
	R, G, B uint8
}

// Kind describes how a scheme maps a value to a color.
type Kind int

const (
	// KindNone disables coloring entirely.
	KindNone Kind = iota
	// KindDiscrete partitions [0,1] into one bin per stop.
	KindDiscrete
	// KindContinuous interpolates between bracketing stops.
	KindContinuous
)

// ColorStop is a single palette entry: a position in [0,1] and its color.
// Positions within a scheme are strictly increasing, with the first stop at
// 0.0 and the last at 1.0.
type ColorStop struct {
	Pos   float64
	Color colorful.Color
}

// Scheme is a named, immutable palette. The zero value is not usable;
// obtain schemes via Lookup or the package-level variables.
type Scheme struct {
	Name  string
	Kind  Kind
	Stops []ColorStop
}

// Enabled reports whether the scheme produces any color at all.
// Callers must skip escape-sequence wrapping entirely when it returns false.
func (s Scheme) Enabled() bool {
	return s.Kind != KindNone
}

// ColorFor maps a normalized value in [0,1] to a color.
//
// NaN, negative and infinite values fail with ErrInvalidValue; finite values
// above 1 are clamped to 1. For KindNone the returned color is meaningless
// and callers are expected to have checked Enabled first.
func (s Scheme) ColorFor(value float64) (RGB, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return RGB{}, fmt.Errorf("%w: got %v", ErrInvalidValue, value)
	}

	if value > 1 {
		value = 1
	}

	switch s.Kind {
	case KindNone:
		return RGB{}, nil
	case KindDiscrete:
		if len(s.Stops) == 0 {
			return toRGB(Fallback), nil
		}

		bins := len(s.Stops)

		idx := int(value * float64(bins))
		if idx >= bins {
			// Exactly 1.0 maps to the last bin.
			idx = bins - 1
		}

		return toRGB(s.Stops[idx].Color), nil
	default:
		return s.interpolate(value), nil
	}
}

// interpolate blends per channel between the two stops bracketing value.
func (s Scheme) interpolate(value float64) RGB {
	if len(s.Stops) == 0 {
		return toRGB(Fallback)
	}

	if len(s.Stops) == 1 {
		return toRGB(s.Stops[0].Color)
	}

	lower := s.Stops[0]
	upper := s.Stops[len(s.Stops)-1]

	for i := 1; i < len(s.Stops); i++ {
		if value <= s.Stops[i].Pos {
			lower = s.Stops[i-1]
			upper = s.Stops[i]

			break
		}
	}

	span := upper.Pos - lower.Pos
	if span == 0 {
		return toRGB(lower.Color)
	}

	blended := lower.Color.BlendRgb(upper.Color, (value-lower.Pos)/span)

	return toRGB(blended)
}

// toRGB converts to 8-bit channels, rounded to nearest and clamped.
func toRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()

	return RGB{R: r, G: g, B: b}
}

// Lookup resolves a scheme name (case-insensitive) to a Scheme.
// Unrecognized or empty names fall back to the default scheme, Sunset,
// without error.
func Lookup(name string) Scheme {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NONE":
		return None
	case "DISCRETE_RAINBOW":
		return DiscreteRainbow
	case "SMOOTH_RAINBOW":
		return SmoothRainbow
	case "SUNSET":
		return Sunset
	case "YLORBR":
		return YlOrBr
	case "PARTIAL_SUNSET":
		return PartialSunset
	default:
		return Sunset
	}
}
