package internal

import "math"

// Hue is an OKLCH hue angle in degrees, or the sentinel "undefined" used when
// a color's chroma is effectively zero. It is modeled as an explicit tagged
// value rather than NaN-overloading so mixing and ΔE have unambiguous
// branches (see Design Notes).
type Hue struct {
	value   float64
	defined bool
}

// UndefinedHue is the zero value: no defined angle.
var UndefinedHue = Hue{}

// DefinedHue normalizes h into [0, 360) and tags it as a real angle.
func DefinedHue(h float64) Hue {
	h = math.Mod(h, HueMax)
	if h < 0 {
		h += HueMax
	}
	return Hue{value: h, defined: true}
}

// IsDefined reports whether the hue carries a real angle.
func (h Hue) IsDefined() bool { return h.defined }

// Value returns the hue in degrees, substituting 0 when undefined so it never
// leaks a NaN into downstream arithmetic.
func (h Hue) Value() float64 {
	if !h.defined {
		return 0
	}
	return h.value
}

// wrapHueDiff wraps a hue difference into (-180, 180].
func wrapHueDiff(dh float64) float64 {
	for dh > 180 {
		dh -= HueMax
	}
	for dh <= -180 {
		dh += HueMax
	}
	return dh
}
