package internal

import "math"

// DeltaEOK computes the chroma-weighted perceptual distance between two
// OKLCH colors (§4.2). It generalizes the teacher's existing
// calculateOKLCHDeltaE (_examples/InkyQuill-color-mcp's internal/compare.go,
// not part of this tree — see DESIGN.md), which measures a Cartesian a*/b*
// distance, into the polar form C5's law-of-cosines blend geometry needs.
func DeltaEOK(a, b OKLCH) float64 {
	dl := a.L - b.L
	dc := a.C - b.C

	dh := 0.0
	if a.H.IsDefined() && b.H.IsDefined() {
		diff := wrapHueDiff(a.H.Value() - b.H.Value())
		dh = 2 * math.Sqrt(a.C*b.C) * math.Sin(diff*math.Pi/360)
	}

	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}
