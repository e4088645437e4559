package internal

// Mix linearly interpolates two OKLCH colors in L and C, and along the
// shortest hue arc (§4.3). There is no teacher equivalent — the teacher never
// blends colors — so this is built directly from the spec, reusing the same
// hue-wrap helper (wrapHueDiff in hue.go) that DeltaEOK uses (itself grounded
// on the teacher's calculateHueDifference).
func Mix(a, b OKLCH, t float64) OKLCH {
	l := a.L + (b.L-a.L)*t
	c := a.C + (b.C-a.C)*t

	var h Hue
	switch {
	case !a.H.IsDefined() && !b.H.IsDefined():
		h = UndefinedHue
	case !a.H.IsDefined():
		h = b.H
	case !b.H.IsDefined():
		h = a.H
	default:
		dh := wrapHueDiff(b.H.Value() - a.H.Value())
		h = DefinedHue(a.H.Value() + dh*t)
	}

	return OKLCH{L: l, C: c, H: h}
}
