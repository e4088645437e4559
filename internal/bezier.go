package internal

import "math"

// ease evaluates a cubic Bézier easing curve with control points
// p0=(0,0), p1=(curve[0],curve[1]), p2=(curve[2],curve[3]), p3=(1,1), at x.
// It solves X(t)=x for t via bounded Newton's method (up to 8 iterations,
// aborting early if the derivative nears zero) and returns Y(t) (§4.6).
//
// curve is an explicit argument rather than a captured closure, per Design
// Note §9 — the reference implementation's bezierEasing(t, curve) becomes an
// ordinary function here.
func ease(x float64, curve [4]float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	p1x, p1y, p2x, p2y := curve[0], curve[1], curve[2], curve[3]
	cx := 3 * p1x
	bx := 3*(p2x-p1x) - cx
	ax := 1 - cx - bx
	cy := 3 * p1y
	by := 3*(p2y-p1y) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleXDeriv := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }

	t := x
	for i := 0; i < 8; i++ {
		d := sampleXDeriv(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= (sampleX(t) - x) / d
		t = clamp(t, 0, 1)
	}
	return sampleY(t)
}

// transpose shifts L so its first value becomes exactly `to`, with
// subsequent values shifted by a diminishing amount governed by ease (§4.6).
func transpose(l []float64, to float64, curve [4]float64) []float64 {
	diff := l[0] - to
	n := len(l) - 1
	out := make([]float64, len(l))
	for i := 0; i <= n; i++ {
		frac := 1 - float64(i)/float64(n)
		out[i] = l[i] - diff*ease(frac, curve)
	}
	return out
}

// transposeLightness implements the light/dark dispatch of §4.6, returning
// the final clamped OKLCH scale (lightness transposed, chroma/hue untouched).
func transposeLightness(adjusted [12]OKLCH, bg OKLCH) [12]OKLCH {
	var newL []float64

	if adjusted[0].L > 0.5 {
		ls := make([]float64, 13)
		ls[0] = 1.0
		for i := 0; i < 12; i++ {
			ls[i+1] = adjusted[i].L
		}
		to := clamp(bg.L, 0, 1)
		out := transpose(ls, to, bezierCurveLight)
		newL = out[1:]
	} else {
		curve := bezierCurveDarkBase
		refBgL := adjusted[0].L
		bgL := clamp(bg.L, 0, 1)
		ratioL := bgL / math.Max(refBgL, chromaNearZeroGuard)

		if ratioL > 1 {
			metaRatio := (ratioL - 1) * (darkSofteningMaxRatio / (darkSofteningMaxRatio - 1))
			for i := range curve {
				if ratioL > darkSofteningMaxRatio {
					curve[i] = 0
				} else {
					curve[i] = clamp(curve[i]*(1-metaRatio), 0, 1)
				}
			}
		}

		ls := make([]float64, 12)
		for i, step := range adjusted {
			ls[i] = step.L
		}
		newL = transpose(ls, bgL, curve)
	}

	var out [12]OKLCH
	for i, step := range adjusted {
		out[i] = OKLCH{L: clamp(newL[i], 0, 1), C: step.C, H: step.H}
	}
	return out
}
