package internal

import "math"

// ReverseAlpha implements §4.9: given a target and background color (both
// with 0..255 channels) and an optional forced alpha, solve for a foreground
// color and alpha such that compositing the foreground over the background
// reproduces the target under 8-bit rounding. There is no teacher
// equivalent; this is built directly from the spec's seven-step algorithm.
func ReverseAlpha(target, bg Color, forced *float64) Color {
	tr, tg, tb := roundByte(target.R), roundByte(target.G), roundByte(target.B)
	br, bgr, bb := roundByte(bg.R), roundByte(bg.G), roundByte(bg.B)

	if tr == br && tg == bgr && tb == bb {
		return Color{R: 0, G: 0, B: 0, A: 0}
	}

	desired := 0
	if tr > br || tg > bgr || tb > bb {
		desired = 255
	}

	alphaK := func(t, b int) float64 {
		if desired-b != 0 {
			return float64(t-b) / float64(desired-b)
		}
		return 0
	}

	ar := alphaK(tr, br)
	ag := alphaK(tg, bgr)
	ab := alphaK(tb, bb)

	if ar == ag && ag == ab {
		a := clamp(ar, 0, 1)
		return Color{R: float64(desired), G: float64(desired), B: float64(desired), A: a}
	}

	alpha := clamp(math.Max(ar, math.Max(ag, ab)), 0, 1)
	if forced != nil {
		alpha = *forced
	}

	solve := func(t, b int) int {
		if alpha == 0 {
			return 0
		}
		f := (-float64(b)*(1-alpha) + float64(t)) / alpha
		return int(clamp(math.Round(f), 0, RGBMax))
	}

	fr := solve(tr, br)
	fg := solve(tg, bgr)
	fb := solve(tb, bb)

	blend := func(b, f int) int {
		return int(math.Round(float64(b)*(1-alpha))) + int(math.Round(float64(f)*alpha))
	}

	nudge := func(t, b, f int) int {
		bl := blend(b, f)
		if t == bl {
			return f
		}
		switch {
		case desired == 0 && t <= b:
			if t < bl {
				f--
			} else {
				f++
			}
		case desired == 255 && t >= b:
			if t > bl {
				f++
			} else {
				f--
			}
		}
		return int(clamp(float64(f), 0, RGBMax))
	}

	fr = nudge(tr, br, fr)
	fg = nudge(tg, bgr, fg)
	fb = nudge(tb, bb, fb)

	return Color{R: float64(fr), G: float64(fg), B: float64(fb), A: alpha}
}
