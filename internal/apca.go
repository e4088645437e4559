package internal

import "math"

// luminance computes the APCA screen luminance Y for an sRGB color, applying
// the soft black clamp near zero (§4.7). It is the APCA analogue of the
// teacher's calculateRelativeLuminance (_examples/InkyQuill-color-mcp's
// internal/compare.go), which implements the WCAG formula instead.
func luminance(c Color) float64 {
	r := math.Pow(clamp(c.R/RGBMax, 0, 1), apcaLuminanceExponent)
	g := math.Pow(clamp(c.G/RGBMax, 0, 1), apcaLuminanceExponent)
	b := math.Pow(clamp(c.B/RGBMax, 0, 1), apcaLuminanceExponent)
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b

	if y < apcaSoftClampThreshold {
		y += math.Pow(apcaSoftClampThreshold-y, apcaSoftClampExponent) * apcaSoftClampScale
	}
	return y
}

// ApcaLc computes the APCA contrast value Lc between text and bg (§4.7). The
// sign distinguishes polarity: positive for dark text on a light background,
// negative for light text on a dark one. The exponent pair used depends on
// which color is lighter, mirroring the asymmetry of calculateContrastRatio
// in the teacher's compare.go (which is symmetric, WCAG-style, and does not
// need this branch). The teacher's file itself is not part of this tree —
// see DESIGN.md for why its WCAG comparator was dropped rather than adapted.
func ApcaLc(text, bg Color) float64 {
	yText := luminance(text)
	yBg := luminance(bg)

	if yBg > yText {
		raw := math.Pow(yBg, apcaNormalBgExponent) - math.Pow(yText, apcaNormalTextExponent)
		if raw < apcaDeadband {
			return 0
		}
		return raw*100 - apcaOffset
	}

	raw := math.Pow(yBg, apcaReverseBgExponent) - math.Pow(yText, apcaReverseTextExponent)
	if math.Abs(raw) < apcaDeadband {
		return 0
	}
	return -math.Abs(raw)*100 + apcaOffset
}

// PickText implements §4.7's text/foreground selection for a step-9 accent
// color: white if step 9 is dark enough for adequate contrast, otherwise a
// dark, faintly accent-tinted color.
func PickText(stepNine OKLCH) OKLCH {
	white := Color{R: RGBMax, G: RGBMax, B: RGBMax, A: AlphaMax}
	stepRGB := OklchToRGB(stepNine)

	if math.Abs(ApcaLc(white, stepRGB)) >= apcaWhiteTextThreshold {
		return RGBToOklch(white)
	}

	chroma := math.Max(apcaDarkTextChromaFloor, stepNine.C*apcaDarkTextChromaFromStep)
	h := stepNine.H
	if !h.IsDefined() {
		h = DefinedHue(0)
	}
	return OKLCH{L: apcaDarkTextLightness, C: chroma, H: h}
}
