package internal

import "math"

// Color is an sRGB color: R, G, B channels in [0,255], alpha in [0,1].
type Color struct {
	R, G, B float64
	A       float64
}

// OKLCH is a perceptual color in cylindrical OKLab form: L in [0,1], C >= 0,
// and a Hue that may be undefined when C is negligible.
type OKLCH struct {
	L float64
	C float64
	H Hue
}

// RGBToOklch converts an opaque sRGB color into OKLCH, tagging the hue
// undefined when chroma falls below hueUndefinedThreshold — the spec's
// explicit near-zero-chroma rule, stricter than a naive r==g==b check.
func RGBToOklch(c Color) OKLCH {
	l, chroma, h := rgbToOKLCH(c.R, c.G, c.B)
	l = clamp(l, 0, OKLCH_L_Max)
	if chroma < 0 {
		chroma = 0
	}
	if chroma < hueUndefinedThreshold {
		return OKLCH{L: l, C: chroma, H: UndefinedHue}
	}
	return OKLCH{L: l, C: chroma, H: DefinedHue(h)}
}

// OklchToRGB converts an OKLCH color back to an opaque, rounded sRGB color.
// Undefined hue substitutes 0 degrees, matching the "never propagate NaN"
// invariant.
func OklchToRGB(o OKLCH) Color {
	r, g, b := oklchToRGB(clamp(o.L, 0, OKLCH_L_Max), math.Max(o.C, 0), o.H.Value())
	return Color{
		R: math.Round(r),
		G: math.Round(g),
		B: math.Round(b),
		A: AlphaMax,
	}
}

// rgbToOKLCH converts sRGB channels (0-255) to OKLCH via linear-sRGB and LMS,
// the Ottosson/culori matrices.
func rgbToOKLCH(r, g, b float64) (l, c, h float64) {
	rLin := srgbInverseGamma(r / RGBMax)
	gLin := srgbInverseGamma(g / RGBMax)
	bLin := srgbInverseGamma(b / RGBMax)

	cbrtL := cbrt(0.412221469470763*rLin + 0.5363325372617348*gLin + 0.0514459932675022*bLin)
	cbrtM := cbrt(0.2119034958178252*rLin + 0.6806995506452344*gLin + 0.1073969535369406*bLin)
	cbrtS := cbrt(0.0883024591900564*rLin + 0.2817188391361215*gLin + 0.6299787016738222*bLin)

	l = 0.210454268309314*cbrtL + 0.7936177747023054*cbrtM - 0.0040720430116193*cbrtS
	a := 1.9779985324311684*cbrtL - 2.4285922420485799*cbrtM + 0.450593709617411*cbrtS
	bVal := 0.0259040424655478*cbrtL + 0.7827717124575296*cbrtM - 0.8086757549230774*cbrtS

	// Achromatic input: force a/b to 0 rather than let float error leak a
	// slight chroma into gray colors.
	if r == g && g == b {
		a = 0
		bVal = 0
	}

	c = math.Sqrt(a*a + bVal*bVal)
	h = math.Atan2(bVal, a) * 180 / math.Pi
	if h < 0 {
		h += HueMax
	}
	return l, c, h
}

// oklchToRGB is the inverse conversion, gamma-corrected and clamped to 8-bit
// sRGB range.
func oklchToRGB(l, c, h float64) (r, g, b float64) {
	hRad := h * math.Pi / 180
	a := c * math.Cos(hRad)
	bVal := c * math.Sin(hRad)

	L := math.Pow(l+0.3963377773761749*a+0.2158037573099136*bVal, 3)
	M := math.Pow(l-0.1055613458156586*a-0.0638541728258133*bVal, 3)
	S := math.Pow(l-0.0894841775298119*a-1.2914855480194092*bVal, 3)

	rLin := 4.0767416360759574*L - 3.3077115392580616*M + 0.2309699031821044*S
	gLin := -1.2684379732850317*L + 2.6097573492876887*M - 0.3413193760026573*S
	bLin := -0.0041960761386756*L - 0.7034186179359362*M + 1.7076146940746117*S

	r = srgbGamma(rLin) * RGBMax
	g = srgbGamma(gLin) * RGBMax
	b = srgbGamma(bLin) * RGBMax

	return clamp(r, 0, RGBMax), clamp(g, 0, RGBMax), clamp(b, 0, RGBMax)
}

func srgbGamma(v float64) float64 {
	if v <= sRGBGammaThreshold {
		return sRGBGammaFactor * v
	}
	return sRGBGammaOffset*math.Pow(v, sRGBGammaPower) - sRGBGammaSubtract
}

func srgbInverseGamma(v float64) float64 {
	if v <= sRGBInverseThreshold {
		return v / sRGBGammaFactor
	}
	return math.Pow((v+sRGBGammaSubtract)/sRGBGammaOffset, 2.4)
}

func cbrt(x float64) float64 {
	return math.Pow(x, 1.0/3.0)
}

// clamp bounds v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
