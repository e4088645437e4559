package internal

// Color space ranges
const (
	RGBMax      float64 = 255.0
	HueMax      float64 = 360.0
	OKLCH_L_Max float64 = 1.0
	AlphaMax    float64 = 1.0
)

// Gamma correction constants (sRGB transfer function, Ottosson/culori form)
const (
	sRGBGammaThreshold   = 0.0031308
	sRGBInverseThreshold = 0.04045
	sRGBGammaFactor      = 12.92
	sRGBGammaPower       = 1.0 / 2.4
	sRGBGammaOffset      = 1.055
	sRGBGammaSubtract    = 0.055
)

// Scale synthesis constants (12-step palette generation pipeline)
const (
	// hueUndefinedThreshold is the chroma below which an OKLCH hue is
	// considered meaningless and tagged undefined rather than numerically noisy.
	hueUndefinedThreshold float64 = 1e-9

	// blendDamping damps the law-of-cosines blend ratio in the template
	// search (§4.5 step 4) so a confident match never fully washes out scale A.
	blendDamping float64 = 0.5

	// chromaReidentifyCap bounds how much the chroma re-identification step
	// (§4.5 step 7) may amplify a template step's chroma relative to the seed.
	chromaReidentifyCap float64 = 1.5

	// chromaNearZeroGuard guards the ratioC division in §4.5 step 7.
	chromaNearZeroGuard float64 = 1e-3

	// step9DistanceThreshold (ΔE_OK × 100) below which the accent is judged
	// too close to the background to use directly as step 9.
	step9DistanceThreshold float64 = 25.0

	// hoverChromaMultiplier scales chroma for the button-hover derivative
	// when step 9 is light (L > 0.4) and is darkened for hover, for a
	// defined hue only.
	hoverChromaMultiplier float64 = 0.93

	// surfaceAlphaLight and surfaceAlphaDark are the forced alphas used when
	// reverse-solving the translucent "surface" color from accent step 2.
	surfaceAlphaLight float64 = 0.8
	surfaceAlphaDark  float64 = 0.5
)

// APCA contrast constants
const (
	apcaLuminanceExponent      float64 = 2.4
	apcaSoftClampThreshold     float64 = 0.022
	apcaSoftClampExponent      float64 = 1.414
	apcaSoftClampScale         float64 = 1e-9
	apcaNormalBgExponent       float64 = 0.56
	apcaNormalTextExponent     float64 = 0.57
	apcaReverseBgExponent      float64 = 0.62
	apcaReverseTextExponent    float64 = 0.65
	apcaOffset                 float64 = 2.7
	apcaDeadband               float64 = 0.1
	apcaWhiteTextThreshold     float64 = 40.0
	apcaDarkTextLightness      float64 = 0.25
	apcaDarkTextChromaFloor    float64 = 0.04
	apcaDarkTextChromaFromStep float64 = 0.08
)

// Cubic-Bézier lightness-transposition curves (§4.6)
var (
	bezierCurveLight    = [4]float64{0, 2, 0, 2}
	bezierCurveDarkBase = [4]float64{1, 0, 1, 0}
)

const darkSofteningMaxRatio float64 = 1.5
