package internal

import (
	"math"
	"strings"
)

// isPureWhiteOrBlack reports whether a hex string (3, 4, 6, or 8 digits,
// optional leading '#') names exactly black or white, ignoring any alpha
// digits.
func isPureWhiteOrBlack(hex string) bool {
	h := strings.TrimPrefix(strings.ToLower(hex), "#")
	switch len(h) {
	case 3, 4:
		h = h[:3]
	case 6, 8:
		h = h[:6]
	default:
		return false
	}
	switch len(h) {
	case 3:
		return h == "000" || h == "fff"
	case 6:
		return h == "000000" || h == "ffffff"
	}
	return false
}

// ApplyStep9 implements §4.8 step 2: decide whether the synthesized accent's
// step-9 is replaced by the source accent color or kept as-is, based on how
// close the source accent sits to the background. It writes the chosen
// OKLCH back into scale[8] and returns it. The distance is measured against
// scale[0] after an 8-bit RGB round trip.
func ApplyStep9(scale *[12]OKLCH, source OKLCH) OKLCH {
	distance := DeltaEOK(source, RGBToOklch(OklchToRGB(scale[0]))) * 100

	var step9 OKLCH
	if distance < step9DistanceThreshold {
		step9 = scale[8]
	} else {
		step9 = source
	}
	scale[8] = step9
	return step9
}

// HoverStep implements §4.8 step 3: derive the button-hover step from step-9,
// then steal chroma/hue from whichever scale entry is perceptually nearest
// the derived candidate (distances are measured on each entry after an 8-bit
// RGB round trip). Writes the result to scale[9] and returns it.
func HoverStep(scale *[12]OKLCH, stepNine OKLCH) OKLCH {
	var lPrime float64
	if stepNine.L > 0.4 {
		lPrime = stepNine.L - 0.03/(stepNine.L+0.1)
	} else {
		lPrime = stepNine.L + 0.03/(stepNine.L+0.1)
	}

	cPrime := stepNine.C
	if stepNine.L > 0.4 && stepNine.H.IsDefined() {
		cPrime = stepNine.C * hoverChromaMultiplier
	}

	candidate := OKLCH{L: lPrime, C: cPrime, H: stepNine.H}

	bestIdx := 0
	bestDist := math.Inf(1)
	for i, step := range scale {
		d := DeltaEOK(candidate, RGBToOklch(OklchToRGB(step)))
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	hover := OKLCH{L: lPrime, C: scale[bestIdx].C, H: scale[bestIdx].H}
	scale[9] = hover
	return hover
}

// CapChroma implements §4.8 step 4: clamp the chroma of scale[10] and
// scale[11] to the maximum chroma already present in scale[7] and scale[8].
func CapChroma(scale *[12]OKLCH) {
	cMax := math.Max(scale[8].C, scale[7].C)
	for _, i := range [2]int{10, 11} {
		if scale[i].C > cMax {
			scale[i] = OKLCH{L: scale[i].L, C: cMax, H: scale[i].H}
		}
	}
}
