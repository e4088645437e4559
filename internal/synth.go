package internal

import (
	"math"
	"sort"
)

// scaleMatch is one template scale's closest step to a seed color, carried
// alongside the scale's full 12 steps so later stages can mix whole scales.
type scaleMatch struct {
	name  string
	scale [12]OKLCH
	step  OKLCH
	dist  float64
}

// matchAndBlend runs the template-matching search and chroma/hue
// re-identification of §4.5. It returns the "adjusted" 12-step OKLCH scale
// that §4.6's lightness transposition consumes next.
func matchAndBlend(seed OKLCH, catalog TemplateCatalog) [12]OKLCH {
	closest := nearestPerScale(seed, catalog)
	closest = dedupeGrayMatches(closest)

	if len(closest) < 2 {
		return closest[0].scale
	}

	a, b := closest[0], closest[1]
	ratio, degenerate := blendRatio(a, b)
	if degenerate {
		return a.scale
	}

	var mixed [12]OKLCH
	for i := 0; i < 12; i++ {
		mixed[i] = Mix(a.scale[i], b.scale[i], ratio)
	}

	base := nearestStep(mixed, seed)
	return reidentifyChromaHue(mixed, seed, base)
}

// nearestPerScale implements §4.5 step 1: for every template scale, the
// step with the smallest ΔE_OK to seed, sorted ascending by that distance.
func nearestPerScale(seed OKLCH, catalog TemplateCatalog) []scaleMatch {
	matches := make([]scaleMatch, 0, len(catalog))
	for name, tmpl := range catalog {
		bestIdx := 0
		bestDist := math.Inf(1)
		for i, step := range tmpl.Steps {
			d := DeltaEOK(seed, step)
			if d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		matches = append(matches, scaleMatch{
			name:  name,
			scale: tmpl.Steps,
			step:  tmpl.Steps[bestIdx],
			dist:  bestDist,
		})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })
	return matches
}

// dedupeGrayMatches implements §4.5 step 2: if not every entry is gray-like
// but the closest one is, drop gray-like entries from index 1 onward so the
// blend partner is not a visually indistinguishable neighbor gray.
func dedupeGrayMatches(closest []scaleMatch) []scaleMatch {
	if len(closest) == 0 {
		return closest
	}
	allGray := true
	for _, m := range closest {
		if !grayLikeNames[m.name] {
			allGray = false
			break
		}
	}
	if allGray || !grayLikeNames[closest[0].name] {
		return closest
	}

	out := closest[:1]
	for _, m := range closest[1:] {
		if grayLikeNames[m.name] {
			continue
		}
		out = append(out, m)
	}
	return out
}

// blendRatio implements §4.5 step 4: the law-of-cosines blend weight between
// the two closest scales. The second return value reports the degenerate
// case (either triangle angle has zero sine), in which scale A is used alone.
func blendRatio(a, b scaleMatch) (ratio float64, degenerate bool) {
	sideA := b.dist // a = B.dist
	sideB := a.dist // b = A.dist
	sideC := DeltaEOK(a.step, b.step)

	if sideB == 0 || sideC == 0 {
		return 0, true
	}

	cosAlpha := clamp((sideB*sideB+sideC*sideC-sideA*sideA)/(2*sideB*sideC), -1, 1)
	alpha := math.Acos(cosAlpha)
	sinAlpha := math.Sin(alpha)

	if sideA == 0 || sideC == 0 {
		return 0, true
	}
	cosBeta := clamp((sideA*sideA+sideC*sideC-sideB*sideB)/(2*sideA*sideC), -1, 1)
	beta := math.Acos(cosBeta)
	sinBeta := math.Sin(beta)

	if sinAlpha == 0 || sinBeta == 0 {
		return 0, true
	}

	tanGamma1 := cosAlpha / sinAlpha
	tanGamma2 := cosBeta / sinBeta
	ratio = math.Max(0, tanGamma1/tanGamma2) * blendDamping
	return ratio, false
}

// nearestStep implements §4.5 step 6: the step of the mixed scale closest to
// seed.
func nearestStep(mixed [12]OKLCH, seed OKLCH) OKLCH {
	best := mixed[0]
	bestDist := DeltaEOK(seed, best)
	for _, step := range mixed[1:] {
		d := DeltaEOK(seed, step)
		if d < bestDist {
			bestDist = d
			best = step
		}
	}
	return best
}

// reidentifyChromaHue implements §4.5 step 7: every step adopts the seed's
// hue, and chroma is rescaled by the seed/base chroma ratio, capped at
// 1.5x the seed's own chroma.
func reidentifyChromaHue(mixed [12]OKLCH, seed, base OKLCH) [12]OKLCH {
	ratioC := seed.C / math.Max(base.C, chromaNearZeroGuard)

	var out [12]OKLCH
	for i, step := range mixed {
		c := math.Min(seed.C*chromaReidentifyCap, step.C*ratioC)
		if c < 0 {
			c = 0
		}
		out[i] = OKLCH{L: step.L, C: c, H: seed.H}
	}
	return out
}
