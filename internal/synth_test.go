package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchAndBlendProducesSeedHueThroughout(t *testing.T) {
	catalog := Catalog(AppearanceLight)
	seed, err := HexToRGB("#3D63DD")
	assert.NoError(t, err)
	seedOklch := RGBToOklch(seed)

	adjusted := matchAndBlend(seedOklch, catalog)
	for _, step := range adjusted {
		assert.InDelta(t, seedOklch.H.Value(), step.H.Value(), 1e-9)
		assert.LessOrEqual(t, step.C, seedOklch.C*chromaReidentifyCap+1e-9)
	}
}

func TestBlendRatioDegenerateWhenScalesIdentical(t *testing.T) {
	step := OKLCH{L: 0.5, C: 0.1, H: DefinedHue(20)}
	a := scaleMatch{name: "a", step: step, dist: 0}
	b := scaleMatch{name: "b", step: step, dist: 0}

	_, degenerate := blendRatio(a, b)
	assert.True(t, degenerate)
}

func TestDedupeGrayMatchesDropsTrailingGrays(t *testing.T) {
	matches := []scaleMatch{
		{name: "gray", dist: 1},
		{name: "sand", dist: 2},
		{name: "blue", dist: 3},
		{name: "slate", dist: 4},
	}
	out := dedupeGrayMatches(matches)
	assert.Equal(t, "gray", out[0].name)
	for _, m := range out[1:] {
		assert.False(t, grayLikeNames[m.name], "gray-like entry %q should have been dropped", m.name)
	}
}

func TestDedupeGrayMatchesKeepsAllWhenEveryEntryIsGray(t *testing.T) {
	matches := []scaleMatch{
		{name: "gray", dist: 1},
		{name: "sand", dist: 2},
	}
	out := dedupeGrayMatches(matches)
	assert.Len(t, out, 2)
}
