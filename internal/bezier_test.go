package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseEndpoints(t *testing.T) {
	curves := [][4]float64{
		{0, 2, 0, 2},
		{1, 0, 1, 0},
		{0.25, 0.1, 0.25, 1},
	}
	for _, curve := range curves {
		assert.InDelta(t, 0, ease(0, curve), 1e-9)
		assert.InDelta(t, 1, ease(1, curve), 1e-9)
	}
}

func TestEaseMonotoneWhenControlPointsInRange(t *testing.T) {
	curve := [4]float64{0.25, 0.5, 0.75, 0.5}
	prev := ease(0, curve)
	for i := 1; i <= 20; i++ {
		x := float64(i) / 20
		cur := ease(x, curve)
		assert.GreaterOrEqual(t, cur, prev-1e-9)
		prev = cur
	}
}

func TestTransposeAnchorsFirstValue(t *testing.T) {
	l := []float64{0.9, 0.7, 0.5, 0.3}
	out := transpose(l, 0.2, [4]float64{0, 2, 0, 2})
	assert.InDelta(t, 0.2, out[0], 1e-9)
}

func TestTransposeLightnessLightModeAnchorsBackground(t *testing.T) {
	var adjusted [12]OKLCH
	for i := range adjusted {
		adjusted[i] = OKLCH{L: 0.95 - float64(i)*0.07, C: 0.1, H: DefinedHue(255)}
	}
	bg := OKLCH{L: 0.94, C: 0, H: UndefinedHue}

	out := transposeLightness(adjusted, bg)
	assert.InDelta(t, bg.L, out[0].L, 1e-6)
}

func TestTransposeLightnessDarkModeNoDivisionByZero(t *testing.T) {
	var adjusted [12]OKLCH
	for i := range adjusted {
		adjusted[i] = OKLCH{L: 0, C: 0.1, H: DefinedHue(255)}
	}
	bg := OKLCH{L: 0, C: 0, H: UndefinedHue}

	out := transposeLightness(adjusted, bg)
	for _, step := range out {
		assert.False(t, isNaNFloat(step.L))
	}
}

func isNaNFloat(f float64) bool {
	return f != f
}
