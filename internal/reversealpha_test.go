package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseAlphaSameColorIsTransparent(t *testing.T) {
	bg := Color{R: 255, G: 255, B: 255, A: AlphaMax}
	out := ReverseAlpha(bg, bg, nil)
	assert.Equal(t, Color{R: 0, G: 0, B: 0, A: 0}, out)
}

func TestReverseAlphaPureGrayClosedForm(t *testing.T) {
	bg := Color{R: 255, G: 255, B: 255, A: AlphaMax}
	target := Color{R: 200, G: 200, B: 200, A: AlphaMax}

	out := ReverseAlpha(target, bg, nil)
	wantAlpha := clamp((200.0-255.0)/(0.0-255.0), 0, 1)
	assert.InDelta(t, wantAlpha, out.A, 1e-9)
	assert.Equal(t, 0.0, out.R)
	assert.Equal(t, 0.0, out.G)
	assert.Equal(t, 0.0, out.B)
}

func TestReverseAlphaRoundTripWithinTolerance(t *testing.T) {
	bg := Color{R: 240, G: 240, B: 240, A: AlphaMax}
	targets := []Color{
		{R: 61, G: 99, B: 221, A: AlphaMax},
		{R: 10, G: 200, B: 50, A: AlphaMax},
		{R: 250, G: 10, B: 10, A: AlphaMax},
	}

	for _, target := range targets {
		out := ReverseAlpha(target, bg, nil)
		composite := func(b, f, a float64) float64 {
			return math.Round(b*(1-a)) + math.Round(f*a)
		}
		assert.InDelta(t, target.R, composite(bg.R, out.R, out.A), 1)
		assert.InDelta(t, target.G, composite(bg.G, out.G, out.A), 1)
		assert.InDelta(t, target.B, composite(bg.B, out.B, out.A), 1)
	}
}

func TestReverseAlphaForcedAlpha(t *testing.T) {
	bg := Color{R: 255, G: 255, B: 255, A: AlphaMax}
	target := Color{R: 61, G: 99, B: 221, A: AlphaMax}
	forced := 0.8

	out := ReverseAlpha(target, bg, &forced)
	assert.InDelta(t, 0.8, out.A, 1e-9)
}
