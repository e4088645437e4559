package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPureWhiteOrBlack(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#FFFFFF", true},
		{"#000000", true},
		{"fff", true},
		{"000", true},
		{"#FFF", true},
		{"#ABCDEF", false},
		{"#FFFFFFAA", true},
		{"", false},
		{"#12345", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPureWhiteOrBlack(tt.hex), "hex=%q", tt.hex)
	}
}

func TestApplyStep9CloseToBackgroundReusesStep8(t *testing.T) {
	var scale [12]OKLCH
	for i := range scale {
		scale[i] = OKLCH{L: 0.9 - float64(i)*0.01, C: 0.01, H: DefinedHue(0)}
	}
	// source nearly identical to scale[0] so ΔE_OK*100 < 25
	source := OKLCH{L: scale[0].L, C: scale[0].C, H: scale[0].H}

	step9 := ApplyStep9(&scale, source)
	assert.Equal(t, scale[8], step9)
}

func TestApplyStep9FarFromBackgroundUsesSource(t *testing.T) {
	var scale [12]OKLCH
	for i := range scale {
		scale[i] = OKLCH{L: 0.95, C: 0.01, H: DefinedHue(0)}
	}
	source := OKLCH{L: 0.3, C: 0.2, H: DefinedHue(250)}

	step9 := ApplyStep9(&scale, source)
	assert.Equal(t, source, step9)
	assert.Equal(t, source, scale[8])
}

func TestHoverStepWritesScaleNine(t *testing.T) {
	var scale [12]OKLCH
	for i := range scale {
		scale[i] = OKLCH{L: 0.1 * float64(i+1), C: 0.05 + 0.01*float64(i), H: DefinedHue(float64(i) * 10)}
	}
	stepNine := scale[8]

	hover := HoverStep(&scale, stepNine)
	assert.Equal(t, hover, scale[9])
	assert.NotEqual(t, stepNine.L, hover.L)
}

func TestCapChromaClampsSteps10And11(t *testing.T) {
	var scale [12]OKLCH
	for i := range scale {
		scale[i] = OKLCH{L: 0.5, C: 0.05, H: DefinedHue(0)}
	}
	scale[7].C = 0.1
	scale[8].C = 0.08
	scale[10].C = 0.5
	scale[11].C = 0.4

	CapChroma(&scale)
	assert.LessOrEqual(t, scale[10].C, 0.1+1e-9)
	assert.LessOrEqual(t, scale[11].C, 0.1+1e-9)
}
