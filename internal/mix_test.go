package internal

import "testing"

func TestMixEndpoints(t *testing.T) {
	a := OKLCH{L: 0.3, C: 0.1, H: DefinedHue(10)}
	b := OKLCH{L: 0.7, C: 0.2, H: DefinedHue(200)}

	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix(a,b,0) = %+v, want %+v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Errorf("Mix(a,b,1) = %+v, want %+v", got, b)
	}
}

func TestMixHueShortestArc(t *testing.T) {
	a := OKLCH{L: 0.5, C: 0.1, H: DefinedHue(10)}
	b := OKLCH{L: 0.5, C: 0.1, H: DefinedHue(350)}

	mid := Mix(a, b, 0.5)
	// The shortest arc from 10 to 350 passes through 0, so the midpoint
	// should land at 0 (equivalently 360), not at 180.
	if mid.H.Value() > 1 && mid.H.Value() < 359 {
		t.Errorf("Mix hue = %v, want near 0/360 (shortest arc)", mid.H.Value())
	}
}

func TestMixUndefinedHuePropagation(t *testing.T) {
	a := OKLCH{L: 0.3, C: 0, H: UndefinedHue}
	b := OKLCH{L: 0.7, C: 0.2, H: DefinedHue(200)}

	mid := Mix(a, b, 0.5)
	if mid.H.Value() != 200 {
		t.Errorf("Mix(undefined, defined(200), 0.5).H = %v, want 200 (borrow the defined side)", mid.H.Value())
	}

	both := Mix(OKLCH{H: UndefinedHue}, OKLCH{H: UndefinedHue}, 0.5)
	if both.H.IsDefined() {
		t.Errorf("Mix(undefined, undefined, 0.5).H = defined, want undefined")
	}
}
