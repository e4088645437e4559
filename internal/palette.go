package internal

// Palette is the full output of §4.10's orchestrator: two opaque 12-step
// scales, their translucent counterparts, the accent foreground color, the
// translucent surface color, and the resolved background.
type Palette struct {
	AccentScale      [12]Color
	AccentScaleAlpha [12]Color
	GrayScale        [12]Color
	GrayScaleAlpha   [12]Color
	AccentContrast   Color
	AccentSurface    Color
	Background       Color
}

// PaletteMap is the §6 toMap serialization: every entry rendered as an
// opaque "#RRGGBB" hex string, including the alpha scales (their alpha
// channel is recovered separately via ColorToHexWithAlpha).
type PaletteMap struct {
	AccentScale      [12]string `json:"accentScale"`
	AccentScaleAlpha [12]string `json:"accentScaleAlpha"`
	GrayScale        [12]string `json:"grayScale"`
	GrayScaleAlpha   [12]string `json:"grayScaleAlpha"`
	AccentContrast   string     `json:"accentContrast"`
	AccentSurface    string     `json:"accentSurface"`
	Background       string     `json:"background"`
}

// ToMap renders the palette per §6's keyed mapping.
func (p Palette) ToMap() PaletteMap {
	var m PaletteMap
	for i := 0; i < 12; i++ {
		m.AccentScale[i] = RGBToHex(p.AccentScale[i])
		m.AccentScaleAlpha[i] = RGBToHex(p.AccentScaleAlpha[i])
		m.GrayScale[i] = RGBToHex(p.GrayScale[i])
		m.GrayScaleAlpha[i] = RGBToHex(p.GrayScaleAlpha[i])
	}
	m.AccentContrast = RGBToHex(p.AccentContrast)
	m.AccentSurface = RGBToHex(p.AccentSurface)
	m.Background = RGBToHex(p.Background)
	return m
}

// ColorToHexWithAlpha emits "#RRGGBBAA" for callers that need alpha
// inspection beyond ToMap's opaque rendering (§6).
func ColorToHexWithAlpha(c Color) string {
	return RGBToHexA(c)
}
