package internal

// Generate implements §4.10: the top-level orchestrator that wires C1
// through C9 into a complete Palette for the given appearance and seed
// colors. All parsing failures from C1 propagate as *InputError.
func Generate(appearance Appearance, accent, gray, background Input) (Palette, error) {
	accentRGB, err := accent.resolve()
	if err != nil {
		return Palette{}, err
	}
	grayRGB, err := gray.resolve()
	if err != nil {
		return Palette{}, err
	}
	bgRGB, err := background.resolve()
	if err != nil {
		return Palette{}, err
	}
	accentHex, err := accent.resolveHex()
	if err != nil {
		return Palette{}, err
	}

	accentOklch := RGBToOklch(accentRGB)
	grayOklch := RGBToOklch(grayRGB)
	bgOklch := RGBToOklch(bgRGB)

	catalog := Catalog(appearance)

	grayAdjusted := matchAndBlend(grayOklch, catalog)
	grayScaleOklch := transposeLightness(grayAdjusted, bgOklch)

	var accentScaleOklch [12]OKLCH
	if isPureWhiteOrBlack(accentHex) {
		accentScaleOklch = grayScaleOklch
	} else {
		accentAdjusted := matchAndBlend(accentOklch, catalog)
		accentScaleOklch = transposeLightness(accentAdjusted, bgOklch)
	}

	step9 := ApplyStep9(&accentScaleOklch, accentOklch)
	contrast := PickText(step9)
	HoverStep(&accentScaleOklch, step9)
	CapChroma(&accentScaleOklch)

	var accentScale, grayScale, accentScaleAlpha, grayScaleAlpha [12]Color
	for i := 0; i < 12; i++ {
		accentScale[i] = OklchToRGB(accentScaleOklch[i])
		grayScale[i] = OklchToRGB(grayScaleOklch[i])
		accentScaleAlpha[i] = ReverseAlpha(accentScale[i], bgRGB, nil)
		grayScaleAlpha[i] = ReverseAlpha(grayScale[i], bgRGB, nil)
	}

	surfaceAlpha := surfaceAlphaDark
	if appearance == AppearanceLight {
		surfaceAlpha = surfaceAlphaLight
	}
	surface := ReverseAlpha(accentScale[1], bgRGB, &surfaceAlpha)

	return Palette{
		AccentScale:      accentScale,
		AccentScaleAlpha: accentScaleAlpha,
		GrayScale:        grayScale,
		GrayScaleAlpha:   grayScaleAlpha,
		AccentContrast:   OklchToRGB(contrast),
		AccentSurface:    surface,
		Background:       bgRGB,
	}, nil
}
