package internal

// Input is a seed color supplied either as a hex string or as a pre-parsed
// RGB triple — a Go sum type expressed as a struct with an optional field
// (Design Notes §9).
type Input struct {
	hex string
	rgb *Color
}

// InputFromHex builds an Input from a hex string, resolved lazily by resolve.
func InputFromHex(hex string) Input {
	return Input{hex: hex}
}

// InputFromRGB builds an Input from an already-parsed Color.
func InputFromRGB(c Color) Input {
	return Input{rgb: &c}
}

// resolve parses the Input into a Color, returning InvalidHex if a hex
// string was supplied and fails to parse.
func (in Input) resolve() (Color, error) {
	if in.rgb != nil {
		return *in.rgb, nil
	}
	return HexToRGB(in.hex)
}

// resolveHex returns the hex form used by §4.8 step 1's pure-white/black
// check. A hex input is returned as supplied; pre-parsed RGB inputs
// round-trip through RGBToHex.
func (in Input) resolveHex() (string, error) {
	if in.hex != "" {
		return in.hex, nil
	}
	c, err := in.resolve()
	if err != nil {
		return "", err
	}
	return RGBToHex(c), nil
}
