package internal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// p3TokenPattern matches the CSS Color 4 `color(display-p3 r g b)` syntax
// used by the static template catalog (§4.4).
var p3TokenPattern = regexp.MustCompile(`(?i)^color\(\s*display-p3\s+([0-9]*\.?[0-9]+)\s+([0-9]*\.?[0-9]+)\s+([0-9]*\.?[0-9]+)\s*\)$`)

// HexToRGB parses #RGB, #RRGGBB, or #RRGGBBAA (case-insensitive, leading '#'
// optional) into an opaque-or-translucent Color. Any other length or a
// non-hex digit fails with InvalidHex.
func HexToRGB(text string) (Color, error) {
	trimmed := strings.TrimSpace(text)
	hex := strings.TrimPrefix(trimmed, "#")
	switch len(hex) {
	case 3, 6, 8:
		for _, r := range hex {
			if !isHexDigit(byte(r)) {
				return Color{}, newInvalidHex(text)
			}
		}
	default:
		return Color{}, newInvalidHex(text)
	}

	a := RGBMax
	var r, g, b float64
	if len(hex) == 3 {
		r = float64(hexDigit(hex[0]) * 17)
		g = float64(hexDigit(hex[1]) * 17)
		b = float64(hexDigit(hex[2]) * 17)
	} else {
		r = float64(hexByte(hex[0:2]))
		g = float64(hexByte(hex[2:4]))
		b = float64(hexByte(hex[4:6]))
		if len(hex) == 8 {
			a = float64(hexByte(hex[6:8]))
		}
	}

	return Color{R: r, G: g, B: b, A: a / RGBMax}, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

func hexByte(s string) int {
	b, _ := strconv.ParseInt(s, 16, 0)
	return int(b)
}

// RGBToHex emits an uppercase #RRGGBB, discarding alpha.
func RGBToHex(c Color) string {
	return fmt.Sprintf("#%02X%02X%02X", roundByte(c.R), roundByte(c.G), roundByte(c.B))
}

// RGBToHexA emits an uppercase #RRGGBBAA.
func RGBToHexA(c Color) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", roundByte(c.R), roundByte(c.G), roundByte(c.B), roundByte(c.A*RGBMax))
}

func roundByte(v float64) int {
	return int(clamp(math.Round(v), 0, RGBMax))
}

// ParseP3Token parses `color(display-p3 r g b)` where each component is a
// float in [0,1]. Per spec §4.1, each float is multiplied by 255, rounded to
// the nearest integer, clamped, and treated directly as sRGB — the system
// intentionally does not gamut-map P3 to sRGB.
func ParseP3Token(text string) (Color, error) {
	m := p3TokenPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Color{}, newInvalidP3Token(text)
	}
	r, err1 := strconv.ParseFloat(m[1], 64)
	g, err2 := strconv.ParseFloat(m[2], 64)
	b, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Color{}, newInvalidP3Token(text)
	}
	return Color{
		R: clamp(math.Round(r*RGBMax), 0, RGBMax),
		G: clamp(math.Round(g*RGBMax), 0, RGBMax),
		B: clamp(math.Round(b*RGBMax), 0, RGBMax),
		A: AlphaMax,
	}, nil
}
