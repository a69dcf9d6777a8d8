package colour

import (
	"fmt"
	"math"
)

// DefaultShadeCount is the length of a shade ramp when none is given.
const DefaultShadeCount = 5

// Lightness bounds of a generated shade ramp.
const (
	shadeLightest = 90.0
	shadeDarkest  = 20.0
)

// GenerateShades builds a ramp of count shades of base, lightest first.
// Shade i has lightness 90 - i*70/(count-1) with hue and saturation held.
// count must be at least 2; smaller values panic. Returns nil if base does
// not parse.
func GenerateShades(base string, count int) []string {
	if count < 2 {
		panic(fmt.Sprintf("colour: shade count must be at least 2, got %d", count))
	}

	hsl, ok := HexToHSL(base)
	if !ok {
		return nil
	}

	step := (shadeLightest - shadeDarkest) / float64(count-1)
	shades := make([]string, count)
	for i := range count {
		shades[i] = HSLToHex(HSL{
			H: hsl.H,
			S: hsl.S,
			L: shadeLightest - float64(i)*step,
		})
	}

	return shades
}

// AdjustLightness adds delta to the HSL lightness of base, clamped to [0, 100].
// delta > 0 makes the colour lighter, delta < 0 darker. Unparsable input is
// returned unchanged.
func AdjustLightness(base string, delta float64) string {
	hsl, ok := HexToHSL(base)
	if !ok {
		return base
	}
	hsl.L = math.Max(0, math.Min(100, hsl.L+delta))
	return HSLToHex(hsl)
}

// GenerateComplementary rotates the hue of base by 180 degrees.
// Unparsable input is returned unchanged.
func GenerateComplementary(base string) string {
	hsl, ok := HexToHSL(base)
	if !ok {
		return base
	}
	hsl.H = math.Mod(hsl.H+180, 360)
	return HSLToHex(hsl)
}
