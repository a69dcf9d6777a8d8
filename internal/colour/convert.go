// Package colour provides colour model conversion, contrast computation,
// palette derivation and dominant colour extraction.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// hexPattern matches a six digit hex colour with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in hue, saturation, lightness form.
// H is in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour in CSS notation, e.g. "hsl(222.2, 60.0%, 50.0%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", hsl.H, hsl.S, hsl.L)
}

// HexToRGB parses a hex colour ("#RRGGBB" or "RRGGBB", either case).
// ok is false for anything else; callers should treat that as "skip".
func HexToRGB(hex string) (rgb RGB, ok bool) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, false
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// IsValidHex reports whether s parses as a hex colour.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// RGBToHex rounds each channel to the nearest integer and formats the result
// as "#rrggbb". Channels must already be within [0, 255]; out of range values
// produce a malformed string.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", int(math.Round(r)), int(math.Round(g)), int(math.Round(b)))
}

// RGBToHSL converts RGB to HSL.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB, rounding each channel to the nearest integer.
// Hue is wrapped into [0, 360); saturation and lightness are clamped to [0, 100].
func HSLToRGB(hsl HSL) RGB {
	h := math.Mod(hsl.H, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, clamp(hsl.S, 0, 100)/100, clamp(hsl.L, 0, 100)/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// HexToHSL is shorthand for HexToRGB followed by RGBToHSL.
func HexToHSL(hex string) (HSL, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return HSL{}, false
	}
	return RGBToHSL(rgb), true
}

// HSLToHex is shorthand for HSLToRGB followed by Hex.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
