package colour

import (
	"math"
)

// Level is a contrast compliance level.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelPass Level = "Pass"
	LevelFail Level = "Fail"
)

// WCAG 2.x thresholds.
const (
	MinRatioAA       = 4.5
	MinRatioAAA      = 7.0
	MinRatioAALarge  = 3.0
	MinRatioAAALarge = 4.5
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.x.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func RelativeLuminance(rgb RGB) float64 {
	r := linearise(float64(rgb.R) / 255.0)
	g := linearise(float64(rgb.G) / 255.0)
	b := linearise(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise applies the sRGB transfer curve to a [0, 1] component.
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatioRGB calculates the WCAG contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is black against white.
func ContrastRatioRGB(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio calculates the WCAG contrast ratio between two hex colours.
// The result is symmetric in its arguments. Returns 0 if either colour
// fails to parse.
func ContrastRatio(a, b string) float64 {
	rgbA, ok := HexToRGB(a)
	if !ok {
		return 0
	}
	rgbB, ok := HexToRGB(b)
	if !ok {
		return 0
	}
	return ContrastRatioRGB(rgbA, rgbB)
}

// WCAGLevel classifies a contrast ratio. Large text (caller decided) uses
// the relaxed 4.5/3 thresholds instead of 7/4.5.
func WCAGLevel(ratio float64, largeText bool) Level {
	aaa, aa := MinRatioAAA, MinRatioAA
	if largeText {
		aaa, aa = MinRatioAAALarge, MinRatioAALarge
	}

	switch {
	case ratio >= aaa:
		return LevelAAA
	case ratio >= aa:
		return LevelAA
	default:
		return LevelFail
	}
}

// BestTextColour returns black or white, whichever contrasts more with the
// background. Ties go to black. Invalid backgrounds get black.
func BestTextColour(background string) string {
	const black, white = "#000000", "#ffffff"

	bg, ok := HexToRGB(background)
	if !ok {
		return black
	}
	if ContrastRatioRGB(RGB{}, bg) >= ContrastRatioRGB(RGB{R: 255, G: 255, B: 255}, bg) {
		return black
	}
	return white
}
