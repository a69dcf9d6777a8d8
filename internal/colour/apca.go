package colour

import (
	"math"
)

// APCA is a lightness contrast primitive: given text and background colours
// it returns a signed Lc value. Positive means dark text on a light
// background, negative means light text on a dark background.
type APCA func(text, background RGB) float64

// APCA-W3 0.0.98G-4g constants.
const (
	apcaMainTRC = 2.4

	apcaRedCoef   = 0.2126729
	apcaGreenCoef = 0.7151522
	apcaBlueCoef  = 0.0721750

	apcaNormBG  = 0.56
	apcaNormTXT = 0.57
	apcaRevTXT  = 0.62
	apcaRevBG   = 0.65

	apcaBlkThrs = 0.022
	apcaBlkClmp = 1.414

	apcaScaleBoW    = 1.14
	apcaScaleWoB    = 1.14
	apcaLoBoWOffset = 0.027
	apcaLoWoBOffset = 0.027
	apcaDeltaYMin   = 0.0005
	apcaLoClip      = 0.1
)

// Minimum |Lc| for a pass. This is a two-point simplification of APCA's
// font size/weight lookup table.
const (
	MinLcNormal = 60.0
	MinLcLarge  = 45.0
)

// APCAResult is the outcome of an APCA compliance check.
type APCAResult struct {
	Passes bool    `json:"passes"`
	Level  Level   `json:"level"`
	MinLc  float64 `json:"minLc"`
}

// DefaultAPCA is the built-in APCA-W3 implementation.
var DefaultAPCA APCA = apcaLc

// APCAContrast returns the APCA Lc of text on background for two hex colours.
// Returns 0 if either colour fails to parse.
func APCAContrast(text, background string) float64 {
	txt, ok := HexToRGB(text)
	if !ok {
		return 0
	}
	bg, ok := HexToRGB(background)
	if !ok {
		return 0
	}
	return DefaultAPCA(txt, bg)
}

// APCALevel thresholds |lc| at 60 for body text and 45 for large text.
func APCALevel(lc float64, largeText bool) APCAResult {
	minLc := MinLcNormal
	if largeText {
		minLc = MinLcLarge
	}

	passes := math.Abs(lc) >= minLc
	level := LevelFail
	if passes {
		level = LevelPass
	}

	return APCAResult{Passes: passes, Level: level, MinLc: minLc}
}

// apcaY estimates screen luminance using APCA's simple exponent curve.
func apcaY(rgb RGB) float64 {
	return apcaRedCoef*math.Pow(float64(rgb.R)/255.0, apcaMainTRC) +
		apcaGreenCoef*math.Pow(float64(rgb.G)/255.0, apcaMainTRC) +
		apcaBlueCoef*math.Pow(float64(rgb.B)/255.0, apcaMainTRC)
}

// softClampBlack lifts near-black luminance to model flare.
func softClampBlack(y float64) float64 {
	if y > apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}

func apcaLc(text, background RGB) float64 {
	txtY := softClampBlack(apcaY(text))
	bgY := softClampBlack(apcaY(background))

	if math.Abs(bgY-txtY) < apcaDeltaYMin {
		return 0
	}

	var out float64
	if bgY > txtY {
		// Dark text on light background.
		sapc := (math.Pow(bgY, apcaNormBG) - math.Pow(txtY, apcaNormTXT)) * apcaScaleBoW
		if sapc >= apcaLoClip {
			out = sapc - apcaLoBoWOffset
		}
	} else {
		// Light text on dark background.
		sapc := (math.Pow(bgY, apcaRevBG) - math.Pow(txtY, apcaRevTXT)) * apcaScaleWoB
		if sapc <= -apcaLoClip {
			out = sapc + apcaLoWoBOffset
		}
	}

	return out * 100
}
