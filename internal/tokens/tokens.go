package tokens

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/jmylchreest/tokensmith/internal/colour"
)

// rootFontSize converts px to rem.
const rootFontSize = 16.0

// Set is a computed design-token set, ready for export.
type Set struct {
	Name       string                `json:"name"`
	Colours    []ColourToken         `json:"colours"`
	Semantic   colour.SemanticColors `json:"semantic"`
	FontFamily string                `json:"fontFamily"`
	Typography []TypeStep            `json:"typography"`
	Spacing    []SpaceStep           `json:"spacing"`
	Shadows    []Shadow              `json:"shadows"`
	Durations  []Duration            `json:"durations"`
	Easings    []Easing              `json:"easings"`
}

// ColourToken is a brand colour with everything derived from it.
type ColourToken struct {
	Name          string            `json:"name"`
	Base          string            `json:"base"`
	Shades        []Shade           `json:"shades"`
	Complementary string            `json:"complementary"`
	OnColour      string            `json:"onColour"`
	Contrast      float64           `json:"contrast"`
	WCAG          colour.Level      `json:"wcag"`
	APCA          float64           `json:"apca"`
	APCALevel     colour.APCAResult `json:"apcaLevel"`
}

// Shade is one step of a colour's shade ramp.
type Shade struct {
	Step  int    `json:"step"`
	Value string `json:"value"`
}

// TypeStep is one size of the type scale.
type TypeStep struct {
	Name       string  `json:"name"`
	Step       int     `json:"step"`
	SizePx     float64 `json:"sizePx"`
	SizeRem    float64 `json:"sizeRem"`
	LineHeight float64 `json:"lineHeight"`
}

// SpaceStep is one size of the spacing scale.
type SpaceStep struct {
	Name    string  `json:"name"`
	SizePx  float64 `json:"sizePx"`
	SizeRem float64 `json:"sizeRem"`
}

// Shadow is a named box shadow. Value is the CSS box-shadow rendering.
type Shadow struct {
	Name    string  `json:"name"`
	Value   string  `json:"value"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Colour  string  `json:"colour"`
	Opacity float64 `json:"opacity"`
}

// Duration is a named motion duration in milliseconds.
type Duration struct {
	Name string `json:"name"`
	Ms   int    `json:"ms"`
}

// Easing is a named CSS timing function.
type Easing struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Build validates cfg and computes the token set.
func Build(cfg Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid token config: %w", err)
	}

	set := &Set{
		Name:       cfg.Name,
		FontFamily: cfg.Typography.FontFamily,
		Semantic:   colour.GenerateSemanticColors(normaliseHex(cfg.Colours[0].Value)),
		Typography: typeScale(cfg.Typography),
		Spacing:    spacingScale(cfg.Spacing),
		Shadows:    shadows(cfg.Shadows),
	}

	for _, cc := range cfg.Colours {
		set.Colours = append(set.Colours, colourToken(cc, cfg.ShadeCount))
	}

	for name, ms := range cfg.Motion.Durations {
		set.Durations = append(set.Durations, Duration{Name: name, Ms: ms})
	}
	slices.SortFunc(set.Durations, func(a, b Duration) int { return cmp.Compare(a.Name, b.Name) })

	for name, value := range cfg.Motion.Easings {
		set.Easings = append(set.Easings, Easing{Name: name, Value: value})
	}
	slices.SortFunc(set.Easings, func(a, b Easing) int { return cmp.Compare(a.Name, b.Name) })

	return set, nil
}

// Colour returns the colour token with the given name.
func (s *Set) Colour(name string) (ColourToken, bool) {
	for _, c := range s.Colours {
		if c.Name == name {
			return c, true
		}
	}
	return ColourToken{}, false
}

func colourToken(cc ColourConfig, shadeCount int) ColourToken {
	base := normaliseHex(cc.Value)
	ramp := colour.GenerateShades(base, shadeCount)

	shades := make([]Shade, len(ramp))
	for i, v := range ramp {
		shades[i] = Shade{Step: shadeStep(i, len(ramp)), Value: v}
	}

	on := colour.BestTextColour(base)
	ratio := colour.ContrastRatio(on, base)
	lc := colour.APCAContrast(on, base)

	return ColourToken{
		Name:          cc.Name,
		Base:          base,
		Shades:        shades,
		Complementary: colour.GenerateComplementary(base),
		OnColour:      on,
		Contrast:      round(ratio, 2),
		WCAG:          colour.WCAGLevel(ratio, false),
		APCA:          round(lc, 1),
		APCALevel:     colour.APCALevel(lc, false),
	}
}

// shadeStep maps ramp index i of n onto the 100..900 naming convention.
func shadeStep(i, n int) int {
	if n == 1 {
		return 500
	}
	return 100 + int(math.Round(float64(i)*800/float64(n-1)/100))*100
}

// normaliseHex lower-cases and prefixes a valid hex colour.
func normaliseHex(hex string) string {
	rgb, ok := colour.HexToRGB(hex)
	if !ok {
		return hex
	}
	return rgb.Hex()
}

func typeScale(cfg TypographyConfig) []TypeStep {
	steps := make([]TypeStep, 0, cfg.MaxStep-cfg.MinStep+1)
	for step := cfg.MinStep; step <= cfg.MaxStep; step++ {
		px := round(cfg.BaseSize*math.Pow(cfg.ScaleRatio, float64(step)), 2)
		lineHeight := 1.5
		if step > 0 {
			lineHeight = 1.2
		}
		steps = append(steps, TypeStep{
			Name:       typeStepName(step),
			Step:       step,
			SizePx:     px,
			SizeRem:    round(px/rootFontSize, 4),
			LineHeight: lineHeight,
		})
	}
	return steps
}

// typeStepName follows the xs/sm/base/lg/xl/2xl naming used by utility CSS.
func typeStepName(step int) string {
	switch {
	case step == 0:
		return "base"
	case step == 1:
		return "lg"
	case step == 2:
		return "xl"
	case step > 2:
		return strconv.Itoa(step-1) + "xl"
	case step == -1:
		return "sm"
	case step == -2:
		return "xs"
	default:
		return strconv.Itoa(-step-1) + "xs"
	}
}

func spacingScale(cfg SpacingConfig) []SpaceStep {
	steps := make([]SpaceStep, 0, len(cfg.Multipliers))
	for _, m := range cfg.Multipliers {
		px := round(cfg.Unit*m, 2)
		steps = append(steps, SpaceStep{
			Name:    spaceStepName(m),
			SizePx:  px,
			SizeRem: round(px/rootFontSize, 4),
		})
	}
	return steps
}

// spaceStepName renders a multiplier as a CSS-safe identifier ("0-5" for 0.5).
func spaceStepName(m float64) string {
	return strings.ReplaceAll(formatNumber(m), ".", "-")
}

func shadows(cfgs []ShadowConfig) []Shadow {
	out := make([]Shadow, 0, len(cfgs))
	for _, s := range cfgs {
		rgb, _ := colour.HexToRGB(s.Colour)
		out = append(out, Shadow{
			Name:    s.Name,
			X:       s.X,
			Y:       s.Y,
			Blur:    s.Blur,
			Spread:  s.Spread,
			Colour:  rgb.Hex(),
			Opacity: s.Opacity,
			Value:   fmt.Sprintf("%spx %spx %spx %spx rgba(%d, %d, %d, %s)",
				formatNumber(s.X), formatNumber(s.Y), formatNumber(s.Blur), formatNumber(s.Spread),
				rgb.R, rgb.G, rgb.B, formatNumber(s.Opacity)),
		})
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
