package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/tokensmith/internal/tokens"
)

// jsonExporter writes the W3C Design Tokens Community Group format.
type jsonExporter struct{}

// NewJSON creates the design-token JSON exporter.
func NewJSON() Exporter {
	return &jsonExporter{}
}

func (e *jsonExporter) Name() string { return "json" }

func (e *jsonExporter) Description() string {
	return "W3C design tokens JSON ($type/$value)"
}

// token is a single DTCG token.
type token struct {
	Type  string `json:"$type,omitempty"`
	Value any    `json:"$value"`
}

// group is a DTCG group; encoding/json sorts its keys.
type group map[string]any

// Generate renders set as tokens.json.
func (e *jsonExporter) Generate(set *tokens.Set) (map[string][]byte, error) {
	if set == nil {
		return nil, fmt.Errorf("token set cannot be nil")
	}

	data, err := json.MarshalIndent(buildDocument(set), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}

	return map[string][]byte{"tokens.json": append(data, '\n')}, nil
}

func buildDocument(set *tokens.Set) group {
	colours := group{}
	for _, c := range set.Colours {
		g := group{
			"base":          token{Type: "color", Value: c.Base},
			"complementary": token{Type: "color", Value: c.Complementary},
			"on":            token{Type: "color", Value: c.OnColour},
		}
		for _, s := range c.Shades {
			g[strconv.Itoa(s.Step)] = token{Type: "color", Value: s.Value}
		}
		colours[c.Name] = g
	}

	semantic := group{}
	for _, s := range set.Semantic.All() {
		semantic[s.Name] = token{Type: "color", Value: s.Value}
	}

	fontSize := group{}
	lineHeight := group{}
	for _, t := range set.Typography {
		fontSize[t.Name] = token{Type: "dimension", Value: rem(t.SizeRem)}
		lineHeight[t.Name] = token{Type: "number", Value: t.LineHeight}
	}

	spacing := group{}
	for _, s := range set.Spacing {
		spacing[s.Name] = token{Type: "dimension", Value: rem(s.SizeRem)}
	}

	shadow := group{}
	for _, s := range set.Shadows {
		shadow[s.Name] = token{Type: "shadow", Value: map[string]string{
			"color":   s.Colour + alphaHex(s.Opacity),
			"offsetX": px(s.X),
			"offsetY": px(s.Y),
			"blur":    px(s.Blur),
			"spread":  px(s.Spread),
		}}
	}

	duration := group{}
	for _, d := range set.Durations {
		duration[d.Name] = token{Type: "duration", Value: strconv.Itoa(d.Ms) + "ms"}
	}

	easing := group{}
	for _, ez := range set.Easings {
		if points, ok := parseCubicBezier(ez.Value); ok {
			easing[ez.Name] = token{Type: "cubicBezier", Value: points}
		} else {
			easing[ez.Name] = token{Value: ez.Value}
		}
	}

	doc := group{
		"color":      colours,
		"semantic":   semantic,
		"fontSize":   fontSize,
		"lineHeight": lineHeight,
		"spacing":    spacing,
		"shadow":     shadow,
		"duration":   duration,
		"easing":     easing,
	}
	if set.FontFamily != "" {
		doc["fontFamily"] = group{
			"base": token{Type: "fontFamily", Value: splitFonts(set.FontFamily)},
		}
	}

	return doc
}

// parseCubicBezier reads "cubic-bezier(a, b, c, d)".
func parseCubicBezier(s string) ([4]float64, bool) {
	var p [4]float64
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "cubic-bezier(")
	if !ok {
		return p, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return p, false
	}

	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return p, false
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return p, false
		}
		p[i] = v
	}
	return p, true
}

func splitFonts(stack string) []string {
	var fonts []string
	for _, f := range strings.Split(stack, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" {
			fonts = append(fonts, f)
		}
	}
	return fonts
}

// alphaHex renders an opacity in [0, 1] as a two digit hex alpha suffix.
func alphaHex(opacity float64) string {
	return fmt.Sprintf("%02x", int(opacity*255+0.5))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
