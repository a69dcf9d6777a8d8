// Package tokens builds a design-token set from a small authoring config:
// brand colours expand into shade ramps and contrast reports, and the
// typography, spacing, shadow and motion settings expand into scales.
package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/jmylchreest/tokensmith/internal/colour"
)

// Config is the authoring input for a token set.
type Config struct {
	Name       string           `json:"name"`
	Colours    []ColourConfig   `json:"colours"`
	ShadeCount int              `json:"shadeCount"`
	Typography TypographyConfig `json:"typography"`
	Spacing    SpacingConfig    `json:"spacing"`
	Shadows    []ShadowConfig   `json:"shadows"`
	Motion     MotionConfig     `json:"motion"`
}

// ColourConfig names a brand colour.
type ColourConfig struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TypographyConfig describes a modular type scale.
type TypographyConfig struct {
	FontFamily string  `json:"fontFamily"`
	BaseSize   float64 `json:"baseSize"`
	ScaleRatio float64 `json:"scaleRatio"`
	MinStep    int     `json:"minStep"`
	MaxStep    int     `json:"maxStep"`
}

// SpacingConfig describes a spacing scale as multiples of a base unit.
type SpacingConfig struct {
	Unit        float64   `json:"unit"`
	Multipliers []float64 `json:"multipliers"`
}

// ShadowConfig describes a single box shadow.
type ShadowConfig struct {
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Colour  string  `json:"colour"`
	Opacity float64 `json:"opacity"`
}

// MotionConfig holds named durations (milliseconds) and easing curves.
type MotionConfig struct {
	Durations map[string]int    `json:"durations"`
	Easings   map[string]string `json:"easings"`
}

// DefaultConfig returns a complete config that builds without edits.
func DefaultConfig() Config {
	return Config{
		Name: "tokens",
		Colours: []ColourConfig{
			{Name: "primary", Value: "#3361cc"},
			{Name: "secondary", Value: "#7c3aed"},
			{Name: "neutral", Value: "#64748b"},
		},
		ShadeCount: colour.DefaultShadeCount,
		Typography: TypographyConfig{
			FontFamily: "Inter, system-ui, sans-serif",
			BaseSize:   16,
			ScaleRatio: 1.25,
			MinStep:    -2,
			MaxStep:    5,
		},
		Spacing: SpacingConfig{
			Unit:        4,
			Multipliers: []float64{0, 0.5, 1, 2, 3, 4, 6, 8, 12, 16},
		},
		Shadows: []ShadowConfig{
			{Name: "sm", X: 0, Y: 1, Blur: 2, Spread: 0, Colour: "#000000", Opacity: 0.05},
			{Name: "md", X: 0, Y: 4, Blur: 6, Spread: -1, Colour: "#000000", Opacity: 0.1},
			{Name: "lg", X: 0, Y: 10, Blur: 15, Spread: -3, Colour: "#000000", Opacity: 0.1},
		},
		Motion: MotionConfig{
			Durations: map[string]int{"fast": 150, "normal": 250, "slow": 400},
			Easings: map[string]string{
				"standard":   "cubic-bezier(0.2, 0, 0, 1)",
				"decelerate": "cubic-bezier(0, 0, 0, 1)",
				"accelerate": "cubic-bezier(0.3, 0, 1, 1)",
			},
		},
	}
}

// MaxShadeCount is the longest ramp whose steps still get distinct names
// on the 100..900 scale.
const MaxShadeCount = 9

// namePattern restricts token names to characters that are safe in CSS
// custom properties, SCSS variables and Tailwind keys.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// reservedColourNames are taken by the semantic colours.
var reservedColourNames = []string{"success", "warning", "error", "info"}

// LoadConfig reads and parses a JSON config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified config path, intended to be read
	if err != nil {
		return Config{}, fmt.Errorf("failed to read token config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses JSON on top of DefaultConfig, so omitted sections keep
// their defaults, and validates the result. Lists given in the JSON replace
// the default list; motion maps are merged key by key. Unknown fields are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return Config{}, fmt.Errorf("failed to parse token config: %w", err)
	}

	cfg := DefaultConfig()
	// encoding/json decodes list elements over existing ones.
	if _, ok := present["colours"]; ok {
		cfg.Colours = nil
	}
	if _, ok := present["shadows"]; ok {
		cfg.Shadows = nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse token config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid token config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs []error

	if len(c.Colours) == 0 {
		errs = append(errs, errors.New("at least one colour is required"))
	}
	seen := make(map[string]bool, len(c.Colours))
	for i, cc := range c.Colours {
		switch {
		case cc.Name == "":
			errs = append(errs, fmt.Errorf("colours[%d]: name is required", i))
		case !namePattern.MatchString(cc.Name):
			errs = append(errs, fmt.Errorf("colours[%d]: invalid name %q (letters, digits and dashes only)", i, cc.Name))
		case slices.Contains(reservedColourNames, strings.ToLower(cc.Name)):
			errs = append(errs, fmt.Errorf("colours[%d]: name %q is reserved for a semantic colour", i, cc.Name))
		case seen[strings.ToLower(cc.Name)]:
			errs = append(errs, fmt.Errorf("colours[%d]: duplicate name %q", i, cc.Name))
		}
		seen[strings.ToLower(cc.Name)] = true
		if !colour.IsValidHex(cc.Value) {
			errs = append(errs, fmt.Errorf("colours[%d]: invalid hex colour %q", i, cc.Value))
		}
	}

	if c.ShadeCount < 2 {
		errs = append(errs, fmt.Errorf("shadeCount must be at least 2, got %d", c.ShadeCount))
	} else if c.ShadeCount > MaxShadeCount {
		errs = append(errs, fmt.Errorf("shadeCount must be at most %d, got %d", MaxShadeCount, c.ShadeCount))
	}

	if c.Typography.BaseSize <= 0 {
		errs = append(errs, fmt.Errorf("typography.baseSize must be positive, got %g", c.Typography.BaseSize))
	}
	if c.Typography.ScaleRatio <= 0 {
		errs = append(errs, fmt.Errorf("typography.scaleRatio must be positive, got %g", c.Typography.ScaleRatio))
	}
	if c.Typography.MinStep > c.Typography.MaxStep {
		errs = append(errs, fmt.Errorf("typography.minStep %d is greater than maxStep %d",
			c.Typography.MinStep, c.Typography.MaxStep))
	}

	if c.Spacing.Unit <= 0 {
		errs = append(errs, fmt.Errorf("spacing.unit must be positive, got %g", c.Spacing.Unit))
	}

	shadowNames := make(map[string]bool, len(c.Shadows))
	for i, s := range c.Shadows {
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Errorf("shadows[%d]: name is required", i))
		case !namePattern.MatchString(s.Name):
			errs = append(errs, fmt.Errorf("shadows[%d]: invalid name %q (letters, digits and dashes only)", i, s.Name))
		case shadowNames[s.Name]:
			errs = append(errs, fmt.Errorf("shadows[%d]: duplicate name %q", i, s.Name))
		}
		shadowNames[s.Name] = true
		if !colour.IsValidHex(s.Colour) {
			errs = append(errs, fmt.Errorf("shadows[%d]: invalid hex colour %q", i, s.Colour))
		}
		if s.Opacity < 0 || s.Opacity > 1 {
			errs = append(errs, fmt.Errorf("shadows[%d]: opacity must be within [0, 1], got %g", i, s.Opacity))
		}
	}

	for _, name := range sortedKeys(c.Motion.Durations) {
		if !namePattern.MatchString(name) {
			errs = append(errs, fmt.Errorf("motion.durations: invalid name %q (letters, digits and dashes only)", name))
		}
	}
	for _, name := range sortedKeys(c.Motion.Easings) {
		if !namePattern.MatchString(name) {
			errs = append(errs, fmt.Errorf("motion.easings: invalid name %q (letters, digits and dashes only)", name))
		}
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
