package colour

import (
	"math"
	"testing"
)

func TestGenerateShades(t *testing.T) {
	const base = "#3361CC"
	baseHSL, _ := HexToHSL(base)

	shades := GenerateShades(base, 5)
	if len(shades) != 5 {
		t.Fatalf("GenerateShades returned %d shades, want 5", len(shades))
	}

	prevL := math.Inf(1)
	for i, hex := range shades {
		hsl, ok := HexToHSL(hex)
		if !ok {
			t.Fatalf("shade %d is not a valid colour: %q", i, hex)
		}

		wantL := 90 - float64(i)*70/4
		if math.Abs(hsl.L-wantL) > 1 {
			t.Errorf("shade %d lightness = %.2f, want %.2f", i, hsl.L, wantL)
		}
		if hsl.L >= prevL {
			t.Errorf("shade %d lightness %.2f is not below previous %.2f", i, hsl.L, prevL)
		}
		prevL = hsl.L

		if d := HueDistance(hsl.H, baseHSL.H); d > 3 {
			t.Errorf("shade %d hue %.2f drifted %.2f from base %.2f", i, hsl.H, d, baseHSL.H)
		}
		if d := math.Abs(hsl.S - baseHSL.S); d > 3 {
			t.Errorf("shade %d saturation %.2f drifted %.2f from base %.2f", i, hsl.S, d, baseHSL.S)
		}
	}
}

func TestGenerateShadesTwo(t *testing.T) {
	shades := GenerateShades("#808080", 2)
	if len(shades) != 2 {
		t.Fatalf("got %d shades, want 2", len(shades))
	}

	first, _ := HexToHSL(shades[0])
	last, _ := HexToHSL(shades[1])
	if math.Abs(first.L-90) > 0.5 || math.Abs(last.L-20) > 0.5 {
		t.Errorf("ramp lightness = [%.2f, %.2f], want [90, 20]", first.L, last.L)
	}
}

func TestGenerateShadesInvalidBase(t *testing.T) {
	if got := GenerateShades("#12", 5); got != nil {
		t.Errorf("GenerateShades on invalid base = %v, want nil", got)
	}
}

func TestGenerateShadesPanicsOnSmallCount(t *testing.T) {
	for _, count := range []int{1, 0, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("GenerateShades(_, %d) did not panic", count)
				}
			}()
			GenerateShades("#3361cc", count)
		}()
	}
}

func TestAdjustLightness(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		delta float64
		want  string
	}{
		{"darken red", "#ff0000", -10, "#cc0000"},
		{"lighten red", "#ff0000", 20, "#ff6666"},
		{"clamp to black", "#ffffff", -150, "#000000"},
		{"clamp to white", "#000000", 200, "#ffffff"},
		{"no change", "#3361cc", 0, "#3361cc"},
		{"invalid unchanged", "oops", 10, "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustLightness(tt.base, tt.delta); got != tt.want {
				t.Errorf("AdjustLightness(%q, %v) = %s, want %s", tt.base, tt.delta, got, tt.want)
			}
		})
	}
}

func TestGenerateComplementary(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"#ff0000", "#00ffff"},
		{"#00ff00", "#ff00ff"},
		{"#0000ff", "#ffff00"},
		{"#808080", "#808080"},
		{"invalid", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := GenerateComplementary(tt.base); got != tt.want {
				t.Errorf("GenerateComplementary(%q) = %s, want %s", tt.base, got, tt.want)
			}
		})
	}
}

func TestGenerateComplementaryIsHueOpposite(t *testing.T) {
	for _, base := range []string{"#3361cc", "#7c3aed", "#10b981", "#f59e0b"} {
		b, _ := HexToHSL(base)
		c, _ := HexToHSL(GenerateComplementary(base))
		if d := HueDistance(b.H, c.H); math.Abs(d-180) > 2 {
			t.Errorf("complement of %s is %.1f degrees away, want 180", base, d)
		}
	}
}
