package colour

import (
	"math"
	"testing"
)

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"black on white", "#000000", "#ffffff", 21},
		{"white on black", "#ffffff", "#000000", 21},
		{"same colour", "#3361cc", "#3361cc", 1},
		{"invalid first", "nope", "#ffffff", 0},
		{"invalid second", "#000000", "#fff", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ContrastRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetricAndBounded(t *testing.T) {
	colours := []string{"#000000", "#ffffff", "#3361cc", "#10b981", "#f59e0b", "#ef4444", "#777777", "#123456"}

	for _, a := range colours {
		for _, b := range colours {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio(%s, %s) = %v but reversed = %v", a, b, ab, ba)
			}
			if ab < 1 || ab > 21+1e-9 {
				t.Errorf("ContrastRatio(%s, %s) = %v, outside [1, 21]", a, b, ab)
			}
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	if got := RelativeLuminance(RGB{}); got != 0 {
		t.Errorf("RelativeLuminance(black) = %v, want 0", got)
	}
	if got := RelativeLuminance(RGB{R: 255, G: 255, B: 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("RelativeLuminance(white) = %v, want 1", got)
	}
	// Green dominates perceived luminance.
	g := RelativeLuminance(RGB{G: 255})
	r := RelativeLuminance(RGB{R: 255})
	b := RelativeLuminance(RGB{B: 255})
	if g <= r || r <= b {
		t.Errorf("expected green > red > blue, got g=%v r=%v b=%v", g, r, b)
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		large bool
		want  Level
	}{
		{"max", 21, false, LevelAAA},
		{"AAA boundary", 7, false, LevelAAA},
		{"just under AAA", 6.99, false, LevelAA},
		{"AA boundary", 4.5, false, LevelAA},
		{"just under AA", 4.49, false, LevelFail},
		{"min", 1, false, LevelFail},
		{"large AAA boundary", 4.5, true, LevelAAA},
		{"large just under AAA", 4.49, true, LevelAA},
		{"large AA boundary", 3, true, LevelAA},
		{"large just under AA", 2.99, true, LevelFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WCAGLevel(tt.ratio, tt.large); got != tt.want {
				t.Errorf("WCAGLevel(%v, %v) = %s, want %s", tt.ratio, tt.large, got, tt.want)
			}
		})
	}
}

func TestBestTextColour(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#3361cc", "#ffffff"},
		{"#f59e0b", "#000000"},
		{"#10b981", "#000000"},
		{"invalid", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			if got := BestTextColour(tt.bg); got != tt.want {
				t.Errorf("BestTextColour(%q) = %s, want %s", tt.bg, got, tt.want)
			}
		})
	}
}
