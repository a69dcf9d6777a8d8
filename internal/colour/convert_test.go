package colour

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		want   RGB
		wantOK bool
	}{
		{"with hash", "#3361cc", RGB{R: 0x33, G: 0x61, B: 0xcc}, true},
		{"upper case", "#3361CC", RGB{R: 0x33, G: 0x61, B: 0xcc}, true},
		{"without hash", "3361cc", RGB{R: 0x33, G: 0x61, B: 0xcc}, true},
		{"black", "#000000", RGB{}, true},
		{"white", "#ffffff", RGB{R: 255, G: 255, B: 255}, true},
		{"short form", "#fff", RGB{}, false},
		{"too long", "#1234567", RGB{}, false},
		{"bad digit", "#gggggg", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"hash only", "#", RGB{}, false},
		{"leading space", " #123456", RGB{}, false},
		{"double hash", "##123456", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToRGB(tt.hex)
			if ok != tt.wantOK {
				t.Fatalf("HexToRGB(%q) ok = %v, want %v", tt.hex, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
			if IsValidHex(tt.hex) != tt.wantOK {
				t.Errorf("IsValidHex(%q) = %v, want %v", tt.hex, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{"integers", 51, 97, 204, "#3361cc"},
		{"rounds up", 254.5, 0.5, 15.6, "#ff0110"},
		{"rounds down", 0.4, 127.49, 254.4, "#007ffe"},
		{"black", 0, 0, 0, "#000000"},
		{"white", 255, 255, 255, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToHex(%v, %v, %v) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{"red", RGB{R: 255}, HSL{H: 0, S: 100, L: 50}},
		{"green", RGB{G: 255}, HSL{H: 120, S: 100, L: 50}},
		{"blue", RGB{B: 255}, HSL{H: 240, S: 100, L: 50}},
		{"cyan", RGB{G: 255, B: 255}, HSL{H: 180, S: 100, L: 50}},
		{"magenta", RGB{R: 255, B: 255}, HSL{H: 300, S: 100, L: 50}},
		{"black", RGB{}, HSL{H: 0, S: 0, L: 0}},
		{"white", RGB{R: 255, G: 255, B: 255}, HSL{H: 0, S: 0, L: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if !hslNear(got, tt.want, 1e-9) {
				t.Errorf("RGBToHSL(%+v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want RGB
	}{
		{"red", HSL{H: 0, S: 100, L: 50}, RGB{R: 255}},
		{"hue wraps", HSL{H: 360, S: 100, L: 50}, RGB{R: 255}},
		{"negative hue wraps", HSL{H: -120, S: 100, L: 50}, RGB{B: 255}},
		{"lightness clamped", HSL{H: 0, S: 100, L: 150}, RGB{R: 255, G: 255, B: 255}},
		{"saturation clamped", HSL{H: 0, S: -10, L: 0}, RGB{}},
		{"grey", HSL{H: 200, S: 0, L: 40}, RGB{R: 102, G: 102, B: 102}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.hsl); got != tt.want {
				t.Errorf("HSLToRGB(%+v) = %+v, want %+v", tt.hsl, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 1000 {
		rgb := RGB{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
		}
		if got := HSLToRGB(RGBToHSL(rgb)); got != rgb {
			t.Fatalf("round trip of %s gave %s", rgb.Hex(), got.Hex())
		}
		if got, ok := HexToRGB(RGBToHex(float64(rgb.R), float64(rgb.G), float64(rgb.B))); !ok || got != rgb {
			t.Fatalf("HexToRGB(RGBToHex(%d, %d, %d)) = %+v, %v", rgb.R, rgb.G, rgb.B, got, ok)
		}
		hex := rgb.Hex()
		hsl, ok := HexToHSL(hex)
		if !ok {
			t.Fatalf("HexToHSL(%q) failed", hex)
		}
		if got := HSLToHex(hsl); got != hex {
			t.Fatalf("hex round trip of %s gave %s", hex, got)
		}
	}
}

func TestHSLToRGBWrapsHue(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 500 {
		hsl := HSL{H: rng.Float64() * 360, S: rng.Float64() * 100, L: rng.Float64() * 100}
		want := HSLToRGB(hsl)
		for _, turns := range []float64{-2, -1, 1, 3} {
			shifted := hsl
			shifted.H += turns * 360
			got := HSLToRGB(shifted)
			if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 {
				t.Fatalf("HSLToRGB(%+v) = %s, want %s", shifted, got, want)
			}
		}
	}
}

func TestHexToHSLInvalid(t *testing.T) {
	if _, ok := HexToHSL("not a colour"); ok {
		t.Error("HexToHSL accepted an invalid colour")
	}
}

func TestRGBAndHSLString(t *testing.T) {
	if got := (RGB{R: 51, G: 97, B: 204}).String(); got != "rgb(51, 97, 204)" {
		t.Errorf("RGB.String() = %q", got)
	}
	if got := (HSL{H: 222.2, S: 60, L: 50}).String(); got != "hsl(222.2, 60.0%, 50.0%)" {
		t.Errorf("HSL.String() = %q", got)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 300, 150},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); got != tt.want {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func hslNear(a, b HSL, tol float64) bool {
	return HueDistance(a.H, b.H) <= tol &&
		math.Abs(a.S-b.S) <= tol &&
		math.Abs(a.L-b.L) <= tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
