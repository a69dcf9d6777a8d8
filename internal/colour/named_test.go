package colour

import "testing"

func TestNearestName(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{RGB{}, "black"},
		{RGB{R: 255, G: 255, B: 255}, "bright-white"},
		{RGB{R: 0, G: 128, B: 128}, "teal"},
		{RGB{R: 250, G: 160, B: 10}, "orange"},
		{RGB{R: 10, G: 10, B: 120}, "navy"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := NearestName(tt.rgb).Name; got != tt.want {
				t.Errorf("NearestName(%s) = %s, want %s", tt.rgb.Hex(), got, tt.want)
			}
		})
	}
}

func TestNearestNameOfEveryReference(t *testing.T) {
	for _, nc := range NamedColours() {
		rgb, ok := HexToRGB(nc.Value)
		if !ok {
			t.Fatalf("reference %s has invalid value %q", nc.Name, nc.Value)
		}
		if got := NearestName(rgb); got != nc {
			t.Errorf("NearestName(%s) = %+v, want %+v", nc.Value, got, nc)
		}
	}
}

func TestLookupName(t *testing.T) {
	tests := []struct {
		name   string
		want   RGB
		wantOK bool
	}{
		{"teal", RGB{R: 0, G: 128, B: 128}, true},
		{"Bright Blue", RGB{R: 0x3b, G: 0x8e, B: 0xea}, true},
		{"bright_blue", RGB{R: 0x3b, G: 0x8e, B: 0xea}, true},
		{"brightblue", RGB{R: 0x3b, G: 0x8e, B: 0xea}, true},
		{"chartreuse", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupName(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("LookupName(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
