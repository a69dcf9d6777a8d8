package colour

import (
	"math"
	"strings"
)

// namedColours are the 16 xterm colours plus common CSS names, used to give
// a colour a rough human-readable name.
var namedColours = []NamedColour{
	{Name: "black", Value: "#000000"},
	{Name: "red", Value: "#cd3131"},
	{Name: "green", Value: "#0dbc79"},
	{Name: "yellow", Value: "#e5e510"},
	{Name: "blue", Value: "#2472c8"},
	{Name: "magenta", Value: "#bc3fbc"},
	{Name: "cyan", Value: "#11a8cd"},
	{Name: "white", Value: "#e5e5e5"},
	{Name: "bright-black", Value: "#666666"},
	{Name: "bright-red", Value: "#f14c4c"},
	{Name: "bright-green", Value: "#23d18b"},
	{Name: "bright-yellow", Value: "#f5f543"},
	{Name: "bright-blue", Value: "#3b8eea"},
	{Name: "bright-magenta", Value: "#d670d6"},
	{Name: "bright-cyan", Value: "#29b8db"},
	{Name: "bright-white", Value: "#ffffff"},
	{Name: "orange", Value: "#ffa500"},
	{Name: "pink", Value: "#ffc0cb"},
	{Name: "brown", Value: "#a52a2a"},
	{Name: "lime", Value: "#00ff00"},
	{Name: "navy", Value: "#000080"},
	{Name: "teal", Value: "#008080"},
	{Name: "maroon", Value: "#800000"},
	{Name: "olive", Value: "#808000"},
	{Name: "violet", Value: "#ee82ee"},
	{Name: "indigo", Value: "#4b0082"},
}

// NamedColours returns the reference colours NearestName chooses from.
func NamedColours() []NamedColour {
	out := make([]NamedColour, len(namedColours))
	copy(out, namedColours)
	return out
}

// LookupName returns the reference colour with the given name. Matching
// ignores case, spaces and dashes.
func LookupName(name string) (RGB, bool) {
	want := normaliseName(name)
	for _, nc := range namedColours {
		if normaliseName(nc.Name) == want {
			rgb, _ := HexToRGB(nc.Value)
			return rgb, true
		}
	}
	return RGB{}, false
}

// NearestName returns the reference colour closest to rgb.
func NearestName(rgb RGB) NamedColour {
	var nearest NamedColour
	best := math.MaxFloat64
	for _, nc := range namedColours {
		ref, _ := HexToRGB(nc.Value)
		if d := colourDistance(rgb, ref); d < best {
			best = d
			nearest = nc
		}
	}
	return nearest
}

// colourDistance is a weighted Euclidean RGB distance; green counts most,
// matching eye sensitivity.
func colourDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db)
}

func normaliseName(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
}
