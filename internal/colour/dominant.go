package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/draw"
)

// DominantExtractor implements frequency based colour extraction over a
// downscaled, quantised copy of the image.
type DominantExtractor struct {
	maxDimension   int
	stride         int
	alphaThreshold uint8
	quantStep      float64
	minLightness   float64
	maxLightness   float64
}

// NewDominantExtractor creates a DominantExtractor with default settings.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{
		maxDimension:   100,
		stride:         4,
		alphaThreshold: 128,
		quantStep:      32,
		minLightness:   20,
		maxLightness:   80,
	}
}

// bucket is one quantised colour and the number of samples that fell in it.
type bucket struct {
	rgb   RGB
	hex   string
	count int
}

// Extract returns up to count colours, most frequent first. Near-black and
// near-white buckets are dropped. A fully filtered image yields an empty
// palette rather than an error.
func (e *DominantExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	sampled := e.downscale(img)
	buckets, total := e.histogram(sampled)

	ranked := make([]bucket, 0, len(buckets))
	for _, b := range buckets {
		ranked = append(ranked, b)
	}
	slices.SortFunc(ranked, func(a, b bucket) int {
		if a.count != b.count {
			return b.count - a.count
		}
		if a.hex < b.hex {
			return -1
		}
		if a.hex > b.hex {
			return 1
		}
		return 0
	})

	colors := make([]color.Color, 0, count)
	weights := make([]float64, 0, count)
	for _, b := range ranked {
		l := RGBToHSL(b.rgb).L
		if l <= e.minLightness || l >= e.maxLightness {
			continue
		}
		colors = append(colors, RGBToColor(b.rgb))
		weights = append(weights, float64(b.count)/float64(total))
		if len(colors) == count {
			break
		}
	}

	return NewPaletteWithWeights(colors, weights), nil
}

// downscale returns img resized so its longer side is at most maxDimension.
// Images already within bounds are returned as-is.
func (e *DominantExtractor) downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longest := max(width, height)
	if longest <= e.maxDimension {
		return img
	}

	scale := float64(e.maxDimension) / float64(longest)
	dstW := max(1, int(math.Round(float64(width)*scale)))
	dstH := max(1, int(math.Round(float64(height)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// histogram visits every stride-th pixel in row-major order and counts
// quantised opaque colours. total is the number of opaque samples.
func (e *DominantExtractor) histogram(img image.Image) (map[RGB]bucket, int) {
	bounds := img.Bounds()
	width := bounds.Dx()
	pixels := width * bounds.Dy()

	buckets := make(map[RGB]bucket)
	total := 0
	for i := 0; i < pixels; i += e.stride {
		x := bounds.Min.X + i%width
		y := bounds.Min.Y + i/width

		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		if c.A < e.alphaThreshold {
			continue
		}

		rgb := RGB{
			R: e.quantise(c.R),
			G: e.quantise(c.G),
			B: e.quantise(c.B),
		}
		b, ok := buckets[rgb]
		if !ok {
			b = bucket{rgb: rgb, hex: rgb.Hex()}
		}
		b.count++
		buckets[rgb] = b
		total++
	}

	return buckets, total
}

// quantise rounds v to the nearest multiple of quantStep, capped at 255.
func (e *DominantExtractor) quantise(v uint8) uint8 {
	q := math.Round(float64(v)/e.quantStep) * e.quantStep
	return uint8(math.Min(q, 255))
}
