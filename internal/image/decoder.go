// Package image provides utilities for loading and decoding images.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format

	_ "golang.org/x/image/webp" // Register WebP format
)

var (
	// ErrDecode is wrapped by every error caused by unreadable image data.
	ErrDecode = errors.New("image decode error")

	// ErrUnsupportedEnvironment is returned when no decoding capability is
	// available to the caller.
	ErrUnsupportedEnvironment = errors.New("image decoding unsupported in this environment")
)

// Decoder turns raw image bytes into a pixel buffer.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (image.Image, error)
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc func(ctx context.Context, data []byte) (image.Image, error)

// Decode calls f(ctx, data).
func (f DecoderFunc) Decode(ctx context.Context, data []byte) (image.Image, error) {
	return f(ctx, data)
}

// StdDecoder decodes PNG, JPEG, GIF and WebP using the registered codecs.
// It holds no state and is safe for concurrent use.
type StdDecoder struct{}

// NewStdDecoder creates a new StdDecoder.
func NewStdDecoder() *StdDecoder {
	return &StdDecoder{}
}

// Decode decodes data. Failures wrap ErrDecode.
func (StdDecoder) Decode(ctx context.Context, data []byte) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %w", ErrDecode, format, err)
	}

	return img, nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}
