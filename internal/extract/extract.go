// Package extract ranks the representative colours of an encoded image.
//
// A Service pairs an injected image.Decoder with a colour.Extractor. It keeps
// no mutable state between calls, so one Service may serve concurrent
// extractions of different images.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tokensmith/internal/colour"
	"github.com/jmylchreest/tokensmith/internal/image"
)

// Result is the terminal outcome of an asynchronous extraction: either
// Colours or Err is set, never both.
type Result struct {
	Colours []string
	Err     error
}

// Service extracts dominant colours from raw image bytes.
type Service struct {
	decoder   image.Decoder
	extractor colour.Extractor
	count     int
	logger    hclog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithExtractor overrides the colour extraction algorithm.
func WithExtractor(e colour.Extractor) Option {
	return func(s *Service) {
		s.extractor = e
	}
}

// WithCount sets how many colours are returned.
func WithCount(count int) Option {
	return func(s *Service) {
		s.count = count
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service. decoder may be nil, in which case every
// extraction fails with image.ErrUnsupportedEnvironment.
func New(decoder image.Decoder, opts ...Option) *Service {
	s := &Service{
		decoder:   decoder,
		extractor: colour.NewDominantExtractor(),
		count:     colour.DefaultExtractCount,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract decodes data and returns up to the configured number of colours
// as hex strings, most frequent first. Decode failures wrap image.ErrDecode;
// no partial result is returned on error.
func (s *Service) Extract(ctx context.Context, data []byte) ([]string, error) {
	palette, err := s.ExtractPalette(ctx, data)
	if err != nil {
		return nil, err
	}
	return palette.ToHex(), nil
}

// ExtractPalette is Extract returning the weighted palette.
func (s *Service) ExtractPalette(ctx context.Context, data []byte) (*colour.Palette, error) {
	if s.decoder == nil {
		return nil, image.ErrUnsupportedEnvironment
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("decoding image", "bytes", len(data))
	img, err := s.decoder.Decode(ctx, data)
	if err != nil {
		return nil, classifyDecodeError(err)
	}
	if img == nil {
		return nil, fmt.Errorf("failed to decode image: %w: decoder returned no image", image.ErrDecode)
	}

	bounds := img.Bounds()
	s.logger.Debug("image decoded", "width", bounds.Dx(), "height", bounds.Dy())

	palette, err := s.extractor.Extract(img, s.count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	s.logger.Debug("colours extracted", "count", palette.Len())
	return palette, nil
}

// classifyDecodeError makes sure a decoder failure reports as ErrDecode
// unless it is an environment or context failure.
func classifyDecodeError(err error) error {
	switch {
	case errors.Is(err, image.ErrUnsupportedEnvironment),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, image.ErrDecode):
		return fmt.Errorf("failed to decode image: %w", err)
	default:
		return fmt.Errorf("failed to decode image: %w: %w", image.ErrDecode, err)
	}
}

// ExtractAsync runs Extract on its own goroutine. The returned channel
// receives exactly one Result and is then closed.
func (s *Service) ExtractAsync(ctx context.Context, data []byte) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		colours, err := s.Extract(ctx, data)
		if err != nil {
			ch <- Result{Err: err}
			return
		}
		ch <- Result{Colours: colours}
	}()
	return ch
}
