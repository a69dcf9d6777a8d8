package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokensmith/internal/colour"
	"github.com/jmylchreest/tokensmith/internal/extract"
	"github.com/jmylchreest/tokensmith/internal/image"
	"github.com/jmylchreest/tokensmith/internal/util/imagecache"
)

// newExtractCmd represents the extract command.
func newExtractCmd(opts *rootOptions) *cobra.Command {
	var (
		count        int
		algorithm    string
		format       string
		showPreview  bool
		useCache     bool
		refresh      bool
		allowPrivate bool
	)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract dominant colours from an image",
		Long: `Extract the dominant colours of an image, most frequent first.

The image is downscaled, sampled and quantised; near-black and near-white
colours are skipped so the result suits brand palettes. The image may be a
local file or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 5 colours (default)
  tokensmith extract photo.jpg

  # Pick the algorithm explicitly
  tokensmith extract -a dominant photo.jpg

  # Extract 8 colours with swatches
  tokensmith extract --preview -c 8 photo.png

  # Extract colours as JSON, keeping the download for next time
  tokensmith extract --cache --format json https://example.com/logo.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if format != "hex" && format != "json" {
				return fmt.Errorf("invalid format %q (valid formats: hex, json)", format)
			}
			extractorCfg := colour.ExtractorConfig{Algorithm: colour.Algorithm(algorithm), ColorCount: count}
			if err := extractorCfg.Validate(); err != nil {
				return err
			}
			extractor, err := colour.NewExtractor(extractorCfg.Algorithm)
			if err != nil {
				return err
			}
			if err := image.ValidateImagePath(path, allowPrivate); err != nil {
				return err
			}

			loader := image.NewSmartLoader(opts.cfg.HTTPTimeout)
			if useCache {
				cache, err := imagecache.New(opts.cfg.CacheDir)
				if err != nil {
					return err
				}
				opts.logger.Debug("caching remote images", "dir", cache.Dir(), "refresh", refresh)
				loader.WithCache(cache, refresh)
			}

			ctx := cmd.Context()
			opts.logger.Debug("loading image", "path", path, "algorithm", algorithm)
			data, err := loader.Load(ctx, path)
			if err != nil {
				return err
			}

			svc := extract.New(image.NewStdDecoder(),
				extract.WithExtractor(extractor),
				extract.WithCount(count),
				extract.WithLogger(opts.logger.Named("extract")),
			)
			palette, err := svc.ExtractPalette(ctx, data)
			if err != nil {
				return fmt.Errorf("failed to extract colours from %s: %w", path, err)
			}
			if palette.Len() == 0 {
				opts.logger.Warn("no colours left after filtering near-black and near-white", "path", path)
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				data, err := palette.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			p := opts.previewer(cmd)
			if !showPreview {
				p = colour.NewPreviewer(out, false)
			}
			fmt.Fprint(out, formatPalette(palette, p))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", colour.DefaultExtractCount,
		fmt.Sprintf("number of colours to extract (1-%d)", colour.MaxExtractCount))
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(colour.DefaultExtractorConfig().Algorithm),
		fmt.Sprintf("extraction algorithm %v", colour.ValidAlgorithms()))
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, json)")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "show colour swatches in terminal")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache downloaded images (see TOKENSMITH_CACHE_DIR)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-download cached images")
	cmd.Flags().BoolVar(&allowPrivate, "allow-private", false, "allow image URLs on loopback or private hosts")

	return cmd
}

// formatPalette renders one colour per line with its share of the sampled
// pixels.
func formatPalette(palette *colour.Palette, p *colour.Previewer) string {
	var sb strings.Builder
	for i, rgb := range palette.ToRGBSlice() {
		line := p.FormatColour(rgb)
		if w := palette.Weight(i); w > 0 {
			line = fmt.Sprintf("%s  %5.1f%%", line, w*100)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
