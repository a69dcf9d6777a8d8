package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokensmith/internal/colour"
)

// newConvertCmd represents the convert command.
func newConvertCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour as hex, RGB and HSL",
		Long: `Show a hex colour in every supported notation along with its WCAG
relative luminance and the nearest named colour. Anywhere a colour is
expected, one of the named colours (e.g. "teal", "bright-blue") may be used.

Examples:
  tokensmith convert "#3361cc"
  tokensmith convert 3361CC
  tokensmith convert teal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColourArg(args[0])
			if err != nil {
				return err
			}

			p := opts.previewer(cmd)
			out := cmd.OutOrStdout()
			if p.Enabled() {
				fmt.Fprintln(out, p.Swatch(rgb))
			}
			fmt.Fprintf(out, "hex:       %s\n", rgb.Hex())
			fmt.Fprintf(out, "rgb:       %s\n", rgb)
			fmt.Fprintf(out, "hsl:       %s\n", colour.RGBToHSL(rgb))
			fmt.Fprintf(out, "luminance: %.4f\n", colour.RelativeLuminance(rgb))
			fmt.Fprintf(out, "nearest:   %s\n", colour.NearestName(rgb).Name)
			return nil
		},
	}
}

// newContrastCmd represents the contrast command.
func newContrastCmd(opts *rootOptions) *cobra.Command {
	var largeText bool

	cmd := &cobra.Command{
		Use:   "contrast <text> <background>",
		Short: "Check text/background contrast with WCAG 2 and APCA",
		Long: `Report the WCAG 2 contrast ratio and the APCA lightness contrast (Lc)
between a text colour and a background colour.

WCAG levels: AAA needs 7:1 (4.5:1 for large text), AA needs 4.5:1 (3:1).
APCA passes at |Lc| >= 60 for body text and 45 for large text. Positive Lc
means dark text on a light background, negative the reverse.

Examples:
  tokensmith contrast "#000000" "#ffffff"
  tokensmith contrast --large "#ffffff" "#3361cc"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			bg, err := parseColourArg(args[1])
			if err != nil {
				return err
			}

			ratio := colour.ContrastRatioRGB(text, bg)
			lc := colour.DefaultAPCA(text, bg)
			apca := colour.APCALevel(lc, largeText)

			p := opts.previewer(cmd)
			out := cmd.OutOrStdout()
			if p.Enabled() {
				fmt.Fprintln(out, p.Sample(text, bg, " Sample text "))
			}
			fmt.Fprintf(out, "WCAG ratio: %.2f:1 (%s)\n", ratio, colour.WCAGLevel(ratio, largeText))
			fmt.Fprintf(out, "APCA Lc:    %.1f (%s, min %.0f)\n", lc, apca.Level, apca.MinLc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&largeText, "large", false, "use large-text thresholds")
	return cmd
}

// newShadesCmd represents the shades command.
func newShadesCmd(opts *rootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "shades <colour>",
		Short: "Generate a light-to-dark shade ramp",
		Long: `Generate shades of a colour that keep its hue and saturation and step
lightness evenly from 90% down to 20%.

Examples:
  tokensmith shades "#3361cc"
  tokensmith shades -n 9 "#3361cc"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			if count < 2 {
				return fmt.Errorf("shade count must be at least 2, got %d", count)
			}

			opts.logger.Debug("generating shades", "base", rgb.Hex(), "count", count)
			p := opts.previewer(cmd)
			for i, hex := range colour.GenerateShades(rgb.Hex(), count) {
				shade, _ := colour.HexToRGB(hex)
				fmt.Fprintln(cmd.OutOrStdout(), p.FormatColourWithLabel(shade, fmt.Sprintf("shade-%d", i+1)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", colour.DefaultShadeCount, "number of shades (at least 2)")
	return cmd
}

// newComplementCmd represents the complement command.
func newComplementCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complement <colour>",
		Short: "Show the complementary colour",
		Long:  `Rotate the hue of a colour by 180 degrees, keeping saturation and lightness.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			comp, _ := colour.HexToRGB(colour.GenerateComplementary(rgb.Hex()))
			fmt.Fprintln(cmd.OutOrStdout(), opts.previewer(cmd).FormatColour(comp))
			return nil
		},
	}
}

// newLightnessCmd represents the lightness command.
func newLightnessCmd(opts *rootOptions) *cobra.Command {
	var delta float64

	cmd := &cobra.Command{
		Use:   "lightness <colour>",
		Short: "Lighten or darken a colour",
		Long: `Shift the HSL lightness of a colour by a number of percentage points.
The result is clamped to the 0-100 range.

Examples:
  tokensmith lightness --delta 10 "#3361cc"
  tokensmith lightness --delta=-15 "#3361cc"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			adjusted, _ := colour.HexToRGB(colour.AdjustLightness(rgb.Hex(), delta))
			fmt.Fprintln(cmd.OutOrStdout(), opts.previewer(cmd).FormatColour(adjusted))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&delta, "delta", "d", 0, "lightness change in percentage points")
	return cmd
}

// newSemanticCmd represents the semantic command.
func newSemanticCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "semantic <primary>",
		Short: "Show semantic status colours for a primary colour",
		Long: `Show the success, warning, error and info colours that pair with a primary
colour. Info reuses the primary colour.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			p := opts.previewer(cmd)
			for _, nc := range colour.GenerateSemanticColors(rgb.Hex()).All() {
				c, _ := colour.HexToRGB(nc.Value)
				fmt.Fprintln(cmd.OutOrStdout(), p.FormatColourWithLabel(c, nc.Name))
			}
			return nil
		},
	}
}
