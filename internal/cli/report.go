package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokensmith/internal/colour"
)

// newReportCmd represents the report command.
func newReportCmd(opts *rootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show an accessibility report for the token colours",
		Long: `Build the token set and list each colour with its best text colour, its
WCAG 2 ratio and level, its APCA Lc, and its complementary colour.

Examples:
  tokensmith report
  tokensmith report --config brand.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadTokenSet(opts, configPath)
			if err != nil {
				return err
			}

			p := opts.previewer(cmd)
			t := NewTable("COLOUR", "BASE", "ON", "WCAG", "LEVEL", "APCA", "COMPLEMENT")
			for _, c := range set.Colours {
				base, _ := colour.HexToRGB(c.Base)
				on, _ := colour.HexToRGB(c.OnColour)
				comp, _ := colour.HexToRGB(c.Complementary)
				t.AddRow(
					c.Name,
					p.FormatColour(base),
					p.Sample(on, base, c.OnColour),
					fmt.Sprintf("%.2f:1", c.Contrast),
					string(c.WCAG),
					fmt.Sprintf("%.1f (%s)", c.APCA, c.APCALevel.Level),
					p.FormatColour(comp),
				)
			}
			for _, nc := range set.Semantic.All() {
				rgb, _ := colour.HexToRGB(nc.Value)
				on, _ := colour.HexToRGB(colour.BestTextColour(nc.Value))
				ratio := colour.ContrastRatioRGB(on, rgb)
				lc := colour.DefaultAPCA(on, rgb)
				t.AddRow(
					nc.Name,
					p.FormatColour(rgb),
					p.Sample(on, rgb, on.Hex()),
					fmt.Sprintf("%.2f:1", ratio),
					string(colour.WCAGLevel(ratio, false)),
					fmt.Sprintf("%.1f (%s)", lc, colour.APCALevel(lc, false).Level),
					"",
				)
			}

			fmt.Fprint(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "token config file (JSON)")
	return cmd
}
