// Package cli provides the command-line interface for tokensmith.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tokensmith/internal/colour"
	"github.com/jmylchreest/tokensmith/internal/config"
	"github.com/jmylchreest/tokensmith/internal/version"
)

// rootOptions carries global flags and the state built from them before
// any subcommand runs.
type rootOptions struct {
	verbose  bool
	quiet    bool
	noColour bool

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds a fresh tokensmith command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "tokensmith",
		Short: "A design-token authoring toolkit",
		Long: `tokensmith computes design tokens from a handful of brand choices.

Pick colours, a type scale, spacing, shadows and motion; tokensmith derives
shade ramps, complementary and semantic colours, WCAG and APCA contrast, and
typography and spacing scales, then exports them as CSS, SCSS, design-token
JSON or a Tailwind config. Dominant colours can be extracted from images.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "disable colour swatches in output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(opts),
		newContrastCmd(opts),
		newShadesCmd(opts),
		newComplementCmd(opts),
		newLightnessCmd(opts),
		newSemanticCmd(opts),
		newExtractCmd(opts),
		newExportCmd(opts),
		newReportCmd(opts),
	)

	return rootCmd
}

// setup loads configuration, builds the logger and fills unset flags of
// the running command from configuration.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	o.cfg = cfg

	level := cfg.LogLevel
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Error
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "tokensmith",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	return applyConfigDefaults(cmd.Name(), cmd.Flags(), cfg)
}

// applyConfigDefaults sets configured values on flags the user left unset.
func applyConfigDefaults(command string, flags *pflag.FlagSet, cfg config.Config) error {
	overrides := map[string]map[string]string{
		"extract": {"count": strconv.Itoa(cfg.ExtractCount)},
		"export":  {"format": strings.Join(cfg.ExportFormats, ",")},
	}[command]

	var errs []string
	flags.VisitAll(func(f *pflag.Flag) {
		v, ok := overrides[f.Name]
		if !ok || f.Changed {
			return
		}
		if err := f.Value.Set(v); err != nil {
			errs = append(errs, fmt.Sprintf("--%s=%s: %v", f.Name, v, err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid configured flag values: %s", strings.Join(errs, "; "))
	}
	return nil
}

// previewer returns a swatch renderer for the command's output.
func (o *rootOptions) previewer(cmd *cobra.Command) *colour.Previewer {
	return colour.NewPreviewer(cmd.OutOrStdout(), !o.noColour && !o.cfg.NoColour)
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// parseColourArg parses a command-line colour argument: a hex colour or
// one of the reference colour names.
func parseColourArg(arg string) (colour.RGB, error) {
	if rgb, ok := colour.HexToRGB(arg); ok {
		return rgb, nil
	}
	if rgb, ok := colour.LookupName(arg); ok {
		return rgb, nil
	}
	return colour.RGB{}, fmt.Errorf("invalid colour %q (expected #RRGGBB or a colour name)", arg)
}
