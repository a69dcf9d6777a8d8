package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokensmith/internal/export"
	"github.com/jmylchreest/tokensmith/internal/tokens"
)

// newExportCmd represents the export command.
func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		configPath string
		formats    []string
		outputDir  string
		dryRun     bool
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build design tokens and write them out",
		Long: `Build a design-token set and export it in one or more formats.

Without --config the built-in defaults are used. A config file only needs
the sections it changes; everything else keeps its default.

Examples:
  # Write tokens.css into ./tokens
  tokensmith export

  # Write every format from a config file into ./dist
  tokensmith export --config brand.json -f css,scss,json,tailwind -o dist

  # Print the generated SCSS without writing files
  tokensmith export --dry-run -f scss`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := export.NewDefaultRegistry()
			out := cmd.OutOrStdout()

			if list {
				t := NewTable("FORMAT", "DESCRIPTION")
				for _, name := range registry.List() {
					e, _ := registry.Get(name)
					t.AddRow(name, e.Description())
				}
				fmt.Fprint(out, t.Render())
				return nil
			}

			set, err := loadTokenSet(opts, configPath)
			if err != nil {
				return err
			}

			exporters, err := registry.Resolve(formats)
			if err != nil {
				return err
			}

			files := make(map[string][]byte)
			for _, e := range exporters {
				generated, err := e.Generate(set)
				if err != nil {
					return fmt.Errorf("failed to generate %s output: %w", e.Name(), err)
				}
				for name, content := range generated {
					files[name] = content
				}
				opts.logger.Debug("generated", "format", e.Name(), "files", len(generated))
			}

			if dryRun {
				names := make([]string, 0, len(files))
				for name := range files {
					names = append(names, name)
				}
				slices.Sort(names)
				for _, name := range names {
					fmt.Fprintf(out, "==> %s <==\n%s\n", name, files[name])
				}
				return nil
			}

			written, err := export.WriteFiles(outputDir, files)
			for _, path := range written {
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "token config file (JSON)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{"css"}, "export formats (css, scss, json, tailwind)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "tokens", "output directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated files instead of writing them")
	cmd.Flags().BoolVar(&list, "list", false, "list available export formats")

	return cmd
}

// loadTokenSet builds the token set from configPath, or from the defaults
// when it is empty.
func loadTokenSet(opts *rootOptions, configPath string) (*tokens.Set, error) {
	cfg := tokens.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = tokens.LoadConfig(configPath); err != nil {
			return nil, err
		}
		opts.logger.Debug("loaded token config", "path", configPath, "colours", len(cfg.Colours))
	}
	return tokens.Build(cfg)
}
