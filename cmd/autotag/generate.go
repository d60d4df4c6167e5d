package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/autotag/internal/cli"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		overrides cli.Overrides
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate engine adapters for every template class",
		Long: `Extract the template suite from the configured sources or descriptors
and render every configured engine into the output directory.

The files written are recorded in .autotag-manifest.yaml in the output
directory. Files generated by a previous run that are no longer produced
are removed; other files are never touched.`,
		Example: `  autotag generate
  autotag generate --engine jsp --output build/generated
  autotag generate --dry-run --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := config.Apply(overrides); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}

			generator := cli.NewGenerator(opts.diagnostics(false))
			err = generator.Run(config, dryRun)
			opts.reportObservations(generator)
			if err != nil {
				return err
			}

			if !opts.quiet {
				opts.reporter().ReportSuccess(generator.GetSummary())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overrides.Output, "output", "o", "", "Output directory (overrides the configuration)")
	cmd.Flags().StringSliceVarP(&overrides.Engines, "engine", "e", nil, "Run only these configured engines (repeatable)")
	cmd.Flags().StringSliceVar(&overrides.Sources, "source", nil, "Java source paths to scan instead of the configured inputs")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render in memory and list the files without writing them")

	return cmd
}
