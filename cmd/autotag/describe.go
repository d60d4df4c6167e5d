package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/autotag/internal/cli"
)

func newDescribeCmd(opts *options) *cobra.Command {
	var (
		format      string
		descriptors bool
		sources     []string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the extracted template suite",
		Long: `Print the template suite extracted from the configured inputs as YAML or JSON.

With --descriptors the raw class metadata is printed instead, in the descriptor
format accepted by the "descriptors" configuration key. Descriptors let later
runs skip Java parsing.`,
		Example: `  autotag describe
  autotag describe --format json
  autotag describe --descriptors > classes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := config.Apply(cli.Overrides{Sources: sources}); err != nil {
				return err
			}
			if err := config.ValidateSources(); err != nil {
				return err
			}

			generator := cli.NewGenerator(opts.diagnostics(true))
			err = generator.Describe(config, opts.stdout, format, descriptors)
			opts.reportObservations(generator)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cli.FormatYAML, "Output format: yaml or json")
	cmd.Flags().BoolVar(&descriptors, "descriptors", false, "Print class metadata descriptors instead of the suite")
	cmd.Flags().StringSliceVar(&sources, "source", nil, "Java source paths to scan instead of the configured inputs")

	return cmd
}
