package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/autotag/internal/cli"
)

func newCleanCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the files of the last generate run",
		Long: `Remove every file listed in the output directory's .autotag-manifest.yaml,
then the manifest itself. Directories left empty are removed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				config, err := opts.loadConfig()
				if err != nil {
					return err
				}
				output = config.Output
			}

			diagnostics := opts.diagnostics(false)
			removed, err := cli.NewCleaner(output).Clean()
			for _, file := range removed {
				diagnostics.Verbose("Removed %s", file)
			}
			if err != nil {
				return err
			}

			if len(removed) == 0 {
				diagnostics.Info("Nothing to clean in %s", output)
				return nil
			}
			diagnostics.Success("Removed %d generated files from %s", len(removed), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default: from the configuration)")

	return cmd
}
