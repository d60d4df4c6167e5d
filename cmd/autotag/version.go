package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/autotag/internal/cli"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the autotag version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(opts.stdout, "autotag %s\n", cli.Version)
		},
	}
}
