// Command autotag extracts template model classes from Java sources and
// generates JSP, FreeMarker and Velocity adapters for them.
//
// Usage:
//
//	autotag [command] [flags]
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/autotag/internal/cli"
	"github.com/toyz/autotag/internal/utils"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	verbose    bool
	quiet      bool
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "autotag",
		Short: "Template adapter generator",
		Long: `Autotag scans Java sources for template model classes (classes named
<Prefix>Model with an execute method) and generates adapters for them:
JSP tag classes and a TLD, FreeMarker directive models and a repository,
Velocity directives and their registration properties.

All commands read autotag.yaml from the working directory or a parent,
unless --config names another file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default: autotag.yaml here or in a parent directory)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output, including skipped classes")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only show errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.SetOut(opts.stdout)
	root.SetErr(opts.stderr)

	root.AddCommand(
		newGenerateCmd(opts),
		newDescribeCmd(opts),
		newCleanCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// loadConfig reads --config, or autotag.yaml found from the working directory
func (o *options) loadConfig() (*cli.Config, error) {
	path := o.configPath
	if path == "" {
		found, err := cli.FindConfigFile(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	return cli.LoadConfig(path)
}

// diagnostics creates the diagnostic system for the selected verbosity.
// Commands that write results to stdout send diagnostics to stderr.
func (o *options) diagnostics(toStderr bool) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case o.quiet:
		level = utils.DiagnosticError
	case o.verbose:
		level = utils.DiagnosticVerbose
	}

	d := utils.NewDiagnosticSystem(level)
	out := o.stdout
	if toStderr {
		out = o.stderr
	}
	if out != os.Stdout || o.stderr != os.Stderr {
		d.SetOutput(out, o.stderr)
	}
	return d
}

func (o *options) reporter() *cli.DiagnosticReporter {
	r := cli.NewDiagnosticReporter(o.verbose)
	r.SetOutput(o.stdout, o.stderr)
	return r
}

// reportObservations lists the classes and annotations extraction skipped
func (o *options) reportObservations(generator *cli.Generator) {
	if o.verbose {
		o.reporter().ReportObservations(generator.Observations())
	}
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{stdout: stdout, stderr: stderr}
	root := newRootCmd(opts)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		opts.reporter().ReportError(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
