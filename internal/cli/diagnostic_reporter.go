package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/extractor"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// NewDiagnosticReporter creates a reporter writing to stdout and stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetOutput redirects the reporter
func (r *DiagnosticReporter) SetOutput(out, errOut io.Writer) {
	r.out = out
	r.errOut = errOut
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
}

// ReportObservations prints skipped classes and annotation problems
func (r *DiagnosticReporter) ReportObservations(observations []extractor.Observation) {
	for _, o := range observations {
		r.ReportWarning(o.String())
	}
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.errOut, "\nERROR: Autotag Failed\n")
	fmt.Fprintf(r.errOut, "=====================\n\n")

	var autotagErr errors.AutotagError
	if stderrors.As(err, &autotagErr) {
		r.reportAutotagError(err, autotagErr)
	} else {
		fmt.Fprintf(r.errOut, "Message: %s\n", err.Error())
	}

	fmt.Fprintf(r.errOut, "\n")
}

// reportAutotagError reports the outermost AutotagError with its context and
// the suggestions of every error it wraps
func (r *DiagnosticReporter) reportAutotagError(err error, autotagErr errors.AutotagError) {
	r.printErrorHeader(autotagErr.ErrorCode())

	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())

	if loc := autotagErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "Location: %s\n\n", loc)
	}

	if context := autotagErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := collectSuggestions(err); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if r.verbose {
		r.printErrorChain(err)
	}
}

// printErrorHeader prints the title of the error code, underlined
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	title := code.Title()
	fmt.Fprintf(r.errOut, "Type: %s\n", title)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(title)+6))
}

// printContext prints context information sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.errOut, "Context:\n")

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(r.errOut, "   %s: %v\n", formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.errOut, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.errOut, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// printErrorChain prints each wrapped error in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.errOut, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.errOut, "   %d. %T: %s\n", level, err, err.Error())
		err = stderrors.Unwrap(err)
		level++
	}
	fmt.Fprintf(r.errOut, "\n")
}

// collectSuggestions gathers suggestions along the whole error tree, without duplicates
func collectSuggestions(err error) []string {
	var suggestions []string
	seen := make(map[string]bool)

	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if multi, ok := err.(*errors.MultipleErrors); ok {
			for _, inner := range multi.Errors {
				walk(inner)
			}
			return
		}
		if autotagErr, ok := err.(errors.AutotagError); ok {
			for _, s := range autotagErr.Suggestions() {
				if !seen[s] {
					seen[s] = true
					suggestions = append(suggestions, s)
				}
			}
		}
		walk(stderrors.Unwrap(err))
	}
	walk(err)

	return suggestions
}

// ReportSuccess reports successful generation with summary information
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	fmt.Fprintf(r.out, "\nGeneration Completed Successfully!\n")
	fmt.Fprintf(r.out, "==================================\n\n")

	fmt.Fprintf(r.out, "Scanned %d classes\n", summary.ClassesScanned)
	fmt.Fprintf(r.out, "Found %d template classes\n", summary.TemplateClasses)

	if summary.Observations > 0 {
		fmt.Fprintf(r.out, "Skipped %d inputs (run with --verbose for details)\n", summary.Observations)
	}

	if len(summary.Engines) > 0 {
		fmt.Fprintf(r.out, "Engines: %s\n", strings.Join(summary.Engines, ", "))
	}

	if len(summary.GeneratedFiles) > 0 {
		fmt.Fprintf(r.out, "\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Fprintf(r.out, "  - %s\n", file)
		}
	}

	if len(summary.RemovedFiles) > 0 {
		fmt.Fprintf(r.out, "\nRemoved stale files:\n")
		for _, file := range summary.RemovedFiles {
			fmt.Fprintf(r.out, "  - %s\n", file)
		}
	}
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	ClassesScanned  int
	TemplateClasses int
	Observations    int
	Engines         []string
	GeneratedFiles  []string
	RemovedFiles    []string
	DryRun          bool
}
