package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/extractor"
	"github.com/toyz/autotag/internal/generator"
	"github.com/toyz/autotag/internal/metadata"
	"github.com/toyz/autotag/internal/model"
	"github.com/toyz/autotag/internal/utils"
)

// Output formats of the describe command
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Generator coordinates scanning, extraction and generation for the CLI
type Generator struct {
	diagnostics  *utils.DiagnosticSystem
	reader       *utils.FileReader
	scanner      *SourceScanner
	engines      *generator.Generator
	observations []extractor.Observation
	summary      GenerationSummary
}

// NewGenerator creates a CLI generator reporting through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	reader := utils.NewFileReader()
	return &Generator{
		diagnostics: diagnostics,
		reader:      reader,
		scanner:     NewSourceScanner(reader),
		engines:     generator.NewGenerator(),
		summary:     GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Observations returns what the last extraction skipped
func (g *Generator) Observations() []extractor.Observation {
	return g.observations
}

// Provider builds the metadata provider over the configured sources and descriptors
func (g *Generator) Provider(config *Config) (metadata.Provider, error) {
	var providers metadata.Multi

	if len(config.Sources) > 0 {
		files, err := g.scanner.FindSources(config.Sources)
		if err != nil {
			return nil, err
		}
		g.diagnostics.Verbose("Found %d Java sources", len(files))
		g.diagnostics.Indent()
		for _, file := range files {
			g.diagnostics.Debug("%s", file)
		}
		g.diagnostics.Unindent()

		javaProvider, err := metadata.NewJavaSourceProvider(files, g.reader)
		if err != nil {
			return nil, err
		}
		providers = append(providers, javaProvider)
	}

	if len(config.Descriptors) > 0 {
		files, err := g.scanner.FindDescriptors(config.Descriptors)
		if err != nil {
			return nil, err
		}
		g.diagnostics.Verbose("Found %d descriptor files", len(files))
		providers = append(providers, metadata.NewDescriptorProvider(g.reader, files...))
	}

	if len(providers) == 1 {
		return providers[0], nil
	}
	return providers, nil
}

// Extract reads all classes and builds the template suite
func (g *Generator) Extract(config *Config) (*model.TemplateSuite, error) {
	provider, err := g.Provider(config)
	if err != nil {
		return nil, err
	}
	classes, err := provider.Classes()
	if err != nil {
		return nil, err
	}

	ext := extractor.New(metadata.Static(classes), config.ExtractorConfig())
	suite, err := ext.CreateTemplateSuite()
	if err != nil {
		return nil, err
	}

	g.observations = ext.Observations()

	g.summary.ClassesScanned = len(classes)
	g.summary.TemplateClasses = len(suite.Classes)
	g.summary.Observations = len(g.observations)
	return suite, nil
}

// Run extracts the suite and renders every configured engine into the output
// directory. A dry run renders in memory and leaves the output untouched.
func (g *Generator) Run(config *Config, dryRun bool) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0), DryRun: dryRun}

	g.diagnostics.Header(fmt.Sprintf("suite %s", config.Suite.Name))
	g.diagnostics.Verbose("Starting generation at %s", startTime.Format("15:04:05"))

	g.diagnostics.PhaseHeader("Extracting")
	suite, err := g.Extract(config)
	if err != nil {
		return err
	}
	g.diagnostics.PhaseItem(fmt.Sprintf("%d template classes in %d classes", len(suite.Classes), g.summary.ClassesScanned))
	if len(g.observations) > 0 {
		g.diagnostics.Warn("%d inputs skipped", len(g.observations))
	}

	var locator generator.OutputLocator = generator.NewDirectoryOutputLocator(config.Output)
	if dryRun {
		locator = generator.NewMemoryOutputLocator()
	}

	manifest := NewManifest(suite.Name)
	g.diagnostics.PhaseHeader("Generating")
	for _, engine := range config.Engines {
		written, err := g.engines.Generate(locator, engine.Name, generator.Request{
			Package:      engine.Package,
			Suite:        suite,
			Parameters:   engine.Parameters,
			RuntimeClass: engine.RuntimeClass,
			RequestClass: config.Suite.RequestType,
		})
		if err != nil {
			return err
		}
		for _, file := range written {
			g.diagnostics.PhaseProgress("Writing " + file)
		}
		g.diagnostics.PhaseItem(fmt.Sprintf("%s: %d files", engine.Name, len(written)))
		manifest.Add(engine.Name, written)
	}

	g.summary.Engines = manifest.Engines
	g.summary.GeneratedFiles = manifest.Files

	if dryRun {
		g.diagnostics.Info("Dry run: nothing written to %s", config.Output)
		return nil
	}

	previous, err := ReadManifest(config.Output)
	if err != nil {
		return err
	}
	if previous != nil {
		removed, err := NewCleaner(config.Output).Remove(manifest.Stale(previous))
		g.summary.RemovedFiles = removed
		if err != nil {
			return err
		}
		for _, file := range removed {
			g.diagnostics.Verbose("Removed stale %s", file)
		}
	}

	if err := manifest.Write(config.Output); err != nil {
		return err
	}

	g.diagnostics.Verbose("Run %s finished in %s", manifest.RunID, time.Since(startTime).Round(time.Millisecond))
	g.diagnostics.GenerationComplete()
	return nil
}

// Describe writes the extracted suite, or with descriptors the raw class
// metadata in descriptor form, as YAML or JSON
func (g *Generator) Describe(config *Config, w io.Writer, format string, descriptors bool) error {
	if format != FormatYAML && format != FormatJSON {
		return errors.ConfigurationError(fmt.Sprintf("unknown format %q", format)).
			WithSuggestion("Use --format yaml or --format json")
	}

	if descriptors {
		provider, err := g.Provider(config)
		if err != nil {
			return err
		}
		classes, err := provider.Classes()
		if err != nil {
			return err
		}
		if format == FormatYAML {
			return metadata.WriteDescriptors(w, classes)
		}
		return encode(w, format, metadata.DescriptorFile{Version: metadata.DescriptorVersion, Classes: classes})
	}

	suite, err := g.Extract(config)
	if err != nil {
		return err
	}
	return encode(w, format, suite)
}

func encode(w io.Writer, format string, value interface{}) error {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return errors.WrapWithOperation("encode", "JSON output", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return errors.WrapWithOperation("encode", "YAML output", err)
		}
		if err := enc.Close(); err != nil {
			return errors.WrapWithOperation("encode", "YAML output", err)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
