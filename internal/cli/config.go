package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/extractor"
)

// DefaultConfigFile is looked up from the working directory upwards
const DefaultConfigFile = "autotag.yaml"

// Config is the content of an autotag.yaml file
type Config struct {
	// Requires is the minimum tool version, as a semantic version
	Requires string `yaml:"requires,omitempty"`

	Suite SuiteConfig `yaml:"suite"`

	// Sources and Descriptors are files or directories; "dir/..." recurses
	Sources     []string `yaml:"sources,omitempty" validate:"required_without=Descriptors"`
	Descriptors []string `yaml:"descriptors,omitempty" validate:"required_without=Sources"`

	Output  string         `yaml:"output" validate:"required"`
	Engines []EngineConfig `yaml:"engines" validate:"required,min=1,unique=Name,dive"`

	// path of the file the config was loaded from, empty when built in code
	path string
}

// SuiteConfig configures extraction
type SuiteConfig struct {
	Name                string `yaml:"name" validate:"required"`
	Documentation       string `yaml:"documentation,omitempty"`
	RequestType         string `yaml:"requestType" validate:"required"`
	ModelBodyType       string `yaml:"modelBodyType,omitempty"`
	ParameterAnnotation string `yaml:"parameterAnnotation,omitempty"`
}

// EngineConfig configures one generator engine
type EngineConfig struct {
	Name         string            `yaml:"name" validate:"required,oneof=jsp freemarker velocity"`
	Package      string            `yaml:"package" validate:"required"`
	RuntimeClass string            `yaml:"runtimeClass" validate:"required"`
	Parameters   map[string]string `yaml:"parameters,omitempty"`
}

// Overrides are command-line values that replace config file values
type Overrides struct {
	Output  string
	Engines []string
	Sources []string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ExtractorConfig returns the extraction settings of the suite section
func (c *Config) ExtractorConfig() extractor.Config {
	return extractor.Config{
		SuiteName:           c.Suite.Name,
		SuiteDocumentation:  c.Suite.Documentation,
		RequestType:         c.Suite.RequestType,
		ModelBodyType:       c.Suite.ModelBodyType,
		ParameterAnnotation: c.Suite.ParameterAnnotation,
	}
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// LoadConfig reads, resolves and version-checks a config file. It does not
// validate; callers pick Validate or ValidateSources depending on the command.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigurationError(path, "read", err).
			WithSuggestion(fmt.Sprintf("Create %s or pass --config", DefaultConfigFile))
	}

	config, err := ParseConfig(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	config.path = path
	config.resolvePaths(filepath.Dir(path))

	if err := config.CheckVersion(Version); err != nil {
		return nil, err
	}
	return config, nil
}

// ParseConfig decodes a config, rejecting unknown fields
func ParseConfig(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var config Config
	if err := decoder.Decode(&config); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.ConfigurationError(fmt.Sprintf("configuration %s is empty", name))
		}
		return nil, errors.WrapConfigurationError(name, "parse", err).
			WithSuggestion("Check the YAML syntax and field names")
	}
	return &config, nil
}

// FindConfigFile looks for autotag.yaml in dir and its parents
func FindConfigFile(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(current, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", errors.ConfigurationError(fmt.Sprintf("%s not found in %s or any parent directory", DefaultConfigFile, dir)).
		WithSuggestion("Pass the configuration file with --config")
}

// resolvePaths makes relative paths relative to the config file directory
func (c *Config) resolvePaths(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	for i, source := range c.Sources {
		c.Sources[i] = resolveRecursive(source, resolve)
	}
	for i, descriptor := range c.Descriptors {
		c.Descriptors[i] = resolveRecursive(descriptor, resolve)
	}
	c.Output = resolve(c.Output)
}

// resolveRecursive keeps a trailing "/..." after resolving the directory part
func resolveRecursive(path string, resolve func(string) string) string {
	if path == "..." {
		return resolve(".") + "/..."
	}
	if dir, ok := strings.CutSuffix(path, "/..."); ok {
		return resolve(dir) + "/..."
	}
	return resolve(path)
}

// Apply replaces config values with the non-empty overrides. Engine
// overrides select among the configured engines.
func (c *Config) Apply(o Overrides) error {
	if o.Output != "" {
		c.Output = o.Output
	}
	if len(o.Sources) > 0 {
		c.Sources = o.Sources
		c.Descriptors = nil
	}
	if len(o.Engines) == 0 {
		return nil
	}

	selected := make([]EngineConfig, 0, len(o.Engines))
	for _, name := range o.Engines {
		i := slices.IndexFunc(c.Engines, func(e EngineConfig) bool { return e.Name == name })
		if i < 0 {
			return errors.ConfigurationError(fmt.Sprintf("engine %q is not configured", name)).
				WithSuggestion(fmt.Sprintf("Add an entry for %s under engines in %s", name, DefaultConfigFile))
		}
		selected = append(selected, c.Engines[i])
	}
	c.Engines = selected
	return nil
}

// CheckVersion fails when the config requires a newer tool
func (c *Config) CheckVersion(version string) error {
	if c.Requires == "" {
		return nil
	}
	if !semver.IsValid(c.Requires) {
		return errors.ConfigurationError(fmt.Sprintf("requires %q is not a semantic version", c.Requires)).
			WithSuggestion(`Use the form "v1.2.3"`)
	}
	if semver.Compare(version, c.Requires) < 0 {
		return errors.ConfigurationError(fmt.Sprintf("configuration requires autotag %s or newer, this is %s", c.Requires, version)).
			WithContext("requires", c.Requires).
			WithContext("version", version)
	}
	return nil
}

// Validate checks everything generate needs
func (c *Config) Validate() error {
	return validationError(c.path, validate.Struct(c))
}

// ValidateSources checks only what extraction needs
func (c *Config) ValidateSources() error {
	return validationError(c.path, validate.StructExcept(c, "Output", "Engines"))
}

func validationError(path string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return errors.WrapConfigurationError(path, "validate", err)
	}

	collected := errors.NewMultipleErrors()
	for _, fe := range fieldErrors {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		collected.Add(errors.NewValidationError(fe.Namespace(), fe.Value(), constraint).
			WithSuggestion(fieldSuggestion(fe)))
	}
	return errors.WrapConfigurationError(path, "validate", collected)
}

func fieldSuggestion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("Set %s in %s", fe.Field(), DefaultConfigFile)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "unique":
		return "Configure each engine at most once"
	}
	return fmt.Sprintf("Check the value of %s", fe.Field())
}
