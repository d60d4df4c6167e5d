package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/autotag/internal/errors"
)

func parse(t *testing.T, yaml string) *Config {
	t.Helper()
	config, err := ParseConfig(strings.NewReader(yaml), "test.yaml")
	require.NoError(t, err)
	return config
}

func TestParseConfig(t *testing.T) {
	config := parse(t, projectConfig)

	assert.Equal(t, "tldtest", config.Suite.Name)
	assert.Equal(t, "Test for TLD docs.", config.Suite.Documentation)
	assert.Equal(t, "org.apache.tiles.request.Request", config.Suite.RequestType)
	assert.Equal(t, []string{"src/..."}, config.Sources)
	assert.Equal(t, "generated", config.Output)
	require.Len(t, config.Engines, 3)
	assert.Equal(t, "jsp", config.Engines[0].Name)
	assert.Equal(t, "http://www.initrode.net/tags/test", config.Engines[0].Parameters["taglibURI"])
	assert.NoError(t, config.Validate())

	extraction := config.ExtractorConfig()
	assert.Equal(t, "tldtest", extraction.SuiteName)
	assert.Equal(t, "org.apache.tiles.request.Request", extraction.RequestType)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := ParseConfig(strings.NewReader(""), "empty.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration empty.yaml is empty")

	_, err = ParseConfig(strings.NewReader("suite:\n  name: x\n  colour: red\n"), "unknown.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration 'unknown.yaml'")
	assert.Contains(t, err.Error(), "colour")

	var autotagErr errors.AutotagError
	require.True(t, stderrors.As(err, &autotagErr))
	assert.Equal(t, errors.ConfigurationErrorCode, autotagErr.ErrorCode())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		field   string
		sources bool // whether ValidateSources fails as well
	}{
		{
			name:    "missing suite name",
			modify:  func(c *Config) { c.Suite.Name = "" },
			field:   "Config.Suite.Name",
			sources: true,
		},
		{
			name:    "missing request type",
			modify:  func(c *Config) { c.Suite.RequestType = "" },
			field:   "Config.Suite.RequestType",
			sources: true,
		},
		{
			name:    "no inputs",
			modify:  func(c *Config) { c.Sources = nil },
			field:   "Config.Sources",
			sources: true,
		},
		{
			name:   "missing output",
			modify: func(c *Config) { c.Output = "" },
			field:  "Config.Output",
		},
		{
			name:   "no engines",
			modify: func(c *Config) { c.Engines = nil },
			field:  "Config.Engines",
		},
		{
			name:   "unknown engine",
			modify: func(c *Config) { c.Engines[1].Name = "mustache" },
			field:  "Config.Engines[1].Name",
		},
		{
			name:   "duplicate engine",
			modify: func(c *Config) { c.Engines[2].Name = "jsp" },
			field:  "Config.Engines",
		},
		{
			name:   "missing package",
			modify: func(c *Config) { c.Engines[0].Package = "" },
			field:  "Config.Engines[0].Package",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parse(t, projectConfig)
			tt.modify(config)

			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)

			var validationErr *errors.ValidationError
			require.True(t, stderrors.As(err, &validationErr))
			assert.NotEmpty(t, validationErr.Suggestions())

			if tt.sources {
				assert.Error(t, config.ValidateSources())
			} else {
				assert.NoError(t, config.ValidateSources())
			}
		})
	}
}

func TestConfig_DescriptorsReplaceSources(t *testing.T) {
	config := parse(t, projectConfig)
	config.Sources = nil
	config.Descriptors = []string{"classes.yaml"}
	assert.NoError(t, config.Validate())
}

func TestConfig_CheckVersion(t *testing.T) {
	tests := []struct {
		requires string
		wantErr  string
	}{
		{"", ""},
		{"v0.1.0", ""},
		{Version, ""},
		{"v99.0.0", "requires autotag v99.0.0 or newer"},
		{"1.0", "is not a semantic version"},
	}

	for _, tt := range tests {
		t.Run(tt.requires, func(t *testing.T) {
			config := &Config{Requires: tt.requires}
			err := config.CheckVersion(Version)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	config := parse(t, projectConfig)
	config.Descriptors = []string{"d.yaml"}

	require.NoError(t, config.Apply(Overrides{
		Output:  "elsewhere",
		Engines: []string{"velocity", "jsp"},
		Sources: []string{"other/..."},
	}))
	assert.Equal(t, "elsewhere", config.Output)
	assert.Equal(t, []string{"other/..."}, config.Sources)
	assert.Nil(t, config.Descriptors)
	require.Len(t, config.Engines, 2)
	assert.Equal(t, "velocity", config.Engines[0].Name)
	assert.Equal(t, "jsp", config.Engines[1].Name)

	err := config.Apply(Overrides{Engines: []string{"freemarker"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `engine "freemarker" is not configured`)

	unchanged := parse(t, projectConfig)
	require.NoError(t, unchanged.Apply(Overrides{}))
	assert.Len(t, unchanged.Engines, 3)
	assert.Equal(t, "generated", unchanged.Output)
}

func TestLoadConfig_ResolvesPaths(t *testing.T) {
	path := writeProject(t)
	root := filepath.Dir(path)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, config.Path())
	assert.Equal(t, filepath.Join(root, "src")+"/...", config.Sources[0])
	assert.Equal(t, filepath.Join(root, "generated"), config.Output)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration")

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("requires: v99.0.0\n"+projectConfig), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "or newer")
}

func TestFindConfigFile(t *testing.T) {
	path := writeProject(t)
	nested := filepath.Join(filepath.Dir(path), "src", "org", "apache")

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = FindConfigFile(t.TempDir())
	if err != nil {
		assert.Contains(t, err.Error(), DefaultConfigFile+" not found")
	}
}
