package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/toyz/autotag/internal/utils"
)

const projectConfig = `suite:
  name: tldtest
  documentation: Test for TLD docs.
  requestType: org.apache.tiles.request.Request
sources:
  - src/...
output: generated
engines:
  - name: jsp
    package: org.example.jsp
    runtimeClass: org.example.jsp.Runtime
    parameters:
      taglibURI: http://www.initrode.net/tags/test
  - name: freemarker
    package: org.example.freemarker
    runtimeClass: org.example.freemarker.Runtime
  - name: velocity
    package: org.example.velocity
    runtimeClass: org.example.velocity.Runtime
`

// writeProject lays out the Java fixture under src/ next to an autotag.yaml
// and returns the config path
func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	archive, err := txtar.ParseFile(filepath.Join("..", "javasrc", "testdata", "templates.txtar"))
	require.NoError(t, err)
	for _, f := range archive.Files {
		path := filepath.Join(root, "src", filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}

	configPath := filepath.Join(root, DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte(projectConfig), 0o644))
	return configPath
}

func loadProject(t *testing.T) *Config {
	t.Helper()
	config, err := LoadConfig(writeProject(t))
	require.NoError(t, err)
	require.NoError(t, config.Validate())
	return config
}

func bufferedDiagnostics(level utils.DiagnosticLevel) (*utils.DiagnosticSystem, *bytes.Buffer) {
	var buf bytes.Buffer
	d := utils.NewDiagnosticSystem(level)
	d.SetOutput(&buf, &buf)
	return d, &buf
}
