package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/toyz/autotag/internal/errors"
)

// ManifestFile records what the last generate run wrote into an output directory
const ManifestFile = ".autotag-manifest.yaml"

// Manifest lists the files of one generate run, relative to the output directory
type Manifest struct {
	RunID       string    `yaml:"runId"`
	Version     string    `yaml:"version"`
	GeneratedAt time.Time `yaml:"generatedAt"`
	Suite       string    `yaml:"suite"`
	Engines     []string  `yaml:"engines"`
	Files       []string  `yaml:"files"`
}

// NewManifest starts a manifest for a run over suite
func NewManifest(suite string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		Version:     Version,
		GeneratedAt: time.Now().UTC(),
		Suite:       suite,
		Files:       make([]string, 0),
	}
}

// Add records the files written by one engine
func (m *Manifest) Add(engine string, files []string) {
	m.Engines = append(m.Engines, engine)
	m.Files = append(m.Files, files...)
}

// Stale returns the files of previous that m no longer contains
func (m *Manifest) Stale(previous *Manifest) []string {
	var stale []string
	for _, file := range previous.Files {
		if !slices.Contains(m.Files, file) {
			stale = append(stale, file)
		}
	}
	return stale
}

// Write stores the manifest in dir
func (m *Manifest) Write(dir string) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return errors.WrapWithOperation("encode", "manifest", err)
	}
	if err := encoder.Close(); err != nil {
		return errors.WrapWithOperation("encode", "manifest", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapFileSystemError("create", dir, err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}
	return nil
}

// ReadManifest loads the manifest of dir. It returns nil and no error when
// dir has none.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.WrapFileSystemError("parse", path, err).
			WithSuggestion(fmt.Sprintf("Delete %s if it was edited by hand", path))
	}
	return &manifest, nil
}
