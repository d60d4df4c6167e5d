package metadata

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/utils"
)

// DescriptorVersion is the only descriptor format version understood
const DescriptorVersion = 1

// DescriptorFile is the on-disk form of a descriptor
type DescriptorFile struct {
	Version int          `yaml:"version" json:"version"`
	Classes []*ClassInfo `yaml:"classes" json:"classes"`
}

// DescriptorProvider reads class metadata from YAML descriptor files
type DescriptorProvider struct {
	paths  []string
	reader *utils.FileReader
}

// NewDescriptorProvider creates a provider over the given descriptor files
func NewDescriptorProvider(reader *utils.FileReader, paths ...string) *DescriptorProvider {
	if reader == nil {
		reader = utils.NewFileReader()
	}
	return &DescriptorProvider{paths: paths, reader: reader}
}

// Classes implements Provider
func (p *DescriptorProvider) Classes() ([]*ClassInfo, error) {
	var classes []*ClassInfo
	for _, path := range p.paths {
		content, err := p.reader.ReadFile(path)
		if err != nil {
			return nil, errors.WrapReadError(path, err)
		}
		cs, err := ReadDescriptors(strings.NewReader(content), path)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cs...)
	}
	return classes, nil
}

// ReadDescriptors decodes one descriptor document. Unknown keys and
// unsupported versions are rejected.
func ReadDescriptors(r io.Reader, name string) ([]*ClassInfo, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file DescriptorFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.NewClassParseError(name, "descriptor is empty")
		}
		return nil, errors.WrapParseError(name, err).
			WithSuggestion("Regenerate the descriptor with 'autotag describe --descriptors'")
	}
	if file.Version != DescriptorVersion {
		return nil, errors.NewClassParseError(name,
			fmt.Sprintf("unsupported descriptor version %d", file.Version)).
			WithSuggestion(fmt.Sprintf("Set 'version: %d'", DescriptorVersion))
	}

	for i, c := range file.Classes {
		if c == nil || c.QualifiedName == "" {
			return nil, errors.NewClassParseError(name,
				fmt.Sprintf("class %d has no qualifiedName", i))
		}
		if c.Name == "" {
			c.Name = c.QualifiedName[strings.LastIndex(c.QualifiedName, ".")+1:]
		}
		if err := checkClass(name, c); err != nil {
			return nil, err
		}
	}
	return file.Classes, nil
}

// checkClass rejects null method, parameter and annotation entries
func checkClass(name string, c *ClassInfo) error {
	for i, m := range c.Methods {
		if m == nil {
			return errors.NewClassParseError(name,
				fmt.Sprintf("class %s: method %d is empty", c.QualifiedName, i))
		}
		for j, p := range m.Parameters {
			if p == nil {
				return errors.NewClassParseError(name,
					fmt.Sprintf("class %s: method %s: parameter %d is empty", c.QualifiedName, m.Name, j))
			}
			for k, a := range p.Annotations {
				if a == nil {
					return errors.NewClassParseError(name,
						fmt.Sprintf("class %s: parameter %s: annotation %d is empty", c.QualifiedName, p.Name, k))
				}
			}
		}
	}
	return nil
}

// WriteDescriptors encodes classes in the descriptor format
func WriteDescriptors(w io.Writer, classes []*ClassInfo) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(DescriptorFile{Version: DescriptorVersion, Classes: classes}); err != nil {
		return errors.WrapWithOperation("encode", "descriptors", err)
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithOperation("encode", "descriptors", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
