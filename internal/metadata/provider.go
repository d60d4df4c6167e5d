// Package metadata describes classes independently of where the description
// comes from. Java sources and descriptor files written by an earlier build
// both produce the same ClassInfo values.
package metadata

import (
	"slices"

	"github.com/toyz/autotag/internal/errors"
)

// Provider supplies class metadata to the extractor
type Provider interface {
	Classes() ([]*ClassInfo, error)
}

// ClassInfo describes one class
type ClassInfo struct {
	Name          string        `yaml:"name" json:"name"`
	QualifiedName string        `yaml:"qualifiedName" json:"qualifiedName"`
	Kind          string        `yaml:"kind,omitempty" json:"kind,omitempty"`
	Documentation string        `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Source        string        `yaml:"source,omitempty" json:"source,omitempty"`
	Line          int           `yaml:"line,omitempty" json:"line,omitempty"`
	Methods       []*MethodInfo `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// Location returns where the class is declared
func (c *ClassInfo) Location() errors.SourceLocation {
	return errors.SourceLocation{File: c.Source, Line: c.Line}
}

// MethodInfo describes one method signature
type MethodInfo struct {
	Name          string           `yaml:"name" json:"name"`
	ReturnType    string           `yaml:"returnType,omitempty" json:"returnType,omitempty"`
	Public        bool             `yaml:"public,omitempty" json:"public,omitempty"`
	Static        bool             `yaml:"static,omitempty" json:"static,omitempty"`
	Abstract      bool             `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Parameters    []*ParameterInfo `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Documentation string           `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Tags          []DocTag         `yaml:"tags,omitempty" json:"tags,omitempty"`
	Line          int              `yaml:"line,omitempty" json:"line,omitempty"`
}

// TagsByName returns the block tags with the given name in source order
func (m *MethodInfo) TagsByName(name string) []DocTag {
	var tags []DocTag
	for _, tag := range m.Tags {
		if tag.Name == name {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParameterTypes returns the declared parameter types in order
func (m *MethodInfo) ParameterTypes() []string {
	types := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		types[i] = p.Type
	}
	return types
}

// ParameterInfo describes one formal parameter
type ParameterInfo struct {
	Name        string            `yaml:"name" json:"name"`
	Type        string            `yaml:"type" json:"type"`
	Annotations []*AnnotationInfo `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// Annotation returns the first annotation of the given type, nil if absent
func (p *ParameterInfo) Annotation(typeName string) *AnnotationInfo {
	i := slices.IndexFunc(p.Annotations, func(a *AnnotationInfo) bool {
		return a.Type == typeName
	})
	if i < 0 {
		return nil
	}
	return p.Annotations[i]
}

// AnnotationInfo is an annotation usage; values are raw source literals
type AnnotationInfo struct {
	Type   string            `yaml:"type" json:"type"`
	Values map[string]string `yaml:"values,omitempty" json:"values,omitempty"`
}

// Value returns the raw literal of an element and whether it is present
func (a *AnnotationInfo) Value(key string) (string, bool) {
	v, ok := a.Values[key]
	return v, ok
}

// DocTag is a Javadoc block tag
type DocTag struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Multi concatenates the classes of several providers in order
type Multi []Provider

// Classes implements Provider. The first failing provider aborts the call.
func (m Multi) Classes() ([]*ClassInfo, error) {
	var classes []*ClassInfo
	for _, p := range m {
		cs, err := p.Classes()
		if err != nil {
			return nil, err
		}
		classes = append(classes, cs...)
	}
	return classes, nil
}

// Static serves a fixed list of classes
type Static []*ClassInfo

// Classes implements Provider
func (s Static) Classes() ([]*ClassInfo, error) {
	return s, nil
}
