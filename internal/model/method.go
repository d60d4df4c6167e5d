package model

import (
	"fmt"
	"strings"
)

// TemplateMethod is the execute method of a template model class
type TemplateMethod struct {
	Name          string               `yaml:"name" json:"name"`
	Documentation string               `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Parameters    []*TemplateParameter `yaml:"parameters" json:"parameters"`

	byName map[string]*TemplateParameter
}

// NewTemplateMethod creates a method over an ordered parameter list.
// Parameters are indexed by source name; a repeated name resolves to the last one.
func NewTemplateMethod(name string, parameters []*TemplateParameter) *TemplateMethod {
	method := &TemplateMethod{
		Name:       name,
		Parameters: parameters,
		byName:     make(map[string]*TemplateParameter, len(parameters)),
	}
	for _, param := range parameters {
		method.byName[param.Name] = param
	}
	return method
}

// GetParameterByName returns the parameter with the given source name, or nil
func (m *TemplateMethod) GetParameterByName(name string) *TemplateParameter {
	if m.byName == nil {
		// Methods decoded from YAML/JSON have no index yet
		for i := len(m.Parameters) - 1; i >= 0; i-- {
			if m.Parameters[i].Name == name {
				return m.Parameters[i]
			}
		}
		return nil
	}
	return m.byName[name]
}

// HasBody reports whether any parameter receives the model body
func (m *TemplateMethod) HasBody() bool {
	for _, param := range m.Parameters {
		if param.IsBody() {
			return true
		}
	}
	return false
}

// SetDocumentation sets the method documentation
func (m *TemplateMethod) SetDocumentation(documentation string) {
	m.Documentation = documentation
}

// String renders the method for debugging
func (m *TemplateMethod) String() string {
	names := make([]string, len(m.Parameters))
	for i, param := range m.Parameters {
		names[i] = param.Name
	}
	return fmt.Sprintf("TemplateMethod[name=%s, documentation=%q, parameters={%s}]",
		m.Name, m.Documentation, strings.Join(names, ", "))
}
