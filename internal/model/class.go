package model

import "strings"

// TemplateClass is a discovered template model class and its execute method
type TemplateClass struct {
	Name           string          `yaml:"name" json:"name"`
	TagName        string          `yaml:"tagName" json:"tagName"`
	TagClassPrefix string          `yaml:"tagClassPrefix" json:"tagClassPrefix"`
	Documentation  string          `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	ExecuteMethod  *TemplateMethod `yaml:"executeMethod" json:"executeMethod"`
}

// NewTemplateClass creates a template class
func NewTemplateClass(name, tagName, tagClassPrefix string, executeMethod *TemplateMethod) *TemplateClass {
	return &TemplateClass{
		Name:           name,
		TagName:        tagName,
		TagClassPrefix: tagClassPrefix,
		ExecuteMethod:  executeMethod,
	}
}

// SetDocumentation sets the class documentation
func (c *TemplateClass) SetDocumentation(documentation string) {
	c.Documentation = documentation
}

// SimpleName returns the class name without its package
func (c *TemplateClass) SimpleName() string {
	return c.Name[strings.LastIndex(c.Name, ".")+1:]
}

// PackageName returns the package part of the class name, empty for the default package
func (c *TemplateClass) PackageName() string {
	if i := strings.LastIndex(c.Name, "."); i >= 0 {
		return c.Name[:i]
	}
	return ""
}

// Parameters returns the execute method parameters a generated adapter exposes:
// everything except the request and the model body.
func (c *TemplateClass) Parameters() []*TemplateParameter {
	var params []*TemplateParameter
	if c.ExecuteMethod == nil {
		return params
	}
	for _, param := range c.ExecuteMethod.Parameters {
		if !param.IsRequest() && !param.IsBody() {
			params = append(params, param)
		}
	}
	return params
}

// HasBody reports whether the execute method takes a model body
func (c *TemplateClass) HasBody() bool {
	return c.ExecuteMethod != nil && c.ExecuteMethod.HasBody()
}
