package model

import "unicode"

// DefaultModelBodyType is the model-body marker type used when none is configured
const DefaultModelBodyType = "org.apache.tiles.autotag.core.runtime.ModelBody"

// TemplateParameter describes one formal parameter of an execute method
type TemplateParameter struct {
	Name          string `yaml:"name" json:"name"`
	ExportedName  string `yaml:"exportedName" json:"exportedName"`
	Type          string `yaml:"type" json:"type"`
	DefaultValue  string `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Required      bool   `yaml:"required" json:"required"`
	Request       bool   `yaml:"request" json:"request"`
	Documentation string `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	ModelBodyType string `yaml:"modelBodyType,omitempty" json:"modelBodyType,omitempty"`
}

// NewTemplateParameter creates a parameter. An empty defaultValue means "no default".
func NewTemplateParameter(name, exportedName, typ, defaultValue string, required, request bool) *TemplateParameter {
	return &TemplateParameter{
		Name:         name,
		ExportedName: exportedName,
		Type:         typ,
		DefaultValue: defaultValue,
		Required:     required,
		Request:      request,
	}
}

// SetBodyType sets the model-body marker type this parameter is compared
// against. The default type is stored as empty so it is not serialized.
func (p *TemplateParameter) SetBodyType(bodyType string) {
	if bodyType == DefaultModelBodyType {
		bodyType = ""
	}
	p.ModelBodyType = bodyType
}

// BodyType returns the model-body marker type in effect
func (p *TemplateParameter) BodyType() string {
	if p.ModelBodyType == "" {
		return DefaultModelBodyType
	}
	return p.ModelBodyType
}

// IsBody reports whether the parameter receives the model body
func (p *TemplateParameter) IsBody() bool {
	return p.Type == p.BodyType()
}

// IsRequest reports whether the parameter receives the request object
func (p *TemplateParameter) IsRequest() bool {
	return p.Request
}

// HasDefaultValue reports whether a default value was declared
func (p *TemplateParameter) HasDefaultValue() bool {
	return p.DefaultValue != ""
}

// SetDocumentation sets the parameter documentation
func (p *TemplateParameter) SetDocumentation(documentation string) {
	p.Documentation = documentation
}

// GetterSetterSuffix returns the exported name with its first letter upper-cased,
// as used in generated getFoo/setFoo accessors.
func (p *TemplateParameter) GetterSetterSuffix() string {
	return Capitalize(p.ExportedName)
}

// Capitalize upper-cases the first rune of s
func Capitalize(s string) string {
	return mapFirstRune(s, unicode.ToUpper)
}

// Decapitalize lower-cases the first rune of s
func Decapitalize(s string) string {
	return mapFirstRune(s, unicode.ToLower)
}

func mapFirstRune(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = fn(runes[0])
	return string(runes)
}
