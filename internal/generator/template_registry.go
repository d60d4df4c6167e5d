package generator

import (
	"fmt"
	"sort"
)

// TemplateRegistry holds the templates used to render engine adapters
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a registry with the built-in engine templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerJSPTemplates()
	registry.registerFreeMarkerTemplates()
	registry.registerVelocityTemplates()

	return registry
}

// Register adds or replaces a template
func (r *TemplateRegistry) Register(name, template string) {
	r.templates[name] = template
}

// Get retrieves a template by name
func (r *TemplateRegistry) Get(name string) (string, error) {
	template, exists := r.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}
	return template, nil
}

// MustGet retrieves a template by name, panicking if not found
func (r *TemplateRegistry) MustGet(name string) string {
	template, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return template
}

// Names returns the registered template names, sorted
func (r *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the named template with data
func (r *TemplateRegistry) Render(name string, data interface{}) (string, error) {
	template, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return executeTemplate(name, template, data)
}

func (r *TemplateRegistry) registerJSPTemplates() {
	r.templates[JSPTagTemplate] = jspTagTemplate
	r.templates[JSPTLDTemplate] = jspTLDTemplate
}

func (r *TemplateRegistry) registerFreeMarkerTemplates() {
	r.templates[FreeMarkerModelTemplate] = freeMarkerModelTemplate
	r.templates[FreeMarkerRepositoryTemplate] = freeMarkerRepositoryTemplate
}

func (r *TemplateRegistry) registerVelocityTemplates() {
	r.templates[VelocityDirectiveTemplate] = velocityDirectiveTemplate
	r.templates[VelocityPropertiesTemplate] = velocityPropertiesTemplate
}
