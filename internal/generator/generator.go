// Package generator renders engine-specific adapter sources from a template suite.
package generator

import (
	"fmt"
	"io"
	"sort"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/model"
)

// ClassTemplate is rendered once per template class
type ClassTemplate struct {
	Template string
	Path     func(pkg string, class *model.TemplateClass) string
}

// SuiteTemplate is rendered once per suite, unless Condition rejects it
type SuiteTemplate struct {
	Template  string
	Path      func(pkg string, suite *model.TemplateSuite) string
	Condition func(suite *model.TemplateSuite) bool
}

// Engine describes the files generated for one template language
type Engine struct {
	Name               string
	ClassTemplates     []ClassTemplate
	SuiteTemplates     []SuiteTemplate
	RequiredParameters []string
}

// Request carries everything an engine needs besides the output location
type Request struct {
	Package      string // target Java package of the generated classes
	Suite        *model.TemplateSuite
	Parameters   map[string]string
	RuntimeClass string // class providing createRequest, createModelBody and getParameter
	RequestClass string
}

// TemplateData is the value templates are executed with; Class is nil for suite templates
type TemplateData struct {
	Package      string
	Suite        *model.TemplateSuite
	Class        *model.TemplateClass
	Parameters   map[string]string
	RuntimeClass string
	RequestClass string
}

// Generator renders registered engines through a template registry
type Generator struct {
	registry *TemplateRegistry
	engines  map[string]*Engine
}

// NewGenerator creates a generator with the jsp, freemarker and velocity engines
func NewGenerator() *Generator {
	g := &Generator{
		registry: NewTemplateRegistry(),
		engines:  make(map[string]*Engine),
	}
	g.RegisterEngine(JSPEngine())
	g.RegisterEngine(FreeMarkerEngine())
	g.RegisterEngine(VelocityEngine())
	return g
}

// Registry returns the template registry, for overriding templates
func (g *Generator) Registry() *TemplateRegistry {
	return g.registry
}

// RegisterEngine adds or replaces an engine
func (g *Generator) RegisterEngine(engine *Engine) {
	g.engines[engine.Name] = engine
}

// Engine returns the engine registered under name
func (g *Generator) Engine(name string) (*Engine, bool) {
	engine, ok := g.engines[name]
	return engine, ok
}

// EngineNames returns the registered engine names, sorted
func (g *Generator) EngineNames() []string {
	names := make([]string, 0, len(g.engines))
	for name := range g.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate renders every template of the named engine and returns the written
// paths: class templates in suite order first, then suite templates.
func (g *Generator) Generate(locator OutputLocator, engineName string, req Request) ([]string, error) {
	engine, ok := g.engines[engineName]
	if !ok {
		return nil, errors.NewGenerationError(fmt.Sprintf("unknown engine %q", engineName)).
			WithEngine(engineName).
			WithSuggestion(fmt.Sprintf("Available engines: %v", g.EngineNames()))
	}
	if err := validateRequest(engine, req); err != nil {
		return nil, err
	}

	var written []string
	for _, class := range req.Suite.Classes {
		data := newTemplateData(req, class)
		for _, tmpl := range engine.ClassTemplates {
			target := tmpl.Path(req.Package, class)
			if err := g.render(locator, engine, tmpl.Template, target, data); err != nil {
				return written, err
			}
			written = append(written, target)
		}
	}

	data := newTemplateData(req, nil)
	for _, tmpl := range engine.SuiteTemplates {
		if tmpl.Condition != nil && !tmpl.Condition(req.Suite) {
			continue
		}
		target := tmpl.Path(req.Package, req.Suite)
		if err := g.render(locator, engine, tmpl.Template, target, data); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	return written, nil
}

func (g *Generator) render(locator OutputLocator, engine *Engine, name, target string, data *TemplateData) error {
	content, err := g.registry.Render(name, data)
	if err != nil {
		return errors.WrapGenerateError(engine.Name, target, err).WithStage("render")
	}

	w, err := locator.Writer(target)
	if err != nil {
		return errors.WrapGenerateError(engine.Name, target, err).WithStage("open")
	}
	if _, err := io.WriteString(w, content); err != nil {
		w.Close()
		return errors.WrapGenerateError(engine.Name, target, err).WithStage("write")
	}
	if err := w.Close(); err != nil {
		return errors.WrapGenerateError(engine.Name, target, err).WithStage("write")
	}
	return nil
}

func validateRequest(engine *Engine, req Request) error {
	if req.Suite == nil {
		return errors.NewGenerationError("no template suite to generate from").WithEngine(engine.Name)
	}
	if req.Package == "" {
		return errors.NewGenerationError("target package is required").
			WithEngine(engine.Name).
			WithSuggestion("Set the Java package the generated classes belong to")
	}
	for _, name := range engine.RequiredParameters {
		if req.Parameters[name] == "" {
			return errors.NewGenerationError(fmt.Sprintf("engine %s requires parameter %q", engine.Name, name)).
				WithEngine(engine.Name).
				WithSuggestion(fmt.Sprintf("Provide %s in the engine parameters", name))
		}
	}
	return nil
}

func newTemplateData(req Request, class *model.TemplateClass) *TemplateData {
	return &TemplateData{
		Package:      req.Package,
		Suite:        req.Suite,
		Class:        class,
		Parameters:   req.Parameters,
		RuntimeClass: req.RuntimeClass,
		RequestClass: req.RequestClass,
	}
}
