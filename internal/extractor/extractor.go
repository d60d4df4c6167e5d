// Package extractor turns class metadata into a template suite. It applies
// the naming convention for template model classes, picks each class's
// execute method and builds its parameter descriptors.
package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/metadata"
	"github.com/toyz/autotag/internal/model"
)

// Extractor builds a TemplateSuite from a metadata provider
type Extractor struct {
	provider     metadata.Provider
	config       Config
	observations []Observation
}

// New creates an extractor. Optional type names in config get their defaults.
func New(provider metadata.Provider, config Config) *Extractor {
	return &Extractor{
		provider: provider,
		config:   config.withDefaults(),
	}
}

// Config returns the effective configuration
func (e *Extractor) Config() Config {
	return e.config
}

// Observations returns what the last CreateTemplateSuite call skipped
func (e *Extractor) Observations() []Observation {
	return e.observations
}

// CreateTemplateSuite scans every class and returns the suite of template
// classes. A provider failure aborts with no partial suite.
func (e *Extractor) CreateTemplateSuite() (*model.TemplateSuite, error) {
	e.observations = nil

	if err := e.config.Validate(); err != nil {
		return nil, err
	}

	classes, err := e.provider.Classes()
	if err != nil {
		return nil, err
	}

	suite := model.NewTemplateSuite(e.config.SuiteName, e.config.SuiteDocumentation)
	for _, class := range classes {
		if templateClass := e.createClass(class); templateClass != nil {
			suite.AddTemplateClass(templateClass)
		}
	}
	return suite, nil
}

func (e *Extractor) createClass(class *metadata.ClassInfo) *model.TemplateClass {
	prefix, tagName, ok := TagClassPrefix(class.Name)
	if !ok {
		kind, message := MissingSuffix, fmt.Sprintf("name does not end with %q", ModelSuffix)
		if class.Name == ModelSuffix {
			kind, message = EmptyPrefix, "name has nothing before the suffix"
		}
		e.observe(kind, class, message, class.Location())
		return nil
	}

	var executeMethod *model.TemplateMethod
	for _, method := range class.Methods {
		if !e.isExecuteMethod(method) {
			continue
		}
		if executeMethod != nil {
			e.observe(AmbiguousExecuteMethod, class,
				fmt.Sprintf("execute method at line %d replaces an earlier one", method.Line),
				errors.SourceLocation{File: class.Source, Line: method.Line})
		}
		executeMethod = e.createMethod(class, method)
	}
	if executeMethod == nil {
		e.observe(NoExecuteMethod, class, "no qualifying execute method", class.Location())
		return nil
	}

	templateClass := model.NewTemplateClass(class.QualifiedName, tagName, prefix, executeMethod)
	templateClass.SetDocumentation(class.Documentation)
	return templateClass
}

// TagClassPrefix derives the generated-type prefix and the tag name from a
// simple class name. ok is false unless the name ends with the model suffix
// and has something before it.
func TagClassPrefix(simpleName string) (prefix, tagName string, ok bool) {
	if !strings.HasSuffix(simpleName, ModelSuffix) || len(simpleName) <= len(ModelSuffix) {
		return "", "", false
	}
	stripped := strings.TrimSuffix(simpleName, ModelSuffix)
	prefix = model.Capitalize(stripped)
	return prefix, model.Decapitalize(prefix), true
}

func (e *Extractor) isExecuteMethod(method *metadata.MethodInfo) bool {
	if method.Name != ExecuteMethodName || method.ReturnType != "void" {
		return false
	}
	if !method.Public || method.Static || method.Abstract {
		return false
	}

	types := method.ParameterTypes()
	n := len(types)
	if n > 0 && types[n-1] == e.config.RequestType {
		return true
	}
	return n >= 2 && types[n-2] == e.config.RequestType && types[n-1] == e.config.ModelBodyType
}

func (e *Extractor) createMethod(class *metadata.ClassInfo, method *metadata.MethodInfo) *model.TemplateMethod {
	params := make([]*model.TemplateParameter, 0, len(method.Parameters))
	for _, p := range method.Parameters {
		params = append(params, e.createParameter(class, method, p))
	}

	templateMethod := model.NewTemplateMethod(method.Name, params)
	templateMethod.SetDocumentation(method.Documentation)

	for _, tag := range method.TagsByName("param") {
		name, description := splitParamTag(tag.Value)
		if name == "" {
			continue
		}
		param := templateMethod.GetParameterByName(name)
		if param == nil {
			e.observe(UnknownParamTag, class,
				fmt.Sprintf("@param %s does not name a parameter of %s", name, method.Name),
				errors.SourceLocation{File: class.Source, Line: method.Line})
			continue
		}
		param.SetDocumentation(description)
	}
	return templateMethod
}

func (e *Extractor) createParameter(class *metadata.ClassInfo, method *metadata.MethodInfo, p *metadata.ParameterInfo) *model.TemplateParameter {
	exportedName := p.Name
	required := false
	defaultValue := ""

	if annotation := p.Annotation(e.config.ParameterAnnotation); annotation != nil {
		if literal, ok := annotation.Value("name"); ok {
			if value, ok := unquote(literal); ok {
				exportedName = value
			} else {
				e.observeLiteral(class, method, p, "name", literal)
			}
		}
		required = annotation.Values["required"] == "true"
		if literal, ok := annotation.Value("defaultValue"); ok {
			if value, ok := unquote(literal); ok {
				defaultValue = value
			} else {
				e.observeLiteral(class, method, p, "defaultValue", literal)
			}
		}
	}

	param := model.NewTemplateParameter(p.Name, exportedName, p.Type, defaultValue, required,
		p.Type == e.config.RequestType)
	param.SetBodyType(e.config.ModelBodyType)
	return param
}

// unquote strips the first and last character of a literal longer than two
// characters. Shorter literals are left alone and reported as not unquoted.
func unquote(literal string) (string, bool) {
	if len(literal) <= 2 {
		return "", false
	}
	return literal[1 : len(literal)-1], true
}

// splitParamTag splits "name description" at the first whitespace
func splitParamTag(value string) (name, description string) {
	value = strings.TrimLeftFunc(value, unicode.IsSpace)
	pos := strings.IndexFunc(value, unicode.IsSpace)
	if pos < 0 {
		return value, ""
	}
	return value[:pos], strings.TrimSpace(value[pos:])
}

func (e *Extractor) observeLiteral(class *metadata.ClassInfo, method *metadata.MethodInfo, p *metadata.ParameterInfo, key, literal string) {
	e.observe(MalformedAnnotationLiteral, class,
		fmt.Sprintf("%s=%s on parameter %s of %s is too short to unquote", key, literal, p.Name, method.Name),
		errors.SourceLocation{File: class.Source, Line: method.Line})
}

func (e *Extractor) observe(kind ObservationKind, class *metadata.ClassInfo, message string, loc errors.SourceLocation) {
	e.observations = append(e.observations, Observation{
		Kind:     kind,
		Class:    class.QualifiedName,
		Message:  message,
		Location: loc,
	})
}
