package extractor

import (
	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/model"
)

const (
	// ModelSuffix marks a class as a template model
	ModelSuffix = "Model"
	// ExecuteMethodName is the name an execute method must have
	ExecuteMethodName = "execute"
	// DefaultParameterAnnotation is the annotation that overrides parameter properties
	DefaultParameterAnnotation = "org.apache.tiles.autotag.core.runtime.annotation.Parameter"
)

// Config holds the caller-supplied settings of one extraction
type Config struct {
	SuiteName           string
	SuiteDocumentation  string
	RequestType         string
	ModelBodyType       string
	ParameterAnnotation string
}

// withDefaults fills the optional type names
func (c Config) withDefaults() Config {
	if c.ModelBodyType == "" {
		c.ModelBodyType = model.DefaultModelBodyType
	}
	if c.ParameterAnnotation == "" {
		c.ParameterAnnotation = DefaultParameterAnnotation
	}
	return c
}

// Validate checks that the request type is set
func (c Config) Validate() error {
	if c.RequestType == "" {
		return errors.NewValidationError("RequestType", c.RequestType, "required").
			WithSuggestion("Set the fully-qualified name of the request class")
	}
	return nil
}
