package errors

import "fmt"

// ClassParseError reports a source unit that could not be read or parsed.
// It is always fatal: no partial suite is built after one occurs.
type ClassParseError struct {
	*BaseError
	Path string // source unit that failed
}

// NewClassParseError creates a new class parse error
func NewClassParseError(path, message string) *ClassParseError {
	return &ClassParseError{
		BaseError: New(ClassParseErrorCode, message).
			WithLocation(SourceLocation{File: path}).
			WithContext("path", path),
		Path: path,
	}
}

// WithLocation adds location information to the error
func (e *ClassParseError) WithLocation(loc SourceLocation) *ClassParseError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithCause adds an underlying error cause
func (e *ClassParseError) WithCause(cause error) *ClassParseError {
	e.BaseError.WithCause(cause)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *ClassParseError) WithSuggestion(suggestion string) *ClassParseError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// ValidationError represents a validation error with detailed context
type ValidationError struct {
	*BaseError
	Field      string // field that failed validation
	Value      interface{}
	Constraint string // the validation constraint that failed
}

// NewValidationError creates a validation error for a field and the constraint it broke
func NewValidationError(field string, value interface{}, constraint string) *ValidationError {
	message := fmt.Sprintf("validation failed for field '%s': %s", field, constraint)

	return &ValidationError{
		BaseError:  New(ValidationErrorCode, message).WithContext("field", field),
		Field:      field,
		Value:      value,
		Constraint: constraint,
	}
}

// WithSuggestion adds a helpful suggestion
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// GenerationError represents an error during code generation
type GenerationError struct {
	*BaseError
	Engine     string // engine that was rendering
	TargetFile string // target file being generated
	Stage      string // stage of generation where error occurred
}

// NewGenerationError creates a new generation error
func NewGenerationError(message string) *GenerationError {
	return &GenerationError{
		BaseError: New(GenerationErrorCode, message),
	}
}

// WithEngine sets the engine name
func (e *GenerationError) WithEngine(engine string) *GenerationError {
	e.Engine = engine
	e.BaseError.WithContext("engine", engine)
	return e
}

// WithTargetFile sets the target file
func (e *GenerationError) WithTargetFile(targetFile string) *GenerationError {
	e.TargetFile = targetFile
	e.BaseError.WithContext("target_file", targetFile)
	return e
}

// WithStage sets the generation stage
func (e *GenerationError) WithStage(stage string) *GenerationError {
	e.Stage = stage
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *GenerationError) WithSuggestion(suggestion string) *GenerationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}
