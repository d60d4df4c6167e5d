// Package errors defines the error taxonomy of autotag. Every error carries a
// code, an optional source location, context for the reporter and
// suggestions for the user.
package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AutotagError is implemented by every error autotag reports
type AutotagError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode classifies an error
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	// ClassParseErrorCode: a source unit or descriptor could not be read or parsed
	ClassParseErrorCode
	// ValidationErrorCode: a configuration value broke a constraint
	ValidationErrorCode
	// GenerationErrorCode: an engine could not render or write an output file
	GenerationErrorCode
	// TemplateErrorCode: a template failed to parse or execute
	TemplateErrorCode
	FileSystemErrorCode
	ConfigurationErrorCode
)

var codeNames = [...]struct{ name, title string }{
	UnknownErrorCode:       {"UnknownError", "Unknown Error"},
	ClassParseErrorCode:    {"ClassParseError", "Class Parse Error"},
	ValidationErrorCode:    {"ValidationError", "Validation Error"},
	GenerationErrorCode:    {"GenerationError", "Code Generation Error"},
	TemplateErrorCode:      {"TemplateError", "Template Error"},
	FileSystemErrorCode:    {"FileSystemError", "File System Error"},
	ConfigurationErrorCode: {"ConfigurationError", "Configuration Error"},
}

func (e ErrorCode) known() bool {
	return e >= 0 && int(e) < len(codeNames)
}

// String returns the identifier of the code
func (e ErrorCode) String() string {
	if !e.known() {
		e = UnknownErrorCode
	}
	return codeNames[e].name
}

// Title returns the heading the reporter prints for the code
func (e ErrorCode) Title() string {
	if !e.known() {
		e = UnknownErrorCode
	}
	return codeNames[e].title
}

// SourceLocation points into a Java source, descriptor or configuration file
type SourceLocation struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int // 1-based, 0 when unknown
}

// String formats the location as file[:line[:column]]
func (s SourceLocation) String() string {
	switch {
	case s.File == "":
		return "unknown location"
	case s.Line == 0:
		return s.File
	case s.Column == 0:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// IsEmpty reports whether no file is known
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError implements AutotagError and is embedded by the typed errors
type BaseError struct {
	code     ErrorCode
	message  string
	location SourceLocation
	cause    error
	context  map[string]interface{}
	hints    []string
}

// New creates an error with a code and message
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{code: code, message: message, hints: []string{}}
}

// Wrap creates an error with a code and message around a cause
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return New(code, message).WithCause(cause)
}

// Error formats the error as location: message: cause
func (e *BaseError) Error() string {
	var b strings.Builder
	if !e.location.IsEmpty() {
		b.WriteString(e.location.String())
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// ErrorCode implements AutotagError
func (e *BaseError) ErrorCode() ErrorCode {
	return e.code
}

// Location implements AutotagError
func (e *BaseError) Location() SourceLocation {
	return e.location
}

// Context returns a copy of the context data
func (e *BaseError) Context() map[string]interface{} {
	if e.context == nil {
		return map[string]interface{}{}
	}
	return maps.Clone(e.context)
}

// Suggestions implements AutotagError
func (e *BaseError) Suggestions() []string {
	return e.hints
}

// Unwrap returns the cause
func (e *BaseError) Unwrap() error {
	return e.cause
}

// WithLocation sets where the error occurred
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.location = loc
	return e
}

// WithCause sets the underlying error
func (e *BaseError) WithCause(cause error) *BaseError {
	e.cause = cause
	return e
}

// WithContext records a key shown under "Context" by the reporter
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.context == nil {
		e.context = make(map[string]interface{})
	}
	e.context[key] = value
	return e
}

// WithSuggestion appends a suggestion
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	return e.WithSuggestions(suggestion)
}

// WithSuggestions appends several suggestions
func (e *BaseError) WithSuggestions(suggestions ...string) *BaseError {
	e.hints = append(e.hints, suggestions...)
	return e
}

// MultipleErrors collects the failures of a pass that keeps going after the
// first error, such as configuration validation or cleaning.
type MultipleErrors struct {
	Errors []AutotagError
}

// NewMultipleErrors creates an empty collection
func NewMultipleErrors() *MultipleErrors {
	return &MultipleErrors{Errors: []AutotagError{}}
}

// Add appends an error
func (e *MultipleErrors) Add(err AutotagError) {
	e.Errors = append(e.Errors, err)
}

// ErrorOrNil returns nil when nothing was collected
func (e *MultipleErrors) ErrorOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error lists every collected error, or returns the only one unchanged
func (e *MultipleErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "multiple errors (%d total):", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

// ErrorCode returns the code of the first error
func (e *MultipleErrors) ErrorCode() ErrorCode {
	if len(e.Errors) == 0 {
		return UnknownErrorCode
	}
	return e.Errors[0].ErrorCode()
}

// Location returns the location of the first error
func (e *MultipleErrors) Location() SourceLocation {
	if len(e.Errors) == 0 {
		return SourceLocation{}
	}
	return e.Errors[0].Location()
}

// Context merges the context of every error, keys prefixed with error_<index>_
func (e *MultipleErrors) Context() map[string]interface{} {
	combined := make(map[string]interface{})
	for i, err := range e.Errors {
		for k, v := range err.Context() {
			combined[fmt.Sprintf("error_%d_%s", i, k)] = v
		}
	}
	return combined
}

// Suggestions returns the suggestions of every error, each once
func (e *MultipleErrors) Suggestions() []string {
	var suggestions []string
	for _, err := range e.Errors {
		for _, s := range err.Suggestions() {
			if !slices.Contains(suggestions, s) {
				suggestions = append(suggestions, s)
			}
		}
	}
	return suggestions
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}
