package errors

import "fmt"

// Common error wrapping patterns used throughout the codebase

// WrapWithOperation wraps an error with an operation context
func WrapWithOperation(operation, item string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s %s", operation, item)
	return Wrap(UnknownErrorCode, message, cause)
}

// WrapParseError wraps a read or syntax failure of a source unit
func WrapParseError(path string, cause error) *ClassParseError {
	return NewClassParseError(path, fmt.Sprintf("failed to parse %s", path)).WithCause(cause)
}

// WrapReadError wraps an I/O failure while loading a source unit
func WrapReadError(path string, cause error) *ClassParseError {
	return NewClassParseError(path, "I/O error when adding source file").
		WithCause(cause).
		WithSuggestion("Check that the file exists and is readable")
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(engine, item string, cause error) *GenerationError {
	err := &GenerationError{
		BaseError: Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", item), cause),
	}
	return err.WithEngine(engine).WithTargetFile(item)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *GenerationError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return &GenerationError{
		BaseError:  Wrap(TemplateErrorCode, message, cause).WithContext("template", templateName),
		TargetFile: templateName,
		Stage:      operation,
	}
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// ConfigurationError creates a configuration error without wrapping
func ConfigurationError(message string) *BaseError {
	return New(ConfigurationErrorCode, message)
}
