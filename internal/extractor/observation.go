package extractor

import (
	"fmt"

	"github.com/toyz/autotag/internal/errors"
)

// ObservationKind classifies an input the extractor skipped without failing
type ObservationKind int

const (
	// MissingSuffix: the class name does not end with the model suffix
	MissingSuffix ObservationKind = iota
	// EmptyPrefix: the class is named exactly like the suffix
	EmptyPrefix
	// NoExecuteMethod: a model class has no qualifying execute method
	NoExecuteMethod
	// AmbiguousExecuteMethod: a later execute method replaced an earlier one
	AmbiguousExecuteMethod
	// UnknownParamTag: a @param tag names no parameter
	UnknownParamTag
	// MalformedAnnotationLiteral: an annotation literal was too short to unquote
	MalformedAnnotationLiteral
)

// String returns the string representation of the observation kind
func (k ObservationKind) String() string {
	switch k {
	case MissingSuffix:
		return "missing-suffix"
	case EmptyPrefix:
		return "empty-prefix"
	case NoExecuteMethod:
		return "no-execute-method"
	case AmbiguousExecuteMethod:
		return "ambiguous-execute-method"
	case UnknownParamTag:
		return "unknown-param-tag"
	case MalformedAnnotationLiteral:
		return "malformed-annotation-literal"
	default:
		return "unknown"
	}
}

// Observation records one silently skipped input
type Observation struct {
	Kind     ObservationKind
	Class    string
	Message  string
	Location errors.SourceLocation
}

// String formats the observation for diagnostics
func (o Observation) String() string {
	if o.Location.IsEmpty() {
		return fmt.Sprintf("%s: %s (%s)", o.Class, o.Message, o.Kind)
	}
	return fmt.Sprintf("%s: %s: %s (%s)", o.Location, o.Class, o.Message, o.Kind)
}
