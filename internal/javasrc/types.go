package javasrc

import (
	"slices"

	"github.com/toyz/autotag/internal/errors"
)

// Class is a resolved class, interface, enum, record or annotation type.
type Class struct {
	Name          string
	QualifiedName string
	Package       string
	Kind          string
	Modifiers     []string
	Annotations   []*Annotation
	Doc           *Javadoc
	Methods       []*Method
	Nested        []*Class
	Location      errors.SourceLocation

	outer *Class
}

// IsInterface reports whether members of the class are implicitly public
func (c *Class) IsInterface() bool {
	return c.Kind == "interface" || c.Kind == "@interface"
}

// Outer returns the enclosing class, nil for top-level classes
func (c *Class) Outer() *Class {
	return c.outer
}

// Method is a resolved method or constructor declaration.
type Method struct {
	Name        string
	ReturnType  string // empty for constructors
	Modifiers   []string
	Parameters  []*Parameter
	Annotations []*Annotation
	Doc         *Javadoc
	HasBody     bool
	Location    errors.SourceLocation

	owner *Class
}

func (m *Method) hasModifier(name string) bool {
	return slices.Contains(m.Modifiers, name)
}

// IsConstructor reports whether the declaration has no return type
func (m *Method) IsConstructor() bool {
	return m.ReturnType == ""
}

// IsPublic reports explicit or implicit public visibility
func (m *Method) IsPublic() bool {
	if m.hasModifier("public") {
		return true
	}
	return m.owner != nil && m.owner.IsInterface() && !m.hasModifier("private")
}

// IsStatic reports whether the method is declared static
func (m *Method) IsStatic() bool {
	return m.hasModifier("static")
}

// IsAbstract reports explicit abstract methods and bodiless interface methods
func (m *Method) IsAbstract() bool {
	if m.hasModifier("abstract") {
		return true
	}
	if m.owner != nil && m.owner.IsInterface() {
		return !m.HasBody && !m.hasModifier("default") && !m.hasModifier("static") && !m.hasModifier("private")
	}
	return false
}

// Parameter is one formal parameter with its erased, fully-qualified type.
type Parameter struct {
	Name        string
	Type        string
	Varargs     bool
	Annotations []*Annotation
	Location    errors.SourceLocation
}

// Annotation is an annotation usage. Values hold element literals exactly as
// written in source; a single unnamed element is stored under "value".
type Annotation struct {
	Type   string
	Values map[string]string
	Keys   []string // element names in declaration order
}

// Value returns the raw literal of an element and whether it was present
func (a *Annotation) Value(key string) (string, bool) {
	v, ok := a.Values[key]
	return v, ok
}

// FindAnnotation returns the first annotation of the given resolved type
func FindAnnotation(annotations []*Annotation, typeName string) *Annotation {
	for _, a := range annotations {
		if a.Type == typeName {
			return a
		}
	}
	return nil
}
