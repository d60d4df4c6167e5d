package javasrc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var primitiveTypes = map[string]bool{
	"boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true, "void": true,
}

// wellKnownTypes lists JDK types per package. java.lang is always visible;
// the others are found through on-demand imports of their package.
var wellKnownTypes = map[string]map[string]bool{
	"java.lang": set(
		"AutoCloseable", "Boolean", "Byte", "CharSequence", "Character", "Class",
		"ClassCastException", "Cloneable", "Comparable", "Deprecated", "Double", "Enum",
		"Error", "Exception", "Float", "FunctionalInterface", "IllegalArgumentException",
		"IllegalStateException", "IndexOutOfBoundsException", "Integer",
		"InterruptedException", "Iterable", "Long", "Math", "NullPointerException",
		"Number", "Object", "Override", "Record", "Runnable", "RuntimeException",
		"SafeVarargs", "Short", "String", "StringBuffer", "StringBuilder",
		"SuppressWarnings", "System", "Thread", "Throwable",
		"UnsupportedOperationException", "Void",
	),
	"java.util": set(
		"ArrayList", "Arrays", "Collection", "Collections", "Date", "Deque", "HashMap",
		"HashSet", "Iterator", "LinkedHashMap", "LinkedHashSet", "LinkedList", "List",
		"Locale", "Map", "Objects", "Optional", "Properties", "Queue", "Set", "SortedMap",
		"SortedSet", "TreeMap", "TreeSet", "UUID",
	),
	"java.io": set(
		"File", "IOException", "InputStream", "OutputStream", "Reader", "Serializable",
		"StringWriter", "Writer",
	),
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, name := range names {
		m[name] = true
	}
	return m
}

// scope carries what a type name is resolved against at one declaration site.
type scope struct {
	pkg        string
	imports    []*importDecl
	known      map[string]bool
	class      *Class
	typeParams map[string]bool
}

// withTypeParams returns a copy of the scope that also sees the given type variables
func (s *scope) withTypeParams(params *typeParams) *scope {
	if params == nil || len(params.Params) == 0 {
		return s
	}
	next := *s
	next.typeParams = make(map[string]bool, len(s.typeParams)+len(params.Params))
	for name := range s.typeParams {
		next.typeParams[name] = true
	}
	for _, p := range params.Params {
		next.typeParams[p.Name] = true
	}
	return &next
}

// resolveRef erases a type reference to its qualified name plus one [] per dimension
func (s *scope) resolveRef(ref *typeRef, extraDims int) string {
	if ref == nil {
		return ""
	}
	name := s.resolveName(ref.name())
	return name + strings.Repeat("[]", len(ref.Dims)+extraDims)
}

// resolveName qualifies a dotted or simple type name
func (s *scope) resolveName(name string) string {
	first, rest, dotted := strings.Cut(name, ".")
	if dotted {
		if startsLower(first) {
			return name
		}
		return s.resolveSimple(first) + "." + rest
	}
	return s.resolveSimple(name)
}

func (s *scope) resolveSimple(name string) string {
	if primitiveTypes[name] || s.typeParams[name] {
		return name
	}

	for _, imp := range s.imports {
		if imp.OnDemand || imp.Static {
			continue
		}
		if imp.Name == name || strings.HasSuffix(imp.Name, "."+name) {
			return imp.Name
		}
	}

	for c := s.class; c != nil; c = c.outer {
		if c.Name == name {
			return c.QualifiedName
		}
		for _, nested := range c.Nested {
			if nested.Name == name {
				return nested.QualifiedName
			}
		}
	}

	local := qualify(s.pkg, name)
	if s.known[local] {
		return local
	}

	for _, imp := range s.imports {
		if !imp.OnDemand || imp.Static {
			continue
		}
		if candidate := imp.Name + "." + name; s.known[candidate] || wellKnownTypes[imp.Name][name] {
			return candidate
		}
	}

	if wellKnownTypes["java.lang"][name] {
		return "java.lang." + name
	}
	return local
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}
