package javasrc

import (
	stderrors "errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/utils"
)

// Library holds parsed compilation units and resolves the classes they declare.
type Library struct {
	parser *participle.Parser[compilationUnit]
	reader *utils.FileReader
	units  []*parsedUnit
}

type parsedUnit struct {
	path string
	ast  *compilationUnit
}

func (u *parsedUnit) pkg() string {
	if u.ast.Package == nil {
		return ""
	}
	return u.ast.Package.Name
}

// NewLibrary creates an empty library reading files with its own FileReader
func NewLibrary() *Library {
	return NewLibraryWithReader(utils.NewFileReader())
}

// NewLibraryWithReader creates an empty library sharing the given reader
func NewLibraryWithReader(reader *utils.FileReader) *Library {
	return &Library{
		parser: newUnitParser(),
		reader: reader,
	}
}

// AddFile reads and parses one source file
func (l *Library) AddFile(path string) error {
	content, err := l.reader.ReadFile(path)
	if err != nil {
		return errors.WrapReadError(path, err)
	}
	return l.AddSource(path, content)
}

// AddSource parses source text under the given name. A unit that does not
// parse is rejected with a ClassParseError and nothing is added.
func (l *Library) AddSource(path, content string) error {
	ast, err := l.parser.ParseString(path, content)
	if err != nil {
		return parseError(path, err)
	}
	l.units = append(l.units, &parsedUnit{path: path, ast: ast})
	return nil
}

// Sources returns the names of the units added so far
func (l *Library) Sources() []string {
	paths := make([]string, len(l.units))
	for i, u := range l.units {
		paths[i] = u.path
	}
	return paths
}

func parseError(path string, err error) *errors.ClassParseError {
	var perr participle.Error
	if stderrors.As(err, &perr) {
		pos := perr.Position()
		return errors.NewClassParseError(path, perr.Message()).
			WithLocation(errors.SourceLocation{File: path, Line: pos.Line, Column: pos.Column}).
			WithSuggestion("Check the declaration near this position for a syntax error")
	}
	return errors.WrapParseError(path, err)
}

// Classes returns every class of every unit, nested classes right after their
// outer class, in the order units were added.
func (l *Library) Classes() []*Class {
	b := &classBuilder{known: make(map[string]bool)}
	for _, u := range l.units {
		for _, m := range u.ast.Members {
			if m.Type != nil {
				b.declare(u, nil, m)
			}
		}
	}
	for _, p := range b.pending {
		b.resolve(p)
	}
	return b.classes
}

// Class returns the class with the given qualified name, nil if unknown
func (l *Library) Class(qualifiedName string) *Class {
	for _, c := range l.Classes() {
		if c.QualifiedName == qualifiedName {
			return c
		}
	}
	return nil
}

type pendingClass struct {
	unit   *parsedUnit
	class  *Class
	member *member
}

type classBuilder struct {
	known   map[string]bool
	classes []*Class
	pending []pendingClass
	scopes  map[*Class]*scope
}

func (b *classBuilder) declare(u *parsedUnit, outer *Class, m *member) *Class {
	decl := m.Type
	kind := decl.Kind
	if strings.HasPrefix(kind, "@") {
		kind = "@interface"
	}

	c := &Class{
		Name:     decl.Name,
		Package:  u.pkg(),
		Kind:     kind,
		Doc:      lastJavadoc(m.Docs),
		Location: location(u.path, m.Pos),
		outer:    outer,
	}
	if outer != nil {
		c.QualifiedName = outer.QualifiedName + "." + decl.Name
	} else {
		c.QualifiedName = qualify(c.Package, decl.Name)
	}

	b.known[c.QualifiedName] = true
	b.classes = append(b.classes, c)
	b.pending = append(b.pending, pendingClass{unit: u, class: c, member: m})

	for _, child := range bodyMembers(decl) {
		if child.Type != nil {
			c.Nested = append(c.Nested, b.declare(u, c, child))
		}
	}
	return c
}

func bodyMembers(decl *typeDecl) []*member {
	switch {
	case decl.Body != nil:
		return decl.Body.Members
	case decl.EnumBody != nil:
		return decl.EnumBody.Members
	}
	return nil
}

func (b *classBuilder) resolve(p pendingClass) {
	if b.scopes == nil {
		b.scopes = make(map[*Class]*scope)
	}

	base := &scope{
		pkg:     p.unit.pkg(),
		imports: p.unit.ast.Imports,
		known:   b.known,
	}
	if outer := p.class.outer; outer != nil {
		if s, ok := b.scopes[outer]; ok {
			base = s
		}
	}
	classScope := *base
	classScope.class = p.class
	cs := classScope.withTypeParams(p.member.Type.TypeParams)
	b.scopes[p.class] = cs

	p.class.Modifiers, p.class.Annotations = cs.modifiers(p.member.Modifiers)

	for _, m := range bodyMembers(p.member.Type) {
		if m.Method == nil {
			continue
		}
		p.class.Methods = append(p.class.Methods, cs.method(p.unit.path, p.class, m))
	}
}

func (s *scope) method(path string, owner *Class, m *member) *Method {
	decl := m.Method
	ms := s.withTypeParams(decl.TypeParams)

	method := &Method{
		Name:     decl.Name,
		Doc:      lastJavadoc(m.Docs),
		HasBody:  decl.Body != nil,
		Location: location(path, m.Pos),
		owner:    owner,
	}
	if decl.Result != nil {
		method.ReturnType = ms.resolveRef(decl.Result, len(decl.Dims))
	}
	method.Modifiers, method.Annotations = ms.modifiers(m.Modifiers)

	for _, p := range decl.Params {
		extra := len(p.Dims)
		if p.Varargs {
			extra++
		}
		_, annotations := ms.modifiers(p.Modifiers)
		method.Parameters = append(method.Parameters, &Parameter{
			Name:        p.Name,
			Type:        ms.resolveRef(p.Type, extra),
			Varargs:     p.Varargs,
			Annotations: annotations,
			Location:    location(path, p.Pos),
		})
	}
	return method
}

func (s *scope) modifiers(mods []*modifier) ([]string, []*Annotation) {
	var keywords []string
	var annotations []*Annotation
	for _, mod := range mods {
		if mod.Annotation != nil {
			annotations = append(annotations, s.annotation(mod.Annotation))
			continue
		}
		keywords = append(keywords, mod.Keyword)
	}
	return keywords, annotations
}

func (s *scope) annotation(a *annotation) *Annotation {
	out := &Annotation{
		Type:   s.resolveName(a.Name),
		Values: make(map[string]string),
	}
	if a.Args == nil {
		return out
	}
	if a.Args.Value != nil {
		out.set("value", a.Args.Value.Text())
	}
	for _, pair := range a.Args.Pairs {
		out.set(pair.Key, pair.Value.Text())
	}
	return out
}

func (a *Annotation) set(key, value string) {
	if _, exists := a.Values[key]; !exists {
		a.Keys = append(a.Keys, key)
	}
	a.Values[key] = value
}

func location(path string, pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{File: path, Line: pos.Line, Column: pos.Column}
}
