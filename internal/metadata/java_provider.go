package metadata

import (
	"github.com/toyz/autotag/internal/javasrc"
	"github.com/toyz/autotag/internal/utils"
)

// JavaSourceProvider reads class metadata straight from .java files
type JavaSourceProvider struct {
	library *javasrc.Library
}

// NewJavaSourceProvider parses every file up front. The first file that
// cannot be read or parsed aborts construction with a ClassParseError.
func NewJavaSourceProvider(files []string, reader *utils.FileReader) (*JavaSourceProvider, error) {
	if reader == nil {
		reader = utils.NewFileReader()
	}
	library := javasrc.NewLibraryWithReader(reader)
	for _, file := range files {
		if err := library.AddFile(file); err != nil {
			return nil, err
		}
	}
	return &JavaSourceProvider{library: library}, nil
}

// NewLibraryProvider wraps an already populated library
func NewLibraryProvider(library *javasrc.Library) *JavaSourceProvider {
	return &JavaSourceProvider{library: library}
}

// Sources returns the parsed files
func (p *JavaSourceProvider) Sources() []string {
	return p.library.Sources()
}

// Classes implements Provider
func (p *JavaSourceProvider) Classes() ([]*ClassInfo, error) {
	var classes []*ClassInfo
	for _, c := range p.library.Classes() {
		classes = append(classes, classInfo(c))
	}
	return classes, nil
}

func classInfo(c *javasrc.Class) *ClassInfo {
	info := &ClassInfo{
		Name:          c.Name,
		QualifiedName: c.QualifiedName,
		Kind:          c.Kind,
		Documentation: c.Doc.Description(),
		Source:        c.Location.File,
		Line:          c.Location.Line,
	}
	for _, m := range c.Methods {
		if m.IsConstructor() {
			continue
		}
		info.Methods = append(info.Methods, methodInfo(m))
	}
	return info
}

func methodInfo(m *javasrc.Method) *MethodInfo {
	info := &MethodInfo{
		Name:          m.Name,
		ReturnType:    m.ReturnType,
		Public:        m.IsPublic(),
		Static:        m.IsStatic(),
		Abstract:      m.IsAbstract(),
		Documentation: m.Doc.Description(),
		Line:          m.Location.Line,
	}
	if m.Doc != nil {
		for _, tag := range m.Doc.Tags {
			info.Tags = append(info.Tags, DocTag{Name: tag.Name, Value: tag.Value})
		}
	}
	for _, p := range m.Parameters {
		param := &ParameterInfo{Name: p.Name, Type: p.Type}
		for _, a := range p.Annotations {
			param.Annotations = append(param.Annotations, annotationInfo(a))
		}
		info.Parameters = append(info.Parameters, param)
	}
	return info
}

func annotationInfo(a *javasrc.Annotation) *AnnotationInfo {
	info := &AnnotationInfo{Type: a.Type}
	if len(a.Values) > 0 {
		info.Values = make(map[string]string, len(a.Values))
		for k, v := range a.Values {
			info.Values[k] = v
		}
	}
	return info
}
