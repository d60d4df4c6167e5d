package extractor

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/javasrc"
	"github.com/toyz/autotag/internal/metadata"
	"github.com/toyz/autotag/internal/model"
)

const (
	requestType = "org.apache.tiles.request.Request"
	templatePkg = "org.apache.tiles.autotag.template"
)

func fixtureProvider(t *testing.T) metadata.Provider {
	t.Helper()

	archive, err := txtar.ParseFile(filepath.Join("..", "javasrc", "testdata", "templates.txtar"))
	require.NoError(t, err)

	lib := javasrc.NewLibrary()
	for _, f := range archive.Files {
		require.NoError(t, lib.AddSource(f.Name, string(f.Data)))
	}
	return metadata.NewLibraryProvider(lib)
}

func newFixtureExtractor(t *testing.T) *Extractor {
	return New(fixtureProvider(t), Config{
		SuiteName:          "tldtest",
		SuiteDocumentation: "Test for TLD docs.",
		RequestType:        requestType,
	})
}

func observationsFor(e *Extractor, kind ObservationKind) []Observation {
	var out []Observation
	for _, o := range e.Observations() {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func TestCreateTemplateSuite_Fixture(t *testing.T) {
	e := newFixtureExtractor(t)

	suite, err := e.CreateTemplateSuite()
	require.NoError(t, err)
	assert.Equal(t, "tldtest", suite.Name)
	assert.Equal(t, "Test for TLD docs.", suite.Documentation)

	var names []string
	for _, c := range suite.Classes {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		templatePkg + ".DoStuffModel",
		templatePkg + ".DoStuffBodyModel",
		templatePkg + ".AmbiguousModel",
	}, names)
}

func TestCreateTemplateSuite_DoStuffModel(t *testing.T) {
	suite, err := newFixtureExtractor(t).CreateTemplateSuite()
	require.NoError(t, err)

	class := suite.GetTemplateClassByName(templatePkg + ".DoStuffModel")
	require.NotNil(t, class)
	assert.Equal(t, "doStuff", class.TagName)
	assert.Equal(t, "DoStuff", class.TagClassPrefix)
	assert.Equal(t, "Documentation of the DoStuff class.", class.Documentation)

	method := class.ExecuteMethod
	require.NotNil(t, method)
	assert.Equal(t, "execute", method.Name)
	assert.Equal(t, "Executes the model.", method.Documentation)
	assert.False(t, method.HasBody())
	require.Len(t, method.Parameters, 3)

	expected := []struct {
		name, typ, doc string
		request        bool
	}{
		{"one", "java.lang.String", "Parameter one.", false},
		{"two", "int", "Parameter two.", false},
		{"request", requestType, "The request.", true},
	}
	for i, want := range expected {
		param := method.Parameters[i]
		assert.Equal(t, want.name, param.Name)
		assert.Equal(t, want.name, param.ExportedName)
		assert.Equal(t, want.typ, param.Type)
		assert.Equal(t, want.doc, param.Documentation)
		assert.Equal(t, want.request, param.IsRequest())
		assert.False(t, param.Required)
		assert.False(t, param.HasDefaultValue())
		assert.Same(t, param, method.GetParameterByName(want.name))
	}
}

func TestCreateTemplateSuite_ParameterAnnotations(t *testing.T) {
	e := newFixtureExtractor(t)
	suite, err := e.CreateTemplateSuite()
	require.NoError(t, err)

	class := suite.GetTemplateClassByName(templatePkg + ".DoStuffBodyModel")
	require.NotNil(t, class)
	assert.True(t, class.HasBody())

	method := class.ExecuteMethod
	require.Len(t, method.Parameters, 5)

	one := method.GetParameterByName("one")
	require.NotNil(t, one)
	assert.Equal(t, "uno", one.ExportedName)
	assert.True(t, one.Required)
	assert.Equal(t, "Parameter one.", one.Documentation)
	assert.Nil(t, method.GetParameterByName("uno"))

	when := method.GetParameterByName("when")
	require.NotNil(t, when)
	assert.Equal(t, "when", when.ExportedName)
	assert.Equal(t, "now", when.DefaultValue)
	assert.False(t, when.Required)

	attributes := method.GetParameterByName("attributes")
	assert.Equal(t, "java.util.Map[]", attributes.Type)
	assert.Equal(t, "Extra attributes,\nspread over two lines.", attributes.Documentation)

	body := method.GetParameterByName("modelBody")
	assert.True(t, body.IsBody())
	assert.False(t, body.IsRequest())

	regular := class.Parameters()
	require.Len(t, regular, 3)
	assert.Equal(t, "uno", regular[0].ExportedName)

	unknown := observationsFor(e, UnknownParamTag)
	require.Len(t, unknown, 1)
	assert.Contains(t, unknown[0].Message, "ghost")
	assert.Equal(t, templatePkg+".DoStuffBodyModel", unknown[0].Class)
}

func TestCreateTemplateSuite_LastExecuteMethodWins(t *testing.T) {
	e := newFixtureExtractor(t)
	suite, err := e.CreateTemplateSuite()
	require.NoError(t, err)

	class := suite.GetTemplateClassByName(templatePkg + ".AmbiguousModel")
	require.NotNil(t, class)

	var names []string
	for _, p := range class.ExecuteMethod.Parameters {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"second", "request", "body"}, names)
	assert.True(t, class.HasBody())

	ambiguous := observationsFor(e, AmbiguousExecuteMethod)
	require.Len(t, ambiguous, 1)
	assert.Equal(t, templatePkg+".AmbiguousModel", ambiguous[0].Class)
}

func TestCreateTemplateSuite_SkippedClasses(t *testing.T) {
	e := newFixtureExtractor(t)
	suite, err := e.CreateTemplateSuite()
	require.NoError(t, err)

	for _, name := range []string{"Model", "NotATemplate", "RejectedModel", "Shapes"} {
		assert.Nil(t, suite.GetTemplateClassByName(templatePkg+"."+name), name)
	}

	empty := observationsFor(e, EmptyPrefix)
	require.Len(t, empty, 1)
	assert.Equal(t, templatePkg+".Model", empty[0].Class)

	noExecute := observationsFor(e, NoExecuteMethod)
	require.Len(t, noExecute, 1)
	assert.Equal(t, templatePkg+".RejectedModel", noExecute[0].Class)

	missing := observationsFor(e, MissingSuffix)
	assert.Len(t, missing, 6) // NotATemplate, Shapes and its four nested types
}

func executeMethod(params ...*metadata.ParameterInfo) *metadata.MethodInfo {
	return &metadata.MethodInfo{
		Name:       ExecuteMethodName,
		ReturnType: "void",
		Public:     true,
		Parameters: params,
	}
}

func param(name, typ string, annotations ...*metadata.AnnotationInfo) *metadata.ParameterInfo {
	return &metadata.ParameterInfo{Name: name, Type: typ, Annotations: annotations}
}

func parameterAnnotation(values map[string]string) *metadata.AnnotationInfo {
	return &metadata.AnnotationInfo{Type: DefaultParameterAnnotation, Values: values}
}

func extractOne(t *testing.T, name string, methods ...*metadata.MethodInfo) (*model.TemplateClass, *Extractor) {
	t.Helper()
	provider := metadata.Static{{Name: name, QualifiedName: "p." + name, Methods: methods}}
	e := New(provider, Config{SuiteName: "s", RequestType: requestType})
	suite, err := e.CreateTemplateSuite()
	require.NoError(t, err)
	if len(suite.Classes) == 0 {
		return nil, e
	}
	require.Len(t, suite.Classes, 1)
	return suite.Classes[0], e
}

func TestExecuteMethodRule(t *testing.T) {
	body := model.DefaultModelBodyType

	tests := []struct {
		name      string
		method    *metadata.MethodInfo
		qualifies bool
	}{
		{"request only", executeMethod(param("request", requestType)), true},
		{"request after others", executeMethod(param("a", "int"), param("request", requestType)), true},
		{"request then body", executeMethod(param("a", "int"), param("request", requestType), param("body", body)), true},
		{"body then request", executeMethod(param("body", body), param("request", requestType)), true},
		{"body without request", executeMethod(param("a", "int"), param("body", body)), false},
		{"request not last", executeMethod(param("request", requestType), param("a", "int")), false},
		{"no parameters", executeMethod(), false},
		{"wrong name", &metadata.MethodInfo{Name: "run", ReturnType: "void", Public: true,
			Parameters: []*metadata.ParameterInfo{param("request", requestType)}}, false},
		{"non-void", &metadata.MethodInfo{Name: "execute", ReturnType: "java.lang.String", Public: true,
			Parameters: []*metadata.ParameterInfo{param("request", requestType)}}, false},
		{"not public", &metadata.MethodInfo{Name: "execute", ReturnType: "void",
			Parameters: []*metadata.ParameterInfo{param("request", requestType)}}, false},
		{"static", &metadata.MethodInfo{Name: "execute", ReturnType: "void", Public: true, Static: true,
			Parameters: []*metadata.ParameterInfo{param("request", requestType)}}, false},
		{"abstract", &metadata.MethodInfo{Name: "execute", ReturnType: "void", Public: true, Abstract: true,
			Parameters: []*metadata.ParameterInfo{param("request", requestType)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, e := extractOne(t, "XModel", tt.method)
			if !tt.qualifies {
				assert.Nil(t, class)
				assert.Len(t, observationsFor(e, NoExecuteMethod), 1)
				return
			}
			require.NotNil(t, class)
			assert.Equal(t, "x", class.TagName)
			assert.Equal(t, "X", class.TagClassPrefix)
			assert.Len(t, class.ExecuteMethod.Parameters, len(tt.method.Parameters))
		})
	}
}

func TestParameterAnnotationRules(t *testing.T) {
	tests := []struct {
		name         string
		values       map[string]string
		exportedName string
		required     bool
		defaultValue string
		malformed    int
	}{
		{"no values", nil, "src", false, "", 0},
		{"quoted name", map[string]string{"name": `"foo"`}, "foo", false, "", 0},
		{"empty name literal", map[string]string{"name": `""`}, "src", false, "", 1},
		{"single char name", map[string]string{"name": `"a"`}, "a", false, "", 0},
		{"required true", map[string]string{"required": "true"}, "src", true, "", 0},
		{"required false", map[string]string{"required": "false"}, "src", false, "", 0},
		{"required quoted", map[string]string{"required": `"true"`}, "src", false, "", 0},
		{"required uppercase", map[string]string{"required": "TRUE"}, "src", false, "", 0},
		{"default value", map[string]string{"defaultValue": `"42"`}, "src", false, "42", 0},
		{"empty default", map[string]string{"defaultValue": `""`}, "src", false, "", 1},
		{"everything", map[string]string{"name": `"n"`, "required": "true", "defaultValue": `"d"`}, "n", true, "d", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, e := extractOne(t, "AnnotatedModel",
				executeMethod(param("src", "java.lang.String", parameterAnnotation(tt.values)), param("request", requestType)))
			require.NotNil(t, class)

			p := class.ExecuteMethod.Parameters[0]
			assert.Equal(t, "src", p.Name)
			assert.Equal(t, tt.exportedName, p.ExportedName)
			assert.Equal(t, tt.required, p.Required)
			assert.Equal(t, tt.defaultValue, p.DefaultValue)
			assert.Len(t, observationsFor(e, MalformedAnnotationLiteral), tt.malformed)
		})
	}
}

func TestParameterAnnotation_OtherTypesIgnored(t *testing.T) {
	other := &metadata.AnnotationInfo{Type: "com.example.Parameter", Values: map[string]string{"name": `"foo"`}}
	class, _ := extractOne(t, "OtherModel", executeMethod(param("src", "int", other), param("request", requestType)))
	require.NotNil(t, class)
	assert.Equal(t, "src", class.ExecuteMethod.Parameters[0].ExportedName)
}

func TestParamTagDocumentation(t *testing.T) {
	method := executeMethod(param("two", "int"), param("request", requestType))
	method.Tags = []metadata.DocTag{
		{Name: "param", Value: "two some description"},
		{Name: "param", Value: "unknownName text"},
		{Name: "param", Value: "request"},
		{Name: "return", Value: "two nothing"},
	}

	class, e := extractOne(t, "DocModel", method)
	require.NotNil(t, class)

	assert.Equal(t, "some description", class.ExecuteMethod.GetParameterByName("two").Documentation)
	assert.Equal(t, "", class.ExecuteMethod.GetParameterByName("request").Documentation)
	assert.Len(t, observationsFor(e, UnknownParamTag), 1)
}

func TestTagClassPrefix(t *testing.T) {
	tests := []struct {
		in      string
		prefix  string
		tagName string
		ok      bool
	}{
		{"DoStuffModel", "DoStuff", "doStuff", true},
		{"XModel", "X", "x", true},
		{"insertAttributeModel", "InsertAttribute", "insertAttribute", true},
		{"Model", "", "", false},
		{"Modeler", "", "", false},
		{"NotATemplate", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			prefix, tagName, ok := TagClassPrefix(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.tagName, tagName)
		})
	}
}

type failingProvider struct{}

func (failingProvider) Classes() ([]*metadata.ClassInfo, error) {
	return nil, errors.NewClassParseError("Broken.java", "unexpected token")
}

func TestCreateTemplateSuite_Failures(t *testing.T) {
	suite, err := New(failingProvider{}, Config{RequestType: requestType}).CreateTemplateSuite()
	assert.Nil(t, suite)
	var parseErr *errors.ClassParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, "Broken.java", parseErr.Path)

	suite, err = New(metadata.Static{}, Config{}).CreateTemplateSuite()
	assert.Nil(t, suite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RequestType")
}

func TestConfigDefaults(t *testing.T) {
	e := New(metadata.Static{}, Config{RequestType: requestType})
	assert.Equal(t, model.DefaultModelBodyType, e.Config().ModelBodyType)
	assert.Equal(t, DefaultParameterAnnotation, e.Config().ParameterAnnotation)

	custom := New(metadata.Static{}, Config{RequestType: requestType, ModelBodyType: "com.example.Body"})
	assert.Equal(t, "com.example.Body", custom.Config().ModelBodyType)
}

func TestCustomBodyType(t *testing.T) {
	provider := metadata.Static{{
		Name:          "BodyModel",
		QualifiedName: "p.BodyModel",
		Methods: []*metadata.MethodInfo{
			executeMethod(param("request", requestType), param("body", "com.example.Body")),
		},
	}}
	suite, err := New(provider, Config{RequestType: requestType, ModelBodyType: "com.example.Body"}).CreateTemplateSuite()
	require.NoError(t, err)
	require.Len(t, suite.Classes, 1)
	assert.True(t, suite.Classes[0].HasBody())
}

func TestObservation_String(t *testing.T) {
	o := Observation{Kind: EmptyPrefix, Class: "p.Model", Message: "name has nothing before the suffix"}
	assert.Equal(t, "p.Model: name has nothing before the suffix (empty-prefix)", o.String())

	o.Location = errors.SourceLocation{File: "Model.java", Line: 3}
	assert.Equal(t, "Model.java:3: p.Model: name has nothing before the suffix (empty-prefix)", o.String())
}
