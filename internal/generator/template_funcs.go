package generator

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/model"
)

var boxedTypes = map[string]string{
	"boolean": "java.lang.Boolean",
	"byte":    "java.lang.Byte",
	"char":    "java.lang.Character",
	"short":   "java.lang.Short",
	"int":     "java.lang.Integer",
	"long":    "java.lang.Long",
	"float":   "java.lang.Float",
	"double":  "java.lang.Double",
}

var templateFuncs = template.FuncMap{
	"capitalize":   model.Capitalize,
	"decapitalize": model.Decapitalize,
	"boxed":        boxed,
	"defaultValue": defaultValue,
	"javadoc":      javadoc,
	"cdata":        cdata,
	"simpleName":   simpleName,
	"packagePath":  packagePath,
	"argument":     argument,
	"bodyType":     bodyType,
	"quote":        strconv.Quote,
}

// boxed returns the wrapper class of a primitive type, other types unchanged
func boxed(typ string) string {
	if w, ok := boxedTypes[typ]; ok {
		return w
	}
	return typ
}

// defaultValue renders a parameter's declared default as a Java expression,
// or null when it has none
func defaultValue(p *model.TemplateParameter) string {
	if !p.HasDefaultValue() {
		return "null"
	}
	switch boxed(p.Type) {
	case "java.lang.String":
		return strconv.Quote(p.DefaultValue)
	case "java.lang.Character":
		return "'" + p.DefaultValue + "'"
	case "java.lang.Long":
		return p.DefaultValue + "L"
	case "java.lang.Float":
		return p.DefaultValue + "f"
	}
	return p.DefaultValue
}

// javadoc prefixes every line of text, used inside /** */ blocks. A "*/" in
// the text would end the comment and is written as "*&#47;".
func javadoc(prefix, text string) string {
	if text == "" {
		return strings.TrimRight(prefix, " ")
	}
	text = strings.ReplaceAll(text, "*/", "*&#47;")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(prefix+line, " ")
	}
	return strings.Join(lines, "\n")
}

// cdata makes text safe inside a CDATA section by splitting every "]]>"
// across two sections
func cdata(text string) string {
	return strings.ReplaceAll(text, "]]>", "]]]]><![CDATA[>")
}

func simpleName(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}

func packagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// argument renders the expression passed to the execute method for one
// parameter. The request and body have fixed local names; other parameters
// come from the tag field (jsp) or from the runtime's parameter map.
func argument(style, runtime string, p *model.TemplateParameter) string {
	switch {
	case p.IsRequest():
		return "request"
	case p.IsBody():
		return "modelBody"
	case style == "jsp":
		return p.Name
	}
	return fmt.Sprintf("(%s) %s.getParameter(params, %s, %s)",
		boxed(p.Type), runtime, strconv.Quote(p.ExportedName), defaultValue(p))
}

// bodyType returns the type of the method's model-body parameter
func bodyType(m *model.TemplateMethod) string {
	for _, p := range m.Parameters {
		if p.IsBody() {
			return p.Type
		}
	}
	return model.DefaultModelBodyType
}

// executeTemplate renders a named template with the shared helper functions
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}
