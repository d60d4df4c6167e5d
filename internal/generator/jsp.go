package generator

import (
	"path"

	"github.com/toyz/autotag/internal/model"
)

const (
	JSPTagTemplate = "jsp/tag"
	JSPTLDTemplate = "jsp/tld"

	// TaglibURIParameter is the request parameter holding the tag library URI
	TaglibURIParameter = "taglibURI"
)

// JSPEngine renders a SimpleTagSupport class per template class and a TLD for the suite
func JSPEngine() *Engine {
	return &Engine{
		Name: "jsp",
		ClassTemplates: []ClassTemplate{{
			Template: JSPTagTemplate,
			Path: func(pkg string, class *model.TemplateClass) string {
				return path.Join(packagePath(pkg), class.TagClassPrefix+"Tag.java")
			},
		}},
		SuiteTemplates: []SuiteTemplate{{
			Template: JSPTLDTemplate,
			Path: func(pkg string, suite *model.TemplateSuite) string {
				return "META-INF/tld/" + suite.Name + "-jsp.tld"
			},
		}},
		RequiredParameters: []string{TaglibURIParameter},
	}
}

const jspTagTemplate = `/*
 * Generated by autotag. Do not edit.
 */
package {{.Package}};

/**
{{javadoc " * " .Class.Documentation}}
 */
public class {{.Class.TagClassPrefix}}Tag extends javax.servlet.jsp.tagext.SimpleTagSupport {

    /**
     * The template model.
     */
    private {{.Class.Name}} model = new {{.Class.Name}}();
{{range .Class.Parameters}}
    /**
{{javadoc "     * " .Documentation}}
     */
    private {{.Type}} {{.Name}};
{{end}}
{{- range .Class.Parameters}}
    /**
     * Getter for {{.ExportedName}} property.
     *
     * @return The {{.ExportedName}} parameter
     */
    public {{.Type}} get{{.GetterSetterSuffix}}() {
        return {{.Name}};
    }

    /**
     * Setter for {{.ExportedName}} property.
     *
     * @param {{.Name}} The {{.ExportedName}} parameter
     */
    public void set{{.GetterSetterSuffix}}({{.Type}} {{.Name}}) {
        this.{{.Name}} = {{.Name}};
    }
{{end}}
    /** {@inheritDoc} */
    @Override
    public void doTag() throws javax.servlet.jsp.JspException, java.io.IOException {
        {{.RequestClass}} request = {{.RuntimeClass}}.createRequest(getJspContext());
{{- if .Class.HasBody}}
        {{bodyType .Class.ExecuteMethod}} modelBody = {{.RuntimeClass}}.createModelBody(getJspBody(), getJspContext());
{{- end}}
        model.{{.Class.ExecuteMethod.Name}}(
{{- range $i, $p := .Class.ExecuteMethod.Parameters}}{{if $i}},{{end}}
            {{argument "jsp" $.RuntimeClass $p}}
{{- end}}
        );
    }
}
`

const jspTLDTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!-- Generated by autotag. Do not edit. -->
<taglib xmlns="http://java.sun.com/xml/ns/javaee"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://java.sun.com/xml/ns/javaee http://java.sun.com/xml/ns/javaee/web-jsptaglibrary_2_1.xsd"
    version="2.1">
    <description>
        <![CDATA[
        {{cdata .Suite.Documentation}}
        ]]>
    </description>
    <tlib-version>1.2</tlib-version>
    <short-name>{{.Suite.Name}}</short-name>
    <uri>{{index .Parameters "taglibURI"}}</uri>
{{- range .Suite.Classes}}
    <tag>
        <description>
            <![CDATA[
            {{cdata .Documentation}}
            ]]>
        </description>
        <name>{{.TagName}}</name>
        <tag-class>{{$.Package}}.{{.TagClassPrefix}}Tag</tag-class>
        <body-content>{{if .HasBody}}scriptless{{else}}empty{{end}}</body-content>
{{- range .Parameters}}
        <attribute>
            <description>
                <![CDATA[
                {{cdata .Documentation}}
                ]]>
            </description>
            <name>{{.ExportedName}}</name>
            <required>{{.Required}}</required>
            <rtexprvalue>true</rtexprvalue>
            <type>{{boxed .Type}}</type>
        </attribute>
{{- end}}
    </tag>
{{- end}}
</taglib>
`
