package generator

import (
	"path"

	"github.com/toyz/autotag/internal/model"
)

const (
	VelocityDirectiveTemplate  = "velocity/directive"
	VelocityPropertiesTemplate = "velocity/properties"
)

// VelocityEngine renders a Directive per template class and the properties
// file registering them as user directives
func VelocityEngine() *Engine {
	return &Engine{
		Name: "velocity",
		ClassTemplates: []ClassTemplate{{
			Template: VelocityDirectiveTemplate,
			Path: func(pkg string, class *model.TemplateClass) string {
				return path.Join(packagePath(pkg), class.TagClassPrefix+"Directive.java")
			},
		}},
		SuiteTemplates: []SuiteTemplate{{
			Template: VelocityPropertiesTemplate,
			Path: func(string, *model.TemplateSuite) string {
				return "META-INF/velocity.properties"
			},
			Condition: func(suite *model.TemplateSuite) bool {
				return len(suite.Classes) > 0
			},
		}},
	}
}

const velocityDirectiveTemplate = `/*
 * Generated by autotag. Do not edit.
 */
package {{.Package}};

/**
{{javadoc " * " .Class.Documentation}}
 */
public class {{.Class.TagClassPrefix}}Directive extends org.apache.velocity.runtime.directive.Directive {

    /**
     * The template model.
     */
    private {{.Class.Name}} model = new {{.Class.Name}}();

    /** {@inheritDoc} */
    @Override
    public String getName() {
        return {{quote .Class.TagName}};
    }

    /** {@inheritDoc} */
    @Override
    public int getType() {
        return {{if .Class.HasBody}}BLOCK{{else}}LINE{{end}};
    }

    /** {@inheritDoc} */
    @Override
    public boolean render(org.apache.velocity.context.InternalContextAdapter context, java.io.Writer writer,
            org.apache.velocity.runtime.parser.node.Node node) throws java.io.IOException {
        java.util.Map<String, Object> params = {{.RuntimeClass}}.createParams(node, context);
        {{.RequestClass}} request = {{.RuntimeClass}}.createRequest(context, writer);
{{- if .Class.HasBody}}
        {{bodyType .Class.ExecuteMethod}} modelBody = {{.RuntimeClass}}.createModelBody(node, context, writer);
{{- end}}
        model.{{.Class.ExecuteMethod.Name}}(
{{- range $i, $p := .Class.ExecuteMethod.Parameters}}{{if $i}},{{end}}
            {{argument "velocity" $.RuntimeClass $p}}
{{- end}}
        );
        return true;
    }
}
`

const velocityPropertiesTemplate = `# Generated by autotag. Do not edit.
# Directives of the "{{.Suite.Name}}" suite.
userdirective = {{range $i, $c := .Suite.Classes}}{{if $i}},\
    {{end}}{{$.Package}}.{{$c.TagClassPrefix}}Directive{{end}}
`
