package generator

import (
	"path"

	"github.com/toyz/autotag/internal/model"
)

const (
	FreeMarkerModelTemplate      = "freemarker/model"
	FreeMarkerRepositoryTemplate = "freemarker/repository"
)

// FreeMarkerEngine renders a TemplateDirectiveModel per template class and a
// repository exposing one instance of each
func FreeMarkerEngine() *Engine {
	return &Engine{
		Name: "freemarker",
		ClassTemplates: []ClassTemplate{{
			Template: FreeMarkerModelTemplate,
			Path: func(pkg string, class *model.TemplateClass) string {
				return path.Join(packagePath(pkg), class.TagClassPrefix+"FMModel.java")
			},
		}},
		SuiteTemplates: []SuiteTemplate{{
			Template: FreeMarkerRepositoryTemplate,
			Path: func(pkg string, suite *model.TemplateSuite) string {
				return path.Join(packagePath(pkg), model.Capitalize(suite.Name)+"FMModelRepository.java")
			},
		}},
	}
}

const freeMarkerModelTemplate = `/*
 * Generated by autotag. Do not edit.
 */
package {{.Package}};

/**
{{javadoc " * " .Class.Documentation}}
 */
public class {{.Class.TagClassPrefix}}FMModel implements freemarker.template.TemplateDirectiveModel {

    /**
     * The template model.
     */
    private {{.Class.Name}} model;

    /**
     * Constructor.
     *
     * @param model The template model.
     */
    public {{.Class.TagClassPrefix}}FMModel({{.Class.Name}} model) {
        this.model = model;
    }

    /** {@inheritDoc} */
    @SuppressWarnings("unchecked")
    @Override
    public void execute(freemarker.core.Environment env, java.util.Map params,
            freemarker.template.TemplateModel[] loopVars, freemarker.template.TemplateDirectiveBody body)
            throws freemarker.template.TemplateException, java.io.IOException {
        {{.RequestClass}} request = {{.RuntimeClass}}.createRequest(env);
{{- if .Class.HasBody}}
        {{bodyType .Class.ExecuteMethod}} modelBody = {{.RuntimeClass}}.createModelBody(body, env);
{{- end}}
        model.{{.Class.ExecuteMethod.Name}}(
{{- range $i, $p := .Class.ExecuteMethod.Parameters}}{{if $i}},{{end}}
            {{argument "freemarker" $.RuntimeClass $p}}
{{- end}}
        );
    }
}
`

const freeMarkerRepositoryTemplate = `/*
 * Generated by autotag. Do not edit.
 */
package {{.Package}};

/**
 * Contains all the FreeMarker models of the "{{.Suite.Name}}" suite.
{{- if .Suite.Documentation}}
 *
{{javadoc " * " .Suite.Documentation}}
{{- end}}
 */
public class {{capitalize .Suite.Name}}FMModelRepository {
{{range .Suite.Classes}}
    /**
     * The "{{.TagName}}" directive.
     */
    private {{.TagClassPrefix}}FMModel {{.TagName}};
{{end}}
    /**
     * Constructor.
     */
    public {{capitalize .Suite.Name}}FMModelRepository() {
{{- range .Suite.Classes}}
        {{.TagName}} = new {{.TagClassPrefix}}FMModel(new {{.Name}}());
{{- end}}
    }
{{range .Suite.Classes}}
    /**
     * Returns the "{{.TagName}}" directive.
     *
     * @return The "{{.TagName}}" directive.
     */
    public {{.TagClassPrefix}}FMModel get{{capitalize .TagName}}() {
        return {{.TagName}};
    }
{{end -}}
}
`
