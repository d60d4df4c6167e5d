package javasrc

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar below describes declarations only. Method bodies, initializers
// and field initializers are matched as balanced token runs and discarded.

type compilationUnit struct {
	Package  *packageDecl  `parser:"@@?"`
	Imports  []*importDecl `parser:"@@*"`
	Members  []*member     `parser:"@@*"`
	Trailing []string      `parser:"@Javadoc*"`
}

type packageDecl struct {
	Docs        []string      `parser:"@Javadoc*"`
	Annotations []*annotation `parser:"@@*"`
	Name        string        `parser:"'package' @Ident ( @'.' @Ident )* ';'"`
}

type importDecl struct {
	Static   bool   `parser:"Javadoc* 'import' @'static'?"`
	Name     string `parser:"@Ident ( @'.' @Ident )*"`
	OnDemand bool   `parser:"( '.' @'*' )? ';'"`
}

type member struct {
	Pos lexer.Position

	Docs      []string    `parser:"( @Javadoc"`
	Modifiers []*modifier `parser:"| @@ )*"`

	Type        *typeDecl    `parser:"( @@"`
	Method      *methodDecl  `parser:"| @@"`
	Field       *fieldDecl   `parser:"| @@"`
	Compact     *compactCtor `parser:"| @@"`
	Initializer *block       `parser:"| @@"`
	Empty       bool         `parser:"| @';' )"`
}

type modifier struct {
	Annotation *annotation `parser:"  @@"`
	Keyword    string      `parser:"| @( 'public' | 'protected' | 'private' | 'static' | 'abstract' | 'final' | 'native' | 'synchronized' | 'transient' | 'volatile' | 'strictfp' | 'default' | 'sealed' | 'non' '-' 'sealed' )"`
}

type typeDecl struct {
	Pos lexer.Position

	Kind       string      `parser:"@( 'class' | 'interface' | 'enum' | 'record' | AtInterface )"`
	Name       string      `parser:"@Ident"`
	TypeParams *typeParams `parser:"@@?"`
	Components []*param    `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
	Extends    []*typeRef  `parser:"( 'extends' @@ ( ',' @@ )* )?"`
	Implements []*typeRef  `parser:"( 'implements' @@ ( ',' @@ )* )?"`
	Permits    []*typeRef  `parser:"( 'permits' @@ ( ',' @@ )* )?"`
	Body       *classBody  `parser:"( @@"`
	EnumBody   *enumBody   `parser:"| @@ )"`
}

type classBody struct {
	Members  []*member `parser:"'{' @@*"`
	Trailing []string  `parser:"@Javadoc* '}'"`
}

type enumBody struct {
	Constants []*block  `parser:"'{' ( @@ | !( ';' | '{' | '}' ) )*"`
	Members   []*member `parser:"( ';' @@* )?"`
	Trailing  []string  `parser:"@Javadoc* '}'"`
}

type methodDecl struct {
	Pos lexer.Position

	TypeParams *typeParams   `parser:"@@?"`
	Result     *typeRef      `parser:"( @@ (?= Ident '(' ) )?"`
	Name       string        `parser:"@Ident '('"`
	Params     []*param      `parser:"( @@ ( ',' @@ )* )? ')'"`
	Dims       []string      `parser:"( @'[' ']' )*"`
	Throws     []*typeRef    `parser:"( 'throws' @@ ( ',' @@ )* )?"`
	Body       *block        `parser:"( @@"`
	Default    *elementValue `parser:"| ( 'default' @@ )? ';' )"`
}

type compactCtor struct {
	Name string `parser:"@Ident"`
	Body *block `parser:"@@"`
}

type fieldDecl struct {
	Type *typeRef `parser:"@@"`
	Name string   `parser:"@Ident"`
	Rest []*block `parser:"( @@ | !( ';' | '{' | '}' ) )* ';'"`
}

// block matches a balanced brace group without keeping its contents.
type block struct {
	Inner []*block `parser:"'{' ( @@ | !( '{' | '}' ) )* '}'"`
}

type param struct {
	Pos lexer.Position

	Modifiers []*modifier `parser:"@@*"`
	Type      *typeRef    `parser:"@@"`
	Varargs   bool        `parser:"@'...'?"`
	Name      string      `parser:"@Ident"`
	Dims      []string    `parser:"( @'[' ']' )*"`
}

type typeParams struct {
	Params []*typeParam `parser:"'<' @@ ( ',' @@ )* '>'"`
}

type typeParam struct {
	Annotations []*annotation `parser:"@@*"`
	Name        string        `parser:"@Ident"`
	Bounds      []*typeRef    `parser:"( 'extends' @@ ( '&' @@ )* )?"`
}

type typeRef struct {
	Parts []*typePart `parser:"@@ ( '.' @@ )*"`
	Dims  []string    `parser:"( @'[' ']' )*"`
}

type typePart struct {
	Annotations []*annotation `parser:"@@*"`
	Name        string        `parser:"@Ident"`
	Args        []*typeArg    `parser:"( '<' ( @@ ( ',' @@ )* )? '>' )?"`
}

type typeArg struct {
	Annotations []*annotation `parser:"@@*"`
	Wildcard    bool          `parser:"( @'?'"`
	Bound       *typeRef      `parser:"  ( ( 'extends' | 'super' ) @@ )?"`
	Type        *typeRef      `parser:"| @@ )"`
}

type annotation struct {
	Pos lexer.Position

	Name string          `parser:"'@' @Ident ( @'.' @Ident )*"`
	Args *annotationArgs `parser:"( '(' @@? ')' )?"`
}

type annotationArgs struct {
	Pairs []*elementPair `parser:"  @@ ( ',' @@ )*"`
	Value *elementValue  `parser:"| @@"`
}

type elementPair struct {
	Key   string        `parser:"@Ident '='"`
	Value *elementValue `parser:"@@"`
}

// elementValue keeps the raw tokens of an annotation element so literals
// survive exactly as written, quotes included.
type elementValue struct {
	Tokens []lexer.Token

	Groups []*elementGroup `parser:"( @@"`
	Atoms  []string        `parser:"| @!( ',' | ';' | ')' | '(' | '{' | '}' ) )+"`
}

type elementGroup struct {
	Inner []*elementGroup `parser:"  '(' ( @@ | !( '(' | ')' | '{' | '}' ) )* ')' | '{' ( @@ | !( '(' | ')' | '{' | '}' ) )* '}'"`
}

// Text returns the element value with elided tokens dropped and the rest
// joined without separators.
func (v *elementValue) Text() string {
	if v == nil {
		return ""
	}
	var sb strings.Builder
	for _, tok := range v.Tokens {
		if tok.Type == whitespaceToken || tok.Type == commentToken {
			continue
		}
		sb.WriteString(tok.Value)
	}
	return sb.String()
}

// name returns the dotted name of a reference with type arguments erased.
func (t *typeRef) name() string {
	parts := make([]string, len(t.Parts))
	for i, p := range t.Parts {
		parts[i] = p.Name
	}
	return strings.Join(parts, ".")
}
