package javasrc

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// javaLexer tokenizes Java source. Javadoc comments are kept as tokens so the
// grammar can attach them to declarations; every other comment is elided.
var javaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "TextBlock", Pattern: `"""[\s\S]*?"""`},
	{Name: "Javadoc", Pattern: `/\*\*([^*]|\*+[^*/])*\*+/`},
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Char", Pattern: `'(\\(u+[0-9a-fA-F]{4}|[0-7]{1,3}|.)|[^'\\\n])'`},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F_]+[lL]?|0[bB][01_]+[lL]?|[0-9][0-9_]*(\.[0-9_]*)?([eE][+-]?[0-9]+)?[fFdDlL]?|\.[0-9][0-9_]*([eE][+-]?[0-9]+)?[fFdD]?`},
	{Name: "AtInterface", Pattern: `@\s*interface\b`},
	{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Punct", Pattern: `[-+*/%=<>!&|^~?:;,.(){}\[\]@]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	whitespaceToken = javaLexer.Symbols()["Whitespace"]
	commentToken    = javaLexer.Symbols()["Comment"]
)

func newUnitParser() *participle.Parser[compilationUnit] {
	return participle.MustBuild[compilationUnit](
		participle.Lexer(javaLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(participle.MaxLookahead),
	)
}
