package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// GlslLexer tokenizes the same surface syntax as the hand-written scanner.
// Keywords are lexed as Ident and matched by literal in the grammar.
var GlslLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments and preprocessor lines
		{"Comment", `//[^\n]*`, nil},
		{"MultilineComment", `/\*([^*]|\*+[^*/])*\*+/`, nil},
		{"Directive", `#[^\n]*`, nil},

		{"Whitespace", `[ \t\r\n\f\v]+`, nil},

		// Numbers (floats first, "1." must not lex as Int)
		{"Float", `(\d+\.\d*|\.\d+)([eE][+-]?\d+)?`, nil},
		{"Int", `0[xX][0-9a-fA-F]+|[1-9]\d*|0[0-7]*`, nil},

		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Longest operators first
		{"Operator", `<<=|>>=|\+\+|--|<=|>=|==|!=|&&|\|\||\^\^|<<|>>|[-*/+%&^|]=|[-+*/%<>!~&|^?:=]`, nil},
		{"Punctuation", `[()\[\]{}.,;]`, nil},
	},
})

// elided token kinds never reach the grammar.
var elided = []string{"Whitespace", "Comment", "MultilineComment", "Directive"}
