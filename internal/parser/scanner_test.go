package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// visible drops hidden-channel tokens and the trailing EOF.
func visible(tokens []Token) []Token {
	var out []Token
	for _, tok := range tokens {
		if tok.Channel == HiddenChannel || tok.Type == EOF {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func lexemes(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Lexeme
	}
	return out
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "uniform attribute varying invariant const in out inout highp mediump lowp precision customIdent"
	expected := []TokenType{
		UNIFORM, ATTRIBUTE, VARYING, INVARIANT, CONST, IN, OUT, INOUT,
		HIGH_PRECISION, MEDIUM_PRECISION, LOW_PRECISION, PRECISION, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := visible(scanner.ScanTokens())

	assert.Equal(t, expected, tokenTypes(tokens))
	assert.Empty(t, scanner.Errors())
}

func TestTypeKeywords(t *testing.T) {
	input := "void float int bool vec2 vec3 vec4 bvec2 bvec3 bvec4 ivec2 ivec3 ivec4 mat2 mat3 mat4 " +
		"sampler1D isampler1D usampler1D sampler2D isampler2D usampler2D samplerCube sampler1DArray sampler2DArray"

	tokens := visible(NewScanner(input).ScanTokens())

	require.Len(t, tokens, int(SAMPLER2DARRAY-VOID+1))
	for i, tok := range tokens {
		assert.Equal(t, VOID+TokenType(i), tok.Type, "token %d (%s)", i, tok.Lexeme)
		assert.True(t, tok.Type.IsType())
	}
}

func TestKeywordIdentifierBoundary(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"invariant", INVARIANT},
		{"invariants", IDENTIFIER},
		{"uniform", UNIFORM},
		{"uniform_", IDENTIFIER},
		{"vec3", VEC3},
		{"vec3a", IDENTIFIER},
		{"vec5", IDENTIFIER},
		{"in", IN},
		{"int", INT},
		{"inout", INOUT},
		{"input", IDENTIFIER},
		{"main", IDENTIFIER},
		{"_main", IDENTIFIER},
		{"sampler2D", SAMPLER2D},
		{"sampler2DArray", SAMPLER2DARRAY},
		{"sampler2DShadow", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := visible(NewScanner(tt.input).ScanTokens())
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.expected, tokens[0].Type)
			assert.Equal(t, tt.input, tokens[0].Lexeme)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		types   []TokenType
		lexemes []string
	}{
		{"42", []TokenType{INTCONSTANT}, []string{"42"}},
		{"0", []TokenType{INTCONSTANT}, []string{"0"}},
		{"0777", []TokenType{INTCONSTANT}, []string{"0777"}},
		{"0x1F", []TokenType{INTCONSTANT}, []string{"0x1F"}},
		{"0XabC", []TokenType{INTCONSTANT}, []string{"0XabC"}},
		{"0x", []TokenType{INTCONSTANT, IDENTIFIER}, []string{"0", "x"}},
		{"08", []TokenType{INTCONSTANT, INTCONSTANT}, []string{"0", "8"}},
		{"1.5", []TokenType{FLOATCONSTANT}, []string{"1.5"}},
		{"1.", []TokenType{FLOATCONSTANT}, []string{"1."}},
		{".5", []TokenType{FLOATCONSTANT}, []string{".5"}},
		{"017.5", []TokenType{FLOATCONSTANT}, []string{"017.5"}},
		{"1.0e10", []TokenType{FLOATCONSTANT}, []string{"1.0e10"}},
		{"2.5E-3", []TokenType{FLOATCONSTANT}, []string{"2.5E-3"}},
		{".5e+2", []TokenType{FLOATCONSTANT}, []string{".5e+2"}},
		{"1.0e", []TokenType{FLOATCONSTANT, IDENTIFIER}, []string{"1.0", "e"}},
		{"1.0e+", []TokenType{FLOATCONSTANT, IDENTIFIER, PLUS}, []string{"1.0", "e", "+"}},
		{"3e5", []TokenType{INTCONSTANT, IDENTIFIER}, []string{"3", "e5"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scanner := NewScanner(tt.input)
			tokens := visible(scanner.ScanTokens())
			assert.Equal(t, tt.types, tokenTypes(tokens))
			assert.Equal(t, tt.lexemes, lexemes(tokens))
			assert.Empty(t, scanner.Errors())
		})
	}
}

func TestOperatorsAndPunctuation(t *testing.T) {
	input := "++ -- <= >= == != && || ^^ << >> *= /= += %= -= <<= >>= &= ^= |= " +
		"+ - * / % < > ! ~ & | ^ ? : = ( ) [ ] { } . , ;"
	expected := []TokenType{
		INC_OP, DEC_OP, LE_OP, GE_OP, EQ_OP, NE_OP, AND_OP, OR_OP, XOR_OP, LEFT_OP, RIGHT_OP,
		MUL_ASSIGN, DIV_ASSIGN, ADD_ASSIGN, MOD_ASSIGN, SUB_ASSIGN, LEFT_ASSIGN, RIGHT_ASSIGN,
		AND_ASSIGN, XOR_ASSIGN, OR_ASSIGN,
		PLUS, DASH, STAR, SLASH, PERCENT, LEFT_ANGLE, RIGHT_ANGLE, BANG, TILDE, AMPERSAND,
		VERTICAL_BAR, CARET, QUESTION, COLON, EQUAL,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACKET, RIGHT_BRACKET, LEFT_BRACE, RIGHT_BRACE,
		DOT, COMMA, SEMICOLON,
	}

	scanner := NewScanner(input)
	tokens := visible(scanner.ScanTokens())

	require.Equal(t, expected, tokenTypes(tokens))
	for _, tok := range tokens {
		assert.Equal(t, tok.Type.Describe(), "'"+tok.Lexeme+"'")
	}
	assert.Empty(t, scanner.Errors())
}

func TestLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		types []TokenType
	}{
		{"<<=", []TokenType{LEFT_ASSIGN}},
		{"<<<", []TokenType{LEFT_OP, LEFT_ANGLE}},
		{"a+++b", []TokenType{IDENTIFIER, INC_OP, PLUS, IDENTIFIER}},
		{"a/b", []TokenType{IDENTIFIER, SLASH, IDENTIFIER}},
		{"a/=b", []TokenType{IDENTIFIER, DIV_ASSIGN, IDENTIFIER}},
		{"a//b", []TokenType{IDENTIFIER}},
		{"a/*b*/c", []TokenType{IDENTIFIER, IDENTIFIER}},
		{"x.y", []TokenType{IDENTIFIER, DOT, IDENTIFIER}},
		{"===", []TokenType{EQ_OP, EQUAL}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := visible(NewScanner(tt.input).ScanTokens())
			assert.Equal(t, tt.types, tokenTypes(tokens))
		})
	}
}

func TestHiddenChannel(t *testing.T) {
	input := "// line comment\n/* block\ncomment */\n#version 100\nuniform"
	tokens := NewScanner(input).ScanTokens()

	expected := []TokenType{COMMENT, WHITESPACE, MULTILINE_COMMENT, WHITESPACE, DIRECTIVE, WHITESPACE, UNIFORM, EOF}
	require.Equal(t, expected, tokenTypes(tokens))

	for _, tok := range tokens[:6] {
		assert.Equal(t, HiddenChannel, tok.Channel, "%s should be hidden", tok.Type)
	}
	assert.Equal(t, DefaultChannel, tokens[6].Channel)
	assert.Equal(t, "// line comment", tokens[0].Lexeme)
	assert.Equal(t, "/* block\ncomment */", tokens[2].Lexeme)
	assert.Equal(t, "#version 100", tokens[4].Lexeme)
	assert.Equal(t, Position{Line: 5, Column: 1, Offset: 49}, tokens[6].Position)
}

func TestTokenPositions(t *testing.T) {
	input := "uniform\n  vec4 color;\n\tvoid"
	tokens := visible(NewScanner(input).ScanTokens())

	expected := []Position{
		{Line: 1, Column: 1, Offset: 0},
		{Line: 2, Column: 3, Offset: 10},
		{Line: 2, Column: 8, Offset: 15},
		{Line: 2, Column: 13, Offset: 20},
		{Line: 3, Column: 2, Offset: 23},
	}
	require.Len(t, tokens, len(expected))
	for i, pos := range expected {
		assert.Equal(t, pos, tokens[i].Position, "token %d (%s)", i, tokens[i].Lexeme)
	}
}

func TestEOFPosition(t *testing.T) {
	scanner := NewScanner("a\nbc")
	tokens := scanner.ScanTokens()

	eof := tokens[len(tokens)-1]
	assert.Equal(t, EOF, eof.Type)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 4}, eof.Position)

	// EOF repeats once the input is exhausted.
	assert.Equal(t, EOF, scanner.NextToken().Type)
	assert.Equal(t, EOF, scanner.NextToken().Type)
}

func TestUnrecognizedCharacters(t *testing.T) {
	scanner := NewScanner("uniform @vec4 $color;")
	tokens := visible(scanner.ScanTokens())

	assert.Equal(t, []TokenType{UNIFORM, VEC4, IDENTIFIER, SEMICOLON}, tokenTypes(tokens))

	errs := scanner.Errors()
	require.Len(t, errs, 2)
	assertScanError(t, errs[0], '@', `unrecognized character '@'`, 1, 9, 8)
	assertScanError(t, errs[1], '$', `unrecognized character '$'`, 1, 15, 14)
	assert.Equal(t, 1, errs[0].Length)
}

func TestUnterminatedBlockComment(t *testing.T) {
	scanner := NewScanner("uniform /* unterminated\ncomment")
	tokens := scanner.ScanTokens()

	require.Len(t, tokens, 4)
	assert.Equal(t, MULTILINE_COMMENT, tokens[2].Type)
	assert.Equal(t, HiddenChannel, tokens[2].Channel)
	assert.Equal(t, EOF, tokens[3].Type)

	errs := scanner.Errors()
	require.Len(t, errs, 1)
	assertScanError(t, errs[0], 0, "unterminated block comment", 1, 9, 8)
}

func TestScannerAlwaysTerminates(t *testing.T) {
	inputs := []string{"", "@@@@", "/*", "#", "0x", ".", "\"\\`", "\x00\xff"}
	for _, input := range inputs {
		tokens := NewScanner(input).ScanTokens()
		require.NotEmpty(t, tokens)
		assert.Equal(t, EOF, tokens[len(tokens)-1].Type, "input %q", input)
	}
}

func assertScanError(t *testing.T, got ScanError, wantChar byte, wantMessage string, wantLine, wantCol, wantOffset int) {
	t.Helper()
	assert.Equal(t, wantChar, got.Char)
	assert.Equal(t, wantMessage, got.Message)
	assert.Equal(t, Position{Line: wantLine, Column: wantCol, Offset: wantOffset}, got.Position)
}
