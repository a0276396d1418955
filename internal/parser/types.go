package parser

import "fmt"

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INTCONSTANT
	FLOATCONSTANT

	// Storage qualifiers
	ATTRIBUTE
	CONST
	INVARIANT
	UNIFORM
	VARYING

	// Parameter directions
	IN
	OUT
	INOUT

	// Precision
	PRECISION
	HIGH_PRECISION
	MEDIUM_PRECISION
	LOW_PRECISION

	// Types
	VOID
	FLOAT
	INT
	BOOL
	VEC2
	VEC3
	VEC4
	BVEC2
	BVEC3
	BVEC4
	IVEC2
	IVEC3
	IVEC4
	MAT2
	MAT3
	MAT4
	SAMPLER1D
	ISAMPLER1D
	USAMPLER1D
	SAMPLER2D
	ISAMPLER2D
	USAMPLER2D
	SAMPLERCUBE
	SAMPLER1DARRAY
	SAMPLER2DARRAY

	// Other keywords
	BREAK
	CONTINUE
	DISCARD
	DO
	ELSE
	FALSE
	FOR
	IF
	RETURN
	STRUCT
	TRUE
	WHILE

	// Operators
	INC_OP
	DEC_OP
	LE_OP
	GE_OP
	EQ_OP
	NE_OP
	AND_OP
	OR_OP
	XOR_OP
	LEFT_OP
	RIGHT_OP
	MUL_ASSIGN
	DIV_ASSIGN
	ADD_ASSIGN
	MOD_ASSIGN
	SUB_ASSIGN
	LEFT_ASSIGN
	RIGHT_ASSIGN
	AND_ASSIGN
	XOR_ASSIGN
	OR_ASSIGN
	PLUS
	DASH
	STAR
	SLASH
	PERCENT
	LEFT_ANGLE
	RIGHT_ANGLE
	BANG
	TILDE
	AMPERSAND
	VERTICAL_BAR
	CARET
	QUESTION
	COLON
	EQUAL

	// Punctuation
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	DOT
	COMMA
	SEMICOLON

	// Hidden channel
	WHITESPACE
	COMMENT
	MULTILINE_COMMENT
	DIRECTIVE
)

var tokenNames = [...]string{
	ILLEGAL:           "ILLEGAL",
	EOF:               "EOF",
	IDENTIFIER:        "IDENTIFIER",
	INTCONSTANT:       "INTCONSTANT",
	FLOATCONSTANT:     "FLOATCONSTANT",
	ATTRIBUTE:         "ATTRIBUTE",
	CONST:             "CONST",
	INVARIANT:         "INVARIANT",
	UNIFORM:           "UNIFORM",
	VARYING:           "VARYING",
	IN:                "IN",
	OUT:               "OUT",
	INOUT:             "INOUT",
	PRECISION:         "PRECISION",
	HIGH_PRECISION:    "HIGH_PRECISION",
	MEDIUM_PRECISION:  "MEDIUM_PRECISION",
	LOW_PRECISION:     "LOW_PRECISION",
	VOID:              "VOID",
	FLOAT:             "FLOAT",
	INT:               "INT",
	BOOL:              "BOOL",
	VEC2:              "VEC2",
	VEC3:              "VEC3",
	VEC4:              "VEC4",
	BVEC2:             "BVEC2",
	BVEC3:             "BVEC3",
	BVEC4:             "BVEC4",
	IVEC2:             "IVEC2",
	IVEC3:             "IVEC3",
	IVEC4:             "IVEC4",
	MAT2:              "MAT2",
	MAT3:              "MAT3",
	MAT4:              "MAT4",
	SAMPLER1D:         "SAMPLER1D",
	ISAMPLER1D:        "ISAMPLER1D",
	USAMPLER1D:        "USAMPLER1D",
	SAMPLER2D:         "SAMPLER2D",
	ISAMPLER2D:        "ISAMPLER2D",
	USAMPLER2D:        "USAMPLER2D",
	SAMPLERCUBE:       "SAMPLERCUBE",
	SAMPLER1DARRAY:    "SAMPLER1DARRAY",
	SAMPLER2DARRAY:    "SAMPLER2DARRAY",
	BREAK:             "BREAK",
	CONTINUE:          "CONTINUE",
	DISCARD:           "DISCARD",
	DO:                "DO",
	ELSE:              "ELSE",
	FALSE:             "FALSE",
	FOR:               "FOR",
	IF:                "IF",
	RETURN:            "RETURN",
	STRUCT:            "STRUCT",
	TRUE:              "TRUE",
	WHILE:             "WHILE",
	INC_OP:            "INC_OP",
	DEC_OP:            "DEC_OP",
	LE_OP:             "LE_OP",
	GE_OP:             "GE_OP",
	EQ_OP:             "EQ_OP",
	NE_OP:             "NE_OP",
	AND_OP:            "AND_OP",
	OR_OP:             "OR_OP",
	XOR_OP:            "XOR_OP",
	LEFT_OP:           "LEFT_OP",
	RIGHT_OP:          "RIGHT_OP",
	MUL_ASSIGN:        "MUL_ASSIGN",
	DIV_ASSIGN:        "DIV_ASSIGN",
	ADD_ASSIGN:        "ADD_ASSIGN",
	MOD_ASSIGN:        "MOD_ASSIGN",
	SUB_ASSIGN:        "SUB_ASSIGN",
	LEFT_ASSIGN:       "LEFT_ASSIGN",
	RIGHT_ASSIGN:      "RIGHT_ASSIGN",
	AND_ASSIGN:        "AND_ASSIGN",
	XOR_ASSIGN:        "XOR_ASSIGN",
	OR_ASSIGN:         "OR_ASSIGN",
	PLUS:              "PLUS",
	DASH:              "DASH",
	STAR:              "STAR",
	SLASH:             "SLASH",
	PERCENT:           "PERCENT",
	LEFT_ANGLE:        "LEFT_ANGLE",
	RIGHT_ANGLE:       "RIGHT_ANGLE",
	BANG:              "BANG",
	TILDE:             "TILDE",
	AMPERSAND:         "AMPERSAND",
	VERTICAL_BAR:      "VERTICAL_BAR",
	CARET:             "CARET",
	QUESTION:          "QUESTION",
	COLON:             "COLON",
	EQUAL:             "EQUAL",
	LEFT_PAREN:        "LEFT_PAREN",
	RIGHT_PAREN:       "RIGHT_PAREN",
	LEFT_BRACKET:      "LEFT_BRACKET",
	RIGHT_BRACKET:     "RIGHT_BRACKET",
	LEFT_BRACE:        "LEFT_BRACE",
	RIGHT_BRACE:       "RIGHT_BRACE",
	DOT:               "DOT",
	COMMA:             "COMMA",
	SEMICOLON:         "SEMICOLON",
	WHITESPACE:        "WHITESPACE",
	COMMENT:           "COMMENT",
	MULTILINE_COMMENT: "MULTILINE_COMMENT",
	DIRECTIVE:         "DIRECTIVE",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Describe returns the form used in error messages: the quoted source text for
// fixed tokens, a class name otherwise.
func (t TokenType) Describe() string {
	if text, ok := fixedText[t]; ok {
		return "'" + text + "'"
	}
	switch t {
	case IDENTIFIER:
		return "identifier"
	case INTCONSTANT:
		return "integer constant"
	case FLOATCONSTANT:
		return "float constant"
	case EOF:
		return "end of input"
	}
	return t.String()
}

// Channel separates tokens the parser consumes from tokens that only advance
// position tracking.
type Channel int

const (
	DefaultChannel Channel = iota
	HiddenChannel
)

func (c Channel) String() string {
	if c == HiddenChannel {
		return "hidden"
	}
	return "default"
}

type Position struct {
	Line   int `json:"line" yaml:"line"`     // 1-based
	Column int `json:"column" yaml:"column"` // 1-based
	Offset int `json:"offset" yaml:"offset"` // 0-based absolute index in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
	Channel  Channel
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Lexeme)
}

// End returns the position just past the token's last character. Tokens that
// span lines (block comments) report the end on their starting line.
func (t Token) End() Position {
	return Position{
		Line:   t.Position.Line,
		Column: t.Position.Column + len(t.Lexeme),
		Offset: t.Position.Offset + len(t.Lexeme),
	}
}
