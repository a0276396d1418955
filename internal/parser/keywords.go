package parser

var KEYWORDS = map[string]TokenType{
	"attribute":      ATTRIBUTE,
	"bool":           BOOL,
	"break":          BREAK,
	"bvec2":          BVEC2,
	"bvec3":          BVEC3,
	"bvec4":          BVEC4,
	"const":          CONST,
	"continue":       CONTINUE,
	"discard":        DISCARD,
	"do":             DO,
	"else":           ELSE,
	"false":          FALSE,
	"float":          FLOAT,
	"for":            FOR,
	"highp":          HIGH_PRECISION,
	"if":             IF,
	"in":             IN,
	"inout":          INOUT,
	"int":            INT,
	"invariant":      INVARIANT,
	"ivec2":          IVEC2,
	"ivec3":          IVEC3,
	"ivec4":          IVEC4,
	"lowp":           LOW_PRECISION,
	"mat2":           MAT2,
	"mat3":           MAT3,
	"mat4":           MAT4,
	"mediump":        MEDIUM_PRECISION,
	"out":            OUT,
	"precision":      PRECISION,
	"return":         RETURN,
	"sampler1D":      SAMPLER1D,
	"isampler1D":     ISAMPLER1D,
	"usampler1D":     USAMPLER1D,
	"sampler2D":      SAMPLER2D,
	"isampler2D":     ISAMPLER2D,
	"usampler2D":     USAMPLER2D,
	"samplerCube":    SAMPLERCUBE,
	"sampler1DArray": SAMPLER1DARRAY,
	"sampler2DArray": SAMPLER2DARRAY,
	"struct":         STRUCT,
	"true":           TRUE,
	"uniform":        UNIFORM,
	"varying":        VARYING,
	"vec2":           VEC2,
	"vec3":           VEC3,
	"vec4":           VEC4,
	"void":           VOID,
	"while":          WHILE,
}

var operators = map[TokenType]string{
	INC_OP:        "++",
	DEC_OP:        "--",
	LE_OP:         "<=",
	GE_OP:         ">=",
	EQ_OP:         "==",
	NE_OP:         "!=",
	AND_OP:        "&&",
	OR_OP:         "||",
	XOR_OP:        "^^",
	LEFT_OP:       "<<",
	RIGHT_OP:      ">>",
	MUL_ASSIGN:    "*=",
	DIV_ASSIGN:    "/=",
	ADD_ASSIGN:    "+=",
	MOD_ASSIGN:    "%=",
	SUB_ASSIGN:    "-=",
	LEFT_ASSIGN:   "<<=",
	RIGHT_ASSIGN:  ">>=",
	AND_ASSIGN:    "&=",
	XOR_ASSIGN:    "^=",
	OR_ASSIGN:     "|=",
	PLUS:          "+",
	DASH:          "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	LEFT_ANGLE:    "<",
	RIGHT_ANGLE:   ">",
	BANG:          "!",
	TILDE:         "~",
	AMPERSAND:     "&",
	VERTICAL_BAR:  "|",
	CARET:         "^",
	QUESTION:      "?",
	COLON:         ":",
	EQUAL:         "=",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	DOT:           ".",
	COMMA:         ",",
	SEMICOLON:     ";",
}

// fixedText maps every token type with a single spelling to that spelling.
var fixedText = func() map[TokenType]string {
	m := make(map[TokenType]string, len(KEYWORDS)+len(operators))
	for text, tt := range KEYWORDS {
		m[tt] = text
	}
	for tt, text := range operators {
		m[tt] = text
	}
	return m
}()

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// IsKeyword reports whether t is a reserved word.
func (t TokenType) IsKeyword() bool {
	return t >= ATTRIBUTE && t <= WHILE
}

// IsType reports whether t names a base type that may start a declaration.
func (t TokenType) IsType() bool {
	return t >= VOID && t <= SAMPLER2DARRAY
}

func (t TokenType) IsQualifier() bool {
	return t >= ATTRIBUTE && t <= VARYING
}

func (t TokenType) IsDirection() bool {
	return t == IN || t == OUT || t == INOUT
}

func (t TokenType) IsPrecision() bool {
	return t == HIGH_PRECISION || t == MEDIUM_PRECISION || t == LOW_PRECISION
}

func (t TokenType) IsOperator() bool {
	return t >= INC_OP && t <= EQUAL
}

func (t TokenType) IsLiteral() bool {
	return t == INTCONSTANT || t == FLOATCONSTANT || t == TRUE || t == FALSE
}
