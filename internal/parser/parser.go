package parser

import (
	"fmt"
	"strconv"

	"glslarg/internal/shader"
)

// entryName is the identifier that turns a leading 'void' into the entry
// signature. It is only reserved at top level directly after 'void'.
const entryName = "main"

// Parser recognises the global declaration prefix of a shader. It stops at
// the first entry signature and never looks at function bodies.
type Parser struct {
	filename string
	tokens   *TokenBuffer
	errors   []ParseError
	args     shader.Args
	done     bool
}

func NewParser(filename string, tokens *TokenBuffer) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseShader runs the parser to completion. The returned result always
// carries the descriptors recognised so far, even when errors were recorded.
func (p *Parser) ParseShader() *ParseResult {
	for !p.done {
		tok := p.peek()
		switch {
		case p.atEntrySignature():
			p.parseEntrySignature()
			p.done = true
		case tok.Type == PRECISION:
			if !p.parsePrecisionStatement() {
				p.synchronize()
			}
		case startsParameter(tok.Type):
			if !p.parseParameter() {
				p.synchronize()
			}
		case tok.Type == LEFT_BRACE:
			p.structuralError(IncompleteEntrySignature, tok,
				"block opened without an entry signature 'void main()'")
			p.advance()
			p.done = true
		case tok.Type == EOF:
			p.structuralError(MissingEntrySignature, tok,
				"missing entry signature 'void main()'")
			p.done = true
		default:
			p.errorExpecting("declaration or entry signature", declarationStart...)
			p.synchronize()
		}
	}

	scanErrors := p.tokens.Scanner().Errors()
	return &ParseResult{
		Filename:    p.filename,
		Args:        p.args,
		ScanErrors:  scanErrors,
		ParseErrors: p.errors,
		Success:     len(scanErrors) == 0 && len(p.errors) == 0,
	}
}

// Errors returns the parse errors recorded so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// declarationStart is the expected set reported when a top-level token can
// start neither a declaration nor the entry signature.
var declarationStart = []TokenType{
	CONST, ATTRIBUTE, VARYING, INVARIANT, UNIFORM, IN, OUT, INOUT, PRECISION, VOID,
}

func startsParameter(tt TokenType) bool {
	return tt.IsQualifier() || tt.IsDirection() || tt.IsPrecision() || tt.IsType()
}

// atEntrySignature decides between 'void' as a declaration type and 'void'
// opening the entry signature. Two tokens of lookahead settle it.
func (p *Parser) atEntrySignature() bool {
	if p.peek().Type != VOID {
		return false
	}
	next := p.peekNext()
	return next.Type == IDENTIFIER && next.Lexeme == entryName
}

// parseParameter parses
//
//	qualifier? direction? precision? type IDENTIFIER ('[' INTCONSTANT? ']')? ';'
//
// and reports whether the declaration was well formed up to its ';'.
func (p *Parser) parseParameter() bool {
	qualifier, ok := p.parseQualifier()
	if !ok {
		return false
	}
	direction := p.parseDirection()
	precision := p.parsePrecision()

	typeTok := p.peek()
	if !typeTok.Type.IsType() {
		p.errorExpecting("type", typeKeywords()...)
		return false
	}
	p.advance()

	nameTok, ok := p.expect(IDENTIFIER)
	if !ok {
		return false
	}

	arg := shader.Arg{
		Name:      nameTok.Lexeme,
		Type:      typeFromToken[typeTok.Type],
		Qualifier: qualifier,
		Direction: direction,
		Precision: precision,
		Line:      nameTok.Position.Line,
		Column:    nameTok.Position.Column,
	}

	if p.match(LEFT_BRACKET) {
		arg.Array = true
		if p.check(INTCONSTANT) {
			size := p.advance()
			n, err := strconv.ParseInt(size.Lexeme, 0, 32)
			if err != nil || n <= 0 {
				p.syntaxErrorAt(InvalidArraySize, size, fmt.Sprintf("invalid array size %s", size.Lexeme))
				return false
			}
			arg.ArrayLen = int(n)
		}
		if _, ok := p.expect(RIGHT_BRACKET); !ok {
			return false
		}
	}

	if !p.check(SEMICOLON) {
		if arg.Array {
			p.errorExpected(SEMICOLON)
		} else {
			p.errorExpected(LEFT_BRACKET, SEMICOLON)
		}
		return false
	}
	p.advance()

	if typeTok.Type == VOID {
		p.structuralError(VoidParameter, typeTok,
			fmt.Sprintf("parameter '%s' cannot have type 'void'", arg.Name))
		return true
	}

	p.args = append(p.args, arg)
	return true
}

func (p *Parser) parseQualifier() (shader.Qualifier, bool) {
	switch p.peek().Type {
	case CONST:
		p.advance()
		return shader.QualifierConst, true
	case ATTRIBUTE:
		p.advance()
		return shader.QualifierAttribute, true
	case VARYING:
		p.advance()
		return shader.QualifierVarying, true
	case UNIFORM:
		p.advance()
		return shader.QualifierUniform, true
	case INVARIANT:
		p.advance()
		if _, ok := p.expect(VARYING); !ok {
			return shader.QualifierNone, false
		}
		return shader.QualifierInvariantVarying, true
	}
	return shader.QualifierNone, true
}

func (p *Parser) parseDirection() shader.Direction {
	switch {
	case p.match(IN):
		return shader.DirectionIn
	case p.match(OUT):
		return shader.DirectionOut
	case p.match(INOUT):
		return shader.DirectionInOut
	}
	return shader.DirectionNone
}

func (p *Parser) parsePrecision() shader.Precision {
	switch {
	case p.match(HIGH_PRECISION):
		return shader.PrecisionHigh
	case p.match(MEDIUM_PRECISION):
		return shader.PrecisionMedium
	case p.match(LOW_PRECISION):
		return shader.PrecisionLow
	}
	return shader.PrecisionNone
}

// parsePrecisionStatement skips a default precision statement such as
// "precision mediump float;". It produces no descriptor.
func (p *Parser) parsePrecisionStatement() bool {
	p.advance()
	if !p.peek().Type.IsPrecision() {
		p.errorExpected(HIGH_PRECISION, MEDIUM_PRECISION, LOW_PRECISION)
		return false
	}
	p.advance()
	if !p.peek().Type.IsType() {
		p.errorExpecting("type", typeKeywords()...)
		return false
	}
	p.advance()
	_, ok := p.expect(SEMICOLON)
	return ok
}

// parseEntrySignature consumes "void main ( void? ) {". On a mismatch the
// rest of the signature is skipped up to and including the next '{'.
func (p *Parser) parseEntrySignature() {
	p.advance() // void
	p.advance() // main

	if !p.match(LEFT_PAREN) {
		p.skipEntrySignature(LEFT_PAREN)
		return
	}
	if p.match(VOID) {
		if !p.match(RIGHT_PAREN) {
			p.skipEntrySignature(RIGHT_PAREN)
			return
		}
	} else if !p.match(RIGHT_PAREN) {
		p.skipEntrySignature(VOID, RIGHT_PAREN)
		return
	}
	if !p.match(LEFT_BRACE) {
		p.skipEntrySignature(LEFT_BRACE)
	}
}

func (p *Parser) skipEntrySignature(expected ...TokenType) {
	found := p.peek()
	p.errors = append(p.errors, ParseError{
		Kind:     StructuralError,
		Reason:   IncompleteEntrySignature,
		Message:  fmt.Sprintf("incomplete entry signature: expected %s, found %s", describeSet(expected), found),
		Position: found.Position,
		Found:    found,
		Expected: expected,
	})
	for !p.isAtEnd() {
		if p.advance().Type == LEFT_BRACE {
			return
		}
	}
}

var typeFromToken = map[TokenType]shader.Type{
	VOID:           shader.TypeVoid,
	FLOAT:          shader.TypeFloat,
	INT:            shader.TypeInt,
	BOOL:           shader.TypeBool,
	VEC2:           shader.TypeVec2,
	VEC3:           shader.TypeVec3,
	VEC4:           shader.TypeVec4,
	BVEC2:          shader.TypeBVec2,
	BVEC3:          shader.TypeBVec3,
	BVEC4:          shader.TypeBVec4,
	IVEC2:          shader.TypeIVec2,
	IVEC3:          shader.TypeIVec3,
	IVEC4:          shader.TypeIVec4,
	MAT2:           shader.TypeMat2,
	MAT3:           shader.TypeMat3,
	MAT4:           shader.TypeMat4,
	SAMPLER1D:      shader.TypeSampler1D,
	ISAMPLER1D:     shader.TypeISampler1D,
	USAMPLER1D:     shader.TypeUSampler1D,
	SAMPLER2D:      shader.TypeSampler2D,
	ISAMPLER2D:     shader.TypeISampler2D,
	USAMPLER2D:     shader.TypeUSampler2D,
	SAMPLERCUBE:    shader.TypeSamplerCube,
	SAMPLER1DARRAY: shader.TypeSampler1DArray,
	SAMPLER2DARRAY: shader.TypeSampler2DArray,
}

func typeKeywords() []TokenType {
	types := make([]TokenType, 0, SAMPLER2DARRAY-VOID+1)
	for tt := VOID; tt <= SAMPLER2DARRAY; tt++ {
		types = append(types, tt)
	}
	return types
}
