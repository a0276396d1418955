package parser

import "fmt"

func (p *Parser) advance() Token {
	return p.tokens.Consume()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return tt == EOF
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of the given type. On a mismatch it records a
// syntax error and leaves the offending token in place for synchronize.
func (p *Parser) expect(tt TokenType) (Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	p.errorExpected(tt)
	return p.peek(), false
}

func (p *Parser) peek() Token {
	return p.tokens.LA(1)
}

func (p *Parser) peekNext() Token {
	return p.tokens.LA(2)
}

func (p *Parser) previous() Token {
	return p.tokens.Previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorExpected(expected ...TokenType) {
	found := p.peek()
	p.errors = append(p.errors, ParseError{
		Kind:     SyntaxError,
		Message:  fmt.Sprintf("expected %s, found %s", describeSet(expected), found),
		Position: found.Position,
		Found:    found,
		Expected: expected,
	})
}

// errorExpecting is errorExpected with a short name for a large expected set.
func (p *Parser) errorExpecting(what string, expected ...TokenType) {
	found := p.peek()
	p.errors = append(p.errors, ParseError{
		Kind:     SyntaxError,
		Message:  fmt.Sprintf("expected %s, found %s", what, found),
		Position: found.Position,
		Found:    found,
		Expected: expected,
	})
}

func (p *Parser) syntaxErrorAt(reason Reason, tok Token, message string) {
	p.errors = append(p.errors, ParseError{
		Kind:     SyntaxError,
		Reason:   reason,
		Message:  message,
		Position: tok.Position,
		Found:    tok,
	})
}

func (p *Parser) structuralError(reason Reason, tok Token, message string) {
	p.errors = append(p.errors, ParseError{
		Kind:     StructuralError,
		Reason:   reason,
		Message:  message,
		Position: tok.Position,
		Found:    tok,
	})
}

// atSyncPoint reports whether the parser is positioned where top-level
// parsing can resume without discarding anything.
func (p *Parser) atSyncPoint() bool {
	return p.isAtEnd() || p.check(LEFT_BRACE) || p.atEntrySignature()
}

// synchronize discards tokens up to and including the next ';'. It stops
// early, without consuming, in front of '{' or the entry signature.
func (p *Parser) synchronize() {
	for !p.atSyncPoint() {
		if p.advance().Type == SEMICOLON {
			return
		}
	}
}
