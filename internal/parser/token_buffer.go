package parser

import "fmt"

// maxLookahead bounds LA. The declaration grammar never needs to see further
// than "void main".
const maxLookahead = 2

// TokenBuffer pulls default-channel tokens from a Scanner on demand and keeps
// a small window for lookahead. Hidden tokens are counted and dropped.
type TokenBuffer struct {
	scanner  *Scanner
	window   [maxLookahead]Token
	size     int
	previous Token
	hidden   int
}

func NewTokenBuffer(scanner *Scanner) *TokenBuffer {
	return &TokenBuffer{scanner: scanner}
}

// LA returns the k-th upcoming token, 1-based. Past the end it keeps
// returning EOF.
func (b *TokenBuffer) LA(k int) Token {
	if k < 1 || k > maxLookahead {
		panic(fmt.Sprintf("parser: lookahead %d out of range [1, %d]", k, maxLookahead))
	}
	for b.size < k {
		b.window[b.size] = b.pull()
		b.size++
	}
	return b.window[k-1]
}

// Consume advances past the current token and returns it.
func (b *TokenBuffer) Consume() Token {
	tok := b.LA(1)
	if tok.Type == EOF {
		return tok
	}
	copy(b.window[:], b.window[1:b.size])
	b.size--
	b.previous = tok
	return tok
}

// Previous returns the most recently consumed token.
func (b *TokenBuffer) Previous() Token {
	return b.previous
}

// HiddenCount reports how many hidden-channel tokens have been skipped.
func (b *TokenBuffer) HiddenCount() int {
	return b.hidden
}

// Scanner exposes the underlying scanner, mainly for its errors.
func (b *TokenBuffer) Scanner() *Scanner {
	return b.scanner
}

func (b *TokenBuffer) pull() Token {
	for {
		tok := b.scanner.NextToken()
		if tok.Channel == HiddenChannel {
			b.hidden++
			continue
		}
		return tok
	}
}
