package parser

import "fmt"

type Scanner struct {
	source      string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	errors      []ScanError
}

type ScanError struct {
	Char     byte     // offending character, 0 when the error is not about a single character
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Errors returns the lexical errors reported so far.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

// ScanTokens drains the scanner, hidden tokens included. The final token is EOF.
func (s *Scanner) ScanTokens() []Token {
	var tokens []Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// NextToken returns the next token of either channel. Unrecognised characters
// are reported and skipped, so every call either consumes input or returns EOF.
func (s *Scanner) NextToken() Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		if tok, ok := s.scanToken(); ok {
			return tok
		}
	}
	return Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}}
}

func (s *Scanner) scanToken() (Token, bool) {
	c := s.advance()
	switch c {
	case '(':
		return s.makeToken(LEFT_PAREN), true
	case ')':
		return s.makeToken(RIGHT_PAREN), true
	case '[':
		return s.makeToken(LEFT_BRACKET), true
	case ']':
		return s.makeToken(RIGHT_BRACKET), true
	case '{':
		return s.makeToken(LEFT_BRACE), true
	case '}':
		return s.makeToken(RIGHT_BRACE), true
	case ',':
		return s.makeToken(COMMA), true
	case ';':
		return s.makeToken(SEMICOLON), true
	case ':':
		return s.makeToken(COLON), true
	case '~':
		return s.makeToken(TILDE), true
	case '?':
		return s.makeToken(QUESTION), true

	// Operators with potential multi-character variants
	case '+':
		return s.scanRepeatOrAssign('+', INC_OP, ADD_ASSIGN, PLUS), true
	case '-':
		return s.scanRepeatOrAssign('-', DEC_OP, SUB_ASSIGN, DASH), true
	case '&':
		return s.scanRepeatOrAssign('&', AND_OP, AND_ASSIGN, AMPERSAND), true
	case '|':
		return s.scanRepeatOrAssign('|', OR_OP, OR_ASSIGN, VERTICAL_BAR), true
	case '^':
		return s.scanRepeatOrAssign('^', XOR_OP, XOR_ASSIGN, CARET), true
	case '*':
		return s.scanAssign(MUL_ASSIGN, STAR), true
	case '%':
		return s.scanAssign(MOD_ASSIGN, PERCENT), true
	case '=':
		return s.scanAssign(EQ_OP, EQUAL), true
	case '!':
		return s.scanAssign(NE_OP, BANG), true
	case '<':
		return s.scanShiftOperator('<', LEFT_ASSIGN, LEFT_OP, LE_OP, LEFT_ANGLE), true
	case '>':
		return s.scanShiftOperator('>', RIGHT_ASSIGN, RIGHT_OP, GE_OP, RIGHT_ANGLE), true
	case '/':
		return s.scanSlashOperator(), true
	case '.':
		if isDigit(s.peek()) {
			return s.scanFraction(), true
		}
		return s.makeToken(DOT), true

	case ' ', '\t', '\r', '\n', '\f', '\v':
		return s.scanWhitespace(), true
	case '#':
		return s.scanDirective(), true

	default:
		return s.scanDefault(c)
	}
}

// Operator scanning methods

// scanRepeatOrAssign handles the families "x", "xx" and "x=".
func (s *Scanner) scanRepeatOrAssign(c byte, double, assign, single TokenType) Token {
	if s.matchNext(c) {
		return s.makeToken(double)
	}
	if s.matchNext('=') {
		return s.makeToken(assign)
	}
	return s.makeToken(single)
}

func (s *Scanner) scanAssign(assign, single TokenType) Token {
	if s.matchNext('=') {
		return s.makeToken(assign)
	}
	return s.makeToken(single)
}

// scanShiftOperator handles "<", "<=", "<<" and "<<=" (and the '>' mirror).
func (s *Scanner) scanShiftOperator(c byte, shiftAssign, shift, cmp, single TokenType) Token {
	if s.matchNext(c) {
		if s.matchNext('=') {
			return s.makeToken(shiftAssign)
		}
		return s.makeToken(shift)
	}
	if s.matchNext('=') {
		return s.makeToken(cmp)
	}
	return s.makeToken(single)
}

func (s *Scanner) scanSlashOperator() Token {
	if s.matchNext('=') {
		return s.makeToken(DIV_ASSIGN)
	} else if s.matchNext('/') {
		return s.scanSingleLineComment()
	} else if s.matchNext('*') {
		return s.scanBlockComment()
	}
	return s.makeToken(SLASH)
}

func (s *Scanner) scanDefault(c byte) (Token, bool) {
	if isDigit(c) {
		return s.scanNumber(), true
	} else if isAlpha(c) {
		return s.scanIdentifier(), true
	}
	s.reportError(c, fmt.Sprintf("unrecognized character %q", c))
	return Token{}, false
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) makeToken(tokenType TokenType) Token {
	channel := DefaultChannel
	switch tokenType {
	case WHITESPACE, COMMENT, MULTILINE_COMMENT, DIRECTIVE:
		channel = HiddenChannel
	}
	return Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
		Channel: channel,
	}
}

func (s *Scanner) reportError(c byte, message string) {
	s.errors = append(s.errors, ScanError{
		Char:     c,
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}

func (s *Scanner) scanWhitespace() Token {
	for isWhitespace(s.peek()) {
		s.advance()
	}
	return s.makeToken(WHITESPACE)
}

// scanIdentifier consumes the longest identifier, so a keyword only wins when
// no identifier character follows it.
func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(lookupIdentifier(s.source[s.start:s.current]))
}

// scanNumber is entered after the first digit. A '.' anywhere after the digit
// run turns the literal into a float; otherwise the leading digit picks the
// integer form.
func (s *Scanner) scanNumber() Token {
	first := s.source[s.start]
	if first == '0' && (s.peek() == 'x' || s.peek() == 'X') && isHexDigit(s.peekNext()) {
		s.advance() // x
		for isHexDigit(s.peek()) {
			s.advance()
		}
		return s.makeToken(INTCONSTANT)
	}

	// Look ahead over the whole digit run before committing to octal, since
	// "017.5" is a float.
	end := s.current
	for end < len(s.source) && isDigit(s.source[end]) {
		end++
	}
	if end < len(s.source) && s.source[end] == '.' {
		for s.current < end {
			s.advance()
		}
		s.advance() // .
		return s.scanFraction()
	}

	if first == '0' {
		for isOctalDigit(s.peek()) {
			s.advance()
		}
		return s.makeToken(INTCONSTANT)
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(INTCONSTANT)
}

// scanFraction is entered just after the '.' of a float literal.
func (s *Scanner) scanFraction() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	s.scanExponent()
	return s.makeToken(FLOATCONSTANT)
}

// scanExponent only consumes the exponent when at least one digit follows,
// which needs up to two characters of lookahead past the 'e'.
func (s *Scanner) scanExponent() {
	if s.peek() != 'e' && s.peek() != 'E' {
		return
	}
	next := s.peekNext()
	if isDigit(next) {
		s.advance()
	} else if (next == '+' || next == '-') && s.current+2 < len(s.source) && isDigit(s.source[s.current+2]) {
		s.advance()
		s.advance()
	} else {
		return
	}
	for isDigit(s.peek()) {
		s.advance()
	}
}

func (s *Scanner) scanSingleLineComment() Token {
	for s.peek() != '\n' && s.peek() != '\r' && !s.isAtEnd() {
		s.advance()
	}
	return s.makeToken(COMMENT)
}

func (s *Scanner) scanBlockComment() Token {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return s.makeToken(MULTILINE_COMMENT)
		}
		s.advance()
	}

	s.errors = append(s.errors, ScanError{
		Message:  "unterminated block comment",
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   2,
	})
	return s.makeToken(MULTILINE_COMMENT)
}

// scanDirective swallows a preprocessor line. Directives carry no meaning for
// declaration extraction.
func (s *Scanner) scanDirective() Token {
	for s.peek() != '\n' && s.peek() != '\r' && !s.isAtEnd() {
		s.advance()
	}
	return s.makeToken(DIRECTIVE)
}
