package lsp

import (
	"strings"

	"glslarg/internal/builtins"
	"glslarg/internal/parser"
	"glslarg/internal/shader"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies every token of text. Parameter names are
// marked as declarations; uniform and const parameters are also readonly.
func collectSemanticTokens(text string, args shader.Args) []SemanticToken {
	declared := make(map[parser.Position]shader.Arg, len(args))
	for _, arg := range args {
		declared[parser.Position{Line: arg.Line, Column: arg.Column}] = arg
	}

	var tokens []SemanticToken
	for _, tok := range parser.NewScanner(text).ScanTokens() {
		tokenType, modifiers := classify(tok, declared)
		if tokenType == "" {
			continue
		}
		tokens = append(tokens, makeTokens(tok, tokenType, modifiers)...)
	}
	return tokens
}

func classify(tok parser.Token, declared map[parser.Position]shader.Arg) (string, int) {
	switch {
	case tok.Type == parser.COMMENT || tok.Type == parser.MULTILINE_COMMENT:
		return "comment", 0
	case tok.Type == parser.DIRECTIVE:
		return "macro", 0
	case tok.Type.IsType():
		return "type", 0
	case tok.Type == parser.INTCONSTANT || tok.Type == parser.FLOATCONSTANT:
		return "number", 0
	case tok.Type.IsKeyword():
		return "keyword", 0
	case tok.Type.IsOperator():
		return "operator", 0
	case tok.Type == parser.IDENTIFIER:
		if tok.Lexeme == "main" {
			return "function", 0
		}
		arg, ok := declared[parser.Position{Line: tok.Position.Line, Column: tok.Position.Column}]
		if !ok {
			if v, builtin := builtins.Lookup(tok.Lexeme); builtin {
				modifiers := modifierBit("defaultLibrary")
				if v.ReadOnly {
					modifiers |= modifierBit("readonly")
				}
				return "variable", modifiers
			}
			return "variable", 0
		}
		modifiers := modifierBit("declaration")
		if arg.Qualifier == shader.QualifierUniform || arg.Qualifier == shader.QualifierConst {
			modifiers |= modifierBit("readonly")
		}
		return "variable", modifiers
	}
	return "", 0
}

// makeTokens emits one entry per source line the token covers, since
// clients are not required to support multi-line tokens.
func makeTokens(tok parser.Token, tokenType string, modifiers int) []SemanticToken {
	var tokens []SemanticToken
	line := uint32(tok.Position.Line - 1)
	start := uint32(tok.Position.Column - 1)
	for _, segment := range strings.Split(tok.Lexeme, "\n") {
		segment = strings.TrimSuffix(segment, "\r")
		if segment != "" {
			tokens = append(tokens, SemanticToken{
				Line:           line,
				StartChar:      start,
				Length:         uint32(len(segment)),
				TokenType:      indexOf(tokenType, SemanticTokenTypes),
				TokenModifiers: modifiers,
			})
		}
		line++
		start = 0
	}
	return tokens
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line,
// delta-start, length, type, modifiers).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

func modifierBit(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
