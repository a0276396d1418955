package lsp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"glslarg/internal/builtins"
	"glslarg/internal/parser"
	"glslarg/internal/shader"
)

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *GlslHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("semantic tokens for %s", params.TextDocument.URI)

	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.text, doc.result.Args)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

// TextDocumentDocumentSymbol lists the shader's parameters in declaration order.
func (h *GlslHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	symbols := []protocol.DocumentSymbol{}
	for _, arg := range doc.result.Args {
		kind := protocol.SymbolKindVariable
		if arg.Qualifier == shader.QualifierConst {
			kind = protocol.SymbolKindConstant
		}
		r := nameRange(arg)
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           arg.Name,
			Detail:         ptrString(arg.String()),
			Kind:           kind,
			Range:          r,
			SelectionRange: r,
		})
	}
	return symbols, nil
}

// TextDocumentHover describes the parameter or type keyword under the cursor.
func (h *GlslHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tok, ok := tokenAt(doc.text, params.Position)
	if !ok {
		return nil, nil
	}

	var content string
	switch {
	case tok.Type == parser.IDENTIFIER:
		if arg, found := doc.result.Args.Lookup(tok.Lexeme); found {
			content = describeArg(arg)
		} else if v, found := builtins.Lookup(tok.Lexeme); found {
			content = describeBuiltin(v)
		} else {
			return nil, nil
		}
	case tok.Type.IsType():
		t, found := shader.ParseType(tok.Lexeme)
		if !found {
			return nil, nil
		}
		content = describeType(t)
	default:
		return nil, nil
	}

	start := toProtocolPosition(tok.Position)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
		Range: &protocol.Range{
			Start: start,
			End:   protocol.Position{Line: start.Line, Character: start.Character + protocol.UInteger(len(tok.Lexeme))},
		},
	}, nil
}

// TextDocumentCompletion offers declaration keywords and the names already declared.
func (h *GlslHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := keywordCompletions()

	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err == nil {
		variable := protocol.CompletionItemKindVariable
		for _, arg := range doc.result.Args {
			items = append(items, protocol.CompletionItem{
				Label:  arg.Name,
				Kind:   &variable,
				Detail: ptrString(arg.String()),
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

func keywordCompletions() []protocol.CompletionItem {
	var words []string
	for word, tt := range parser.KEYWORDS {
		if tt.IsType() || tt.IsQualifier() || tt.IsDirection() || tt.IsPrecision() || tt == parser.PRECISION {
			words = append(words, word)
		}
	}
	sort.Strings(words)

	keyword := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(words))
	for _, word := range words {
		items = append(items, protocol.CompletionItem{Label: word, Kind: &keyword})
	}
	return items
}

func describeArg(arg shader.Arg) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```glsl\n%s\n```\n", arg)
	switch {
	case arg.IsUniform():
		b.WriteString("\nuniform parameter")
	case arg.IsAttribute():
		b.WriteString("\nvertex attribute")
	case arg.Qualifier == shader.QualifierNone:
		b.WriteString("\nglobal parameter")
	default:
		fmt.Fprintf(&b, "\n%s parameter", arg.Qualifier)
	}
	fmt.Fprintf(&b, ", declared at %d:%d", arg.Line, arg.Column)
	return b.String()
}

func describeBuiltin(v builtins.Variable) string {
	decl := fmt.Sprintf("%s %s", v.Type, v.Name)
	if v.Array {
		decl += "[]"
	}
	access := "read-write"
	if v.ReadOnly {
		access = "read-only"
	}
	return fmt.Sprintf("```glsl\n%s\n```\n\nbuilt-in %s, %s stage", decl, access, v.Stage)
}

func describeType(t shader.Type) string {
	switch {
	case t.IsSampler():
		return fmt.Sprintf("`%s`: sampler", t)
	case t.IsMatrix():
		return fmt.Sprintf("`%s`: matrix, %d components", t, t.Components())
	case t.IsVector():
		return fmt.Sprintf("`%s`: vector, %d components", t, t.Components())
	}
	return fmt.Sprintf("`%s`: scalar", t)
}

// tokenAt finds the default-channel token covering an LSP position.
func tokenAt(text string, pos protocol.Position) (parser.Token, bool) {
	line := int(pos.Line) + 1
	column := int(pos.Character) + 1
	for _, tok := range parser.NewScanner(text).ScanTokens() {
		if tok.Channel == parser.HiddenChannel || tok.Type == parser.EOF {
			continue
		}
		if tok.Position.Line > line {
			break
		}
		if tok.Position.Line == line && column >= tok.Position.Column && column < tok.End().Column {
			return tok, true
		}
	}
	return parser.Token{}, false
}

func nameRange(arg shader.Arg) protocol.Range {
	start := toProtocolPosition(parser.Position{Line: arg.Line, Column: arg.Column})
	return protocol.Range{
		Start: start,
		End:   protocol.Position{Line: start.Line, Character: start.Character + protocol.UInteger(len(arg.Name))},
	}
}
