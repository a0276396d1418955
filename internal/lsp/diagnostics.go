package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"glslarg/internal/errors"
	"glslarg/internal/parser"
)

const diagnosticSource = "glslarg"

// ConvertResult transforms every lexical, syntax and structural error of a
// parse, plus duplicate-name warnings, into LSP diagnostics.
func ConvertResult(result *parser.ParseResult) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if result == nil {
		return diagnostics
	}

	for _, err := range errors.FromResult(result) {
		diagnostics = append(diagnostics, ConvertCompilerError(err))
	}
	return diagnostics
}

// ConvertCompilerError maps a single reported error onto the wire form.
// Suggestions and notes are folded into the message since most clients
// show nothing else.
func ConvertCompilerError(err errors.CompilerError) protocol.Diagnostic {
	length := err.Length
	if length <= 0 {
		length = 1
	}

	message := err.Message
	for _, s := range err.Suggestions {
		message += "\nhelp: " + s.Message
	}
	for _, note := range err.Notes {
		message += "\nnote: " + note
	}
	if err.HelpText != "" {
		message += "\nhelp: " + err.HelpText
	}

	severity := protocol.DiagnosticSeverityError
	if err.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	start := toProtocolPosition(err.Position)
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: start,
			End: protocol.Position{
				Line:      start.Line,
				Character: start.Character + protocol.UInteger(length),
			},
		},
		Severity: ptrSeverity(severity),
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
}

// toProtocolPosition converts 1-based line and column to LSP's 0-based form.
func toProtocolPosition(pos parser.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(max(pos.Line-1, 0)),
		Character: protocol.UInteger(max(pos.Column-1, 0)),
	}
}
