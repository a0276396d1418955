package parser

import "glslarg/internal/shader"

// ParseResult holds the descriptors of one parse and everything that went
// wrong while producing them.
type ParseResult struct {
	Filename    string
	Args        shader.Args
	ScanErrors  []ScanError
	ParseErrors []ParseError
	Success     bool
}

// Diagnostics merges scan and parse errors in source order.
func (pr *ParseResult) Diagnostics() []Diagnostic {
	diags := make([]Diagnostic, 0, len(pr.ScanErrors)+len(pr.ParseErrors))
	for _, e := range pr.ScanErrors {
		diags = append(diags, scanDiagnostic(e))
	}
	for _, e := range pr.ParseErrors {
		diags = append(diags, parseDiagnostic(e))
	}
	sortDiagnostics(diags)
	return diags
}

func (pr *ParseResult) HasErrors() bool {
	return len(pr.ScanErrors) > 0 || len(pr.ParseErrors) > 0
}

// ErrorCount returns the number of diagnostics without building them.
func (pr *ParseResult) ErrorCount() int {
	return len(pr.ScanErrors) + len(pr.ParseErrors)
}
