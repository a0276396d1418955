package parser

import (
	"fmt"
	"os"
)

// ParseSource scans and parses one shader source. Each call owns its own
// scanner, buffer and parser, so calls may run concurrently.
func ParseSource(path string, source string) *ParseResult {
	scanner := NewScanner(source)
	tokens := NewTokenBuffer(scanner)

	parser := NewParser(path, tokens)
	return parser.ParseShader()
}

// ParseFile reads path and parses it. Only I/O failures are returned as
// errors; problems in the source end up in the result.
func ParseFile(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return ParseSource(path, string(data)), nil
}
