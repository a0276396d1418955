package parser

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies a diagnostic.
type ErrorKind int

const (
	// LexicalError is an unrecognised character or unterminated comment.
	LexicalError ErrorKind = iota
	// SyntaxError is a token that does not match the expected set.
	SyntaxError
	// StructuralError is a missing entry signature or a declaration that is
	// ill-formed beyond a token mismatch.
	StructuralError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case StructuralError:
		return "structural error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Reason refines a diagnostic so consumers can tell errors of the same kind
// apart without matching message text.
type Reason int

const (
	NoReason Reason = iota
	MissingEntrySignature
	IncompleteEntrySignature
	VoidParameter
	InvalidArraySize
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "none"
	case MissingEntrySignature:
		return "missing entry signature"
	case IncompleteEntrySignature:
		return "incomplete entry signature"
	case VoidParameter:
		return "void parameter"
	case InvalidArraySize:
		return "invalid array size"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

type ParseError struct {
	Kind     ErrorKind
	Reason   Reason
	Message  string
	Position Position
	Found    Token
	Expected []TokenType
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// Diagnostic is the uniform view over scan and parse errors.
type Diagnostic struct {
	Kind     ErrorKind
	Reason   Reason
	Message  string
	Position Position
	Length   int
	Char     byte        // lexical errors only
	Found    *Token      // syntax and structural errors only
	Expected []TokenType // syntax errors only
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Position, d.Kind, d.Message)
}

// ExpectedText renders the expected set as "'a', 'b' or identifier".
func (d Diagnostic) ExpectedText() string {
	return describeSet(d.Expected)
}

func describeSet(set []TokenType) string {
	names := make([]string, 0, len(set))
	for _, tt := range set {
		names = append(names, tt.Describe())
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

func scanDiagnostic(e ScanError) Diagnostic {
	length := e.Length
	if length == 0 {
		length = 1
	}
	return Diagnostic{
		Kind:     LexicalError,
		Message:  e.Message,
		Position: e.Position,
		Length:   length,
		Char:     e.Char,
	}
}

func parseDiagnostic(e ParseError) Diagnostic {
	found := e.Found
	length := len(found.Lexeme)
	if length == 0 {
		length = 1
	}
	return Diagnostic{
		Kind:     e.Kind,
		Reason:   e.Reason,
		Message:  e.Message,
		Position: e.Position,
		Length:   length,
		Found:    &found,
		Expected: e.Expected,
	}
}

func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Position.Offset < diags[j].Position.Offset
	})
}
