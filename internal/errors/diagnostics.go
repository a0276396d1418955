package errors

import (
	"fmt"
	"strings"

	"glslarg/internal/builtins"
	"glslarg/internal/parser"
	"glslarg/internal/shader"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

func NewDiagnostic(code, message string, pos parser.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func NewWarning(code, message string, pos parser.Position) *DiagnosticBuilder {
	b := NewDiagnostic(code, message, pos)
	b.err.Level = Warning
	return b
}

func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	if length > 0 {
		b.err.Length = length
	}
	return b
}

func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion that can be applied as a text edit
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// UnrecognizedCharacter creates an error for a character no token can start with
func UnrecognizedCharacter(c byte, pos parser.Position) CompilerError {
	b := NewDiagnostic(ErrorUnrecognizedCharacter, fmt.Sprintf("unrecognized character %q", c), pos)
	switch c {
	case '"', '\'':
		b = b.WithNote("GLSL ES has no string or character literals")
	case '\\':
		b = b.WithNote("line continuations are not supported outside preprocessor directives")
	}
	if c >= 0x80 {
		b = b.WithNote("identifiers are restricted to ASCII letters, digits and '_'")
	}
	return b.WithHelp("remove the character").Build()
}

func UnterminatedComment(pos parser.Position) CompilerError {
	return NewDiagnostic(ErrorUnterminatedComment, "unterminated block comment", pos).
		WithLength(2).
		WithReplacement("close the comment", "*/").
		WithNote("the rest of the file was treated as part of the comment").
		Build()
}

// UnexpectedToken creates a syntax error naming the offending token and the
// expected set. A misspelled type keyword gets a "did you mean" suggestion.
func UnexpectedToken(d parser.Diagnostic) CompilerError {
	b := NewDiagnostic(ErrorUnexpectedToken, d.Message, d.Position).WithLength(d.Length)

	if d.Found != nil && d.Found.Type == parser.IDENTIFIER && expectsType(d.Expected) {
		similar := findSimilarNames(d.Found.Lexeme, shader.TypeNames())
		switch len(similar) {
		case 0:
		case 1:
			b = b.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0])
		default:
			b = b.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
		}
	}

	if n := len(d.Expected); n > 0 && n <= 2 && d.Expected[n-1] == parser.SEMICOLON {
		b = b.WithHelp("every declaration must end with ';'")
	}
	return b.Build()
}

func InvalidArraySize(d parser.Diagnostic) CompilerError {
	return NewDiagnostic(ErrorInvalidArraySize, d.Message, d.Position).
		WithLength(d.Length).
		WithSuggestion("use a positive integer constant, or leave the brackets empty").
		Build()
}

func MissingEntrySignature(pos parser.Position) CompilerError {
	return NewDiagnostic(ErrorMissingEntrySignature, "missing entry signature 'void main()'", pos).
		WithReplacement("add the entry point", "void main() {").
		WithNote("declarations are only collected up to the entry signature").
		Build()
}

func IncompleteEntrySignature(d parser.Diagnostic) CompilerError {
	return NewDiagnostic(ErrorIncompleteEntrySignature, d.Message, d.Position).
		WithLength(d.Length).
		WithHelp("the entry signature must read 'void main()' or 'void main(void)' followed by '{'").
		Build()
}

func VoidParameter(d parser.Diagnostic) CompilerError {
	return NewDiagnostic(ErrorVoidParameter, d.Message, d.Position).
		WithLength(d.Length).
		WithSuggestion("declare the parameter with a value type such as 'float' or 'vec4'").
		WithNote("'void' is only valid as the return type of 'main'").
		Build()
}

// DuplicateParameters warns about every declaration whose name was already
// declared earlier in the same shader.
func DuplicateParameters(args shader.Args) []CompilerError {
	var warnings []CompilerError
	first := make(map[string]shader.Arg, len(args))
	for _, arg := range args {
		prev, seen := first[arg.Name]
		if !seen {
			first[arg.Name] = arg
			continue
		}
		pos := parser.Position{Line: arg.Line, Column: arg.Column}
		warnings = append(warnings, NewWarning(WarningDuplicateParameter,
			fmt.Sprintf("parameter '%s' is declared more than once", arg.Name), pos).
			WithLength(len(arg.Name)).
			WithNote(fmt.Sprintf("first declared at %d:%d", prev.Line, prev.Column)).
			Build())
	}
	return warnings
}

// ReservedNames warns about declarations whose name starts with 'gl_'.
func ReservedNames(args shader.Args) []CompilerError {
	var warnings []CompilerError
	for _, arg := range args {
		if !builtins.IsReserved(arg.Name) {
			continue
		}
		b := NewWarning(WarningReservedName,
			fmt.Sprintf("parameter '%s' uses the reserved prefix '%s'", arg.Name, builtins.ReservedPrefix),
			parser.Position{Line: arg.Line, Column: arg.Column}).
			WithLength(len(arg.Name))
		if _, ok := builtins.Lookup(arg.Name); ok {
			b = b.WithNote(fmt.Sprintf("'%s' is a built-in variable and is always available", arg.Name))
		} else {
			b = b.WithSuggestion(fmt.Sprintf("rename it, for example to '%s'", strings.TrimPrefix(arg.Name, builtins.ReservedPrefix)))
		}
		warnings = append(warnings, b.Build())
	}
	return warnings
}

// FromDiagnostic converts a parser diagnostic into its presentable form.
func FromDiagnostic(d parser.Diagnostic) CompilerError {
	switch d.Kind {
	case parser.LexicalError:
		if d.Char == 0 {
			return UnterminatedComment(d.Position)
		}
		return UnrecognizedCharacter(d.Char, d.Position)
	case parser.StructuralError:
		switch d.Reason {
		case parser.MissingEntrySignature:
			return MissingEntrySignature(d.Position)
		case parser.VoidParameter:
			return VoidParameter(d)
		default:
			return IncompleteEntrySignature(d)
		}
	}
	if d.Reason == parser.InvalidArraySize {
		return InvalidArraySize(d)
	}
	return UnexpectedToken(d)
}

// FromResult converts every diagnostic of a parse, in source order, and
// appends name warnings.
func FromResult(result *parser.ParseResult) []CompilerError {
	diags := result.Diagnostics()
	errs := make([]CompilerError, 0, len(diags))
	for _, d := range diags {
		errs = append(errs, FromDiagnostic(d))
	}
	errs = append(errs, DuplicateParameters(result.Args)...)
	return append(errs, ReservedNames(result.Args)...)
}

func expectsType(set []parser.TokenType) bool {
	for _, tt := range set {
		if tt.IsType() {
			return true
		}
	}
	return false
}

// findSimilarNames returns the candidates closest to target, provided they
// are within an edit distance of 2.
func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	best := 3
	for _, candidate := range candidates {
		d := levenshteinDistance(target, candidate)
		if d > 2 {
			continue
		}
		switch {
		case d < best:
			best = d
			similar = []string{candidate}
		case d == best:
			similar = append(similar, candidate)
		}
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
