package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var buildParser = sync.OnceValues(func() (*participle.Parser[Shader], error) {
	return participle.Build[Shader](
		participle.Lexer(GlslLexer),
		participle.Elide(elided...),
		participle.UseLookahead(16),
	)
})

// ParseString parses the declaration prefix of source. Everything after the
// entry signature's '{' is lexed but not parsed.
func ParseString(filename, source string) (*Shader, error) {
	parser, err := buildParser()
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return parser.ParseString(filename, source, participle.AllowTrailing(true))
}

func ParseFile(path string) (*Shader, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ReportParseError writes a caret-style description of err to w.
func ReportParseError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	var pe participle.Error
	if !errors.As(err, &pe) {
		red.Fprintf(w, "Unexpected error: %s\n", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		red.Fprintf(w, "Syntax error at unknown location: %s\n", err)
		return
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	red.Fprintf(w, "Syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column)
	fmt.Fprintln(w, line)
	color.New(color.FgHiRed).Fprintln(w, caret)
	fmt.Fprintf(w, "→ %s\n", pe.Message())
}
