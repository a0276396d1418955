package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"glslarg/internal/parser"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is a diagnostic ready for presentation: a code, a span and
// whatever advice can be offered for it.
type CompilerError struct {
	Level       ErrorLevel      `json:"level" yaml:"level"`
	Code        string          `json:"code" yaml:"code"`
	Message     string          `json:"message" yaml:"message"`
	Position    parser.Position `json:"position" yaml:"position"`
	Length      int             `json:"length" yaml:"length"`
	Suggestions []Suggestion    `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Notes       []string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	HelpText    string          `json:"help,omitempty" yaml:"help,omitempty"`
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s[%s]: %s at %s", e.Level, e.Code, e.Message, e.Position)
}

// Suggestion is a proposed fix. Replacement is empty when the fix cannot be
// expressed as a text edit.
type Suggestion struct {
	Message     string `json:"message" yaml:"message"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
}

// ErrorReporter renders diagnostics against the source they came from.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders one error in the style
//
//	error[E0110]: expected ';', found 'void'
//	    --> shader.vert:2:1
//	     │
//	   1 │ uniform vec4 color
//	   2 │ void main() {
//	     │ ^^^^
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	bar := dim("│")

	if err.Code != "" {
		fmt.Fprintf(&result, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&result, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	line := err.Position.Line
	width := lineNumberWidth(line + 1)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&result, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, line, err.Position.Column)
	fmt.Fprintf(&result, "%s %s\n", indent, bar)

	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(&result, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), bar, er.lines[line-2])
	}

	if line > 0 && line <= len(er.lines) {
		fmt.Fprintf(&result, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), bar, er.lines[line-1])
		fmt.Fprintf(&result, "%s %s %s\n", indent, bar, createMarker(err.Position.Column, err.Length, err.Level))
	}

	for i, suggestion := range err.Suggestions {
		cyan := color.New(color.FgCyan).SprintFunc()
		if i == 0 {
			fmt.Fprintf(&result, "%s %s %s\n", indent, cyan("help:"), suggestion.Message)
		} else {
			fmt.Fprintf(&result, "%s %s %s\n", indent, cyan("     "), suggestion.Message)
		}
		if suggestion.Replacement != "" {
			fmt.Fprintf(&result, "%s %s %s\n", indent, cyan("│"), cyan(suggestion.Replacement))
		}
	}

	for _, note := range err.Notes {
		blue := color.New(color.FgBlue).SprintFunc()
		fmt.Fprintf(&result, "%s %s %s %s\n", indent, bar, blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&result, "%s %s %s %s\n", indent, bar, green("help:"), err.HelpText)
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll renders every error followed by a summary line.
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var result strings.Builder
	var errorCount, warningCount int
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
		switch err.Level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if errorCount > 0 || warningCount > 0 {
		fmt.Fprintf(&result, "%s: %s\n", er.filename, summary(errorCount, warningCount))
	}
	return result.String()
}

func summary(errors, warnings int) string {
	var parts []string
	if errors > 0 {
		parts = append(parts, plural(errors, "error"))
	}
	if warnings > 0 {
		parts = append(parts, plural(warnings, "warning"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker underlines the error span with carets.
func createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := levelColor(level)
	if level == Note {
		markerColor = color.New(color.FgRed, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
