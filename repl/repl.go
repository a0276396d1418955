// SPDX-License-Identifier: Apache-2.0

// Package repl reads shader declarations line by line and prints the
// parameters they declare.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"glslarg/internal/errors"
	"glslarg/internal/parser"
	"glslarg/internal/shader"
)

const PROMPT = ">> "

const entrySignature = "void main() {"

const help = `enter declarations such as 'uniform vec4 color;'
  :args    list the parameters declared so far
  :source  print the accumulated shader
  :reset   forget every declaration
  :quit    leave`

// session holds the declarations accepted so far. A line is only kept when
// the shader still parses with it appended.
type session struct {
	lines []string
	args  shader.Args
}

func (s *session) source(extra string) string {
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if extra != "" {
		b.WriteString(extra)
		b.WriteByte('\n')
	}
	b.WriteString(entrySignature)
	return b.String()
}

// Start runs the loop until in is exhausted or ':quit' is read.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	s := &session{}

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return
		case ":help":
			fmt.Fprintln(out, help)
			continue
		case ":reset":
			*s = session{}
			fmt.Fprintln(out, "session cleared")
			continue
		case ":source":
			fmt.Fprintln(out, s.source(""))
			continue
		case ":args":
			printArgs(out, s.args)
			continue
		}

		if mentionsMain(line) {
			fmt.Fprintln(out, "the entry signature is implied; enter declarations only")
			continue
		}

		s.eval(out, line)
	}
}

func (s *session) eval(out io.Writer, line string) {
	src := s.source(line)
	result := parser.ParseSource("<repl>", src)

	if !result.Success {
		reporter := errors.NewErrorReporter("<repl>", src)
		for _, err := range errors.FromResult(result) {
			fmt.Fprint(out, reporter.FormatError(err))
		}
		return
	}

	added := result.Args[len(s.args):]
	s.lines = append(s.lines, line)
	s.args = result.Args

	if len(added) == 0 {
		fmt.Fprintln(out, "ok")
		return
	}
	warnings := append(errors.DuplicateParameters(result.Args), errors.ReservedNames(result.Args)...)
	for _, warning := range warnings {
		if warning.Position.Line == len(s.lines) {
			fmt.Fprint(out, errors.NewErrorReporter("<repl>", src).FormatError(warning))
		}
	}
	printArgs(out, added)
}

func mentionsMain(line string) bool {
	for _, tok := range parser.NewScanner(line).ScanTokens() {
		if tok.Type == parser.IDENTIFIER && tok.Lexeme == "main" {
			return true
		}
	}
	return false
}

func printArgs(out io.Writer, args shader.Args) {
	if len(args) == 0 {
		fmt.Fprintln(out, "no parameters")
		return
	}
	for _, arg := range args {
		fmt.Fprintf(out, "%-40s %s\n", arg, role(arg))
	}
}

func role(arg shader.Arg) string {
	switch {
	case arg.IsUniform():
		return "uniform"
	case arg.IsAttribute():
		return "attribute"
	}
	return "-"
}
