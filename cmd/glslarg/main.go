// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gopkg.in/yaml.v3"

	"glslarg"
	"glslarg/grammar"
	"glslarg/internal/errors"
	"glslarg/internal/parser"
	"glslarg/internal/shader"
	"glslarg/repl"
)

var log = commonlog.GetLogger("glslarg")

type options struct {
	format  string
	strict  bool
	verbose bool
	noColor bool
}

// fileReport is the structured output for one shader.
type fileReport struct {
	File        string                 `json:"file" yaml:"file"`
	Success     bool                   `json:"success" yaml:"success"`
	Args        shader.Args            `json:"args" yaml:"args"`
	Diagnostics []errors.CompilerError `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("glslarg", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	flags.BoolVar(&opts.strict, "strict", false, "cross-check every file against the reference grammar")
	flags.BoolVar(&opts.verbose, "v", false, "log every extracted parameter")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: glslarg [flags] <shader>...")
		fmt.Fprintln(stderr, "With no files an interactive session is started.")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	switch opts.format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", opts.format)
		return 2
	}

	if opts.noColor {
		color.NoColor = true
	}
	if opts.verbose {
		commonlog.Configure(2, nil)
	}

	if flags.NArg() == 0 {
		greet(stdout)
		repl.Start(stdin, stdout)
		return 0
	}

	return extract(flags.Args(), opts, stdout, stderr)
}

func greet(w io.Writer) {
	name := "there"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	fmt.Fprintf(w, "Welcome to the glslarg REPL, %s! Type :help for commands.\n", name)
}

func extract(paths []string, opts options, stdout, stderr io.Writer) int {
	startTime := time.Now()

	results, err := glslarg.ParseFiles(context.Background(), paths)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}

	failed := err != nil
	var reports []fileReport
	for i, result := range results {
		if result == nil {
			continue
		}
		shader.LogArgs(log, paths[i]+": ", result.Args)

		diagnostics := errors.FromResult(result)
		if opts.strict && result.Success {
			diagnostics = append(diagnostics, crossCheck(paths[i], result.Args, stderr)...)
		}

		report := fileReport{
			File:        paths[i],
			Success:     !hasErrors(diagnostics),
			Args:        result.Args,
			Diagnostics: diagnostics,
		}
		if !report.Success {
			failed = true
		}
		reports = append(reports, report)

		if opts.format == "text" {
			printText(stdout, report)
		}
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			fmt.Fprintf(stderr, "failed to encode report: %v\n", err)
			return 1
		}
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		err := enc.Encode(reports)
		if err == nil {
			err = enc.Close()
		}
		if err != nil {
			fmt.Fprintf(stderr, "failed to encode report: %v\n", err)
			return 1
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed {
		color.New(color.FgRed).Fprintf(stderr, "Extraction failed after %s\n", duration)
		return 1
	}
	color.New(color.FgGreen).Fprintf(stderr, "Successfully processed %d file(s) in %s\n", len(reports), duration)
	return 0
}

func printText(w io.Writer, report fileReport) {
	if len(report.Diagnostics) > 0 {
		source, _ := os.ReadFile(report.File)
		reporter := errors.NewErrorReporter(report.File, string(source))
		fmt.Fprint(w, reporter.FormatAll(report.Diagnostics))
	}
	if !report.Success {
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s\n", bold(report.File))
	if len(report.Args) == 0 {
		fmt.Fprintln(w, "  (no parameters)")
	}
	for _, arg := range report.Args {
		fmt.Fprintf(w, "  %-40s %d:%d\n", arg, arg.Line, arg.Column)
	}
}

// crossCheck parses path with the participle grammar and reports any
// disagreement with the hand-written parser as an error.
func crossCheck(path string, args shader.Args, stderr io.Writer) []errors.CompilerError {
	ast, err := grammar.ParseFile(path)
	if err == nil {
		var grammarArgs shader.Args
		grammarArgs, err = ast.ToArgs()
		if err == nil {
			if slices.Equal(args, grammarArgs) {
				return nil
			}
			return []errors.CompilerError{
				errors.NewDiagnostic(errors.ErrorGrammarMismatch,
					fmt.Sprintf("reference grammar extracted %d parameter(s), parser extracted %d", len(grammarArgs), len(args)),
					firstPosition(args)).Build(),
			}
		}
	}

	source, _ := os.ReadFile(path)
	grammar.ReportParseError(stderr, string(source), err)
	return []errors.CompilerError{
		errors.NewDiagnostic(errors.ErrorGrammarMismatch,
			fmt.Sprintf("reference grammar rejected the file: %v", err),
			firstPosition(args)).Build(),
	}
}

func hasErrors(diagnostics []errors.CompilerError) bool {
	for _, d := range diagnostics {
		if d.Level == errors.Error {
			return true
		}
	}
	return false
}

func firstPosition(args shader.Args) parser.Position {
	if len(args) == 0 {
		return parser.Position{Line: 1, Column: 1}
	}
	return parser.Position{Line: args[0].Line, Column: args[0].Column}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
