// Package glslarg extracts the global parameter declarations of GLSL-ES
// shaders: everything declared before the 'void main()' entry signature.
package glslarg

import (
	"context"
	"errors"
	"sync"

	"glslarg/internal/parser"
	"glslarg/internal/shader"
)

type (
	Arg        = shader.Arg
	Args       = shader.Args
	Type       = shader.Type
	Result     = parser.ParseResult
	Diagnostic = parser.Diagnostic
)

// Parse extracts the parameters of an in-memory shader. name is only used
// to label the result.
func Parse(name, source string) *Result {
	return parser.ParseSource(name, source)
}

// ParseFile reads and parses one shader. Only I/O failures are returned as
// errors; parse problems are reported on the result.
func ParseFile(path string) (*Result, error) {
	return parser.ParseFile(path)
}

// ParseFiles parses every path concurrently. The results are in the order of
// paths; a file that could not be read, or was not started before ctx was
// cancelled, has a nil entry and contributes to the joined error.
func ParseFiles(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = parser.ParseFile(path)
		}()
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
