package glslarg_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslarg"
	"glslarg/internal/shader"
)

func writeShader(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestParse(t *testing.T) {
	result := glslarg.Parse("inline", "uniform sampler2D tex;\nattribute vec2 uv;\nvoid main(void) {")

	require.True(t, result.Success)
	assert.Equal(t, "inline", result.Filename)
	assert.Equal(t, []string{"tex", "uv"}, result.Args.Names())

	tex, ok := result.Args.Lookup("tex")
	require.True(t, ok)
	assert.Equal(t, shader.TypeSampler2D, tex.Type)
	assert.True(t, tex.IsUniform())
}

func TestParseFilesPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, name := range names {
		paths = append(paths, writeShader(t, dir, name+".vert", "uniform float "+name+";\nvoid main() {"))
	}

	results, err := glslarg.ParseFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(names))

	for i, result := range results {
		require.NotNil(t, result)
		assert.Equal(t, paths[i], result.Filename)
		assert.Equal(t, []string{names[i]}, result.Args.Names())
	}
}

func TestParseFilesReportsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeShader(t, dir, "good.frag", "varying vec3 normal;\nvoid main() {")
	missing := filepath.Join(dir, "missing.frag")

	results, err := glslarg.ParseFiles(context.Background(), []string{missing, good})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.frag")

	assert.Nil(t, results[0])
	require.NotNil(t, results[1])
	assert.True(t, results[1].Success)
}

func TestParseFilesParseErrorsAreNotFailures(t *testing.T) {
	path := writeShader(t, t.TempDir(), "broken.vert", "uniform vec4 color\n")

	results, err := glslarg.ParseFiles(context.Background(), []string{path})
	require.NoError(t, err)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Diagnostics())
}

func TestParseFilesCancelled(t *testing.T) {
	path := writeShader(t, t.TempDir(), "a.vert", "void main() {")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := glslarg.ParseFiles(ctx, []string{path})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results[0])
}
