package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslarg/internal/parser"
)

func convert(t *testing.T, source string) []CompilerError {
	t.Helper()
	return FromResult(parser.ParseSource("test.glsl", source))
}

func TestFromDiagnosticCodes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   string
	}{
		{"unrecognized character", "uniform float a;@\nvoid main() {", ErrorUnrecognizedCharacter},
		{"unterminated comment", "uniform float a; /* open", ErrorUnterminatedComment},
		{"unexpected token", "uniform float = 1;\nvoid main() {", ErrorUnexpectedToken},
		{"array size", "uniform float a[0];\nvoid main() {", ErrorInvalidArraySize},
		{"missing entry", "uniform float a;", ErrorMissingEntrySignature},
		{"incomplete entry", "void main(int x) {", ErrorIncompleteEntrySignature},
		{"block without entry", "{", ErrorIncompleteEntrySignature},
		{"void parameter", "void nothing;\nvoid main() {", ErrorVoidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := convert(t, tt.source)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, Error, errs[0].Level)
			assert.NotEqual(t, "Unknown error", GetErrorDescription(errs[0].Code))
		})
	}
}

func TestUnexpectedTokenSuggestions(t *testing.T) {
	errs := convert(t, "uniform sampler2d tex;\nvoid main() {")
	require.Len(t, errs, 1)
	require.Len(t, errs[0].Suggestions, 1)
	assert.Equal(t, "did you mean 'sampler2D'?", errs[0].Suggestions[0].Message)
	assert.Equal(t, "sampler2D", errs[0].Suggestions[0].Replacement)
	assert.Equal(t, len("sampler2d"), errs[0].Length)

	errs = convert(t, "uniform completelyWrong tex;\nvoid main() {")
	require.Len(t, errs, 1)
	assert.Empty(t, errs[0].Suggestions)
}

func TestMissingSemicolonHelp(t *testing.T) {
	errs := convert(t, "uniform float a\nvoid main() {")
	require.Len(t, errs, 1)
	assert.Equal(t, "every declaration must end with ';'", errs[0].HelpText)
}

func TestUnrecognizedCharacterNotes(t *testing.T) {
	err := UnrecognizedCharacter('"', parser.Position{Line: 1, Column: 1})
	require.Len(t, err.Notes, 1)
	assert.Contains(t, err.Notes[0], "string")
	assert.Equal(t, `unrecognized character '"'`, err.Message)

	err = UnrecognizedCharacter(0xC3, parser.Position{Line: 1, Column: 1})
	require.Len(t, err.Notes, 1)
	assert.Contains(t, err.Notes[0], "ASCII")
}

func TestDuplicateParameters(t *testing.T) {
	errs := convert(t, "uniform float a;\nvarying vec2 b;\nattribute vec3 a;\nuniform int a;\nvoid main() {")

	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.Equal(t, Warning, err.Level)
		assert.Equal(t, WarningDuplicateParameter, err.Code)
		assert.Equal(t, []string{"first declared at 1:15"}, err.Notes)
	}
	assert.Equal(t, 3, errs[0].Position.Line)
	assert.Equal(t, 4, errs[1].Position.Line)
}

func TestReservedNames(t *testing.T) {
	errs := convert(t, "uniform vec4 gl_Position;\nuniform float gl_time;\nuniform float glow;\nvoid main() {")

	require.Len(t, errs, 2)
	assert.Equal(t, WarningReservedName, errs[0].Code)
	assert.Equal(t, Warning, errs[0].Level)
	assert.Equal(t, "parameter 'gl_Position' uses the reserved prefix 'gl_'", errs[0].Message)
	assert.Equal(t, []string{"'gl_Position' is a built-in variable and is always available"}, errs[0].Notes)
	assert.Equal(t, 11, errs[0].Length)

	assert.Equal(t, 2, errs[1].Position.Line)
	require.Len(t, errs[1].Suggestions, 1)
	assert.Equal(t, "rename it, for example to 'time'", errs[1].Suggestions[0].Message)
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Lexical", GetErrorCategory(ErrorUnterminatedComment))
	assert.Equal(t, "Syntax", GetErrorCategory(ErrorInvalidArraySize))
	assert.Equal(t, "Structural", GetErrorCategory(ErrorVoidParameter))
	assert.Equal(t, "Warning", GetErrorCategory(WarningDuplicateParameter))
	assert.Equal(t, "Warning", GetErrorCategory(WarningReservedName))
	assert.Equal(t, "Cross-check", GetErrorCategory(ErrorGrammarMismatch))
	assert.Equal(t, "Unknown", GetErrorCategory("E9999"))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("vec3", "vec3"))
	assert.Equal(t, 1, levenshteinDistance("vec3", "vec4"))
	assert.Equal(t, 1, levenshteinDistance("vec3", "bvec3"))
	assert.Equal(t, 4, levenshteinDistance("mat4", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"vec2", "vec3", "vec4", "bvec3", "mat3"}

	assert.Equal(t, []string{"vec3"}, findSimilarNames("vex3", candidates))
	assert.Equal(t, []string{"vec2", "vec3", "vec4"}, findSimilarNames("vec", candidates))
	assert.Empty(t, findSimilarNames("sampler", candidates))
}
