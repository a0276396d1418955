package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Shader is the declaration prefix of a shader: global declarations up to
// and including the opening brace of main.
type Shader struct {
	Pos   lexer.Position
	Items []*Item `@@*`
	Entry *Entry  `@@`
}

type Item struct {
	Precision *PrecisionStmt `  @@`
	Param     *Param         `| @@`
}

// PrecisionStmt is a default precision statement, "precision mediump float;".
type PrecisionStmt struct {
	Pos       lexer.Position
	Precision string `"precision" @("highp" | "mediump" | "lowp")`
	Type      string `@Ident ";"`
}

type Param struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Qualifier *Qualifier   `@@?`
	Direction string       `@("inout" | "in" | "out")?`
	Precision string       `@("highp" | "mediump" | "lowp")?`
	Type      string       `@("void" | "float" | "int" | "bool" | "vec2" | "vec3" | "vec4" | "bvec2" | "bvec3" | "bvec4" | "ivec2" | "ivec3" | "ivec4" | "mat2" | "mat3" | "mat4" | "sampler1D" | "isampler1D" | "usampler1D" | "sampler2D" | "isampler2D" | "usampler2D" | "samplerCube" | "sampler1DArray" | "sampler2DArray")`
	Name      *Name        `@@`
	Array     *ArraySuffix `@@? ";"`
}

type Qualifier struct {
	Invariant bool   `  @"invariant" "varying"`
	Name      string `| @("const" | "attribute" | "varying" | "uniform")`
}

type Name struct {
	Pos   lexer.Position
	Value string `@Ident`
}

type ArraySuffix struct {
	Size string `"[" @Int? "]"`
}

// Entry is "void main ( void? ) {".
type Entry struct {
	Pos      lexer.Position
	VoidArgs bool `"void" "main" "(" @"void"? ")" "{"`
}
