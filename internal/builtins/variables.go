// Package builtins lists the variables GLSL ES 1.00 provides to every shader.
package builtins

import (
	"strings"

	"glslarg/internal/shader"
)

// Stage is the shader stage a built-in belongs to.
type Stage string

const (
	Vertex   Stage = "vertex"
	Fragment Stage = "fragment"
	Any      Stage = "any"
)

// Variable is a built-in that shaders use without declaring it.
type Variable struct {
	Name     string
	Type     shader.Type
	Stage    Stage
	ReadOnly bool
	Array    bool
}

// ReservedPrefix starts every built-in name; user declarations may not use it.
const ReservedPrefix = "gl_"

var variables = map[string]Variable{
	// Vertex outputs
	"gl_Position":  {Name: "gl_Position", Type: shader.TypeVec4, Stage: Vertex},
	"gl_PointSize": {Name: "gl_PointSize", Type: shader.TypeFloat, Stage: Vertex},

	// Fragment inputs
	"gl_FragCoord":   {Name: "gl_FragCoord", Type: shader.TypeVec4, Stage: Fragment, ReadOnly: true},
	"gl_FrontFacing": {Name: "gl_FrontFacing", Type: shader.TypeBool, Stage: Fragment, ReadOnly: true},
	"gl_PointCoord":  {Name: "gl_PointCoord", Type: shader.TypeVec2, Stage: Fragment, ReadOnly: true},

	// Fragment outputs
	"gl_FragColor": {Name: "gl_FragColor", Type: shader.TypeVec4, Stage: Fragment},
	"gl_FragData":  {Name: "gl_FragData", Type: shader.TypeVec4, Stage: Fragment, Array: true},

	// Implementation constants
	"gl_MaxVertexAttribs":             {Name: "gl_MaxVertexAttribs", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxVertexUniformVectors":      {Name: "gl_MaxVertexUniformVectors", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxVaryingVectors":            {Name: "gl_MaxVaryingVectors", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxVertexTextureImageUnits":   {Name: "gl_MaxVertexTextureImageUnits", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxCombinedTextureImageUnits": {Name: "gl_MaxCombinedTextureImageUnits", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxTextureImageUnits":         {Name: "gl_MaxTextureImageUnits", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxFragmentUniformVectors":    {Name: "gl_MaxFragmentUniformVectors", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
	"gl_MaxDrawBuffers":               {Name: "gl_MaxDrawBuffers", Type: shader.TypeInt, Stage: Any, ReadOnly: true},
}

// Lookup returns the built-in variable with the given name.
func Lookup(name string) (Variable, bool) {
	v, ok := variables[name]
	return v, ok
}

// IsReserved reports whether name may not be used for a declaration.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}

// Names returns every built-in variable name.
func Names() []string {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	return names
}
