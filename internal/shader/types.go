package shader

import "fmt"

// Type is a GLSL-ES base type. Sampler variants cover 1D/2D/cube/array and
// the signed and unsigned integer forms.
type Type int

const (
	TypeInvalid Type = iota
	TypeVoid
	TypeFloat
	TypeInt
	TypeBool
	TypeVec2
	TypeVec3
	TypeVec4
	TypeBVec2
	TypeBVec3
	TypeBVec4
	TypeIVec2
	TypeIVec3
	TypeIVec4
	TypeMat2
	TypeMat3
	TypeMat4
	TypeSampler1D
	TypeISampler1D
	TypeUSampler1D
	TypeSampler2D
	TypeISampler2D
	TypeUSampler2D
	TypeSamplerCube
	TypeSampler1DArray
	TypeSampler2DArray
)

var typeNames = [...]string{
	TypeInvalid:        "invalid",
	TypeVoid:           "void",
	TypeFloat:          "float",
	TypeInt:            "int",
	TypeBool:           "bool",
	TypeVec2:           "vec2",
	TypeVec3:           "vec3",
	TypeVec4:           "vec4",
	TypeBVec2:          "bvec2",
	TypeBVec3:          "bvec3",
	TypeBVec4:          "bvec4",
	TypeIVec2:          "ivec2",
	TypeIVec3:          "ivec3",
	TypeIVec4:          "ivec4",
	TypeMat2:           "mat2",
	TypeMat3:           "mat3",
	TypeMat4:           "mat4",
	TypeSampler1D:      "sampler1D",
	TypeISampler1D:     "isampler1D",
	TypeUSampler1D:     "usampler1D",
	TypeSampler2D:      "sampler2D",
	TypeISampler2D:     "isampler2D",
	TypeUSampler2D:     "usampler2D",
	TypeSamplerCube:    "samplerCube",
	TypeSampler1DArray: "sampler1DArray",
	TypeSampler2DArray: "sampler2DArray",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) MarshalText() ([]byte, error) {
	if t <= TypeInvalid || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("invalid type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, ok := ParseType(string(text))
	if !ok {
		return fmt.Errorf("unknown type %q", text)
	}
	*t = parsed
	return nil
}

// ParseType maps a GLSL type keyword to its Type.
func ParseType(name string) (Type, bool) {
	for i := TypeVoid; int(i) < len(typeNames); i++ {
		if typeNames[i] == name {
			return i, true
		}
	}
	return TypeInvalid, false
}

// TypeNames lists every declarable type keyword, void excluded.
func TypeNames() []string {
	names := make([]string, 0, len(typeNames)-2)
	for i := TypeFloat; int(i) < len(typeNames); i++ {
		names = append(names, typeNames[i])
	}
	return names
}

func (t Type) IsSampler() bool {
	return t >= TypeSampler1D && t <= TypeSampler2DArray
}

func (t Type) IsMatrix() bool {
	return t >= TypeMat2 && t <= TypeMat4
}

func (t Type) IsVector() bool {
	return t >= TypeVec2 && t <= TypeIVec4
}

// Components returns the number of scalar components (vectors and scalars)
// or columns squared (matrices); samplers and void have none.
func (t Type) Components() int {
	switch t {
	case TypeFloat, TypeInt, TypeBool:
		return 1
	case TypeVec2, TypeBVec2, TypeIVec2:
		return 2
	case TypeVec3, TypeBVec3, TypeIVec3:
		return 3
	case TypeVec4, TypeBVec4, TypeIVec4, TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	}
	return 0
}
