// Package shader describes the global parameters declared by a GLSL-ES shader,
// in the form a resource binder consumes them.
package shader

import (
	"fmt"
	"strings"
)

// Qualifier is the storage class of a declaration.
type Qualifier int

const (
	QualifierNone Qualifier = iota
	QualifierConst
	QualifierAttribute
	QualifierVarying
	QualifierInvariantVarying
	QualifierUniform
)

var qualifierNames = [...]string{
	QualifierNone:             "none",
	QualifierConst:            "const",
	QualifierAttribute:        "attribute",
	QualifierVarying:          "varying",
	QualifierInvariantVarying: "invariant varying",
	QualifierUniform:          "uniform",
}

func (q Qualifier) String() string {
	if q >= 0 && int(q) < len(qualifierNames) {
		return qualifierNames[q]
	}
	return fmt.Sprintf("Qualifier(%d)", int(q))
}

func (q Qualifier) MarshalText() ([]byte, error) {
	if q < 0 || int(q) >= len(qualifierNames) {
		return nil, fmt.Errorf("invalid qualifier %d", int(q))
	}
	return []byte(q.String()), nil
}

func (q *Qualifier) UnmarshalText(text []byte) error {
	for i, name := range qualifierNames {
		if name == string(text) {
			*q = Qualifier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown qualifier %q", text)
}

// Direction is the parameter-passing mode of a declaration.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionIn
	DirectionOut
	DirectionInOut
)

var directionNames = [...]string{
	DirectionNone:  "none",
	DirectionIn:    "in",
	DirectionOut:   "out",
	DirectionInOut: "inout",
}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(directionNames) {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range directionNames {
		if name == string(text) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}

// Precision is the optional precision qualifier of a declaration.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh
)

var precisionNames = [...]string{
	PrecisionNone:   "none",
	PrecisionLow:    "lowp",
	PrecisionMedium: "mediump",
	PrecisionHigh:   "highp",
}

func (p Precision) String() string {
	if p >= 0 && int(p) < len(precisionNames) {
		return precisionNames[p]
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

func (p Precision) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(precisionNames) {
		return nil, fmt.Errorf("invalid precision %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Precision) UnmarshalText(text []byte) error {
	for i, name := range precisionNames {
		if name == string(text) {
			*p = Precision(i)
			return nil
		}
	}
	return fmt.Errorf("unknown precision %q", text)
}

// Arg is one recognised global declaration. An array suffix is recorded in
// Array/ArrayLen and never changes Type, which is always the element type.
type Arg struct {
	Name      string    `json:"name" yaml:"name"`
	Type      Type      `json:"type" yaml:"type"`
	Qualifier Qualifier `json:"qualifier" yaml:"qualifier"`
	Direction Direction `json:"direction" yaml:"direction"`
	Precision Precision `json:"precision,omitempty" yaml:"precision,omitempty"`
	Array     bool      `json:"array,omitempty" yaml:"array,omitempty"`
	ArrayLen  int       `json:"arrayLen,omitempty" yaml:"arrayLen,omitempty"`
	Line      int       `json:"line" yaml:"line"`
	Column    int       `json:"column" yaml:"column"`
}

// String renders the declaration the way it would appear in source.
func (a Arg) String() string {
	var parts []string
	if a.Qualifier != QualifierNone {
		parts = append(parts, a.Qualifier.String())
	}
	if a.Direction != DirectionNone {
		parts = append(parts, a.Direction.String())
	}
	if a.Precision != PrecisionNone {
		parts = append(parts, a.Precision.String())
	}
	name := a.Name
	if a.Array {
		if a.ArrayLen > 0 {
			name = fmt.Sprintf("%s[%d]", name, a.ArrayLen)
		} else {
			name += "[]"
		}
	}
	parts = append(parts, a.Type.String(), name)
	return strings.Join(parts, " ") + ";"
}

// IsUniform reports whether the binder should resolve a uniform location.
func (a Arg) IsUniform() bool {
	return a.Qualifier == QualifierUniform
}

// IsAttribute reports whether the binder should resolve a vertex attribute
// location: an 'attribute' declaration or an 'in' parameter without a
// uniform qualifier.
func (a Arg) IsAttribute() bool {
	if a.Qualifier == QualifierAttribute {
		return true
	}
	return a.Direction == DirectionIn && a.Qualifier != QualifierUniform
}
