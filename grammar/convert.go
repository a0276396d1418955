package grammar

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"glslarg/internal/parser"
	"glslarg/internal/shader"
)

// ConversionError is a declaration the grammar accepts but that has no
// valid descriptor.
type ConversionError struct {
	Pos     lexer.Position
	Message string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

// ToArgs converts the parsed declarations into descriptors, in order.
func (s *Shader) ToArgs() (shader.Args, error) {
	var args shader.Args
	for _, item := range s.Items {
		if item.Param == nil {
			continue
		}
		arg, err := item.Param.toArg()
		if err != nil {
			return args, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (p *Param) toArg() (shader.Arg, error) {
	name := p.Name.Value
	if _, reserved := parser.KEYWORDS[name]; reserved {
		return shader.Arg{}, &ConversionError{Pos: p.Name.Pos, Message: fmt.Sprintf("'%s' is a reserved word", name)}
	}

	typ, ok := shader.ParseType(p.Type)
	if !ok || typ == shader.TypeVoid {
		return shader.Arg{}, &ConversionError{Pos: p.Pos, Message: fmt.Sprintf("parameter '%s' cannot have type '%s'", name, p.Type)}
	}

	arg := shader.Arg{
		Name:   name,
		Type:   typ,
		Line:   p.Name.Pos.Line,
		Column: p.Name.Pos.Column,
	}
	if p.Qualifier != nil {
		if p.Qualifier.Invariant {
			arg.Qualifier = shader.QualifierInvariantVarying
		} else if err := arg.Qualifier.UnmarshalText([]byte(p.Qualifier.Name)); err != nil {
			return shader.Arg{}, err
		}
	}
	if p.Direction != "" {
		if err := arg.Direction.UnmarshalText([]byte(p.Direction)); err != nil {
			return shader.Arg{}, err
		}
	}
	if p.Precision != "" {
		if err := arg.Precision.UnmarshalText([]byte(p.Precision)); err != nil {
			return shader.Arg{}, err
		}
	}
	if p.Array != nil {
		arg.Array = true
		if p.Array.Size != "" {
			n, err := strconv.ParseInt(p.Array.Size, 0, 32)
			if err != nil || n <= 0 {
				return shader.Arg{}, &ConversionError{Pos: p.Pos, Message: fmt.Sprintf("invalid array size %s", p.Array.Size)}
			}
			arg.ArrayLen = int(n)
		}
	}
	return arg, nil
}
