package schema

import (
	"math"
	"strconv"

	"github.com/ohler55/ojg/jp"
)

// node is a schema node being compiled.
type node struct {
	obj  map[string]any
	tag  Tag
	path jp.Expr
}

func (n node) missing(field string) error {
	return &CompileError{Kind: ErrMissingField, Path: n.path.String(), Tag: n.tag, Field: field}
}

func (n node) mismatch(field, want string, got any) error {
	return &CompileError{
		Kind: ErrTypeMismatch, Path: n.path.String(), Tag: n.tag,
		Field: field, Want: want, Got: describe(got),
	}
}

func (n node) str(field string) (string, error) {
	v, ok := n.obj[field]
	if !ok {
		return "", n.missing(field)
	}
	s, ok := v.(string)
	if !ok {
		return "", n.mismatch(field, "a string", v)
	}
	return s, nil
}

func (n node) nonNegativeInt(field string) (int, error) {
	v, ok := n.obj[field]
	if !ok {
		return 0, n.missing(field)
	}
	i, ok := v.(int64)
	if !ok || i < 0 || i > math.MaxInt32 {
		return 0, n.mismatch(field, "a non-negative integer", v)
	}
	return int(i), nil
}

func (n node) byteValue(field string) (uint8, error) {
	v, ok := n.obj[field]
	if !ok {
		return 0, n.missing(field)
	}
	i, ok := v.(int64)
	if !ok || i < 0 || i > math.MaxUint8 {
		return 0, n.mismatch(field, "an integer between 0 and 255", v)
	}
	return uint8(i), nil
}

// describe renders a rejected value for error messages: its JSON type,
// plus the value itself for numbers.
func describe(v any) string {
	switch t := v.(type) {
	case int64:
		return "integer " + strconv.FormatInt(t, 10)
	case float64:
		return "number " + strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return jsonType(v)
	}
}
