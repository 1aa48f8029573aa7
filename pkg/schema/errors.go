package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Compile error kinds. Every error returned by the compiler is a
// *CompileError wrapping exactly one of these.
var (
	ErrStructural          = errors.New("schema node is not a JSON object")
	ErrMissingOrInvalidTag = errors.New("fake_type is missing or not a string")
	ErrUnknownTag          = errors.New("unknown fake_type")
	ErrMissingField        = errors.New("required field is missing")
	ErrTypeMismatch        = errors.New("field has the wrong type")
	ErrInvalidRange        = errors.New("min must be less than max")
	ErrEmptyComposite      = errors.New("composite has no nested generator")
	ErrAmbiguousTemplate   = errors.New("array has more than one nested generator")
	ErrLimitExceeded       = errors.New("limit exceeded")
	ErrUnsupportedLocale   = errors.New("unsupported lang")
)

// CompileError describes why a definition failed to compile.
type CompileError struct {
	// Kind is the sentinel identifying the failure.
	Kind error
	// Path is the JSONPath of the offending node, e.g. "$.users.template".
	Path string
	// Tag is the node's fake_type, when known.
	Tag Tag
	// Field is the offending field name, when the failure concerns one.
	Field string
	// Want describes the expected type for ErrTypeMismatch.
	Want string
	// Got describes the JSON type found (ErrStructural, ErrTypeMismatch).
	Got string
	// Min and Max carry the bounds for ErrInvalidRange.
	Min, Max int
	// Limit and Value carry the bound and offending value for ErrLimitExceeded.
	Limit, Value int
	// Names lists the candidate template fields for ErrAmbiguousTemplate.
	Names []string
	// Locale is the rejected code for ErrUnsupportedLocale.
	Locale string
	// RootArray is set when a definition root is an array.
	RootArray bool
}

func (e *CompileError) Error() string {
	var msg string
	switch e.Kind {
	case ErrStructural:
		if e.RootArray {
			return "definition root must be a JSON object, got an array; " +
				"write a single object definition and use --count N to generate N records"
		}
		msg = fmt.Sprintf("schema node must be a JSON object, got %s", e.Got)
	case ErrMissingOrInvalidTag:
		if e.Got == "" {
			msg = "fake_type is missing"
		} else {
			msg = fmt.Sprintf("fake_type must be a string, got %s", e.Got)
		}
	case ErrUnknownTag:
		msg = fmt.Sprintf("unknown fake_type %q", e.Tag)
	case ErrMissingField:
		msg = fmt.Sprintf("fake_type: %s, %s is missing", e.Tag, e.Field)
	case ErrTypeMismatch:
		msg = fmt.Sprintf("fake_type: %s, %s must be %s, got %s", e.Tag, e.Field, e.Want, e.Got)
	case ErrInvalidRange:
		msg = fmt.Sprintf("fake_type: %s, min (%d) must be less than max (%d)", e.Tag, e.Min, e.Max)
	case ErrEmptyComposite:
		msg = fmt.Sprintf("fake_type: %s, no nested generator defined", e.Tag)
	case ErrAmbiguousTemplate:
		msg = fmt.Sprintf("fake_type: %s, expected exactly one nested generator, found %d (%s)",
			e.Tag, len(e.Names), strings.Join(e.Names, ", "))
	case ErrLimitExceeded:
		if e.Field == FieldCount {
			msg = fmt.Sprintf("fake_type: %s, count %d exceeds the limit of %d", e.Tag, e.Value, e.Limit)
		} else {
			msg = fmt.Sprintf("nesting depth %d exceeds the limit of %d", e.Value, e.Limit)
		}
	case ErrUnsupportedLocale:
		msg = fmt.Sprintf("fake_type: %s, unsupported lang %q", e.Tag, e.Locale)
	default:
		msg = fmt.Sprintf("compile error: %v", e.Kind)
	}
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *CompileError) Unwrap() error {
	return e.Kind
}

// jsonType names the JSON type of a decoded value for error messages.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int64, int, uint64:
		return "integer"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
