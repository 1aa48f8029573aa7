package schema

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a definition document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Decode parses a definition document into the generic value tree the
// compiler consumes: map[string]any, []any, string, int64, float64, bool
// and nil. Integers stay int64 so that "3" and "3.5" remain distinguishable.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
}

// DecodeJSON parses a JSON document.
func DecodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("invalid JSON: empty document")
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return normalize(v), nil
}

// DecodeYAML parses a YAML document.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("invalid YAML: empty document")
	}
	return normalize(v), nil
}

// normalize converts decoder-specific types to the compiler's value tree.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t)
		}
		return float64(t)
	case float32:
		return float64(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
