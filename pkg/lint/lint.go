// Package lint checks definition documents against the JSON Schema of the
// definition format and reports every violation at once, where the
// compiler stops at the first.
package lint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Violation is one schema violation.
type Violation struct {
	// Path is the JSONPath of the offending value, e.g. "$.users.count".
	Path string `json:"path"`
	// Keyword is the schema keyword that failed, e.g. "required".
	Keyword string `json:"keyword"`
	// Message describes the failure.
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// Linter validates documents against the compiled definition schema. It
// is safe for concurrent use.
type Linter struct {
	schema *jsonschema.Schema
}

// New compiles the definition schema for the given array count limit
// (zero means the default).
func New(maxCount int) (*Linter, error) {
	data, err := json.Marshal(Schema(maxCount))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal definition schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(SchemaID, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := compiler.Compile(SchemaID)
	if err != nil {
		return nil, fmt.Errorf("failed to compile definition schema: %w", err)
	}
	return &Linter{schema: s}, nil
}

// Lint validates a decoded document (as returned by schema.Decode) and
// returns its violations sorted by path. An empty result means the
// document is structurally valid.
func (l *Linter) Lint(doc any) ([]Violation, error) {
	// Round-trip through JSON so numbers reach the validator as json.Number.
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	err = l.schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}

	var out []Violation
	collect(doc, verr, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return dedupe(out), nil
}

// collect flattens the leaf causes of a validation error.
func collect(doc any, err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		*out = append(*out, Violation{
			Path:    pointerToPath(doc, err.InstanceLocation),
			Keyword: keyword(err.KeywordLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collect(doc, cause, out)
	}
}

func dedupe(in []Violation) []Violation {
	out := in[:0]
	seen := make(map[Violation]bool, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// pointerToPath converts a JSON Pointer ("/users/count") to the JSONPath
// notation used by compile errors ("$.users.count"). doc is walked alongside
// so that segments indexing an array render as "[i]".
func pointerToPath(doc any, ptr string) string {
	path := jp.R()
	if ptr == "" || ptr == "/" {
		return path.String()
	}
	r := strings.NewReplacer("~1", "/", "~0", "~")
	cur := doc
	for _, seg := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		seg = r.Replace(seg)
		switch v := cur.(type) {
		case []any:
			if i, err := strconv.Atoi(seg); err == nil && i >= 0 && i < len(v) {
				path = append(path, jp.Nth(i))
				cur = v[i]
				continue
			}
			cur = nil
		case map[string]any:
			cur = v[seg]
		default:
			cur = nil
		}
		path = append(path, jp.Child(seg))
	}
	return path.String()
}

// keyword returns the last segment of a keyword location.
func keyword(loc string) string {
	if i := strings.LastIndexByte(loc, '/'); i >= 0 {
		return loc[i+1:]
	}
	return loc
}
