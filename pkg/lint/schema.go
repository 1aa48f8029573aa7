package lint

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/getmockd/fakegen/pkg/schema"
)

// SchemaID is the $id of the generated definition schema.
const SchemaID = "https://getmockd.dev/fakegen/definition.schema.json"

const draft2020 = "https://json-schema.org/draft/2020-12/schema"

// Schema builds the JSON Schema (draft 2020-12) describing definition
// documents for the registered tags. maxCount bounds array counts; zero
// means schema.DefaultMaxCount.
//
// The schema cannot express min < max or nesting depth; Lint leaves those
// to the compiler.
func Schema(maxCount int) map[string]any {
	if maxCount <= 0 {
		maxCount = schema.DefaultMaxCount
	}

	tags := schema.Tags()
	tagNames := make([]any, len(tags))
	for i, t := range tags {
		tagNames[i] = string(t)
	}

	ref := func(name string) map[string]any {
		return map[string]any{"$ref": "#/$defs/" + name}
	}

	shapes := []schema.Shape{
		schema.ShapeScalar, schema.ShapeRangedScalar, schema.ShapeRatioScalar,
		schema.ShapeFormattedScalar, schema.ShapeArray, schema.ShapeMap, schema.ShapeConstant,
	}
	rules := make([]any, 0, len(shapes))
	for _, shape := range shapes {
		of := schema.TagsOf(shape)
		names := make([]any, len(of))
		for i, t := range of {
			names[i] = string(t)
		}
		rules = append(rules, map[string]any{
			"if": map[string]any{
				"required":   []any{schema.FieldFakeType},
				"properties": map[string]any{schema.FieldFakeType: map[string]any{"enum": names}},
			},
			"then": shapeRule(shape, maxCount, ref),
		})
	}

	return map[string]any{
		"$schema":              draft2020,
		"$id":                  SchemaID,
		"title":                "fakegen definition",
		"description":          "An object whose values are schema nodes. Each node names its generator in fake_type.",
		"type":                 "object",
		"additionalProperties": ref("node"),
		"$defs": map[string]any{
			"node": map[string]any{
				"type":     "object",
				"required": []any{schema.FieldFakeType},
				"properties": map[string]any{
					schema.FieldFakeType: map[string]any{"type": "string", "enum": tagNames},
				},
				"allOf": rules,
			},
			"lang": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"bound": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": math.MaxInt32,
			},
		},
	}
}

func shapeRule(shape schema.Shape, maxCount int, ref func(string) map[string]any) map[string]any {
	required := make([]any, 0, 3)
	for _, f := range shape.RequiredFields() {
		required = append(required, f)
	}

	switch shape {
	case schema.ShapeScalar:
		return map[string]any{
			"required":   required,
			"properties": map[string]any{schema.FieldLang: ref("lang")},
		}
	case schema.ShapeRangedScalar:
		return map[string]any{
			"required": required,
			"properties": map[string]any{
				schema.FieldLang: ref("lang"),
				schema.FieldMin:  ref("bound"),
				schema.FieldMax:  ref("bound"),
			},
		}
	case schema.ShapeRatioScalar:
		return map[string]any{
			"required": required,
			"properties": map[string]any{
				schema.FieldLang:  ref("lang"),
				schema.FieldRatio: map[string]any{"type": "integer", "minimum": 0, "maximum": math.MaxUint8},
			},
		}
	case schema.ShapeFormattedScalar:
		return map[string]any{
			"required": required,
			"properties": map[string]any{
				schema.FieldLang:   ref("lang"),
				schema.FieldFormat: map[string]any{"type": "string"},
			},
		}
	case schema.ShapeArray:
		// fake_type, count and exactly one nested node
		return map[string]any{
			"required": required,
			"properties": map[string]any{
				schema.FieldFakeType: true,
				schema.FieldCount:    map[string]any{"type": "integer", "minimum": 0, "maximum": maxCount},
			},
			"additionalProperties": ref("node"),
			"minProperties":        3,
			"maxProperties":        3,
		}
	case schema.ShapeMap:
		return map[string]any{
			"properties":           map[string]any{schema.FieldFakeType: true},
			"additionalProperties": ref("node"),
			"minProperties":        2,
		}
	default:
		return map[string]any{"required": required}
	}
}

// SchemaJSON renders Schema(maxCount) as indented JSON.
func SchemaJSON(maxCount int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Schema(maxCount)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
