package lint

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getmockd/fakegen/pkg/schema"
	"github.com/getmockd/fakegen/pkg/schemafile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintJSON(t *testing.T, l *Linter, src string) []Violation {
	t.Helper()
	doc, err := schema.DecodeJSON([]byte(src))
	require.NoError(t, err)
	v, err := l.Lint(doc)
	require.NoError(t, err)
	return v
}

func TestLint_Valid(t *testing.T) {
	l, err := New(0)
	require.NoError(t, err)

	docs := []string{
		`{}`,
		`{"a": {"fake_type": "word", "lang": "EN"}}`,
		`{"a": {"fake_type": "words", "lang": "EN", "min": 0, "max": 3, "note": "extra fields are fine"}}`,
		`{"a": {"fake_type": "boolean", "lang": "EN", "ratio": 255}}`,
		`{"a": {"fake_type": "number_with_format", "lang": "EN", "format": ""}}`,
		`{"a": {"fake_type": "constant", "value": null}}`,
		`{"a": {"fake_type": "array", "count": 0, "t": {"fake_type": "uuid", "lang": "EN"}}}`,
		`{"a": {"fake_type": "map", "x": {"fake_type": "map", "y": {"fake_type": "constant", "value": [1]}}}}`,
	}
	for _, doc := range docs {
		assert.Empty(t, lintJSON(t, l, doc), doc)
	}
}

func TestLint_Violations(t *testing.T) {
	l, err := New(100)
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     string
		path    string
		keyword string
	}{
		{"root array", `[]`, "$", "type"},
		{"node not an object", `{"a": 1}`, "$.a", "type"},
		{"missing fake_type", `{"a": {"lang": "EN"}}`, "$.a", "required"},
		{"unknown tag", `{"a": {"fake_type": "zodiac", "lang": "EN"}}`, "$.a.fake_type", "enum"},
		{"missing lang", `{"a": {"fake_type": "ip_v4"}}`, "$.a", "required"},
		{"empty lang", `{"a": {"fake_type": "ip_v4", "lang": ""}}`, "$.a.lang", "minLength"},
		{"fractional min", `{"a": {"fake_type": "words", "lang": "EN", "min": 1.5, "max": 3}}`, "$.a.min", "type"},
		{"negative max", `{"a": {"fake_type": "words", "lang": "EN", "min": 0, "max": -3}}`, "$.a.max", "minimum"},
		{"ratio too large", `{"a": {"fake_type": "boolean", "lang": "EN", "ratio": 300}}`, "$.a.ratio", "maximum"},
		{"format not a string", `{"a": {"fake_type": "number_with_format", "lang": "EN", "format": 7}}`, "$.a.format", "type"},
		{"count above limit", `{"a": {"fake_type": "array", "count": 101, "t": {"fake_type": "constant", "value": 1}}}`, "$.a.count", "maximum"},
		{"array without template", `{"a": {"fake_type": "array", "count": 1}}`, "$.a", "minProperties"},
		{"array with two templates", `{"a": {"fake_type": "array", "count": 1, "x": {"fake_type": "constant", "value": 1}, "y": {"fake_type": "constant", "value": 2}}}`, "$.a", "maxProperties"},
		{"empty map", `{"a": {"fake_type": "map"}}`, "$.a", "minProperties"},
		{"bad map child", `{"m": {"fake_type": "map", "x": {"fake_type": "digit"}}}`, "$.m.x", "required"},
		{"missing constant value", `{"a": {"fake_type": "constant"}}`, "$.a", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lintJSON(t, l, tt.doc)
			require.NotEmpty(t, got)
			assert.Contains(t, got, Violation{Path: tt.path, Keyword: tt.keyword, Message: findMessage(got, tt.path, tt.keyword)},
				"violations: %v", got)
		})
	}
}

func TestLint_ReportsEveryViolation(t *testing.T) {
	l, err := New(0)
	require.NoError(t, err)

	got := lintJSON(t, l, `{
		"c": {"fake_type": "boolean", "lang": "EN", "ratio": -1},
		"a": {"fake_type": "nope"},
		"b": {"fake_type": "word"}
	}`)

	paths := make([]string, len(got))
	for i, v := range got {
		paths[i] = v.Path
	}
	assert.Equal(t, []string{"$.a.fake_type", "$.b", "$.c.ratio"}, paths)
}

func TestLint_ExampleDefinitions(t *testing.T) {
	l, err := New(0)
	require.NoError(t, err)

	paths, err := schemafile.Expand([]string{filepath.Join("..", "..", "examples", "**", "*.{json,yaml}")})
	require.NoError(t, err)
	for _, path := range paths {
		doc, err := schemafile.Load(path)
		require.NoError(t, err, path)
		v, err := l.Lint(doc)
		require.NoError(t, err)
		assert.Empty(t, v, path)
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON(0)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, draft2020, doc["$schema"])
	assert.Equal(t, SchemaID, doc["$id"])

	node := doc["$defs"].(map[string]any)["node"].(map[string]any)
	enum := node["properties"].(map[string]any)["fake_type"].(map[string]any)["enum"].([]any)
	assert.Len(t, enum, len(schema.Tags()))
	assert.Len(t, node["allOf"], 7)
}

func TestPointerToPath(t *testing.T) {
	doc := map[string]any{
		"users": map[string]any{"count": int64(1)},
		"x":     []any{"a", map[string]any{"0": []any{true}}},
	}
	assert.Equal(t, "$", pointerToPath(doc, ""))
	assert.Equal(t, "$.users.count", pointerToPath(doc, "/users/count"))
	assert.Equal(t, "$.x[0]", pointerToPath(doc, "/x/0"))

	nested := pointerToPath(doc, "/x/1/0/0")
	assert.True(t, strings.HasPrefix(nested, "$.x[1]"), nested)
	assert.True(t, strings.HasSuffix(nested, "[0]"), nested)

	// a digit key of an object stays a member name
	assert.NotEqual(t, "$.users[0]", pointerToPath(doc, "/users/0"))
}

func findMessage(vs []Violation, path, keyword string) string {
	for _, v := range vs {
		if v.Path == path && v.Keyword == keyword {
			return v.Message
		}
	}
	return ""
}
