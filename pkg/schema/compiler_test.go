package schema

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDecode parses a JSON literal for test input.
func mustDecode(t *testing.T, src string) any {
	t.Helper()
	v, err := DecodeJSON([]byte(src))
	require.NoError(t, err)
	return v
}

// compileErr compiles src and returns the *CompileError it fails with.
func compileErr(t *testing.T, c *Compiler, src string) *CompileError {
	t.Helper()
	_, err := c.Compile(mustDecode(t, src))
	require.Error(t, err)
	var ce *CompileError
	require.True(t, errors.As(err, &ce), "expected *CompileError, got %T: %v", err, err)
	return ce
}

func TestCompile_ConstantScenario(t *testing.T) {
	def, err := Compile(mustDecode(t, `{
		"name": {"fake_type": "constant", "value": "Alice"},
		"age":  {"fake_type": "constant", "value": 30}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "name"}, def.Names())
	assert.Equal(t, Constant{Value: int64(30)}, def.Fields[0].Generator)
	assert.Equal(t, Constant{Value: "Alice"}, def.Fields[1].Generator)
}

func TestCompile_OutputOrderIgnoresDeclarationOrder(t *testing.T) {
	def, err := Compile(mustDecode(t, `{
		"zeta":  {"fake_type": "word", "lang": "EN"},
		"Alpha": {"fake_type": "word", "lang": "EN"},
		"mid":   {"fake_type": "word", "lang": "EN"},
		"alpha": {"fake_type": "word", "lang": "EN"}
	}`))
	require.NoError(t, err)
	// byte-wise ascending: upper case sorts before lower case
	assert.Equal(t, []string{"Alpha", "alpha", "mid", "zeta"}, def.Names())
}

func TestCompile_EmptyDefinition(t *testing.T) {
	def, err := Compile(mustDecode(t, `{}`))
	require.NoError(t, err)
	assert.Empty(t, def.Fields)
}

func TestCompile_Shapes(t *testing.T) {
	tests := []struct {
		name string
		node string
		want Generator
	}{
		{
			name: "scalar",
			node: `{"fake_type": "first_name", "lang": "JA_JP"}`,
			want: Scalar{Tag: TagFirstName, Lang: "JA_JP", Locale: locale.JaJP},
		},
		{
			name: "ranged scalar",
			node: `{"fake_type": "words", "lang": "EN", "min": 2, "max": 5}`,
			want: RangedScalar{Tag: TagWords, Lang: "EN", Locale: locale.EN, Min: 2, Max: 5},
		},
		{
			name: "ranged scalar from zero",
			node: `{"fake_type": "password", "lang": "EN", "min": 0, "max": 1}`,
			want: RangedScalar{Tag: TagPassword, Lang: "EN", Locale: locale.EN, Min: 0, Max: 1},
		},
		{
			name: "ratio scalar",
			node: `{"fake_type": "boolean", "lang": "EN", "ratio": 75}`,
			want: RatioScalar{Tag: TagBoolean, Lang: "EN", Locale: locale.EN, Ratio: 75},
		},
		{
			name: "ratio above 100 is accepted as-is",
			node: `{"fake_type": "boolean", "lang": "EN", "ratio": 200}`,
			want: RatioScalar{Tag: TagBoolean, Lang: "EN", Locale: locale.EN, Ratio: 200},
		},
		{
			name: "formatted scalar",
			node: `{"fake_type": "number_with_format", "lang": "EN", "format": "###-^##"}`,
			want: FormattedScalar{Tag: TagNumberWithFormat, Lang: "EN", Locale: locale.EN, Format: "###-^##"},
		},
		{
			name: "unrecognized lang resolves to the default locale",
			node: `{"fake_type": "word", "lang": "KLINGON"}`,
			want: Scalar{Tag: TagWord, Lang: "KLINGON", Locale: locale.EN},
		},
		{
			name: "extra leaf fields are ignored",
			node: `{"fake_type": "word", "lang": "EN", "comment": "unused"}`,
			want: Scalar{Tag: TagWord, Lang: "EN", Locale: locale.EN},
		},
		{
			name: "constant object",
			node: `{"fake_type": "constant", "value": {"a": [1, 2.5, null, true]}}`,
			want: Constant{Value: map[string]any{"a": []any{int64(1), 2.5, nil, true}}},
		},
		{
			name: "constant null",
			node: `{"fake_type": "constant", "value": null}`,
			want: Constant{Value: nil},
		},
		{
			name: "array",
			node: `{"fake_type": "array", "count": 3, "template": {"fake_type": "constant", "value": "x"}}`,
			want: Array{Count: 3, Element: Constant{Value: "x"}},
		},
		{
			name: "array of zero",
			node: `{"fake_type": "array", "count": 0, "item": {"fake_type": "ip_v4", "lang": "EN"}}`,
			want: Array{Count: 0, Element: Scalar{Tag: TagIPv4, Lang: "EN", Locale: locale.EN}},
		},
		{
			name: "map sorts fields",
			node: `{"fake_type": "map", "b": {"fake_type": "constant", "value": 2}, "a": {"fake_type": "constant", "value": 1}}`,
			want: Map{Fields: []Field{
				{Name: "a", Generator: Constant{Value: int64(1)}},
				{Name: "b", Generator: Constant{Value: int64(2)}},
			}},
		},
	}

	c := NewCompiler(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CompileNode(mustDecode(t, tt.node))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Shape(), got.Shape())
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		def     string
		kind    error
		path    string
		message string
	}{
		{
			name:    "node is a string",
			def:     `{"a": "word"}`,
			kind:    ErrStructural,
			path:    "$.a",
			message: "must be a JSON object, got string",
		},
		{
			name:    "missing fake_type",
			def:     `{"a": {"lang": "EN"}}`,
			kind:    ErrMissingOrInvalidTag,
			path:    "$.a",
			message: "fake_type is missing",
		},
		{
			name:    "fake_type not a string",
			def:     `{"a": {"fake_type": 7}}`,
			kind:    ErrMissingOrInvalidTag,
			path:    "$.a",
			message: "fake_type must be a string, got integer",
		},
		{
			name:    "unknown tag",
			def:     `{"a": {"fake_type": "zodiac_sign", "lang": "EN"}}`,
			kind:    ErrUnknownTag,
			path:    "$.a",
			message: `unknown fake_type "zodiac_sign"`,
		},
		{
			name:    "missing lang",
			def:     `{"a": {"fake_type": "word"}}`,
			kind:    ErrMissingField,
			path:    "$.a",
			message: "fake_type: word, lang is missing",
		},
		{
			name:    "lang not a string",
			def:     `{"a": {"fake_type": "word", "lang": 1}}`,
			kind:    ErrTypeMismatch,
			message: "fake_type: word, lang must be a string, got integer 1",
		},
		{
			name:    "missing min",
			def:     `{"a": {"fake_type": "words", "lang": "EN", "max": 3}}`,
			kind:    ErrMissingField,
			message: "fake_type: words, min is missing",
		},
		{
			name:    "missing max",
			def:     `{"a": {"fake_type": "sentence", "lang": "EN", "min": 3}}`,
			kind:    ErrMissingField,
			message: "fake_type: sentence, max is missing",
		},
		{
			name:    "negative min",
			def:     `{"a": {"fake_type": "words", "lang": "EN", "min": -1, "max": 3}}`,
			kind:    ErrTypeMismatch,
			message: "min must be a non-negative integer, got integer -1",
		},
		{
			name:    "fractional max",
			def:     `{"a": {"fake_type": "words", "lang": "EN", "min": 1, "max": 3.5}}`,
			kind:    ErrTypeMismatch,
			message: "max must be a non-negative integer, got number 3.5",
		},
		{
			name:    "string max",
			def:     `{"a": {"fake_type": "words", "lang": "EN", "min": 1, "max": "3"}}`,
			kind:    ErrTypeMismatch,
			message: "max must be a non-negative integer, got string",
		},
		{
			name:    "equal bounds",
			def:     `{"a": {"fake_type": "words", "lang": "EN", "min": 5, "max": 5}}`,
			kind:    ErrInvalidRange,
			message: "fake_type: words, min (5) must be less than max (5)",
		},
		{
			name:    "inverted bounds",
			def:     `{"a": {"fake_type": "paragraph", "lang": "EN", "min": 7, "max": 1}}`,
			kind:    ErrInvalidRange,
			message: "min (7) must be less than max (1)",
		},
		{
			name:    "missing ratio",
			def:     `{"a": {"fake_type": "boolean", "lang": "EN"}}`,
			kind:    ErrMissingField,
			message: "fake_type: boolean, ratio is missing",
		},
		{
			name:    "ratio too large for a byte",
			def:     `{"a": {"fake_type": "boolean", "lang": "EN", "ratio": 256}}`,
			kind:    ErrTypeMismatch,
			message: "ratio must be an integer between 0 and 255, got integer 256",
		},
		{
			name:    "missing format",
			def:     `{"a": {"fake_type": "number_with_format", "lang": "EN"}}`,
			kind:    ErrMissingField,
			message: "fake_type: number_with_format, format is missing",
		},
		{
			name:    "format not a string",
			def:     `{"a": {"fake_type": "number_with_format", "lang": "EN", "format": ["#"]}}`,
			kind:    ErrTypeMismatch,
			message: "format must be a string, got array",
		},
		{
			name:    "missing constant value",
			def:     `{"a": {"fake_type": "constant"}}`,
			kind:    ErrMissingField,
			message: "fake_type: constant, value is missing",
		},
		{
			name:    "missing count",
			def:     `{"a": {"fake_type": "array", "t": {"fake_type": "word", "lang": "EN"}}}`,
			kind:    ErrMissingField,
			message: "fake_type: array, count is missing",
		},
		{
			name:    "array without template",
			def:     `{"a": {"fake_type": "array", "count": 2}}`,
			kind:    ErrEmptyComposite,
			message: "fake_type: array, no nested generator defined",
		},
		{
			name:    "array with two templates",
			def:     `{"a": {"fake_type": "array", "count": 2, "y": {"fake_type": "word", "lang": "EN"}, "x": {"fake_type": "word", "lang": "EN"}}}`,
			kind:    ErrAmbiguousTemplate,
			message: "expected exactly one nested generator, found 2 (x, y)",
		},
		{
			name:    "map without children",
			def:     `{"a": {"fake_type": "map"}}`,
			kind:    ErrEmptyComposite,
			message: "fake_type: map, no nested generator defined",
		},
		{
			name: "nested error carries full path",
			def: `{"users": {"fake_type": "array", "count": 2, "template": {
				"fake_type": "map",
				"profile": {"fake_type": "map", "age": {"fake_type": "digit"}}
			}}}`,
			kind:    ErrMissingField,
			path:    "$.users.template.profile.age",
			message: "fake_type: digit, lang is missing",
		},
		{
			name:    "map child that is not an object",
			def:     `{"m": {"fake_type": "map", "x": [1, 2]}}`,
			kind:    ErrStructural,
			path:    "$.m.x",
			message: "got array",
		},
	}

	c := NewCompiler(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := compileErr(t, c, tt.def)
			assert.ErrorIs(t, ce, tt.kind)
			if tt.path != "" {
				assert.Equal(t, tt.path, ce.Path)
			}
			assert.Contains(t, ce.Error(), tt.message)
		})
	}
}

func TestCompile_RootMustBeObject(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		message string
	}{
		{"array", `[{"a": {"fake_type": "word", "lang": "EN"}}]`, "--count"},
		{"string", `"hello"`, "got string"},
		{"number", `12`, "got integer"},
		{"null", `null`, "got null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(mustDecode(t, tt.root))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrStructural)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCompile_RootArrayMessageDiffersFromGenericStructuralError(t *testing.T) {
	_, arrErr := Compile(mustDecode(t, `[]`))
	_, strErr := Compile(mustDecode(t, `"x"`))
	require.Error(t, arrErr)
	require.Error(t, strErr)
	assert.NotEqual(t, arrErr.Error(), strErr.Error())
	assert.Contains(t, arrErr.Error(), "array")
}

func TestCompile_FirstErrorIsDeterministic(t *testing.T) {
	src := `{
		"b": {"fake_type": "nope"},
		"a": {"fake_type": "word"},
		"c": {"fake_type": "words", "lang": "EN", "min": 3, "max": 1}
	}`
	for i := 0; i < 20; i++ {
		ce := compileErr(t, NewCompiler(DefaultOptions()), src)
		assert.Equal(t, "$.a", ce.Path)
		assert.ErrorIs(t, ce, ErrMissingField)
	}
}

func TestCompile_InvalidRangeProperty(t *testing.T) {
	c := NewCompiler(DefaultOptions())
	for _, tag := range TagsOf(ShapeRangedScalar) {
		for lo := 0; lo < 6; lo++ {
			for hi := 0; hi < 6; hi++ {
				node := map[string]any{
					FieldFakeType: string(tag), FieldLang: "EN",
					FieldMin: int64(lo), FieldMax: int64(hi),
				}
				g, err := c.CompileNode(node)
				if lo >= hi {
					assert.ErrorIs(t, err, ErrInvalidRange, "%s [%d,%d)", tag, lo, hi)
					assert.Nil(t, g)
				} else {
					require.NoError(t, err, "%s [%d,%d)", tag, lo, hi)
					assert.Equal(t, RangedScalar{Tag: tag, Lang: "EN", Locale: locale.EN, Min: lo, Max: hi}, g)
				}
			}
		}
	}
}

func TestCompile_UnknownTagProperty(t *testing.T) {
	c := NewCompiler(DefaultOptions())
	for _, name := range []string{"", "Word", "WORD", "words ", "ipv4", "lorem", "array2", "faker.name"} {
		_, err := c.CompileNode(map[string]any{FieldFakeType: name, FieldLang: "EN"})
		assert.ErrorIs(t, err, ErrUnknownTag, "tag %q", name)
	}
}

func TestCompile_Limits(t *testing.T) {
	t.Run("count above limit", func(t *testing.T) {
		c := NewCompiler(Options{MaxCount: 10})
		ce := compileErr(t, c, `{"a": {"fake_type": "array", "count": 11, "t": {"fake_type": "constant", "value": 1}}}`)
		assert.ErrorIs(t, ce, ErrLimitExceeded)
		assert.Contains(t, ce.Error(), "count 11 exceeds the limit of 10")
	})

	t.Run("count at limit", func(t *testing.T) {
		c := NewCompiler(Options{MaxCount: 10})
		_, err := c.Compile(mustDecode(t, `{"a": {"fake_type": "array", "count": 10, "t": {"fake_type": "constant", "value": 1}}}`))
		assert.NoError(t, err)
	})

	t.Run("depth", func(t *testing.T) {
		nested := func(levels int) string {
			s := `{"fake_type": "constant", "value": 1}`
			for i := 0; i < levels; i++ {
				s = fmt.Sprintf(`{"fake_type": "map", "m": %s}`, s)
			}
			return `{"root": ` + s + `}`
		}
		c := NewCompiler(Options{MaxDepth: 5})

		// four maps plus the constant leaf = depth 5
		_, err := c.Compile(mustDecode(t, nested(4)))
		require.NoError(t, err)

		ce := compileErr(t, c, nested(5))
		assert.ErrorIs(t, ce, ErrLimitExceeded)
		assert.Contains(t, ce.Error(), "nesting depth 6 exceeds the limit of 5")
		assert.Equal(t, "$.root"+strings.Repeat(".m", 5), ce.Path)
	})
}

func TestCompile_LocalePolicy(t *testing.T) {
	src := `{"a": {"fake_type": "word", "lang": "KLINGON"}}`

	_, err := NewCompiler(Options{LocalePolicy: locale.PolicyFallback}).Compile(mustDecode(t, src))
	assert.NoError(t, err)

	ce := compileErr(t, NewCompiler(Options{LocalePolicy: locale.PolicyStrict}), src)
	assert.ErrorIs(t, ce, ErrUnsupportedLocale)
	assert.Contains(t, ce.Error(), `unsupported lang "KLINGON"`)

	_, err = NewCompiler(Options{LocalePolicy: locale.PolicyStrict}).
		Compile(mustDecode(t, `{"a": {"fake_type": "word", "lang": "ja_jp"}}`))
	assert.NoError(t, err)
}

func TestDefinition_LookupAndWalk(t *testing.T) {
	def, err := Compile(mustDecode(t, `{
		"list": {"fake_type": "array", "count": 1, "t": {"fake_type": "map", "x": {"fake_type": "uuid", "lang": "EN"}}},
		"k": {"fake_type": "constant", "value": 1}
	}`))
	require.NoError(t, err)

	g, ok := def.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, ShapeConstant, g.Shape())
	_, ok = def.Lookup("missing")
	assert.False(t, ok)

	var shapes []string
	maxDepth := 0
	def.Walk(func(g Generator, depth int) {
		shapes = append(shapes, g.Shape().String())
		maxDepth = max(maxDepth, depth)
	})
	assert.Equal(t, []string{"constant", "array", "map", "scalar"}, shapes)
	assert.Equal(t, 3, maxDepth)
}
