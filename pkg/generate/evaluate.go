package generate

import (
	mathrand "math/rand/v2"

	"github.com/getmockd/fakegen/pkg/fake"
	"github.com/getmockd/fakegen/pkg/schema"
)

// Evaluate produces one value from g. Leaf generators draw from p using
// rng; composites recurse; constants are returned as deep copies of the
// compiled value, so callers may modify records freely.
//
// Maps become Objects, arrays become []any, leaves become whatever p
// returns for the tag.
func Evaluate(g schema.Generator, rng *mathrand.Rand, p fake.Provider) any {
	switch v := g.(type) {
	case schema.Scalar:
		return p.Draw(rng, v.Tag, v.Locale, fake.Params{})
	case schema.RangedScalar:
		return p.Draw(rng, v.Tag, v.Locale, fake.Params{Min: v.Min, Max: v.Max})
	case schema.RatioScalar:
		return p.Draw(rng, v.Tag, v.Locale, fake.Params{Ratio: v.Ratio})
	case schema.FormattedScalar:
		return p.Draw(rng, v.Tag, v.Locale, fake.Params{Format: v.Format})
	case schema.Array:
		out := make([]any, v.Count)
		for i := range out {
			out[i] = Evaluate(v.Element, rng, p)
		}
		return out
	case schema.Map:
		return evaluateFields(v.Fields, rng, p)
	case schema.Constant:
		return cloneValue(v.Value)
	default:
		return nil
	}
}

// EvaluateDefinition produces one record from def.
func EvaluateDefinition(def *schema.Definition, rng *mathrand.Rand, p fake.Provider) Object {
	return evaluateFields(def.Fields, rng, p)
}

func evaluateFields(fields []schema.Field, rng *mathrand.Rand, p fake.Provider) Object {
	obj := make(Object, len(fields))
	for i, f := range fields {
		obj[i] = Member{Key: f.Name, Value: Evaluate(f.Generator, rng, p)}
	}
	return obj
}

// cloneValue copies the containers of a decoded constant.
func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
