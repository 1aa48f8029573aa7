package schema

import "github.com/getmockd/fakegen/pkg/locale"

// Generator is a compiled, validated generator. The set of implementations
// is closed: Scalar, RangedScalar, RatioScalar, FormattedScalar, Array, Map
// and Constant. Compiled generators are never modified after compilation
// and may be evaluated any number of times, concurrently.
type Generator interface {
	Shape() Shape
	sealed()
}

// Scalar draws one value of Tag in Locale. Lang keeps the code as written
// in the definition; Locale is what it resolved to at compile time.
type Scalar struct {
	Tag    Tag
	Lang   string
	Locale locale.Locale
}

// RangedScalar draws a value whose cardinality lies in [Min, Max).
type RangedScalar struct {
	Tag    Tag
	Lang   string
	Locale locale.Locale
	Min    int
	Max    int
}

// RatioScalar draws a value biased by Ratio.
type RatioScalar struct {
	Tag    Tag
	Lang   string
	Locale locale.Locale
	Ratio  uint8
}

// FormattedScalar draws a value following the Format pattern.
type FormattedScalar struct {
	Tag    Tag
	Lang   string
	Locale locale.Locale
	Format string
}

// Array evaluates Element Count times.
type Array struct {
	Count   int
	Element Generator
}

// Field is a named child generator.
type Field struct {
	Name      string
	Generator Generator
}

// Map evaluates each field once. Fields are sorted by name.
type Map struct {
	Fields []Field
}

// Constant returns Value verbatim.
type Constant struct {
	Value any
}

func (Scalar) Shape() Shape          { return ShapeScalar }
func (RangedScalar) Shape() Shape    { return ShapeRangedScalar }
func (RatioScalar) Shape() Shape     { return ShapeRatioScalar }
func (FormattedScalar) Shape() Shape { return ShapeFormattedScalar }
func (Array) Shape() Shape           { return ShapeArray }
func (Map) Shape() Shape             { return ShapeMap }
func (Constant) Shape() Shape        { return ShapeConstant }

func (Scalar) sealed()          {}
func (RangedScalar) sealed()    {}
func (RatioScalar) sealed()     {}
func (FormattedScalar) sealed() {}
func (Array) sealed()           {}
func (Map) sealed()             {}
func (Constant) sealed()        {}

// Definition is a compiled top-level definition: named generators sorted
// by name. Evaluating it yields one record.
type Definition struct {
	Fields []Field
}

// Names returns the field names in output order.
func (d *Definition) Names() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the generator compiled for name.
func (d *Definition) Lookup(name string) (Generator, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Generator, true
		}
	}
	return nil, false
}

// Walk calls fn for every generator in the definition, parents before
// children, with the generator's depth (top-level fields are depth 1).
func (d *Definition) Walk(fn func(g Generator, depth int)) {
	for _, f := range d.Fields {
		walk(f.Generator, 1, fn)
	}
}

func walk(g Generator, depth int, fn func(Generator, int)) {
	fn(g, depth)
	switch v := g.(type) {
	case Array:
		walk(v.Element, depth+1, fn)
	case Map:
		for _, f := range v.Fields {
			walk(f.Generator, depth+1, fn)
		}
	}
}
