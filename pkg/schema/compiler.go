package schema

import (
	"log/slog"
	"slices"

	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/getmockd/fakegen/pkg/logging"
	"github.com/ohler55/ojg/jp"
)

// Default compile limits.
const (
	DefaultMaxDepth = 64
	DefaultMaxCount = 100000
)

// Options configures a Compiler.
type Options struct {
	// MaxDepth bounds how deeply array and map nodes may nest. Top-level
	// fields are at depth 1.
	MaxDepth int

	// MaxCount bounds the count of any array node.
	MaxCount int

	// LocalePolicy decides whether unrecognized lang codes fall back to
	// the default locale or fail compilation.
	LocalePolicy locale.Policy

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by Compile.
func DefaultOptions() Options {
	return Options{
		MaxDepth:     DefaultMaxDepth,
		MaxCount:     DefaultMaxCount,
		LocalePolicy: locale.PolicyFallback,
	}
}

// Compiler turns decoded definition documents into compiled generators.
// A Compiler holds no per-compilation state and is safe for concurrent use.
type Compiler struct {
	opts   Options
	logger *slog.Logger
}

// NewCompiler creates a compiler. Zero-valued options take their defaults.
func NewCompiler(opts Options) *Compiler {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = DefaultMaxCount
	}
	if opts.LocalePolicy == "" {
		opts.LocalePolicy = locale.PolicyFallback
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Compiler{opts: opts, logger: logger}
}

// Compile compiles a definition with DefaultOptions.
func Compile(root any) (*Definition, error) {
	return NewCompiler(DefaultOptions()).Compile(root)
}

// Compile compiles a top-level definition: a JSON object whose values are
// schema nodes. The first error anywhere in the tree aborts compilation.
func (c *Compiler) Compile(root any) (*Definition, error) {
	obj, ok := root.(map[string]any)
	if !ok {
		_, isArray := root.([]any)
		return nil, &CompileError{Kind: ErrStructural, Path: "$", Got: jsonType(root), RootArray: isArray}
	}

	names := sortedKeys(obj, nil)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		g, err := c.compile(obj[name], child(jp.R(), name), 1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Generator: g})
	}

	c.logger.Debug("definition compiled", "fields", len(fields))
	return &Definition{Fields: fields}, nil
}

// CompileNode compiles a single schema node.
func (c *Compiler) CompileNode(node any) (Generator, error) {
	return c.compile(node, jp.R(), 1)
}

func (c *Compiler) compile(raw any, path jp.Expr, depth int) (Generator, error) {
	if depth > c.opts.MaxDepth {
		return nil, &CompileError{Kind: ErrLimitExceeded, Path: path.String(), Value: depth, Limit: c.opts.MaxDepth}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &CompileError{Kind: ErrStructural, Path: path.String(), Got: jsonType(raw)}
	}

	rawTag, present := obj[FieldFakeType]
	if !present {
		return nil, &CompileError{Kind: ErrMissingOrInvalidTag, Path: path.String()}
	}
	name, ok := rawTag.(string)
	if !ok {
		return nil, &CompileError{Kind: ErrMissingOrInvalidTag, Path: path.String(), Got: jsonType(rawTag)}
	}
	tag := Tag(name)
	shape, ok := ShapeOf(tag)
	if !ok {
		return nil, &CompileError{Kind: ErrUnknownTag, Path: path.String(), Tag: tag}
	}

	n := node{obj: obj, tag: tag, path: path}
	switch shape {
	case ShapeScalar:
		lang, loc, err := c.lang(n)
		if err != nil {
			return nil, err
		}
		return Scalar{Tag: tag, Lang: lang, Locale: loc}, nil

	case ShapeRangedScalar:
		lang, loc, err := c.lang(n)
		if err != nil {
			return nil, err
		}
		lo, err := n.nonNegativeInt(FieldMin)
		if err != nil {
			return nil, err
		}
		hi, err := n.nonNegativeInt(FieldMax)
		if err != nil {
			return nil, err
		}
		if lo >= hi {
			return nil, &CompileError{Kind: ErrInvalidRange, Path: path.String(), Tag: tag, Min: lo, Max: hi}
		}
		return RangedScalar{Tag: tag, Lang: lang, Locale: loc, Min: lo, Max: hi}, nil

	case ShapeRatioScalar:
		lang, loc, err := c.lang(n)
		if err != nil {
			return nil, err
		}
		ratio, err := n.byteValue(FieldRatio)
		if err != nil {
			return nil, err
		}
		return RatioScalar{Tag: tag, Lang: lang, Locale: loc, Ratio: ratio}, nil

	case ShapeFormattedScalar:
		lang, loc, err := c.lang(n)
		if err != nil {
			return nil, err
		}
		format, err := n.str(FieldFormat)
		if err != nil {
			return nil, err
		}
		return FormattedScalar{Tag: tag, Lang: lang, Locale: loc, Format: format}, nil

	case ShapeArray:
		return c.compileArray(n, depth)

	case ShapeMap:
		return c.compileMap(n, depth)

	case ShapeConstant:
		v, present := obj[FieldValue]
		if !present {
			return nil, n.missing(FieldValue)
		}
		return Constant{Value: v}, nil
	}

	// Unreachable while every Shape has a case above.
	return nil, &CompileError{Kind: ErrUnknownTag, Path: path.String(), Tag: tag}
}

func (c *Compiler) compileArray(n node, depth int) (Generator, error) {
	count, err := n.nonNegativeInt(FieldCount)
	if err != nil {
		return nil, err
	}
	if count > c.opts.MaxCount {
		return nil, &CompileError{
			Kind: ErrLimitExceeded, Path: n.path.String(), Tag: n.tag,
			Field: FieldCount, Value: count, Limit: c.opts.MaxCount,
		}
	}

	names := sortedKeys(n.obj, []string{FieldFakeType, FieldCount})
	switch len(names) {
	case 0:
		return nil, &CompileError{Kind: ErrEmptyComposite, Path: n.path.String(), Tag: n.tag}
	case 1:
	default:
		return nil, &CompileError{Kind: ErrAmbiguousTemplate, Path: n.path.String(), Tag: n.tag, Names: names}
	}

	elem, err := c.compile(n.obj[names[0]], child(n.path, names[0]), depth+1)
	if err != nil {
		return nil, err
	}
	return Array{Count: count, Element: elem}, nil
}

func (c *Compiler) compileMap(n node, depth int) (Generator, error) {
	names := sortedKeys(n.obj, []string{FieldFakeType})
	if len(names) == 0 {
		return nil, &CompileError{Kind: ErrEmptyComposite, Path: n.path.String(), Tag: n.tag}
	}

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		g, err := c.compile(n.obj[name], child(n.path, name), depth+1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Generator: g})
	}
	return Map{Fields: fields}, nil
}

// lang reads the node's locale code and resolves it under the locale
// policy.
func (c *Compiler) lang(n node) (string, locale.Locale, error) {
	code, err := n.str(FieldLang)
	if err != nil {
		return "", "", err
	}
	loc, known := locale.Lookup(code)
	if !known {
		if c.opts.LocalePolicy == locale.PolicyStrict {
			return "", "", &CompileError{Kind: ErrUnsupportedLocale, Path: n.path.String(), Tag: n.tag, Locale: code}
		}
		c.logger.Debug("unrecognized lang, using default locale",
			"path", n.path.String(), "lang", code, "default", locale.Default)
	}
	return code, loc, nil
}

// sortedKeys returns the keys of obj not listed in exclude, ascending.
func sortedKeys(obj map[string]any, exclude []string) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if !slices.Contains(exclude, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// child extends path by one key without sharing path's backing array.
func child(path jp.Expr, name string) jp.Expr {
	return append(slices.Clip(path), jp.Child(name))
}
