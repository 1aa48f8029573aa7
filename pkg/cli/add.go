package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/getmockd/fakegen/pkg/cli/internal/output"
	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/getmockd/fakegen/pkg/schema"
	"github.com/getmockd/fakegen/pkg/schemafile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// addOptions describes the field added by `fakegen add`.
type addOptions struct {
	name   string
	tag    string
	lang   string
	min    int
	max    int
	ratio  int
	format string
	value  string
	force  bool
}

func newAddCmd(a *app) *cobra.Command {
	o := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a field to a definition file",
		Long: `Add a top-level field to a definition file, creating the file if it
does not exist. The file keeps its format (JSON or YAML) and is only written
when the result compiles. Without --name and --type the field is built
interactively.`,
		Example: `  fakegen add user.json --name email --type safe_email
  fakegen add user.yaml --name bio --type sentences --min 1 --max 3 --lang FR_FR
  fakegen add user.json --name role --type constant --value '"admin"'
  fakegen add user.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("type") {
				if err := o.prompt(); err != nil {
					return err
				}
			}
			return a.runAdd(cmd, args[0], o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.name, "name", "", "Field name")
	f.StringVar(&o.tag, "type", "", "Generator tag (see fakegen tags)")
	f.StringVar(&o.lang, "lang", string(locale.Default), "Locale code for leaf generators")
	f.IntVar(&o.min, "min", 1, "Lower bound for ranged tags (inclusive)")
	f.IntVar(&o.max, "max", 5, "Upper bound for ranged tags (exclusive)")
	f.IntVar(&o.ratio, "ratio", 50, "Percent chance of true for boolean")
	f.StringVar(&o.format, "format", "###-####", "Pattern for number_with_format (# any digit, ^ non-zero digit)")
	f.StringVar(&o.value, "value", "null", "JSON value for constant")
	f.BoolVar(&o.force, "force", false, "Replace an existing field")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, path string, o *addOptions) error {
	if path == schemafile.Stdin {
		return errors.New("add needs a file path, not stdin")
	}
	if o.name == "" {
		return errors.New("--name is required")
	}

	format := schemafile.FormatFor(path)
	obj := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if format == "" {
			format = schema.FormatJSON
		}
	case err != nil:
		return err
	default:
		if format == "" {
			format = schemafile.Sniff(data)
		}
		doc, err := schemafile.Decode(data, format)
		if err != nil {
			return &schemafile.LoadError{Path: path, Err: err}
		}
		root, ok := doc.(map[string]any)
		if !ok {
			_, err := a.compiler().Compile(doc)
			return withPath(path, err)
		}
		obj = root
	}

	if _, exists := obj[o.name]; exists && !o.force {
		return fmt.Errorf("%w: %s", ErrFieldExists, o.name)
	}
	node, err := o.node()
	if err != nil {
		return err
	}
	obj[o.name] = node
	if _, err := a.compiler().Compile(obj); err != nil {
		return withPath(path, err)
	}

	out, err := encodeDefinition(obj, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}
	a.logger.Debug("field added", "path", path, "name", o.name, "tag", o.tag)
	fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) to %s\n", o.name, o.tag, path)
	return nil
}

// node builds the schema node for the options' tag.
func (o *addOptions) node() (map[string]any, error) {
	tag := schema.Tag(o.tag)
	shape, ok := schema.ShapeOf(tag)
	if !ok {
		return nil, fmt.Errorf("%w %q - run fakegen tags for the list", schema.ErrUnknownTag, o.tag)
	}

	n := map[string]any{schema.FieldFakeType: o.tag}
	if shape.IsLeaf() {
		n[schema.FieldLang] = o.lang
	}
	switch shape {
	case schema.ShapeScalar:
	case schema.ShapeRangedScalar:
		n[schema.FieldMin] = int64(o.min)
		n[schema.FieldMax] = int64(o.max)
	case schema.ShapeRatioScalar:
		n[schema.FieldRatio] = int64(o.ratio)
	case schema.ShapeFormattedScalar:
		n[schema.FieldFormat] = o.format
	case schema.ShapeConstant:
		v, err := schema.DecodeJSON([]byte(o.value))
		if err != nil {
			return nil, fmt.Errorf("--value: %w", err)
		}
		n[schema.FieldValue] = v
	default:
		return nil, fmt.Errorf("%w: %s is a %s", ErrUnsupportedShape, o.tag, shape)
	}
	return n, nil
}

// prompt fills the options from an interactive form.
func (o *addOptions) prompt() error {
	var tags []string
	for _, tag := range schema.Tags() {
		if shape, _ := schema.ShapeOf(tag); shape.IsLeaf() || shape == schema.ShapeConstant {
			tags = append(tags, string(tag))
		}
	}
	langs := make([]string, 0, len(locale.All()))
	for _, l := range locale.All() {
		langs = append(langs, string(l))
	}
	is := func(want schema.Shape) func() bool {
		return func() bool {
			shape, ok := schema.ShapeOf(schema.Tag(o.tag))
			return !ok || shape != want
		}
	}

	minStr, maxStr, ratioStr := strconv.Itoa(o.min), strconv.Itoa(o.max), strconv.Itoa(o.ratio)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Field name").
				Value(&o.name).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("field name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Generator").
				Options(huh.NewOptions(tags...)...).
				Value(&o.tag),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Locale").
				Options(huh.NewOptions(langs...)...).
				Value(&o.lang),
		).WithHideFunc(func() bool { return o.tag == string(schema.TagConstant) }),
		huh.NewGroup(
			huh.NewInput().Title("Min (inclusive)").Value(&minStr).Validate(nonNegativeInt),
			huh.NewInput().Title("Max (exclusive)").Value(&maxStr).Validate(nonNegativeInt),
		).WithHideFunc(is(schema.ShapeRangedScalar)),
		huh.NewGroup(
			huh.NewInput().Title("Percent chance of true").Value(&ratioStr).Validate(nonNegativeInt),
		).WithHideFunc(is(schema.ShapeRatioScalar)),
		huh.NewGroup(
			huh.NewInput().Title("Format (# any digit, ^ non-zero digit)").Value(&o.format),
		).WithHideFunc(is(schema.ShapeFormattedScalar)),
		huh.NewGroup(
			huh.NewInput().
				Title("Value (JSON)").
				Value(&o.value).
				Validate(func(s string) error {
					_, err := schema.DecodeJSON([]byte(s))
					return err
				}),
		).WithHideFunc(is(schema.ShapeConstant)),
	)
	if err := form.Run(); err != nil {
		return err
	}

	o.min, _ = strconv.Atoi(minStr)
	o.max, _ = strconv.Atoi(maxStr)
	o.ratio, _ = strconv.Atoi(ratioStr)
	return nil
}

func nonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("enter a non-negative integer")
	}
	return nil
}

// encodeDefinition renders a definition document in format.
func encodeDefinition(obj map[string]any, format schema.Format) ([]byte, error) {
	if format == schema.FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	var buf bytes.Buffer
	if err := output.JSON(&buf, obj, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
