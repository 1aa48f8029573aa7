// Package schemafile reads definition documents from disk or stdin and
// expands file patterns.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/getmockd/fakegen/pkg/schema"
)

// Stdin is the path that reads the definition from standard input.
const Stdin = "-"

// ErrNoMatch is returned when a glob pattern matches no files.
var ErrNoMatch = errors.New("pattern matched no files")

// LoadError wraps a failure to read or decode a definition file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FormatFor picks the document format from the file extension. Unknown
// extensions yield "" and the content is sniffed.
func FormatFor(path string) schema.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return schema.FormatJSON
	case ".yaml", ".yml":
		return schema.FormatYAML
	default:
		return ""
	}
}

// Sniff guesses the format of data: documents starting with '{' or '['
// are JSON, anything else YAML.
func Sniff(data []byte) schema.Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return schema.FormatJSON
	}
	return schema.FormatYAML
}

// Load reads and decodes the document at path. Path "-" reads stdin.
func Load(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	doc, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return doc, nil
}

// Decode decodes data as format, sniffing it when format is empty.
func Decode(data []byte, format schema.Format) (any, error) {
	if format == "" {
		format = Sniff(data)
	}
	return schema.Decode(data, format)
}

// LoadDefinition loads the document at path and compiles it with c.
// Compile errors are returned unwrapped so callers can inspect them with
// errors.As.
func LoadDefinition(path string, c *schema.Compiler) (*schema.Definition, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return c.Compile(doc)
}

// Expand resolves file arguments to paths. Arguments containing glob
// metacharacters are expanded; "**" matches across directories. Literal
// paths pass through unchanged so a missing file is reported on load.
// The result keeps argument order and drops duplicates.
func Expand(args []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		if arg == Stdin || !hasMeta(arg) {
			add(arg)
			continue
		}
		matches, err := expandGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}
	return filepath.Glob(pattern)
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[{`)
}
