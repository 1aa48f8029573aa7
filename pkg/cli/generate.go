package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getmockd/fakegen/pkg/cli/internal/output"
	"github.com/getmockd/fakegen/pkg/fake"
	"github.com/getmockd/fakegen/pkg/generate"
	"github.com/getmockd/fakegen/pkg/schemafile"
	"github.com/spf13/cobra"
)

// runGenerate compiles the definition once and evaluates it count times.
func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("json")
	if err != nil {
		return err
	}
	switch {
	case path != "" && len(args) == 1:
		return ErrConflictingInput
	case len(args) == 1:
		path = args[0]
	case path == "":
		return ErrNoDefinition
	}

	start := time.Now()
	def, err := schemafile.LoadDefinition(path, a.compiler())
	if err != nil {
		return withPath(path, err)
	}
	a.logger.Debug("definition loaded", "path", path, "fields", len(def.Names()), "elapsed", time.Since(start))

	opts := []generate.Option{
		generate.WithWorkers(a.cfg.Workers),
		generate.WithLogger(a.logger),
	}
	if a.cfg.Seed != nil {
		opts = append(opts, generate.WithSeed(*a.cfg.Seed))
	}
	v, err := generate.NewRunner(fake.New(), opts...).Run(cmd.Context(), def, a.cfg.Count)
	if err != nil {
		return err
	}

	return a.writeOutput(cmd.OutOrStdout(), v)
}

// writeOutput writes v to the configured output file, or to stdout.
func (a *app) writeOutput(stdout io.Writer, v any) error {
	if a.cfg.Output == "" || a.cfg.Output == "-" {
		return output.JSON(stdout, v, a.cfg.Compact)
	}

	f, err := os.Create(a.cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := output.JSON(f, v, a.cfg.Compact); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", a.cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.cfg.Output, err)
	}
	a.logger.Info("output written", "path", a.cfg.Output, "records", a.cfg.Count)
	return nil
}

// withPath prefixes compile errors with the file they came from. Load
// errors already carry it.
func withPath(path string, err error) error {
	var le *schemafile.LoadError
	if errors.As(err, &le) {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}
