package cli

import (
	"fmt"
	"io"

	"github.com/getmockd/fakegen/pkg/cli/internal/output"
	"github.com/getmockd/fakegen/pkg/lint"
	"github.com/getmockd/fakegen/pkg/schemafile"
	"github.com/spf13/cobra"
)

// LintResult is the JSON output of one linted file.
type LintResult struct {
	Path       string           `json:"path"`
	Valid      bool             `json:"valid"`
	Error      string           `json:"error,omitempty"`
	Violations []lint.Violation `json:"violations,omitempty"`
}

func newLintCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lint <file|glob>...",
		Short: "Check definition files against the definition JSON Schema",
		Long: `Check each definition file against the JSON Schema printed by
"fakegen schema" and report every violation, where validate stops at the
first error in a file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := schemafile.Expand(args)
			if err != nil {
				return err
			}
			linter, err := lint.New(a.cfg.MaxCount)
			if err != nil {
				return err
			}

			results := make([]LintResult, 0, len(paths))
			failed := 0
			for _, path := range paths {
				r := LintResult{Path: path}
				doc, err := schemafile.Load(path)
				if err == nil {
					r.Violations, err = linter.Lint(doc)
				}
				if err != nil {
					r.Error = err.Error()
				}
				r.Valid = err == nil && len(r.Violations) == 0
				if !r.Valid {
					failed++
				}
				results = append(results, r)
			}

			if jsonOutput {
				if err := output.JSON(cmd.OutOrStdout(), results, false); err != nil {
					return err
				}
			} else {
				printLintResults(cmd.OutOrStdout(), results)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files have problems", ErrLintFailed, failed, len(paths))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	return cmd
}

func printLintResults(w io.Writer, results []LintResult) {
	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(w, "FAIL  %s\n", r.Error)
		case r.Valid:
			fmt.Fprintf(w, "ok    %s\n", r.Path)
		default:
			fmt.Fprintf(w, "FAIL  %s\n", r.Path)
			for _, v := range r.Violations {
				fmt.Fprintf(w, "      %s [%s]\n", v, v.Keyword)
			}
		}
	}
}
