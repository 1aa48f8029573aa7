package cli

import (
	"fmt"
	"io"

	"github.com/getmockd/fakegen/pkg/cli/internal/output"
	"github.com/getmockd/fakegen/pkg/schemafile"
	"github.com/spf13/cobra"
)

// ValidateResult is the JSON output of one validated file.
type ValidateResult struct {
	Path   string `json:"path"`
	Valid  bool   `json:"valid"`
	Fields int    `json:"fields,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <file|glob>...",
		Short: "Compile definition files without generating data",
		Long: `Compile each definition file and report whether it is valid. Patterns
are expanded; "**" matches across directories.`,
		Example: `  fakegen validate user.json
  fakegen validate 'definitions/**/*.{json,yaml}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := schemafile.Expand(args)
			if err != nil {
				return err
			}

			c := a.compiler()
			results := make([]ValidateResult, 0, len(paths))
			failed := 0
			for _, path := range paths {
				r := ValidateResult{Path: path, Valid: true}
				def, err := schemafile.LoadDefinition(path, c)
				if err != nil {
					r.Valid = false
					r.Error = withPath(path, err).Error()
					failed++
				} else {
					r.Fields = len(def.Names())
				}
				results = append(results, r)
			}
			a.logger.Debug("validated definitions", "files", len(paths), "failed", failed)

			if jsonOutput {
				if err := output.JSON(cmd.OutOrStdout(), results, false); err != nil {
					return err
				}
			} else {
				printValidateResults(cmd.OutOrStdout(), results)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files invalid", ErrValidationFailed, failed, len(paths))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	return cmd
}

func printValidateResults(w io.Writer, results []ValidateResult) {
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "ok    %s (%d fields)\n", r.Path, r.Fields)
		} else {
			fmt.Fprintf(w, "FAIL  %s\n", r.Error)
		}
	}
}
