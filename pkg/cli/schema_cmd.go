package cli

import (
	"github.com/getmockd/fakegen/pkg/lint"
	"github.com/spf13/cobra"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the definition format",
		Long: `Print the JSON Schema (draft 2020-12) describing definition files.
Point an editor's JSON Schema support at it for completion and inline
errors. Array counts are bounded by --max-count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := lint.SchemaJSON(a.cfg.MaxCount)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
