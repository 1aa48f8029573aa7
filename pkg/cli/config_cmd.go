package cli

import (
	"fmt"

	"github.com/getmockd/fakegen/pkg/cli/internal/output"
	"github.com/getmockd/fakegen/pkg/cliconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigEntry is the JSON output of one configuration value.
type ConfigEntry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newConfigCmd(a *app) *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Long: `Show the effective configuration after merging defaults, the global
config file, the local .fakegenrc.yaml, FAKEGEN_* environment variables and
flags. --yaml prints it in config file form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if yamlOutput {
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(a.cfg); err != nil {
					return err
				}
				return enc.Close()
			}

			entries := make([]ConfigEntry, len(cliconfig.Keys))
			for i, key := range cliconfig.Keys {
				entries[i] = ConfigEntry{Key: key, Value: a.cfg.Value(key), Source: a.cfg.Sources[key]}
			}
			if jsonOutput {
				return output.JSON(w, entries, false)
			}

			tw := output.Table(w)
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, e := range entries {
				value := e.Value
				if value == "" {
					value = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, value, e.Source)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as a config file")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	return cmd
}
