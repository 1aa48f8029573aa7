package cli

import (
	"fmt"
	"strings"

	"github.com/getmockd/fakegen/pkg/cli/internal/output"
	"github.com/getmockd/fakegen/pkg/schema"
	"github.com/spf13/cobra"
)

// TagInfo is the JSON output of one registered tag.
type TagInfo struct {
	Tag    string   `json:"tag"`
	Shape  string   `json:"shape"`
	Fields []string `json:"fields"`
}

var allShapes = []schema.Shape{
	schema.ShapeScalar,
	schema.ShapeRangedScalar,
	schema.ShapeRatioScalar,
	schema.ShapeFormattedScalar,
	schema.ShapeArray,
	schema.ShapeMap,
	schema.ShapeConstant,
}

func parseShape(s string) (schema.Shape, error) {
	for _, shape := range allShapes {
		if strings.EqualFold(s, shape.String()) {
			return shape, nil
		}
	}
	names := make([]string, len(allShapes))
	for i, shape := range allShapes {
		names[i] = shape.String()
	}
	return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownShape, s, strings.Join(names, ", "))
}

func newTagsCmd() *cobra.Command {
	var (
		jsonOutput bool
		shapeName  string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the generator tags a definition can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := schema.Tags()
			if shapeName != "" {
				shape, err := parseShape(shapeName)
				if err != nil {
					return err
				}
				tags = schema.TagsOf(shape)
			}

			infos := make([]TagInfo, 0, len(tags))
			for _, tag := range tags {
				shape, _ := schema.ShapeOf(tag)
				fields := append([]string{}, shape.RequiredFields()...)
				switch shape {
				case schema.ShapeArray:
					fields = append(fields, "<template>")
				case schema.ShapeMap:
					fields = append(fields, "<field>...")
				}
				infos = append(infos, TagInfo{Tag: string(tag), Shape: shape.String(), Fields: fields})
			}

			if jsonOutput {
				return output.JSON(cmd.OutOrStdout(), infos, false)
			}
			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "TAG\tSHAPE\tFIELDS")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Tag, info.Shape, strings.Join(info.Fields, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&shapeName, "shape", "", "Only list tags of this shape")
	return cmd
}
