package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"adcreative-analyzer/internal/models"
)

const (
	outputTable      = "table"
	outputPrompt     = "prompt"
	outputJSONSchema = "jsonschema"
)

func newSchemaCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the field catalogue, the JSON Schema or the model instruction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch output {
			case outputTable:
				fmt.Fprintln(out, renderFieldTable(models.Describe()))
				return nil
			case outputJSON, outputYAML:
				return writeStructured(out, output, models.Describe())
			case outputJSONSchema:
				return writeStructured(out, outputJSON, models.JSONSchema())
			case outputPrompt:
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				task, err := cfg.Prompts.VideoAnalysis.Current()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, task+"\n\n"+models.RenderInstructions(models.Fields()))
				return nil
			default:
				return fmt.Errorf("unknown output %q (want table, json, yaml, jsonschema or prompt)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output: table, json, yaml, jsonschema or prompt")
	return cmd
}

func renderFieldTable(fields []models.FieldDescriptor) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		values := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			values = append(values, v.Value)
		}
		rows = append(rows, []string{
			f.Name,
			string(f.Section),
			f.Shape,
			yesNo(f.Required),
			strconv.Itoa(len(values)),
			strings.Join(values, "\n"),
		})
	}
	return renderTable(
		[]string{"Field", "Section", "Shape", "Required", "Tags", "Values"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
