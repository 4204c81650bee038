// Command generate-schema writes the published artifacts of the field
// catalogue: the JSON Schema, the full model instruction and the output
// column list.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/export"
	"adcreative-analyzer/internal/models"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var outDir string
	var configPath string
	var configName string

	cmd := &cobra.Command{
		Use:           "generate-schema",
		Short:         "Write schema.json, prompt.txt and columns.csv",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, configName)
			if err != nil {
				return err
			}
			task, err := cfg.Prompts.VideoAnalysis.Current()
			if err != nil {
				return err
			}
			written, err := generate(outDir, task)
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "schema", "Output directory")
	cmd.Flags().StringVar(&configPath, "config", "./configs", "Directory holding the configuration file")
	cmd.Flags().StringVar(&configName, "config-name", "config", "Configuration file name without extension")
	return cmd
}

// generate writes every artifact into outDir and returns the paths written.
func generate(outDir, task string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	schema, err := models.JSONSchemaBytes()
	if err != nil {
		return nil, err
	}
	artifacts := []struct {
		name    string
		content []byte
	}{
		{"schema.json", append(schema, '\n')},
		{"prompt.txt", []byte(task + "\n\n" + models.RenderInstructions(models.Fields()) + "\n")},
		{"columns.csv", []byte(strings.Join(export.Header(), ",") + "\n")},
	}

	var written []string
	var errs []error
	for _, a := range artifacts {
		path := filepath.Join(outDir, a.name)
		if err := os.WriteFile(path, a.content, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}
