package main

import (
	"github.com/spf13/cobra"
)

const (
	defaultConfigPath = "./configs"
	defaultConfigName = "config"
)

func newRootCommand(newOracle oracleFactory) *cobra.Command {
	var configPath string
	var configName string

	ctx := newCommandContext(&configPath, &configName, newOracle)

	rootCmd := &cobra.Command{
		Use:           "adcreative",
		Short:         "Tag mobile game ad videos with a fixed creative taxonomy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Directory holding the configuration file")
	rootCmd.PersistentFlags().StringVar(&configName, "config-name", defaultConfigName, "Configuration file name without extension")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newSchemaCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
