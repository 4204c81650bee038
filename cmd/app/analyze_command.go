package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <video>",
		Short: "Analyze a single video and print its record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p, err := ctx.pipeline(runCtx)
			if err != nil {
				return err
			}
			defer p.Close()

			rec, err := p.extract.Analyze(runCtx, args[0])
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), output, rec)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format: yaml or json")
	return cmd
}
