package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"adcreative-analyzer/internal/services"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var inputDir string
	var outputDir string
	var format string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze every video in the input directory and write one output file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if inputDir != "" {
				cfg.Batch.InputDir = inputDir
			}
			if outputDir != "" {
				cfg.Batch.OutputDir = outputDir
			}
			if format != "" {
				cfg.Batch.Format = format
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p, err := ctx.pipeline(runCtx)
			if err != nil {
				return err
			}
			defer p.Close()
			batch, err := p.batch()
			if err != nil {
				return err
			}

			report, runErr := batch.Run(runCtx)
			if report != nil {
				printBatchReport(cmd, report)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "Input directory (overrides batch.inputDir)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (overrides batch.outputDir)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: csv or xlsx (overrides batch.format)")
	return cmd
}

func printBatchReport(cmd *cobra.Command, report *services.BatchReport) {
	out := cmd.OutOrStdout()
	if report.Total == 0 {
		fmt.Fprintln(out, "No videos found.")
		return
	}

	rows := make([][]string, 0, len(report.Items))
	for _, item := range report.Items {
		result, detail := "ok", ""
		if item.Err != nil {
			result, detail = services.ErrorKind(item.Err), item.Err.Error()
		}
		rows = append(rows, []string{item.Name, result, item.Duration.Round(10 * time.Millisecond).String(), detail})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Video", "Result", "Elapsed", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))

	fmt.Fprintf(out, "%d of %d videos analyzed, %d failed.\n", report.Succeeded, report.Total, report.Failed)
	if report.OutputPath != "" {
		fmt.Fprintf(out, "Results written to %s\n", report.OutputPath)
	} else {
		fmt.Fprintln(out, "No results generated.")
	}
}
