package scheduler

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"adcreative-analyzer/internal/services"
)

// BatchRunner runs one batch over the input directory.
type BatchRunner interface {
	Run(ctx context.Context) (*services.BatchReport, error)
}

// BatchJob is a cron job running one batch per tick.
type BatchJob struct {
	ctx    context.Context
	runner BatchRunner
	logger *zap.Logger
}

// NewBatchJob builds a BatchJob. Runs inherit ctx.
func NewBatchJob(ctx context.Context, runner BatchRunner, logger *zap.Logger) *BatchJob {
	return &BatchJob{ctx: ctx, runner: runner, logger: logger.Named("batch_job")}
}

// Run implements cron.Job.
func (j *BatchJob) Run() {
	j.logger.Info("scheduled batch started")
	report, err := j.runner.Run(j.ctx)
	switch {
	case errors.Is(err, services.ErrBatchInProgress):
		j.logger.Warn("scheduled batch skipped; another run holds the output lock")
	case err != nil:
		j.logger.Error("scheduled batch failed", zap.Error(err))
	default:
		j.logger.Info("scheduled batch finished",
			zap.Int("succeeded", report.Succeeded),
			zap.Int("failed", report.Failed),
			zap.String("output", report.OutputPath))
	}
}
