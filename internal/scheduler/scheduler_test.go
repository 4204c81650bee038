package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"adcreative-analyzer/internal/services"
)

type stubRunner struct {
	report *services.BatchReport
	err    error
	ran    chan struct{}
}

func (s *stubRunner) Run(ctx context.Context) (*services.BatchReport, error) {
	if s.ran != nil {
		s.ran <- struct{}{}
	}
	return s.report, s.err
}

func TestBatchJobLogsOutcome(t *testing.T) {
	cases := []struct {
		name    string
		runner  *stubRunner
		message string
		level   zapcore.Level
	}{
		{"success", &stubRunner{report: &services.BatchReport{Succeeded: 2, Failed: 1}}, "scheduled batch finished", zapcore.InfoLevel},
		{"busy", &stubRunner{err: services.ErrBatchInProgress}, "scheduled batch skipped; another run holds the output lock", zapcore.WarnLevel},
		{"failure", &stubRunner{err: errors.New("disk full")}, "scheduled batch failed", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			NewBatchJob(context.Background(), tc.runner, zap.New(core)).Run()

			entries := logs.FilterMessage(tc.message).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.level, entries[0].Level)
		})
	}
}

func TestSchedulerRunsJob(t *testing.T) {
	runner := &stubRunner{report: &services.BatchReport{}, ran: make(chan struct{}, 10)}
	s, err := NewScheduler(context.Background(), runner, "* * * * * *", zap.NewNop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	select {
	case <-runner.ran:
	case <-time.After(3 * time.Second):
		t.Fatal("batch job did not run")
	}
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	_, err := NewScheduler(context.Background(), &stubRunner{}, "every hour", zap.NewNop())
	assert.Error(t, err)
}
