package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"adcreative-analyzer/internal/services"
)

// BatchRunner runs one batch over the input directory.
type BatchRunner interface {
	Run(ctx context.Context) (*services.BatchReport, error)
}

// TriggerBatchHandler starts a batch run in the background.
type TriggerBatchHandler struct {
	runner  BatchRunner
	baseCtx context.Context
	logger  *zap.Logger

	mu           sync.Mutex
	isProcessing bool
	wg           sync.WaitGroup
}

// NewTriggerBatchHandler builds a TriggerBatchHandler. Background runs
// inherit baseCtx, so cancelling it stops them between videos.
func NewTriggerBatchHandler(baseCtx context.Context, runner BatchRunner, logger *zap.Logger) *TriggerBatchHandler {
	if runner == nil {
		panic("TriggerBatchHandler: runner is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriggerBatchHandler{
		runner:  runner,
		baseCtx: baseCtx,
		logger:  logger.Named("trigger_batch"),
	}
}

func (h *TriggerBatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	h.mu.Lock()
	if h.isProcessing {
		h.mu.Unlock()
		h.logger.Warn("batch already in progress")
		writeJSON(w, http.StatusConflict, map[string]string{"error": "a batch run is already in progress"})
		return
	}
	h.isProcessing = true
	h.mu.Unlock()

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer func() {
			h.mu.Lock()
			h.isProcessing = false
			h.mu.Unlock()
		}()

		h.logger.Info("manual batch started")
		report, err := h.runner.Run(h.baseCtx)
		switch {
		case errors.Is(err, services.ErrBatchInProgress):
			h.logger.Warn("manual batch skipped; another run holds the output lock")
		case err != nil:
			h.logger.Error("manual batch failed", zap.Error(err))
		default:
			h.logger.Info("manual batch finished",
				zap.Int("succeeded", report.Succeeded),
				zap.Int("failed", report.Failed),
				zap.String("output", report.OutputPath))
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"message": "batch started in the background"})
}

// Wait blocks until the background run, if any, has returned.
func (h *TriggerBatchHandler) Wait() {
	h.wg.Wait()
}
