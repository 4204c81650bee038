package web

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/export"
	"adcreative-analyzer/internal/metrics"
	"adcreative-analyzer/internal/web/handlers"
)

// BatchService is what the router needs from the batch runner.
type BatchService interface {
	handlers.BatchRunner
	handlers.ReportSource
}

// Dependencies wires the HTTP front-end to the analysis pipeline.
type Dependencies struct {
	Analyzer handlers.VideoAnalyzer
	Stager   handlers.UploadStager
	Batch    BatchService
	Metrics  *metrics.Manager
	Logger   *zap.Logger
	// BaseCtx bounds background batch runs; cancel it on shutdown.
	BaseCtx context.Context
}

// SetupRouter registers every route.
func SetupRouter(cfg *config.Config, deps Dependencies) http.Handler {
	if deps.Analyzer == nil || deps.Stager == nil || deps.Batch == nil {
		panic("SetupRouter: analyzer, stager and batch service are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	baseCtx := deps.BaseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	maxBytes := cfg.Server.MaxUploadMB << 20

	mux := http.NewServeMux()
	route := func(pattern string, h http.Handler) {
		mux.Handle(pattern, instrument(pattern, h, deps.Metrics, logger))
	}

	route("/analyze", handlers.NewAnalyzeHandler(deps.Analyzer, deps.Stager, maxBytes, logger))
	route("/manual-batch", handlers.NewTriggerBatchHandler(baseCtx, deps.Batch, logger))
	route("/export", handlers.NewExportHandler(deps.Batch, defaultOutputPath(cfg), logger))
	route("/schema", handlers.NewSchemaHandler())
	route("/schema.json", handlers.NewJSONSchemaHandler())
	route("/healthz", http.HandlerFunc(handlers.HealthHandler))
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}
	mux.Handle("/", instrument("other", http.NotFoundHandler(), deps.Metrics, logger))

	logger.Info("http routes registered")
	return mux
}

// defaultOutputPath is where a batch run with the current settings writes.
func defaultOutputPath(cfg *config.Config) string {
	w, err := export.NewWriter(cfg.Batch.Format)
	if err != nil {
		return ""
	}
	return filepath.Join(cfg.Batch.OutputDir, export.OutputName(cfg.Batch.OutputFile, w))
}

// instrument counts requests per route and logs each one at debug level.
func instrument(label string, next http.Handler, m *metrics.Manager, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.RecordHTTPRequest(label, rec.status)
		logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("remote", r.RemoteAddr))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
