package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/export"
	"adcreative-analyzer/internal/metrics"
	"adcreative-analyzer/internal/models"
)

// lockFileName guards the output directory against concurrent runs.
const lockFileName = ".analyzer.lock"

// ErrBatchInProgress is returned when another run holds the output lock.
var ErrBatchInProgress = errors.New("a batch run is already in progress")

// VideoSource lists the videos queued for a batch run.
type VideoSource interface {
	ListVideos(patterns []string) ([]string, error)
}

// ItemResult is the outcome of one video in a batch.
type ItemResult struct {
	Name     string
	Path     string
	Record   *models.AnalysisRecord
	Err      error
	Duration time.Duration
}

// BatchReport summarizes a batch run. OutputPath is empty when nothing was written.
type BatchReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Succeeded  int
	Failed     int
	Items      []ItemResult
	OutputPath string
}

// Entries returns the successful items in processing order.
func (r *BatchReport) Entries() []export.Entry {
	entries := make([]export.Entry, 0, r.Succeeded)
	for _, item := range r.Items {
		if item.Err == nil && item.Record != nil {
			entries = append(entries, export.Entry{Name: item.Name, Record: item.Record})
		}
	}
	return entries
}

// BatchService analyzes every video in the input directory, one at a time,
// and writes the successful records to a single output file.
type BatchService struct {
	cfg      *config.Config
	analyzer VideoAnalyzer
	source   VideoSource
	logger   *zap.Logger
	metrics  *metrics.Manager

	mu   sync.Mutex
	last *BatchReport
}

// BatchOption customizes a BatchService.
type BatchOption func(*BatchService)

// WithBatchMetrics records batch metrics on m.
func WithBatchMetrics(m *metrics.Manager) BatchOption {
	return func(s *BatchService) { s.metrics = m }
}

// NewBatchService builds a BatchService.
func NewBatchService(cfg *config.Config, analyzer VideoAnalyzer, source VideoSource, logger *zap.Logger, opts ...BatchOption) (*BatchService, error) {
	if cfg == nil {
		return nil, errors.New("batch service: config is nil")
	}
	if analyzer == nil {
		return nil, errors.New("batch service: analyzer is nil")
	}
	if source == nil {
		return nil, errors.New("batch service: video source is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &BatchService{
		cfg:      cfg,
		analyzer: analyzer,
		source:   source,
		logger:   logger.Named("batch"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LastReport returns the report of the most recent completed run, or nil.
func (s *BatchService) LastReport() *BatchReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Run analyzes the queued videos sequentially. Per-video failures are logged
// and counted; they never abort the run. Cancellation stops the run between
// videos and whatever finished so far is still written.
func (s *BatchService) Run(ctx context.Context) (*BatchReport, error) {
	bc := s.cfg.Batch
	writer, err := export.NewWriter(bc.Format)
	if err != nil {
		return nil, &config.ConfigurationError{Key: "batch.format", Reason: err.Error()}
	}
	if err := os.MkdirAll(bc.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", bc.OutputDir, err)
	}

	lock := flock.New(filepath.Join(bc.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return nil, ErrBatchInProgress
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release output lock", zap.Error(err))
		}
	}()

	s.metrics.SetBatchRunning(true)
	defer s.metrics.SetBatchRunning(false)

	report := &BatchReport{StartedAt: time.Now()}
	defer func() {
		s.metrics.ObserveStage(metrics.StageBatch, time.Since(report.StartedAt))
	}()

	paths, err := s.source.ListVideos(bc.Patterns)
	if err != nil {
		return nil, fmt.Errorf("list videos in %s: %w", bc.InputDir, err)
	}
	report.Total = len(paths)
	if len(paths) == 0 {
		s.logger.Warn("no videos found", zap.String("input_dir", bc.InputDir), zap.Strings("patterns", bc.Patterns))
		return s.finish(report), nil
	}
	s.logger.Info("batch started", zap.Int("videos", len(paths)), zap.String("input_dir", bc.InputDir))

	pacer := newItemPacer(bc.ItemInterval)

	var runErr error
	for i, path := range paths {
		if err := pacer.Wait(ctx); err != nil {
			runErr = fmt.Errorf("batch stopped before %s: %w", filepath.Base(path), contextErr(ctx, err))
			break
		}

		name := filepath.Base(path)
		s.logger.Info("analyzing video", zap.String("video", name), zap.Int("index", i+1), zap.Int("total", len(paths)))
		start := time.Now()
		rec, err := s.analyzer.Analyze(ctx, path)
		pacer.Settle()
		item := ItemResult{Name: name, Path: path, Record: rec, Err: err, Duration: time.Since(start)}
		report.Items = append(report.Items, item)

		if err != nil {
			report.Failed++
			s.logger.Error("video analysis failed",
				zap.String("video", name),
				zap.String("kind", ErrorKind(err)),
				zap.Error(err))
			if ctx.Err() != nil {
				runErr = fmt.Errorf("batch stopped at %s: %w", name, ctx.Err())
				break
			}
			continue
		}
		report.Succeeded++
	}

	entries := report.Entries()
	if len(entries) == 0 {
		s.logger.Warn("no results generated; output not written", zap.Int("failed", report.Failed))
		return s.finish(report), runErr
	}

	out := filepath.Join(bc.OutputDir, export.OutputName(bc.OutputFile, writer))
	if err := export.WriteFile(out, writer, entries); err != nil {
		return s.finish(report), errors.Join(runErr, fmt.Errorf("write batch output: %w", err))
	}
	report.OutputPath = out
	s.logger.Info("batch output written", zap.String("path", out), zap.Int("rows", len(entries)))
	return s.finish(report), runErr
}

func (s *BatchService) finish(report *BatchReport) *BatchReport {
	report.FinishedAt = time.Now()
	s.logger.Info("batch finished",
		zap.Int("total", report.Total),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()
	return report
}

// itemPacer keeps at least interval between one item finishing and the
// next one starting. The first item never waits.
type itemPacer struct {
	interval time.Duration
	limiter  *rate.Limiter
}

func newItemPacer(interval time.Duration) *itemPacer {
	return &itemPacer{interval: interval, limiter: rate.NewLimiter(rate.Inf, 1)}
}

// Settle starts the interval now. The fresh limiter's only token is spent
// so the next Wait blocks for a full interval.
func (p *itemPacer) Settle() {
	if p.interval <= 0 {
		return
	}
	p.limiter = rate.NewLimiter(rate.Every(p.interval), 1)
	p.limiter.Allow()
}

func (p *itemPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// contextErr prefers the context's own error over the limiter's wording.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
