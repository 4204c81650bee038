package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/metrics"
	"adcreative-analyzer/internal/models"
)

const cleanupTimeout = 30 * time.Second

var errStillProcessing = errors.New("video still processing")

// ExtractService runs one video through upload, processing wait, model
// invocation and response coercion.
type ExtractService struct {
	cfg     *config.Config
	oracle  VideoOracle
	logger  *zap.Logger
	metrics *metrics.Manager

	fields      []models.Field
	instruction string
	pollTimer   retry.Timer
}

// ExtractOption customizes an ExtractService.
type ExtractOption func(*ExtractService)

// WithMetrics records pipeline metrics on m.
func WithMetrics(m *metrics.Manager) ExtractOption {
	return func(s *ExtractService) { s.metrics = m }
}

// WithPollTimer replaces the timer used between status fetches.
func WithPollTimer(t retry.Timer) ExtractOption {
	return func(s *ExtractService) { s.pollTimer = t }
}

// NewExtractService builds an ExtractService. The instruction sent to the
// model is the configured task prompt followed by the rendered field guide.
func NewExtractService(cfg *config.Config, oracle VideoOracle, logger *zap.Logger, opts ...ExtractOption) (*ExtractService, error) {
	if cfg == nil {
		return nil, errors.New("extract service: config is nil")
	}
	if oracle == nil {
		return nil, errors.New("extract service: oracle is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	task, err := cfg.Prompts.VideoAnalysis.Current()
	if err != nil {
		return nil, err
	}

	fields := models.Fields()
	s := &ExtractService{
		cfg:         cfg,
		oracle:      oracle,
		logger:      logger.Named("extract"),
		fields:      fields,
		instruction: task + "\n\n" + models.RenderInstructions(fields),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Info("extract service initialized",
		zap.String("prompt_version", cfg.Prompts.VideoAnalysis.CurrentVersion),
		zap.Int("fields", len(fields)))
	return s, nil
}

// Instruction returns the full text sent with every video.
func (s *ExtractService) Instruction() string {
	return s.instruction
}

// Analyze uploads the video at path, waits until the provider has processed
// it, asks the model for a record and validates the answer. Every failure is
// returned as one of the package's typed errors; nothing is retried here.
func (s *ExtractService) Analyze(ctx context.Context, path string) (*models.AnalysisRecord, error) {
	rec, err := s.analyze(ctx, path)
	if err != nil {
		s.metrics.RecordVideo(metrics.OutcomeFailure)
		s.metrics.RecordError(ErrorKind(err))
		return nil, err
	}
	s.metrics.RecordVideo(metrics.OutcomeSuccess)
	return rec, nil
}

func (s *ExtractService) analyze(ctx context.Context, path string) (*models.AnalysisRecord, error) {
	asset, err := models.NewVideoAsset(path)
	if err != nil {
		return nil, &UploadError{Path: path, Op: "upload", Err: err}
	}
	log := s.logger.With(zap.String("video", asset.Name))

	remote, err := s.upload(ctx, asset)
	if err != nil {
		return nil, err
	}
	if s.cfg.GeminiClient.DeleteAfterAnalysis {
		defer s.cleanup(ctx, log, remote.Name)
	}

	remote, err = s.waitUntilProcessed(ctx, log, asset, remote)
	if err != nil {
		return nil, err
	}
	if remote.State == models.RemoteStateFailed {
		log.Warn("provider failed to process video", zap.String("reason", remote.FailureReason))
		return nil, &ProcessingFailedError{Name: asset.Name, Reason: remote.FailureReason}
	}

	raw, err := s.invoke(ctx, log, asset, remote)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rec, err := CoerceRecord(raw)
	s.metrics.ObserveStage(metrics.StageCoercion, time.Since(start))
	if err != nil {
		log.Warn("response did not fit the schema", zap.Error(err), zap.String("raw", firstNChars(raw, 500)))
		return nil, err
	}
	log.Info("video analyzed",
		zap.String("genre", string(rec.PrimaryGenre)),
		zap.Bool("fake_gameplay", rec.IsFakeGameplay))
	return rec, nil
}

func (s *ExtractService) upload(ctx context.Context, asset models.VideoAsset) (*models.RemoteAsset, error) {
	timeout := s.cfg.GeminiClient.RequestTimeout
	callCtx, cancel := withOptionalTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	remote, err := s.oracle.UploadVideo(callCtx, asset)
	s.metrics.ObserveStage(metrics.StageUpload, time.Since(start))
	if err != nil {
		uploadErr := &UploadError{Path: asset.Path, Op: "upload", Err: err}
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, &TimeoutError{Stage: "upload", After: timeout, Err: uploadErr}
		}
		return nil, uploadErr
	}
	if remote == nil {
		return nil, &UploadError{Path: asset.Path, Op: "upload", Err: errors.New("provider returned no asset")}
	}
	return remote, nil
}

// waitUntilProcessed polls the provider until the asset leaves the pending
// state. The first fetch happens immediately; later ones follow the
// configured delay policy, bounded by maxAttempts and the polling deadline.
func (s *ExtractService) waitUntilProcessed(ctx context.Context, log *zap.Logger, asset models.VideoAsset, remote *models.RemoteAsset) (*models.RemoteAsset, error) {
	if remote.State != models.RemoteStatePending {
		s.metrics.ObservePollAttempts(0)
		return remote, nil
	}

	pc := s.cfg.Polling
	pollCtx, cancel := withOptionalTimeout(ctx, pc.Deadline)
	defer cancel()

	delayType := retry.FixedDelay
	if pc.Backoff == "exponential" {
		delayType = retry.BackOffDelay
	}
	opts := []retry.Option{
		retry.Context(pollCtx),
		retry.Attempts(pc.MaxAttempts),
		retry.Delay(pc.Interval),
		retry.DelayType(delayType),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return errors.Is(err, errStillProcessing) }),
		retry.OnRetry(func(n uint, _ error) {
			log.Debug("video still processing", zap.Uint("attempt", n+1))
		}),
	}
	if pc.MaxInterval > 0 {
		opts = append(opts, retry.MaxDelay(pc.MaxInterval))
	}
	if s.pollTimer != nil {
		opts = append(opts, retry.WithTimer(s.pollTimer))
	}

	log.Info("waiting for video processing", zap.String("name", remote.Name))
	start := time.Now()
	fetches := 0
	current, err := retry.DoWithData(func() (*models.RemoteAsset, error) {
		fetches++
		a, err := s.oracle.GetVideo(pollCtx, remote.Name)
		if err != nil {
			return nil, &UploadError{Path: asset.Path, Op: "status", Err: err}
		}
		if a == nil {
			return nil, &UploadError{Path: asset.Path, Op: "status", Err: errors.New("provider returned no asset")}
		}
		if a.State == models.RemoteStatePending {
			return nil, errStillProcessing
		}
		return a, nil
	}, opts...)
	s.metrics.ObservePollAttempts(fetches)
	s.metrics.ObserveStage(metrics.StageProcessing, time.Since(start))

	switch {
	case err == nil:
		log.Info("video processed", zap.String("state", string(current.State)), zap.Int("status_checks", fetches))
		return current, nil
	case ctx.Err() != nil:
		return nil, fmt.Errorf("wait for %s: %w", asset.Name, ctx.Err())
	case errors.Is(err, errStillProcessing):
		return nil, &TimeoutError{Stage: "processing", Err: fmt.Errorf("%s still processing after %d status checks", asset.Name, fetches)}
	case pollCtx.Err() != nil:
		return nil, &TimeoutError{Stage: "processing", After: pc.Deadline, Err: err}
	default:
		return nil, err
	}
}

func (s *ExtractService) invoke(ctx context.Context, log *zap.Logger, asset models.VideoAsset, remote *models.RemoteAsset) (string, error) {
	timeout := s.cfg.GeminiClient.RequestTimeout
	callCtx, cancel := withOptionalTimeout(ctx, timeout)
	defer cancel()

	log.Info("invoking model")
	start := time.Now()
	raw, err := s.oracle.GenerateStructured(callCtx, models.GenerationRequest{
		Asset:       remote,
		Instruction: s.instruction,
		Fields:      s.fields,
	})
	s.metrics.ObserveStage(metrics.StageInvocation, time.Since(start))
	if err != nil {
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", &TimeoutError{Stage: "invocation", After: timeout, Err: err}
		}
		return "", &InvocationError{Name: asset.Name, Err: err}
	}
	return raw, nil
}

// cleanup deletes the remote copy. It runs even when ctx is already done and
// only logs failures.
func (s *ExtractService) cleanup(ctx context.Context, log *zap.Logger, name string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := s.oracle.DeleteVideo(cleanupCtx, name); err != nil {
		log.Warn("failed to delete remote video", zap.String("name", name), zap.Error(err))
		return
	}
	log.Debug("remote video deleted", zap.String("name", name))
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func firstNChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
