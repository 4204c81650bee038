package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/export"
	"adcreative-analyzer/internal/models"
	"adcreative-analyzer/internal/storage/filesystem"
	"adcreative-analyzer/internal/testutil"
)

type batchFixture struct {
	cfg    *config.Config
	oracle *testutil.FakeOracle
	svc    *BatchService
	logs   *observer.ObservedLogs
}

func newBatchFixture(t *testing.T, videos ...string) *batchFixture {
	t.Helper()
	cfg := testutil.Config(t)
	require.NoError(t, os.MkdirAll(cfg.Batch.InputDir, 0o755))
	for _, v := range videos {
		testutil.WriteVideo(t, cfg.Batch.InputDir, v)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	oracle := &testutil.FakeOracle{}
	extract, err := NewExtractService(cfg, oracle, logger)
	require.NoError(t, err)
	source, err := filesystem.NewFileSystemStorage(cfg.Batch.InputDir, logger)
	require.NoError(t, err)
	svc, err := NewBatchService(cfg, extract, source, logger)
	require.NoError(t, err)
	return &batchFixture{cfg: cfg, oracle: oracle, svc: svc, logs: logs}
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := export.ReadCSV(f)
	require.NoError(t, err)
	return rows
}

func TestBatchRunContinuesPastFailures(t *testing.T) {
	fx := newBatchFixture(t, "v3.mp4", "v1.mp4", "v2.mp4", "notes.txt")
	fx.oracle.UploadErrFor = map[string]error{"v2.mp4": errors.New("connection reset")}

	report, err := fx.svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Items, 3)
	assert.Equal(t, "v2.mp4", report.Items[1].Name)
	assert.Equal(t, KindUpload, ErrorKind(report.Items[1].Err))
	assert.Equal(t, []string{"v1.mp4", "v2.mp4", "v3.mp4"}, fx.oracle.Uploads())

	want := filepath.Join(fx.cfg.Batch.OutputDir, "analysis_results.csv")
	assert.Equal(t, want, report.OutputPath)
	rows := readOutput(t, want)
	require.Len(t, rows, 3)
	assert.Equal(t, export.Header(), rows[0])
	assert.Equal(t, "v1.mp4", rows[1][0])
	assert.Equal(t, "v3.mp4", rows[2][0])

	failures := fx.logs.FilterMessage("video analysis failed").All()
	require.Len(t, failures, 1)
	fields := failures[0].ContextMap()
	assert.Equal(t, "v2.mp4", fields["video"])
	assert.Equal(t, KindUpload, fields["kind"])

	assert.Same(t, report, fx.svc.LastReport())
}

func TestBatchRunNoVideos(t *testing.T) {
	fx := newBatchFixture(t)

	report, err := fx.svc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.OutputPath)
	assert.NoFileExists(t, filepath.Join(fx.cfg.Batch.OutputDir, "analysis_results.csv"))
	assert.Equal(t, 1, fx.logs.FilterMessage("no videos found").Len())
}

func TestBatchRunAllFailedWritesNothing(t *testing.T) {
	fx := newBatchFixture(t, "a.mp4", "b.mp4")
	fx.oracle.Response = "not json at all"

	report, err := fx.svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Failed)
	assert.Empty(t, report.OutputPath)
	assert.NoFileExists(t, filepath.Join(fx.cfg.Batch.OutputDir, "analysis_results.csv"))
	assert.Equal(t, 1, fx.logs.FilterMessage("no results generated; output not written").Len())
}

func TestBatchRunXLSX(t *testing.T) {
	fx := newBatchFixture(t, "a.mp4")
	fx.cfg.Batch.Format = export.FormatXLSX

	report, err := fx.svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fx.cfg.Batch.OutputDir, "analysis_results.xlsx"), report.OutputPath)
	assert.FileExists(t, report.OutputPath)
}

func TestBatchRunRejectsConcurrentRun(t *testing.T) {
	fx := newBatchFixture(t, "a.mp4")
	require.NoError(t, os.MkdirAll(fx.cfg.Batch.OutputDir, 0o755))

	held := flock.New(filepath.Join(fx.cfg.Batch.OutputDir, lockFileName))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	_, err = fx.svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrBatchInProgress)
	assert.Empty(t, fx.oracle.Uploads())
}

func TestBatchRunCanceled(t *testing.T) {
	fx := newBatchFixture(t, "a.mp4", "b.mp4")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := fx.svc.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Items)
	assert.Empty(t, report.OutputPath)
	assert.Empty(t, fx.oracle.Uploads())
}

func TestBatchRunUnknownFormat(t *testing.T) {
	fx := newBatchFixture(t, "a.mp4")
	fx.cfg.Batch.Format = "parquet"

	_, err := fx.svc.Run(context.Background())
	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "batch.format", cfgErr.Key)
}

type itemSpan struct {
	start, end time.Time
}

// slowAnalyzer takes a fixed time per video and records when each call ran.
type slowAnalyzer struct {
	took time.Duration

	mu    sync.Mutex
	spans []itemSpan
}

func (a *slowAnalyzer) Analyze(ctx context.Context, path string) (*models.AnalysisRecord, error) {
	start := time.Now()
	time.Sleep(a.took)
	a.mu.Lock()
	a.spans = append(a.spans, itemSpan{start: start, end: time.Now()})
	a.mu.Unlock()
	return testutil.SampleRecord(), nil
}

func TestBatchRunPacesItemsAfterCompletion(t *testing.T) {
	const interval = 150 * time.Millisecond
	fx := newBatchFixture(t, "a.mp4", "b.mp4", "c.mp4")
	fx.cfg.Batch.ItemInterval = interval

	analyzer := &slowAnalyzer{took: 2 * interval}
	source, err := filesystem.NewFileSystemStorage(fx.cfg.Batch.InputDir, zap.NewNop())
	require.NoError(t, err)
	svc, err := NewBatchService(fx.cfg, analyzer, source, zap.NewNop())
	require.NoError(t, err)

	begun := time.Now()
	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Succeeded)

	require.Len(t, analyzer.spans, 3)
	assert.Less(t, analyzer.spans[0].start.Sub(begun), interval, "first video should start without waiting")
	for i := 1; i < len(analyzer.spans); i++ {
		gap := analyzer.spans[i].start.Sub(analyzer.spans[i-1].end)
		assert.GreaterOrEqual(t, gap, interval, "gap before video %d", i+1)
	}
}

func TestBatchRunZeroIntervalDoesNotWait(t *testing.T) {
	fx := newBatchFixture(t, "a.mp4", "b.mp4")
	fx.cfg.Batch.ItemInterval = 0

	analyzer := &slowAnalyzer{}
	source, err := filesystem.NewFileSystemStorage(fx.cfg.Batch.InputDir, zap.NewNop())
	require.NoError(t, err)
	svc, err := NewBatchService(fx.cfg, analyzer, source, zap.NewNop())
	require.NoError(t, err)

	_, err = svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, analyzer.spans, 2)
	assert.Less(t, analyzer.spans[1].start.Sub(analyzer.spans[0].end), 100*time.Millisecond)
}
