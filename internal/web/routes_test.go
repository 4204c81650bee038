package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adcreative-analyzer/internal/metrics"
	"adcreative-analyzer/internal/services"
	"adcreative-analyzer/internal/storage/filesystem"
	"adcreative-analyzer/internal/testutil"
)

func newTestServer(t *testing.T) (*httptest.Server, *metrics.Manager) {
	t.Helper()
	cfg := testutil.Config(t)
	m := metrics.NewManager()

	extract, err := services.NewExtractService(cfg, &testutil.FakeOracle{}, zap.NewNop(), services.WithMetrics(m))
	require.NoError(t, err)
	inputs, err := filesystem.NewFileSystemStorage(cfg.Batch.InputDir, zap.NewNop())
	require.NoError(t, err)
	uploads, err := filesystem.NewFileSystemStorage(cfg.Server.TempDir, zap.NewNop())
	require.NoError(t, err)
	batch, err := services.NewBatchService(cfg, extract, inputs, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv := httptest.NewServer(SetupRouter(cfg, Dependencies{
		Analyzer: extract,
		Stager:   uploads,
		Batch:    batch,
		Metrics:  m,
		Logger:   zap.NewNop(),
		BaseCtx:  ctx,
	}))
	t.Cleanup(srv.Close)
	return srv, m
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	code, _ = get(t, srv.URL+"/schema")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, srv.URL+"/schema.json")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, srv.URL+"/export")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, srv.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutesExposeMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	get(t, srv.URL+"/healthz")
	get(t, srv.URL+"/healthz")
	get(t, srv.URL+"/nope")

	code, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `adcreative_http_requests_total{code="200",path="/healthz"} 2`)
	assert.Contains(t, body, `adcreative_http_requests_total{code="404",path="other"} 1`)
}
