package testutil

import (
	"context"
	"errors"
	"path"
	"strings"
	"sync"
	"time"

	"adcreative-analyzer/internal/models"
)

// FakeOracle is an in-memory video oracle. Zero value uploads straight to
// ready and answers every request with SampleResponse.
type FakeOracle struct {
	// UploadState is the state returned by UploadVideo. Empty means ready.
	UploadState models.RemoteState
	// States are returned by successive GetVideo calls for the same video;
	// the last one repeats. Empty means ready.
	States        []models.RemoteState
	FailureReason string

	UploadErr    error
	UploadErrFor map[string]error
	GetErr       error
	// Response is returned by GenerateStructured when set; ResponseFor
	// overrides it per video file name.
	Response    string
	ResponseFor map[string]string
	GenerateErr error
	// GenerateDelay blocks GenerateStructured until it elapses or the context ends.
	GenerateDelay time.Duration
	DeleteErr     error

	mu       sync.Mutex
	polls    map[string]int
	uploads  []string
	gets     int
	requests []models.GenerationRequest
	deleted  []string
}

func (f *FakeOracle) UploadVideo(ctx context.Context, asset models.VideoAsset) (*models.RemoteAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, asset.Name)
	if err := f.UploadErrFor[asset.Name]; err != nil {
		return nil, err
	}
	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	state := f.UploadState
	if state == "" {
		state = models.RemoteStateReady
	}
	return f.asset(asset.Name, asset.MIMEType, state), nil
}

func (f *FakeOracle) GetVideo(ctx context.Context, name string) (*models.RemoteAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	if f.polls == nil {
		f.polls = make(map[string]int)
	}
	state := models.RemoteStateReady
	if n := len(f.States); n > 0 {
		i := f.polls[name]
		if i >= n {
			i = n - 1
		}
		state = f.States[i]
	}
	f.polls[name]++
	return f.asset(strings.TrimPrefix(name, "files/"), "video/mp4", state), nil
}

func (f *FakeOracle) GenerateStructured(ctx context.Context, req models.GenerationRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	delay := f.GenerateDelay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.GenerateErr != nil {
		return "", f.GenerateErr
	}
	if req.Asset == nil {
		return "", errors.New("no asset")
	}
	if r, ok := f.ResponseFor[path.Base(req.Asset.Name)]; ok {
		return r, nil
	}
	if f.Response != "" {
		return f.Response, nil
	}
	return SampleResponse(), nil
}

func (f *FakeOracle) DeleteVideo(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, name)
	return f.DeleteErr
}

func (f *FakeOracle) asset(name, mimeType string, state models.RemoteState) *models.RemoteAsset {
	a := &models.RemoteAsset{
		Name:     "files/" + name,
		URI:      "https://fake.invalid/files/" + name,
		MIMEType: mimeType,
		State:    state,
	}
	if state == models.RemoteStateFailed {
		a.FailureReason = f.FailureReason
	}
	return a
}

// Uploads returns the names of uploaded videos in call order.
func (f *FakeOracle) Uploads() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

// Gets returns the number of GetVideo calls.
func (f *FakeOracle) Gets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

// Requests returns every generation request received.
func (f *FakeOracle) Requests() []models.GenerationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.GenerationRequest(nil), f.requests...)
}

// Deleted returns the names passed to DeleteVideo.
func (f *FakeOracle) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// InstantTimer fires immediately and records the requested delays.
type InstantTimer struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (t *InstantTimer) After(d time.Duration) <-chan time.Time {
	t.mu.Lock()
	t.delays = append(t.delays, d)
	t.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// Delays returns the delays requested so far.
func (t *InstantTimer) Delays() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]time.Duration(nil), t.delays...)
}
