package models

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RemoteState is the processing state of an asset staged on the model provider.
type RemoteState string

const (
	RemoteStatePending RemoteState = "pending" // uploaded, still being transcoded/indexed
	RemoteStateReady   RemoteState = "ready"   // usable in a generation request
	RemoteStateFailed  RemoteState = "failed"  // provider gave up processing the asset
)

// VideoAsset is a local video file queued for analysis.
type VideoAsset struct {
	Path      string
	Name      string
	MIMEType  string
	SizeBytes int64
	ModTime   time.Time
}

// RemoteAsset is a transient handle to a video uploaded to the provider. It
// lives for the duration of one analysis and is never persisted.
type RemoteAsset struct {
	Name          string
	URI           string
	MIMEType      string
	State         RemoteState
	FailureReason string
}

// GenerationRequest is one structured-output call against a ready asset.
type GenerationRequest struct {
	Asset       *RemoteAsset
	Instruction string
	Fields      []Field
}

// NewVideoAsset stats path and detects its MIME type.
func NewVideoAsset(path string) (VideoAsset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return VideoAsset{}, fmt.Errorf("stat video %s: %w", path, err)
	}
	if info.IsDir() {
		return VideoAsset{}, fmt.Errorf("video path %s is a directory", path)
	}
	return VideoAsset{
		Path:      path,
		Name:      filepath.Base(path),
		MIMEType:  DetectVideoMIME(path),
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// DetectVideoMIME maps a file extension to a video MIME type, defaulting to
// video/mp4.
func DetectVideoMIME(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp4", "":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".mpeg", ".mpg":
		return "video/mpeg"
	case ".avi":
		return "video/x-msvideo"
	case ".wmv":
		return "video/x-ms-wmv"
	case ".flv":
		return "video/x-flv"
	case ".webm":
		return "video/webm"
	case ".3gp":
		return "video/3gpp"
	}
	if m := mime.TypeByExtension(ext); strings.HasPrefix(m, "video/") {
		return strings.SplitN(m, ";", 2)[0]
	}
	return "video/mp4"
}
