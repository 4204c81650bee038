package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"adcreative-analyzer/internal/models"
	"adcreative-analyzer/internal/storage/filesystem"
)

// UploadFormField is the multipart field carrying the video.
const UploadFormField = "file"

// multipartOverhead is allowed on top of the video size for form boundaries
// and headers.
const multipartOverhead = 1 << 20

// VideoAnalyzer analyzes one local video.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, path string) (*models.AnalysisRecord, error)
}

// UploadStager stores uploaded bytes for the duration of a request.
type UploadStager interface {
	SaveUpload(originalName string, r io.Reader, maxBytes int64) (string, error)
	Remove(path string) error
}

// AnalyzeHandler analyzes a single uploaded video per request.
type AnalyzeHandler struct {
	analyzer VideoAnalyzer
	stager   UploadStager
	maxBytes int64
	logger   *zap.Logger
}

// NewAnalyzeHandler builds an AnalyzeHandler accepting uploads up to maxBytes.
func NewAnalyzeHandler(analyzer VideoAnalyzer, stager UploadStager, maxBytes int64, logger *zap.Logger) *AnalyzeHandler {
	if analyzer == nil {
		panic("AnalyzeHandler: analyzer is nil")
	}
	if stager == nil {
		panic("AnalyzeHandler: stager is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzeHandler{
		analyzer: analyzer,
		stager:   stager,
		maxBytes: maxBytes,
		logger:   logger.Named("analyze_handler"),
	}
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	file, header, err := r.FormFile(UploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, "upload exceeds the size limit")
			return
		}
		h.logger.Warn("missing upload", zap.Error(err))
		writeDetail(w, http.StatusBadRequest, `multipart field "file" is required`)
		return
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	path, err := h.stager.SaveUpload(header.Filename, file, h.maxBytes)
	if err != nil {
		if errors.Is(err, filesystem.ErrTooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		h.logger.Error("failed to stage upload", zap.String("filename", header.Filename), zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer func() {
		if err := h.stager.Remove(path); err != nil {
			h.logger.Warn("failed to remove staged upload", zap.String("path", path), zap.Error(err))
		}
	}()

	h.logger.Info("analyzing upload", zap.String("filename", header.Filename), zap.Int64("bytes", header.Size))
	rec, err := h.analyzer.Analyze(r.Context(), path)
	if err != nil {
		h.logger.Error("upload analysis failed", zap.String("filename", header.Filename), zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
