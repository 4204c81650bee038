package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"adcreative-analyzer/internal/export"
	"adcreative-analyzer/internal/services"
)

// ReportSource exposes the most recent batch report.
type ReportSource interface {
	LastReport() *services.BatchReport
}

// ExportHandler downloads the output of the most recent batch run. When no
// run has finished in this process it falls back to the configured output
// file, which a previous CLI run may have written.
type ExportHandler struct {
	reports  ReportSource
	fallback string
	logger   *zap.Logger
}

// NewExportHandler builds an ExportHandler.
func NewExportHandler(reports ReportSource, fallback string, logger *zap.Logger) *ExportHandler {
	if reports == nil {
		panic("ExportHandler: report source is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{
		reports:  reports,
		fallback: fallback,
		logger:   logger.Named("export_handler"),
	}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeDetail(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	path := h.fallback
	if report := h.reports.LastReport(); report != nil && report.OutputPath != "" {
		path = report.OutputPath
	}
	if path == "" {
		writeDetail(w, http.StatusNotFound, "no batch output available")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeDetail(w, http.StatusNotFound, "no batch output available")
			return
		}
		h.logger.Error("failed to open batch output", zap.String("path", path), zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "failed to open batch output")
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := filepath.Base(path)
	w.Header().Set("Content-Type", contentTypeFor(name))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func contentTypeFor(name string) string {
	if strings.EqualFold(filepath.Ext(name), export.XLSXWriter{}.Extension()) {
		return export.XLSXWriter{}.ContentType()
	}
	return export.CSVWriter{}.ContentType()
}
