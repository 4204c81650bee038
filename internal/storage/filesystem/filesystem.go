package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTooLarge is returned by SaveUpload when the payload exceeds its limit.
var ErrTooLarge = errors.New("upload exceeds size limit")

// FileSystemStorage manages video files under one base directory: it lists
// batch inputs and stages uploaded files for analysis.
type FileSystemStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewFileSystemStorage resolves basePath. The directory is not created; call
// EnsureBase before writing.
func NewFileSystemStorage(basePath string, logger *zap.Logger) (*FileSystemStorage, error) {
	if basePath == "" {
		return nil, errors.New("storage base path is empty")
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve storage path %s: %w", basePath, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSystemStorage{basePath: abs, logger: logger.Named("storage")}, nil
}

// BasePath returns the absolute base directory.
func (fs *FileSystemStorage) BasePath() string {
	return fs.basePath
}

// EnsureBase creates the base directory when it does not exist.
func (fs *FileSystemStorage) EnsureBase() error {
	info, err := os.Stat(fs.basePath)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("storage path %s is not a directory", fs.basePath)
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("stat storage path %s: %w", fs.basePath, err)
	}
	fs.logger.Info("creating storage directory", zap.String("path", fs.basePath))
	if err := os.MkdirAll(fs.basePath, 0o755); err != nil {
		return fmt.Errorf("create storage path %s: %w", fs.basePath, err)
	}
	return nil
}

// ListVideos returns the regular files in the base directory matching any of
// patterns, sorted by name. A missing directory yields no files.
func (fs *FileSystemStorage) ListVideos(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(fs.basePath, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	fs.logger.Debug("scanned for videos",
		zap.String("path", fs.basePath),
		zap.Strings("patterns", patterns),
		zap.Int("found", len(paths)))
	return paths, nil
}

// SaveUpload writes r to a uniquely named file in the base directory and
// returns its absolute path. The original extension is kept so the MIME type
// can still be detected. When maxBytes is positive and r is longer, the
// partial file is removed and ErrTooLarge returned.
func (fs *FileSystemStorage) SaveUpload(originalName string, r io.Reader, maxBytes int64) (string, error) {
	if err := fs.EnsureBase(); err != nil {
		return "", err
	}
	target := filepath.Join(fs.basePath, uuid.NewString()+"_"+sanitizeName(originalName))

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}

	src := r
	if maxBytes > 0 {
		src = io.LimitReader(r, maxBytes+1)
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		_ = os.Remove(target)
		return "", fmt.Errorf("write staging file: %w", copyErr)
	case closeErr != nil:
		_ = os.Remove(target)
		return "", fmt.Errorf("close staging file: %w", closeErr)
	case maxBytes > 0 && n > maxBytes:
		_ = os.Remove(target)
		return "", ErrTooLarge
	}
	fs.logger.Debug("staged upload", zap.String("path", target), zap.Int64("bytes", n))
	return target, nil
}

// Remove deletes a file inside the base directory. Missing files are not an
// error; paths outside the base directory are refused.
func (fs *FileSystemStorage) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	rel, err := filepath.Rel(fs.basePath, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return fmt.Errorf("refusing to remove %s outside %s", path, fs.basePath)
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", abs, err)
	}
	return nil
}

// sanitizeName keeps the base name of an uploaded file and replaces
// characters that are awkward in paths.
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload.mp4"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < 32, r == '/', r == ':', r == '*', r == '?', r == '"', r == '<', r == '>', r == '|':
			return '_'
		}
		return r
	}, name)
}
