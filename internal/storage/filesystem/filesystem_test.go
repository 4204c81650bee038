package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListVideosSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mp4"))
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "c.mov"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.mp4"), 0o755))

	fs, err := NewFileSystemStorage(dir, zap.NewNop())
	require.NoError(t, err)

	paths, err := fs.ListVideos([]string{"*.mp4"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.mp4"), filepath.Join(dir, "b.mp4")}, paths)

	paths, err = fs.ListVideos([]string{"*.mp4", "*.mov", "a.*"})
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestListVideosMissingDirectory(t *testing.T) {
	fs, err := NewFileSystemStorage(filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, err)

	paths, err := fs.ListVideos([]string{"*.mp4"})
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveUploadAndRemove(t *testing.T) {
	base := filepath.Join(t.TempDir(), "staging")
	fs, err := NewFileSystemStorage(base, nil)
	require.NoError(t, err)

	p1, err := fs.SaveUpload("../../etc/ad.mp4", strings.NewReader("video-bytes"), 0)
	require.NoError(t, err)
	p2, err := fs.SaveUpload("../../etc/ad.mp4", strings.NewReader("video-bytes"), 0)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, base, filepath.Dir(p1))
	assert.True(t, strings.HasSuffix(p1, "_ad.mp4"))

	data, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))

	require.NoError(t, fs.Remove(p1))
	_, err = os.Stat(p1)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, fs.Remove(p1))
}

func TestSaveUploadEnforcesLimit(t *testing.T) {
	base := t.TempDir()
	fs, err := NewFileSystemStorage(base, nil)
	require.NoError(t, err)

	_, err = fs.SaveUpload("big.mp4", strings.NewReader("0123456789"), 4)
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = fs.SaveUpload("ok.mp4", strings.NewReader("0123"), 4)
	assert.NoError(t, err)
}

func TestRemoveRefusesOutsideBase(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "keep.mp4")
	touch(t, outside)

	fs, err := NewFileSystemStorage(filepath.Join(root, "staging"), nil)
	require.NoError(t, err)

	assert.Error(t, fs.Remove(outside))
	assert.Error(t, fs.Remove(fs.BasePath()))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "ad.mp4", sanitizeName(`C:\Users\me\ad.mp4`))
	assert.Equal(t, "a_b.mp4", sanitizeName("a?b.mp4"))
	assert.Equal(t, "upload.mp4", sanitizeName(""))
}
