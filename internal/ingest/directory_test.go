package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanDirectoryFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoice-1.pdf", "%PDF-1.4")
	writeFile(t, dir, "scan.jpg", "jpeg-bytes")
	writeFile(t, dir, "notes.txt", "not an invoice")

	s := NewScanner(nil)
	results, stats, err := s.ScanDirectory(dir, nil, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Empty(t, r.Err)
		assert.NotEmpty(t, r.HashHex)
		assert.Positive(t, r.Size)
	}
}

func TestScanDirectorySkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.pdf", "%PDF-1.4")
	writeFile(t, dir, "visible.pdf", "%PDF-1.4")

	s := NewScanner(nil)
	results, stats, err := s.ScanDirectory(dir, nil, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Matched)
	require.Len(t, results, 1)
	assert.Equal(t, "visible.pdf", filepath.Base(results[0].Path))
}

func TestScanDirectoryCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "%PDF-1.4")
	writeFile(t, dir, "b.png", "png-bytes")

	s := NewScanner(nil)
	results, _, err := s.ScanDirectory(dir, []string{".PDF"}, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pdf", results[0].FileExt)
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	s := NewScanner(nil)
	_, _, err := s.ScanDirectory("  ", nil, false)
	require.Error(t, err)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt("JPEG"))
	assert.False(t, AllowedExt(".docx"))
}
