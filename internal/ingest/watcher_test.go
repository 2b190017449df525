package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherEligible(t *testing.T) {
	w := NewWatcher(WatchConfig{Root: "/tmp"}, nil)

	assert.True(t, w.eligible("/in/invoice-1.pdf"))
	assert.True(t, w.eligible("/in/scan.JPG"))
	assert.False(t, w.eligible("/in/notes.txt"))
	assert.False(t, w.eligible("/in/.partial.pdf"))
}

func TestWatcherStartRequiresRoot(t *testing.T) {
	w := NewWatcher(WatchConfig{}, nil)
	_, _, err := w.Start(context.Background())
	require.Error(t, err)
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "invoice-1.pdf", "%PDF-1.4")
	writeFile(t, dir, "notes.txt", "not an invoice")
	writeFile(t, dir, ".partial.pdf", "%PDF-1.4")

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(WatchConfig{Root: dir, InitialScan: true}, nil)
	paths, _, err := w.Start(ctx)
	require.NoError(t, err)

	// Initial-scan paths are queued before Start returns.
	select {
	case got := <-paths:
		assert.Equal(t, want, got)
	default:
		t.Fatal("expected an initial-scan path")
	}

	cancel()
	requireClosed(t, paths)
}

func TestWatcherEmitsDroppedFile(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(WatchConfig{Root: dir}, nil)
	paths, _, err := w.Start(ctx)
	require.NoError(t, err)

	target := filepath.Join(dir, "invoice-2.png")
	require.NoError(t, os.WriteFile(target, []byte("png-bytes"), 0o644))

	select {
	case got := <-paths:
		assert.Equal(t, target, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for dropped file")
	}
}

func requireClosed(t *testing.T, paths <-chan string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-paths:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("path channel not closed after cancel")
		}
	}
}
