package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig controls directory watching for newly dropped invoice files.
type WatchConfig struct {
	Root        string        // directory to watch, recursive
	InitialScan bool          // emit files already present under Root
	Debounce    time.Duration // coalesce write bursts per file
}

// Watcher emits paths of invoice documents created or updated under a
// directory tree so they can be fed straight into the extraction pipeline.
// Hidden entries and unsupported extensions are ignored.
type Watcher struct {
	cfg    WatchConfig
	logger *slog.Logger
}

func NewWatcher(cfg WatchConfig, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{cfg: cfg, logger: logger}
}

// eligible reports whether a path should be handed to the pipeline.
func (w *Watcher) eligible(path string) bool {
	return !IsHidden(path) && AllowedExt(filepath.Ext(path))
}

// Start registers the watch tree and begins emitting paths. Paths and
// watch errors arrive on the returned channels; both close when ctx is
// cancelled.
func (w *Watcher) Start(ctx context.Context) (<-chan string, <-chan error, error) {
	if w.cfg.Root == "" {
		return nil, nil, errors.New("watch root is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("watcher init failed", "error", err)
		return nil, nil, err
	}

	pathCh := make(chan string, 256)
	errCh := make(chan error, 1)

	err = filepath.WalkDir(w.cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if IsHidden(path) && path != w.cfg.Root {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		if w.cfg.InitialScan && w.eligible(path) {
			select {
			case pathCh <- path:
			default:
			}
		}
		return nil
	})
	if err != nil {
		w.logger.Error("watch root registration failed", "root", w.cfg.Root, "error", err)
		_ = fsw.Close()
		return nil, nil, err
	}

	w.logger.Info("watching invoice directory", "root", w.cfg.Root, "debounce", w.cfg.Debounce)
	go w.loop(ctx, fsw, pathCh, errCh)
	return pathCh, errCh, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, pathCh chan string, errCh chan error) {
	defer close(pathCh)
	defer close(errCh)
	defer fsw.Close()

	pending := map[string]struct{}{}
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		for p := range pending {
			select {
			case pathCh <- p:
			default:
			}
			delete(pending, p)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-timerC:
			timerC = nil
			flush()

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Create) {
				// New subdirectories join the watch tree.
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !IsHidden(ev.Name) {
					if err := fsw.Add(ev.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			if w.eligible(ev.Name) && ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				pending[ev.Name] = struct{}{}
				if w.cfg.Debounce > 0 {
					if timer == nil {
						timer = time.NewTimer(w.cfg.Debounce)
					} else {
						timer.Stop()
						timer.Reset(w.cfg.Debounce)
					}
					timerC = timer.C
				} else {
					flush()
				}
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
			select {
			case errCh <- err:
			default:
			}
		}
	}
}
