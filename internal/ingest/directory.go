package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Scanner walks invoice directories and yields files eligible for extraction.
type Scanner struct {
	logger *slog.Logger
}

func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// ScanDirectory walks root, filters by includeExts (or the default set),
// skips hidden entries if requested, and hashes each matched file.
// Returns per-file results plus aggregate stats.
func (s *Scanner) ScanDirectory(root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = map[string]struct{}{"pdf": {}, "jpg": {}, "jpeg": {}, "png": {}}
	} else {
		for _, e := range includeExts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++

		info, err := d.Info()
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		hashHex, err := hashFile(path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, FileResult{
			Path:    path,
			FileExt: ext,
			Size:    info.Size(),
			HashHex: hashHex,
		})
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	s.logger.Info("scanned invoice directory",
		"root", root, "scanned", stats.Scanned, "matched", stats.Matched, "failed", stats.Failed)
	return results, stats, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
