package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner abstracts the external OCR toolchain (pdftotext, pdftoppm,
// tesseract) so extraction tests can stub the binaries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// maxStderrLog caps how much tool stderr lands in a log record.
const maxStderrLog = 8 << 10

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		slog.Error("ocr tool failed",
			"tool", name,
			"args", strings.Join(args, " "),
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), maxStderrLog),
		)
	} else {
		slog.Debug("ocr tool done",
			"tool", name,
			"args", strings.Join(args, " "),
			"duration_ms", elapsed.Milliseconds(),
			"stdout_bytes", out.Len(),
			"stderr_bytes", errb.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
