// Package ffmpeg wraps the external ffmpeg and ffprobe binaries as
// synchronous, fallible calls. Retry policy belongs to callers.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"
)

// Static errors for external tool invocation.
var (
	// ErrToolMissing is returned when the external binary cannot be located or executed.
	ErrToolMissing = errors.New("external tool not found")
	// ErrProbeFailure is returned when ffprobe fails or its output cannot
	// be parsed as a positive integer.
	ErrProbeFailure = errors.New("dimension probe failed")
)

// Runner executes ffmpeg and ffprobe subprocesses.
type Runner struct {
	ffmpegPath  string
	ffprobePath string
	// timeout is the wall-clock limit per invocation. Zero means no limit.
	timeout time.Duration
}

// New creates a Runner. Empty paths default to "ffmpeg" and "ffprobe"
// (found via PATH).
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *Runner {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Runner{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, timeout: timeout}
}

// Run executes ffmpeg with the given arguments and waits for completion.
// A non-zero exit returns an *ExecError carrying the captured stderr.
// A missing binary maps to ErrToolMissing.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// #nosec G204 - ffmpegPath is set by the application, not user input
	cmd := exec.CommandContext(ctx, r.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrToolMissing, r.ffmpegPath)
		}
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return &ExecError{
			Tool:   r.ffmpegPath,
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return nil
}

// ExecError represents a failed external invocation, including the stderr output.
type ExecError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s error: %v\nargs: %v\nstderr: %s", e.Tool, e.Err, e.Args, e.Stderr)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
