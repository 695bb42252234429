package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
)

// Dimensions returns the (width, height) of the first video stream of a
// media file. It issues two ffprobe queries, width then height, matching
// the original stream entries one value at a time. It never retries.
func (r *Runner) Dimensions(ctx context.Context, path string) (int, int, error) {
	width, err := r.probeEntry(ctx, path, "stream=width")
	if err != nil {
		return 0, 0, err
	}

	height, err := r.probeEntry(ctx, path, "stream=height")
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}

// probeEntry runs ffprobe for a single stream entry and parses the plain
// decimal result.
func (r *Runner) probeEntry(ctx context.Context, path, entry string) (int, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// #nosec G204 - ffprobePath is set by the application, not user input
	cmd := exec.CommandContext(ctx, r.ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", entry,
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrToolMissing, r.ffprobePath)
		}
		if ctx.Err() != nil {
			return 0, fmt.Errorf("ffprobe cancelled: %w", ctx.Err())
		}
		return 0, fmt.Errorf("%w: %s: %s", ErrProbeFailure, entry, stderr.String())
	}

	value, err := strconv.Atoi(strings.TrimSpace(stdout.String()))
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %q", ErrProbeFailure, entry, stdout.String())
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: non-positive %s: %d", ErrProbeFailure, entry, value)
	}

	return value, nil
}
