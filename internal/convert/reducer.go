package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// reduceToFit forces a single re-encode of path at reduced quality when
// the file exceeds maxBytes. A file already within budget is left alone
// with zero encoder invocations. The re-encode writes to a temporary file
// in the same directory and replaces the original via rename, so the
// original survives every failure path byte-for-byte. A result that is
// still over budget after the re-encode is a warning, not a failure: the
// encoder did its best at the quality floor.
func (c *Converter) reduceToFit(ctx context.Context, path string, maxBytes int64, bitrate, crf string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat output: %w", err)
	}
	if info.Size() <= maxBytes {
		return nil
	}

	c.logger.Info("output over budget, forcing re-encode",
		slog.String("file", path),
		slog.Int64("size", info.Size()),
		slog.Int64("max", maxBytes),
	)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".reduce-*.webm")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrReductionFailure, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp file: %w", ErrReductionFailure, err)
	}

	replaced := false
	defer func() {
		if !replaced {
			_ = os.Remove(tmpPath)
		}
	}()

	// Re-encode at the input's existing geometry: no filter.
	if err := c.inv.Run(ctx, encodeArgs(path, "", bitrate, crf, tmpPath)); err != nil {
		return fmt.Errorf("%w: %w", ErrReductionFailure, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: replace original: %w", ErrReductionFailure, err)
	}
	replaced = true

	info, err = os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat reduced output: %w", err)
	}
	if info.Size() > maxBytes {
		c.logger.Warn("still over budget after re-encode",
			slog.String("file", path),
			slog.Int64("size", info.Size()),
			slog.Int64("max", maxBytes),
		)
	}

	return nil
}
