// Package convert implements the size-constrained WebM transcoding loop:
// geometry policy per asset class, a primary encode pass, and a bounded
// reduction pass that re-encodes over-budget output at lower quality.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Static errors for conversion.
var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
	// ErrUnsupportedInput is returned when the input extension is not in
	// the supported set.
	ErrUnsupportedInput = errors.New("unsupported input type")
	// ErrEncodeFailure is returned when the primary encode pass fails.
	ErrEncodeFailure = errors.New("encode failed")
	// ErrReductionFailure is returned when the forced re-encode fails
	// outright. The original output file is left untouched.
	ErrReductionFailure = errors.New("size reduction failed")
)

// Invoker runs the external encoder with an argument vector.
// *ffmpeg.Runner implements it.
type Invoker interface {
	Run(ctx context.Context, args []string) error
}

// Prober reports the video dimensions of an input file.
// *ffmpeg.Runner implements it.
type Prober interface {
	Dimensions(ctx context.Context, path string) (int, int, error)
}

// Converter turns input images and clips into size-constrained WebM
// assets under a single output directory. It is safe for sequential use
// only; batch callers convert one file at a time.
type Converter struct {
	inv       Invoker
	prober    Prober
	outputDir string
	logger    *slog.Logger
}

// New creates a Converter and ensures the output directory exists.
func New(inv Invoker, prober Prober, outputDir string, logger *slog.Logger) (*Converter, error) {
	if outputDir == "" {
		outputDir = "./webm"
	}
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{inv: inv, prober: prober, outputDir: outputDir, logger: logger}, nil
}

// OutputDir returns the directory converted assets are written to.
func (c *Converter) OutputDir() string {
	return c.outputDir
}

// ConvertToIcon converts the input into a 100x100 WebM icon within the
// icon byte budget. It returns the output path.
func (c *Converter) ConvertToIcon(ctx context.Context, path string) (string, error) {
	if err := c.validateInput(path); err != nil {
		return "", err
	}

	prof := ClassIcon.Profile()
	out := c.outputPath(path, "_icon")

	if err := c.encode(ctx, path, IconFilter(), prof.Bitrate, prof.CRF, out); err != nil {
		return "", err
	}

	if err := c.reduceToFit(ctx, out, prof.MaxBytes, prof.ReducedBitrate, prof.ReducedCRF); err != nil {
		return "", err
	}

	c.logDone(ClassIcon, path, out)
	return out, nil
}

// ConvertToSticker converts the input into a longest-edge-512 WebM
// sticker within the sticker byte budget. The input is probed for its
// dimensions first; a probe failure aborts before the encoder is ever
// invoked. It returns the output path.
func (c *Converter) ConvertToSticker(ctx context.Context, path string) (string, error) {
	if err := c.validateInput(path); err != nil {
		return "", err
	}

	width, height, err := c.prober.Dimensions(ctx, path)
	if err != nil {
		return "", fmt.Errorf("probe dimensions of %s: %w", path, err)
	}

	prof := ClassSticker.Profile()
	out := c.outputPath(path, "")

	if err := c.encode(ctx, path, StickerFilter(width, height), prof.Bitrate, prof.CRF, out); err != nil {
		return "", err
	}

	if err := c.reduceToFit(ctx, out, prof.MaxBytes, prof.ReducedBitrate, prof.ReducedCRF); err != nil {
		return "", err
	}

	c.logDone(ClassSticker, path, out)
	return out, nil
}

// validateInput checks existence and the supported-extension set.
func (c *Converter) validateInput(path string) error {
	if !IsSupported(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return nil
}

// outputPath derives the .webm output path from an input path, with an
// optional stem suffix ("_icon" for icons).
func (c *Converter) outputPath(input, suffix string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(c.outputDir, stem+suffix+".webm")
}

func (c *Converter) logDone(class Class, input, output string) {
	size := int64(-1)
	if info, err := os.Stat(output); err == nil {
		size = info.Size()
	}
	c.logger.Info("conversion done",
		slog.String("class", class.String()),
		slog.String("input", input),
		slog.String("output", output),
		slog.Int64("size", size),
	)
}
