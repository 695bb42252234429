// Package runner orchestrates conversions across the CLI's selection
// modes: single sticker, single icon, icon-plus-batch, or a full
// directory scan. Files are converted strictly one at a time and one
// file's failure never aborts the batch.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/7591yj/tg-webm-converter/internal/convert"
	"github.com/7591yj/tg-webm-converter/internal/storage"
)

// Static errors for batch orchestration.
var (
	// ErrConversionFailed is returned when at least one conversion in the
	// run did not complete.
	ErrConversionFailed = errors.New("conversion failed")
	// ErrInvalidOptions is returned when the selected inputs do not
	// exist or are not usable.
	ErrInvalidOptions = errors.New("invalid options: input does not exist")
)

// Options selects what to convert. At most one of StickerFile, IconFile
// and Icon is set; the CLI enforces the exclusivity.
type Options struct {
	// StickerFile converts a single file as a sticker.
	StickerFile string `validate:"omitempty,file"`
	// IconFile converts a single file as an icon.
	IconFile string `validate:"omitempty,file"`
	// Icon converts the named file as an icon and every other discovered
	// file in InputDir as a sticker.
	Icon string `validate:"omitempty,file"`
	// InputDir is the directory scanned in batch modes. Defaults to ".".
	InputDir string `validate:"omitempty,dir"`
}

// Converter is the conversion facade the runner drives.
// *convert.Converter implements it.
type Converter interface {
	ConvertToIcon(ctx context.Context, path string) (string, error)
	ConvertToSticker(ctx context.Context, path string) (string, error)
	OutputDir() string
}

// Runner executes a conversion run and reports per-file progress.
type Runner struct {
	conv     Converter
	store    storage.Store
	logger   *slog.Logger
	out      io.Writer
	validate *validator.Validate
}

// New creates a Runner. Progress lines are written to out; pass nil for
// os.Stdout.
func New(conv Converter, store storage.Store, logger *slog.Logger, out io.Writer) *Runner {
	if store == nil {
		store = storage.NewLocalStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		conv:     conv,
		store:    store,
		logger:   logger,
		out:      out,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run executes the mode selected by opts. It returns nil on full
// success (including an empty batch) and ErrConversionFailed when any
// file failed.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if err := r.validate.Struct(opts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if opts.InputDir == "" {
		opts.InputDir = "."
	}

	switch {
	case opts.StickerFile != "":
		return r.convertSingle(ctx, opts.StickerFile, convert.ClassSticker)
	case opts.IconFile != "":
		return r.convertSingle(ctx, opts.IconFile, convert.ClassIcon)
	default:
		return r.convertBatch(ctx, opts)
	}
}

// convertSingle converts one file and reports its outcome.
func (r *Runner) convertSingle(ctx context.Context, path string, class convert.Class) error {
	if !r.convertOne(ctx, path, class) {
		return ErrConversionFailed
	}
	return nil
}

// convertBatch scans the input directory and converts each discovered
// file, the designated icon (if any) as an icon and the rest as stickers.
func (r *Runner) convertBatch(ctx context.Context, opts Options) error {
	files, err := convert.FindSupportedFiles(opts.InputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(r.out, "No supported image files found")
		return nil
	}

	fmt.Fprintf(r.out, "Found %d file(s) to convert\n", len(files))

	converted := 0
	for _, file := range files {
		// User interruption stops the batch between files; the file in
		// flight has already cleaned up its temporaries.
		if err := ctx.Err(); err != nil {
			return err
		}

		class := convert.ClassSticker
		path := file
		if opts.Icon != "" && samePath(file, opts.Icon) {
			class = convert.ClassIcon
			path = opts.Icon
		}
		if r.convertOne(ctx, path, class) {
			converted++
		}
	}

	fmt.Fprintf(r.out, "Conversion complete! %d/%d files converted to %s\n",
		converted, len(files), r.conv.OutputDir())

	if converted < len(files) {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, len(files)-converted, len(files))
	}
	return nil
}

// convertOne converts a single file, publishes the artifact and prints
// the outcome. It reports success or failure without propagating the
// error; batch callers aggregate outcomes.
func (r *Runner) convertOne(ctx context.Context, path string, class convert.Class) bool {
	fmt.Fprintf(r.out, "Converting %s (%s)...\n", path, class)

	var out string
	var err error
	if class == convert.ClassIcon {
		out, err = r.conv.ConvertToIcon(ctx, path)
	} else {
		out, err = r.conv.ConvertToSticker(ctx, path)
	}
	if err != nil {
		r.logger.Error("conversion failed",
			slog.String("input", path),
			slog.String("class", class.String()),
			slog.Any("error", err),
		)
		fmt.Fprintf(r.out, "❌ Failed: %s (%v)\n", path, err)
		return false
	}

	url, err := r.store.Publish(ctx, out)
	if err != nil {
		// Publishing is best-effort; the local artifact is intact.
		r.logger.Warn("publish failed",
			slog.String("artifact", out),
			slog.Any("error", err),
		)
	} else if url != "" {
		fmt.Fprintf(r.out, "📦 Published: %s\n", url)
	}

	fmt.Fprintf(r.out, "✅ Done: %s\n", out)
	return true
}

// samePath reports whether two paths refer to the same file name-wise.
func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
