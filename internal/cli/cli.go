// Package cli defines the command-line surface of tg-webm-converter.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/7591yj/tg-webm-converter/internal/bootstrap"
	"github.com/7591yj/tg-webm-converter/internal/config"
	"github.com/7591yj/tg-webm-converter/internal/runner"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// usageError marks argument errors so Execute can exit with ExitUsage.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute parses args, runs the selected conversion mode and returns the
// process exit code. Interruption surfaces as a clean non-zero exit.
func Execute(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitFailure
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	cmd := newRootCommand(cfg, logger)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return ExitUsage
		}
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted by user")
			return ExitFailure
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitFailure
	}

	return ExitOK
}

// newRootCommand builds the root command. The optional positional
// argument is the directory scanned in batch modes.
func newRootCommand(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		stickerFile string
		iconFile    string
		icon        string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "tg-webm-converter [directory]",
		Short: "Convert images to Telegram WebM stickers and icons",
		Long: `Convert images and short clips into Telegram-ready WebM assets.

Without flags, every supported file in the directory (default ".") is
converted to a longest-edge-512 sticker within the 256 KiB budget.
Icons are rendered on an exact 100x100 canvas within 32 KiB.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &usageError{fmt.Errorf("at most one directory argument, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if countSet(stickerFile, iconFile, icon) > 1 {
				return &usageError{errors.New("--file, --icon-file and --icon are mutually exclusive")}
			}
			if output != "" {
				cfg.OutputDir = output
			}

			deps, err := bootstrap.NewDependencies(cfg, logger)
			if err != nil {
				return err
			}

			inputDir := "."
			if len(args) == 1 {
				inputDir = args[0]
			}

			return deps.Runner.Run(cmd.Context(), runner.Options{
				StickerFile: stickerFile,
				IconFile:    iconFile,
				Icon:        icon,
				InputDir:    inputDir,
			})
		},
	}

	cmd.Flags().StringVar(&stickerFile, "file", "", "convert a single file as a sticker")
	cmd.Flags().StringVar(&iconFile, "icon-file", "", "convert a single file as an icon")
	cmd.Flags().StringVar(&icon, "icon", "", "convert the named file as an icon and the rest of the directory as stickers")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output directory (default "./webm")`)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	return cmd
}

// countSet counts the non-empty values among the mode-selecting flags.
func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
