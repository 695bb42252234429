// Package bootstrap wires configuration into the converter runtime.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/7591yj/tg-webm-converter/internal/config"
	"github.com/7591yj/tg-webm-converter/internal/convert"
	"github.com/7591yj/tg-webm-converter/internal/ffmpeg"
	"github.com/7591yj/tg-webm-converter/internal/runner"
	"github.com/7591yj/tg-webm-converter/internal/storage"
)

// Dependencies holds the initialized conversion runtime.
type Dependencies struct {
	Runner *runner.Runner
}

// NewDependencies creates and initializes all dependencies for a
// conversion run.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	tools := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath, cfg.EncodeTimeout)

	conv, err := convert.New(tools, tools, cfg.OutputDir, logger)
	if err != nil {
		return nil, fmt.Errorf("create converter: %w", err)
	}

	store, err := initStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Runner: runner.New(conv, store, logger, nil),
	}, nil
}

// initStore selects the publish backend based on configuration.
func initStore(cfg *config.Config, logger *slog.Logger) (storage.Store, error) {
	if cfg.S3Enabled() {
		s3Store, err := storage.NewS3Store(storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("create S3 store: %w", err)
		}
		logger.Info("S3 publish configured",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)
		return s3Store, nil
	}

	return storage.NewLocalStore(), nil
}
