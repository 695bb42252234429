package convert

import (
	"context"
	"fmt"
)

// encodeArgs builds the ffmpeg argument vector for one VP9 encode pass.
// An empty filter re-encodes at the input's existing geometry. yuva420p
// keeps the alpha channel Telegram expects in WebM stickers.
func encodeArgs(input, filter, bitrate, crf, output string) []string {
	args := []string{"-y", "-i", input}
	if filter != "" {
		args = append(args, "-vf", filter)
	}
	args = append(args,
		"-c:v", "libvpx-vp9",
		"-b:v", bitrate,
		"-crf", crf,
		"-an",
		"-pix_fmt", "yuva420p",
		output,
	)
	return args
}

// encode runs one primary encode pass. Invoker failures are returned
// immediately; there is no retry at this layer.
func (c *Converter) encode(ctx context.Context, input, filter, bitrate, crf, output string) error {
	if err := c.inv.Run(ctx, encodeArgs(input, filter, bitrate, crf, output)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFailure, err)
	}
	return nil
}
