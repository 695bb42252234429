package convert

import "fmt"

// IconFilter returns the ffmpeg filter chain for icons: scale to fit
// within the square canvas while preserving aspect ratio, then pad to the
// exact square with the image centered. Padding is fully transparent so
// non-square sources keep a clean edge.
func IconFilter() string {
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=black@0.0",
		IconEdge, IconEdge, IconEdge, IconEdge,
	)
}

// StickerFilter returns the ffmpeg scale filter for stickers: the longest
// edge becomes StickerEdge and the other edge scales proportionally, with
// no padding. Square input takes the landscape branch.
func StickerFilter(width, height int) string {
	if width >= height {
		return fmt.Sprintf("scale=%d:-1", StickerEdge)
	}
	return fmt.Sprintf("scale=-1:%d", StickerEdge)
}
