package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFilter(t *testing.T) {
	want := "scale=100:100:force_original_aspect_ratio=decrease,pad=100:100:(ow-iw)/2:(oh-ih)/2:color=black@0.0"
	assert.Equal(t, want, IconFilter())
}

func TestStickerFilter(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   string
	}{
		{"landscape scales width", 1024, 768, "scale=512:-1"},
		{"portrait scales height", 768, 1024, "scale=-1:512"},
		{"square takes landscape branch", 512, 512, "scale=512:-1"},
		{"tall and narrow", 100, 2000, "scale=-1:512"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StickerFilter(tt.width, tt.height))
		})
	}
}
