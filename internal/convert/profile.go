package convert

// Telegram geometry and size limits per asset class.
const (
	// IconEdge is the exact square canvas edge for sticker-set icons.
	IconEdge = 100
	// StickerEdge is the longest-edge target for stickers.
	StickerEdge = 512

	// IconMaxBytes is the hard byte ceiling for icons.
	IconMaxBytes = 32 * 1024
	// StickerMaxBytes is the hard byte ceiling for stickers.
	StickerMaxBytes = 256 * 1024
)

// Class identifies the asset class being produced.
type Class int

const (
	// ClassIcon is the square 100x100 sticker-set icon.
	ClassIcon Class = iota
	// ClassSticker is the longest-edge-512 sticker.
	ClassSticker
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case ClassIcon:
		return "icon"
	case ClassSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Profile holds the immutable encode policy for an asset class.
type Profile struct {
	// MaxBytes is the hard output size ceiling.
	MaxBytes int64
	// Bitrate and CRF are the primary-pass quality parameters.
	Bitrate string
	CRF     string
	// ReducedBitrate and ReducedCRF are the strictly lower-quality
	// parameters used by the forced re-encode when the primary output
	// exceeds MaxBytes.
	ReducedBitrate string
	ReducedCRF     string
}

// Profile returns the encode policy for the class. The two classes are a
// closed set; an unknown value is a programmer error.
func (c Class) Profile() Profile {
	switch c {
	case ClassIcon:
		return Profile{
			MaxBytes:       IconMaxBytes,
			Bitrate:        "128K",
			CRF:            "35",
			ReducedBitrate: "64K",
			ReducedCRF:     "45",
		}
	case ClassSticker:
		return Profile{
			MaxBytes:       StickerMaxBytes,
			Bitrate:        "256K",
			CRF:            "30",
			ReducedBitrate: "96K",
			ReducedCRF:     "45",
		}
	default:
		panic("convert: unknown asset class")
	}
}
