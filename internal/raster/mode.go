package raster

import "image"

// Mode is the color representation of a decoded image, named after the
// conventional PIL mode strings.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeGray         // 8-bit grayscale
	ModeRGB          // 8-bit RGB, no alpha
	ModeRGBA         // 8-bit RGB with alpha
	ModePalette
	ModeCMYK
	ModeGray16
	ModeRGB16
	ModeRGBA16
	ModeGrayAlpha
)

// String returns the PIL-style name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeGray:
		return "L"
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	case ModePalette:
		return "P"
	case ModeCMYK:
		return "CMYK"
	case ModeGray16:
		return "I;16"
	case ModeRGB16:
		return "RGB;16"
	case ModeRGBA16:
		return "RGBA;16"
	case ModeGrayAlpha:
		return "LA"
	default:
		return "unknown"
	}
}

// ModeOf classifies img by its in-memory pixel layout.
//
// Decoders hand back *image.RGBA for formats that never carry alpha, so an
// opaque *image.RGBA is RGB. Layouts with a dedicated alpha channel
// (NRGBA, NYCbCrA) always report RGBA, the same way a PNG with an alpha
// channel does regardless of its actual pixel values.
func ModeOf(img image.Image) Mode {
	switch m := img.(type) {
	case *image.Gray:
		return ModeGray
	case *image.YCbCr:
		return ModeRGB
	case *image.RGBA:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	case *image.NRGBA, *image.NYCbCrA:
		return ModeRGBA
	case *image.Paletted:
		return ModePalette
	case *image.CMYK:
		return ModeCMYK
	case *image.Gray16:
		return ModeGray16
	case *image.RGBA64:
		if m.Opaque() {
			return ModeRGB16
		}
		return ModeRGBA16
	case *image.NRGBA64:
		return ModeRGBA16
	default:
		return ModeUnknown
	}
}
