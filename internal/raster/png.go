package raster

import (
	"bytes"
	"image"
)

const (
	pngSignature = "\x89PNG\r\n\x1a\n"

	// signature, IHDR length and type, width, height, bit depth, color type
	pngHeaderLen = 26

	pngColorGray      = 0
	pngColorTrueColor = 2
	pngColorGrayAlpha = 4
)

// pngColorType returns the IHDR color type when header starts a PNG stream.
func pngColorType(header []byte) (byte, bool) {
	if len(header) < pngHeaderLen || !bytes.HasPrefix(header, []byte(pngSignature)) {
		return 0, false
	}
	if string(header[12:16]) != "IHDR" {
		return 0, false
	}
	return header[25], true
}

// withPNGColorType reconciles the decoded layout with the color type the
// file declares.
func (img *Image) withPNGColorType(colorType byte) *Image {
	switch colorType {
	case pngColorGrayAlpha:
		img.Mode = ModeGrayAlpha
	case pngColorGray:
		// 8-bit or lower gray with tRNS; the transparency key is dropped.
		if m, ok := img.Image.(*image.NRGBA); ok {
			img.Image = grayFromRed(m)
			img.Mode = ModeGray
		}
	case pngColorTrueColor:
		// RGB with tRNS keeps its stored colors.
		if _, ok := img.Image.(*image.NRGBA); ok {
			return img.ToRGB()
		}
	}
	return img
}

func grayFromRed(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Pix[dst.PixOffset(x, y)] = src.Pix[src.PixOffset(x, y)]
		}
	}
	return dst
}
