package raster

import (
	"image"
	"image/color"
)

// ToRGB returns img with its alpha channel dropped when img is RGBA.
//
// Color values are kept as stored (straight, not composited against any
// background). Images in any other mode are returned unchanged.
func (img *Image) ToRGB() *Image {
	if img.Mode != ModeRGBA {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := straightRGB(img.Image, x, y)
			i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
			dst.Pix[i+0] = r
			dst.Pix[i+1] = g
			dst.Pix[i+2] = bl
			dst.Pix[i+3] = 0xff
		}
	}
	return &Image{
		Image:  dst,
		Format: img.Format,
		Mode:   ModeRGB,
		Width:  img.Width,
		Height: img.Height,
	}
}

func straightRGB(src image.Image, x, y int) (r, g, b uint8) {
	switch m := src.(type) {
	case *image.NRGBA:
		c := m.NRGBAAt(x, y)
		return c.R, c.G, c.B
	case *image.NYCbCrA:
		c := m.YCbCrAt(x, y)
		return color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
	default:
		c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
		return c.R, c.G, c.B
	}
}
