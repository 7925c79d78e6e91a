package matrix

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/mousecrusher2/img2csv/internal/raster"
)

// ErrInvalidMode is returned by FromImage for images that are neither
// grayscale nor RGB.
var ErrInvalidMode = errors.New("image not in RGB or grayscale mode")

// Channels is the result of a conversion: either Gray or RGB.
type Channels interface {
	// Planes returns the matrices in output order, each tagged with its
	// channel name. A grayscale plane has an empty name.
	Planes() []Plane
	isChannels()
}

// Plane is a single named channel matrix.
type Plane struct {
	Name   string
	Matrix Matrix
}

// Gray holds the single intensity plane of a grayscale image.
type Gray struct {
	Matrix Matrix
}

// RGB holds the three color planes of an RGB image.
type RGB struct {
	Red   Matrix
	Green Matrix
	Blue  Matrix
}

func (Gray) isChannels() {}
func (RGB) isChannels()  {}

// Planes implements Channels.
func (g Gray) Planes() []Plane {
	return []Plane{{Matrix: g.Matrix}}
}

// Planes implements Channels.
func (c RGB) Planes() []Plane {
	return []Plane{
		{Name: "red", Matrix: c.Red},
		{Name: "green", Matrix: c.Green},
		{Name: "blue", Matrix: c.Blue},
	}
}

// FromImage splits img into intensity matrices: one for a grayscale image,
// red, green and blue for an RGB image. Any other mode fails with
// ErrInvalidMode; RGBA images must go through (*raster.Image).ToRGB first.
func FromImage(img *raster.Image) (Channels, error) {
	switch img.Mode {
	case raster.ModeGray:
		return Gray{Matrix: grayPlane(img.Image)}, nil
	case raster.ModeRGB:
		return rgbPlanes(img.Image), nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrInvalidMode, img.Mode)
	}
}

func grayPlane(src image.Image) Matrix {
	b := src.Bounds()
	m := New(b.Dy(), b.Dx())
	if g, ok := src.(*image.Gray); ok {
		for r := 0; r < m.Rows; r++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+r)
			copy(m.Row(r), g.Pix[off:off+m.Cols])
		}
		return m
	}
	for r := 0; r < m.Rows; r++ {
		row := m.Row(r)
		for c := range row {
			row[c] = color.GrayModel.Convert(src.At(b.Min.X+c, b.Min.Y+r)).(color.Gray).Y
		}
	}
	return m
}

func rgbPlanes(src image.Image) RGB {
	b := src.Bounds()
	rows, cols := b.Dy(), b.Dx()
	out := RGB{
		Red:   New(rows, cols),
		Green: New(rows, cols),
		Blue:  New(rows, cols),
	}

	if rgba, ok := src.(*image.RGBA); ok {
		// Pix is channel-last: R, G, B, A per pixel.
		for r := 0; r < rows; r++ {
			off := rgba.PixOffset(b.Min.X, b.Min.Y+r)
			for c := 0; c < cols; c++ {
				i := off + c*4
				j := r*cols + c
				out.Red.Data[j] = rgba.Pix[i+0]
				out.Green.Data[j] = rgba.Pix[i+1]
				out.Blue.Data[j] = rgba.Pix[i+2]
			}
		}
		return out
	}

	if ycc, ok := src.(*image.YCbCr); ok {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := ycc.YCbCrAt(b.Min.X+c, b.Min.Y+r)
				j := r*cols + c
				out.Red.Data[j], out.Green.Data[j], out.Blue.Data[j] = color.YCbCrToRGB(p.Y, p.Cb, p.Cr)
			}
		}
		return out
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// 8-bit sources replicate each byte into 16 bits, so the high
			// byte is the original value.
			cr, cg, cb, _ := src.At(b.Min.X+c, b.Min.Y+r).RGBA()
			j := r*cols + c
			out.Red.Data[j] = uint8(cr >> 8)
			out.Green.Data[j] = uint8(cg >> 8)
			out.Blue.Data[j] = uint8(cb >> 8)
		}
	}
	return out
}
