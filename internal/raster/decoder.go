// Package raster decodes image files and classifies their color mode.
package raster

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/jbuchbinder/gopnm"
	_ "github.com/sergeymakinen/go-bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded bitmap together with its classified mode.
type Image struct {
	image.Image

	Format string // name the decoder registered under, e.g. "png"
	Mode   Mode
	Width  int
	Height int
}

// Open decodes the image file at path. The file is closed before Open
// returns, whether or not decoding succeeded.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image in any registered format from r.
//
// For PNG the mode comes from the color type in the IHDR header rather than
// from the decoded layout, since the PNG decoder returns *image.NRGBA for
// gray+alpha images and for gray or RGB images with a tRNS chunk alike.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	header, _ := br.Peek(pngHeaderLen)
	colorType, isPNG := pngColorType(header)

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, err
	}
	out := New(img, format)
	if isPNG {
		out = out.withPNGColorType(colorType)
	}
	return out, nil
}

// New wraps an already decoded image, classifying its mode.
func New(img image.Image, format string) *Image {
	b := img.Bounds()
	return &Image{
		Image:  img,
		Format: format,
		Mode:   ModeOf(img),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}
