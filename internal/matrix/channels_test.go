package matrix

import (
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"testing"

	"github.com/mousecrusher2/img2csv/internal/raster"
)

func assertMatrix(t *testing.T, name string, got Matrix, want [][]uint8) {
	t.Helper()
	if got.Rows != len(want) || (len(want) > 0 && got.Cols != len(want[0])) {
		t.Fatalf("[%s] shape %dx%d, want %dx%d", name, got.Rows, got.Cols, len(want), len(want[0]))
	}
	for r := range want {
		for c := range want[r] {
			if v := got.At(r, c); v != want[r][c] {
				t.Errorf("[%s] (%d,%d) = %d, want %d", name, r, c, v, want[r][c])
			}
		}
	}
}

func TestFromImageGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.Pix = []uint8{0, 128, 255, 64}

	ch, err := FromImage(raster.New(g, "png"))
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	gray, ok := ch.(Gray)
	if !ok {
		t.Fatalf("got %T, want Gray", ch)
	}
	assertMatrix(t, "gray", gray.Matrix, [][]uint8{{0, 128}, {255, 64}})

	planes := ch.Planes()
	if len(planes) != 1 || planes[0].Name != "" {
		t.Errorf("unexpected planes: %+v", planes)
	}
}

func TestFromImageGraySubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 3, 3))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}
	sub := g.SubImage(image.Rect(1, 1, 3, 3))

	ch, err := FromImage(raster.New(sub, ""))
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	assertMatrix(t, "sub", ch.(Gray).Matrix, [][]uint8{{4, 5}, {7, 8}})
}

func TestFromImageRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})
	img.SetRGBA(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 0xff})

	ch, err := FromImage(raster.New(img, "png"))
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	rgb, ok := ch.(RGB)
	if !ok {
		t.Fatalf("got %T, want RGB", ch)
	}
	assertMatrix(t, "red", rgb.Red, [][]uint8{{10, 40}})
	assertMatrix(t, "green", rgb.Green, [][]uint8{{20, 50}})
	assertMatrix(t, "blue", rgb.Blue, [][]uint8{{30, 60}})

	var names []string
	for _, p := range ch.Planes() {
		names = append(names, p.Name)
	}
	if len(names) != 3 || names[0] != "red" || names[1] != "green" || names[2] != "blue" {
		t.Errorf("plane order = %v, want [red green blue]", names)
	}
}

func TestFromImageYCbCr(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	for i := range img.Y {
		img.Y[i] = uint8(60 * i)
		img.Cb[i] = 90
		img.Cr[i] = 200
	}

	ch, err := FromImage(raster.New(img, "jpeg"))
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	rgb := ch.(RGB)
	for i := range img.Y {
		r, g, b := color.YCbCrToRGB(img.Y[i], 90, 200)
		row, col := i/2, i%2
		if rgb.Red.At(row, col) != r || rgb.Green.At(row, col) != g || rgb.Blue.At(row, col) != b {
			t.Errorf("(%d,%d) = %d,%d,%d, want %d,%d,%d", row, col,
				rgb.Red.At(row, col), rgb.Green.At(row, col), rgb.Blue.At(row, col), r, g, b)
		}
	}
}

func TestFromImageNormalizedRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})

	ch, err := FromImage(raster.New(img, "png").ToRGB())
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	rgb := ch.(RGB)
	if rgb.Red.At(0, 0) != 10 || rgb.Green.At(0, 0) != 20 || rgb.Blue.At(0, 0) != 30 {
		t.Errorf("got %d,%d,%d, want 10,20,30", rgb.Red.At(0, 0), rgb.Green.At(0, 0), rgb.Blue.At(0, 0))
	}
}

func TestFromImageInvalidMode(t *testing.T) {
	r := image.Rect(0, 0, 2, 2)
	for _, c := range []struct {
		name string
		img  image.Image
	}{
		{"rgba", image.NewNRGBA(r)},
		{"palette", image.NewPaletted(r, palette.WebSafe)},
		{"cmyk", image.NewCMYK(r)},
		{"gray16", image.NewGray16(r)},
		{"rgba64", image.NewRGBA64(r)},
	} {
		t.Run(c.name, func(t *testing.T) {
			ch, err := FromImage(raster.New(c.img, ""))
			if !errors.Is(err, ErrInvalidMode) {
				t.Fatalf("got err %v, want ErrInvalidMode", err)
			}
			if ch != nil {
				t.Errorf("got channels %v on error", ch)
			}
		})
	}
}
