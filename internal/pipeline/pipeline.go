package pipeline

import (
	"context"
	"fmt"

	"github.com/mousecrusher2/img2csv/internal/csvout"
	"github.com/mousecrusher2/img2csv/internal/logger"
	"github.com/mousecrusher2/img2csv/internal/matrix"
	"github.com/mousecrusher2/img2csv/internal/raster"
)

// DefaultOutput is the base output path the CLI uses when -o is not given.
const DefaultOutput = "output.csv"

// Options controls a single image → CSV conversion.
type Options struct {
	Input  string // required: image file to convert
	Output string // required: base CSV path, must end in .csv
}

// Result holds the output of a pipeline run.
type Result struct {
	Format    string      // decoder that read the input
	Mode      raster.Mode // mode after RGBA normalization
	SrcWidth  int
	SrcHeight int
	Files     []string // written CSV files, in channel order
}

// Run executes the full conversion: validate output → decode → normalize →
// split channels → write CSV.
//
// The output path is checked before the input is touched, and every channel
// is computed before the first file is written, so a rejected image leaves
// no output behind.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logger.FromContext(ctx)

	output := opts.Output

	// 1. Validate output path
	if err := csvout.ValidateOutputPath(output); err != nil {
		return nil, err
	}

	// 2. Decode input
	img, err := raster.Open(opts.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("Decoded image",
		"input", opts.Input,
		"format", img.Format,
		"mode", img.Mode,
		"width", img.Width,
		"height", img.Height,
	)

	// 3. Drop alpha
	if img.Mode == raster.ModeRGBA {
		img = img.ToRGB()
		log.Debug("Converted RGBA to RGB", "input", opts.Input)
	}

	// 4. Split channels
	channels, err := matrix.FromImage(img)
	if err != nil {
		return nil, err
	}

	// 5. Write CSV files
	result := &Result{
		Format:    img.Format,
		Mode:      img.Mode,
		SrcWidth:  img.Width,
		SrcHeight: img.Height,
	}
	for _, p := range channels.Planes() {
		path := csvout.ChannelPath(output, p.Name)
		if err := csvout.WriteFile(path, p.Matrix); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		log.Debug("Wrote channel", "channel", p.Name, "file", path)
		result.Files = append(result.Files, path)
	}
	return result, nil
}
