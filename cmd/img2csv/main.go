package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/mousecrusher2/img2csv/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "img2csv <input>",
	Short:         "Convert an image to CSV matrices of pixel intensities",
	Long:          "Writes one CSV for a grayscale image, or one CSV per red, green and blue channel for an RGB image.",
	Args:          cobra.ExactArgs(1),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx := logger.NewContext(context.Background(), logger.New(os.Stderr, slog.LevelInfo))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
