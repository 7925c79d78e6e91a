package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mousecrusher2/img2csv/internal/logger"
	"github.com/mousecrusher2/img2csv/internal/pipeline"
)

func init() {
	rootCmd.Flags().StringP("output", "o", pipeline.DefaultOutput, "Path to output csv")
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	ctx := cmd.Context()

	result, err := pipeline.Run(ctx, pipeline.Options{
		Input:  args[0],
		Output: outputPath,
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(
		fmt.Sprintf("Converted %dx%d %s image", result.SrcWidth, result.SrcHeight, result.Mode),
		"input", args[0],
		"format", result.Format,
		"files", result.Files,
	)
	return nil
}
