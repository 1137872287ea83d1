package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/clipsmith/shortcut/internal/domain/segments"
	"github.com/clipsmith/shortcut/internal/pipeline"
	"github.com/clipsmith/shortcut/internal/ports/adapters/ffmpeg"
	"github.com/clipsmith/shortcut/internal/types"
	"github.com/spf13/cobra"
)

func newAudioCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "audio <input>",
		Short: "Extract the audio track to <temp>/audio.wav",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudio(cmd, args[0])
		},
	}
	c.Flags().String("temp", "temp", "Directory for the extracted audio")
	return c
}

func runAudio(cmd *cobra.Command, input string) error {
	tempDir, _ := cmd.Flags().GetString("temp")

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Hour)
	defer cancel()

	ffmpegPath, ffprobePath := toolPaths(cmd)
	cfg := pipeline.AudioConfig{
		InputVideo:  absIn,
		TempDir:     tempDir,
		Logf:        cmdLogf(cmd),
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	wav, err := pipeline.ExtractAudio(ctx, cfg)
	if err != nil {
		if errors.Is(err, ffmpeg.ErrNoAudioStream) {
			return fmt.Errorf("%s has no audio track", input)
		}
		return err
	}
	cmd.Printf("audio written: %s\n", wav)
	return nil
}

func newClipCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "clip <input>",
		Short: "Cut a single [start, end) clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClip(cmd, args[0])
		},
	}
	c.Flags().String("start", "", "Clip start (seconds, M:SS, or H:MM:SS)")
	c.Flags().String("end", "", "Clip end (seconds, M:SS, or H:MM:SS)")
	c.Flags().String("out", "clip.mp4", "Output file")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}

func runClip(cmd *cobra.Command, input string) error {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	outPath, _ := cmd.Flags().GetString("out")

	start, err := segments.ParseTimestamp(startStr)
	if err != nil {
		return err
	}
	end, err := segments.ParseTimestamp(endStr)
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Hour)
	defer cancel()

	ffmpegPath, ffprobePath := toolPaths(cmd)
	cfg := pipeline.ClipConfig{
		InputVideo:  absIn,
		OutPath:     outPath,
		Start:       start,
		End:         end,
		Logf:        cmdLogf(cmd),
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.CropClip(ctx, cfg)
}

func newBatchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "batch <input>",
		Short: "Cut one Short_<n>.mp4 per segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0])
		},
	}
	c.Flags().String("segments", "", "Comma-separated START-END ranges, e.g. 10-20,1:30-1:45")
	c.Flags().String("segments-file", "", "YAML or JSON file with a list of {start, end} in seconds")
	c.Flags().String("out", "shorts", "Output directory")
	c.Flags().String("temp", "temp", "Temp directory, removed when the batch finishes")
	return c
}

func runBatch(cmd *cobra.Command, input string) error {
	segStr, _ := cmd.Flags().GetString("segments")
	segFile, _ := cmd.Flags().GetString("segments-file")
	outDir, _ := cmd.Flags().GetString("out")
	tempDir, _ := cmd.Flags().GetString("temp")

	if (segStr == "") == (segFile == "") {
		return errors.New("exactly one of --segments and --segments-file is required")
	}

	segs, err := parseSegmentsArg(segStr, segFile)
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Hour)
	defer cancel()

	ffmpegPath, ffprobePath := toolPaths(cmd)
	cfg := pipeline.Config{
		InputVideo:  absIn,
		Segments:    segs,
		OutDir:      outDir,
		TempDir:     tempDir,
		Logf:        cmdLogf(cmd),
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	paths, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}
	for _, p := range paths {
		cmd.Println(p)
	}
	return nil
}

func parseSegmentsArg(segStr, segFile string) ([]types.Segment, error) {
	if segFile != "" {
		return segments.Load(segFile)
	}
	return segments.Parse(segStr)
}
