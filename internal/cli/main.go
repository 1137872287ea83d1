package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "shortcut",
		Short:        "Extract audio and cut short clips from a local video",
		SilenceUsage: true,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.PersistentFlags().String("ffmpeg", "", "ffmpeg binary (default $FFMPEG_PATH, then PATH)")
	root.PersistentFlags().String("ffprobe", "", "ffprobe binary (default $FFPROBE_PATH, then PATH)")

	root.AddCommand(newAudioCmd(), newClipCmd(), newBatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func toolPaths(cmd *cobra.Command) (ffmpegPath, ffprobePath string) {
	ffmpegPath, _ = cmd.Flags().GetString("ffmpeg")
	if ffmpegPath == "" {
		ffmpegPath = os.Getenv("FFMPEG_PATH")
	}
	ffprobePath, _ = cmd.Flags().GetString("ffprobe")
	if ffprobePath == "" {
		ffprobePath = os.Getenv("FFPROBE_PATH")
	}
	return ffmpegPath, ffprobePath
}

func cmdLogf(cmd *cobra.Command) func(format string, args ...any) {
	return func(format string, args ...any) {
		cmd.Printf(format+"\n", args...)
	}
}
