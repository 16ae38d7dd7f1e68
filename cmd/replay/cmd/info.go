package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/replaydb/pkg/codec"
	"github.com/ssargent/replaydb/pkg/store"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show recording header and frame statistics",
	Long: `Validate the recording header and scan the file, reporting the
format version, frame count, payload volume, and the last recorded
timestamp. A recording truncated mid-frame reports the frames that are
still complete.

Example:
  replay info session.state`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := store.OpenRecording(args[0])
		if err != nil {
			return err
		}

		frames := reader.Frames()
		count := 0
		var payloadBytes uint64
		var lastElapsed codec.Uint128
		for frames.Next() {
			f := frames.Frame()
			count++
			payloadBytes += uint64(len(f.Payload))
			lastElapsed = f.Elapsed
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Magic:          %d\n", reader.Header().Magic)
		fmt.Fprintf(out, "Format version: %d\n", reader.Header().Version)
		fmt.Fprintf(out, "Frames:         %d\n", count)
		fmt.Fprintf(out, "Payload bytes:  %d\n", payloadBytes)
		if count > 0 {
			fmt.Fprintf(out, "Last elapsed:   %s\n", lastElapsed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
