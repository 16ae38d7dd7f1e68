package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/replaydb/pkg/state"
	"github.com/ssargent/replaydb/pkg/store"
	"github.com/ssargent/replaydb/pkg/structcodec"
)

// stateCmd represents the state command
var stateCmd = &cobra.Command{
	Use:   "state <file>",
	Short: "Print the aggregated state at each timestamp",
	Long: `Fold the recorded updates into the full state at each timestamp and
print one snapshot per record. Tombstoned keys are removed as the fold
progresses.

Example:
  replay state session.state
  replay state --final session.state`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pretty, max := outputOptions(cmd)
		final, _ := cmd.Flags().GetBool("final")

		reader, err := store.OpenRecording(args[0])
		if err != nil {
			return err
		}

		agg := state.Aggregate(reader.Updates(structcodec.New()))
		var last state.TimedSnapshot
		count := 0
		for agg.Next() {
			if !final && max > 0 && count >= max {
				break
			}
			last = agg.Snapshot()
			if !final {
				printRecord(cmd.OutOrStdout(), last.Elapsed, last.State, pretty)
			}
			count++
		}
		if err := agg.Err(); err != nil {
			return err
		}
		if final && count > 0 {
			printRecord(cmd.OutOrStdout(), last.Elapsed, last.State, pretty)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().Bool("pretty", false, "Display snapshots in a more human-readable way")
	stateCmd.Flags().Int("max", 0, "Stop after this many snapshots (0 = all)")
	stateCmd.Flags().Bool("final", false, "Print only the last snapshot")
}
