package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/replaydb/pkg/store"
	"github.com/ssargent/replaydb/pkg/structcodec"
)

// updatesCmd represents the updates command
var updatesCmd = &cobra.Command{
	Use:   "updates <file>",
	Short: "Print the state updates of a recording",
	Long: `Print each recorded state update with its timestamp, in file order.
A key shown as <deleted> is a tombstone removing the key from the
aggregate.

Example:
  replay updates session.state
  replay updates --pretty --max 10 session.state`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pretty, max := outputOptions(cmd)

		reader, err := store.OpenRecording(args[0])
		if err != nil {
			return err
		}

		updates := reader.Updates(structcodec.New())
		count := 0
		for updates.Next() {
			if max > 0 && count >= max {
				break
			}
			u := updates.Update()
			printRecord(cmd.OutOrStdout(), u.Elapsed, u.Update, pretty)
			count++
		}
		return updates.Err()
	},
}

// outputOptions resolves pretty/max from flags, falling back to the
// loaded configuration when a flag was not given.
func outputOptions(cmd *cobra.Command) (bool, int) {
	pretty := cfg.Output.Pretty
	if cmd.Flags().Changed("pretty") {
		pretty, _ = cmd.Flags().GetBool("pretty")
	}
	max := cfg.Output.MaxRecords
	if cmd.Flags().Changed("max") {
		max, _ = cmd.Flags().GetInt("max")
	}
	return pretty, max
}

func init() {
	rootCmd.AddCommand(updatesCmd)
	updatesCmd.Flags().Bool("pretty", false, "Display records in a more human-readable way")
	updatesCmd.Flags().Int("max", 0, "Stop after this many records (0 = all)")
}
