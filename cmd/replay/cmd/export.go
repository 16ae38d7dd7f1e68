package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ssargent/replaydb/pkg/state"
	"github.com/ssargent/replaydb/pkg/storage"
	"github.com/ssargent/replaydb/pkg/store"
	"github.com/ssargent/replaydb/pkg/structcodec"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Archive the final aggregated state of a recording",
	Long: `Fold the whole recording and store its final snapshot, as JSON, in
the snapshot archive. Prints the id the snapshot was stored under.

Example:
  replay export session.state
  replay export --archive ./archive session.state`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := cfg.Archive.Path
		if cmd.Flags().Changed("archive") {
			archivePath, _ = cmd.Flags().GetString("archive")
		}

		reader, err := store.OpenRecording(args[0])
		if err != nil {
			return err
		}

		agg := state.Aggregate(reader.Updates(structcodec.New()))
		var final state.TimedSnapshot
		count := 0
		for agg.Next() {
			final = agg.Snapshot()
			count++
		}
		if err := agg.Err(); err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("recording %s holds no frames", args[0])
		}

		data, err := json.Marshal(final.State.Interface())
		if err != nil {
			return fmt.Errorf("serializing snapshot: %w", err)
		}

		archive, err := storage.Open(archivePath)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer archive.Close()

		id, err := archive.Create(data)
		if err != nil {
			return fmt.Errorf("archiving snapshot: %w", err)
		}

		slog.Debug("archived snapshot", "recording", args[0], "frames", count, "elapsed", final.Elapsed)
		fmt.Fprintf(cmd.OutOrStdout(), "Archived snapshot %s (%d keys at %s)\n", id, len(final.State), final.Elapsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("archive", "", "Path to the snapshot archive database")
}
