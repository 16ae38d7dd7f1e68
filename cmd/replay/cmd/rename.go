package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ssargent/replaydb/pkg/rewrite"
	"github.com/ssargent/replaydb/pkg/structcodec"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <input> <output>",
	Short: "Rewrite a recording with renamed keys",
	Long: `Write a new recording where a fixed substring is replaced in every
key, at every nesting level. Timestamps and the file header are kept
byte-for-byte.

The defaults rewrite "narupa" to "nanover", converting recordings
written before the project rename. If the rewrite fails partway, the
frames already written remain in the output file.

Example:
  replay rename old.state new.state
  replay rename --from narupa --to nanover old.state new.state`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		rule := rewrite.RenameRule{From: from, To: to}

		slog.Debug("rewriting recording", "input", args[0], "output", args[1], "from", from, "to", to)
		written, err := rewrite.RewriteFile(args[0], args[1], structcodec.New(), rule)
		if err != nil {
			return fmt.Errorf("rewrote %d frames before failing: %w", written, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %d frames to %s\n", written, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().String("from", "narupa", "Substring to replace in every key")
	renameCmd.Flags().String("to", "nanover", "Replacement substring")
}
