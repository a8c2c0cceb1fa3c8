package cmd_runs

import (
	"fmt"

	"github.com/spf13/cobra"
)

// removeCmd deletes stored runs by ID
var removeCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"remove"},
	Short:   "Remove stored runs",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, _, done, err := open(cmd)
		if err != nil {
			return err
		}
		defer done()

		for _, id := range args {
			if err := src.DeleteRun(cmd.Context(), id); err != nil {
				return fmt.Errorf("remove %s: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed", id)
		}
		return nil
	},
}
