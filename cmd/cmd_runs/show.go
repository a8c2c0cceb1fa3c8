package cmd_runs

import (
	"github.com/rskv-p/fpgrowth/cmd/cmd_common"
	"github.com/rskv-p/fpgrowth/pkg/x_view"

	"github.com/spf13/cobra"
)

// showCmd prints the itemsets of one stored run
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the itemsets of a stored run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, output, done, err := open(cmd)
		if err != nil {
			return err
		}
		defer done()

		rep, err := src.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		return x_view.Render(out, output, rep.Itemsets, x_view.Options{
			Transactions: rep.Transactions,
			Color:        cmd_common.ColorFor(out),
		})
	},
}
