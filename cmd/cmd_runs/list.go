package cmd_runs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rskv-p/fpgrowth/cmd/cmd_common"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_view"

	"github.com/spf13/cobra"
)

// listCmd shows the newest stored runs
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, output, done, err := open(cmd)
		if err != nil {
			return err
		}
		defer done()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := src.Runs(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch output {
		case constant.OutputJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		case constant.OutputPlain:
			for _, r := range runs {
				fmt.Fprintf(out, "%s %s %d %d\n", r.RunID, r.Source, r.MinSupport, r.Count)
			}
			return nil
		}

		rows := make([][]string, 0, len(runs))
		for _, r := range runs {
			rows = append(rows, []string{
				r.RunID,
				r.Source,
				strconv.Itoa(r.Transactions),
				strconv.Itoa(r.MinSupport),
				strconv.Itoa(r.Count),
				r.Elapsed.Round(time.Microsecond).String(),
				r.CreatedAt.Local().Format(time.DateTime),
			})
		}
		return x_view.Table(out, []string{"ID", "SOURCE", "TXNS", "MIN", "ITEMSETS", "ELAPSED", "CREATED"}, rows, cmd_common.ColorFor(out))
	},
}

func init() {
	listCmd.Flags().IntP("limit", "n", constant.DefaultRunsLimit, "maximum runs to show, 0 for all")
}
