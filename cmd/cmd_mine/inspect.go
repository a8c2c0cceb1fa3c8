package cmd_mine

import (
	"fmt"

	"github.com/rskv-p/fpgrowth/cmd/cmd_common"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"

	"github.com/spf13/cobra"
)

// InspectCmd prints the FP-tree built from a file together with its item chains.
var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Dump the FP-tree and item chains for a transaction file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmd_common.Load(cmd)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		_, txns, err := readInput(cmd, cfg, args)
		if err != nil {
			return err
		}
		minSupport := x_fp.ResolveSupport(cfg.MinSupport, cfg.MinSupportRatio, len(txns))
		tree := x_fp.Build(txns, minSupport)

		out := cmd.OutOrStdout()
		tree.Dump(out)
		fmt.Fprintf(out, "\n%d transactions, min support %d, %d nodes\n", len(txns), minSupport, tree.Len())
		return nil
	},
}

func init() {
	addInputFlags(InspectCmd)
}
