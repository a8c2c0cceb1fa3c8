package cmd_mine

import (
	"github.com/rskv-p/fpgrowth/config"
	"github.com/rskv-p/fpgrowth/pkg/x_txn"

	"github.com/spf13/cobra"
)

const stdinName = "-"

// readInput loads transactions from the argument, the configured input or
// stdin. Stdin defaults to the line format.
func readInput(cmd *cobra.Command, cfg *config.Config, args []string) (string, [][]string, error) {
	source := cfg.Input
	if len(args) > 0 {
		source = args[0]
	}

	opts := cfg.TxnOptions()
	if source == "" || source == stdinName {
		if opts.Format == "" {
			opts.Format = x_txn.FormatLines
		}
		txns, err := x_txn.ReadFrom(cmd.InOrStdin(), opts)
		return stdinName, txns, err
	}

	txns, err := x_txn.ReadFile(source, opts)
	return source, txns, err
}
