package cmd_mine

import (
	"fmt"

	"github.com/rskv-p/fpgrowth/cmd/cmd_common"
	"github.com/rskv-p/fpgrowth/config"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/rskv-p/fpgrowth/pkg/x_view"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_client"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"

	"github.com/spf13/cobra"
)

// Cmd mines a transaction file, or stdin when no file is given.
var Cmd = &cobra.Command{
	Use:   "mine [file]",
	Short: "Mine frequent itemsets from a transaction file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMine,
}

func init() {
	addInputFlags(Cmd)
	f := Cmd.Flags()
	f.Float64("ratio", 0, "minimum support as a share of transactions (0, 1]")
	f.StringP("output", "o", "", "output format: table, json, plain")
	f.Bool("save", false, "keep the run in the result store")
	f.Bool("quiet", false, "skip the summary line")
	f.Bool("stream", false, "print itemsets as they are found, unsorted plain lines")
}

func addInputFlags(c *cobra.Command) {
	f := c.Flags()
	f.IntP("min-support", "s", 0, "minimum absolute support")
	f.String("format", "", "input format: csv, lines (default by extension)")
	f.StringP("delimiter", "d", "", `csv delimiter, "\t" or "tab" for tabs`)
	f.String("encoding", "", "input encoding: utf-8, latin1, windows-1252")
}

// applyFlags copies explicitly set flags over the config and validates it.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("min-support") {
		cfg.MinSupport, _ = f.GetInt("min-support")
		cfg.MinSupportRatio = 0
	}
	if f.Changed("ratio") {
		cfg.MinSupportRatio, _ = f.GetFloat64("ratio")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("delimiter") {
		cfg.Delimiter, _ = f.GetString("delimiter")
	}
	if f.Changed("encoding") {
		cfg.Encoding, _ = f.GetString("encoding")
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if mustBool(cmd, "save") {
		cfg.Store.Enabled = true
	}
	return cfg.Validate()
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg, err := cmd_common.Load(cmd)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	source, txns, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}
	job := mine_serv.Job{
		Source:          source,
		Transactions:    txns,
		MinSupport:      cfg.MinSupport,
		MinSupportRatio: cfg.MinSupportRatio,
		Save:            mustBool(cmd, "save"),
	}

	if mustBool(cmd, "stream") {
		return streamMine(cmd, cfg, job)
	}

	var rep *mine_serv.Report
	if remote := cmd_common.Remote(cmd); remote != "" {
		rep, err = mine_client.NewRESTClient(remote).Mine(cmd.Context(), job)
	} else {
		svc, closeSvc, oerr := cmd_common.NewService(cfg)
		if oerr != nil {
			return oerr
		}
		defer closeSvc()
		rep, err = svc.Mine(cmd.Context(), job)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := x_view.Render(out, cfg.Output, rep.Itemsets, x_view.Options{
		Transactions: rep.Transactions,
		Color:        cmd_common.ColorFor(out),
	}); err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	if cfg.Output == constant.OutputTable && !mustBool(cmd, "quiet") {
		x_view.Summary(errOut, rep.Transactions, rep.MinSupport, rep.Count, rep.Elapsed, cmd_common.ColorFor(errOut))
	}
	if rep.RunID != "" {
		fmt.Fprintln(errOut, "saved run", rep.RunID)
	}
	return nil
}

// streamMine prints each itemset the moment the miner yields it.
func streamMine(cmd *cobra.Command, cfg *config.Config, job mine_serv.Job) error {
	if job.Save {
		return mine_serv.ErrStreamSave
	}
	out := cmd.OutOrStdout()
	emit := func(set x_fp.Itemset[string]) error {
		return x_view.WritePlain(out, set)
	}

	var (
		rep *mine_serv.Report
		err error
	)
	if remote := cmd_common.Remote(cmd); remote != "" {
		rep, err = mine_client.NewStreamClient(remote).Stream(cmd.Context(), job, emit)
	} else {
		svc, closeSvc, oerr := cmd_common.NewService(cfg)
		if oerr != nil {
			return oerr
		}
		defer closeSvc()
		rep, err = svc.Stream(cmd.Context(), job, emit)
	}
	if err != nil {
		return err
	}
	if !mustBool(cmd, "quiet") {
		errOut := cmd.ErrOrStderr()
		x_view.Summary(errOut, rep.Transactions, rep.MinSupport, rep.Count, rep.Elapsed, cmd_common.ColorFor(errOut))
	}
	return nil
}
