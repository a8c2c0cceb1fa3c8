package cmd_runs

import (
	"context"

	"github.com/rskv-p/fpgrowth/cmd/cmd_common"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_client"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"

	"github.com/spf13/cobra"
)

// Cmd groups the stored-run commands.
var Cmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect and remove stored mining runs",
}

// runSource is served by the local store or a remote server.
type runSource interface {
	Runs(ctx context.Context, limit int) ([]*mine_serv.Report, error)
	Run(ctx context.Context, id string) (*mine_serv.Report, error)
	DeleteRun(ctx context.Context, id string) error
}

// open returns the run source for cmd and a func releasing it.
func open(cmd *cobra.Command) (runSource, string, func(), error) {
	cfg, err := cmd_common.Load(cmd)
	if err != nil {
		return nil, "", nil, err
	}
	if f := cmd.Flags(); f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", nil, err
	}

	if remote := cmd_common.Remote(cmd); remote != "" {
		return mine_client.NewRESTClient(remote), cfg.Output, func() {}, nil
	}
	cfg.Store.Enabled = true
	svc, closeSvc, err := cmd_common.NewService(cfg)
	if err != nil {
		return nil, "", nil, err
	}
	return svc, cfg.Output, closeSvc, nil
}

func init() {
	Cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(removeCmd)
}
