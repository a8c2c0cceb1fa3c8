package cmd_serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rskv-p/fpgrowth/cmd/cmd_common"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_api"

	"github.com/spf13/cobra"
)

// Cmd runs the HTTP API until interrupted.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mining API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmd_common.Load(cmd)
		if err != nil {
			return err
		}
		if f := cmd.Flags(); f.Changed("addr") {
			cfg.HTTPAddr, _ = f.GetString("addr")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		svc, closeSvc, err := cmd_common.NewService(cfg)
		if err != nil {
			return err
		}
		defer closeSvc()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return mine_api.Serve(ctx, cfg.HTTPAddr, svc)
	},
}

func init() {
	Cmd.Flags().String("addr", "", "listen address (default from config)")
}
