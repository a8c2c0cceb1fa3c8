package cmd

import (
	"os"

	"github.com/rskv-p/fpgrowth/cmd/cmd_mine"
	"github.com/rskv-p/fpgrowth/cmd/cmd_runs"
	"github.com/rskv-p/fpgrowth/cmd/cmd_serve"
	"github.com/rskv-p/fpgrowth/constant"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          constant.AppName,
	Short:        "Frequent itemset mining with FP-Growth",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $"+constant.EnvConfigPath+" or ./"+constant.DefaultConfigFile+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("remote", "", "address of a running server, e.g. http://127.0.0.1:8080")

	rootCmd.AddCommand(cmd_mine.Cmd)
	rootCmd.AddCommand(cmd_mine.InspectCmd)
	rootCmd.AddCommand(cmd_runs.Cmd)
	rootCmd.AddCommand(cmd_serve.Cmd)
}
