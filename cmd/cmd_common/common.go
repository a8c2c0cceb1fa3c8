// Package cmd_common holds config, logging and wiring shared by subcommands.
package cmd_common

import (
	"io"
	"os"

	"github.com/rskv-p/fpgrowth/config"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_db"
	"github.com/rskv-p/fpgrowth/pkg/x_log"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"

	"github.com/spf13/cobra"
)

// Load resolves the config from --config or the usual fallbacks, applies
// --log-level and sets up logging. Callers validate after their own overrides.
func Load(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadWithFallback()
	}
	if err != nil {
		return nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	InitLogging(cfg)
	return cfg, nil
}

// InitLogging configures x_log from xlog.json with the level from cfg.
func InitLogging(cfg *config.Config) {
	lc, err := x_log.LoadConfig("")
	if err != nil {
		def := x_log.DefaultConfig()
		lc = &def
	}
	lc.Level = cfg.LogLevel
	x_log.InitWithConfig(lc, constant.AppName)
}

// Remote returns the --remote address or FPG_REMOTE.
func Remote(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("remote"); v != "" {
		return v
	}
	return config.GetEnvStr(constant.EnvPrefix+"REMOTE", "")
}

// NewService builds the mining service, opening the store when enabled.
// The returned func closes whatever was opened.
func NewService(cfg *config.Config) (*mine_serv.Service, func(), error) {
	if !cfg.Store.Enabled {
		return mine_serv.New(cfg, nil), func() {}, nil
	}
	store, err := x_db.Open(x_db.Config{
		Dialect: cfg.Store.Dialect,
		DSN:     cfg.Store.DSN,
	}, x_log.New("store"))
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := store.Close(); err != nil {
			x_log.Warn().Err(err).Msg("store close failed")
		}
	}
	return mine_serv.New(cfg, store), closer, nil
}

// ColorFor reports whether w is a terminal worth coloring.
func ColorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && x_log.IsTerminal(f)
}
