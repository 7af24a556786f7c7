package cmd

import (
	"context"
	"log/slog"

	"github.com/quinburrell/routingdaemon/core"
	"github.com/quinburrell/routingdaemon/state"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the routing daemon",
	Long:  `Loads and validates the router configuration, binds the input ports and runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := state.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := state.ConfigValidator(cfg); err != nil {
			return err
		}
		if logPath, _ := cmd.Flags().GetString("log"); logPath != "" {
			cfg.LogPath = logPath
		}

		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}

		return core.Start(context.Background(), *cfg, level)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().String("log", "", "Also write logs to this file")
	runCmd.Flags().BoolVarP(&state.DBG_log_route_table, "ltable", "t", false, "Outputs the route table on every dump")
	runCmd.Flags().BoolVarP(&state.DBG_log_router, "lrchange", "g", false, "Outputs route changes to the console")
}
