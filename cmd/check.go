package cmd

import (
	"fmt"

	"github.com/quinburrell/routingdaemon/state"
	"github.com/spf13/cobra"
)

// checkCmd validates a configuration without starting the daemon.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a router configuration",
	Long:  `Loads the configuration, runs the topology cross-checks and prints the derived neighbour links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := state.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := state.ConfigValidator(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		fmt.Printf("router %d\n", cfg.RouterId)
		fmt.Printf("input ports: %v\n", cfg.InputPorts)
		for _, out := range cfg.Outputs {
			for _, in := range cfg.InputPorts {
				if id, ok := cfg.NeighbourForInputPort(in); ok && id == out.Router {
					fmt.Printf("neighbour %d: in %d, out %d, metric %d\n", out.Router, in, out.Port, out.Metric)
				}
			}
		}
		fmt.Println("configuration ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
