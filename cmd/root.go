package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "routingdaemon",
	Short: "RIP-style distance-vector routing daemon",
	Long: `routingdaemon maintains a table of reachable routers and exchanges it with
directly connected neighbours over periodic and triggered UDP updates,
converging shortest paths with split horizon and poisoned reverse.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "router.yaml", "router configuration file")
}
