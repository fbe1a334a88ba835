package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := conn.Health(cmd.Context()); err != nil {
			color.Red("%s: unhealthy: %v", cfg.Dialect, err)
			return err
		}
		stats := conn.Stats()
		color.Green("%s: ok (open=%d in_use=%d idle=%d)",
			cfg.Dialect, stats.OpenConnections, stats.InUse, stats.Idle)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
