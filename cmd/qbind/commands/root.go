// Package commands implements the qbind CLI.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/querylab/qbind/cmd/qbind/internal/config"
	"github.com/querylab/qbind/connector"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "qbind",
	Short: "Run parameterized SQL with named placeholders",
	Long: `qbind executes SQL templates with :name placeholders against
PostgreSQL, MySQL, or SQLite. Parameter values are always transmitted as
bound data, never spliced into the query text.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default qbind.yaml)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// connect resolves config and opens the configured connection.
func connect(ctx context.Context) (*config.Config, connector.Connection, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	conn, err := connector.Open(ctx, cfg.Dialect, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return cfg, conn, nil
}
