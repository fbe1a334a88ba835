package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/querylab/qbind/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables on the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		tables, err := schema.Tables(cmd.Context(), conn)
		if err != nil {
			return err
		}
		for _, table := range tables {
			fmt.Println(table)
		}
		return nil
	},
}

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "Show a table's column definitions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		cols, err := schema.Columns(cmd.Context(), conn, args[0])
		if err != nil {
			return err
		}
		bold := color.New(color.Bold)
		bold.Println("name\ttype\tnullable")
		for _, col := range cols {
			fmt.Printf("%s\t%s\t%v\n", col.Name, col.DataType, col.Nullable)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(columnsCmd)
}
