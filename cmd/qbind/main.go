package main

import (
	"os"

	_ "github.com/querylab/qbind/providers/mysql"
	_ "github.com/querylab/qbind/providers/postgres"
	_ "github.com/querylab/qbind/providers/sqlite"

	"github.com/querylab/qbind/cmd/qbind/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
