package main

import (
	"os"

	"github.com/spf13/cobra"

	"zenmai/internal/interfaces/cli/migrate"
	"zenmai/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zenmai",
		Short: "Zenmai - a minimal issue tracker",
		Long:  `Zenmai is a minimal web-based issue tracker with comments, file attachments, and user accounts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
