// Command togetherly runs the content calendar service and its operator tools.
//
//	@title			Togetherly API
//	@version		1.0
//	@description	Social content calendars for small businesses.
//	@BasePath		/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"togetherly/internal/interfaces/cli/generate"
	"togetherly/internal/interfaces/cli/migrate"
	"togetherly/internal/interfaces/cli/reconcile"
	"togetherly/internal/interfaces/cli/server"
	"togetherly/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "togetherly",
		Short:        "Togetherly - social content calendars for small businesses",
		Long:         `Togetherly serves the content calendar API and ships the tools to migrate its database, reconcile subscriptions and generate calendars offline.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		reconcile.NewCommand(),
		generate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
