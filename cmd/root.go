// Package cmd wires up the medialabel command line interface.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/medialabel-go/cmd/inspect"
	"github.com/tphakala/medialabel-go/cmd/purge"
	"github.com/tphakala/medialabel-go/cmd/suggest"
	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "medialabel",
		Short: "Media annotation snapshot tooling",
		Long:  "Inspect and manage persisted annotation snapshots produced by the medialabel annotation engine.",
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		inspect.Command(settings),
		purge.Command(settings),
		suggest.Command(settings),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Sync the settings struct with viper so command-line arguments
		// take precedence over the config file.
		settings.Debug = viper.GetBool("debug")
		if path := viper.GetString("output.sqlite.path"); path != "" {
			settings.Output.SQLite.Path = path
		}
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}
		return nil
	}

	return rootCmd
}

// setupFlags defines global flags for the root command
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVar(&settings.Debug, "debug", settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Output.SQLite.Path, "db", settings.Output.SQLite.Path, "Path to the snapshot database")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("output.sqlite.path", rootCmd.PersistentFlags().Lookup("db"))
}
