// Package purge implements the "purge" subcommand: delete the persisted
// snapshot of an artifact.
package purge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/datastore"
)

// Command creates the purge subcommand.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "purge <artifact>",
		Short: "Delete the stored snapshot for an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := datastore.New(settings)
			if err := store.Open(); err != nil {
				return fmt.Errorf("failed to open snapshot database: %w", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteSnapshot(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged snapshot for %q\n", args[0])
			return nil
		},
	}
}
