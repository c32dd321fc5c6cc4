// Package inspect implements the "inspect" subcommand: load a persisted
// snapshot and report which annotations are active at a clock position.
package inspect

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/datastore"
)

// Command creates the inspect subcommand.
func Command(settings *conf.Settings) *cobra.Command {
	var at float64

	cmd := &cobra.Command{
		Use:   "inspect <artifact>",
		Short: "Show annotations active at a clock position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, settings, args[0], at)
		},
	}

	cmd.Flags().Float64VarP(&at, "time", "t", 0, "Clock position in seconds")
	return cmd
}

func runInspect(cmd *cobra.Command, settings *conf.Settings, artifact string, at float64) error {
	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer func() { _ = store.Close() }()

	snap, err := store.LoadSnapshot(artifact)
	if err != nil {
		if errors.Is(err, datastore.ErrSnapshotNotFound) {
			return fmt.Errorf("no snapshot stored for artifact %q", artifact)
		}
		return err
	}

	active := annotation.ActiveAt(at, snap.Regions, snap.Segments, settings.Annotation.TimestampEpsilon)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "artifact: %s (duration %.2fs, %d regions, %d segments)\n",
		snap.Artifact, snap.Duration, len(snap.Regions), len(snap.Segments))
	fmt.Fprintf(out, "active at t=%.2fs:\n", at)

	if len(active.Regions) == 0 && len(active.Segments) == 0 {
		fmt.Fprintln(out, "  (nothing)")
		return nil
	}

	for i := range active.Regions {
		r := active.Regions[i]
		if r.Timestamp != nil {
			fmt.Fprintf(out, "  region  %-20s %6.2f%%,%6.2f%% %6.2fx%-6.2f @ %.2fs\n",
				r.Label, r.Rect.X, r.Rect.Y, r.Rect.Width, r.Rect.Height, *r.Timestamp)
		} else {
			fmt.Fprintf(out, "  region  %-20s %6.2f%%,%6.2f%% %6.2fx%-6.2f\n",
				r.Label, r.Rect.X, r.Rect.Y, r.Rect.Width, r.Rect.Height)
		}
	}
	for i := range active.Segments {
		s := active.Segments[i]
		fmt.Fprintf(out, "  segment %-20s %.2fs - %.2fs\n", s.Label, s.Start, s.End)
	}
	return nil
}
