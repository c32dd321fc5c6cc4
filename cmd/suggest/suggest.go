// Package suggest implements the "suggest" subcommand: request candidates
// from the simulated suggestion provider, merge the ones that pass the
// validity gates into a fresh session, and optionally persist the result.
package suggest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/datastore"
	"github.com/tphakala/medialabel-go/internal/geometry"
	"github.com/tphakala/medialabel-go/internal/palette"
	"github.com/tphakala/medialabel-go/internal/session"
	"github.com/tphakala/medialabel-go/internal/suggestion"
)

// Command creates the suggest subcommand.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		medium   string
		duration float64
		width    float64
		height   float64
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <artifact>",
		Short: "Request suggested annotations for an artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			frame := geometry.Size{Width: width, Height: height}
			return runSuggest(cmd, settings, args[0], medium, duration, frame, save)
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVarP(&medium, "medium", "m", "video", "Artifact medium: image, video or audio")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 60, "Artifact duration in seconds")
	cmd.Flags().Float64Var(&width, "width", 1920, "Frame width in pixels")
	cmd.Flags().Float64Var(&height, "height", 1080, "Frame height in pixels")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the merged snapshot to the database")
	return cmd
}

func runSuggest(cmd *cobra.Command, settings *conf.Settings, artifact, medium string, duration float64, frame geometry.Size, save bool) error {
	if !settings.Suggestion.Enabled {
		return fmt.Errorf("suggestions are disabled in the configuration")
	}

	pal, err := palette.LoadOrDefault(paletteFile(settings, medium), medium)
	if err != nil {
		return fmt.Errorf("failed to load %s palette: %w", medium, err)
	}

	adapter, err := newAdapter(medium, duration, frame)
	if err != nil {
		return err
	}

	sess := session.New(artifact, adapter, settings.Annotation, pal.Classes)

	provider := suggestion.NewCachedProvider(
		suggestion.NewSimulatedProvider(settings.Suggestion.Seed, pal.Labels(), settings.Suggestion.MaxCandidates),
		time.Duration(settings.Suggestion.CacheTTL)*time.Minute,
	)
	dispatcher := suggestion.NewDispatcher(provider, sess, 0)
	dispatcher.Dispatch(cmd.Context(), suggestion.Request{
		Context:  artifact,
		Hint:     medium,
		Duration: duration,
	})
	dispatcher.Wait()

	snap := sess.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "artifact: %s (%s, palette %s)\n", artifact, medium, pal.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "merged %d annotations (%d regions, %d segments)\n",
		len(snap.Regions)+len(snap.Segments), len(snap.Regions), len(snap.Segments))

	if !save {
		return nil
	}

	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveSnapshot(&snap); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved snapshot for %q\n", artifact)
	return nil
}

// newAdapter binds the requested medium to a manual clock; the CLI has no
// real transport, so the play-head just sits at zero.
func newAdapter(medium string, duration float64, frame geometry.Size) (session.Adapter, error) {
	switch medium {
	case "image":
		return session.NewImageAdapter(frame), nil
	case "video":
		return session.NewVideoAdapter(session.NewManualClock(duration), frame), nil
	case "audio":
		return session.NewAudioAdapter(session.NewManualClock(duration)), nil
	default:
		return nil, fmt.Errorf("unknown medium %q", medium)
	}
}

func paletteFile(settings *conf.Settings, medium string) string {
	switch medium {
	case "image":
		return settings.Palettes.Image
	case "audio":
		return settings.Palettes.Audio
	default:
		return settings.Palettes.Video
	}
}
