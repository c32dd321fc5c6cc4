package suggest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/medialabel-go/internal/conf"
)

func testSettings() *conf.Settings {
	s := &conf.Settings{}
	s.Annotation = conf.AnnotationSettings{
		MinRegionPercent:  conf.DefaultMinRegionPercent,
		MinSegmentSeconds: conf.DefaultMinSegmentSeconds,
		TimestampEpsilon:  conf.DefaultTimestampEpsilon,
	}
	s.Suggestion = conf.SuggestionSettings{Enabled: true, Seed: 42, MaxCandidates: 4, CacheTTL: 5}
	s.Output.SQLite = conf.SQLiteSettings{Enabled: true, Path: ":memory:"}
	return s
}

func runCommand(t *testing.T, settings *conf.Settings, args ...string) (string, error) {
	t.Helper()

	cmd := Command(settings)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSuggest_VideoMergesCandidates(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, testSettings(), "clip.mp4", "--medium", "video", "--duration", "60")
	require.NoError(t, err)

	assert.Contains(t, out, "palette video-default")
	assert.NotContains(t, out, "merged 0 annotations")
}

func TestSuggest_AudioProducesSegmentsOnly(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, testSettings(), "talk.wav", "--medium", "audio", "--duration", "300")
	require.NoError(t, err)

	assert.Contains(t, out, "palette audio-default")
	assert.Contains(t, out, "(0 regions")
}

func TestSuggest_ImageProducesRegionsOnly(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, testSettings(), "photo.jpg", "--medium", "image")
	require.NoError(t, err)

	assert.Contains(t, out, "0 segments)")
	assert.NotContains(t, out, "merged 0 annotations")
}

func TestSuggest_SavePersistsSnapshot(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, testSettings(), "clip.mp4", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, `saved snapshot for "clip.mp4"`)
}

func TestSuggest_DisabledByConfiguration(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	settings.Suggestion.Enabled = false

	_, err := runCommand(t, settings, "clip.mp4")
	assert.Error(t, err)
}

func TestSuggest_UnknownMedium(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, testSettings(), "clip.mp4", "--medium", "hologram")
	assert.Error(t, err)
}
