package palette

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	p := Default("video")
	path := filepath.Join(t.TempDir(), "palettes", "video.yaml")

	require.NoError(t, Save(p, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.Classes, loaded.Classes)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_FallsBackToBuiltin(t *testing.T) {
	t.Parallel()

	p, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), "audio")
	require.NoError(t, err)
	assert.Equal(t, "audio-default", p.Name)
	assert.NotEmpty(t, p.Classes)
}

func TestDefault_MediumPalettes(t *testing.T) {
	t.Parallel()

	audio := Default("audio")
	_, ok := audio.FindByName("Speaker 1")
	assert.True(t, ok, "audio palette is speaker oriented")

	video := Default("video")
	_, ok = video.FindByName("Person")
	assert.True(t, ok, "video palette is object oriented")

	// Ids are stable slugs so annotations survive palette edits.
	assert.Equal(t, "speaker-1", audio.Classes[0].ID)
	assert.Equal(t, "person", video.Classes[0].ID)
}

func TestPalette_Add(t *testing.T) {
	t.Parallel()

	p := Default("image")
	before := len(p.Classes)

	cls, err := p.Add("Bicycle", "#42d4f4")
	require.NoError(t, err)
	assert.NotEmpty(t, cls.ID)
	assert.Len(t, p.Classes, before+1)

	_, err = p.Add("Bicycle", "#42d4f4")
	assert.Error(t, err, "duplicate names rejected")
}

func TestPalette_Labels(t *testing.T) {
	t.Parallel()

	p := Default("audio")
	labels := p.Labels()
	require.Len(t, labels, len(p.Classes))
	assert.Equal(t, "Speaker 1", labels[0])
}
