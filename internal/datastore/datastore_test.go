package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/geometry"
)

func newTestStore(t *testing.T) Interface {
	t.Helper()

	settings := &conf.Settings{}
	settings.Output.SQLite = conf.SQLiteSettings{Enabled: true, Path: ":memory:"}

	store := New(settings)
	require.NoError(t, store.Open())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSnapshot() *annotation.Snapshot {
	ts := 12.5
	return &annotation.Snapshot{
		Artifact: "clip.mp4",
		Duration: 120,
		Classes: []annotation.ClassDefinition{
			{ID: "person", Name: "Person", Color: "#e6194b"},
			{ID: "vehicle", Name: "Vehicle", Color: "#4363d8"},
		},
		Regions: []annotation.RegionAnnotation{
			{
				ID:        "r-1",
				ClassID:   "person",
				Label:     "Person",
				Rect:      geometry.Rect{X: 5, Y: 5, Width: 10, Height: 20},
				Timestamp: &ts,
			},
			{
				ID:      "r-2",
				ClassID: "vehicle",
				Label:   "Vehicle",
				Rect:    geometry.Rect{X: 40, Y: 30, Width: 15, Height: 10},
			},
		},
		Segments: []annotation.TemporalSegment{
			{ID: "s-1", ClassID: "person", Label: "Person", Start: 10, End: 20},
			{ID: "s-2", ClassID: "vehicle", Label: "Vehicle", Start: 5, End: 8},
		},
	}
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.SaveSnapshot(testSnapshot()))

	loaded, err := store.LoadSnapshot("clip.mp4")
	require.NoError(t, err)

	assert.Equal(t, "clip.mp4", loaded.Artifact)
	assert.InDelta(t, 120.0, loaded.Duration, 1e-9)
	assert.Len(t, loaded.Classes, 2)
	require.Len(t, loaded.Regions, 2)
	require.Len(t, loaded.Segments, 2)

	// Region payload survives intact, including the optional timestamp.
	var timestamped *annotation.RegionAnnotation
	for i := range loaded.Regions {
		if loaded.Regions[i].ID == "r-1" {
			timestamped = &loaded.Regions[i]
		}
	}
	require.NotNil(t, timestamped)
	require.NotNil(t, timestamped.Timestamp)
	assert.InDelta(t, 12.5, *timestamped.Timestamp, 1e-9)
	assert.InDelta(t, 10.0, timestamped.Rect.Width, 1e-9)

	// Segments come back ordered by start.
	assert.Equal(t, "s-2", loaded.Segments[0].ID)
	assert.Equal(t, "s-1", loaded.Segments[1].ID)
}

func TestSQLiteStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.SaveSnapshot(testSnapshot()))

	replacement := &annotation.Snapshot{
		Artifact: "clip.mp4",
		Duration: 120,
		Segments: []annotation.TemporalSegment{
			{ID: "s-9", ClassID: "person", Label: "Person", Start: 0, End: 1},
		},
	}
	require.NoError(t, store.SaveSnapshot(replacement))

	loaded, err := store.LoadSnapshot("clip.mp4")
	require.NoError(t, err)
	assert.Empty(t, loaded.Regions)
	require.Len(t, loaded.Segments, 1)
	assert.Equal(t, "s-9", loaded.Segments[0].ID)
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	_, err := store.LoadSnapshot("never-saved.mp4")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSQLiteStore_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.SaveSnapshot(testSnapshot()))

	require.NoError(t, store.DeleteSnapshot("clip.mp4"))
	_, err := store.LoadSnapshot("clip.mp4")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	// Deleting a missing snapshot is tolerated.
	assert.NoError(t, store.DeleteSnapshot("clip.mp4"))
}

func TestSQLiteStore_ListArtifacts(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	names, err := store.ListArtifacts()
	require.NoError(t, err)
	assert.Empty(t, names)

	snap := testSnapshot()
	require.NoError(t, store.SaveSnapshot(snap))

	other := testSnapshot()
	other.Artifact = "another.mp4"
	require.NoError(t, store.SaveSnapshot(other))

	names, err = store.ListArtifacts()
	require.NoError(t, err)
	assert.Equal(t, []string{"another.mp4", "clip.mp4"}, names)
}
