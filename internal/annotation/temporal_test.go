package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/medialabel-go/internal/geometry"
)

func TestActiveAt_SegmentBoundariesInclusive(t *testing.T) {
	t.Parallel()

	segments := []TemporalSegment{
		{ID: "a", Start: 10, End: 20},
	}

	tests := []struct {
		name   string
		time   float64
		active bool
	}{
		{"before start", 9.99, false},
		{"exactly at start", 10, true},
		{"inside", 15, true},
		{"exactly at end", 20, true},
		{"after end", 20.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			active := ActiveAt(tt.time, nil, segments, 0.5)
			if tt.active {
				assert.Len(t, active.Segments, 1)
			} else {
				assert.Empty(t, active.Segments)
			}
		})
	}
}

// Playback at 30.2s with epsilon 0.5s: a region stamped 30.0s is within
// the visibility window, one stamped 29.4s is not.
func TestActiveAt_TimestampEpsilonWindow(t *testing.T) {
	t.Parallel()

	near := 30.0
	far := 29.4
	regions := []RegionAnnotation{
		{ID: "near", Timestamp: &near},
		{ID: "far", Timestamp: &far},
	}

	active := ActiveAt(30.2, regions, nil, 0.5)
	require.Len(t, active.Regions, 1)
	assert.Equal(t, "near", active.Regions[0].ID)
}

func TestActiveAt_EpsilonBoundaryIsExclusive(t *testing.T) {
	t.Parallel()

	ts := 10.0
	regions := []RegionAnnotation{{ID: "r", Timestamp: &ts}}

	assert.Empty(t, ActiveAt(10.5, regions, nil, 0.5).Regions, "|ts-t| == epsilon is not active")
	assert.Len(t, ActiveAt(10.49, regions, nil, 0.5).Regions, 1)
}

func TestActiveAt_UntimestampedRegionsAlwaysActive(t *testing.T) {
	t.Parallel()

	regions := []RegionAnnotation{{ID: "static"}}

	for _, at := range []float64{0, 12.7, 1e6} {
		active := ActiveAt(at, regions, nil, 0.5)
		assert.Len(t, active.Regions, 1, "t=%g", at)
	}
}

func TestActiveAt_OverlappingSegmentsAllReported(t *testing.T) {
	t.Parallel()

	segments := []TemporalSegment{
		{ID: "a", Start: 0, End: 30},
		{ID: "b", Start: 10, End: 20},
		{ID: "c", Start: 25, End: 40},
	}

	active := ActiveAt(15, nil, segments, 0.5)
	require.Len(t, active.Segments, 2)
	assert.Equal(t, "a", active.Segments[0].ID)
	assert.Equal(t, "b", active.Segments[1].ID)
}

// The visibility query is pure: identical inputs yield identical results,
// and the query never mutates the lists it reads.
func TestActiveAt_Idempotent(t *testing.T) {
	t.Parallel()

	ts := 4.9
	regions := []RegionAnnotation{
		{ID: "r1", Rect: geometry.Rect{Width: 5, Height: 5}, Timestamp: &ts},
		{ID: "r2", Rect: geometry.Rect{Width: 9, Height: 9}},
	}
	segments := []TemporalSegment{
		{ID: "s1", Start: 2, End: 8},
		{ID: "s2", Start: 9, End: 12},
	}

	first := ActiveAt(5, regions, segments, 0.5)
	second := ActiveAt(5, regions, segments, 0.5)
	assert.Equal(t, first, second)

	require.Len(t, first.Regions, 2)
	require.Len(t, first.Segments, 1)
	assert.Equal(t, "s1", first.Segments[0].ID)
}

func TestPlaybackCursor_SeekClamps(t *testing.T) {
	t.Parallel()

	c := PlaybackCursor{Duration: 120}
	c.Seek(-5)
	assert.Zero(t, c.CurrentTime)
	c.Seek(300)
	assert.InDelta(t, 120.0, c.CurrentTime, 1e-9)
	c.Seek(60)
	assert.InDelta(t, 60.0, c.CurrentTime, 1e-9)

	// Unknown duration clamps only the lower bound.
	unknown := PlaybackCursor{}
	unknown.Seek(42)
	assert.InDelta(t, 42.0, unknown.CurrentTime, 1e-9)
	unknown.Seek(-1)
	assert.Zero(t, unknown.CurrentTime)
}

func TestPlaybackCursor_TogglePlay(t *testing.T) {
	t.Parallel()

	c := PlaybackCursor{}
	assert.True(t, c.TogglePlay())
	assert.False(t, c.TogglePlay())
}
