// Package annotation provides the domain model for the spatial-temporal
// annotation engine: labeled regions over a media frame, labeled segments
// over a media clock, and the store that owns them for one artifact session.
//
// The model is independent of persistence schema and rendering technology.
// Database entities live in the datastore package; this package is the
// single source of truth for runtime annotation data.
package annotation

import "github.com/tphakala/medialabel-go/internal/geometry"

// ClassDefinition is a named label category with a stable identity.
// Annotations reference classes by ID, never by display name, so renaming
// a class is a pure display concern.
type ClassDefinition struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"` // CSS-style hex color for rendering
}

// RegionAnnotation is a labeled rectangle anchored to a percent-normalized
// position within the media frame.
//
// Timestamp is the clock position at creation for time-based media and nil
// for static media. It determines visibility during playback; it does not
// animate the box.
type RegionAnnotation struct {
	ID      string        `json:"id" yaml:"id"`
	ClassID string        `json:"class_id" yaml:"class_id"`
	Label   string        `json:"label" yaml:"label"` // display label, free text for speaker/class renaming
	Rect    geometry.Rect `json:"rect" yaml:"rect"`

	Timestamp *float64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"` // seconds on the media clock
}

// TemporalSegment is a labeled time interval over the media clock.
// Segments may overlap; multiple simultaneous labels are valid, e.g.
// overlapping speech. Invariant: End > Start.
type TemporalSegment struct {
	ID      string  `json:"id" yaml:"id"`
	ClassID string  `json:"class_id" yaml:"class_id"`
	Label   string  `json:"label" yaml:"label"`
	Start   float64 `json:"start" yaml:"start"` // seconds
	End     float64 `json:"end" yaml:"end"`     // seconds
}

// PlaybackCursor is the single mutable playback value of a session and the
// sole driver of "what is visible now". CurrentTime is always clamped to
// [0, Duration]. Duration 0 means metadata is not yet known.
type PlaybackCursor struct {
	CurrentTime float64 `json:"current_time" yaml:"current_time"`
	Duration    float64 `json:"duration" yaml:"duration"`
	IsPlaying   bool    `json:"is_playing" yaml:"is_playing"`
}

// Seek moves the cursor to t, clamped to the known duration. Seeking with
// an unknown duration clamps only the lower bound.
func (c *PlaybackCursor) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if c.Duration > 0 && t > c.Duration {
		t = c.Duration
	}
	c.CurrentTime = t
}

// TogglePlay flips the playing flag and reports the new value. Playback
// state is orthogonal to gesture state; callers may scrub while playing.
func (c *PlaybackCursor) TogglePlay() bool {
	c.IsPlaying = !c.IsPlaying
	return c.IsPlaying
}

// Snapshot is the serializable view of one artifact session's annotations,
// handed to the persistence collaborator. It carries everything needed to
// restore the session: regions, segments and the class palette in use.
type Snapshot struct {
	Artifact string             `json:"artifact" yaml:"artifact"`
	Duration float64            `json:"duration" yaml:"duration"`
	Classes  []ClassDefinition  `json:"classes" yaml:"classes"`
	Regions  []RegionAnnotation `json:"regions" yaml:"regions"`
	Segments []TemporalSegment  `json:"segments" yaml:"segments"`
}
