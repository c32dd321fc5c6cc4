package session

import "github.com/tphakala/medialabel-go/internal/geometry"

// Medium identifies the kind of media artifact a session is bound to.
type Medium string

const (
	MediumImage Medium = "image"
	MediumVideo Medium = "video"
	MediumAudio Medium = "audio"
)

// Clock is the media playback collaborator boundary. Implementations wrap
// whatever actually plays the media; the engine only reads the clock and
// issues play/pause/seek commands.
//
// Duration may be 0 until media metadata has loaded; the engine treats 0
// as "not yet known" and suppresses duration-dependent math until it is
// positive.
type Clock interface {
	CurrentTime() float64
	Duration() float64
	Play()
	Pause()
	Seek(t float64)
}

// Adapter describes one medium's capabilities to the engine. The engine is
// written once against this interface; image, video and audio hubs are
// thin adapters plus medium-specific rendering.
type Adapter interface {
	Medium() Medium
	Clock() Clock
	// FrameSize is the intrinsic pixel size of the media frame. Zero for
	// audio, which has no spatial surface.
	FrameSize() geometry.Size
	// SupportsTimestamps reports whether region annotations carry a clock
	// timestamp. True for video; false for image, where an annotation is
	// always visible.
	SupportsTimestamps() bool
	// SupportsRegions reports whether the medium has a drawable frame.
	SupportsRegions() bool
	// SupportsSegments reports whether the medium has a timeline to brush.
	SupportsSegments() bool
}

// VideoAdapter binds the engine to a playable video: spatial regions with
// timestamps plus temporal segments.
type VideoAdapter struct {
	clock Clock
	frame geometry.Size
}

// NewVideoAdapter creates a video adapter over the given clock and
// intrinsic frame size.
func NewVideoAdapter(clock Clock, frame geometry.Size) *VideoAdapter {
	return &VideoAdapter{clock: clock, frame: frame}
}

func (a *VideoAdapter) Medium() Medium           { return MediumVideo }
func (a *VideoAdapter) Clock() Clock             { return a.clock }
func (a *VideoAdapter) FrameSize() geometry.Size { return a.frame }
func (a *VideoAdapter) SupportsTimestamps() bool { return true }
func (a *VideoAdapter) SupportsRegions() bool    { return true }
func (a *VideoAdapter) SupportsSegments() bool   { return true }

// ImageAdapter binds the engine to a static image: spatial regions only,
// no clock, no timestamps. Duration degenerates to a single instant.
type ImageAdapter struct {
	frame geometry.Size
	clock staticClock
}

// NewImageAdapter creates an image adapter for the given intrinsic pixel size.
func NewImageAdapter(frame geometry.Size) *ImageAdapter {
	return &ImageAdapter{frame: frame}
}

func (a *ImageAdapter) Medium() Medium           { return MediumImage }
func (a *ImageAdapter) Clock() Clock             { return a.clock }
func (a *ImageAdapter) FrameSize() geometry.Size { return a.frame }
func (a *ImageAdapter) SupportsTimestamps() bool { return false }
func (a *ImageAdapter) SupportsRegions() bool    { return true }
func (a *ImageAdapter) SupportsSegments() bool   { return false }

// staticClock is the degenerate clock of a static image: time is always
// the single instant zero and transport commands are no-ops.
type staticClock struct{}

func (staticClock) CurrentTime() float64 { return 0 }
func (staticClock) Duration() float64    { return 0 }
func (staticClock) Play()                {}
func (staticClock) Pause()               {}
func (staticClock) Seek(float64)         {}

// AudioAdapter binds the engine to an audio artifact: temporal segments
// only, no spatial frame.
type AudioAdapter struct {
	clock Clock
}

// NewAudioAdapter creates an audio adapter over the given clock.
func NewAudioAdapter(clock Clock) *AudioAdapter {
	return &AudioAdapter{clock: clock}
}

func (a *AudioAdapter) Medium() Medium           { return MediumAudio }
func (a *AudioAdapter) Clock() Clock             { return a.clock }
func (a *AudioAdapter) FrameSize() geometry.Size { return geometry.Size{} }
func (a *AudioAdapter) SupportsTimestamps() bool { return false }
func (a *AudioAdapter) SupportsRegions() bool    { return false }
func (a *AudioAdapter) SupportsSegments() bool   { return true }

// ManualClock is a Clock driven explicitly by the caller. It backs the
// image-less CLI, tests, and any host that advances time itself.
type ManualClock struct {
	time     float64
	duration float64
	playing  bool
}

// NewManualClock creates a manual clock with the given total duration.
func NewManualClock(duration float64) *ManualClock {
	return &ManualClock{duration: duration}
}

func (c *ManualClock) CurrentTime() float64 { return c.time }
func (c *ManualClock) Duration() float64    { return c.duration }
func (c *ManualClock) Play()                { c.playing = true }
func (c *ManualClock) Pause()               { c.playing = false }

// Seek clamps to [0, duration] like a real transport would.
func (c *ManualClock) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if c.duration > 0 && t > c.duration {
		t = c.duration
	}
	c.time = t
}

// Playing reports the transport state.
func (c *ManualClock) Playing() bool { return c.playing }

// SetDuration simulates media metadata arriving after load.
func (c *ManualClock) SetDuration(d float64) { c.duration = d }

// Advance moves the clock forward, clamped to the duration.
func (c *ManualClock) Advance(dt float64) {
	c.Seek(c.time + dt)
}
