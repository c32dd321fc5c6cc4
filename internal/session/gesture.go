package session

import "github.com/tphakala/medialabel-go/internal/geometry"

// GestureKind enumerates the interaction states of a session. The session
// holds exactly one gesture slot; representing the state as a tagged value
// rather than independent booleans rules out impossible combinations such
// as drawing and scrubbing at once.
type GestureKind int

const (
	// GestureIdle means no pointer gesture is in progress.
	GestureIdle GestureKind = iota
	// GestureDrawing means a region box is being dragged on the frame.
	GestureDrawing
	// GestureBrushing means a segment span is being brushed on the timeline.
	GestureBrushing
	// GestureScrubbing means the timeline drag is a direct seek, no draft.
	GestureScrubbing
)

// String returns the state name for logging.
func (k GestureKind) String() string {
	switch k {
	case GestureIdle:
		return "idle"
	case GestureDrawing:
		return "drawing"
	case GestureBrushing:
		return "brushing"
	case GestureScrubbing:
		return "scrubbing"
	default:
		return "unknown"
	}
}

// GestureDraft is the ephemeral in-progress gesture between pointer-down
// and pointer-up. It is never persisted: on pointer-up it either commits
// into the store or is discarded, and it never outlives the gesture.
type GestureDraft struct {
	Kind GestureKind

	// Box drag, pixel space. Meaningful while Kind == GestureDrawing.
	BoxStart   geometry.Point
	BoxCurrent geometry.Point

	// Timeline brush, seconds. Meaningful while Kind == GestureBrushing.
	BrushAnchor  float64
	BrushCurrent float64
}

// BrushSpan returns the brush extent in ascending order.
func (d GestureDraft) BrushSpan() (start, end float64) {
	if d.BrushAnchor <= d.BrushCurrent {
		return d.BrushAnchor, d.BrushCurrent
	}
	return d.BrushCurrent, d.BrushAnchor
}

// idleDraft is the zero gesture slot.
var idleDraft = GestureDraft{Kind: GestureIdle}
