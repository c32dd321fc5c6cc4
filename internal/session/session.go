// Package session ties the annotation engine together for one media
// artifact: the playback cursor, the annotation store, the single gesture
// slot, and the generation token that guards asynchronous merges.
//
// Reads flow clock -> temporal index -> active set; writes flow pointer
// gesture -> geometry normalizer -> state machine -> store. The hosting UI
// owns rendering and event delivery; the session owns all state.
package session

import (
	"log/slog"
	"sync"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/geometry"
	"github.com/tphakala/medialabel-go/internal/logging"
)

// Session is the engine instance for one loaded media artifact. It owns
// exactly one PlaybackCursor, one Store, at most one live GestureDraft,
// and the current generation token.
//
// All gesture and playback mutations arrive from the single UI event loop.
// The mutex exists for the one cross-goroutine entry point, suggestion
// merges delivered by the async dispatcher.
type Session struct {
	mu sync.Mutex

	artifact   string
	adapter    Adapter
	store      *annotation.Store
	cursor     annotation.PlaybackCursor
	gesture    GestureDraft
	generation uint64

	classes     []annotation.ClassDefinition
	activeClass int // index into classes, -1 when none selected

	logger *slog.Logger
}

// New creates a session for the named artifact bound to the given medium
// adapter and class palette. The generation token starts at 1.
func New(artifact string, adapter Adapter, thresholds conf.AnnotationSettings, classes []annotation.ClassDefinition) *Session {
	s := &Session{
		artifact:    artifact,
		adapter:     adapter,
		store:       annotation.NewStore(thresholds),
		gesture:     idleDraft,
		generation:  1,
		classes:     append([]annotation.ClassDefinition(nil), classes...),
		activeClass: -1,
		logger:      logging.ForService("annotation-session"),
	}
	if len(s.classes) > 0 {
		s.activeClass = 0
	}
	s.syncCursor()
	return s
}

// LoadArtifact replaces the current artifact. The store is purged, the
// cursor reset, any live gesture discarded, and the generation advanced so
// suggestion responses for the previous artifact are rejected on arrival.
func (s *Session) LoadArtifact(artifact string, adapter Adapter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifact = artifact
	s.adapter = adapter
	s.store.PurgeAll()
	s.gesture = idleDraft
	s.cursor = annotation.PlaybackCursor{}
	s.generation++
	s.syncCursorLocked()

	if s.logger != nil {
		s.logger.Info("artifact loaded",
			"artifact", artifact,
			"medium", adapter.Medium(),
			"generation", s.generation)
	}
}

// Generation returns the current generation token. The dispatcher captures
// it when a suggestion request is issued and hands it back with the
// response.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Artifact returns the name of the loaded artifact.
func (s *Session) Artifact() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artifact
}

// Medium returns the medium of the bound adapter.
func (s *Session) Medium() Medium {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter.Medium()
}

// Store exposes the annotation store for direct operations such as Remove
// and RenameClassUsage. The store itself is single-threaded; hosts must
// call it from the event loop only.
func (s *Session) Store() *annotation.Store {
	return s.store
}

// Cursor returns a copy of the playback cursor.
func (s *Session) Cursor() annotation.PlaybackCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Gesture returns a copy of the current gesture slot.
func (s *Session) Gesture() GestureDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gesture
}

// State returns the current interaction state.
func (s *Session) State() GestureKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gesture.Kind
}

// --- Class palette ---

// Classes returns a copy of the session's class palette.
func (s *Session) Classes() []annotation.ClassDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]annotation.ClassDefinition(nil), s.classes...)
}

// SetActiveClass selects the class new annotations are labeled with.
// Returns false if no class with the given id exists.
func (s *Session) SetActiveClass(classID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.classes {
		if s.classes[i].ID == classID {
			s.activeClass = i
			return true
		}
	}
	return false
}

// ActiveClass returns the currently selected class definition.
// ok is false when the palette is empty.
func (s *Session) ActiveClass() (annotation.ClassDefinition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeClassLocked()
}

func (s *Session) activeClassLocked() (annotation.ClassDefinition, bool) {
	if s.activeClass < 0 || s.activeClass >= len(s.classes) {
		return annotation.ClassDefinition{}, false
	}
	return s.classes[s.activeClass], true
}

// RenameClass renames a palette class by id and propagates the new display
// label to every annotation still carrying the old one. The class identity
// is untouched; this is a display-level rename.
func (s *Session) RenameClass(classID, newName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.classes {
		if s.classes[i].ID == classID {
			oldName := s.classes[i].Name
			s.classes[i].Name = newName
			updated := s.store.RenameClassUsage(oldName, newName)
			if s.logger != nil {
				s.logger.Debug("class renamed",
					"class_id", classID, "old", oldName, "new", newName,
					"annotations_updated", updated)
			}
			return true
		}
	}
	return false
}

// --- Region gestures (drawable frame) ---

// BeginRegionGesture starts a box draft at the given pixel point. It is
// ignored unless the session is idle and the medium has a drawable frame;
// the surface that begins gestures is disabled while one is active.
func (s *Session) BeginRegionGesture(p geometry.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gesture.Kind != GestureIdle || !s.adapter.SupportsRegions() {
		return false
	}
	frame := s.adapter.FrameSize()
	if frame.Width <= 0 || frame.Height <= 0 {
		return false
	}

	s.gesture = GestureDraft{
		Kind:       GestureDrawing,
		BoxStart:   p,
		BoxCurrent: p,
	}
	return true
}

// UpdateGesture extends the live box draft to the given point. A no-op in
// any state but drawing.
func (s *Session) UpdateGesture(p geometry.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gesture.Kind != GestureDrawing {
		return
	}
	s.gesture.BoxCurrent = p
}

// EndRegionGesture finishes the box draft at the given point. The drag is
// normalized into percent space and committed if it passes the minimum
// size gate; otherwise it is discarded. Either way the session returns to
// idle with no dangling draft.
func (s *Session) EndRegionGesture(p geometry.Point) (annotation.RegionAnnotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gesture.Kind != GestureDrawing {
		return annotation.RegionAnnotation{}, false
	}
	start := s.gesture.BoxStart
	s.gesture = idleDraft

	rect, ok := geometry.NormalizeDrag(start, p, s.adapter.FrameSize())
	if !ok {
		return annotation.RegionAnnotation{}, false
	}

	cls, ok := s.activeClassLocked()
	if !ok {
		return annotation.RegionAnnotation{}, false
	}

	var timestamp *float64
	if s.adapter.SupportsTimestamps() {
		// Record the clock position at creation; visibility during
		// playback derives from this, the box itself never moves.
		s.syncCursorLocked()
		t := s.cursor.CurrentTime
		timestamp = &t
	}

	return s.store.AddRegion(rect, cls.ID, cls.Name, timestamp)
}

// AbortGesture discards any live draft and returns the session to idle.
// Called when the pointer leaves the surface or the gesture is cancelled;
// the draft is dropped exactly as a too-small commit would be.
func (s *Session) AbortGesture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gesture = idleDraft
}

// --- Timeline gestures ---

// BeginTimelineGesture starts a timeline interaction at clock position t.
// With directSeek the drag scrubs the play-head immediately and never
// produces a draft; otherwise a brush draft is anchored at t. Ignored
// unless the session is idle and the medium has a timeline.
func (s *Session) BeginTimelineGesture(t float64, directSeek bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gesture.Kind != GestureIdle || !s.adapter.SupportsSegments() {
		return false
	}

	if directSeek {
		s.gesture = GestureDraft{Kind: GestureScrubbing}
		s.seekLocked(t)
		return true
	}

	s.gesture = GestureDraft{
		Kind:         GestureBrushing,
		BrushAnchor:  t,
		BrushCurrent: t,
	}
	return true
}

// UpdateTimelineGesture extends a brush draft or moves the scrub position.
func (s *Session) UpdateTimelineGesture(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.gesture.Kind {
	case GestureBrushing:
		s.gesture.BrushCurrent = t
	case GestureScrubbing:
		s.seekLocked(t)
	default:
	}
}

// EndTimelineGesture finishes the timeline interaction. A brush whose span
// passes the minimum duration commits as a segment; a brush that barely
// moved is interpreted as "jump to this time" and degrades to a seek to
// the brush anchor. Scrubbing simply returns to idle.
func (s *Session) EndTimelineGesture(t float64) (annotation.TemporalSegment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.gesture.Kind {
	case GestureBrushing:
		s.gesture.BrushCurrent = t
		anchor := s.gesture.BrushAnchor
		start, end := s.gesture.BrushSpan()
		s.gesture = idleDraft

		cls, ok := s.activeClassLocked()
		if !ok {
			s.seekLocked(anchor)
			return annotation.TemporalSegment{}, false
		}

		seg, added := s.store.AddSegment(start, end, cls.ID, cls.Name)
		if !added {
			s.seekLocked(anchor)
			return annotation.TemporalSegment{}, false
		}
		return seg, true

	case GestureScrubbing:
		s.seekLocked(t)
		s.gesture = idleDraft
		return annotation.TemporalSegment{}, false

	default:
		return annotation.TemporalSegment{}, false
	}
}

// --- Playback ---

// TogglePlayback flips play/pause on the transport and mirrors the state
// in the cursor. Orthogonal to the gesture machine: scrubbing while
// playing or paused are both valid.
func (s *Session) TogglePlayback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	playing := s.cursor.TogglePlay()
	clock := s.adapter.Clock()
	if playing {
		clock.Play()
	} else {
		clock.Pause()
	}
	return playing
}

// Seek moves the play-head to t, clamped to the known duration.
func (s *Session) Seek(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seekLocked(t)
}

func (s *Session) seekLocked(t float64) {
	s.adapter.Clock().Seek(t)
	s.syncCursorLocked()
}

// Tick pulls the current clock position into the cursor and returns the
// active set at that instant. Called once per rendered frame; the
// underlying query is a pure recompute and accumulates no state.
func (s *Session) Tick() annotation.ActiveSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncCursorLocked()
	return s.store.ActiveAt(s.cursor.CurrentTime)
}

// ActiveNow returns the active set at the cursor position without
// consulting the clock.
func (s *Session) ActiveNow() annotation.ActiveSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ActiveAt(s.cursor.CurrentTime)
}

func (s *Session) syncCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncCursorLocked()
}

func (s *Session) syncCursorLocked() {
	clock := s.adapter.Clock()
	s.cursor.Duration = clock.Duration()
	s.cursor.CurrentTime = clock.CurrentTime()
	if s.cursor.CurrentTime < 0 {
		s.cursor.CurrentTime = 0
	}
	if s.cursor.Duration > 0 && s.cursor.CurrentTime > s.cursor.Duration {
		s.cursor.CurrentTime = s.cursor.Duration
	}
}

// --- Snapshots ---

// Snapshot assembles the serializable view of the session for the
// persistence collaborator.
func (s *Session) Snapshot() annotation.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot(s.artifact, s.cursor.Duration, s.classes)
}

// RestoreSnapshot loads previously persisted annotations into the store,
// replacing current contents. The snapshot's palette replaces the session
// palette so restored class ids resolve.
func (s *Session) RestoreSnapshot(snap *annotation.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Restore(snap)
	if len(snap.Classes) > 0 {
		s.classes = append([]annotation.ClassDefinition(nil), snap.Classes...)
		s.activeClass = 0
	}
}
