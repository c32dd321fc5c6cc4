package session

import (
	"github.com/tphakala/medialabel-go/internal/suggestion"
)

// MergeSuggestions merges externally produced candidates into the store.
// The merge is strictly additive: each candidate passes the same validity
// gates as a manually drawn annotation and invalid ones are dropped
// silently. No deduplication against existing annotations is performed.
//
// A response tagged with a generation other than the current one is
// discarded wholesale: it belongs to an artifact the user has already
// replaced. Returns the number of candidates actually stored.
//
// This is the one session entry point invoked from outside the UI event
// loop (the suggestion dispatcher goroutine), hence the session mutex.
func (s *Session) MergeSuggestions(generation uint64, candidates []suggestion.Candidate) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		if s.logger != nil {
			s.logger.Debug("discarded stale suggestion response",
				"response_generation", generation,
				"session_generation", s.generation,
				"candidates", len(candidates))
		}
		return 0
	}

	added := 0
	for i := range candidates {
		if s.mergeCandidateLocked(&candidates[i]) {
			added++
		}
	}

	if s.logger != nil && len(candidates) > 0 {
		s.logger.Info("merged suggestions",
			"artifact", s.artifact,
			"accepted", added,
			"received", len(candidates))
	}
	return added
}

func (s *Session) mergeCandidateLocked(c *suggestion.Candidate) bool {
	classID, label := s.resolveCandidateClassLocked(c)

	switch c.Kind {
	case suggestion.KindRegion:
		if !s.adapter.SupportsRegions() {
			return false
		}
		var timestamp *float64
		if s.adapter.SupportsTimestamps() {
			t := s.cursor.CurrentTime
			timestamp = &t
		}
		_, ok := s.store.AddRegion(c.Rect, classID, label, timestamp)
		return ok

	case suggestion.KindSegment:
		if !s.adapter.SupportsSegments() {
			return false
		}
		start, end := c.Start, c.End
		if c.Fractional {
			// Fractional spans need a known duration to scale against.
			if s.cursor.Duration <= 0 {
				return false
			}
			start *= s.cursor.Duration
			end *= s.cursor.Duration
		}
		_, ok := s.store.AddSegment(start, end, classID, label)
		return ok

	default:
		return false
	}
}

// resolveCandidateClassLocked maps a candidate onto the session palette.
// Providers may return a known class id, a label matching a palette name,
// or free text; free text is kept as the label with an empty class id so
// the host can offer reassignment.
func (s *Session) resolveCandidateClassLocked(c *suggestion.Candidate) (classID, label string) {
	if c.ClassID != "" {
		for i := range s.classes {
			if s.classes[i].ID == c.ClassID {
				return s.classes[i].ID, s.classes[i].Name
			}
		}
	}
	if c.Label != "" {
		for i := range s.classes {
			if s.classes[i].Name == c.Label {
				return s.classes[i].ID, s.classes[i].Name
			}
		}
		return "", c.Label
	}
	if cls, ok := s.activeClassLocked(); ok {
		return cls.ID, cls.Name
	}
	return "", ""
}

// Session must keep satisfying the dispatcher's sink interface.
var _ suggestion.Merger = (*Session)(nil)
