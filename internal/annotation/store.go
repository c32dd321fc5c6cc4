package annotation

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/tphakala/medialabel-go/internal/conf"
	"github.com/tphakala/medialabel-go/internal/geometry"
	"github.com/tphakala/medialabel-go/internal/logging"
)

// Store is the authoritative, mutable collection of annotations for one
// media artifact. All mutations are synchronous and immediately visible to
// the next visibility query; persistence is an external collaborator that
// receives snapshots.
//
// The store enforces the validity gates (minimum region dimensions, minimum
// segment duration) so no degenerate record is ever held. It deliberately
// does NOT merge or deduplicate overlapping identical-class segments;
// overlap is a valid state.
//
// Store is not safe for concurrent use. All mutations originate from the
// single UI event loop that owns the session.
type Store struct {
	thresholds conf.AnnotationSettings
	regions    []RegionAnnotation
	segments   []TemporalSegment // kept in ascending Start order
	logger     *slog.Logger
}

// NewStore creates an empty store using the given validity thresholds.
func NewStore(thresholds conf.AnnotationSettings) *Store {
	return &Store{
		thresholds: thresholds,
		logger:     logging.ForService("annotation-store"),
	}
}

// Thresholds returns the validity thresholds this store enforces.
func (s *Store) Thresholds() conf.AnnotationSettings {
	return s.thresholds
}

// AddRegion validates the normalized rectangle and appends a new region
// annotation with a fresh id. Sub-threshold rectangles are rejected as a
// no-op; ok reports whether the region was stored. timestamp is the clock
// position at creation, nil for static media.
func (s *Store) AddRegion(rect geometry.Rect, classID, label string, timestamp *float64) (RegionAnnotation, bool) {
	if !rect.MeetsMinimum(s.thresholds.MinRegionPercent) {
		if s.logger != nil {
			s.logger.Debug("rejected degenerate region",
				"width", rect.Width, "height", rect.Height,
				"min_percent", s.thresholds.MinRegionPercent)
		}
		return RegionAnnotation{}, false
	}

	var ts *float64
	if timestamp != nil {
		v := *timestamp
		ts = &v
	}

	region := RegionAnnotation{
		ID:        uuid.New().String(),
		ClassID:   classID,
		Label:     label,
		Rect:      rect,
		Timestamp: ts,
	}
	s.regions = append(s.regions, region)
	return region, true
}

// AddSegment validates the span and inserts a new temporal segment,
// maintaining ascending start order. Spans at or below the minimum
// duration are rejected as a no-op.
func (s *Store) AddSegment(start, end float64, classID, label string) (TemporalSegment, bool) {
	if end-start <= s.thresholds.MinSegmentSeconds {
		if s.logger != nil {
			s.logger.Debug("rejected degenerate segment",
				"start", start, "end", end,
				"min_seconds", s.thresholds.MinSegmentSeconds)
		}
		return TemporalSegment{}, false
	}

	segment := TemporalSegment{
		ID:      uuid.New().String(),
		ClassID: classID,
		Label:   label,
		Start:   start,
		End:     end,
	}

	// Insert at the position that keeps segments sorted by start time.
	idx := sort.Search(len(s.segments), func(i int) bool {
		return s.segments[i].Start > segment.Start
	})
	s.segments = append(s.segments, TemporalSegment{})
	copy(s.segments[idx+1:], s.segments[idx:])
	s.segments[idx] = segment

	return segment, true
}

// Remove deletes a region or segment by id. Missing ids are tolerated
// silently; delete buttons can race with a bulk purge.
func (s *Store) Remove(id string) {
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return
		}
	}
	for i := range s.segments {
		if s.segments[i].ID == id {
			s.segments = append(s.segments[:i], s.segments[i+1:]...)
			return
		}
	}
}

// PurgeAll clears both lists. Used on new-artifact load and explicit
// purge actions.
func (s *Store) PurgeAll() {
	s.regions = nil
	s.segments = nil
}

// RenameClassUsage re-labels every annotation currently carrying the old
// display label. This supports free-text speaker/class renaming without
// touching the stable class ids. Returns the number of records updated.
func (s *Store) RenameClassUsage(oldLabel, newLabel string) int {
	updated := 0
	for i := range s.regions {
		if s.regions[i].Label == oldLabel {
			s.regions[i].Label = newLabel
			updated++
		}
	}
	for i := range s.segments {
		if s.segments[i].Label == oldLabel {
			s.segments[i].Label = newLabel
			updated++
		}
	}
	return updated
}

// Regions returns a copy of the region list in insertion order.
func (s *Store) Regions() []RegionAnnotation {
	out := make([]RegionAnnotation, len(s.regions))
	copy(out, s.regions)
	return out
}

// Segments returns a copy of the segment list in ascending start order.
func (s *Store) Segments() []TemporalSegment {
	out := make([]TemporalSegment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the total number of stored records.
func (s *Store) Len() int {
	return len(s.regions) + len(s.segments)
}

// ActiveAt returns the subset of stored annotations active at the given
// clock position, using the store's configured epsilon.
func (s *Store) ActiveAt(currentTime float64) ActiveSet {
	return ActiveAt(currentTime, s.regions, s.segments, s.thresholds.TimestampEpsilon)
}

// Snapshot assembles the serializable view of the store for the
// persistence collaborator.
func (s *Store) Snapshot(artifact string, duration float64, classes []ClassDefinition) Snapshot {
	return Snapshot{
		Artifact: artifact,
		Duration: duration,
		Classes:  append([]ClassDefinition(nil), classes...),
		Regions:  s.Regions(),
		Segments: s.Segments(),
	}
}

// Restore replaces the store contents from a snapshot, re-validating every
// record through the same gates as live input. Invalid records are dropped
// silently; a snapshot written by an older build must not smuggle in
// degenerate data.
func (s *Store) Restore(snap *Snapshot) {
	s.PurgeAll()
	for i := range snap.Regions {
		r := snap.Regions[i]
		if !r.Rect.MeetsMinimum(s.thresholds.MinRegionPercent) {
			continue
		}
		s.regions = append(s.regions, r)
	}
	for i := range snap.Segments {
		seg := snap.Segments[i]
		if seg.End-seg.Start <= s.thresholds.MinSegmentSeconds {
			continue
		}
		s.segments = append(s.segments, seg)
	}
	sort.SliceStable(s.segments, func(i, j int) bool {
		return s.segments[i].Start < s.segments[j].Start
	})
}
