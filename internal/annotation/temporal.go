package annotation

import "math"

// ActiveSet is the result of a visibility query: the annotations considered
// active at one instant of the media clock.
type ActiveSet struct {
	Regions  []RegionAnnotation
	Segments []TemporalSegment
}

// ActiveAt computes the annotations active at currentTime.
//
// A segment is active iff start <= t <= end, inclusive on both ends: an
// instantaneous pause exactly at a boundary still shows the segment. A
// timestamped region is active iff |timestamp - t| < epsilon; scrubbing is
// continuous, so frame-exact equality would almost never hold. Regions
// without a timestamp (static media) are always active.
//
// The function is pure and cheap enough to run on every clock tick: it
// recomputes over the full lists rather than diffing prior results. The
// lists top out at a few hundred records per artifact, so no index
// structure is warranted.
func ActiveAt(currentTime float64, regions []RegionAnnotation, segments []TemporalSegment, epsilon float64) ActiveSet {
	var active ActiveSet

	for i := range regions {
		r := regions[i]
		if r.Timestamp == nil || math.Abs(*r.Timestamp-currentTime) < epsilon {
			active.Regions = append(active.Regions, r)
		}
	}

	for i := range segments {
		seg := segments[i]
		if seg.Start <= currentTime && currentTime <= seg.End {
			active.Segments = append(active.Segments, seg)
		}
	}

	return active
}
