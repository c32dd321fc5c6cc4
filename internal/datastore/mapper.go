// mapper.go converts between the runtime snapshot model and the database
// records.
package datastore

import (
	"sort"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/geometry"
)

func artifactFromSnapshot(snap *annotation.Snapshot) Artifact {
	a := Artifact{
		Name:     snap.Artifact,
		Duration: snap.Duration,
	}

	for i := range snap.Classes {
		c := snap.Classes[i]
		a.Classes = append(a.Classes, ClassRecord{
			UID:   c.ID,
			Name:  c.Name,
			Color: c.Color,
		})
	}

	for i := range snap.Regions {
		r := snap.Regions[i]
		rec := RegionRecord{
			UID:      r.ID,
			ClassUID: r.ClassID,
			Label:    r.Label,
			X:        r.Rect.X,
			Y:        r.Rect.Y,
			Width:    r.Rect.Width,
			Height:   r.Rect.Height,
		}
		if r.Timestamp != nil {
			ts := *r.Timestamp
			rec.Timestamp = &ts
		}
		a.Regions = append(a.Regions, rec)
	}

	for i := range snap.Segments {
		s := snap.Segments[i]
		a.Segments = append(a.Segments, SegmentRecord{
			UID:      s.ID,
			ClassUID: s.ClassID,
			Label:    s.Label,
			Start:    s.Start,
			End:      s.End,
		})
	}

	return a
}

func snapshotFromArtifact(a *Artifact) *annotation.Snapshot {
	snap := &annotation.Snapshot{
		Artifact: a.Name,
		Duration: a.Duration,
	}

	for i := range a.Classes {
		c := a.Classes[i]
		snap.Classes = append(snap.Classes, annotation.ClassDefinition{
			ID:    c.UID,
			Name:  c.Name,
			Color: c.Color,
		})
	}

	for i := range a.Regions {
		r := a.Regions[i]
		region := annotation.RegionAnnotation{
			ID:      r.UID,
			ClassID: r.ClassUID,
			Label:   r.Label,
			Rect: geometry.Rect{
				X:      r.X,
				Y:      r.Y,
				Width:  r.Width,
				Height: r.Height,
			},
		}
		if r.Timestamp != nil {
			ts := *r.Timestamp
			region.Timestamp = &ts
		}
		snap.Regions = append(snap.Regions, region)
	}

	for i := range a.Segments {
		s := a.Segments[i]
		snap.Segments = append(snap.Segments, annotation.TemporalSegment{
			ID:      s.UID,
			ClassID: s.ClassUID,
			Label:   s.Label,
			Start:   s.Start,
			End:     s.End,
		})
	}
	// The store keeps segments ordered by start; restore that order here
	// rather than relying on insertion order from the database.
	sort.SliceStable(snap.Segments, func(i, j int) bool {
		return snap.Segments[i].Start < snap.Segments[j].Start
	})

	return snap
}
