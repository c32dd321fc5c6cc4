// Package suggestion implements the AI suggestion collaborator boundary:
// candidate annotations produced outside the engine, a provider interface
// with a simulated implementation, and an asynchronous dispatcher that
// guards merges with the session generation token.
package suggestion

import "github.com/tphakala/medialabel-go/internal/geometry"

// CandidateKind distinguishes region candidates from segment candidates.
type CandidateKind string

const (
	KindRegion  CandidateKind = "region"
	KindSegment CandidateKind = "segment"
)

// Candidate is one externally produced annotation proposal. Candidates are
// best-effort input: each one passes through the same validity gates as a
// manually drawn annotation, and invalid ones are dropped silently.
type Candidate struct {
	Kind    CandidateKind
	ClassID string
	Label   string

	// Region payload, percent space. Only meaningful for KindRegion.
	Rect geometry.Rect

	// Segment payload in seconds, or fractions of the artifact duration
	// when Fractional is set (providers that never see the clock return
	// 0-1 positions). Only meaningful for KindSegment.
	Start      float64
	End        float64
	Fractional bool
}

// Request describes one suggestion round: a free-form context string (file
// name, scene description) plus a domain hint such as "video" or "audio".
type Request struct {
	Context  string
	Hint     string
	Duration float64 // artifact duration in seconds, 0 when unknown
}

// Merger is the session-side sink for suggestion responses. Merge calls
// tagged with a stale generation must be discarded by the implementation.
type Merger interface {
	Generation() uint64
	MergeSuggestions(generation uint64, candidates []Candidate) int
}
