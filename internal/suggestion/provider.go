package suggestion

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tphakala/medialabel-go/internal/geometry"
)

// Provider is the AI suggestion collaborator boundary. Implementations
// asynchronously produce candidate annotations for a context string and
// domain hint, or fail; failure simply skips the merge and never corrupts
// engine state.
type Provider interface {
	Suggest(ctx context.Context, req Request) ([]Candidate, error)
}

// SimulatedProvider produces randomly generated candidates in place of
// real inference. A fixed seed yields a deterministic sequence, which the
// tests rely on; seed 0 falls back to wall-clock seeding.
type SimulatedProvider struct {
	mu     sync.Mutex
	rng    *rand.Rand
	labels []string
	max    int
}

// NewSimulatedProvider creates a simulated provider drawing labels from
// the given list and returning at most maxCandidates per request.
func NewSimulatedProvider(seed int64, labels []string, maxCandidates int) *SimulatedProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxCandidates <= 0 {
		maxCandidates = 8
	}
	return &SimulatedProvider{
		rng:    rand.New(rand.NewSource(seed)),
		labels: append([]string(nil), labels...),
		max:    maxCandidates,
	}
}

// Suggest generates candidates matching the domain hint: spatial regions
// for image and video, fractional segments for video and audio.
func (p *SimulatedProvider) Suggest(ctx context.Context, req Request) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(p.labels) == 0 {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	count := 1 + p.rng.Intn(p.max)
	candidates := make([]Candidate, 0, count)
	for range count {
		label := p.labels[p.rng.Intn(len(p.labels))]
		switch req.Hint {
		case "image":
			candidates = append(candidates, p.randomRegion(label))
		case "audio":
			candidates = append(candidates, p.randomSegment(label))
		case "video":
			if p.rng.Intn(2) == 0 {
				candidates = append(candidates, p.randomRegion(label))
			} else {
				candidates = append(candidates, p.randomSegment(label))
			}
		default:
			return nil, fmt.Errorf("unknown domain hint %q", req.Hint)
		}
	}
	return candidates, nil
}

func (p *SimulatedProvider) randomRegion(label string) Candidate {
	x := p.rng.Float64() * 80
	y := p.rng.Float64() * 80
	return Candidate{
		Kind:  KindRegion,
		Label: label,
		Rect: geometry.Rect{
			X:      x,
			Y:      y,
			Width:  1 + p.rng.Float64()*(95-x),
			Height: 1 + p.rng.Float64()*(95-y),
		},
	}
}

func (p *SimulatedProvider) randomSegment(label string) Candidate {
	start := p.rng.Float64() * 0.9
	return Candidate{
		Kind:       KindSegment,
		Label:      label,
		Start:      start,
		End:        start + 0.01 + p.rng.Float64()*(1-start-0.01),
		Fractional: true,
	}
}

// CachedProvider wraps a Provider with a TTL response cache, so repeated
// requests for the same artifact context do not re-run inference.
type CachedProvider struct {
	inner Provider
	cache *gocache.Cache
}

// NewCachedProvider wraps inner with a response cache using the given TTL.
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Suggest returns the cached response for an identical request when one is
// still fresh, otherwise delegates to the wrapped provider. Failures are
// not cached.
func (p *CachedProvider) Suggest(ctx context.Context, req Request) ([]Candidate, error) {
	key := cacheKey(req)
	if cached, found := p.cache.Get(key); found {
		return cached.([]Candidate), nil
	}

	candidates, err := p.inner.Suggest(ctx, req)
	if err != nil {
		return nil, err
	}
	p.cache.Set(key, candidates, gocache.DefaultExpiration)
	return candidates, nil
}

func cacheKey(req Request) string {
	return req.Hint + "\x00" + req.Context
}
