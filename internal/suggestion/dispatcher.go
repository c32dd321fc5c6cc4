package suggestion

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tphakala/medialabel-go/internal/logging"
)

// defaultTimeout bounds a single provider call when the caller does not
// configure one.
const defaultTimeout = 30 * time.Second

// Dispatcher issues fire-and-forget suggestion requests. Each request
// captures the merger's generation token at dispatch time; by the time the
// provider responds the user may have loaded a different artifact, and the
// merger rejects the stale generation rather than polluting the new store.
type Dispatcher struct {
	provider Provider
	merger   Merger
	timeout  time.Duration
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher feeding responses from provider into
// merger. A non-positive timeout selects the default.
func NewDispatcher(provider Provider, merger Merger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		provider: provider,
		merger:   merger,
		timeout:  timeout,
		logger:   logging.ForService("suggestion-dispatcher"),
	}
}

// Dispatch requests suggestions in the background and returns immediately.
// Provider errors are logged and skipped; the engine never fails because a
// collaborator did.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) {
	generation := d.merger.Generation()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		reqCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		candidates, err := d.provider.Suggest(reqCtx, req)
		if err != nil {
			if d.logger != nil {
				d.logger.Warn("suggestion request failed",
					"hint", req.Hint,
					"generation", generation,
					"error", err)
			}
			return
		}
		if len(candidates) == 0 {
			return
		}

		d.merger.MergeSuggestions(generation, candidates)
	}()
}

// Wait blocks until all in-flight requests have completed. Used on
// shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
