package tabular

import (
	"sync"

	"github.com/arthur-debert/outstanding/pkg/logging"
)

// Resolver caches resolved widths per total width for one spec. The
// cache is read-mostly: concurrent renders at the same width share one
// resolution, and a natural-width refresh (a new row batch, a terminal
// resize) takes the exclusive section.
type Resolver struct {
	spec *Spec

	mu      sync.RWMutex
	natural []int
	cache   map[int]*ResolvedWidths
}

// NewResolver builds a resolver for the given spec.
func NewResolver(spec *Spec) *Resolver {
	return &Resolver{
		spec:  spec,
		cache: make(map[int]*ResolvedWidths),
	}
}

// Spec returns the bound spec.
func (r *Resolver) Spec() *Spec {
	return r.spec
}

// Measure scans a row batch and installs its natural widths,
// invalidating all cached resolutions.
func (r *Resolver) Measure(rows [][]string) {
	natural := r.spec.MeasureNatural(rows)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.natural = natural
	r.cache = make(map[int]*ResolvedWidths)
}

// Resolve returns the resolved widths for the given total width,
// computing and caching them on first use.
func (r *Resolver) Resolve(total int) (*ResolvedWidths, error) {
	r.mu.RLock()
	if resolved, ok := r.cache[total]; ok {
		r.mu.RUnlock()
		return resolved, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if resolved, ok := r.cache[total]; ok {
		return resolved, nil
	}
	resolved, err := r.spec.resolve(total, r.natural)
	if err != nil {
		return nil, err
	}
	r.cache[total] = resolved
	logger := logging.GetLogger("tabular.resolver")
	logger.Trace().
		Uint64("spec", r.spec.ID()).
		Int("total", total).
		Msg("Resolved widths cached")
	return resolved, nil
}
