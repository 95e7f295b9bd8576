package weekly

import "sync"

// Gate tracks which ISO weeks have already had an analysis proposal emitted.
// Keys are opaque; callers compose them from the user and the week's Monday.
// State lives for the process lifetime only and once a key is set it stays
// set — there is no reset operation.
type Gate struct {
	mu       sync.Mutex
	proposed map[string]bool
}

func NewGate() *Gate {
	return &Gate{proposed: make(map[string]bool)}
}

// Proposed reports whether a proposal was already emitted for key.
func (g *Gate) Proposed(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.proposed[key]
}

// MarkProposed records that a proposal went out for key. Idempotent.
func (g *Gate) MarkProposed(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.proposed[key] = true
}

// TryPropose atomically claims the proposal for key. It returns true exactly
// once per key; every later call returns false.
func (g *Gate) TryPropose(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.proposed[key] {
		return false
	}
	g.proposed[key] = true
	return true
}
