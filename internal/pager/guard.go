package pager

// Guard suppresses event processing while a silent reposition is in
// flight. It engages the instant an edge event is accepted and settles
// only when the one-shot frame callback confirms the surface has
// physically completed the jump. Every event observed in between must be
// ignored entirely; that is the invariant preventing double counting.
type Guard struct {
	active bool
}

// Engage activates the guard. It reports false if the guard was already
// active, in which case the caller must not issue a second reposition.
func (g *Guard) Engage() bool {
	if g.active {
		return false
	}
	g.active = true
	return true
}

// Settle deactivates the guard. Safe to call when already idle.
func (g *Guard) Settle() {
	g.active = false
}

// Active reports whether a reposition is in flight.
func (g *Guard) Active() bool {
	return g.active
}
