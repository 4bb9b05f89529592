package tui

import "time"

// DefaultDebounceWindow guards against a Tab autorepeat or a double press
// re-triggering the disguise right after dismissal.
const DefaultDebounceWindow = 120 * time.Millisecond

// Gate drops every keystroke arriving within a fixed window after a
// disguise dismissal. Blocking all input, not just the hotkey, is what
// keeps a buffered Tab repeat from leaking into the restored screen.
type Gate struct {
	window      time.Duration
	lastDismiss time.Time
	armed       bool
}

// NewGate builds a gate with the given window; non-positive falls back to
// the default.
func NewGate(window time.Duration) *Gate {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Gate{window: window}
}

// NoteDismiss records the dismissal instant. Called exactly once per
// dismissal, before any subsequent key is examined.
func (g *Gate) NoteDismiss(t time.Time) {
	g.lastDismiss = t
	g.armed = true
}

// Blocked reports whether a key arriving at t falls inside the window.
func (g *Gate) Blocked(t time.Time) bool {
	if !g.armed {
		return false
	}
	return t.Sub(g.lastDismiss) < g.window
}
