package session

import "github.com/vocadrill/vocadrill/internal/model"

// Snapshot is a disposable copy of session view-state taken before the
// disguise overlay takes over and consumed when it returns. It records the
// identity order of words, never word content. Snapshots are never
// persisted and never shared across sessions.
type Snapshot struct {
	Cursor        int
	RevealMeaning bool
	ReviewMode    bool
	Order         []model.WordID
}

// Capture copies the restorable parts of the state. It is read-only and
// deterministic.
func Capture(s State) Snapshot {
	order := make([]model.WordID, len(s.Order))
	copy(order, s.Order)
	return Snapshot{
		Cursor:        s.Cursor,
		RevealMeaning: s.RevealMeaning,
		ReviewMode:    s.ReviewMode,
		Order:         order,
	}
}

// Restore rebuilds the state from a snapshot against the current catalog.
// IDs that disappeared from the catalog between capture and restore are
// silently dropped, keeping the survivors in their original relative order.
// The rebuilt order replaces the current one only when it is non-empty and
// differs, so a capture with no known order never clobbers an already-valid
// state. The cursor is clamped into range afterwards.
func Restore(s *State, snap Snapshot, catalog map[model.WordID]struct{}) {
	s.Cursor = snap.Cursor
	s.RevealMeaning = snap.RevealMeaning
	s.ReviewMode = snap.ReviewMode

	if len(snap.Order) > 0 {
		restored := make([]model.WordID, 0, len(snap.Order))
		for _, id := range snap.Order {
			if _, ok := catalog[id]; ok {
				restored = append(restored, id)
			}
		}
		if len(restored) > 0 && !sameOrder(restored, s.Order) {
			s.Order = restored
		}
	}

	s.ClampCursor()
}

func sameOrder(a, b []model.WordID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
