// Package session holds the mutable view-state of a learning session and
// the snapshot protocol used by the disguise hotkey.
package session

import (
	"math/rand"

	"github.com/vocadrill/vocadrill/internal/model"
)

// Screen identifies which top-level screen is active.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenLearning
	ScreenTyping
	ScreenStats
	ScreenHelp
)

// String returns the screen name for logging.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenLearning:
		return "learning"
	case ScreenTyping:
		return "typing"
	case ScreenStats:
		return "stats"
	case ScreenHelp:
		return "help"
	default:
		return "unknown"
	}
}

// State is the session view-state. It is owned exclusively by the screen
// controller; nothing else mutates it.
//
// Invariants: Cursor is a valid index into Order, or 0 when Order is empty;
// Order contains no duplicate IDs.
type State struct {
	Order         []model.WordID
	Cursor        int
	RevealMeaning bool
	ReviewMode    bool
	Active        Screen
}

// NewState builds a session over the given word order.
func NewState(order []model.WordID) State {
	return State{Order: dedupe(order)}
}

// Current returns the word ID under the cursor, or "" when the order is
// empty.
func (s *State) Current() model.WordID {
	if len(s.Order) == 0 {
		return ""
	}
	return s.Order[s.Cursor]
}

// Advance moves the cursor forward and hides the meaning. It reports false
// when the cursor was already on the last word; the caller decides whether
// to wrap.
func (s *State) Advance() bool {
	if s.Cursor >= len(s.Order)-1 {
		return false
	}
	s.Cursor++
	s.RevealMeaning = false
	return true
}

// Retreat moves the cursor backward and hides the meaning.
func (s *State) Retreat() {
	if s.Cursor > 0 {
		s.Cursor--
		s.RevealMeaning = false
	}
}

// Rewind moves the cursor back to the first word.
func (s *State) Rewind() {
	s.Cursor = 0
	s.RevealMeaning = false
}

// Shuffle randomizes the word order, keeping the cursor on the word it was
// on before the shuffle.
func (s *State) Shuffle(rnd *rand.Rand) {
	if len(s.Order) <= 1 {
		return
	}
	current := s.Current()
	rnd.Shuffle(len(s.Order), func(i, j int) {
		s.Order[i], s.Order[j] = s.Order[j], s.Order[i]
	})
	s.Cursor = 0
	for i, id := range s.Order {
		if id == current {
			s.Cursor = i
			break
		}
	}
	s.RevealMeaning = false
}

// ClampCursor forces the cursor back into range. Nothing downstream may
// ever observe an out-of-range cursor.
func (s *State) ClampCursor() {
	if len(s.Order) == 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Order) {
		s.Cursor = len(s.Order) - 1
	}
}

func dedupe(order []model.WordID) []model.WordID {
	seen := make(map[model.WordID]struct{}, len(order))
	out := make([]model.WordID, 0, len(order))
	for _, id := range order {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
