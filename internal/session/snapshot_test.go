package session

import (
	"math/rand"
	"testing"

	"github.com/vocadrill/vocadrill/internal/model"
)

func catalogOf(ids ...model.WordID) map[model.WordID]struct{} {
	c := make(map[model.WordID]struct{}, len(ids))
	for _, id := range ids {
		c[id] = struct{}{}
	}
	return c
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewState([]model.WordID{"apple", "banana", "cherry"})
	s.Cursor = 1
	s.RevealMeaning = true
	s.ReviewMode = true

	snap := Capture(s)

	// Mutate the live state the way the overlay never should be able to
	// observe it.
	s.Cursor = 2
	s.RevealMeaning = false
	s.ReviewMode = false
	s.Order = []model.WordID{"cherry", "apple", "banana"}

	Restore(&s, snap, catalogOf("apple", "banana", "cherry"))

	if s.Cursor != 1 || !s.RevealMeaning || !s.ReviewMode {
		t.Fatalf("flags not restored: %+v", s)
	}
	want := []model.WordID{"apple", "banana", "cherry"}
	for i, id := range want {
		if s.Order[i] != id {
			t.Fatalf("order not restored: %v", s.Order)
		}
	}
}

func TestRestoreDropsMissingWords(t *testing.T) {
	s := NewState([]model.WordID{"apple", "banana", "cherry"})
	s.Cursor = 1
	s.RevealMeaning = true

	snap := Capture(s)
	// banana was deleted from the catalog while the overlay was up.
	Restore(&s, snap, catalogOf("apple", "cherry"))

	if len(s.Order) != 2 || s.Order[0] != "apple" || s.Order[1] != "cherry" {
		t.Fatalf("expected surviving words in original order, got %v", s.Order)
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Order) {
		t.Fatalf("cursor out of range after restore: %d", s.Cursor)
	}
	if !s.RevealMeaning {
		t.Fatalf("reveal flag lost on partial restore")
	}
}

func TestRestoreEmptyCatalogClampsToZero(t *testing.T) {
	s := NewState([]model.WordID{"apple", "banana"})
	s.Cursor = 1
	snap := Capture(s)

	Restore(&s, snap, catalogOf())

	// Nothing survived; the existing order stays and the cursor stays in
	// range.
	if len(s.Order) != 2 {
		t.Fatalf("existing order clobbered: %v", s.Order)
	}
	if s.Cursor != 1 {
		t.Fatalf("cursor should remain valid, got %d", s.Cursor)
	}
}

func TestRestoreEmptySnapshotKeepsOrder(t *testing.T) {
	s := NewState(nil)
	snap := Capture(s)

	s.Order = []model.WordID{"apple"}
	s.Cursor = 0
	Restore(&s, snap, catalogOf("apple"))

	if len(s.Order) != 1 || s.Order[0] != "apple" {
		t.Fatalf("empty snapshot must not clobber a valid order: %v", s.Order)
	}
}

func TestRestoreCursorClampedWhenOrderShrinks(t *testing.T) {
	s := NewState([]model.WordID{"a", "b", "c", "d"})
	s.Cursor = 3
	snap := Capture(s)

	Restore(&s, snap, catalogOf("a"))

	if len(s.Order) != 1 || s.Cursor != 0 {
		t.Fatalf("expected single word with cursor 0, got order=%v cursor=%d", s.Order, s.Cursor)
	}
}

func TestNewStateDedupes(t *testing.T) {
	s := NewState([]model.WordID{"a", "b", "a", "c", "b"})
	if len(s.Order) != 3 {
		t.Fatalf("expected 3 unique ids, got %v", s.Order)
	}
}

func TestAdvanceRetreat(t *testing.T) {
	s := NewState([]model.WordID{"a", "b"})
	s.RevealMeaning = true
	if !s.Advance() {
		t.Fatalf("advance from 0 should succeed")
	}
	if s.Cursor != 1 || s.RevealMeaning {
		t.Fatalf("advance should move cursor and hide meaning: %+v", s)
	}
	if s.Advance() {
		t.Fatalf("advance past end should report false")
	}
	s.Retreat()
	if s.Cursor != 0 {
		t.Fatalf("retreat should move back, got %d", s.Cursor)
	}
	s.Retreat()
	if s.Cursor != 0 {
		t.Fatalf("retreat at start should stay, got %d", s.Cursor)
	}
}

func TestShuffleKeepsCurrentWord(t *testing.T) {
	s := NewState([]model.WordID{"a", "b", "c", "d", "e"})
	s.Cursor = 2
	current := s.Current()
	s.Shuffle(rand.New(rand.NewSource(42)))
	if s.Current() != current {
		t.Fatalf("cursor should follow the current word, got %s", s.Current())
	}
	if len(s.Order) != 5 {
		t.Fatalf("shuffle must keep all words, got %v", s.Order)
	}
}

func TestShuffleSingleWordNoop(t *testing.T) {
	s := NewState([]model.WordID{"a"})
	s.Shuffle(rand.New(rand.NewSource(1)))
	if s.Cursor != 0 || len(s.Order) != 1 {
		t.Fatalf("unexpected state after shuffle: %+v", s)
	}
}
