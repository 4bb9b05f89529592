// Package keymap normalizes terminal key events into a closed set of
// canonical tokens. Every screen and the global disguise hotkey agree on
// what a keypress means by matching on Key values instead of raw event
// types, so terminal-specific representations (single-byte Tab vs. a named
// special key, multi-byte wide characters) never leak past this package.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Kind enumerates the canonical key categories.
type Kind int

const (
	// KindUnknown marks any event this package cannot classify. Callers
	// must treat it as a no-op, never as an error.
	KindUnknown Kind = iota
	KindChar
	KindEnter
	KindSpace
	KindEscape
	KindBackspace
	KindTab
	KindShiftTab
	KindFunction
	KindArrow
	KindPage
	KindHomeEnd
	KindInterrupt
)

// Direction distinguishes arrow and page keys.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Edge distinguishes Home from End.
type Edge int

const (
	EdgeHome Edge = iota
	EdgeEnd
)

// Key is one normalized input event. Exactly one raw event maps to exactly
// one Key; the mapping is total.
type Key struct {
	Kind Kind
	Rune rune      // set for KindChar
	Num  int       // set for KindFunction (1-12)
	Dir  Direction // set for KindArrow and KindPage
	Edge Edge      // set for KindHomeEnd
}

// IsHotkey reports whether the key is the global disguise hotkey. Tab and
// Shift+Tab are structurally distinct kinds, never confusable with a
// printable character, so the hotkey always wins over screen input.
func (k Key) IsHotkey() bool {
	return k.Kind == KindTab || k.Kind == KindShiftTab
}

// Normalize converts a Bubble Tea key event into a canonical Key.
func Normalize(msg tea.KeyMsg) Key {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return Key{Kind: KindUnknown}
		}
		// Paste can deliver several runes in one event; the canonical
		// model carries the first. Screens that accept free text read
		// the rune, shortcut screens match on it.
		return Key{Kind: KindChar, Rune: msg.Runes[0]}
	case tea.KeyEnter:
		return Key{Kind: KindEnter}
	case tea.KeySpace:
		return Key{Kind: KindSpace}
	case tea.KeyEsc:
		return Key{Kind: KindEscape}
	case tea.KeyBackspace, tea.KeyDelete:
		return Key{Kind: KindBackspace}
	case tea.KeyTab:
		return Key{Kind: KindTab}
	case tea.KeyShiftTab:
		return Key{Kind: KindShiftTab}
	case tea.KeyCtrlC:
		return Key{Kind: KindInterrupt}
	case tea.KeyUp:
		return Key{Kind: KindArrow, Dir: DirUp}
	case tea.KeyDown:
		return Key{Kind: KindArrow, Dir: DirDown}
	case tea.KeyLeft:
		return Key{Kind: KindArrow, Dir: DirLeft}
	case tea.KeyRight:
		return Key{Kind: KindArrow, Dir: DirRight}
	case tea.KeyPgUp:
		return Key{Kind: KindPage, Dir: DirUp}
	case tea.KeyPgDown:
		return Key{Kind: KindPage, Dir: DirDown}
	case tea.KeyHome:
		return Key{Kind: KindHomeEnd, Edge: EdgeHome}
	case tea.KeyEnd:
		return Key{Kind: KindHomeEnd, Edge: EdgeEnd}
	}
	if n, ok := functionKey(msg.Type); ok {
		return Key{Kind: KindFunction, Num: n}
	}
	return Key{Kind: KindUnknown}
}

func functionKey(t tea.KeyType) (int, bool) {
	switch t {
	case tea.KeyF1:
		return 1, true
	case tea.KeyF2:
		return 2, true
	case tea.KeyF3:
		return 3, true
	case tea.KeyF4:
		return 4, true
	case tea.KeyF5:
		return 5, true
	case tea.KeyF6:
		return 6, true
	case tea.KeyF7:
		return 7, true
	case tea.KeyF8:
		return 8, true
	case tea.KeyF9:
		return 9, true
	case tea.KeyF10:
		return 10, true
	case tea.KeyF11:
		return 11, true
	case tea.KeyF12:
		return 12, true
	default:
		return 0, false
	}
}
