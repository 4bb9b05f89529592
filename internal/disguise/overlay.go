// Package disguise renders a fake terminal session over the learning
// screens. It is a rendering and input-polling unit only: it never sees
// session state or snapshots and returns control unconditionally on the
// dismiss key, leaving the restore to the screen controller.
package disguise

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/keymap"
)

// Style selects which fake session to render.
type Style int

const (
	// StyleTail mimics a scrolling `tail -f` on an application log.
	StyleTail Style = iota
	// StyleListing mimics a static `ls -la` with a shell prompt.
	StyleListing
)

// ParseStyle maps a config string to a Style, defaulting to the tail view.
func ParseStyle(s string) Style {
	if s == "ls" || s == "listing" {
		return StyleListing
	}
	return StyleTail
}

// Action is the overlay's answer to one key event.
type Action int

const (
	// ActionNone keeps the overlay up.
	ActionNone Action = iota
	// ActionDismiss hands control back to the previous screen.
	ActionDismiss
	// ActionQuit terminates the whole program. Only returned when the
	// authorized quit flag is set; a deliberate short-circuit, not an
	// error path.
	ActionQuit
)

// TickMsg drives the animated variant. Gen ties a tick to one activation
// so a tick scheduled before dismissal cannot mutate a later activation.
type TickMsg struct {
	Gen int
	At  time.Time
}

// Overlay owns the transient display state of one activation: a rolling
// buffer of synthetic log lines for the tail variant, or a fully formed
// listing for the static one. The state is rebuilt on every activation and
// discarded on dismissal.
type Overlay struct {
	style       Style
	quitEnabled bool
	interval    time.Duration
	rnd         *rand.Rand

	width  int
	height int

	active  bool
	gen     int
	lines   []logLine
	listing []string
}

// DefaultTickInterval is the animation cadence of the tail variant.
const DefaultTickInterval = 500 * time.Millisecond

// New constructs an overlay. A non-positive interval falls back to the
// default cadence.
func New(style Style, quitEnabled bool, interval time.Duration) *Overlay {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Overlay{
		style:       style,
		quitEnabled: quitEnabled,
		interval:    interval,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSize records the terminal dimensions. A resize while active rebuilds
// the static listing and re-trims the tail buffer on the next render; a
// transient mismatch only clips lines, it never fails.
func (o *Overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
	if o.active {
		o.trimLines()
		if o.style == StyleListing {
			o.listing = o.buildListing(time.Now())
		}
	}
}

// Active reports whether the overlay currently owns the display.
func (o *Overlay) Active() bool {
	return o.active
}

// Activate takes over the display and returns the first animation tick for
// the tail variant. The static variant renders once and waits for input,
// so it schedules nothing.
func (o *Overlay) Activate(now time.Time) tea.Cmd {
	o.active = true
	o.gen++
	switch o.style {
	case StyleListing:
		o.lines = nil
		o.listing = o.buildListing(now)
		return nil
	default:
		o.listing = nil
		o.lines = o.initialTailLines(now)
		return o.tickCmd()
	}
}

// Deactivate drops the transient display state.
func (o *Overlay) Deactivate() {
	o.active = false
	o.lines = nil
	o.listing = nil
}

// HandleKey reacts to one canonical key. Within a tick, rendering has
// already been committed before the key is observed, so a dismiss never
// affects the frame it arrived in.
func (o *Overlay) HandleKey(k keymap.Key) Action {
	if k.IsHotkey() {
		return ActionDismiss
	}
	if o.quitEnabled && k.Kind == keymap.KindChar && (k.Rune == 'q' || k.Rune == 'Q') {
		return ActionQuit
	}
	return ActionNone
}

// HandleTick advances the tail animation by one cooperative step: with
// fixed probability a new line stamped at the tick's wall-clock time is
// appended and the oldest line evicted past the visible bound. Stale ticks
// from a previous activation are discarded.
func (o *Overlay) HandleTick(msg TickMsg) tea.Cmd {
	if !o.active || msg.Gen != o.gen || o.style != StyleTail {
		return nil
	}
	if o.rnd.Float64() < newLineProbability {
		o.lines = append(o.lines, o.newLogLine(msg.At))
		o.trimLines()
	}
	return o.tickCmd()
}

func (o *Overlay) tickCmd() tea.Cmd {
	gen := o.gen
	return tea.Tick(o.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// View renders the fake session for the current frame.
func (o *Overlay) View() string {
	if o.style == StyleListing {
		return o.viewListing()
	}
	return o.viewTail()
}

// visibleLines is the tail buffer bound: everything below the title line.
func (o *Overlay) visibleLines() int {
	n := o.height - 1
	if n < minVisibleLines {
		n = minVisibleLines
	}
	return n
}

func (o *Overlay) trimLines() {
	if max := o.visibleLines(); len(o.lines) > max {
		o.lines = o.lines[len(o.lines)-max:]
	}
}
