package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/model"
	"github.com/vocadrill/vocadrill/internal/session"
	"github.com/vocadrill/vocadrill/internal/store"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func testCatalog() []model.Word {
	return []model.Word{
		{ID: "apple", Text: "apple", Meaning: "苹果", Phonetic: "/ˈæpəl/"},
		{ID: "banana", Text: "banana", Meaning: "香蕉"},
		{ID: "cherry", Text: "cherry", Meaning: "樱桃"},
	}
}

func newTestController(t *testing.T) (*Controller, *fakeClock) {
	t.Helper()
	c := newController(testCatalog(), nil, model.Config{DisguiseStyle: "ls"}, nil, logging.Discard())
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c.now = clk.now
	c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return c, clk
}

func pressRune(c *Controller, r rune) tea.Cmd {
	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func press(c *Controller, t tea.KeyType) tea.Cmd {
	_, cmd := c.Update(tea.KeyMsg{Type: t})
	return cmd
}

func TestHotkeyInterceptedOnEveryScreen(t *testing.T) {
	screens := []session.Screen{
		session.ScreenMenu,
		session.ScreenLearning,
		session.ScreenTyping,
		session.ScreenStats,
		session.ScreenHelp,
	}
	for _, screen := range screens {
		c, clk := newTestController(t)
		pressRune(c, '1')
		c.sess.Active = screen

		press(c, tea.KeyTab)
		if !c.overlay.Active() {
			t.Fatalf("hotkey ignored on screen %v", screen)
		}
		if c.snapshot == nil {
			t.Fatalf("no snapshot captured on screen %v", screen)
		}

		press(c, tea.KeyShiftTab)
		if c.overlay.Active() {
			t.Fatalf("dismiss ignored on screen %v", screen)
		}
		if c.sess.Active != screen {
			t.Fatalf("screen %v not restored, got %v", screen, c.sess.Active)
		}
		clk.advance(time.Second)
	}
}

func TestRestorePreservesCursorAndReveal(t *testing.T) {
	c, clk := newTestController(t)
	pressRune(c, '1')
	pressRune(c, 's') // cursor 1
	pressRune(c, 'p') // reveal

	wantOrder := append([]model.WordID(nil), c.sess.Order...)

	press(c, tea.KeyTab)
	// Mutate the live state the way a buggy overlay might; restore must
	// win regardless.
	c.sess.Cursor = 0
	c.sess.RevealMeaning = false

	press(c, tea.KeyTab)
	clk.advance(time.Second)

	if c.sess.Cursor != 1 || !c.sess.RevealMeaning {
		t.Fatalf("restore lost state: cursor=%d reveal=%v", c.sess.Cursor, c.sess.RevealMeaning)
	}
	for i, id := range wantOrder {
		if c.sess.Order[i] != id {
			t.Fatalf("order changed at %d: %v", i, c.sess.Order)
		}
	}
	if c.snapshot != nil {
		t.Fatalf("snapshot not discarded after restore")
	}
}

func TestDebounceBlocksRepeatHotkey(t *testing.T) {
	c, clk := newTestController(t)
	pressRune(c, '1')

	press(c, tea.KeyTab)
	press(c, tea.KeyTab) // dismiss

	clk.advance(50 * time.Millisecond)
	press(c, tea.KeyTab)
	if c.overlay.Active() {
		t.Fatalf("hotkey inside the debounce window re-activated the overlay")
	}

	clk.advance(200 * time.Millisecond)
	press(c, tea.KeyTab)
	if !c.overlay.Active() {
		t.Fatalf("hotkey after the window should activate the overlay")
	}
}

func TestNoInputLeakageAfterDismiss(t *testing.T) {
	c, clk := newTestController(t)
	pressRune(c, '1')
	pressRune(c, 't') // typing drill
	if c.sess.Active != session.ScreenTyping {
		t.Fatalf("expected typing screen, got %v", c.sess.Active)
	}

	press(c, tea.KeyTab)
	press(c, tea.KeyTab) // dismiss

	clk.advance(10 * time.Millisecond)
	pressRune(c, 'z')
	if got := c.input.Value(); got != "" {
		t.Fatalf("buffered key leaked into the input: %q", got)
	}

	clk.advance(200 * time.Millisecond)
	pressRune(c, 'z')
	if got := c.input.Value(); got != "z" {
		t.Fatalf("key after the window should reach the input, got %q", got)
	}
}

func TestUnknownKeyIsNoOp(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	before := c.sess

	press(c, tea.KeyCtrlA)
	if c.sess.Cursor != before.Cursor || c.sess.Active != before.Active {
		t.Fatalf("unmapped key changed state")
	}
}

func TestInterruptQuitsEvenWhileDisguised(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	press(c, tea.KeyTab)

	cmd := press(c, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatalf("interrupt produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("interrupt should quit")
	}
}

func TestDisguiseQuitRequiresAuthorization(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	press(c, tea.KeyTab)

	if cmd := pressRune(c, 'q'); cmd != nil {
		t.Fatalf("unauthorized quit key should be swallowed")
	}
	if !c.overlay.Active() {
		t.Fatalf("overlay dismissed by a non-hotkey key")
	}

	c2 := newController(testCatalog(), nil, model.Config{DisguiseStyle: "ls", DisguiseQuit: true}, nil, logging.Discard())
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c2.now = clk.now
	pressRune(c2, '1')
	press(c2, tea.KeyTab)
	cmd := pressRune(c2, 'q')
	if cmd == nil {
		t.Fatalf("authorized quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("authorized quit should terminate the program")
	}
}

func TestMenuStartsLearningAndReview(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	if c.sess.Active != session.ScreenLearning || len(c.sess.Order) != 3 {
		t.Fatalf("learn all: screen=%v order=%v", c.sess.Active, c.sess.Order)
	}

	// Nothing starred or missed yet: review stays on the menu.
	c2, _ := newTestController(t)
	pressRune(c2, '2')
	if c2.sess.Active != session.ScreenMenu || c2.message == "" {
		t.Fatalf("empty review deck should stay on menu with a notice")
	}

	c3, _ := newTestController(t)
	c3.progress["banana"] = model.Progress{Starred: true}
	pressRune(c3, '2')
	if c3.sess.Active != session.ScreenLearning {
		t.Fatalf("review with starred words should open learning")
	}
	if len(c3.sess.Order) != 1 || c3.sess.Order[0] != "banana" || !c3.sess.ReviewMode {
		t.Fatalf("review deck wrong: %v review=%v", c3.sess.Order, c3.sess.ReviewMode)
	}
}

func TestLearningMarksAndAdvances(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')

	press(c, tea.KeySpace)
	if c.progress["apple"].Known != 1 || c.progress["apple"].Seen != 1 {
		t.Fatalf("space should mark known: %+v", c.progress["apple"])
	}
	if c.sess.Cursor != 1 {
		t.Fatalf("cursor should advance, got %d", c.sess.Cursor)
	}

	pressRune(c, 'x')
	if c.progress["banana"].Unknown != 1 {
		t.Fatalf("x should mark unknown: %+v", c.progress["banana"])
	}

	pressRune(c, ',')
	if !c.progress["cherry"].Starred {
		t.Fatalf("comma should star the current word")
	}
	pressRune(c, ',')
	if c.progress["cherry"].Starred {
		t.Fatalf("comma should unstar on repeat")
	}
}

func TestLearningWrapsWithNotice(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	pressRune(c, 's')
	pressRune(c, 's')
	pressRune(c, 's') // past the last word
	if c.sess.Cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", c.sess.Cursor)
	}
	if c.message == "" {
		t.Fatalf("wrap should post a notice")
	}
	// Any key clears the notice without acting on the screen.
	pressRune(c, 's')
	if c.message != "" || c.sess.Cursor != 0 {
		t.Fatalf("notice key should only clear the modal")
	}
}

func TestTypingGrades(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	pressRune(c, 't')

	c.input.SetValue("aple")
	press(c, tea.KeyEnter)
	if c.progress["apple"].Unknown != 0 {
		t.Fatalf("near miss must not count as unknown")
	}
	if c.feedback == "" || c.feedbackOK {
		t.Fatalf("near miss should warn, got %q ok=%v", c.feedback, c.feedbackOK)
	}

	c.input.SetValue("Apple")
	press(c, tea.KeyEnter)
	if c.progress["apple"].Known != 1 {
		t.Fatalf("case-insensitive match should count as known")
	}
	if c.sess.Cursor != 1 {
		t.Fatalf("correct answer should advance, got cursor %d", c.sess.Cursor)
	}
	if c.input.Value() != "" {
		t.Fatalf("input should reset after a correct answer")
	}

	c.input.SetValue("zzzzzz")
	press(c, tea.KeyEnter)
	if c.progress["banana"].Unknown != 1 {
		t.Fatalf("wrong answer should count as unknown")
	}

	press(c, tea.KeyEsc)
	if c.sess.Active != session.ScreenLearning {
		t.Fatalf("esc should return to the previous screen, got %v", c.sess.Active)
	}
}

func TestMarksPersistImmediately(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "vocadrill.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = st.Close() }()

	c := newController(testCatalog(), nil, model.Config{DisguiseStyle: "ls"}, st, logging.Discard())
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c.now = clk.now

	pressRune(c, '1')
	press(c, tea.KeySpace) // mark known
	pressRune(c, ',')      // star
	pressRune(c, '.')      // back to the menu without quitting

	got, err := st.LoadProgress(context.Background())
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if got["apple"].Known != 1 || got["apple"].Seen != 1 {
		t.Fatalf("mark not persisted before quit: %+v", got["apple"])
	}
	if !got["banana"].Starred {
		t.Fatalf("star not persisted before quit: %+v", got["banana"])
	}
}

func TestTypingStartsWithHintShown(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	pressRune(c, 't')
	if !c.showHint {
		t.Fatalf("typing drill should open with the hint visible")
	}
	press(c, tea.KeyF2)
	if c.showHint {
		t.Fatalf("F2 should hide the hint")
	}
	press(c, tea.KeyDown)
	if c.showHint {
		t.Fatalf("moving words must not reset the hint toggle")
	}
}

func TestShufflePostsNotice(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, '1')
	pressRune(c, 'r')
	if c.message == "" {
		t.Fatalf("shuffle should post a notice")
	}
}

func TestQuitConfirm(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, 'q')
	if !c.confirmQuit {
		t.Fatalf("q should ask for confirmation")
	}
	pressRune(c, 'n')
	if c.confirmQuit {
		t.Fatalf("any other key should cancel the confirmation")
	}

	pressRune(c, 'q')
	cmd := pressRune(c, 'y')
	if cmd == nil {
		t.Fatalf("confirmed quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("confirmed quit should terminate the program")
	}
}

func TestHelpOpensAndCloses(t *testing.T) {
	c, _ := newTestController(t)
	pressRune(c, 'h')
	if c.sess.Active != session.ScreenHelp {
		t.Fatalf("h should open help")
	}
	press(c, tea.KeyEsc)
	if c.sess.Active != session.ScreenMenu {
		t.Fatalf("esc should close help back to the menu")
	}
}
