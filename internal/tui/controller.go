// Package tui drives the learning screens and the global disguise hotkey.
package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vocadrill/vocadrill/internal/disguise"
	"github.com/vocadrill/vocadrill/internal/explain"
	"github.com/vocadrill/vocadrill/internal/keymap"
	"github.com/vocadrill/vocadrill/internal/model"
	"github.com/vocadrill/vocadrill/internal/session"
	"github.com/vocadrill/vocadrill/internal/store"
	"github.com/vocadrill/vocadrill/internal/theme"
)

// explainMsg carries the result of a background explanation fetch.
type explainMsg struct {
	word string
	text string
	err  error
}

// Controller is the root Bubble Tea model. It owns the session state, the
// snapshot taken at hotkey press, and routes every key through the same
// pipeline: debounce gate, overlay, hotkey, then the active screen.
type Controller struct {
	cfg      model.Config
	theme    theme.Theme
	store    *store.Store
	logger   *log.Logger
	explainr *explain.Pipeline

	catalog  []model.Word
	byID     map[model.WordID]model.Word
	progress map[model.WordID]model.Progress

	width  int
	height int

	sess     session.State
	snapshot *session.Snapshot
	overlay  *disguise.Overlay
	gate     *Gate
	rnd      *rand.Rand
	now      func() time.Time

	input      textinput.Model
	showHint   bool
	feedback   string
	feedbackOK bool
	typingFrom session.Screen

	pager      viewport.Model
	pagerTitle string
	pagerFrom  session.Screen

	message     string
	confirmQuit bool

	startedAt time.Time
	seenIDs   map[model.WordID]struct{}
	knownHits int
	missHits  int
}

func newController(catalog []model.Word, progress map[model.WordID]model.Progress, cfg model.Config, st *store.Store, logger *log.Logger) *Controller {
	if progress == nil {
		progress = map[model.WordID]model.Progress{}
	}
	byID := make(map[model.WordID]model.Word, len(catalog))
	for _, w := range catalog {
		byID[w.ID] = w
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64

	c := &Controller{
		cfg:      cfg,
		theme:    theme.ForName(cfg.Theme),
		store:    st,
		logger:   logger,
		explainr: explain.New(cfg.LLMBaseURL, cfg.LLMModel),
		catalog:  catalog,
		byID:     byID,
		progress: progress,
		overlay:  disguise.New(disguise.ParseStyle(cfg.DisguiseStyle), cfg.DisguiseQuit, cfg.TickInterval),
		gate:     NewGate(cfg.DebounceWindow),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		input:    input,
		pager:    viewport.New(0, 0),
		seenIDs:  map[model.WordID]struct{}{},
	}
	c.sess.Active = session.ScreenMenu
	c.startedAt = c.now()
	return c
}

// Init implements tea.Model.
func (c *Controller) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.overlay.SetSize(msg.Width, msg.Height)
		c.pager.Width = msg.Width
		c.pager.Height = maxInt(msg.Height-2, 1)
		return c, nil
	case disguise.TickMsg:
		return c, c.overlay.HandleTick(msg)
	case explainMsg:
		if c.sess.Active != session.ScreenHelp {
			// The viewer was closed before the fetch finished.
			return c, nil
		}
		if msg.err != nil {
			c.pager.SetContent("Could not fetch an explanation: " + msg.err.Error())
			return c, nil
		}
		c.pagerTitle = "Explain: " + msg.word
		c.pager.SetContent(msg.text)
		c.pager.GotoTop()
		return c, nil
	case tea.KeyMsg:
		return c.handleKey(msg)
	}
	return c, nil
}

// handleKey is the single keyboard entry point. Ordering is load-bearing:
// the interrupt escape hatch first, then the post-dismiss gate, then the
// overlay, then the hotkey, and only then the active screen. No screen
// ever observes a key the earlier stages consumed.
func (c *Controller) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := keymap.Normalize(msg)
	now := c.now()

	if k.Kind == keymap.KindInterrupt {
		c.recordSession("interrupt")
		return c, tea.Quit
	}

	if c.gate.Blocked(now) {
		return c, nil
	}

	if c.overlay.Active() {
		switch c.overlay.HandleKey(k) {
		case disguise.ActionDismiss:
			c.overlay.Deactivate()
			c.gate.NoteDismiss(now)
			c.restoreSnapshot()
			c.logger.Info("disguise dismissed", "screen", c.sess.Active)
		case disguise.ActionQuit:
			c.recordSession("disguise-quit")
			return c, tea.Quit
		}
		return c, nil
	}

	if k.IsHotkey() {
		snap := session.Capture(c.sess)
		c.snapshot = &snap
		c.logger.Info("disguise activated", "screen", c.sess.Active)
		return c, c.overlay.Activate(now)
	}

	if k.Kind == keymap.KindUnknown {
		return c, nil
	}

	if c.confirmQuit {
		return c.handleQuitConfirm(k)
	}
	if c.message != "" {
		c.message = ""
		return c, nil
	}

	switch c.sess.Active {
	case session.ScreenMenu:
		return c.handleMenu(k)
	case session.ScreenLearning:
		return c.handleLearning(k)
	case session.ScreenTyping:
		return c.handleTyping(k, msg)
	case session.ScreenStats:
		return c.handleStats(k)
	case session.ScreenHelp:
		return c.handlePager(k, msg)
	}
	return c, nil
}

// View implements tea.Model.
func (c *Controller) View() string {
	if c.overlay.Active() {
		return c.overlay.View()
	}
	if c.confirmQuit {
		return c.viewConfirmQuit()
	}
	if c.message != "" {
		return c.viewMessage()
	}
	switch c.sess.Active {
	case session.ScreenLearning:
		return c.viewLearning()
	case session.ScreenTyping:
		return c.viewTyping()
	case session.ScreenStats:
		return c.viewStats()
	case session.ScreenHelp:
		return c.viewPager()
	default:
		return c.viewMenu()
	}
}

// restoreSnapshot reconciles the pre-disguise state with whatever the
// catalog holds now, then drops the snapshot.
func (c *Controller) restoreSnapshot() {
	if c.snapshot == nil {
		return
	}
	surviving := make(map[model.WordID]struct{}, len(c.byID))
	for id := range c.byID {
		surviving[id] = struct{}{}
	}
	session.Restore(&c.sess, *c.snapshot, surviving)
	c.snapshot = nil
}

func (c *Controller) handleQuitConfirm(k keymap.Key) (tea.Model, tea.Cmd) {
	if k.Kind == keymap.KindChar && (k.Rune == 'y' || k.Rune == 'Y') || k.Kind == keymap.KindEnter {
		c.recordSession(c.sessionMode())
		return c, tea.Quit
	}
	c.confirmQuit = false
	return c, nil
}

func (c *Controller) sessionMode() string {
	if c.sess.ReviewMode {
		return "review"
	}
	return "learn"
}

// recordSession persists a summary row when anything was actually drilled.
func (c *Controller) recordSession(mode string) {
	if c.store == nil || len(c.seenIDs) == 0 {
		return
	}
	rec := model.SessionRecord{
		StartedAt: c.startedAt,
		EndedAt:   c.now(),
		Mode:      mode,
		WordsSeen: len(c.seenIDs),
		Known:     c.knownHits,
		Unknown:   c.missHits,
	}
	if err := c.store.RecordSession(context.Background(), rec); err != nil {
		c.logger.Error("failed to record session", "err", err)
	}
}

func (c *Controller) currentWord() (model.Word, bool) {
	id := c.sess.Current()
	if id == "" {
		return model.Word{}, false
	}
	w, ok := c.byID[id]
	return w, ok
}

func (c *Controller) touch(id model.WordID) model.Progress {
	p := c.progress[id]
	if _, seen := c.seenIDs[id]; !seen {
		c.seenIDs[id] = struct{}{}
		p.Seen++
	}
	return p
}

func (c *Controller) markKnown() {
	id := c.sess.Current()
	if id == "" {
		return
	}
	p := c.touch(id)
	p.Known++
	c.progress[id] = p
	c.knownHits++
	c.persistProgress()
}

func (c *Controller) markUnknown() {
	id := c.sess.Current()
	if id == "" {
		return
	}
	p := c.touch(id)
	p.Unknown++
	c.progress[id] = p
	c.missHits++
	c.persistProgress()
}

func (c *Controller) toggleStar() {
	id := c.sess.Current()
	if id == "" {
		return
	}
	p := c.progress[id]
	p.Starred = !p.Starred
	c.progress[id] = p
	c.persistProgress()
}

// persistProgress writes the progress map through after every mark, so a
// killed process loses at most the keystroke in flight.
func (c *Controller) persistProgress() {
	if c.store == nil {
		return
	}
	if err := c.store.SaveProgress(context.Background(), c.progress); err != nil {
		c.logger.Error("failed to save progress", "err", err)
	}
}

// explainCmd fetches an explanation off the render path.
func (c *Controller) explainCmd(word model.Word) tea.Cmd {
	p := c.explainr
	headword := string(word.ID)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		text, err := p.Explain(ctx, headword)
		return explainMsg{word: headword, text: text, err: err}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Run drives the controller until quit and returns the final progress map
// for the caller to persist.
func Run(catalog []model.Word, progress map[model.WordID]model.Progress, cfg model.Config, st *store.Store, logger *log.Logger) (map[model.WordID]model.Progress, error) {
	c := newController(catalog, progress, cfg, st, logger)
	p := tea.NewProgram(c, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fc, ok := final.(*Controller); ok {
		return fc.progress, nil
	}
	return c.progress, nil
}
