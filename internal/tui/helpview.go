package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/keymap"
	"github.com/vocadrill/vocadrill/internal/session"
)

var helpText = strings.Join([]string{
	"Keys",
	"",
	"Menu",
	"  1        learn all words",
	"  2        review starred / missed",
	"  3        statistics",
	"  4        typing drill",
	"  5 / q    quit",
	"  h        this help",
	"",
	"Learning",
	"  s / →    next word",
	"  w / ←    previous word",
	"  p        reveal or hide the meaning",
	"  space    mark known and advance",
	"  x        mark unknown and advance",
	"  ,        star / unstar",
	"  r        shuffle the deck",
	"  t        typing drill from here",
	"  e        explain the current word",
	"  .        back to the menu",
	"",
	"Typing",
	"  enter    grade the answer",
	"  F2       toggle the phonetic hint",
	"  ↑ / ↓    previous / next word",
	"  esc      leave the drill",
	"",
	"Anywhere",
	"  tab / shift+tab   swap the screen for a harmless-looking one;",
	"                    press again to come back exactly where you were",
	"  ctrl+c            quit immediately",
}, "\n")

// openHelp shows the scrollable pager, remembering which screen to return
// to. The explain flow reuses the same pager with fetched content.
func (c *Controller) openHelp(from session.Screen) {
	c.pagerFrom = from
	c.pagerTitle = "Help"
	c.pager.SetContent(helpText)
	c.pager.GotoTop()
	c.sess.Active = session.ScreenHelp
}

func (c *Controller) handlePager(k keymap.Key, raw tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case k.Kind == keymap.KindEscape,
		k.Kind == keymap.KindChar && (k.Rune == 'q' || k.Rune == '.'):
		c.sess.Active = c.pagerFrom
		return c, nil
	case k.Kind == keymap.KindArrow, k.Kind == keymap.KindPage, k.Kind == keymap.KindHomeEnd:
		var cmd tea.Cmd
		c.pager, cmd = c.pager.Update(raw)
		return c, cmd
	}
	return c, nil
}

func (c *Controller) viewPager() string {
	title := c.theme.Title.Render(clipTo(c.pagerTitle, c.width))
	footer := c.theme.Hint.Render("↑/↓ scroll · q/esc close")
	if c.width == 0 || c.height == 0 {
		return title + "\n" + c.pager.View()
	}
	return footerLine(c.width, title+"\n"+c.pager.View(), footer)
}
