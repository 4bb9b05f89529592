package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/keymap"
	"github.com/vocadrill/vocadrill/internal/model"
	"github.com/vocadrill/vocadrill/internal/session"
)

func (c *Controller) handleMenu(k keymap.Key) (tea.Model, tea.Cmd) {
	if k.Kind != keymap.KindChar {
		return c, nil
	}
	switch k.Rune {
	case '1':
		c.startLearning(false)
	case '2':
		c.startLearning(true)
	case '3':
		c.openStats()
	case '4':
		c.startLearning(false)
		if len(c.sess.Order) > 0 {
			c.enterTyping(session.ScreenMenu)
		}
	case '5', 'q':
		c.confirmQuit = true
	case 'h':
		c.openHelp(session.ScreenMenu)
	}
	return c, nil
}

// startLearning rebuilds the session over the full deck, or over the
// starred/missed subset when reviewing. An empty review deck stays on the
// menu with a notice instead of an empty learning screen.
func (c *Controller) startLearning(review bool) {
	order := make([]model.WordID, 0, len(c.catalog))
	for _, w := range c.catalog {
		if review && !c.progress[w.ID].NeedsReview() {
			continue
		}
		order = append(order, w.ID)
	}
	if len(order) == 0 {
		if review {
			c.message = "Nothing to review yet. Star words or miss a few first."
		} else {
			c.message = "The word catalog is empty."
		}
		return
	}
	c.sess = session.NewState(order)
	c.sess.ReviewMode = review
	c.sess.Active = session.ScreenLearning
	c.logger.Info("session started", "mode", c.sessionMode(), "words", len(order))
}

func (c *Controller) viewMenu() string {
	t := c.theme
	lines := []string{
		t.Title.Render("vocadrill"),
		"",
		t.Body.Render("1  Learn all words"),
		t.Body.Render("2  Review starred / missed"),
		t.Body.Render("3  Statistics"),
		t.Body.Render("4  Typing drill"),
		t.Body.Render("5  Quit"),
		"",
		t.Hint.Render(fmt.Sprintf("%d words loaded", len(c.catalog))),
	}
	body := centered(c.width, maxInt(c.height-1, 1), lines)
	return footerLine(c.width, body, c.theme.Hint.Render("h help · q quit"))
}

func (c *Controller) viewMessage() string {
	lines := []string{
		c.theme.Body.Render(c.message),
		"",
		c.theme.Hint.Render("press any key"),
	}
	return centered(c.width, c.height, lines)
}

func (c *Controller) viewConfirmQuit() string {
	lines := []string{
		c.theme.Warning.Render("Quit and save progress?"),
		"",
		c.theme.Hint.Render("y / enter to quit, any other key to stay"),
	}
	return centered(c.width, c.height, lines)
}
