package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/keymap"
	"github.com/vocadrill/vocadrill/internal/session"
	"github.com/vocadrill/vocadrill/internal/stats"
)

const statsHistoryLimit = 10

func (c *Controller) openStats() {
	c.sess.Active = session.ScreenStats
}

// Any key returns to the menu.
func (c *Controller) handleStats(_ keymap.Key) (tea.Model, tea.Cmd) {
	c.sess.Active = session.ScreenMenu
	return c, nil
}

func (c *Controller) viewStats() string {
	t := c.theme
	summary := stats.Summarize(c.progress)
	summary.Total = len(c.catalog)

	lines := []string{t.Title.Render("Statistics"), ""}
	for _, l := range stats.SummaryLines(summary) {
		lines = append(lines, t.Body.Render(l))
	}

	if c.store != nil {
		if sessions, err := c.store.ListSessions(context.Background(), statsHistoryLimit); err == nil {
			lines = append(lines, "", t.Title.Render("Recent sessions"), "")
			for _, l := range stats.SessionLines(sessions) {
				lines = append(lines, t.Body.Render(l))
			}
		} else {
			c.logger.Error("failed to load session history", "err", err)
		}
	}

	body := centered(c.width, maxInt(c.height-1, 1), lines)
	return footerLine(c.width, body, t.Hint.Render("press any key to return"))
}
