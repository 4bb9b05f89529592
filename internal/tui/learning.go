package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/keymap"
	"github.com/vocadrill/vocadrill/internal/session"
)

func (c *Controller) handleLearning(k keymap.Key) (tea.Model, tea.Cmd) {
	switch k.Kind {
	case keymap.KindArrow:
		switch k.Dir {
		case keymap.DirRight:
			c.advanceOrWrap()
		case keymap.DirLeft:
			c.sess.Retreat()
		}
		return c, nil
	case keymap.KindSpace, keymap.KindEnter:
		c.markKnown()
		c.advanceOrWrap()
		return c, nil
	case keymap.KindChar:
	default:
		return c, nil
	}

	switch k.Rune {
	case 's':
		c.advanceOrWrap()
	case 'w':
		c.sess.Retreat()
	case 'p':
		c.sess.RevealMeaning = !c.sess.RevealMeaning
	case 'x':
		c.markUnknown()
		c.advanceOrWrap()
	case ',':
		c.toggleStar()
	case 'r':
		c.sess.Shuffle(c.rnd)
		c.message = "Word order shuffled."
	case 't':
		c.enterTyping(session.ScreenLearning)
	case 'e':
		if w, ok := c.currentWord(); ok {
			c.openHelp(session.ScreenLearning)
			c.pagerTitle = "Explain: " + string(w.ID)
			c.pager.SetContent("Fetching explanation for " + string(w.ID) + " ...")
			return c, c.explainCmd(w)
		}
	case 'h':
		c.openHelp(session.ScreenLearning)
	case '.':
		c.sess.Active = session.ScreenMenu
	case 'q':
		c.confirmQuit = true
	}
	return c, nil
}

// advanceOrWrap steps to the next word, wrapping to the start with a
// notice when the deck is exhausted.
func (c *Controller) advanceOrWrap() {
	if c.sess.Advance() {
		return
	}
	c.sess.Rewind()
	c.message = "Reached the end of the deck, starting over."
}

func (c *Controller) viewLearning() string {
	t := c.theme
	w, ok := c.currentWord()
	if !ok {
		return centered(c.width, c.height, []string{t.Hint.Render("No words available.")})
	}
	p := c.progress[w.ID]

	star := " "
	if p.Starred {
		star = "*"
	}
	mode := ""
	if c.sess.ReviewMode {
		mode = "  [review]"
	}
	head := t.Headword.Render(w.Text)
	if p.Starred {
		head = t.Headword.Render(w.Text + " " + star)
	}

	lines := []string{
		t.Hint.Render(fmt.Sprintf("%d / %d%s", c.sess.Cursor+1, len(c.sess.Order), mode)),
		"",
		head,
	}
	if w.Phonetic != "" {
		lines = append(lines, t.Phonetic.Render(w.Phonetic))
	}
	lines = append(lines, "")
	if c.sess.RevealMeaning {
		lines = append(lines, t.Meaning.Render(w.Meaning))
		if w.Example != "" {
			lines = append(lines, t.Hint.Render(w.Example))
		}
	} else {
		lines = append(lines, t.Hint.Render("p to reveal the meaning"))
	}

	body := centered(c.width, maxInt(c.height-1, 1), lines)
	footer := t.Hint.Render("s/→ next · w/← prev · space known · x unknown · , star · r shuffle · t type · e explain · . menu")
	return footerLine(c.width, body, footer)
}
