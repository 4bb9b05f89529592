package tui

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocadrill/vocadrill/internal/keymap"
	"github.com/vocadrill/vocadrill/internal/session"
)

// nearMissDistance is the edit distance under which a wrong answer is
// treated as a typo rather than a miss.
const nearMissDistance = 2

func (c *Controller) enterTyping(from session.Screen) {
	c.typingFrom = from
	c.sess.Active = session.ScreenTyping
	c.input.SetValue("")
	c.input.Focus()
	// The drill opens with the phonetic hint visible; F2 hides it.
	c.showHint = true
	c.feedback = ""
}

func (c *Controller) handleTyping(k keymap.Key, raw tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.Kind {
	case keymap.KindEscape:
		c.sess.Active = c.typingFrom
		c.input.Blur()
		return c, nil
	case keymap.KindEnter:
		c.gradeAnswer()
		return c, nil
	case keymap.KindFunction:
		if k.Num == 2 {
			c.showHint = !c.showHint
		}
		return c, nil
	case keymap.KindArrow:
		switch k.Dir {
		case keymap.DirUp:
			c.sess.Retreat()
			c.resetAnswer()
		case keymap.DirDown:
			c.advanceOrWrap()
			c.resetAnswer()
		}
		return c, nil
	case keymap.KindChar, keymap.KindSpace, keymap.KindBackspace:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(raw)
		return c, cmd
	}
	return c, nil
}

func (c *Controller) resetAnswer() {
	c.input.SetValue("")
	c.feedback = ""
}

// gradeAnswer compares the typed text to the headword, case insensitive.
// A small edit distance gets a spelling nudge instead of a miss.
func (c *Controller) gradeAnswer() {
	w, ok := c.currentWord()
	if !ok {
		return
	}
	answer := strings.TrimSpace(c.input.Value())
	if answer == "" {
		return
	}
	got := strings.ToLower(answer)
	want := strings.ToLower(w.Text)
	switch {
	case got == want:
		c.feedback = "Correct!"
		c.feedbackOK = true
		c.markKnown()
		c.advanceOrWrap()
		c.input.SetValue("")
	case levenshtein.ComputeDistance(got, want) <= nearMissDistance:
		c.feedback = "Almost, check the spelling."
		c.feedbackOK = false
	default:
		c.feedback = fmt.Sprintf("It was %q.", w.Text)
		c.feedbackOK = false
		c.markUnknown()
	}
}

func (c *Controller) viewTyping() string {
	t := c.theme
	w, ok := c.currentWord()
	if !ok {
		return centered(c.width, c.height, []string{t.Hint.Render("No words available.")})
	}

	lines := []string{
		t.Hint.Render(fmt.Sprintf("%d / %d  type the word", c.sess.Cursor+1, len(c.sess.Order))),
		"",
		t.Meaning.Render(w.Meaning),
	}
	if c.showHint && w.Phonetic != "" {
		lines = append(lines, t.Phonetic.Render(w.Phonetic))
	}
	lines = append(lines, "", c.input.View())
	if c.feedback != "" {
		style := t.Warning
		if c.feedbackOK {
			style = t.Success
		}
		lines = append(lines, "", style.Render(c.feedback))
	}

	body := centered(c.width, maxInt(c.height-1, 1), lines)
	footer := t.Hint.Render("enter grade · F2 hint · ↑/↓ word · esc back")
	return footerLine(c.width, body, footer)
}
