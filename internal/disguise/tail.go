package disguise

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// The overlay deliberately does not use the app theme: it has to look like
// a stock terminal, so the log colors are fixed.
var (
	tailTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	tailInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	tailDebugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tailWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	tailPlainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

const (
	tailTitle          = "tail -f /var/log/application.log"
	newLineProbability = 0.7
	minVisibleLines    = 5
	tailTimeLayout     = "2006-01-02 15:04:05"
)

var tailLevels = []string{"INFO", "DEBUG", "WARNING"}

var tailMessages = []string{
	"Application started successfully",
	"Loading configuration from config.json",
	"Database connection established",
	"Processing user request",
	"Cache refresh completed",
	"Background task completed",
	"Request processed in 125ms",
	"Cleaning up temporary files",
	"System status: healthy",
	"Service heartbeat OK",
}

type logLine struct {
	at    time.Time
	level string
	text  string
}

func (l logLine) render() string {
	return "[" + l.at.Format(tailTimeLayout) + "] " + l.level + ": " + l.text
}

func (o *Overlay) newLogLine(at time.Time) logLine {
	return logLine{
		at:    at,
		level: tailLevels[o.rnd.Intn(len(tailLevels))],
		text:  tailMessages[o.rnd.Intn(len(tailMessages))],
	}
}

// initialTailLines backfills the buffer so the screen looks like a log
// that has been running for a while: timestamps count back from now at
// roughly one second per line.
func (o *Overlay) initialTailLines(now time.Time) []logLine {
	n := o.visibleLines()
	if n > 60 {
		n = 60
	}
	lines := make([]logLine, 0, n)
	for i := n; i > 0; i-- {
		lines = append(lines, o.newLogLine(now.Add(-time.Duration(i)*time.Second)))
	}
	return lines
}

func (o *Overlay) viewTail() string {
	var b strings.Builder
	b.WriteString(tailTitleStyle.Render(o.clip(tailTitle)))
	for i, line := range o.lines {
		if o.height > 0 && i+1 >= o.height {
			break
		}
		style := tailPlainStyle
		switch line.level {
		case "WARNING", "ERROR":
			style = tailWarnStyle
		case "INFO":
			style = tailInfoStyle
		case "DEBUG":
			style = tailDebugStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(o.clip(line.render())))
	}
	return b.String()
}

// clip truncates a raw line to the terminal width before styling. Drawing
// past the visible area is recovered locally, never surfaced.
func (o *Overlay) clip(s string) string {
	if o.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, o.width-1, "")
}
