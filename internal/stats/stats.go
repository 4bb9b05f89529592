// Package stats aggregates learning progress for display.
package stats

import (
	"fmt"
	"strings"

	"github.com/vocadrill/vocadrill/internal/model"
)

// Summarize computes catalog-wide counters from per-word progress.
func Summarize(progress map[model.WordID]model.Progress) model.StatsSummary {
	var s model.StatsSummary
	s.Total = len(progress)
	for _, p := range progress {
		if p.Seen > 0 {
			s.Seen++
		}
		if p.Known > 0 {
			s.Known++
		}
		if p.Unknown > 0 {
			s.Unknown++
		}
		if p.Starred {
			s.Starred++
		}
	}
	return s
}

// Accuracy returns the known ratio across all marks, or 0 when nothing has
// been marked yet.
func Accuracy(known, unknown int) float64 {
	total := known + unknown
	if total == 0 {
		return 0
	}
	return float64(known) / float64(total)
}

// SummaryLines renders the summary as display rows.
func SummaryLines(s model.StatsSummary) []string {
	return []string{
		fmt.Sprintf("Words tracked: %d", s.Total),
		fmt.Sprintf("Seen:          %d", s.Seen),
		fmt.Sprintf("Known:         %d", s.Known),
		fmt.Sprintf("Need review:   %d", s.Unknown),
		fmt.Sprintf("Starred:       %d", s.Starred),
	}
}

// SessionLines renders recent session records as display rows, newest
// first.
func SessionLines(sessions []model.SessionRecord) []string {
	if len(sessions) == 0 {
		return []string{"No sessions recorded yet."}
	}
	lines := make([]string, 0, len(sessions)+1)
	lines = append(lines, "When              Mode    Seen  Known  Missed  Accuracy")
	for _, rec := range sessions {
		acc := Accuracy(rec.Known, rec.Unknown)
		lines = append(lines, fmt.Sprintf("%s  %-6s  %4d  %5d  %6d  %7.1f%%",
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rec.Mode,
			rec.WordsSeen,
			rec.Known,
			rec.Unknown,
			acc*100,
		))
	}
	return lines
}

// Render joins display rows into one block.
func Render(lines []string) string {
	return strings.Join(lines, "\n")
}
