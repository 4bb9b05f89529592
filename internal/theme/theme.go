// Package theme defines the color palettes used by the learning screens.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups the semantic styles a screen can ask for. Screens never
// reference concrete colors, only roles.
type Theme struct {
	Title    lipgloss.Style
	Headword lipgloss.Style
	Phonetic lipgloss.Style
	Meaning  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Hint     lipgloss.Style
	Body     lipgloss.Style
}

// Names lists the available theme names, default first.
func Names() []string {
	return []string{"classic", "paper", "neon"}
}

// ForName resolves a theme by name, falling back to the default for
// anything unrecognized.
func ForName(name string) Theme {
	switch name {
	case "paper":
		return paperTheme()
	case "neon":
		return neonTheme()
	default:
		return classicTheme()
	}
}

func classicTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEBFF")).Bold(true),
		Headword: lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		Phonetic: lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD")),
		Meaning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#67F0A8")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#67F0A8")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	}
}

func paperTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B6EA5")).Bold(true),
		Headword: lipgloss.NewStyle().Foreground(lipgloss.Color("#8A5A00")).Bold(true),
		Phonetic: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D4A9E")),
		Meaning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D4F")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D4F")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#B3261E")).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color("#30343A")),
	}
}

func neonTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6AC1")).Bold(true),
		Headword: lipgloss.NewStyle().Foreground(lipgloss.Color("#F3F99D")).Bold(true),
		Phonetic: lipgloss.NewStyle().Foreground(lipgloss.Color("#9AEDFE")),
		Meaning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5AF78E")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5AF78E")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5C57")).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#808487")),
		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EFF0EB")),
	}
}
