package disguise

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	listingTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	listingDirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	listingExecStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	listingPlainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	promptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const listingTitle = "ls -la /home/user/project"

type fakeEntry struct {
	dir  bool
	name string
}

var fakeEntries = []fakeEntry{
	{true, "config"},
	{false, ".bash_logout"},
	{false, ".bashrc"},
	{true, ".cache"},
	{false, ".profile"},
	{false, "application.log"},
	{false, "backup_script.sh"},
	{true, "temp"},
	{false, "data.json"},
	{false, "error.log"},
	{false, "main_app"},
	{false, "report.txt"},
}

func listingTimestamp(at time.Time) string {
	return fmt.Sprintf("%s %2d %s", at.Format("Jan"), at.Day(), at.Format("15:04"))
}

// buildListing fabricates one `ls -la` block. Modification times sit within
// the last few minutes so the directory looks freshly used.
func (o *Overlay) buildListing(now time.Time) []string {
	lines := make([]string, 0, len(fakeEntries)+3)
	lines = append(lines, fmt.Sprintf("total %d", len(fakeEntries)*4))
	lines = append(lines, fmt.Sprintf("drwxr-xr-x  3 user user    4096 %s .", listingTimestamp(now)))
	lines = append(lines, fmt.Sprintf("drwxr-xr-x 15 user user    4096 %s ..", listingTimestamp(now.Add(-time.Minute))))
	for _, e := range fakeEntries {
		at := now.Add(-time.Duration(o.rnd.Intn(10))*time.Minute - time.Duration(o.rnd.Intn(60))*time.Second)
		size := 512 + o.rnd.Intn(16384-512)
		perm := "-rw-r--r--"
		if e.dir {
			perm = "drwxr-xr-x"
		} else if o.rnd.Float64() < 0.25 || strings.HasSuffix(e.name, ".sh") || strings.HasSuffix(e.name, "_app") {
			perm = "-rwxr-xr-x"
		}
		lines = append(lines, fmt.Sprintf("%s  1 user user %7d %s %s", perm, size, listingTimestamp(at), e.name))
	}
	return lines
}

func (o *Overlay) viewListing() string {
	var b strings.Builder
	b.WriteString(listingTitleStyle.Render(o.clip(listingTitle)))
	row := 1
	for _, line := range o.listing {
		if o.height > 0 && row >= o.height-1 {
			break
		}
		style := listingPlainStyle
		if strings.HasPrefix(line, "d") {
			style = listingDirStyle
		} else if len(line) > 6 && strings.ContainsRune(line[3:6], 'x') {
			style = listingExecStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(o.clip(line)))
		row++
	}
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(o.clip("user@server:~/project$ ")))
	return b.String()
}
