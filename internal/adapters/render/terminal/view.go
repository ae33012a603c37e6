package terminal

import (
	"fmt"
	"strings"

	"github.com/bnema/netrun/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderRecords(records []domain.Record, s styles) string {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, renderRecord(record, s))
	}
	return strings.Join(lines, "\n")
}

func renderRecord(record domain.Record, s styles) string {
	switch r := record.(type) {
	case domain.TextLine:
		return s.line(r.Style).Render(r.Text)
	case domain.Link:
		return s.line(domain.StylePrimary).Render(r.Dashes) + s.link.Render(r.Hostname)
	case domain.RawContent:
		return fmt.Sprint(r.Value)
	default:
		return ""
	}
}

// renderProgress draws the action timer as a bar of domain.ProgressBarTicks
// cells.
func renderProgress(action domain.ActionTimer, s styles) string {
	text := domain.ProgressBarText(action.Progress(), domain.ProgressBarTicks)
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	filled := strings.Count(inner, "|")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.bar.Render("["),
		s.barDone.Render(inner[:filled]),
		s.bar.Render(inner[filled:]),
		s.bar.Render("]"),
		" ",
		s.status.Render(fmt.Sprintf("%s %s", action.Kind, action.Server.Hostname)),
	)
}

func promptText(hostname, cwd string) string {
	return fmt.Sprintf("[%s %s]> ", hostname, cwd)
}

// complete returns the single command name starting with prefix, or the
// longest prefix shared by every match.
func complete(prefix string, names []string) (string, bool) {
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return prefix, false
	case 1:
		return matches[0] + " ", true
	}

	common := matches[0]
	for _, m := range matches[1:] {
		for !strings.HasPrefix(m, common) {
			common = common[:len(common)-1]
		}
	}
	return common, len(common) > len(prefix)
}
