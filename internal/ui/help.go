package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	keys   string
	action string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Books",
			items: []helpItem{
				{"a", "Add a book"},
				{"e", "Edit selected book"},
				{"d", "Delete selected book"},
				{"r", "Refresh from server"},
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move selection"},
				{"g/G", "First/last row on page"},
				{"h/l", "Previous/next page"},
			},
		},
		{
			title: "Dialogs",
			items: []helpItem{
				{"tab/shift+tab", "Next/previous field"},
				{"enter", "Submit"},
				{"esc", "Cancel (not while submitting)"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(styles.Text.Render("  " + padRight(item.keys, 15)))
			b.WriteString(styles.MutedText.Render(item.action))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
