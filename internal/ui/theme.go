package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Danger  string

	Border        string
	SelectionBg   string
	SelectionText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		ActivePage: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		InactivePage: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style

	Header       lipgloss.Style
	Logo         lipgloss.Style
	Selected     lipgloss.Style
	ActivePage   lipgloss.Style
	InactivePage lipgloss.Style
	Dialog       lipgloss.Style
}

var themes = map[string]Theme{
	"Dracula": {
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#44475a",
		Text:          "#f8f8f2",
		Muted:         "#bfc2d0",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Danger:        "#ff5555",
		Border:        "#6272a4",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
	},
	"Nord": {
		Name:          "Nord",
		Background:    "#2e3440",
		Surface:       "#3b4252",
		Text:          "#eceff4",
		Muted:         "#d8dee9",
		Faint:         "#4c566a",
		Accent:        "#88c0d0",
		Success:       "#a3be8c",
		Danger:        "#bf616a",
		Border:        "#4c566a",
		SelectionBg:   "#434c5e",
		SelectionText: "#eceff4",
	},
	"Paper": {
		Name:          "Paper",
		Background:    "#eeeeee",
		Surface:       "#e0e0e0",
		Text:          "#1c1c1c",
		Muted:         "#4e4e4e",
		Faint:         "#9e9e9e",
		Accent:        "#005f87",
		Success:       "#10601e",
		Danger:        "#af0000",
		Border:        "#9e9e9e",
		SelectionBg:   "#005f87",
		SelectionText: "#eeeeee",
	},
}

// GetTheme returns the named theme, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Dracula"]
}

// NextTheme returns the name following current in alphabetical rotation.
func NextTheme(current string) string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
