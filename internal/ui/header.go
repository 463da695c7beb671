package ui

import (
	"fmt"
	"strings"

	"github.com/quill8/shelf/internal/page"
	"github.com/quill8/shelf/internal/state"
)

// renderHeader renders the top status bar: logo, collection size,
// connection state, and the time of the last successful refresh.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("shelf")}

	switch {
	case m.snapshot.Status == state.StatusError:
		parts = append(parts, styles.DangerText.Render("CATALOG UNREACHABLE"))
		if m.snapshot.HasLoaded {
			parts = append(parts, styles.MutedText.Render("showing last known data"))
		}
	case !m.snapshot.HasLoaded:
		parts = append(parts, styles.MutedText.Render("Connecting..."))
	default:
		count := len(m.snapshot.Books)
		noun := "books"
		if count == 1 {
			noun = "book"
		}
		parts = append(parts, styles.Text.Render(fmt.Sprintf("%d %s", count, noun)))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.FaintText.Render(m.snapshot.LastUpdated.Format("15:04:05")))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the second header line with key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hints := []string{
		hint(styles, "a", "add"),
		hint(styles, "e", "edit"),
		hint(styles, "d", "delete"),
		hint(styles, "h/l", "page"),
		hint(styles, "r", "refresh"),
		hint(styles, "?", "help"),
		hint(styles, "q", "quit"),
	}
	return styles.Header.Width(m.width).Render(strings.Join(hints, "  "))
}

// renderStatusLine renders the bottom line: the active notice when one is
// visible, otherwise a faint page indicator.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()

	if m.notice.visible {
		return styles.Header.Width(m.width).Render(m.notice.render(styles))
	}

	var right string
	if n := len(m.snapshot.Books); n > 0 {
		totalPages := page.TotalPages(n, m.pageSize)
		if totalPages > 1 {
			right = fmt.Sprintf("page %d/%d", m.currentPage, totalPages)
		}
	}
	return styles.Header.Width(m.width).Render(styles.FaintText.Render(right))
}

func hint(styles Styles, keyLabel, action string) string {
	return styles.AccentText.Render("<"+keyLabel+">") + " " + styles.MutedText.Render(action)
}
