package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quill8/shelf/internal/library"
	"github.com/quill8/shelf/internal/page"
	"github.com/quill8/shelf/internal/state"
)

// Column widths for the book table. Title and author flex with the
// terminal; the rest are fixed.
const (
	genreColWidth = 18
	yearColWidth  = 6
	pagesColWidth = 7
)

// renderList renders the paginated book list with its navigation footer.
func (m Model) renderList(height int) string {
	styles := m.theme.Styles()

	if !m.snapshot.HasLoaded {
		if m.snapshot.Status == state.StatusError {
			msg := styles.DangerText.Render("Cannot reach the catalog service") + "\n" +
				styles.MutedText.Render(errorLine(m.snapshot.Err)) + "\n\n" +
				styles.FaintText.Render("Press r to retry")
			return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Loading library..."))
	}

	books := m.snapshot.Books
	if len(books) == 0 {
		// An empty collection renders no rows and no pagination controls.
		hint := styles.MutedText.Render("The library is empty.") + "\n" +
			styles.FaintText.Render("Press a to add a book")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, hint)
	}

	totalPages := page.TotalPages(len(books), m.pageSize)
	current := page.Clamp(m.currentPage, totalPages)
	lo, hi := page.Bounds(current, m.pageSize, len(books))

	var b strings.Builder
	b.WriteString(m.renderTableHeader(styles))
	b.WriteString("\n")
	for i, book := range books[lo:hi] {
		b.WriteString(m.renderRow(styles, book, i == m.selectedRow))
		b.WriteString("\n")
	}

	body := b.String()
	if totalPages > 1 {
		body += "\n" + m.renderPager(styles, current, totalPages)
	}

	return lipgloss.NewStyle().Height(height).Render(body)
}

func (m Model) renderTableHeader(styles Styles) string {
	titleW, authorW := m.flexWidths()
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %*s  %*s",
		titleW, "TITLE",
		authorW, "AUTHOR",
		genreColWidth, "GENRE",
		yearColWidth, "YEAR",
		pagesColWidth, "PAGES",
	)
	return styles.FaintText.Render(header)
}

func (m Model) renderRow(styles Styles, b library.Book, selected bool) string {
	titleW, authorW := m.flexWidths()
	row := fmt.Sprintf(" %-*s  %-*s  %-*s  %*d  %*d",
		titleW, truncate(b.Title, titleW),
		authorW, truncate(b.Author, authorW),
		genreColWidth, truncate(b.Genre, genreColWidth),
		yearColWidth, b.PublishedYear,
		pagesColWidth, b.TotalPages,
	)
	if selected {
		return styles.Selected.Render(row)
	}
	return styles.Text.Render(row)
}

// renderPager draws the sliding page-number window. Previous/next markers
// appear only when the respective page exists.
func (m Model) renderPager(styles Styles, current, totalPages int) string {
	parts := make([]string, 0, 7)

	if page.HasPrevious(current) {
		parts = append(parts, styles.MutedText.Render("‹ prev"))
	}
	for _, p := range page.Visible(current, totalPages) {
		label := strconv.Itoa(p)
		if p == current {
			parts = append(parts, styles.ActivePage.Render(label))
		} else {
			parts = append(parts, styles.InactivePage.Render(label))
		}
	}
	if page.HasNext(current, totalPages) {
		parts = append(parts, styles.MutedText.Render("next ›"))
	}

	return " " + strings.Join(parts, " ")
}

// flexWidths splits the space left over from fixed columns between the
// title and author columns.
func (m Model) flexWidths() (int, int) {
	fixed := genreColWidth + yearColWidth + pagesColWidth + 10 // separators + margins
	flex := m.width - fixed
	if flex < 24 {
		flex = 24
	}
	titleW := flex * 3 / 5
	authorW := flex - titleW
	return titleW, authorW
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func errorLine(err error) string {
	if err == nil {
		return ""
	}
	return truncate(err.Error(), 70)
}
