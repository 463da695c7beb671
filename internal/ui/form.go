package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill8/shelf/internal/library"
)

// Form field indexes, in display and focus order.
const (
	fieldTitle = iota
	fieldAuthor
	fieldGenre
	fieldTotalPages
	fieldPublishedYear
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Author",
	"Genre",
	"Total pages",
	"Published year",
	"Description (optional)",
}

// Validation bounds. These mirror the catalog's form rules: short text
// fields are 4-32 characters, the description is blank or 20-100, and the
// year must be plausible.
const (
	textFieldMin   = 4
	textFieldMax   = 32
	descriptionMin = 20
	descriptionMax = 100
	yearMin        = 1900
)

// bookForm collects and validates input for the add and edit dialogs.
type bookForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	errText string
}

func newBookForm() bookForm {
	var f bookForm
	placeholders := [fieldCount]string{
		"Book title",
		"Author name",
		"e.g. Fiction, Sci-Fi",
		"e.g. 132",
		"e.g. 1997",
		"A short description",
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = "> "
		in.CharLimit = 128
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Focus()
	return f
}

// seed fills the form from an existing book for the edit dialog.
func (f *bookForm) seed(b library.Book) {
	f.inputs[fieldTitle].SetValue(b.Title)
	f.inputs[fieldAuthor].SetValue(b.Author)
	f.inputs[fieldGenre].SetValue(b.Genre)
	f.inputs[fieldTotalPages].SetValue(strconv.Itoa(b.TotalPages))
	f.inputs[fieldPublishedYear].SetValue(strconv.Itoa(b.PublishedYear))
	if b.Description != nil {
		f.inputs[fieldDescription].SetValue(*b.Description)
	}
}

func (f *bookForm) focusNext() {
	f.setFocus((f.focused + 1) % fieldCount)
}

func (f *bookForm) focusPrev() {
	f.setFocus((f.focused + fieldCount - 1) % fieldCount)
}

func (f *bookForm) setFocus(index int) {
	f.inputs[f.focused].Blur()
	f.focused = index
	f.inputs[f.focused].Focus()
}

// update routes a message to the focused input.
func (f *bookForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

// validate checks every field and records the first violation. Invalid
// input never reaches the mutation coordinator.
func (f *bookForm) validate() bool {
	f.errText = ""
	for _, check := range []func() string{
		f.checkTitle,
		f.checkAuthor,
		f.checkGenre,
		f.checkTotalPages,
		f.checkPublishedYear,
		f.checkDescription,
	} {
		if msg := check(); msg != "" {
			f.errText = msg
			return false
		}
	}
	return true
}

func (f *bookForm) checkTitle() string {
	return checkTextField("Title", f.value(fieldTitle))
}

func (f *bookForm) checkAuthor() string {
	return checkTextField("Author", f.value(fieldAuthor))
}

func (f *bookForm) checkGenre() string {
	return checkTextField("Genre", f.value(fieldGenre))
}

func (f *bookForm) checkTotalPages() string {
	pages, err := strconv.Atoi(f.value(fieldTotalPages))
	if err != nil || pages <= 0 {
		return "Total pages must be a positive number."
	}
	return ""
}

func (f *bookForm) checkPublishedYear() string {
	year, err := strconv.Atoi(f.value(fieldPublishedYear))
	if err != nil {
		return "Year must be an integer."
	}
	if year < yearMin {
		return fmt.Sprintf("Year must be %d or later.", yearMin)
	}
	if year > time.Now().Year() {
		return "Year cannot be in the future."
	}
	return ""
}

func (f *bookForm) checkDescription() string {
	desc := f.value(fieldDescription)
	if desc == "" {
		return ""
	}
	if n := utf8.RuneCountInString(desc); n < descriptionMin || n > descriptionMax {
		return fmt.Sprintf("Description must be %d to %d characters.", descriptionMin, descriptionMax)
	}
	return ""
}

func checkTextField(label, value string) string {
	n := utf8.RuneCountInString(value)
	if n < textFieldMin {
		return fmt.Sprintf("%s must be at least %d characters.", label, textFieldMin)
	}
	if n > textFieldMax {
		return fmt.Sprintf("%s must be at most %d characters.", label, textFieldMax)
	}
	return ""
}

// input builds the request payload. Call only after validate succeeds.
func (f *bookForm) input() library.BookInput {
	pages, _ := strconv.Atoi(f.value(fieldTotalPages))
	year, _ := strconv.Atoi(f.value(fieldPublishedYear))

	in := library.BookInput{
		Title:         f.value(fieldTitle),
		Author:        f.value(fieldAuthor),
		Genre:         f.value(fieldGenre),
		TotalPages:    pages,
		PublishedYear: year,
	}
	if desc := f.value(fieldDescription); desc != "" {
		in.Description = &desc
	}
	return in
}

func (f *bookForm) value(index int) string {
	return strings.TrimSpace(f.inputs[index].Value())
}

// render draws the form fields with the focused one highlighted.
func (f *bookForm) render(styles Styles) string {
	var b strings.Builder
	for i := range f.inputs {
		label := styles.MutedText.Render(fieldLabels[i])
		if i == f.focused {
			label = styles.AccentText.Render(fieldLabels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}
	if f.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(f.errText))
	}
	return b.String()
}
