package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quill8/shelf/internal/library"
	"github.com/quill8/shelf/internal/mutate"
)

// dialogPhase is the tagged state of an action dialog. Transitions:
//
//	closed ──open──→ open ──submit──→ pending ──success──→ closed
//	                  ↑                  │
//	                  └─────failure──────┘
//
// Close requests are ignored while pending, which makes "closed but
// pending" unrepresentable.
type dialogPhase int

const (
	dialogClosed dialogPhase = iota
	dialogOpen
	dialogPending
)

// dialog holds the state behind the add, edit, and delete surfaces. The id
// names this instance to the mutation coordinator, which rejects a second
// submission while the first is in flight.
type dialog struct {
	phase    dialogPhase
	kind     mutate.Kind
	targetID int64
	title    string // book title shown in the delete confirmation
	form     bookForm
	id       string
}

func (d *dialog) openAdd() {
	if d.phase != dialogClosed {
		return
	}
	*d = dialog{
		phase: dialogOpen,
		kind:  mutate.KindCreate,
		form:  newBookForm(),
		id:    mutate.DialogID(mutate.KindCreate, 0),
	}
}

func (d *dialog) openEdit(b library.Book) {
	if d.phase != dialogClosed {
		return
	}
	form := newBookForm()
	form.seed(b)
	*d = dialog{
		phase:    dialogOpen,
		kind:     mutate.KindUpdate,
		targetID: b.ID,
		title:    b.Title,
		form:     form,
		id:       mutate.DialogID(mutate.KindUpdate, b.ID),
	}
}

func (d *dialog) openDelete(b library.Book) {
	if d.phase != dialogClosed {
		return
	}
	*d = dialog{
		phase:    dialogOpen,
		kind:     mutate.KindDelete,
		targetID: b.ID,
		title:    b.Title,
		id:       mutate.DialogID(mutate.KindDelete, b.ID),
	}
}

// beginSubmit moves open→pending. It reports false when the dialog is not
// in a submittable state, so callers cannot double-submit.
func (d *dialog) beginSubmit() bool {
	if d.phase != dialogOpen {
		return false
	}
	d.phase = dialogPending
	return true
}

// settle resolves a pending submission: success closes and resets the
// dialog, failure returns it to the editable open state with input intact.
func (d *dialog) settle(err error) {
	if d.phase != dialogPending {
		return
	}
	if err != nil {
		d.phase = dialogOpen
		return
	}
	*d = dialog{}
}

// close dismisses an open dialog. While pending the request is not
// cancellable, only awaited, so close reports false and changes nothing.
func (d *dialog) close() bool {
	if d.phase != dialogOpen {
		return false
	}
	*d = dialog{}
	return true
}

// request builds the mutation for this dialog's submit.
func (d *dialog) request() mutate.Request {
	req := mutate.Request{Kind: d.kind, TargetID: d.targetID}
	if d.kind != mutate.KindDelete {
		req.Input = d.form.input()
	}
	return req
}

func (d *dialog) heading() string {
	switch d.kind {
	case mutate.KindCreate:
		return "Add a Book"
	case mutate.KindUpdate:
		return "Edit Book"
	case mutate.KindDelete:
		return "Delete Book"
	default:
		return ""
	}
}

// render draws the dialog centered in the content area.
func (d *dialog) render(theme Theme, width, height int) string {
	styles := theme.Styles()

	var body string
	switch d.kind {
	case mutate.KindDelete:
		body = styles.Text.Render("Delete \""+d.title+"\"?") + "\n\n" +
			styles.MutedText.Render("This cannot be undone.")
	default:
		body = d.form.render(styles)
	}

	footer := styles.FaintText.Render("enter Submit  esc Cancel  tab Next field")
	if d.kind == mutate.KindDelete {
		footer = styles.FaintText.Render("enter/y Delete  esc/n Cancel")
	}
	if d.phase == dialogPending {
		footer = styles.AccentText.Render("Working...")
	}

	content := styles.AccentText.Bold(true).Render(d.heading()) + "\n\n" +
		body + "\n\n" + footer

	box := styles.Dialog.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
