package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/quill8/shelf/internal/library"
	"github.com/quill8/shelf/internal/mutate"
	"github.com/quill8/shelf/internal/page"
	"github.com/quill8/shelf/internal/prefs"
	"github.com/quill8/shelf/internal/state"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Cache       *state.Cache
	Coordinator *mutate.Coordinator
	Notices     <-chan mutate.Notice
	PageSize    int
	ThemeName   string
	PrefsPath   string
	Logger      zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	cache     *state.Cache
	coord     *mutate.Coordinator
	notices   <-chan mutate.Notice
	pageSize  int
	prefsPath string
	log       zerolog.Logger

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// List state
	currentPage int
	selectedRow int // index within the current page's slice
	selectedID  int64

	// Dialog state
	dialog dialog

	// Notice state
	notice notice
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 6
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		cache:       opts.Cache,
		coord:       opts.Coordinator,
		notices:     opts.Notices,
		pageSize:    pageSize,
		prefsPath:   prefsPath,
		log:         opts.Logger,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentPage: 1,
	}
	if opts.Cache != nil {
		m.snapshot = opts.Cache.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.cache != nil {
		cmds = append(cmds, listenUpdatesCmd(m.ctx, m.cache))
	}
	if m.notices != nil {
		cmds = append(cmds, listenNoticesCmd(m.ctx, m.notices))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, listenUpdatesCmd(m.ctx, m.cache)

	case noticeMsg:
		m.notice.show(mutate.Notice(msg))
		return m, tea.Batch(
			noticeExpireCmd(m.notice.seq),
			listenNoticesCmd(m.ctx, m.notices),
		)

	case noticeExpiredMsg:
		m.notice.expire(int(msg))
		return m, nil

	case mutationSettledMsg:
		if msg.dialog == m.dialog.id {
			m.dialog.settle(msg.err)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	contentHeight := m.height - 3 // header + command bar + status line
	if m.dialog.phase != dialogClosed {
		b.WriteString(m.dialog.render(m.theme, m.width, contentHeight))
	} else {
		b.WriteString(m.renderList(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While a submission is in flight the dialog is locked: the request is
	// not cancellable, only its outcome is awaited.
	if m.dialog.phase == dialogPending {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.dialog.phase == dialogOpen {
		return m.handleDialogKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Warn().Err(err).Msg("save theme preference")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.cache != nil {
			m.cache.Invalidate()
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.dialog.openAdd()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if b := m.selectedBook(); b != nil {
			m.dialog.openEdit(*b)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if b := m.selectedBook(); b != nil {
			m.dialog.openDelete(*b)
		}
		return m, nil
	}

	return m.handleListKey(msg)
}

// handleDialogKey processes input while a dialog is open.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog.kind == mutate.KindDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm), msg.String() == "y":
			return m.submitDialog()
		case key.Matches(msg, m.keys.Cancel), msg.String() == "n":
			m.dialog.close()
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.dialog.close()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitDialog()

	case key.Matches(msg, m.keys.NextField):
		m.dialog.form.focusNext()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.dialog.form.focusPrev()
		return m, nil
	}

	cmd := m.dialog.form.update(msg)
	return m, cmd
}

// submitDialog validates input, locks the dialog, and starts the mutation.
func (m Model) submitDialog() (tea.Model, tea.Cmd) {
	if m.dialog.kind != mutate.KindDelete && !m.dialog.form.validate() {
		return m, nil
	}
	if !m.dialog.beginSubmit() {
		return m, nil
	}
	return m, submitCmd(m.ctx, m.coord, m.dialog.id, m.dialog.request())
}

// handleListKey processes navigation in the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	books := m.snapshot.Books
	totalPages := page.TotalPages(len(books), m.pageSize)
	if totalPages == 0 {
		return m, nil
	}
	lo, hi := page.Bounds(m.currentPage, m.pageSize, len(books))
	rows := hi - lo

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < rows-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = rows - 1
	case key.Matches(msg, m.keys.PrevPage):
		if page.HasPrevious(m.currentPage) {
			m.currentPage--
			m.selectedRow = 0
		}
	case key.Matches(msg, m.keys.NextPage):
		if page.HasNext(m.currentPage, totalPages) {
			m.currentPage++
			m.selectedRow = 0
		}
	}

	m.rememberSelection()
	return m, nil
}

// applySnapshot replaces the rendered collection, re-clamps the current
// page, and preserves the selection by id when the book still exists.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	books := snap.Books

	totalPages := page.TotalPages(len(books), m.pageSize)
	m.currentPage = page.Clamp(m.currentPage, totalPages)

	if m.selectedID > 0 {
		for i, b := range books {
			if b.ID == m.selectedID {
				m.currentPage = i/m.pageSize + 1
				m.selectedRow = i % m.pageSize
				return
			}
		}
	}

	// Selected book is gone; clamp the row into the current page.
	lo, hi := page.Bounds(m.currentPage, m.pageSize, len(books))
	if rows := hi - lo; m.selectedRow >= rows {
		m.selectedRow = max(0, rows-1)
	}
	m.rememberSelection()
}

// selectedBook returns the book under the cursor, nil when the page is empty.
func (m *Model) selectedBook() *library.Book {
	lo, hi := page.Bounds(m.currentPage, m.pageSize, len(m.snapshot.Books))
	idx := lo + m.selectedRow
	if idx < lo || idx >= hi {
		return nil
	}
	return &m.snapshot.Books[idx]
}

func (m *Model) rememberSelection() {
	if b := m.selectedBook(); b != nil {
		m.selectedID = b.ID
	} else {
		m.selectedID = 0
	}
}

// Messages

type snapshotMsg state.Snapshot

type noticeMsg mutate.Notice

type noticeExpiredMsg int

type mutationSettledMsg struct {
	dialog string
	err    error
}

// Commands

func listenUpdatesCmd(ctx context.Context, cache *state.Cache) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-cache.Updates():
			return snapshotMsg(cache.Snapshot())
		}
	}
}

func listenNoticesCmd(ctx context.Context, notices <-chan mutate.Notice) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case n := <-notices:
			return noticeMsg(n)
		}
	}
}

func submitCmd(ctx context.Context, coord *mutate.Coordinator, dialogID string, req mutate.Request) tea.Cmd {
	return func() tea.Msg {
		err := coord.Submit(ctx, dialogID, req)
		return mutationSettledMsg{dialog: dialogID, err: err}
	}
}

const noticeTTL = 4 * time.Second

func noticeExpireCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg(seq)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
