package ui

import (
	"strings"
	"testing"

	"github.com/quill8/shelf/internal/library"
	"github.com/quill8/shelf/internal/state"
)

func testModel(pageSize int, books []library.Book) Model {
	m := New(Options{PageSize: pageSize})
	m.ready = true
	m.width = 100
	m.height = 30
	m.snapshot = state.Snapshot{
		Books:     books,
		Status:    state.StatusReady,
		HasLoaded: true,
	}
	return m
}

func makeBooks(n int) []library.Book {
	books := make([]library.Book, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, library.Book{
			ID:            int64(i),
			Title:         "Book " + string(rune('A'+i-1)),
			Author:        "Author",
			Genre:         "Fiction",
			TotalPages:    100 + i,
			PublishedYear: 1990 + i,
		})
	}
	return books
}

func TestApplySnapshot_ReclampsAfterShrink(t *testing.T) {
	m := testModel(12, makeBooks(13))
	m.currentPage = 2
	m.selectedRow = 0

	// The only book on page 2 is deleted; the view must not stay there.
	m.applySnapshot(state.Snapshot{
		Books:     makeBooks(12),
		Status:    state.StatusReady,
		HasLoaded: true,
	})

	if m.currentPage != 1 {
		t.Fatalf("currentPage = %d after shrink, want 1", m.currentPage)
	}
	if b := m.selectedBook(); b == nil {
		t.Fatalf("no selection after re-clamp")
	}
}

func TestApplySnapshot_PreservesSelectionByID(t *testing.T) {
	m := testModel(6, makeBooks(8))
	m.currentPage = 2
	m.selectedRow = 1 // id 8
	m.rememberSelection()
	if m.selectedID != 8 {
		t.Fatalf("selectedID = %d, want 8", m.selectedID)
	}

	// Id 7 is deleted; id 8 moves onto page 2 row 0 and stays selected.
	books := makeBooks(8)
	books = append(books[:6], books[7])
	m.applySnapshot(state.Snapshot{Books: books, Status: state.StatusReady, HasLoaded: true})

	b := m.selectedBook()
	if b == nil || b.ID != 8 {
		t.Fatalf("selected book = %+v, want id 8", b)
	}
}

func TestSelectedBook_EmptyCollection(t *testing.T) {
	m := testModel(6, nil)
	if b := m.selectedBook(); b != nil {
		t.Fatalf("selectedBook = %+v on empty collection, want nil", b)
	}
}

func TestRenderList_EmptyCollectionRendersNoRowsOrPager(t *testing.T) {
	m := testModel(6, nil)
	out := m.renderList(20)
	if strings.Contains(out, "AUTHOR") {
		t.Fatalf("empty collection rendered the table header:\n%s", out)
	}
	if strings.Contains(out, "next") || strings.Contains(out, "prev") {
		t.Fatalf("empty collection rendered pagination controls:\n%s", out)
	}
}

func TestRenderList_SinglePageHidesPager(t *testing.T) {
	m := testModel(6, makeBooks(4))
	out := m.renderList(20)
	if strings.Contains(out, "next") || strings.Contains(out, "prev") {
		t.Fatalf("single page rendered pagination controls:\n%s", out)
	}
}

func TestRenderList_ScenarioEightBooksSixPerPage(t *testing.T) {
	m := testModel(6, makeBooks(8))

	out := m.renderList(20)
	if !strings.Contains(out, "Book A") || strings.Contains(out, "Book G") {
		t.Fatalf("page 1 slice wrong:\n%s", out)
	}
	if !strings.Contains(out, "next") {
		t.Fatalf("page 1 of 2 missing next control:\n%s", out)
	}

	m.currentPage = 2
	out = m.renderList(20)
	if !strings.Contains(out, "Book G") || !strings.Contains(out, "Book H") || strings.Contains(out, "Book A") {
		t.Fatalf("page 2 slice wrong:\n%s", out)
	}
	if strings.Contains(out, "next") {
		t.Fatalf("last page rendered a next control:\n%s", out)
	}
	if !strings.Contains(out, "prev") {
		t.Fatalf("page 2 missing prev control:\n%s", out)
	}
}

func TestRenderList_FirstLoadErrorIsBlocking(t *testing.T) {
	m := New(Options{PageSize: 6})
	m.ready = true
	m.width = 100
	m.height = 30
	m.snapshot = state.Snapshot{Status: state.StatusError, Err: errFake}

	out := m.renderList(20)
	if !strings.Contains(out, "Cannot reach the catalog service") {
		t.Fatalf("first-load error not surfaced:\n%s", out)
	}
}

var errFake = &library.APIError{StatusCode: 500}
