package ui

import (
	"errors"
	"testing"

	"github.com/quill8/shelf/internal/library"
	"github.com/quill8/shelf/internal/mutate"
)

func TestDialog_AddLifecycleSuccess(t *testing.T) {
	var d dialog

	d.openAdd()
	if d.phase != dialogOpen || d.kind != mutate.KindCreate || d.id != "add" {
		t.Fatalf("after openAdd: %+v, want open add dialog", d)
	}

	if !d.beginSubmit() {
		t.Fatalf("beginSubmit returned false for open dialog")
	}
	if d.phase != dialogPending {
		t.Fatalf("phase = %v, want pending", d.phase)
	}

	d.settle(nil)
	if d.phase != dialogClosed {
		t.Fatalf("phase = %v after success, want closed", d.phase)
	}
	if d.id != "" {
		t.Fatalf("dialog state not reset after success: %+v", d)
	}
}

func TestDialog_FailureReturnsToOpen(t *testing.T) {
	var d dialog
	d.openEdit(library.Book{ID: 7, Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", TotalPages: 412, PublishedYear: 1965})

	if d.id != "update/7" {
		t.Fatalf("dialog id = %q, want update/7", d.id)
	}
	if got := d.form.value(fieldTitle); got != "Dune" {
		t.Fatalf("form not seeded: title = %q", got)
	}

	if !d.beginSubmit() {
		t.Fatalf("beginSubmit returned false")
	}
	d.settle(errors.New("boom"))
	if d.phase != dialogOpen {
		t.Fatalf("phase = %v after failure, want open (dialog stays editable)", d.phase)
	}
	if got := d.form.value(fieldTitle); got != "Dune" {
		t.Fatalf("form input lost after failure: title = %q", got)
	}
}

func TestDialog_CloseIgnoredWhilePending(t *testing.T) {
	var d dialog
	d.openDelete(library.Book{ID: 9, Title: "Solaris"})
	if !d.beginSubmit() {
		t.Fatalf("beginSubmit returned false")
	}

	if d.close() {
		t.Fatalf("close returned true while pending")
	}
	if d.phase != dialogPending {
		t.Fatalf("phase = %v, want still pending after close attempt", d.phase)
	}

	d.settle(nil)
	if d.phase != dialogClosed {
		t.Fatalf("phase = %v, want closed after settle", d.phase)
	}
}

func TestDialog_IllegalTransitionsAreNoOps(t *testing.T) {
	var d dialog

	// Submitting or settling a closed dialog changes nothing.
	if d.beginSubmit() {
		t.Fatalf("beginSubmit succeeded on closed dialog")
	}
	d.settle(nil)
	if d.phase != dialogClosed {
		t.Fatalf("settle moved a closed dialog to %v", d.phase)
	}

	// Opening a dialog twice keeps the first instance.
	d.openDelete(library.Book{ID: 1, Title: "first"})
	d.openAdd()
	if d.kind != mutate.KindDelete || d.title != "first" {
		t.Fatalf("second open replaced an active dialog: %+v", d)
	}
}

func TestDialog_RequestShape(t *testing.T) {
	var d dialog
	d.openDelete(library.Book{ID: 42, Title: "Hyperion"})

	req := d.request()
	if req.Kind != mutate.KindDelete || req.TargetID != 42 {
		t.Fatalf("delete request = %+v, want kind=delete target=42", req)
	}
	if req.Input.Title != "" {
		t.Fatalf("delete request carries form input: %+v", req.Input)
	}
}
