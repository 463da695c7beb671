// Package mutate drives create, update, and delete calls against the remote
// catalog and keeps the cached collection consistent with their outcomes.
//
// Each dialog instance submits at most one request at a time: a second
// submit for the same dialog while the first is in flight is rejected, not
// queued. Distinct dialogs proceed independently and may settle in any
// order; each successful one invalidates the cache exactly once, and the
// cache coalesces overlapping invalidations into a single refetch.
package mutate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/quill8/shelf/internal/library"
)

// Kind identifies the mutation being performed.
type Kind int

const (
	KindCreate Kind = iota
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Request describes one user-submitted mutation. It is transient: built on
// submit, settled once, never persisted.
type Request struct {
	Kind     Kind
	Input    library.BookInput // create and update
	TargetID int64             // update and delete
}

// Level classifies a notice for display.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Notice is a human-readable mutation outcome for the notification surface.
type Notice struct {
	Level Level
	Text  string
}

// Notifier receives mutation outcomes. The UI's status line is the usual
// implementation.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Mutator is the subset of the catalog client the coordinator calls.
type Mutator interface {
	CreateBook(ctx context.Context, input library.BookInput) error
	UpdateBook(ctx context.Context, id int64, input library.BookInput) error
	DeleteBook(ctx context.Context, id int64) error
}

// Invalidator marks the cached collection stale after a successful mutation.
type Invalidator interface {
	Invalidate()
}

// ErrPending is returned when a dialog submits while its previous request is
// still in flight.
var ErrPending = errors.New("a request for this dialog is already pending")

// Coordinator wraps each mutation in the idle→pending→settled lifecycle.
type Coordinator struct {
	api      Mutator
	cache    Invalidator
	notifier Notifier
	log      zerolog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// New builds a Coordinator. notifier may be nil when no notification surface
// exists (tests).
func New(api Mutator, cache Invalidator, notifier Notifier, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		api:      api,
		cache:    cache,
		notifier: notifier,
		log:      log,
		pending:  make(map[string]struct{}),
	}
}

// DialogID names one dialog instance for submission serialization. The add
// dialog is a singleton; edit and delete dialogs are per-entity.
func DialogID(kind Kind, targetID int64) string {
	if kind == KindCreate {
		return "add"
	}
	return fmt.Sprintf("%s/%d", kind, targetID)
}

// Submit runs one mutation to completion. It returns ErrPending when the
// dialog already has a request in flight. Otherwise it blocks on the remote
// call, emits exactly one notice, invalidates the cache iff the call
// succeeded, and returns the call's error so the dialog can settle.
func (c *Coordinator) Submit(ctx context.Context, dialogID string, req Request) error {
	if err := c.begin(dialogID); err != nil {
		return err
	}
	defer c.finish(dialogID)

	if err := c.call(ctx, req); err != nil {
		c.log.Warn().Err(err).Stringer("kind", req.Kind).Int64("target", req.TargetID).Msg("mutation failed")
		c.notify(Notice{Level: LevelError, Text: failureText(req.Kind, err)})
		return err
	}

	c.log.Info().Stringer("kind", req.Kind).Int64("target", req.TargetID).Msg("mutation succeeded")
	c.notify(Notice{Level: LevelSuccess, Text: successText(req.Kind)})
	c.cache.Invalidate()
	return nil
}

// Pending reports whether the dialog has a request in flight.
func (c *Coordinator) Pending(dialogID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[dialogID]
	return ok
}

func (c *Coordinator) begin(dialogID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pending[dialogID]; ok {
		return ErrPending
	}
	c.pending[dialogID] = struct{}{}
	return nil
}

func (c *Coordinator) finish(dialogID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, dialogID)
}

func (c *Coordinator) notify(n Notice) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(n)
}

func (c *Coordinator) call(ctx context.Context, req Request) error {
	switch req.Kind {
	case KindCreate:
		return c.api.CreateBook(ctx, req.Input)
	case KindUpdate:
		return c.api.UpdateBook(ctx, req.TargetID, req.Input)
	case KindDelete:
		return c.api.DeleteBook(ctx, req.TargetID)
	default:
		return fmt.Errorf("unknown mutation kind %d", req.Kind)
	}
}

func successText(kind Kind) string {
	switch kind {
	case KindCreate:
		return "Book added successfully"
	case KindUpdate:
		return "Book updated successfully"
	case KindDelete:
		return "Book deleted successfully"
	default:
		return "Done"
	}
}

// failureText prefers the remote service's own message when the response
// carried one.
func failureText(kind Kind, err error) string {
	var apiErr *library.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}
	switch kind {
	case KindCreate:
		return "Failed to add book"
	case KindUpdate:
		return "Failed to update book"
	case KindDelete:
		return "Failed to delete book"
	default:
		return "Request failed"
	}
}
