package state

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"github.com/quill8/shelf/internal/library"
)

// Status describes what the snapshot currently represents.
type Status int

const (
	// StatusPending means no fetch has settled yet.
	StatusPending Status = iota
	// StatusReady means the snapshot holds the last successful list result.
	StatusReady
	// StatusError means the last fetch failed. Data from an earlier
	// successful fetch, if any, is preserved.
	StatusError
)

// Snapshot is the client's whole-collection view of the remote catalog.
// It is always replaced wholesale; there is no partial update.
type Snapshot struct {
	Books       []library.Book
	Status      Status
	Err         error
	HasLoaded   bool // at least one fetch has succeeded
	LastUpdated time.Time
}

// FetchFunc produces a fresh collection snapshot from the remote service.
type FetchFunc func(ctx context.Context) ([]library.Book, error)

const (
	listRetries     = 2
	listRetryBase   = 250 * time.Millisecond
	updateQueueSize = 1
)

// Cache holds the last known catalog snapshot and is its only writer.
// Mutations never touch it directly; they call Invalidate and the cache
// refetches the whole collection in the background. Invalidations that
// arrive while a fetch is outstanding coalesce into that fetch, so
// overlapping mutations cost a single list call.
type Cache struct {
	ctx     context.Context
	fetch   FetchFunc
	log     zerolog.Logger
	updates chan struct{}

	mu       sync.Mutex
	snapshot Snapshot
	fetching bool
}

// New builds a Cache around fetch. The context bounds all background
// fetches; cancelling it stops any refetch in flight.
func New(ctx context.Context, fetch FetchFunc, log zerolog.Logger) *Cache {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Cache{
		ctx:      ctx,
		fetch:    fetch,
		log:      log,
		updates:  make(chan struct{}, updateQueueSize),
		snapshot: Snapshot{Status: StatusPending},
	}
}

// Invalidate marks the snapshot stale and schedules exactly one background
// refetch. Calling it while a fetch is outstanding is a no-op: the pending
// fetch satisfies every invalidation issued before it settles.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	if c.fetching {
		c.mu.Unlock()
		return
	}
	c.fetching = true
	c.mu.Unlock()

	go c.refetch()
}

// Snapshot returns a copy of the current snapshot.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snapshot
	snap.Books = cloneBooks(c.snapshot.Books)
	return snap
}

// Updates signals once per settled fetch. The channel is buffered and never
// blocks the cache; a slow receiver simply collapses consecutive signals.
func (c *Cache) Updates() <-chan struct{} {
	return c.updates
}

func (c *Cache) refetch() {
	books, err := c.fetchWithRetry(c.ctx)

	c.mu.Lock()
	c.fetching = false
	c.snapshot.LastUpdated = time.Now()
	if err != nil {
		// Keep stale data visible; only the status and error change.
		c.snapshot.Status = StatusError
		c.snapshot.Err = err
		c.log.Warn().Err(err).Msg("catalog refetch failed")
	} else {
		c.snapshot.Books = cloneBooks(books)
		c.snapshot.Status = StatusReady
		c.snapshot.Err = nil
		c.snapshot.HasLoaded = true
		c.log.Debug().Int("books", len(books)).Msg("catalog refetched")
	}
	c.mu.Unlock()

	select {
	case c.updates <- struct{}{}:
	default:
	}
}

// fetchWithRetry runs the list call with bounded exponential backoff.
// Mutating calls never retry; a stale read is harmless, a doubled write
// is not.
func (c *Cache) fetchWithRetry(ctx context.Context) ([]library.Book, error) {
	var books []library.Book
	var lastErr error

	backoff := retry.WithMaxRetries(listRetries, retry.NewExponential(listRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var ferr error
		books, ferr = c.fetch(ctx)
		if ferr != nil {
			lastErr = ferr
			return retry.RetryableError(ferr)
		}
		return nil
	})
	if err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}
	return books, nil
}

func cloneBooks(books []library.Book) []library.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]library.Book, len(books))
	copy(dup, books)
	return dup
}
