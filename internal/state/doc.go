// Package state caches the client's view of the remote book catalog.
//
// # Overview
//
// The Cache is the single source of truth the UI renders from. It holds one
// whole-collection Snapshot and exposes exactly one mutation primitive:
// Invalidate, which marks the snapshot stale and schedules a background
// refetch. Mutations never splice entities into the snapshot; a successful
// create, edit, or delete simply invalidates and the next list call rebuilds
// the view.
//
// # Data Flow
//
//	Mutation coordinator:              UI:
//	┌─────────────────────┐           ┌──────────────────────┐
//	│ remote call succeeds│           │ <-cache.Updates()    │
//	│        ↓            │           │        ↓             │
//	│ cache.Invalidate()  │──fetch──→ │ cache.Snapshot()     │
//	└─────────────────────┘ (1 max)   │        ↓             │
//	                                  │ re-render page       │
//	                                  └──────────────────────┘
//
// # Guarantees
//
//   - Invalidations issued while a fetch is outstanding coalesce into it;
//     overlapping mutations never fan out into duplicate list calls.
//   - A failed refetch preserves the previous snapshot (stale but visible)
//     and records the error. Before the first successful fetch there is no
//     previous snapshot, so consumers render an explicit error state.
//   - Snapshot returns defensive copies; the cache is the only writer.
//   - The list call retries with bounded exponential backoff. Mutations are
//     not retried anywhere in the client.
package state
