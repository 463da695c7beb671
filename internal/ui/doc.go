// Package ui provides the Bubble Tea terminal interface for shelf.
//
// # Architecture
//
// Model is the root tea.Model. It renders from the state.Cache snapshot and
// never mutates it: user actions go through the mutation coordinator, whose
// successful calls invalidate the cache, and the resulting refetch flows
// back into the view as a snapshotMsg.
//
//	cache.Updates() ──→ snapshotMsg ──→ re-clamp page, re-render slice
//	key press ──→ dialog ──→ coordinator.Submit ──→ mutationSettledMsg
//	coordinator notices ──→ noticeMsg ──→ status line (expires on a timer)
//
// # Views
//
//   - List view: one page of books with a sliding page-number footer.
//   - Dialogs: add/edit forms and the delete confirmation, each an explicit
//     closed/open/pending state machine; close requests are ignored while a
//     submission is in flight.
//   - Help overlay and theme cycling, persisted via the prefs package.
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program in the alt screen.
//  2. Long-running commands block on the cache update and notice channels
//     and re-arm themselves after each message.
//  3. Mutations run in commands; the UI stays responsive while they settle.
package ui
