// Package ui contains the Bubble Tea program that renders gopher menus and
// text pages. The Model owns every piece of interactive state; nothing outside
// Update mutates it.
//
// Message flow:
//   - User input arrives as tea.Msg values. Key presses that only need local
//     state (cursor movement, filtering, the menubar) are handled directly.
//     Key presses that open something post a message.Inbound onto the same
//     queue the backend writes to, so input and backend results are applied
//     in one FIFO order.
//   - waitForInbound blocks for the first queued message. Update applies it and
//     calls Pump.Tick, which drains the rest of the queue without waiting and
//     then advances the loop by one Step. Bubble Tea redraws once afterwards,
//     so a burst of results costs a single frame.
//   - Inbound messages are routed through a typed handler registry keyed by
//     the message's concrete type; tea.Msg values use a second registry.
//   - Requests for the backend go through command.Bus. A failed send means the
//     backend is gone; the Model records the error (see Fatal) and quits.
//
// State ownership:
//   - internal/ui/state.Router holds the listing and text panes. Switching
//     panes keeps the other pane's content.
//   - internal/dialog provides the modal forms; dialogs.go opens them and
//     turns submitted forms into follow-up messages.
//   - internal/menu.Registry holds the menubar, including the bounded History
//     items and the Bookmarks items, kept current by the dispatcher.
package ui
