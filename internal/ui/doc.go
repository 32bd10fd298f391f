// Package ui contains the Bubble Tea program that powers the reading
// application. The package is structured so the Model type focuses on
// message orchestration, while dedicated helpers own the reading
// surface, picker navigation, input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so
//     every tea.Msg is handled by a focused function: key presses,
//     pager commit/frame ticks, backend metadata events, async content
//     loads, and store action results.
//   - Reader helpers (internal/ui/reader.go) translate key presses into
//     pager ordinal events and own the controller sinks (feedback,
//     display channel, commit notification). Picker helpers
//     (internal/ui/navigation.go) manage the stack of picker levels and
//     perform silent jumps. Filter/input helpers (internal/ui/input.go)
//     keep all text entry concerns isolated from the event loop.
//
// State ownership:
//   - Window state for each surface lives in a pager.Controller; the
//     chapter and topic surfaces each own one, and the display channel
//     is the single shared resource between them.
//   - Picker level state lives in internal/ui/state.Level, which tracks
//     items, filtering, and viewport calculations.
//   - Book and topic metadata stores are provided by internal/state and
//     kept in sync by the dispatcher so catalogs always reflect the
//     current database contents.
//   - Store actions (position saves, bookmark toggles) run through the
//     internal/ui/command bus, which executes them asynchronously.
//
// Backend interactions:
//   - A backend.Watcher streams metadata events; Update waits for those
//     events and hands them to applyBackendEvent, which rebuilds the
//     catalogs, re-resolves each surface's position from its last-known
//     domain key, and resets the controllers.
//   - Chapter and topic text loads run via tea.Cmd values returned by
//     loadCurrentBodyCmd; stale responses are dropped when the surface
//     has already moved on.
package ui
