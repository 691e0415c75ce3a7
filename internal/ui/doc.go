// Package ui contains the Bubble Tea program that renders the portfolio: the
// hero, one content card at a time, the command palette overlay and the
// aurora strip.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Every tea.Msg is
//     routed through a typed handler registry built once in NewModel, so the
//     keyboard handler is installed exactly once and lives as long as the
//     model.
//   - Key presses go to navigation.go. The toggle chord (ctrl+k, alt+k) is
//     consumed before anything else; while the palette is open the remaining
//     keys either drive the palette.Controller (esc, up, down, enter) or edit
//     its query (input.go). While it is closed they move the cursor of the
//     active list panel or copy the row's link.
//   - Mouse events are hit-tested against bubblezone regions marked during
//     View (mouse.go).
//   - A motion.Loop delivers frames on a channel. waitForFrame turns each one
//     into a frameMsg; the handler advances the motion.Driver and waits for
//     the next frame, so the driver is only ever touched from Update.
//   - Link copies run through the command bus and come back as
//     command.Result messages.
//
// State ownership:
//   - Palette state (open flag, query, highlight, filtered commands) lives in
//     internal/palette.Controller.
//   - The active panel is owned by the Model and changes only when a palette
//     selection is confirmed.
//   - List panels keep their cursor and viewport in internal/ui/state.List.
package ui
