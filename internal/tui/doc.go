// Package tui provides the terminal user interface for mergelist.
//
// The interface is a single Bubble Tea program showing one configured screen:
// a header, the merged list hosted by the listview package, a status bar with
// the block toggles and the current section, and the most recent log line.
//
// # Components
//
// listview (internal/tui/listview/):
//   - Hosts a merge.Adapter inside a bubbles list
//   - Renders visible rows through the adapter with a per-view-type recycle pool
//   - Re-queries the adapter after it reports a change
//
// components (internal/tui/components/):
//   - Header and status bar
//
// design (internal/tui/design/):
//   - Colours, row styles and icons
//
// # Key Bindings
//
//   - ↑/k, ↓/j: move the cursor
//   - [ and ]: jump to the previous or next section
//   - 1-9: show or hide the n-th block
//   - enter: select the row under the cursor (disabled rows are refused)
//   - y: copy the row under the cursor to the clipboard
//   - D: toggle dark/light mode
//   - h: toggle help
//   - q, ctrl+c: quit
//
// Log output is delivered over the channel returned by logging.InitForTUI and
// shown one line at a time below the status bar.
package tui
