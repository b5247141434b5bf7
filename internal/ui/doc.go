// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for building a birthday playlist:
//  1. [FormView] : Enter a birth date and songs-per-year count
//  2. [BuildView] : Monitor per-year chart fetches in real time
//  3. [PlaylistView] : Browse the finished playlist and open search links
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the PlaylistEngine, providing non-blocking status reporting during builds.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
