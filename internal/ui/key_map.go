package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	next    key.Binding
	enter   key.Binding
	back    key.Binding
	youtube key.Binding
	spotify key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "build")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		youtube: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "open on YouTube")),
		spotify: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "open on Spotify")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new playlist")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.next, k.enter},
		{k.youtube, k.spotify},
		{k.back, k.restart, k.quit},
	}
}
