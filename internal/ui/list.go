package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/chartday/internal/models"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.song.Title, i.song.Artist)
}
func (i songItem) Description() string {
	return fmt.Sprintf("Year: %d", i.song.Year)
}
