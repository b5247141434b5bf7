package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/desertthunder/chartday/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	FormView ViewState = iota
	BuildView
	PlaylistView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	engine       *tasks.PlaylistEngine
	width        int
	height       int
	birthInput   textinput.Model
	countInput   textinput.Model
	focused      int
	formErr      error
	songList     list.Model
	playlist     *models.Playlist
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	err          error
	help         help.Model
	keys         keyMap
}

type progressUpdateMsg tasks.ProgressUpdate

type buildCompleteMsg struct {
	playlist *models.Playlist
	err      error
}

// NewModel creates a new TUI model around a configured engine. defaultCount
// seeds the songs-per-year field.
func NewModel(ctx context.Context, engine *tasks.PlaylistEngine, defaultCount int) *Model {
	birth := textinput.New()
	birth.Placeholder = "YYYY-MM-DD"
	birth.CharLimit = 10
	birth.Focus()

	count := textinput.New()
	count.Placeholder = "10"
	count.CharLimit = 3
	if defaultCount > 0 {
		count.SetValue(strconv.Itoa(defaultCount))
	}

	return &Model{
		ctx:        ctx,
		view:       FormView,
		engine:     engine,
		birthInput: birth,
		countInput: count,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init starts the cursor blink on the form inputs.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.songList.Width() != 0 {
			m.songList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case FormView:
			return m.handleFormKeys(msg)
		case BuildView:
			return m.handleBuildKeys(msg)
		case PlaylistView:
			return m.handlePlaylistKeys(msg)
		}

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case buildCompleteMsg:
		m.playlist = msg.playlist
		m.err = msg.err
		m.progressChan = nil
		m.view = PlaylistView
		if m.err == nil && m.playlist != nil {
			items := make([]list.Item, len(m.playlist.Songs))
			for i, song := range m.playlist.Songs {
				items[i] = songItem{song: song}
			}
			m.songList = list.New(items, list.NewDefaultDelegate(), 0, 0)
			m.songList.Title = fmt.Sprintf("Birthday Playlist (%s through %s)", m.playlist.From, m.playlist.To)
			m.songList.SetSize(m.width-4, m.height-8)
		}
		return m, nil
	}

	if m.view == PlaylistView {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case FormView:
		return m.renderForm()
	case BuildView:
		return m.renderBuild()
	case PlaylistView:
		return m.renderPlaylist()
	default:
		return ""
	}
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.focused = (m.focused + 1) % 2
		if m.focused == 0 {
			m.countInput.Blur()
			return m, m.birthInput.Focus()
		}
		m.birthInput.Blur()
		return m, m.countInput.Focus()
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.birthInput, cmd = m.birthInput.Update(msg)
	} else {
		m.countInput, cmd = m.countInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleBuildKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handlePlaylistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r", "esc":
		m.view = FormView
		m.playlist = nil
		m.err = nil
		m.progress = tasks.ProgressUpdate{}
		return m, m.birthInput.Focus()
	case "y":
		if song, ok := m.selectedSong(); ok {
			shared.OpenBrowser(song.YouTube)
		}
		return m, nil
	case "s":
		if song, ok := m.selectedSong(); ok {
			shared.OpenBrowser(song.Spotify)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) selectedSong() (models.Song, bool) {
	selected := m.songList.SelectedItem()
	if selected == nil {
		return models.Song{}, false
	}
	item, ok := selected.(songItem)
	return item.song, ok
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	birth, err := shared.ParseDate(m.birthInput.Value())
	if err != nil {
		m.formErr = fmt.Errorf("birth date must look like 1990-07-15")
		return m, nil
	}

	count, err := strconv.Atoi(m.countInput.Value())
	if err != nil || count < 1 {
		m.formErr = fmt.Errorf("count must be a positive integer")
		return m, nil
	}

	m.formErr = nil
	m.view = BuildView
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	progressChan := m.progressChan
	go func() {
		playlist, err := m.engine.Build(m.ctx, birth, count, progressChan)
		m.playlist = playlist
		m.err = err
		close(progressChan)
	}()

	return m, m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return buildCompleteMsg{playlist: m.playlist, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return buildCompleteMsg{playlist: m.playlist, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderForm() string {
	title := styles.title.Render("Build a birthday playlist")

	form := fmt.Sprintf(
		"Birth date\n%s\n\nSongs per year\n%s\n",
		m.birthInput.View(),
		m.countInput.View(),
	)

	var errLine string
	if m.formErr != nil {
		errLine = styles.err.Render(m.formErr.Error()) + "\n"
	}

	helpKeys := []key.Binding{m.keys.next, m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s%s", title, form, errLine, helpView)
}

func (m *Model) renderBuild() string {
	title := styles.title.Render("Building Playlist")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchChart:
		phase = fmt.Sprintf("Fetching charts (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.ChartFetched:
		phase = fmt.Sprintf("Fetched %d charts of %d", m.progress.Step, m.progress.Total)
	default:
		phase = "Working..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, styles.help.Render(m.progress.Message))
}

func (m *Model) renderPlaylist() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Build failed: %v\n\nPress r to start over, q to quit", m.err))
	}

	if m.playlist == nil {
		return styles.err.Render("No playlist available\n\nPress r to start over, q to quit")
	}

	if len(m.playlist.Songs) == 0 {
		notice := styles.warn.Render("No songs returned for this range.")
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.restart, m.keys.quit})
		return fmt.Sprintf("%s\n\n%s", notice, helpView)
	}

	summary := styles.ok.Render(fmt.Sprintf("Found %d songs.", len(m.playlist.Songs)))
	helpKeys := []key.Binding{m.keys.youtube, m.keys.spotify, m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", summary, m.songList.View(), helpView)
}
