// Package tui provides a Bubble Tea terminal user interface for vgmdb-tagger.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/vgmdb-tagger/internal/config"
	"github.com/handiism/vgmdb-tagger/internal/lookup"
	"github.com/handiism/vgmdb-tagger/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateSearching
	StateResults
	StateLoadingAlbum
	StateDetail
	StateError
)

// headerHeight is the number of lines above the detail viewport.
const headerHeight = 4

// Message types
type (
	// SearchDoneMsg is sent when a search completes.
	SearchDoneMsg struct {
		Results *lookup.SearchResponse
		Err     error
	}

	// AlbumDoneMsg is sent when an album record has been fetched.
	AlbumDoneMsg struct {
		Album *model.AlbumDetail
		Err   error
	}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	client    *lookup.Client
	err       error

	// displayLanguage is the language shown first for titles.
	displayLanguage string

	// Search results
	results *lookup.SearchResponse
	cursor  int

	// Selected album
	album     *model.AlbumDetail
	languages []string
	language  int

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model backed by client. Titles are shown in
// displayLanguage where available.
func NewModel(client *lookup.Client, displayLanguage string) Model {
	ti := textinput.New()
	ti.Placeholder = "final fantasy"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		client:    client,
		ctx:       ctx,

		displayLanguage: displayLanguage,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-2, 5)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateDetail:
				if m.results != nil && m.results.Len() > 1 {
					m.state = StateResults
					return m, nil
				}
				return m.reset(), nil
			case StateResults, StateError:
				return m.reset(), nil
			case StateSearching, StateLoadingAlbum:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
				return m, nil
			}

		case "enter":
			switch m.state {
			case StateInput:
				if query := strings.TrimSpace(m.textInput.Value()); query != "" {
					m.state = StateSearching
					return m, tea.Batch(m.search(query), m.spinner.Tick)
				}
			case StateResults:
				m.state = StateLoadingAlbum
				return m, tea.Batch(m.loadAlbum(m.cursor), m.spinner.Tick)
			}

		case "up", "k":
			if m.state == StateResults && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateResults && m.cursor < m.results.Len()-1 {
				m.cursor++
			}

		case "l":
			if m.state == StateDetail && len(m.languages) > 0 {
				m.language = (m.language + 1) % len(m.languages)
				m.viewport.SetContent(RenderAlbum(m.album, m.currentLanguage()))
				return m, nil
			}

		case "q":
			if m.state == StateResults || m.state == StateDetail || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case SearchDoneMsg:
		if m.state != StateSearching {
			return m, nil
		}
		switch {
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		case msg.Results.IsEmpty():
			m.state = StateError
			m.err = fmt.Errorf("no albums found for %q", m.textInput.Value())
		case msg.Results.Len() == 1:
			m.results = msg.Results
			m.cursor = 0
			m.state = StateLoadingAlbum
			cmds = append(cmds, m.loadAlbum(0))
		default:
			m.results = msg.Results
			m.cursor = 0
			m.state = StateResults
		}

	case AlbumDoneMsg:
		if m.state != StateLoadingAlbum {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.album = msg.Album
		m.languages = AlbumLanguages(msg.Album)
		m.language = indexOf(m.languages, m.displayLanguage)
		m.viewport.SetContent(RenderAlbum(m.album, m.currentLanguage()))
		m.viewport.GotoTop()
		m.state = StateDetail
		return m, nil
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateDetail:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// reset returns to the search input.
func (m Model) reset() Model {
	m.state = StateInput
	m.results = nil
	m.album = nil
	m.err = nil
	m.cursor = 0
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
	return m
}

func (m Model) currentLanguage() string {
	if len(m.languages) == 0 {
		return ""
	}
	return m.languages[m.language]
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ VGMdb Tagger"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Album metadata from VGMdb"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateSearching:
		b.WriteString(m.spinner.View() + " " + subtitleStyle.Render("Searching..."))
		b.WriteString("\n")
	case StateResults:
		b.WriteString(m.viewResults())
	case StateLoadingAlbum:
		b.WriteString(m.spinner.View() + " " + subtitleStyle.Render("Fetching album info..."))
		b.WriteString("\n")
	case StateDetail:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Search albums:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Found %d album(s):", m.results.Len())))
	b.WriteString("\n\n")

	for i, info := range m.results.Albums() {
		line := fmt.Sprintf("%-12s %-10s %s", displayCatalog(info.Catalog), info.ReleaseDate, info.Title.Preferred(m.displayLanguage))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: search • esc: quit"
	case StateSearching, StateLoadingAlbum:
		return "esc: cancel"
	case StateResults:
		return "↑/↓: select • enter: open • esc: new search • q: quit"
	case StateDetail:
		lang := m.currentLanguage()
		if lang == "" {
			lang = "-"
		}
		return fmt.Sprintf("l: language (%s) • ↑/↓: scroll • esc: back • q: quit", lang)
	case StateError:
		return "esc: new search • q: quit"
	}
	return ""
}

// search runs the query in the background.
func (m Model) search(query string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		results, err := client.SearchAlbums(ctx, query)
		return SearchDoneMsg{Results: results, Err: err}
	}
}

// loadAlbum fetches the full record of the result at index.
func (m Model) loadAlbum(index int) tea.Cmd {
	ctx, results := m.ctx, m.results
	return func() tea.Msg {
		album, err := results.IntoAlbum(ctx, index)
		return AlbumDoneMsg{Album: album, Err: err}
	}
}

// RenderAlbum formats an album record for display, naming titles and
// tracks in language where available.
func RenderAlbum(album *model.AlbumDetail, language string) string {
	var b strings.Builder

	header := fmt.Sprintf("%s\n\nCatalog:  %s\nReleased: %s\nTracks:   %d",
		album.Title.Preferred(language),
		displayCatalog(album.Catalog),
		album.ReleaseDate,
		album.TrackCount(),
	)
	if album.Link != "" {
		header += "\nLink:     " + album.Link
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	for _, disc := range album.Discs {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(disc.Title))
		b.WriteString("\n")
		for i, track := range disc.Tracks {
			b.WriteString(fmt.Sprintf("  %02d  %s\n", i+1, track.Name.Preferred(language)))
		}
	}

	return b.String()
}

// AlbumLanguages lists every language used by the album's title and track
// names, sorted.
func AlbumLanguages(album *model.AlbumDetail) []string {
	seen := map[string]bool{}
	for _, lang := range album.Title.Languages() {
		seen[lang] = true
	}
	for _, disc := range album.Discs {
		for _, track := range disc.Tracks {
			for _, lang := range track.Name.Languages() {
				seen[lang] = true
			}
		}
	}

	languages := make([]string, 0, len(seen))
	for lang := range seen {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}

func displayCatalog(catalog string) string {
	if catalog == "" {
		return "N/A"
	}
	return catalog
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return 0
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	client, err := lookup.NewClient(settings, nil, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(client, settings.DisplayLanguage), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
