package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/tintty/internal/storage"
	"github.com/lunit-heesungyang/tintty/internal/ui"
)

// Model is the main Bubble Tea model: a scheme file picker with a live
// swatch preview of whichever file is selected.
type Model struct {
	// Core dependencies
	storage *storage.Storage
	keys    KeyMap
	styles  Styles

	// Window dimensions
	width  int
	height int

	// Scheme list state
	entries  []storage.Entry
	selected int

	// Preview of the selected entry, or the load error
	preview    string
	previewErr error

	// UI state
	statusMsg string

	// Sub-components
	viewport viewport.Model
}

// New creates a new TUI model browsing schemes under dir
func New(dir string) Model {
	return Model{
		storage:  storage.New(dir),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		viewport: viewport.New(40, 20),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.refreshEntries()
}

type entriesMsg struct {
	entries []storage.Entry
	err     error
}

type convertedMsg struct {
	path string
	err  error
}

func (m Model) refreshEntries() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.storage.ListSchemes()
		return entriesMsg{entries: entries, err: err}
	}
}

func (m Model) convertSelected() tea.Cmd {
	if m.selected >= len(m.entries) {
		return nil
	}
	entry := m.entries[m.selected]
	return func() tea.Msg {
		path, err := storage.WriteConverted(entry.Path)
		return convertedMsg{path: path, err: err}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width/2 - 4
		m.viewport.Height = m.height - 3
		return m, nil

	case entriesMsg:
		if msg.err != nil {
			m.statusMsg = msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		if m.selected >= len(m.entries) {
			m.selected = 0
		}
		m.loadPreview()
		return m, nil

	case convertedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("convert failed: %v", msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("wrote %s", msg.path)
		return m, m.refreshEntries()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
				m.loadPreview()
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.loadPreview()
			}
		case key.Matches(msg, m.keys.Convert):
			return m, m.convertSelected()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refreshEntries()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) loadPreview() {
	m.preview = ""
	m.previewErr = nil
	if m.selected >= len(m.entries) {
		return
	}

	sch, err := storage.Load(m.entries[m.selected].Path)
	if err != nil {
		m.previewErr = err
		return
	}
	m.preview = ui.RenderScheme(sch)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Reserve 3 lines for header(1) + footer(1) + status(1)
	listWidth := m.width / 2
	previewWidth := m.width - listWidth
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}

	header := m.styles.Header.Render(fmt.Sprintf("tintty [%s]", m.storage.Dir))

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	previewPanel := m.styles.PreviewPanel.
		Width(previewWidth).
		Render(m.renderPreview(contentHeight))

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	footer := m.styles.Footer.Render("[c/↵]onvert [r]efresh [q]uit")
	status := m.styles.StatusBar.Render(m.statusMsg)

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
		status,
	)

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderList(width, height int) string {
	var lines []string

	if len(m.entries) == 0 {
		lines = append(lines, "No scheme files found")
	} else {
		for i, entry := range m.entries {
			if i >= height {
				break
			}

			tag := "[" + entry.Format + "]"
			name := entry.Name
			avail := width - runewidth.StringWidth(tag) - 1
			if runewidth.StringWidth(name) > avail {
				name = runewidth.Truncate(name, avail-3, "...")
			}

			var line string
			if i == m.selected {
				line = m.styles.SelectedItem.Render(name + " " + tag)
			} else {
				line = m.styles.NormalItem.Render(name) + " " + m.styles.FormatTag.Render(tag)
			}
			lines = append(lines, line)
		}
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(height int) string {
	var content string
	switch {
	case m.previewErr != nil:
		content = lipgloss.NewStyle().Foreground(ui.ColorError).Render(m.previewErr.Error())
	case m.preview != "":
		content = m.preview
	default:
		content = "Select a scheme file"
	}

	m.viewport.Height = height
	m.viewport.SetContent(content)
	return m.viewport.View()
}
