package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	headerHeight  = 3
	footerHeight  = 2
)

// Model is the Bubbletea state of the component gallery.
type Model struct {
	title    string
	entries  []Entry
	selected int
	err      error

	viewport viewport.Model
	keys     keyMap
	help     help.Model

	width  int
	height int
}

// NewModel creates a gallery showing entries under title.
func NewModel(title string, entries []Entry) Model {
	m := Model{
		title:    title,
		entries:  entries,
		viewport: viewport.New(defaultWidth, defaultHeight),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight + headerHeight + footerHeight,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the index of the entry on screen.
func (m Model) Selected() int {
	return m.selected
}

// Entries returns the entries currently shown.
func (m Model) Entries() []Entry {
	return m.entries
}

// Err returns the last reload error, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(emptyStyle.Render("no components"))
		return
	}
	entry := m.entries[m.selected]
	content := ""
	if entry.Render != nil {
		content = entry.Render(m.viewport.Width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m *Model) clampSelection() {
	switch {
	case len(m.entries) == 0:
		m.selected = 0
	case m.selected >= len(m.entries):
		m.selected = len(m.entries) - 1
	case m.selected < 0:
		m.selected = 0
	}
}
