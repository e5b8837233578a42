package gallery

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styled/internal/sheet"
)

func sampleEntries(names ...string) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		name := name
		entries = append(entries, Entry{
			Name:    name,
			Details: "target text",
			Render:  func(width int) string { return fmt.Sprintf("<%s@%d>", name, width) },
		})
	}
	return entries
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	m := NewModel("demo", sampleEntries("A", "B", "C"))
	require.Equal(t, 0, m.Selected())

	m, _ = update(t, m, runes("n"))
	assert.Equal(t, 1, m.Selected())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.Selected())
	m, _ = update(t, m, runes("l"))
	assert.Equal(t, 2, m.Selected())

	m, _ = update(t, m, runes("h"))
	assert.Equal(t, 1, m.Selected())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Selected())
	m, _ = update(t, m, runes("p"))
	assert.Equal(t, 0, m.Selected())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, NewModel("demo", nil), msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowSizeResizesViewport(t *testing.T) {
	t.Parallel()

	m := NewModel("demo", sampleEntries("A"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Equal(t, 60, m.viewport.Width)
	assert.Equal(t, 30-headerHeight-footerHeight, m.viewport.Height)
	assert.Contains(t, m.View(), "<A@60>")
}

func TestReloadReplacesEntriesAndClampsSelection(t *testing.T) {
	t.Parallel()

	m := NewModel("demo", sampleEntries("A", "B", "C"))
	m, _ = update(t, m, runes("n"))
	m, _ = update(t, m, runes("n"))
	require.Equal(t, 2, m.Selected())

	m, _ = update(t, m, ReloadMsg{Entries: sampleEntries("X")})

	assert.Equal(t, 0, m.Selected())
	require.Len(t, m.Entries(), 1)
	assert.Contains(t, m.View(), "X")
	assert.NoError(t, m.Err())
}

func TestReloadErrorKeepsEntries(t *testing.T) {
	t.Parallel()

	m := NewModel("demo", sampleEntries("A", "B"))
	m, _ = update(t, m, ReloadMsg{Err: errors.New("bad sheet")})

	require.Len(t, m.Entries(), 2)
	assert.EqualError(t, m.Err(), "bad sheet")
	assert.Contains(t, m.View(), "reload failed: bad sheet")

	m, _ = update(t, m, ReloadMsg{Entries: sampleEntries("A")})
	assert.NoError(t, m.Err())
	assert.NotContains(t, m.View(), "reload failed")
}

func TestViewShowsSelectedEntry(t *testing.T) {
	t.Parallel()

	m := NewModel("demo", sampleEntries("A", "B"))
	view := m.View()

	assert.Contains(t, view, "styled • demo")
	assert.Contains(t, view, "1/2")
	assert.Contains(t, view, "<A@80>")
	assert.Contains(t, view, "target text")
	assert.Contains(t, view, "next")
}

func TestViewWithoutEntries(t *testing.T) {
	t.Parallel()

	assert.Contains(t, NewModel("empty", nil).View(), "no components")
}

func TestFromCatalog(t *testing.T) {
	t.Parallel()

	s, err := sheet.Parse("demo.yaml", sheet.FormatYAML, []byte(`version: 1.0.0
name: demo
components:
  - name: Label
    target: text
    attrs:
      - props: {children: hello}
    styles: "padding: 0 1;"
`))
	require.NoError(t, err)
	catalog, err := sheet.Build(s, nil)
	require.NoError(t, err)

	entries := FromCatalog(catalog)
	require.Len(t, entries, 1)
	assert.Equal(t, "Label", entries[0].Name)
	assert.Contains(t, entries[0].Details, "target text")
	assert.Contains(t, entries[0].Details, "1 attrs")
	assert.Equal(t, " hello ", entries[0].Render(0))
	assert.Equal(t, " he", entries[0].Render(3))
	assert.Nil(t, FromCatalog(nil))
}
