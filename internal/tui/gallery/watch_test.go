package gallery

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styled/internal/logger"
)

func TestWatcherSendsReloadOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	w, err := NewWatcher(path, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chan tea.Msg, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() ([]Entry, error) { return sampleEntries("Reloaded"), nil }, func(msg tea.Msg) { msgs <- msg })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("b"), 0o600))

	select {
	case msg := <-msgs:
		reload, ok := msg.(ReloadMsg)
		require.True(t, ok)
		require.NoError(t, reload.Err)
		require.Len(t, reload.Entries, 1)
		require.Equal(t, "Reloaded", reload.Entries[0].Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload message received")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
