package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func waitEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed early")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return core.Event{}
}

func TestRepository_Watch(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewRepository(Config{
		Path:     filepath.Join(dir, "notes.json"),
		Format:   FormatJSON,
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	require.NoError(t, repo.Save(ctx, fakeNotes(1)))
	e := waitEvent(t, events)
	assert.Equal(t, repo.Path, e.Path)
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)

	require.NoError(t, os.Remove(repo.Path))
	e = waitEvent(t, events)
	assert.Equal(t, core.EventDelete, e.Type)

	cancel()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("events channel not closed after cancel")
		}
	}
}

func TestRepository_WatchMissingDir(t *testing.T) {
	repo, err := NewRepository(Config{Path: filepath.Join(t.TempDir(), "gone", "notes.json")})
	require.NoError(t, err)

	_, err = repo.Watch(context.Background())
	assert.Error(t, err)
}
