package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMakesUniqueDirectories(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "sessions"))

	first, err := store.Create()
	require.NoError(t, err)
	second, err := store.Create()
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Dir, second.Dir)
	assert.DirExists(t, first.Dir)
	assert.DirExists(t, second.Dir)
	assert.Equal(t, filepath.Join(first.Dir, "scene.py"), first.ScriptPath())
	assert.Equal(t, store.Root(), filepath.Dir(first.Dir))
}

func TestManifestRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	s, err := store.Create()
	require.NoError(t, err)

	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := Manifest{
		ID:         s.ID,
		CreatedAt:  created,
		Script:     s.ScriptPath(),
		Scene:      "AndroidDemo",
		Command:    []string{"python3", "-m", "manim"},
		Status:     StatusFailed,
		Error:      "renderer failed with exit code 1",
		Duration:   1500 * time.Millisecond,
		FinishedAt: created.Add(1500 * time.Millisecond),
	}
	require.NoError(t, s.WriteManifest(m))
	assert.FileExists(t, s.ManifestPath())

	got, err := s.ReadManifest()
	require.NoError(t, err)
	assert.Equal(t, m.Scene, got.Scene)
	assert.Equal(t, m.Status, got.Status)
	assert.Equal(t, m.Command, got.Command)
	assert.Equal(t, m.Duration, got.Duration)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
}
