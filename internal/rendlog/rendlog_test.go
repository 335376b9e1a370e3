package rendlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "manim.log")
	log := New(path)

	log.Append("Script saved to: /tmp/scene.py")
	log.Appendf("Rendering scene: %s", "AndroidDemo")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Script saved to: /tmp/scene.py\nRendering scene: AndroidDemo\n", string(data))
}

func TestAppendSwallowsFailures(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "logs")
	// a regular file where the log directory should be
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	log := New(filepath.Join(blocker, "manim.log"))
	assert.NotPanics(t, func() {
		log.Append("dropped")
	})
}

func TestNilFileIsSafe(t *testing.T) {
	var log *File
	assert.NotPanics(t, func() {
		log.Append("nothing")
	})
}
