package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"manim-studio/internal/logger"
)

func TestShutdownLocksRenderButton(t *testing.T) {
	test.NewTempApp(t)
	m := NewManager(logger.NoOpLogger{}, t.TempDir())

	var rendered int
	m.SetRenderHandler(func() { rendered++ })

	m.Shutdown()
	assert.True(t, m.toolbar.RenderButton.Disabled())
	assert.Equal(t, "Status: Shutting down...", m.status.Status())

	// A render finishing after shutdown must not re-enable the button.
	m.SetRendering(false)
	assert.True(t, m.toolbar.RenderButton.Disabled())

	test.Tap(m.toolbar.RenderButton)
	assert.Zero(t, rendered)

	m.Shutdown()
	assert.True(t, m.toolbar.RenderButton.Disabled())
}

func TestSetRenderingTogglesButtonAndProgress(t *testing.T) {
	test.NewTempApp(t)
	m := NewManager(logger.NoOpLogger{}, t.TempDir())

	m.SetRendering(true)
	m.UpdateProgress(3)
	assert.True(t, m.toolbar.RenderButton.Disabled())
	assert.Equal(t, "[3 files]", m.status.Progress())

	m.SetRendering(false)
	assert.False(t, m.toolbar.RenderButton.Disabled())
	assert.Empty(t, m.status.Progress())
}

func TestShowErrorPrefixesStatus(t *testing.T) {
	test.NewTempApp(t)
	m := NewManager(logger.NoOpLogger{}, t.TempDir())

	m.ShowError("Code editor is empty!")
	assert.Equal(t, "✗ Code editor is empty!", m.status.Status())
}
