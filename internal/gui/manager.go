package gui

import (
	"fmt"
	"image"

	"manim-studio/internal/gui/components"
	"manim-studio/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Manager owns the widgets. Its methods must run on the Fyne event loop;
// background work reaches it through fyne.Do.
type Manager struct {
	logger     logger.Logger
	isShutdown bool

	editor  *components.Editor
	toolbar *components.Toolbar
	status  *components.StatusBar
	preview *components.Preview
	footer  *fyne.Container
}

func NewManager(log logger.Logger, sessionsDir string) *Manager {
	manager := &Manager{
		logger:  log,
		editor:  components.NewEditor(),
		toolbar: components.NewToolbar(),
		status:  components.NewStatusBar(),
		preview: components.NewPreview(),
		footer:  components.NewFooter(sessionsDir),
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"sessions_dir": sessionsDir,
	})

	return manager
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	title := widget.NewRichTextFromMarkdown("## Manim Animation Studio")

	top := container.NewVBox(
		title,
	)

	bottom := container.NewVBox(
		m.toolbar.GetContainer(),
		m.status.GetContainer(),
		m.preview.GetContainer(),
		m.footer,
	)

	return container.NewBorder(
		top,
		bottom,
		nil, nil,
		m.editor.GetContainer(),
	)
}

func (m *Manager) SetRenderHandler(handler func()) {
	m.toolbar.SetRenderHandler(func() {
		m.logger.Debug("GUIManager", "render requested", nil)
		handler()
	})
}

func (m *Manager) SetClearHandler(handler func()) {
	m.toolbar.SetClearHandler(handler)
}

func (m *Manager) SetResetHandler(handler func()) {
	m.toolbar.SetResetHandler(handler)
}

func (m *Manager) SetPlayHandler(handler func(path string)) {
	m.preview.SetPlayHandler(handler)
}

func (m *Manager) Code() string {
	return m.editor.Text()
}

func (m *Manager) ClearCode() {
	m.editor.Clear()
}

func (m *Manager) ResetCode() {
	m.editor.Reset()
}

func (m *Manager) UpdateStatus(status string) {
	m.status.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) UpdateProgress(files int) {
	if files > 0 {
		m.status.SetProgress(fmt.Sprintf("[%d files]", files))
	} else {
		m.status.SetProgress("")
	}
}

// SetRendering toggles the render button. It stays disabled after Shutdown.
func (m *Manager) SetRendering(active bool) {
	m.toolbar.SetRendering(active || m.isShutdown)
	if !active {
		m.UpdateProgress(0)
	}
}

func (m *Manager) ShowError(message string) {
	m.UpdateStatus("✗ " + message)
}

func (m *Manager) ShowVideo(path string, poster image.Image, info string) {
	m.preview.SetVideo(path, poster, info)
	m.logger.Debug("GUIManager", "preview bound", map[string]interface{}{
		"video": path,
	})
}

// Shutdown locks the render button so nothing reaches a stopped renderer.
// It is called off the UI loop by the shutdown manager.
func (m *Manager) Shutdown() {
	fyne.Do(func() {
		if m.isShutdown {
			return
		}

		m.isShutdown = true
		m.toolbar.SetRendering(true)
		m.status.SetStatus("Status: Shutting down...")
		m.logger.Info("GUIManager", "shutdown initiated", nil)
	})
}
