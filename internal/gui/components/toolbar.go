package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type Toolbar struct {
	container    *fyne.Container
	RenderButton *widget.Button
	ClearButton  *widget.Button
	ResetButton  *widget.Button

	renderHandler func()
	clearHandler  func()
	resetHandler  func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.RenderButton = widget.NewButton("RENDER", t.onRender)
	t.RenderButton.Importance = widget.SuccessImportance

	t.ClearButton = widget.NewButton("Clear", t.onClear)
	t.ClearButton.Importance = widget.DangerImportance

	t.ResetButton = widget.NewButton("Reset Demo", t.onReset)
	t.ResetButton.Importance = widget.HighImportance

	t.container = container.NewGridWithColumns(3,
		t.RenderButton,
		t.ClearButton,
		t.ResetButton,
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetRenderHandler(handler func()) {
	t.renderHandler = handler
}

func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

// SetRendering disables the render button while a render is in flight.
func (t *Toolbar) SetRendering(active bool) {
	if active {
		t.RenderButton.Disable()
	} else {
		t.RenderButton.Enable()
	}
}

func (t *Toolbar) onRender() {
	if t.renderHandler != nil {
		t.renderHandler()
	}
}

func (t *Toolbar) onClear() {
	if t.clearHandler != nil {
		t.clearHandler()
	}
}

func (t *Toolbar) onReset() {
	if t.resetHandler != nil {
		t.resetHandler()
	}
}
