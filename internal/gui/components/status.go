package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	progressLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Status: Ready")
	statusLabel.Wrapping = fyne.TextWrapWord
	progressLabel := widget.NewLabel("")

	return &StatusBar{
		container: container.NewBorder(
			nil, nil, nil,
			progressLabel,
			statusLabel,
		),
		statusLabel:   statusLabel,
		progressLabel: progressLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetProgress(progress string) {
	sb.progressLabel.SetText(progress)
}

func (sb *StatusBar) Progress() string {
	return sb.progressLabel.Text
}
