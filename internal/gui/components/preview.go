package components

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Preview shows the poster frame of the last rendered video and a button
// that hands the file to the platform player.
type Preview struct {
	container  *fyne.Container
	poster     *canvas.Image
	infoLabel  *widget.Label
	pathLabel  *widget.Label
	PlayButton *widget.Button

	videoPath   string
	playHandler func(path string)
}

func NewPreview() *Preview {
	p := &Preview{}

	p.poster = canvas.NewImageFromImage(nil)
	p.poster.FillMode = canvas.ImageFillContain
	p.poster.SetMinSize(fyne.NewSize(PosterWidth, PosterHeight))

	p.infoLabel = widget.NewLabel("No video rendered yet")
	p.pathLabel = widget.NewLabel("")
	p.pathLabel.Truncation = fyne.TextTruncateEllipsis

	p.PlayButton = widget.NewButton("Play", p.onPlay)
	p.PlayButton.Disable()

	p.container = container.NewVBox(
		widget.NewLabel("Preview:"),
		p.poster,
		container.NewBorder(nil, nil, nil, p.PlayButton, p.infoLabel),
		p.pathLabel,
	)

	return p
}

func (p *Preview) GetContainer() *fyne.Container {
	return p.container
}

func (p *Preview) SetPlayHandler(handler func(path string)) {
	p.playHandler = handler
}

// SetVideo binds a rendered file. poster may be nil when the frame could not
// be decoded.
func (p *Preview) SetVideo(path string, poster image.Image, info string) {
	p.videoPath = path
	p.poster.Image = poster
	p.poster.Refresh()
	p.infoLabel.SetText(info)
	p.pathLabel.SetText(path)
	p.PlayButton.Enable()
}

func (p *Preview) VideoPath() string {
	return p.videoPath
}

func (p *Preview) Info() string {
	return p.infoLabel.Text
}

func (p *Preview) onPlay() {
	if p.videoPath == "" || p.playHandler == nil {
		return
	}
	p.playHandler(p.videoPath)
}

// Footer carries the static hints under the preview.
func NewFooter(sessionsDir string) *fyne.Container {
	tip := widget.NewLabel("Tip: Use low quality (-ql) and fewer frames for fast rendering")
	tip.Wrapping = fyne.TextWrapWord
	files := widget.NewLabel(fmt.Sprintf("Files saved to: %s", sessionsDir))
	files.Truncation = fyne.TextTruncateEllipsis
	return container.NewVBox(tip, files)
}
