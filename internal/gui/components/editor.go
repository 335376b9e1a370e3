package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DefaultCode is the demo scene loaded at startup and by Reset Demo.
const DefaultCode = `
from manim import *

class AndroidDemo(Scene):
    def construct(self):
        # Create shapes
        circle = Circle(color=BLUE, radius=1)
        square = Square(color=RED, side_length=2)
        text = Text("Manim on Android!", font_size=40, color=WHITE)

        # Add background
        background = Rectangle(width=14, height=8, color=BLACK, fill_opacity=0.8)
        self.add(background)

        # Animations
        self.play(Create(circle), run_time=1)
        self.wait(0.5)
        self.play(Transform(circle, square), run_time=1.5)
        self.wait(0.5)
        self.play(Write(text), run_time=2)
        self.wait(2)
`

type Editor struct {
	container *fyne.Container
	entry     *widget.Entry
}

func NewEditor() *Editor {
	entry := widget.NewMultiLineEntry()
	entry.TextStyle = fyne.TextStyle{Monospace: true}
	entry.Wrapping = fyne.TextWrapOff
	entry.SetText(DefaultCode)

	scroll := container.NewScroll(entry)
	scroll.SetMinSize(fyne.NewSize(EditorMinWidth, EditorMinHeight))

	return &Editor{
		container: container.NewBorder(
			widget.NewLabel("Code Editor:"), nil, nil, nil,
			scroll,
		),
		entry: entry,
	}
}

func (e *Editor) GetContainer() *fyne.Container {
	return e.container
}

func (e *Editor) Text() string {
	return e.entry.Text
}

func (e *Editor) SetText(text string) {
	e.entry.SetText(text)
}

func (e *Editor) Clear() {
	e.entry.SetText("")
}

func (e *Editor) Reset() {
	e.entry.SetText(DefaultCode)
}
