package components

// Sizes target a portrait phone screen.
const (
	WindowWidth     = 540
	WindowHeight    = 960
	EditorMinWidth  = 500
	EditorMinHeight = 320
	PosterWidth     = 480
	PosterHeight    = 270
)
