package render

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyScript    = errors.New("code editor is empty")
	ErrNoScene        = errors.New("could not find a Scene class in the code")
	ErrVideoNotFound  = errors.New("no video file found after rendering")
	ErrBusy           = errors.New("already rendering, please wait")
	ErrShutdown       = errors.New("renderer is shut down")
	ErrRendererFailed = errors.New("renderer exited with a non-zero status")
)

// ExitError reports a renderer process that exited with a non-zero status.
// It matches ErrRendererFailed under errors.Is.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("renderer failed with exit code %d\n%s", e.Code, e.Stderr)
}

func (e *ExitError) Unwrap() error {
	return ErrRendererFailed
}
