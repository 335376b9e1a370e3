package app

import (
	"errors"
	"fmt"
	"image"
	"net/url"
	"path/filepath"

	"manim-studio/internal/logger"
	"manim-studio/internal/media"
	"manim-studio/internal/render"

	"fyne.io/fyne/v2"
)

// Renderer is the part of the orchestrator the handlers depend on.
type Renderer interface {
	Submit(script string) (*render.Task, error)
	State() render.State
}

// View is the part of the GUI manager the handlers drive.
type View interface {
	Code() string
	ClearCode()
	ResetCode()
	UpdateStatus(status string)
	UpdateProgress(files int)
	SetRendering(active bool)
	ShowError(message string)
	ShowVideo(path string, poster image.Image, info string)
}

type Handlers struct {
	renderer Renderer
	view     View
	logger   logger.Logger
	openURL  func(*url.URL) error
	probe    func(path string) (media.Info, error)
}

func NewHandlers(view View, log logger.Logger, openURL func(*url.URL) error) *Handlers {
	return &Handlers{
		view:    view,
		logger:  log,
		openURL: openURL,
		probe:   media.Probe,
	}
}

func (h *Handlers) SetRenderer(r Renderer) {
	h.renderer = r
}

// HandleRender runs on the UI loop. Rejections are shown immediately; an
// accepted render completes on awaitResult.
func (h *Handlers) HandleRender() {
	task, err := h.renderer.Submit(h.view.Code())
	if err != nil {
		switch {
		case errors.Is(err, render.ErrBusy):
			h.view.ShowError("Already rendering! Please wait...")
		case errors.Is(err, render.ErrEmptyScript):
			h.view.ShowError("Code editor is empty!")
		default:
			h.logger.Error("Handlers", err, nil)
			h.view.ShowError("Render Error: " + err.Error())
		}
		return
	}

	h.view.UpdateStatus("Status: Rendering (this may take time)...")
	h.view.SetRendering(true)

	go h.awaitResult(task)
}

// awaitResult is the single consumer of the task's completion channel. The
// video is probed here, off the UI loop, and the outcome is applied with
// fyne.Do.
func (h *Handlers) awaitResult(task *render.Task) {
	res := <-task.Done()

	var info media.Info
	var probeErr error
	if res.Succeeded() {
		info, probeErr = h.probe(res.VideoPath)
		if probeErr != nil {
			h.logger.Warning("Handlers", "video probe failed", map[string]interface{}{
				"video": res.VideoPath,
				"error": probeErr.Error(),
			})
		}
	}

	fyne.Do(func() {
		h.applyResult(res, info, probeErr)
	})
}

func (h *Handlers) applyResult(res render.Result, info media.Info, probeErr error) {
	h.view.SetRendering(false)

	if !res.Succeeded() {
		h.view.ShowError(res.Message())
		return
	}

	// Probe could not even stat the file.
	if probeErr != nil && info.Path == "" {
		h.view.ShowError("Video file not found at specified path!")
		return
	}

	h.view.ShowVideo(res.VideoPath, info.Poster, info.Summary())
	h.view.UpdateStatus(fmt.Sprintf("✓ Render successful! (%.1f KB)", info.SizeKB()))

	h.logger.Info("Handlers", "preview updated", map[string]interface{}{
		"task":  res.TaskID,
		"video": res.VideoPath,
	})
}

func (h *Handlers) HandleClear() {
	h.view.ClearCode()
	h.view.UpdateStatus("Status: Code cleared")
}

func (h *Handlers) HandleReset() {
	h.view.ResetCode()
	h.view.UpdateStatus("Status: Demo code loaded")
}

// HandlePlay opens the rendered file in the platform's media player.
func (h *Handlers) HandlePlay(path string) {
	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if err := h.openURL(u); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"video": path,
		})
		h.view.ShowError("Could not open video: " + err.Error())
	}
}

// HandleProgress is called from the renderer's watcher goroutine.
func (h *Handlers) HandleProgress(p render.Progress) {
	fyne.Do(func() {
		h.view.UpdateProgress(p.Files)
	})
}
