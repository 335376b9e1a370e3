package app

import (
	"context"
	"errors"
	"image"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manim-studio/internal/logger"
	"manim-studio/internal/media"
	"manim-studio/internal/render"
	"manim-studio/internal/session"
)

type fakeView struct {
	mu        sync.Mutex
	code      string
	status    string
	files     int
	rendering bool
	video     string
	info      string
}

func (v *fakeView) Code() string { v.mu.Lock(); defer v.mu.Unlock(); return v.code }
func (v *fakeView) ClearCode()   { v.mu.Lock(); defer v.mu.Unlock(); v.code = "" }
func (v *fakeView) ResetCode()   { v.mu.Lock(); defer v.mu.Unlock(); v.code = "demo" }
func (v *fakeView) UpdateStatus(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = s
}
func (v *fakeView) UpdateProgress(files int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.files = files
}
func (v *fakeView) SetRendering(active bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rendering = active
}
func (v *fakeView) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = "✗ " + message
}
func (v *fakeView) ShowVideo(path string, _ image.Image, info string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.video = path
	v.info = info
}

func (v *fakeView) snapshot() fakeView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return fakeView{status: v.status, rendering: v.rendering, video: v.video, info: v.info, files: v.files}
}

type stubRenderer struct {
	err error
}

func (s stubRenderer) Submit(string) (*render.Task, error) { return nil, s.err }
func (s stubRenderer) State() render.State                 { return render.StateRunning }

type videoRunner struct{}

func (videoRunner) Run(_ context.Context, cmd render.Command) (render.Output, error) {
	dir := filepath.Join(cmd.Dir, "media", "videos", "AndroidDemo", "480p15")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return render.Output{}, err
	}
	return render.Output{}, os.WriteFile(filepath.Join(dir, "output.mp4"), make([]byte, 2048), 0o644)
}

func newHandlers(view *fakeView) *Handlers {
	return NewHandlers(view, logger.NoOpLogger{}, func(*url.URL) error { return nil })
}

func TestHandleRenderRejections(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"busy", render.ErrBusy, "✗ Already rendering! Please wait..."},
		{"empty", render.ErrEmptyScript, "✗ Code editor is empty!"},
		{"other", errors.New("disk full"), "✗ Render Error: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := &fakeView{code: "class A(Scene): pass"}
			h := newHandlers(view)
			h.SetRenderer(stubRenderer{err: tt.err})

			h.HandleRender()

			snap := view.snapshot()
			assert.Equal(t, tt.want, snap.status)
			assert.False(t, snap.rendering)
		})
	}
}

func TestHandleRenderDeliversResultToView(t *testing.T) {
	test.NewTempApp(t)

	orchestrator := render.NewOrchestrator(session.NewStore(t.TempDir()), render.Options{
		Runner: videoRunner{},
	})
	t.Cleanup(orchestrator.Shutdown)

	view := &fakeView{code: "class AndroidDemo(Scene):\n    pass\n"}
	h := newHandlers(view)
	h.SetRenderer(orchestrator)
	h.probe = func(path string) (media.Info, error) {
		return media.Info{Path: path, Size: 2048}, nil
	}

	h.HandleRender()

	assert.Eventually(t, func() bool {
		return view.snapshot().status == "✓ Render successful! (2.0 KB)"
	}, 5*time.Second, 10*time.Millisecond)

	snap := view.snapshot()
	assert.False(t, snap.rendering)
	assert.Contains(t, snap.video, "output.mp4")
	assert.Equal(t, "2.0 KB", snap.info)
	assert.Equal(t, render.StateSucceeded, orchestrator.State())
}

func TestApplyResultFailure(t *testing.T) {
	view := &fakeView{rendering: true}
	h := newHandlers(view)

	h.applyResult(render.Result{Err: &render.ExitError{Code: 1, Stderr: "NameError"}}, media.Info{}, nil)

	snap := view.snapshot()
	assert.False(t, snap.rendering)
	assert.Equal(t, "✗ Render Error: renderer failed with exit code 1\nNameError", snap.status)
	assert.Empty(t, snap.video)
}

func TestApplyResultMissingVideo(t *testing.T) {
	view := &fakeView{rendering: true}
	h := newHandlers(view)

	h.applyResult(render.Result{VideoPath: "/gone.mp4"}, media.Info{}, errors.New("video not accessible"))

	assert.Equal(t, "✗ Video file not found at specified path!", view.snapshot().status)
}

func TestApplyResultWithoutPoster(t *testing.T) {
	view := &fakeView{rendering: true}
	h := newHandlers(view)

	info := media.Info{Path: "/v/output.mp4", Size: 1024}
	h.applyResult(render.Result{VideoPath: "/v/output.mp4"}, info, errors.New("failed to open video"))

	snap := view.snapshot()
	assert.Equal(t, "/v/output.mp4", snap.video)
	assert.Equal(t, "✓ Render successful! (1.0 KB)", snap.status)
}

func TestHandleClearAndReset(t *testing.T) {
	view := &fakeView{code: "something"}
	h := newHandlers(view)

	h.HandleClear()
	assert.Empty(t, view.Code())
	assert.Equal(t, "Status: Code cleared", view.snapshot().status)

	h.HandleReset()
	assert.Equal(t, "demo", view.Code())
	assert.Equal(t, "Status: Demo code loaded", view.snapshot().status)
}

func TestHandlePlay(t *testing.T) {
	view := &fakeView{}
	var opened *url.URL
	h := NewHandlers(view, logger.NoOpLogger{}, func(u *url.URL) error {
		opened = u
		return nil
	})

	h.HandlePlay("/data/sessions/abc/output.mp4")
	require.NotNil(t, opened)
	assert.Equal(t, "file:///data/sessions/abc/output.mp4", opened.String())

	h = NewHandlers(view, logger.NoOpLogger{}, func(*url.URL) error {
		return errors.New("no handler for video/mp4")
	})
	h.HandlePlay("/x.mp4")
	assert.Equal(t, "✗ Could not open video: no handler for video/mp4", view.snapshot().status)
}
