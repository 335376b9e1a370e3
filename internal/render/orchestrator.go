package render

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"manim-studio/internal/locator"
	"manim-studio/internal/logger"
	"manim-studio/internal/rendlog"
	"manim-studio/internal/session"
)

const component = "Orchestrator"

type Options struct {
	Python     string
	Quality    string
	OutputName string

	Runner     Runner
	Logger     logger.Logger
	RenderLog  *rendlog.File
	OnProgress func(Progress)

	// Context bounds every render; cancelling it kills a running renderer.
	// Defaults to context.Background.
	Context context.Context
}

// Orchestrator turns a script into a rendered video, one render at a time.
type Orchestrator struct {
	sessions   *session.Store
	python     string
	quality    string
	outputName string
	runner     Runner
	logger     logger.Logger
	renderLog  *rendlog.File
	onProgress func(Progress)

	state stateToken

	// ctx is cancelled only on Shutdown or by the parent context; renders
	// cannot be cancelled otherwise. mu orders wg.Add against Shutdown.
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewOrchestrator(store *session.Store, opts Options) *Orchestrator {
	if opts.Python == "" {
		opts.Python = "python3"
	}
	if opts.Quality == "" {
		opts.Quality = "-ql"
	}
	if opts.OutputName == "" {
		opts.OutputName = "output"
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NoOpLogger{}
	}

	if opts.Context == nil {
		opts.Context = context.Background()
	}

	ctx, cancel := context.WithCancel(opts.Context)

	return &Orchestrator{
		sessions:   store,
		python:     opts.Python,
		quality:    opts.Quality,
		outputName: opts.OutputName,
		runner:     opts.Runner,
		logger:     opts.Logger,
		renderLog:  opts.RenderLog,
		onProgress: opts.OnProgress,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (o *Orchestrator) State() State {
	return o.state.load()
}

// Submit starts a render in the background. A render already in flight makes
// it fail with ErrBusy without touching that render; after Shutdown it fails
// with ErrShutdown.
func (o *Orchestrator) Submit(script string) (*Task, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	prev, ok := o.state.tryStart()
	if !ok {
		return nil, ErrBusy
	}

	if o.ctx.Err() != nil {
		o.state.store(prev)
		return nil, ErrShutdown
	}

	if strings.TrimSpace(script) == "" {
		o.state.store(prev)
		return nil, ErrEmptyScript
	}

	sess, err := o.sessions.Create()
	if err != nil {
		o.state.store(prev)
		return nil, err
	}

	task := newTask(sess)

	o.logger.Info(component, "render submitted", map[string]interface{}{
		"task":    task.ID,
		"session": sess.Dir,
	})

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()

		res := o.execute(o.ctx, task.ID, script, sess)
		if res.Err != nil {
			o.state.store(StateFailed)
		} else {
			o.state.store(StateSucceeded)
		}
		task.complete(res)
	}()

	return task, nil
}

// Render runs the workflow synchronously in sess. It does not consult the
// single-flight guard used by Submit.
func (o *Orchestrator) Render(ctx context.Context, script string, sess *session.Session) (string, error) {
	res := o.execute(ctx, sess.ID, script, sess)
	return res.VideoPath, res.Err
}

func (o *Orchestrator) execute(ctx context.Context, taskID, script string, sess *session.Session) (res Result) {
	start := time.Now()
	res = Result{TaskID: taskID, Session: sess}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("unexpected failure: %v", r)
		}
		res.Duration = time.Since(start)
		o.finish(res, start)
	}()

	if strings.TrimSpace(script) == "" {
		res.Err = ErrEmptyScript
		return res
	}

	scriptPath := sess.ScriptPath()
	if err := WriteScript(scriptPath, script); err != nil {
		res.Err = err
		return res
	}
	o.renderLog.Appendf("Script saved to: %s", scriptPath)

	scene, ok := ExtractSceneName(script)
	if !ok {
		res.Err = ErrNoScene
		return res
	}
	res.Scene = scene
	o.renderLog.Appendf("Rendering scene: %s", scene)

	cmd := o.command(scriptPath, scene, sess.Dir)
	res.Command = cmd.Argv()
	o.renderLog.Appendf("Running command: %s", cmd)

	o.logger.Debug(component, "renderer starting", map[string]interface{}{
		"task":    taskID,
		"scene":   scene,
		"command": cmd.String(),
	})

	if o.onProgress != nil {
		pw, err := watchProgress(sess.Dir, taskID, o.onProgress)
		if err != nil {
			o.logger.Warning(component, "progress watcher unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer pw.Stop()
		}
	}

	out, err := o.runner.Run(ctx, cmd)

	o.renderLog.Append("=== MANIM OUTPUT ===")
	if out.Stdout != "" {
		o.renderLog.Append(out.Stdout)
	}
	if out.Stderr != "" {
		o.renderLog.Append("STDERR: " + out.Stderr)
	}

	if err != nil {
		res.Err = err
		return res
	}
	if out.ExitCode != 0 {
		res.Err = &ExitError{Code: out.ExitCode, Stderr: out.Stderr}
		return res
	}

	video, found, err := locator.Find(sess.Dir)
	if err != nil {
		res.Err = fmt.Errorf("failed to search for video: %w", err)
		return res
	}
	if !found {
		res.Err = ErrVideoNotFound
		return res
	}

	o.renderLog.Appendf("Video found: %s", video)
	res.VideoPath = video
	return res
}

func (o *Orchestrator) command(scriptPath, scene, dir string) Command {
	return Command{
		Path: o.python,
		Args: []string{
			"-m", "manim",
			o.quality,
			"--disable_caching",
			"-o", o.outputName,
			scriptPath,
			scene,
		},
		Dir: dir,
	}
}

func (o *Orchestrator) finish(res Result, start time.Time) {
	manifest := session.Manifest{
		ID:         res.Session.ID,
		CreatedAt:  res.Session.CreatedAt,
		Script:     res.Session.ScriptPath(),
		Scene:      res.Scene,
		Command:    res.Command,
		Status:     session.StatusSucceeded,
		Video:      res.VideoPath,
		Duration:   res.Duration,
		FinishedAt: start.Add(res.Duration),
	}

	if res.Err != nil {
		manifest.Status = session.StatusFailed
		manifest.Error = res.Err.Error()

		o.renderLog.Append("ERROR: " + res.Message())
		o.logger.Error(component, res.Err, map[string]interface{}{
			"task":  res.TaskID,
			"scene": res.Scene,
		})
	} else {
		o.logger.Info(component, "render completed", map[string]interface{}{
			"task":        res.TaskID,
			"scene":       res.Scene,
			"video":       res.VideoPath,
			"duration_ms": res.Duration.Milliseconds(),
		})
	}

	if err := res.Session.WriteManifest(manifest); err != nil {
		o.logger.Warning(component, "manifest not written", map[string]interface{}{
			"session": res.Session.Dir,
			"error":   err.Error(),
		})
	}
}

// Shutdown kills a render still in flight and waits for its worker to exit.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	o.cancel()
	o.mu.Unlock()

	o.wg.Wait()
	o.logger.Info(component, "shutdown completed", nil)
}
