package render

import (
	"time"

	"manim-studio/internal/session"
)

// Result is the outcome of one render attempt.
type Result struct {
	TaskID    string
	Session   *session.Session
	Scene     string
	Command   []string
	VideoPath string
	Duration  time.Duration
	Err       error
}

func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Message is the single line shown to the user for a failed render.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return "Render Error: " + r.Err.Error()
}

// Task is the future returned by Submit. It completes exactly once.
type Task struct {
	ID        string
	Session   *session.Session
	StartedAt time.Time

	result   Result
	finished chan struct{}
	done     chan Result
}

func newTask(s *session.Session) *Task {
	return &Task{
		ID:        s.ID,
		Session:   s,
		StartedAt: time.Now(),
		finished:  make(chan struct{}),
		done:      make(chan Result, 1),
	}
}

// Done delivers the result once and is then closed. It is meant for a
// single consumer, usually the goroutine that hands the result to the UI.
func (t *Task) Done() <-chan Result {
	return t.done
}

// Wait blocks until the task completes. It can be called any number of times.
func (t *Task) Wait() Result {
	<-t.finished
	return t.result
}

func (t *Task) complete(res Result) {
	t.result = res
	close(t.finished)
	t.done <- res
	close(t.done)
}
