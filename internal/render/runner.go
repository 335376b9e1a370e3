package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is one renderer invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
}

func (c Command) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Output is what a finished renderer process left behind.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes a renderer command and waits for it to exit. A non-zero
// exit is reported through Output.ExitCode; the error is reserved for
// processes that could not be started.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Output, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) (Output, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("failed to start renderer: %w", err)
	}

	return out, nil
}
