package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"manim-studio/internal/render"
	"manim-studio/internal/rendlog"
	"manim-studio/internal/session"
)

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// newRunner is replaced in tests.
var newRunner = func() render.Runner { return render.ExecRunner{} }

func newRenderCommand(root *rootOptions) *cobra.Command {
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "render <script.py|->",
		Short: "Render a scene script without opening the editor",
		Long: `Render a Manim scene script in a new session directory and print the
path of the produced video. Use "-" to read the script from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}

			script, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			opts := render.Options{
				Python:     cfg.Python,
				Quality:    cfg.Quality,
				OutputName: cfg.OutputName,
				Runner:     newRunner(),
				Logger:     log,
				RenderLog:  rendlog.New(cfg.LogFile()),
			}
			if showProgress {
				errOut := cmd.ErrOrStderr()
				opts.OnProgress = func(p render.Progress) {
					fmt.Fprintln(errOut, dimStyle.Render(fmt.Sprintf("[%d] %s", p.Files, p.Path)))
				}
			}

			orchestrator := render.NewOrchestrator(session.NewStore(cfg.SessionsDir()), opts)
			defer orchestrator.Shutdown()

			task, err := orchestrator.Submit(script)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), dimStyle.Render("Rendering in "+task.Session.Dir))

			res := task.Wait()
			if !res.Succeeded() {
				fmt.Fprintln(cmd.ErrOrStderr(), failureStyle.Render("✗ "+res.Message()))
				return fmt.Errorf("render failed: %w", res.Err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				successStyle.Render("✓ Rendered "+res.Scene),
				pathStyle.Render(res.VideoPath))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", false, "Print files as the renderer writes them")

	return cmd
}

func readScript(stdin io.Reader, name string) (string, error) {
	var data []byte
	var err error

	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}

	return string(data), nil
}
