package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"manim-studio/internal/app"
	"manim-studio/internal/config"
	"manim-studio/internal/logger"
)

type rootOptions struct {
	verbose  bool
	jsonLogs bool
	dataDir  string
	python   string
	quality  string
}

// NewRootCommand builds the command tree. Without a subcommand it opens the GUI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "manim-studio",
		Short: "Write Manim scenes, render them and preview the result",
		Long: `Manim Studio is a small editor for Manim animation scripts.

Type a scene, press RENDER and the app runs the Manim renderer in a fresh
session directory, finds the produced video and shows a preview.

Quick Start:
  manim-studio                      # open the editor
  manim-studio render scene.py      # render without the GUI`,
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			application, err := app.NewApplication(cfg, log)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "Write logs as JSON")
	flags.StringVar(&opts.dataDir, "data-dir", "", "Directory for sessions and logs")
	flags.StringVar(&opts.python, "python", "", "Python interpreter used to run manim")
	flags.StringVar(&opts.quality, "quality", "", "Manim quality flag (e.g. -ql, -qm, -qh)")

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// load resolves configuration from .env, the environment and flags, in
// increasing precedence.
func (o *rootOptions) load() (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.python != "" {
		cfg.Python = o.python
	}
	if o.quality != "" {
		cfg.Quality = o.quality
	}
	if o.verbose {
		cfg.LogLevel = logger.DebugLevel
	}
	if o.jsonLogs {
		cfg.JSONLogging = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logger.New(cfg.LogLevel, cfg.JSONLogging), nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
