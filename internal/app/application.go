package app

import (
	"fmt"
	"os"

	"manim-studio/internal/config"
	"manim-studio/internal/gui"
	"manim-studio/internal/gui/components"
	"manim-studio/internal/logger"
	"manim-studio/internal/render"
	"manim-studio/internal/rendlog"
	"manim-studio/internal/session"
	"manim-studio/internal/shutdown"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Manim Studio"
	AppID      = "io.manimstudio.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp      fyne.App
	window       fyne.Window
	guiManager   *gui.Manager
	orchestrator *render.Orchestrator
	shutdown     *shutdown.Manager
	logger       logger.Logger
	config       config.Config
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	if err := os.MkdirAll(cfg.SessionsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(components.WindowWidth, components.WindowHeight))
	window.SetPadded(true)
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"data_dir": cfg.DataDir,
		"python":   cfg.Python,
		"quality":  cfg.Quality,
	})

	store := session.NewStore(cfg.SessionsDir())
	renderLog := rendlog.New(cfg.LogFile())
	shutdownManager := shutdown.NewManager(log)

	guiManager := gui.NewManager(log, store.Root())
	handlers := NewHandlers(guiManager, log, fyneApp.OpenURL)

	orchestrator := render.NewOrchestrator(store, render.Options{
		Python:     cfg.Python,
		Quality:    cfg.Quality,
		OutputName: cfg.OutputName,
		Logger:     log,
		RenderLog:  renderLog,
		OnProgress: handlers.HandleProgress,
		Context:    shutdownManager.Context(),
	})
	handlers.SetRenderer(orchestrator)

	guiManager.SetRenderHandler(handlers.HandleRender)
	guiManager.SetClearHandler(handlers.HandleClear)
	guiManager.SetResetHandler(handlers.HandleReset)
	guiManager.SetPlayHandler(handlers.HandlePlay)

	shutdownManager.Register(orchestrator)
	shutdownManager.Register(guiManager)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"render_log": renderLog.Path(),
	})

	return &Application{
		fyneApp:      fyneApp,
		window:       window,
		guiManager:   guiManager,
		orchestrator: orchestrator,
		shutdown:     shutdownManager,
		logger:       log,
		config:       cfg,
	}, nil
}

// Run shows the window and blocks until the Fyne event loop exits.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
