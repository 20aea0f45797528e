package app

import (
	"advanced-notepad/internal/clipboard"
	"advanced-notepad/internal/config"
	"advanced-notepad/internal/controllers"
	"advanced-notepad/internal/debug"
	"advanced-notepad/internal/models"
	"advanced-notepad/internal/services"
	"advanced-notepad/internal/views"
	"advanced-notepad/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName       = "Advanced Notepad"
	AppID         = "com.advancednotepad.editor"
	AppVersion    = "1.0.0"
	WindowWidth   = 900
	WindowHeight  = 600
	componentName = "Application"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	debugCoord debug.Coordinator
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config) (*Application, error) {
	debugCoord := debug.NewCoordinator(debug.Config{
		LogLevel:             cfg.LogLevel,
		UseJSONLogging:       cfg.JSONLogs,
		EnableFileTracking:   cfg.EnableFileTracking,
		EnableTimingTracking: cfg.EnableTimingTracking,
	})
	logger := debugCoord.Logger()

	presentation, err := models.NewPresentationState(cfg.FontSize, cfg.DarkMode)
	if err != nil {
		return nil, err
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	logger.Info(componentName, "starting application", map[string]interface{}{
		"version":   AppVersion,
		"font_size": cfg.FontSize,
		"dark_mode": cfg.DarkMode,
		"clipboard": cfg.Clipboard,
	})

	cb, err := clipboard.New(cfg.Clipboard, window)
	if err != nil {
		logger.Warning(componentName, "falling back to window clipboard", map[string]interface{}{
			"backend": cfg.Clipboard,
			"error":   err.Error(),
		})
		cb = clipboard.FromFyne(window.Clipboard())
	}

	controller := controllers.NewMainController(
		models.NewDocument(),
		presentation,
		services.NewFileService(debugCoord),
		cb,
		debugCoord,
	)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	lifecycle := NewLifecycle(logger)
	lifecycle.Register("debug", debugCoord)
	controller.SetExitHandler(lifecycle.Exit)

	if cfg.WatchFiles {
		watcher, err := watch.New(logger, func(event watch.Event) {
			fyne.Do(func() {
				controller.HandleExternalChange(event)
			})
		})
		if err != nil {
			logger.Warning(componentName, "file watching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			controller.SetWatcher(watcher)
			lifecycle.Register("watcher", watcher)
		}
	}

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		debugCoord: debugCoord,
		lifecycle:  lifecycle,
	}

	logger.Info(componentName, "initialization complete", nil)
	return application, nil
}

// Run shows the window, optionally opens initialFile and blocks until exit
func (a *Application) Run(initialFile string) error {
	logger := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		logger.Info(componentName, "window close requested", nil)
		a.lifecycle.Exit()
	})
	a.lifecycle.Listen(fyne.Do)

	a.window.Show()

	if initialFile != "" {
		// failures are already reported in an error dialog
		_ = a.controller.OpenPath(initialFile)
	}
	a.view.Focus()

	logger.Info(componentName, "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
