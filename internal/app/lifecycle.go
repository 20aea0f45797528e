package app

import (
	"os"
	"sync"

	"advanced-notepad/internal/logger"
	"advanced-notepad/internal/shutdown"
)

// Lifecycle funnels every way of leaving the editor (the Exit command,
// the window close button and SIGINT/SIGTERM) into one shutdown sequence
// followed by a zero exit status.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
	exit    func(code int)
	once    sync.Once
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
		exit:    os.Exit,
	}
}

// Register adds a component to stop on exit. Components stop in reverse
// registration order, so register the debug coordinator first.
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

// Listen routes termination signals through run, which must hop onto the
// UI goroutine before calling Exit
func (l *Lifecycle) Listen(run func(func())) {
	l.manager.Listen(func(os.Signal) {
		run(l.Exit)
	})
}

// Exit stops every registered component and terminates the process
func (l *Lifecycle) Exit() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "exiting", nil)
		l.manager.Shutdown()
		l.exit(0)
	})
}
