package debug

import (
	"io"
	"os"

	"advanced-notepad/internal/debug/filetracker"
	"advanced-notepad/internal/debug/timing"
	"advanced-notepad/internal/logger"
)

type Config struct {
	LogLevel             string
	UseJSONLogging       bool
	EnableFileTracking   bool
	EnableTimingTracking bool
	Output               io.Writer
}

type DebugCoordinator struct {
	logger        logger.Logger
	timingTracker *timing.Tracker
	fileTracker   *filetracker.Tracker
}

func NewCoordinator(config Config) *DebugCoordinator {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	level := logger.ParseLevel(config.LogLevel)

	var loggerImpl logger.Logger
	if config.UseJSONLogging {
		loggerImpl = logger.NewZerolog(out, level)
	} else {
		loggerImpl = logger.NewConsoleLogger(out, level)
	}

	fileTracker := filetracker.NewTracker(loggerImpl)
	fileTracker.SetEnabled(config.EnableFileTracking)

	timingTracker := timing.NewTracker(loggerImpl)
	timingTracker.SetEnabled(config.EnableTimingTracking)

	return &DebugCoordinator{
		logger:        loggerImpl,
		timingTracker: timingTracker,
		fileTracker:   fileTracker,
	}
}

// NewNoOpCoordinator is used by tests and the headless commands
func NewNoOpCoordinator() *DebugCoordinator {
	return &DebugCoordinator{
		logger:        logger.NoOpLogger{},
		timingTracker: timing.NewTracker(logger.NoOpLogger{}),
		fileTracker:   filetracker.NewTracker(logger.NoOpLogger{}),
	}
}

func (dc *DebugCoordinator) Logger() logger.Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) FileTracker() FileTracker {
	return dc.fileTracker
}

// Shutdown reports file handles that were never released
func (dc *DebugCoordinator) Shutdown() {
	for _, leak := range dc.fileTracker.DetectLeaks(0) {
		dc.logger.Warning("DebugCoordinator", "file handle still open at shutdown", map[string]interface{}{
			"path": leak.Path,
			"mode": leak.Mode,
		})
	}
}
