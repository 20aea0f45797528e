package debug

import (
	"context"
	"time"

	"advanced-notepad/internal/debug/filetracker"
	"advanced-notepad/internal/logger"
)

// TimingTracker measures operation performance
type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
	GetTimings(operation string) []time.Duration
}

// FileTracker monitors file handle lifecycle
type FileTracker interface {
	TrackOpen(path, mode string) filetracker.Handle
	TrackClose(handle filetracker.Handle)
	GetOpenFiles() []filetracker.FileInfo
	DetectLeaks(threshold time.Duration) []filetracker.FileInfo
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() logger.Logger
	TimingTracker() TimingTracker
	FileTracker() FileTracker
	Shutdown()
}
