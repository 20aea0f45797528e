package filetracker

import (
	"runtime"
	"sync"
	"time"

	"advanced-notepad/internal/logger"
)

const component = "FileTracker"

type Handle uint64

type FileInfo struct {
	Path       string
	Mode       string
	Handle     Handle
	OpenedAt   time.Time
	StackTrace []uintptr
}

// Tracker records every file handle the editor opens until it is closed.
// A zero Handle means tracking was disabled when the file was opened.
type Tracker struct {
	openFiles map[Handle]FileInfo
	next      Handle
	mu        sync.RWMutex
	logger    logger.Logger
	enabled   bool
}

func NewTracker(log logger.Logger) *Tracker {
	return &Tracker{
		openFiles: make(map[Handle]FileInfo),
		logger:    log,
		enabled:   true,
	}
}

func (ft *Tracker) TrackOpen(path, mode string) Handle {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return 0
	}

	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])

	ft.next++
	info := FileInfo{
		Path:       path,
		Mode:       mode,
		Handle:     ft.next,
		OpenedAt:   time.Now(),
		StackTrace: pcs[:n],
	}
	ft.openFiles[info.Handle] = info

	ft.logger.Debug(component, "file opened", map[string]interface{}{
		"path":   path,
		"mode":   mode,
		"handle": uint64(info.Handle),
	})

	return info.Handle
}

func (ft *Tracker) TrackClose(handle Handle) {
	if handle == 0 {
		return
	}

	ft.mu.Lock()
	defer ft.mu.Unlock()

	info, exists := ft.openFiles[handle]
	if !exists {
		return
	}
	delete(ft.openFiles, handle)

	ft.logger.Debug(component, "file closed", map[string]interface{}{
		"path":     info.Path,
		"handle":   uint64(handle),
		"duration": time.Since(info.OpenedAt).String(),
	})
}

func (ft *Tracker) GetOpenFiles() []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make([]FileInfo, 0, len(ft.openFiles))
	for _, v := range ft.openFiles {
		result = append(result, v)
	}
	return result
}

// DetectLeaks returns handles that have stayed open longer than threshold
func (ft *Tracker) DetectLeaks(threshold time.Duration) []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	cutoff := time.Now().Add(-threshold)
	var leaks []FileInfo

	for _, info := range ft.openFiles {
		if !info.OpenedAt.After(cutoff) {
			leaks = append(leaks, info)
		}
	}

	return leaks
}

func (ft *Tracker) SetEnabled(enabled bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}
