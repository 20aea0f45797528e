package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatorHonoursTrackerSwitches(t *testing.T) {
	var buf bytes.Buffer
	dc := NewCoordinator(Config{
		LogLevel:           "debug",
		UseJSONLogging:     true,
		EnableFileTracking: false,
		Output:             &buf,
	})

	h := dc.FileTracker().TrackOpen("/tmp/x.txt", "read")
	assert.Zero(t, h)

	ctx := dc.TimingTracker().StartTiming("load")
	dc.TimingTracker().EndTiming(ctx)
	assert.Nil(t, dc.TimingTracker().GetTimings("load"))
}

func TestShutdownReportsLeaks(t *testing.T) {
	var buf bytes.Buffer
	dc := NewCoordinator(Config{
		LogLevel:           "warn",
		UseJSONLogging:     true,
		EnableFileTracking: true,
		Output:             &buf,
	})
	dc.fileTracker.TrackOpen("/tmp/leak.txt", "write")

	dc.Shutdown()
	assert.Contains(t, buf.String(), "/tmp/leak.txt")
	assert.Contains(t, buf.String(), "file handle still open at shutdown")
}
