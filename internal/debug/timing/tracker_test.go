package timing

import (
	"testing"

	"advanced-notepad/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestTimingRecordsDurations(t *testing.T) {
	tracker := NewTracker(logger.NoOpLogger{})

	for i := 0; i < 3; i++ {
		ctx := tracker.StartTiming("load")
		tracker.EndTiming(ctx)
	}

	assert.Len(t, tracker.GetTimings("load"), 3)
	assert.GreaterOrEqual(t, int64(tracker.GetAverageTime("load")), int64(0))
	assert.Nil(t, tracker.GetTimings("save"))
	assert.Zero(t, tracker.GetAverageTime("save"))

	tracker.Reset("load")
	assert.Nil(t, tracker.GetTimings("load"))
}

func TestDisabledTimingIsNoOp(t *testing.T) {
	tracker := NewTracker(logger.NoOpLogger{})
	tracker.SetEnabled(false)

	tracker.EndTiming(tracker.StartTiming("save"))

	assert.Nil(t, tracker.GetTimings("save"))
}
