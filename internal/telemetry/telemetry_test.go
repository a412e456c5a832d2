package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_FreshIDAndTimestamp(t *testing.T) {
	before := time.Now().UTC()
	e1 := NewEvent("intent-analyzer", "analyzeIntent")
	e2 := NewEvent("intent-analyzer", "analyzeIntent")

	assert.NotEmpty(t, e1.ID)
	assert.NotEqual(t, e1.ID, e2.ID)
	assert.Equal(t, "intent-analyzer", e1.ToolID)
	assert.Equal(t, "analyzeIntent", e1.Operation)
	assert.False(t, e1.Timestamp.Before(before))
}

func TestMemoryTracker_RecordsInOrder(t *testing.T) {
	tracker := NewMemoryTracker()

	first := NewEvent("intent-analyzer", "analyzeIntent")
	first.Success = true
	second := NewEvent("intent-analyzer", "analyzeIntent")
	second.Error = "parse javascript: empty source"

	require.NoError(t, tracker.Track(context.Background(), first))
	require.NoError(t, tracker.Track(context.Background(), second))

	events := tracker.Events()
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.True(t, events[0].Success)
	assert.Equal(t, second.Error, events[1].Error)
}

func TestMemoryTracker_EventsReturnsCopy(t *testing.T) {
	tracker := NewMemoryTracker()
	require.NoError(t, tracker.Track(context.Background(), NewEvent("intent-analyzer", "analyzeIntent")))

	events := tracker.Events()
	events[0].ToolID = "mutated"

	assert.Equal(t, "intent-analyzer", tracker.Events()[0].ToolID)
}

func TestMemoryTracker_ConcurrentTracking(t *testing.T) {
	tracker := NewMemoryTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tracker.Track(context.Background(), NewEvent("intent-analyzer", "analyzeIntent"))
		}()
	}
	wg.Wait()

	assert.Len(t, tracker.Events(), 50)
}
