// Package telemetry defines the performance tracker the analyzer reports
// operation events to. Tracking is fire-and-forget: failures are logged by
// the caller and never affect the analysis result.
package telemetry

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IOStat describes the size and shape of one side of an operation.
type IOStat struct {
	Type string `json:"type"`
	Size int    `json:"size"`
}

// Event is one tracked operation.
type Event struct {
	ID         string        `json:"id"`
	ToolID     string        `json:"toolId"`
	Operation  string        `json:"operation"`
	Timestamp  time.Time     `json:"timestamp"`
	Duration   time.Duration `json:"duration"`
	Success    bool          `json:"success"`
	Input      IOStat        `json:"input"`
	Output     IOStat        `json:"output"`
	Confidence float64       `json:"confidence,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// NewEvent creates an Event with a fresh ID and the current timestamp.
func NewEvent(toolID, operation string) Event {
	return Event{
		ID:        uuid.NewString(),
		ToolID:    toolID,
		Operation: operation,
		Timestamp: time.Now().UTC(),
	}
}

// Tracker receives operation events.
type Tracker interface {
	Track(ctx context.Context, event Event) error
}

// Compile-time interface checks.
var (
	_ Tracker = (*MemoryTracker)(nil)
	_ Tracker = LogTracker{}
	_ Tracker = NopTracker{}
)

// MemoryTracker stores events in memory. Intended for tests and embedded
// hosts that poll for recent events.
type MemoryTracker struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryTracker creates an empty MemoryTracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{}
}

// Track appends the event.
func (t *MemoryTracker) Track(_ context.Context, event Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
	return nil
}

// Events returns a copy of all tracked events.
func (t *MemoryTracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// LogTracker writes events to the standard logger.
type LogTracker struct{}

// Track logs the event.
func (LogTracker) Track(_ context.Context, event Event) error {
	log.Printf("telemetry: tool=%s op=%s success=%t duration=%s confidence=%.2f",
		event.ToolID, event.Operation, event.Success, event.Duration, event.Confidence)
	return nil
}

// NopTracker discards every event.
type NopTracker struct{}

// Track discards the event.
func (NopTracker) Track(context.Context, Event) error { return nil }
