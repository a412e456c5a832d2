package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/introspect/internal/analyzer"
	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/telemetry"
)

// IntentService holds the analyzer and telemetry tracker used by MCP tool
// handlers.
type IntentService struct {
	analyzer *analyzer.Analyzer
	events   *telemetry.MemoryTracker
}

// NewIntentService creates an IntentService. The tracker may be nil when the
// host does not expose the event history.
func NewIntentService(a *analyzer.Analyzer, events *telemetry.MemoryTracker) *IntentService {
	return &IntentService{analyzer: a, events: events}
}

// AnalyzeIntent parses a code unit and returns its derived intent record.
func (s *IntentService) AnalyzeIntent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeIntentInput,
) (*mcp.CallToolResult, AnalyzeIntentOutput, error) {
	if input.Code == "" {
		return nil, AnalyzeIntentOutput{}, fmt.Errorf("code is required")
	}

	actx := &analyzer.Context{
		FileName:     input.FileName,
		ProjectType:  input.ProjectType,
		Dependencies: input.Dependencies,
		Dialect:      ast.Dialect(input.Dialect),
	}

	ci, err := s.analyzer.AnalyzeIntent(ctx, input.Code, actx)
	if err != nil {
		return nil, AnalyzeIntentOutput{}, fmt.Errorf("analyze intent: %w", err)
	}

	return nil, AnalyzeIntentOutput{Intent: *ci}, nil
}

// GetEvents returns the most recent analysis events, newest first.
func (s *IntentService) GetEvents(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetEventsInput,
) (*mcp.CallToolResult, GetEventsOutput, error) {
	if s.events == nil {
		return nil, GetEventsOutput{}, fmt.Errorf("event history is not enabled")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	all := s.events.Events()
	summaries := make([]EventSummary, 0, limit)
	for i := len(all) - 1; i >= 0 && len(summaries) < limit; i-- {
		summaries = append(summaries, summarize(all[i]))
	}

	return nil, GetEventsOutput{Events: summaries, Total: len(all)}, nil
}

func summarize(e telemetry.Event) EventSummary {
	return EventSummary{
		ID:         e.ID,
		Operation:  e.Operation,
		Timestamp:  e.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		DurationMS: float64(e.Duration.Microseconds()) / 1000,
		Success:    e.Success,
		InputSize:  e.Input.Size,
		OutputSize: e.Output.Size,
		Confidence: e.Confidence,
		Error:      e.Error,
	}
}
