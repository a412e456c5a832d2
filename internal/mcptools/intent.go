package mcptools

import "github.com/dusk-indust/introspect/internal/intent"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// AnalyzeIntentInput is the input for the analyze_intent MCP tool.
type AnalyzeIntentInput struct {
	Code         string   `json:"code" jsonschema:"the source code unit to analyze"`
	FileName     string   `json:"fileName,omitempty" jsonschema:"file name of the code unit, used for dialect detection and purpose fallback (e.g. user.controller.ts)"`
	Dialect      string   `json:"dialect,omitempty" jsonschema:"parser dialect override: javascript, typescript, or tsx. Default: inferred from fileName"`
	ProjectType  string   `json:"projectType,omitempty" jsonschema:"project type hint (e.g. express, nestjs, react)"`
	Dependencies []string `json:"dependencies,omitempty" jsonschema:"declared project dependencies, for context"`
}

// AnalyzeIntentOutput is the result of the analyze_intent MCP tool.
type AnalyzeIntentOutput struct {
	Intent intent.CodeIntent `json:"intent"`
}

// GetEventsInput is the input for the get_events MCP tool.
type GetEventsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of events, newest first (default: 20)"`
}

// GetEventsOutput is the result of the get_events MCP tool.
type GetEventsOutput struct {
	Events []EventSummary `json:"events"`
	Total  int            `json:"total"`
}

// EventSummary is the wire form of one recorded analysis event.
type EventSummary struct {
	ID         string  `json:"id"`
	Operation  string  `json:"operation"`
	Timestamp  string  `json:"timestamp"`
	DurationMS float64 `json:"durationMs"`
	Success    bool    `json:"success"`
	InputSize  int     `json:"inputSize"`
	OutputSize int     `json:"outputSize"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}
