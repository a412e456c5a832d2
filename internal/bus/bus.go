// Package bus defines the insight bus the analyzer publishes high-risk
// findings to, plus two implementations: an in-process channel bus and an
// HTTP bus that forwards insights to downstream tool endpoints. Emission is
// fire-and-forget; callers swallow any returned error.
package bus

import "context"

// InsightTypeCodeIssues labels insights about detected anti-patterns and
// high-risk side effects.
const InsightTypeCodeIssues = "code-issues"

// Insight is one finding forwarded to downstream tools.
type Insight struct {
	Type       string         `json:"type"`
	Data       map[string]any `json:"data"`
	Confidence float64        `json:"confidence"`
	Affects    []string       `json:"affects"`
}

// Message pairs an insight with the tool that produced it.
type Message struct {
	SourceID string  `json:"sourceId"`
	Insight  Insight `json:"insight"`
}

// Bus is the publish side of the insight channel.
type Bus interface {
	// ShareInsight publishes one insight. Implementations must not block
	// indefinitely; failures are reported through the error and never
	// retried here.
	ShareInsight(ctx context.Context, sourceID string, insight Insight) error
}

// Compile-time interface checks.
var (
	_ Bus = (*ChannelBus)(nil)
	_ Bus = (*HTTPBus)(nil)
	_ Bus = NopBus{}
)

// NopBus discards every insight. Useful as a default collaborator.
type NopBus struct{}

// ShareInsight discards the insight.
func (NopBus) ShareInsight(context.Context, string, Insight) error { return nil }
