// Package analyzer orchestrates the full intent pipeline: parse, run the
// extractor passes against the shared read-only AST, synthesize suggestions
// and confidence, assemble the CodeIntent, and emit telemetry and insight
// messages to the injected collaborators.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/bus"
	"github.com/dusk-indust/introspect/internal/confidence"
	"github.com/dusk-indust/introspect/internal/extract"
	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
	"github.com/dusk-indust/introspect/internal/suggest"
	"github.com/dusk-indust/introspect/internal/telemetry"
)

// Context is the optional caller-supplied metadata for one analysis.
type Context struct {
	FileName     string
	ProjectType  string
	Dependencies []string

	// Dialect overrides the dialect inferred from FileName.
	Dialect ast.Dialect
}

// Config holds analyzer identity and routing settings.
type Config struct {
	// ToolID identifies this analyzer in telemetry events and insights.
	ToolID string

	// Downstream lists the tool ids carried in every insight's Affects.
	Downstream []string
}

// DefaultConfig returns the default identity settings.
func DefaultConfig() Config {
	return Config{
		ToolID:     "intent-analyzer",
		Downstream: []string{"code-generator", "test-writer"},
	}
}

// Analyzer derives a CodeIntent record from one code unit at a time. It is
// safe for concurrent use: calls share only the parser grammars and the
// immutable registries.
type Analyzer struct {
	cfg     Config
	parser  *ast.Parser
	reg     *registry.Registries
	bus     bus.Bus
	tracker telemetry.Tracker

	purpose      *extract.PurposeDetector
	dataflow     *extract.DataFlowAnalyzer
	effects      *extract.SideEffectDetector
	deps         *extract.DependencyExtractor
	complexity   *extract.ComplexityAnalyzer
	patterns     *extract.PatternDetector
	antiPatterns *extract.AntiPatternDetector
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRelatedness forwards a cohesion relatedness predicate to the
// complexity analyzer.
func WithRelatedness(fn extract.RelatednessFunc) Option {
	return func(a *Analyzer) {
		a.complexity = extract.NewComplexityAnalyzer(a.reg, extract.WithRelatedness(fn))
	}
}

// New creates an Analyzer. A nil registries value uses the defaults; nil
// collaborators are replaced with no-ops.
func New(cfg Config, reg *registry.Registries, b bus.Bus, tracker telemetry.Tracker, opts ...Option) *Analyzer {
	if cfg.ToolID == "" {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = registry.Default()
	}
	if b == nil {
		b = bus.NopBus{}
	}
	if tracker == nil {
		tracker = telemetry.NopTracker{}
	}

	a := &Analyzer{
		cfg:     cfg,
		parser:  ast.NewParser(),
		reg:     reg,
		bus:     b,
		tracker: tracker,

		purpose:      extract.NewPurposeDetector(reg),
		dataflow:     extract.NewDataFlowAnalyzer(reg),
		effects:      extract.NewSideEffectDetector(reg),
		deps:         extract.NewDependencyExtractor(reg),
		complexity:   extract.NewComplexityAnalyzer(reg),
		patterns:     extract.NewPatternDetector(),
		antiPatterns: extract.NewAntiPatternDetector(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeIntent parses code and derives its intent record. The returned
// CodeIntent is best effort: a failing extractor degrades its facet to a
// zero value and appends a Diagnostic instead of aborting. Only an
// unrecoverable parse failure returns an error (an *ast.ParseError).
func (a *Analyzer) AnalyzeIntent(ctx context.Context, code string, actx *Context) (*intent.CodeIntent, error) {
	start := time.Now()
	if actx == nil {
		actx = &Context{}
	}

	file, err := a.parser.Parse(ctx, []byte(code), a.dialectFor(actx))
	if err != nil {
		a.trackFailure(ctx, start, len(code), err)
		var parseErr *ast.ParseError
		if errors.As(err, &parseErr) {
			return nil, parseErr
		}
		return nil, fmt.Errorf("analyze intent: %w", err)
	}
	defer file.Close()

	ci, res := a.extractAll(file, actx.FileName)

	ci.Suggestions = suggest.Evaluate(&suggest.Evidence{
		Purpose:      ci.Purpose,
		Inputs:       ci.Inputs,
		Outputs:      ci.Outputs,
		SideEffects:  ci.SideEffects,
		Dependencies: ci.Dependencies,
		Complexity:   ci.Complexity,
		Patterns:     ci.Patterns,
		AntiPatterns: ci.AntiPatterns,
		AwaitCount:   res.effects.AwaitCount,
	})

	ci.Confidence = confidence.Score(confidence.Factors{
		HasTypeAnnotations: res.dataflow.HasTypeAnnotations || res.facts.typeAnnotations,
		HasComments:        res.facts.comments,
		IsTestFile:         isTestFile(actx.FileName),
		PatternCount:       len(ci.Patterns),
		PurposeResolved:    res.purpose.Resolved(),
	})

	a.emit(ctx, start, len(code), ci)
	return ci, nil
}

// extraction carries the per-call intermediates that suggestion and
// confidence synthesis need beyond the assembled record.
type extraction struct {
	purpose  extract.PurposeResult
	dataflow extract.DataFlowResult
	effects  extract.SideEffectResult
	facts    sourceFacts
}

// extractAll fans the extractor passes out over the shared read-only AST.
// Each pass writes to its own facet, so the only synchronization needed is
// the diagnostics list.
func (a *Analyzer) extractAll(file *ast.File, fileName string) (*intent.CodeIntent, extraction) {
	root := file.Root()
	ci := &intent.CodeIntent{}

	var (
		mu  sync.Mutex
		res extraction
	)

	degrade := func(stage string, fn func()) func() error {
		return func() error {
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					ci.Diagnostics = append(ci.Diagnostics, intent.Diagnostic{
						Stage:   stage,
						Message: fmt.Sprint(r),
					})
					mu.Unlock()
				}
			}()
			fn()
			return nil
		}
	}

	var g errgroup.Group
	g.Go(degrade("purpose", func() {
		res.purpose = a.purpose.Detect(root, fileName)
	}))
	g.Go(degrade("dataflow", func() {
		res.dataflow = a.dataflow.Analyze(root)
	}))
	g.Go(degrade("side-effects", func() {
		res.effects = a.effects.Detect(root)
	}))
	g.Go(degrade("dependencies", func() {
		ci.Dependencies = a.deps.Extract(root)
	}))
	g.Go(degrade("complexity", func() {
		ci.Complexity = a.complexity.Analyze(root)
	}))
	g.Go(degrade("patterns", func() {
		ci.Patterns = a.patterns.Detect(root, file.Source)
	}))
	g.Go(degrade("anti-patterns", func() {
		ci.AntiPatterns = a.antiPatterns.Detect(root, file.Source)
	}))
	g.Go(degrade("facts", func() {
		res.facts = collectFacts(root)
	}))
	g.Wait() //nolint:errcheck // degrade never returns an error

	ci.Purpose = res.purpose.Purpose()
	ci.Category = res.purpose.Category
	ci.Actions = res.purpose.Actions
	ci.Inputs = res.dataflow.Inputs
	ci.Outputs = res.dataflow.Outputs
	ci.SideEffects = res.effects.Effects
	return ci, res
}

func (a *Analyzer) dialectFor(actx *Context) ast.Dialect {
	if actx.Dialect != "" {
		return actx.Dialect
	}
	return ast.DialectForFile(actx.FileName)
}

func isTestFile(fileName string) bool {
	lower := strings.ToLower(fileName)
	return strings.Contains(lower, "test") || strings.Contains(lower, ".spec.")
}

// --- Emission (fire-and-forget collaborators) ---

// emit records the success telemetry event and, when the analysis surfaced
// anti-patterns or high-risk side effects, publishes a code-issues insight.
// Collaborator failures are logged and swallowed; they never affect the
// returned CodeIntent.
func (a *Analyzer) emit(ctx context.Context, start time.Time, inputSize int, ci *intent.CodeIntent) {
	event := telemetry.NewEvent(a.cfg.ToolID, "analyzeIntent")
	event.Duration = time.Since(start)
	event.Success = true
	event.Input = telemetry.IOStat{Type: "source", Size: inputSize}
	event.Output = telemetry.IOStat{Type: "intent", Size: intentSize(ci)}
	event.Confidence = ci.Confidence

	if err := a.tracker.Track(ctx, event); err != nil {
		log.Printf("WARNING: telemetry track failed: %v", err)
	}

	if len(ci.AntiPatterns) == 0 && !ci.HasHighRiskEffect() {
		return
	}

	insight := bus.Insight{
		Type: bus.InsightTypeCodeIssues,
		Data: map[string]any{
			"purpose":      ci.Purpose,
			"antiPatterns": ci.AntiPatterns,
			"sideEffects":  ci.SideEffects,
			"suggestions":  ci.Suggestions,
		},
		Confidence: ci.Confidence,
		Affects:    a.cfg.Downstream,
	}
	if err := a.bus.ShareInsight(ctx, a.cfg.ToolID, insight); err != nil {
		log.Printf("WARNING: insight publish failed: %v", err)
	}
}

// trackFailure records a failure telemetry event; errors from the tracker
// itself are swallowed.
func (a *Analyzer) trackFailure(ctx context.Context, start time.Time, inputSize int, cause error) {
	event := telemetry.NewEvent(a.cfg.ToolID, "analyzeIntent")
	event.Duration = time.Since(start)
	event.Success = false
	event.Input = telemetry.IOStat{Type: "source", Size: inputSize}
	event.Error = cause.Error()

	if err := a.tracker.Track(ctx, event); err != nil {
		log.Printf("WARNING: telemetry track failed: %v", err)
	}
}

// intentSize measures the serialized record for telemetry output stats.
func intentSize(ci *intent.CodeIntent) int {
	data, err := json.Marshal(ci)
	if err != nil {
		return 0
	}
	return len(data)
}
