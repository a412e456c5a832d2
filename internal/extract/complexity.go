package extract

import (
	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

// metricCap bounds the cognitive and coupling scores.
const metricCap = 100

// RelatednessFunc decides whether a function belongs with the others in the
// same code unit, for the cohesion ratio. The default treats every function
// as related.
type RelatednessFunc func(name string, all []string) bool

// ComplexityAnalyzer computes the heuristic complexity metrics in one
// depth-tracked traversal.
type ComplexityAnalyzer struct {
	reg     *registry.Registries
	related RelatednessFunc
}

// ComplexityOption configures a ComplexityAnalyzer.
type ComplexityOption func(*ComplexityAnalyzer)

// WithRelatedness replaces the permissive default relatedness predicate.
func WithRelatedness(fn RelatednessFunc) ComplexityOption {
	return func(c *ComplexityAnalyzer) {
		c.related = fn
	}
}

// NewComplexityAnalyzer creates a ComplexityAnalyzer using the given
// registries.
func NewComplexityAnalyzer(reg *registry.Registries, opts ...ComplexityOption) *ComplexityAnalyzer {
	c := &ComplexityAnalyzer{
		reg:     reg,
		related: func(string, []string) bool { return true },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze walks the AST once and returns the capped metrics. Cyclomatic
// complexity starts at 1 for the single linear execution path.
func (c *ComplexityAnalyzer) Analyze(root ast.Node) intent.ComplexityAnalysis {
	v := &complexityVisitor{reg: c.reg, cyclomatic: 1}
	ast.Walk(root, v)

	return intent.ComplexityAnalysis{
		Cognitive:  capAt(v.cognitive, metricCap),
		Cyclomatic: v.cyclomatic,
		Depth:      v.maxDepth,
		Coupling:   capAt(v.coupling, metricCap),
		Cohesion:   c.cohesion(v.functionNames),
	}
}

// cohesion returns the related-to-total function ratio as a 0-100 integer.
// A unit with no functions is trivially cohesive.
func (c *ComplexityAnalyzer) cohesion(names []string) int {
	if len(names) == 0 {
		return 100
	}
	related := 0
	for _, name := range names {
		if c.related(name, names) {
			related++
		}
	}
	return related * 100 / len(names)
}

type complexityVisitor struct {
	ast.NoopVisitor

	reg *registry.Registries

	cognitive  int
	cyclomatic int
	coupling   int

	depth    int
	maxDepth int

	functionNames []string
}

func (v *complexityVisitor) VisitIf(n ast.Node) {
	v.cognitive++
	if !n.Field("alternative").IsZero() {
		v.cognitive++
	}
	v.cyclomatic++
}

func (v *complexityVisitor) VisitFor(ast.Node) {
	v.cognitive += 2
	v.cyclomatic++
}

func (v *complexityVisitor) VisitWhile(ast.Node) {
	v.cognitive += 2
	v.cyclomatic++
}

func (v *complexityVisitor) VisitSwitch(ast.Node) {
	v.cognitive += 2
}

func (v *complexityVisitor) VisitSwitchCase(n ast.Node) {
	// The default clause adds no execution path.
	if n.RawKind() == "switch_case" {
		v.cyclomatic++
	}
}

func (v *complexityVisitor) VisitTry(ast.Node) {
	v.cognitive += 2
}

func (v *complexityVisitor) VisitCatch(ast.Node) {
	v.cyclomatic++
}

func (v *complexityVisitor) VisitTernary(ast.Node) {
	v.cognitive++
	v.cyclomatic++
}

func (v *complexityVisitor) VisitBinary(n ast.BinaryNode) {
	op := n.Operator()
	if op == "&&" || op == "||" {
		v.cyclomatic++
	}
}

// VisitCall counts member calls on non-builtin receivers toward coupling.
func (v *complexityVisitor) VisitCall(c ast.CallNode) {
	receiver := c.Receiver()
	if receiver == "" {
		return
	}
	for _, builtin := range v.reg.BuiltinReceivers {
		if receiver == builtin {
			return
		}
	}
	v.coupling++
}

func (v *complexityVisitor) VisitFunction(fn ast.FunctionNode) { v.recordFunction(fn) }

func (v *complexityVisitor) VisitMethod(fn ast.FunctionNode) { v.recordFunction(fn) }

func (v *complexityVisitor) VisitArrowFunction(fn ast.FunctionNode) { v.recordFunction(fn) }

func (v *complexityVisitor) recordFunction(fn ast.FunctionNode) {
	name := fn.Name()
	if name == "" {
		name = "(anonymous)"
	}
	v.functionNames = append(v.functionNames, name)
}

// EnterNode and LeaveNode track block nesting for the depth metric.
func (v *complexityVisitor) EnterNode(n ast.Node) {
	if n.Kind() == ast.KindBlock {
		v.depth++
		if v.depth > v.maxDepth {
			v.maxDepth = v.depth
		}
	}
}

func (v *complexityVisitor) LeaveNode(n ast.Node) {
	if n.Kind() == ast.KindBlock {
		v.depth--
	}
}

func capAt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
