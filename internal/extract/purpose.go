// Package extract implements the independent analysis passes that each walk
// the parsed AST once and produce one facet of the final intent record. The
// passes share nothing but the injected read-only registries, so the
// analyzer may run them concurrently.
package extract

import (
	"strings"

	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

// maxActions caps the recorded call-site identifiers per analysis.
const maxActions = 10

// PurposeResult is the PurposeDetector output.
type PurposeResult struct {
	// Labels holds every matched purpose label in AST visitation order.
	// Duplicates are kept; Purpose() joins them.
	Labels []string

	// Category is taken from the first matched signal.
	Category intent.Category

	// Actions are deduplicated call-site identifiers in visitation order,
	// capped at maxActions.
	Actions []string

	fallback bool
}

// Purpose returns the composite purpose string.
func (r PurposeResult) Purpose() string {
	return strings.Join(r.Labels, " + ")
}

// Resolved reports whether a real purpose signal matched (as opposed to the
// filename fallback or the generic default).
func (r PurposeResult) Resolved() bool {
	return len(r.Labels) > 0 && !r.fallback
}

// PurposeDetector matches node shapes against the purpose-signal table in a
// single traversal.
type PurposeDetector struct {
	reg *registry.Registries
}

// NewPurposeDetector creates a PurposeDetector using the given registries.
func NewPurposeDetector(reg *registry.Registries) *PurposeDetector {
	return &PurposeDetector{reg: reg}
}

// Detect walks the AST once, appending a label per matched signal in
// visitation order. When nothing matches it falls back to filename
// heuristics, then to "General purpose code".
func (d *PurposeDetector) Detect(root ast.Node, fileName string) PurposeResult {
	v := &purposeVisitor{reg: d.reg, seenActions: make(map[string]bool)}
	ast.Walk(root, v)

	res := PurposeResult{
		Labels:   v.labels,
		Actions:  v.actions,
		Category: intent.CategoryUtility,
	}
	if len(v.categories) > 0 {
		res.Category = v.categories[0]
	}

	if len(res.Labels) == 0 {
		label, category := fileNameFallback(fileName)
		res.Labels = []string{label}
		res.Category = category
		res.fallback = true
	}
	return res
}

// fileNameFallback maps filename substrings to a generic purpose.
func fileNameFallback(fileName string) (string, intent.Category) {
	lower := strings.ToLower(fileName)
	switch {
	case strings.Contains(lower, "controller"):
		return "API endpoint", intent.CategoryBusiness
	case strings.Contains(lower, "service"):
		return "Business logic", intent.CategoryBusiness
	case strings.Contains(lower, "util"):
		return "Utility functions", intent.CategoryUtility
	case strings.Contains(lower, "test"):
		return "Test code", intent.CategoryUtility
	default:
		return "General purpose code", intent.CategoryUtility
	}
}

type purposeVisitor struct {
	ast.NoopVisitor

	reg *registry.Registries

	labels     []string
	categories []intent.Category

	actions     []string
	seenActions map[string]bool

	jsxMatched bool
}

func (v *purposeVisitor) match(sig registry.PurposeSignal) {
	v.labels = append(v.labels, sig.Label)
	v.categories = append(v.categories, sig.Category)
}

func (v *purposeVisitor) VisitDecorator(n ast.Node) {
	name := ast.DecoratorName(n)
	for _, sig := range v.reg.PurposeSignals {
		if sig.Kind == registry.SignalDecorator && sig.Match == name {
			v.match(sig)
		}
	}
}

func (v *purposeVisitor) VisitClass(c ast.ClassNode) {
	name := c.Name()
	if name == "" {
		return
	}
	for _, sig := range v.reg.PurposeSignals {
		if sig.Kind == registry.SignalClassSuffix && strings.HasSuffix(name, sig.Match) {
			v.match(sig)
		}
	}
}

func (v *purposeVisitor) VisitFunction(fn ast.FunctionNode) { v.matchFunction(fn) }

func (v *purposeVisitor) VisitMethod(fn ast.FunctionNode) { v.matchFunction(fn) }

func (v *purposeVisitor) VisitArrowFunction(fn ast.FunctionNode) { v.matchFunction(fn) }

func (v *purposeVisitor) matchFunction(fn ast.FunctionNode) {
	name := fn.Name()
	if name == "" {
		return
	}
	lower := strings.ToLower(name)
	for _, sig := range v.reg.PurposeSignals {
		switch sig.Kind {
		case registry.SignalFuncPrefix:
			if strings.HasPrefix(name, sig.Match) {
				v.match(sig)
			}
		case registry.SignalFuncContains:
			if strings.Contains(lower, sig.Match) {
				v.match(sig)
			}
		}
	}
}

func (v *purposeVisitor) VisitCall(c ast.CallNode) {
	callee := c.Callee()
	for _, sig := range v.reg.PurposeSignals {
		if sig.Kind == registry.SignalCallPrefix && strings.HasPrefix(callee, sig.Match) {
			v.match(sig)
		}
	}

	if callee != "" && !v.seenActions[callee] && len(v.actions) < maxActions {
		v.seenActions[callee] = true
		v.actions = append(v.actions, callee)
	}
}

func (v *purposeVisitor) VisitJSX(n ast.Node) {
	if v.jsxMatched {
		return
	}
	v.jsxMatched = true
	for _, sig := range v.reg.PurposeSignals {
		if sig.Kind == registry.SignalJSX {
			v.match(sig)
		}
	}
}
