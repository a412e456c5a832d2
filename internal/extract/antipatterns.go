package extract

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/dusk-indust/introspect/internal/ast"
)

// Anti-pattern thresholds from the reference heuristics.
const (
	godObjectMethods  = 20 // methods per class
	callbackDepthMax  = 5  // nested call expressions
	magicNumberCount  = 5  // occurrences of non-trivial literals
	duplicateWindow   = 5  // lines per duplicate-detection window
	longParamList     = 4  // parameters per function
	deepNestingBlocks = 4  // nested blocks
	unusedVarCount    = 2  // declared-but-unreferenced identifiers
)

// allowedNumbers are literals that never count as magic numbers.
var allowedNumbers = map[string]bool{
	"0": true, "1": true, "-1": true, "10": true, "100": true,
}

// AntiPatternDetector evaluates an ordered list of anti-pattern predicates.
// Like the pattern rules, predicates are independent and all of them run.
type AntiPatternDetector struct{}

// NewAntiPatternDetector creates an AntiPatternDetector.
func NewAntiPatternDetector() *AntiPatternDetector {
	return &AntiPatternDetector{}
}

// Detect walks the AST once, gathers the lexical window scan, and returns
// matched labels in fixed rule order.
func (d *AntiPatternDetector) Detect(root ast.Node, source []byte) []string {
	v := &antiPatternVisitor{
		identifierUses: make(map[string]int),
		magicNumbers:   make(map[string]int),
	}
	ast.Walk(root, v)

	var matched []string
	if v.godObject {
		matched = append(matched, "God object")
	}
	if v.maxCallDepth > callbackDepthMax {
		matched = append(matched, "Callback nesting")
	}
	if v.magicTotal() > magicNumberCount {
		matched = append(matched, "Magic numbers")
	}
	if hasDuplicateWindows(source) {
		matched = append(matched, "Duplicate code")
	}
	if v.longParams {
		matched = append(matched, "Long parameter list")
	}
	if v.maxBlockDepth > deepNestingBlocks {
		matched = append(matched, "Deep nesting")
	}
	if v.unusedVariables() > unusedVarCount {
		matched = append(matched, "Unused variables")
	}
	return matched
}

type antiPatternVisitor struct {
	ast.NoopVisitor

	godObject  bool
	longParams bool

	callDepth    int
	maxCallDepth int

	blockDepth    int
	maxBlockDepth int

	declaredVars   []string
	identifierUses map[string]int
	magicNumbers   map[string]int
}

func (v *antiPatternVisitor) VisitClass(c ast.ClassNode) {
	if len(c.Methods()) > godObjectMethods {
		v.godObject = true
	}
}

func (v *antiPatternVisitor) VisitFunction(fn ast.FunctionNode) { v.checkParams(fn) }

func (v *antiPatternVisitor) VisitMethod(fn ast.FunctionNode) { v.checkParams(fn) }

func (v *antiPatternVisitor) VisitArrowFunction(fn ast.FunctionNode) { v.checkParams(fn) }

func (v *antiPatternVisitor) checkParams(fn ast.FunctionNode) {
	if len(fn.Params()) > longParamList {
		v.longParams = true
	}
}

func (v *antiPatternVisitor) VisitNumber(n ast.Node) {
	text := n.Text()
	if !allowedNumbers[text] {
		v.magicNumbers[text]++
	}
}

func (v *antiPatternVisitor) VisitVariable(n ast.VariableNode) {
	if name := n.Name(); name != "" {
		v.declaredVars = append(v.declaredVars, name)
	}
}

func (v *antiPatternVisitor) VisitIdentifier(n ast.Node) {
	v.identifierUses[n.Text()]++
}

// EnterNode and LeaveNode track call and block nesting.
func (v *antiPatternVisitor) EnterNode(n ast.Node) {
	switch n.Kind() {
	case ast.KindCall:
		v.callDepth++
		if v.callDepth > v.maxCallDepth {
			v.maxCallDepth = v.callDepth
		}
	case ast.KindBlock:
		v.blockDepth++
		if v.blockDepth > v.maxBlockDepth {
			v.maxBlockDepth = v.blockDepth
		}
	}
}

func (v *antiPatternVisitor) LeaveNode(n ast.Node) {
	switch n.Kind() {
	case ast.KindCall:
		v.callDepth--
	case ast.KindBlock:
		v.blockDepth--
	}
}

func (v *antiPatternVisitor) magicTotal() int {
	total := 0
	for _, count := range v.magicNumbers {
		total += count
	}
	return total
}

// unusedVariables counts declared identifiers whose only occurrence is their
// declaration site.
func (v *antiPatternVisitor) unusedVariables() int {
	unused := 0
	for _, name := range v.declaredVars {
		if v.identifierUses[name] <= 1 {
			unused++
		}
	}
	return unused
}

// hasDuplicateWindows hashes every window of duplicateWindow consecutive
// non-blank trimmed lines and reports whether any window repeats. Trivial
// windows (mostly braces) are skipped via a minimum length guard.
func hasDuplicateWindows(source []byte) bool {
	var lines []string
	for _, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < duplicateWindow*2 {
		return false
	}

	seen := make(map[uint64]bool, len(lines))
	for i := 0; i+duplicateWindow <= len(lines); i++ {
		window := strings.Join(lines[i:i+duplicateWindow], "\n")
		if len(window) < 30 {
			continue
		}
		h := xxhash.Sum64String(window)
		if seen[h] {
			return true
		}
		seen[h] = true
	}
	return false
}
