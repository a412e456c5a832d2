package extract

import (
	"strings"

	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

// DataFlowResult is the DataFlowAnalyzer output.
type DataFlowResult struct {
	Inputs  []intent.DataFlow
	Outputs []intent.DataFlow

	// HasTypeAnnotations reports whether any parameter carried an explicit
	// type annotation. Feeds the confidence scorer.
	HasTypeAnnotations bool
}

// DataFlowAnalyzer derives inputs from top-level function parameters and
// outputs from return statements. Transformation tracking is a best-effort
// scan of assignment history, not alias analysis.
type DataFlowAnalyzer struct {
	reg *registry.Registries
}

// NewDataFlowAnalyzer creates a DataFlowAnalyzer using the given registries.
func NewDataFlowAnalyzer(reg *registry.Registries) *DataFlowAnalyzer {
	return &DataFlowAnalyzer{reg: reg}
}

// Analyze inspects every top-level function in the code unit.
func (d *DataFlowAnalyzer) Analyze(root ast.Node) DataFlowResult {
	var res DataFlowResult

	for _, fn := range ast.Functions(root) {
		if !fn.IsTopLevel() {
			continue
		}
		body := fn.Body()
		calls := collectCalls(body)

		for _, p := range fn.Params() {
			res.Inputs = append(res.Inputs, d.paramFlow(p, calls, &res.HasTypeAnnotations))
		}
		for _, ret := range collectReturns(body) {
			res.Outputs = append(res.Outputs, d.returnFlow(ret, body))
		}
	}
	return res
}

// paramFlow builds the DataFlow record for one parameter.
func (d *DataFlowAnalyzer) paramFlow(p ast.ParamNode, calls []ast.CallNode, sawAnnotation *bool) intent.DataFlow {
	name := p.Name()

	paramType := p.TypeAnnotation()
	if paramType != "" {
		*sawAnnotation = true
	} else {
		paramType = ast.InferLiteralType(p.Default())
	}

	return intent.DataFlow{
		Name:        name,
		Type:        paramType,
		Source:      intent.SourceParameter,
		Validation:  d.validationCalls(name, calls),
		Sensitivity: d.reg.Sensitivity(name),
	}
}

// validationCalls returns the callees whose name carries a validation hint
// and whose arguments reference the parameter.
func (d *DataFlowAnalyzer) validationCalls(param string, calls []ast.CallNode) []string {
	var out []string
	for _, c := range calls {
		method := strings.ToLower(c.Method())
		hinted := false
		for _, hint := range d.reg.ValidationHints {
			if strings.Contains(method, hint) {
				hinted = true
				break
			}
		}
		if hinted && strings.Contains(c.ArgsText(), param) {
			out = append(out, c.Callee())
		}
	}
	return out
}

// returnFlow builds the DataFlow record for one return statement.
func (d *DataFlowAnalyzer) returnFlow(ret ast.Node, body ast.Node) intent.DataFlow {
	value := firstNamedChild(ret)

	name := "result"
	var transformations []string
	if value.Kind() == ast.KindIdentifier {
		name = value.Text()
		transformations = assignmentHistory(body, name, ret.StartLine())
	}

	return intent.DataFlow{
		Name:            name,
		Type:            ast.InferLiteralType(value),
		Source:          intent.SourceInternal,
		Transformations: transformations,
	}
}

// assignmentHistory scans the function body for assignments to the returned
// identifier before the return site and summarizes each right-hand side.
func assignmentHistory(body ast.Node, name string, beforeLine int) []string {
	v := &assignmentVisitor{name: name, beforeLine: beforeLine}
	ast.Walk(body, v)
	return v.history
}

type assignmentVisitor struct {
	ast.NoopVisitor
	name       string
	beforeLine int
	history    []string
}

func (v *assignmentVisitor) VisitVariable(n ast.VariableNode) {
	if n.Name() == v.name && n.StartLine() <= v.beforeLine {
		v.record(n.Value())
	}
}

func (v *assignmentVisitor) VisitAssignment(n ast.AssignNode) {
	if n.Target() == v.name && n.StartLine() <= v.beforeLine {
		v.record(n.Value())
	}
}

func (v *assignmentVisitor) record(value ast.Node) {
	if value.IsZero() {
		return
	}
	switch value.Kind() {
	case ast.KindCall:
		v.history = append(v.history, ast.CallNode{Node: value}.Callee())
	case ast.KindBinary, ast.KindTernary:
		v.history = append(v.history, "computed")
	case ast.KindAwait:
		inner := firstNamedChild(value)
		if inner.Kind() == ast.KindCall {
			v.history = append(v.history, ast.CallNode{Node: inner}.Callee())
		} else {
			v.history = append(v.history, "awaited")
		}
	default:
		v.history = append(v.history, "literal")
	}
}

// --- Shared sub-walk helpers ---

func firstNamedChild(n ast.Node) ast.Node {
	children := n.NamedChildren()
	if len(children) == 0 {
		return ast.Node{}
	}
	return children[0]
}

// collectCalls gathers every call expression in the subtree, in order.
func collectCalls(root ast.Node) []ast.CallNode {
	v := &callCollector{}
	ast.Walk(root, v)
	return v.calls
}

type callCollector struct {
	ast.NoopVisitor
	calls []ast.CallNode
}

func (c *callCollector) VisitCall(n ast.CallNode) { c.calls = append(c.calls, n) }

// collectReturns gathers every return statement in the subtree, in order.
func collectReturns(root ast.Node) []ast.Node {
	v := &returnCollector{}
	ast.Walk(root, v)
	return v.returns
}

type returnCollector struct {
	ast.NoopVisitor
	returns []ast.Node
}

func (c *returnCollector) VisitReturn(n ast.Node) { c.returns = append(c.returns, n) }
