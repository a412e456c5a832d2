package ast

// Visitor receives one callback per node kind during a Walk. Adding a Kind
// means adding a method here; visitors embed NoopVisitor so they keep
// compiling with a no-op for kinds they don't care about.
type Visitor interface {
	VisitProgram(n Node)
	VisitFunction(n FunctionNode)
	VisitArrowFunction(n FunctionNode)
	VisitMethod(n FunctionNode)
	VisitClass(n ClassNode)
	VisitIf(n Node)
	VisitFor(n Node)
	VisitWhile(n Node)
	VisitSwitch(n Node)
	VisitSwitchCase(n Node)
	VisitTry(n Node)
	VisitCatch(n Node)
	VisitTernary(n Node)
	VisitBinary(n BinaryNode)
	VisitCall(n CallNode)
	VisitMember(n MemberNode)
	VisitAssignment(n AssignNode)
	VisitVariable(n VariableNode)
	VisitReturn(n Node)
	VisitAwait(n Node)
	VisitImport(n ImportNode)
	VisitJSX(n Node)
	VisitDecorator(n Node)
	VisitIdentifier(n Node)
	VisitNumber(n Node)
	VisitString(n Node)
	VisitComment(n Node)
	VisitOther(n Node)
}

// Scoper is an optional extension: visitors that track nesting receive
// EnterNode before a node's children are walked and LeaveNode after.
type Scoper interface {
	EnterNode(n Node)
	LeaveNode(n Node)
}

// NoopVisitor implements Visitor with no-ops for every kind. Embed it in
// concrete visitors.
type NoopVisitor struct{}

func (NoopVisitor) VisitProgram(Node)            {}
func (NoopVisitor) VisitFunction(FunctionNode)   {}
func (NoopVisitor) VisitArrowFunction(FunctionNode) {}
func (NoopVisitor) VisitMethod(FunctionNode)     {}
func (NoopVisitor) VisitClass(ClassNode)         {}
func (NoopVisitor) VisitIf(Node)                 {}
func (NoopVisitor) VisitFor(Node)                {}
func (NoopVisitor) VisitWhile(Node)              {}
func (NoopVisitor) VisitSwitch(Node)             {}
func (NoopVisitor) VisitSwitchCase(Node)         {}
func (NoopVisitor) VisitTry(Node)                {}
func (NoopVisitor) VisitCatch(Node)              {}
func (NoopVisitor) VisitTernary(Node)            {}
func (NoopVisitor) VisitBinary(BinaryNode)       {}
func (NoopVisitor) VisitCall(CallNode)           {}
func (NoopVisitor) VisitMember(MemberNode)       {}
func (NoopVisitor) VisitAssignment(AssignNode)   {}
func (NoopVisitor) VisitVariable(VariableNode)   {}
func (NoopVisitor) VisitReturn(Node)             {}
func (NoopVisitor) VisitAwait(Node)              {}
func (NoopVisitor) VisitImport(ImportNode)       {}
func (NoopVisitor) VisitJSX(Node)                {}
func (NoopVisitor) VisitDecorator(Node)          {}
func (NoopVisitor) VisitIdentifier(Node)         {}
func (NoopVisitor) VisitNumber(Node)             {}
func (NoopVisitor) VisitString(Node)             {}
func (NoopVisitor) VisitComment(Node)            {}
func (NoopVisitor) VisitOther(Node)              {}

// Walk traverses the subtree rooted at n depth-first in source order,
// dispatching each named node to the visitor. Traversal order is fully
// determined by the tree, so identical input yields identical callback
// sequences.
func Walk(n Node, v Visitor) {
	if n.IsZero() {
		return
	}

	dispatch(n, v)

	scoper, scoped := v.(Scoper)
	if scoped {
		scoper.EnterNode(n)
	}
	for _, child := range n.NamedChildren() {
		Walk(child, v)
	}
	if scoped {
		scoper.LeaveNode(n)
	}
}

func dispatch(n Node, v Visitor) {
	switch n.Kind() {
	case KindProgram:
		v.VisitProgram(n)
	case KindFunction:
		v.VisitFunction(FunctionNode{n})
	case KindArrowFunction:
		v.VisitArrowFunction(FunctionNode{n})
	case KindMethod:
		v.VisitMethod(FunctionNode{n})
	case KindClass:
		v.VisitClass(ClassNode{n})
	case KindIf:
		v.VisitIf(n)
	case KindFor:
		v.VisitFor(n)
	case KindWhile:
		v.VisitWhile(n)
	case KindSwitch:
		v.VisitSwitch(n)
	case KindSwitchCase:
		v.VisitSwitchCase(n)
	case KindTry:
		v.VisitTry(n)
	case KindCatch:
		v.VisitCatch(n)
	case KindTernary:
		v.VisitTernary(n)
	case KindBinary:
		v.VisitBinary(BinaryNode{n})
	case KindCall:
		v.VisitCall(CallNode{n})
	case KindMember:
		v.VisitMember(MemberNode{n})
	case KindAssignment:
		v.VisitAssignment(AssignNode{n})
	case KindVariable:
		v.VisitVariable(VariableNode{n})
	case KindReturn:
		v.VisitReturn(n)
	case KindAwait:
		v.VisitAwait(n)
	case KindImport:
		v.VisitImport(ImportNode{n})
	case KindJSX:
		v.VisitJSX(n)
	case KindDecorator:
		v.VisitDecorator(n)
	case KindIdentifier:
		v.VisitIdentifier(n)
	case KindNumber:
		v.VisitNumber(n)
	case KindString:
		v.VisitString(n)
	case KindComment:
		v.VisitComment(n)
	default:
		v.VisitOther(n)
	}
}

// Functions collects every function-like node (declarations, arrow
// functions, methods) in the subtree, in source order.
func Functions(root Node) []FunctionNode {
	var out []FunctionNode
	collector := &functionCollector{out: &out}
	Walk(root, collector)
	return out
}

type functionCollector struct {
	NoopVisitor
	out *[]FunctionNode
}

func (c *functionCollector) VisitFunction(n FunctionNode)      { *c.out = append(*c.out, n) }
func (c *functionCollector) VisitArrowFunction(n FunctionNode) { *c.out = append(*c.out, n) }
func (c *functionCollector) VisitMethod(n FunctionNode)        { *c.out = append(*c.out, n) }
