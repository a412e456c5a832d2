// Package ast wraps the tree-sitter JavaScript/TypeScript grammars behind a
// closed, typed node-kind enumeration and an exhaustive visitor. Extractors
// never dispatch on raw grammar strings; unknown grammar constructs collapse
// into KindOther instead of silently vanishing.
package ast

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Kind is the closed set of node kinds the analyzer understands.
type Kind int

const (
	KindOther Kind = iota
	KindProgram
	KindFunction
	KindArrowFunction
	KindMethod
	KindClass
	KindIf
	KindFor
	KindWhile
	KindSwitch
	KindSwitchCase
	KindTry
	KindCatch
	KindTernary
	KindBinary
	KindCall
	KindMember
	KindAssignment
	KindVariable
	KindReturn
	KindAwait
	KindImport
	KindJSX
	KindDecorator
	KindIdentifier
	KindNumber
	KindString
	KindComment
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindProgram:
		return "program"
	case KindFunction:
		return "function"
	case KindArrowFunction:
		return "arrow-function"
	case KindMethod:
		return "method"
	case KindClass:
		return "class"
	case KindIf:
		return "if"
	case KindFor:
		return "for"
	case KindWhile:
		return "while"
	case KindSwitch:
		return "switch"
	case KindSwitchCase:
		return "switch-case"
	case KindTry:
		return "try"
	case KindCatch:
		return "catch"
	case KindTernary:
		return "ternary"
	case KindBinary:
		return "binary"
	case KindCall:
		return "call"
	case KindMember:
		return "member"
	case KindAssignment:
		return "assignment"
	case KindVariable:
		return "variable"
	case KindReturn:
		return "return"
	case KindAwait:
		return "await"
	case KindImport:
		return "import"
	case KindJSX:
		return "jsx"
	case KindDecorator:
		return "decorator"
	case KindIdentifier:
		return "identifier"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindComment:
		return "comment"
	case KindBlock:
		return "block"
	default:
		return "other"
	}
}

// kindByRaw maps raw tree-sitter grammar kinds onto the closed Kind set.
// Both the javascript and typescript grammars share these names.
var kindByRaw = map[string]Kind{
	"program":                          KindProgram,
	"function_declaration":             KindFunction,
	"function_expression":              KindFunction,
	"generator_function_declaration":   KindFunction,
	"generator_function":               KindFunction,
	"arrow_function":                   KindArrowFunction,
	"method_definition":                KindMethod,
	"class_declaration":                KindClass,
	"class":                            KindClass,
	"if_statement":                     KindIf,
	"for_statement":                    KindFor,
	"for_in_statement":                 KindFor,
	"while_statement":                  KindWhile,
	"do_statement":                     KindWhile,
	"switch_statement":                 KindSwitch,
	"switch_case":                      KindSwitchCase,
	"switch_default":                   KindSwitchCase,
	"try_statement":                    KindTry,
	"catch_clause":                     KindCatch,
	"ternary_expression":               KindTernary,
	"binary_expression":                KindBinary,
	"call_expression":                  KindCall,
	"member_expression":                KindMember,
	"assignment_expression":            KindAssignment,
	"augmented_assignment_expression":  KindAssignment,
	"variable_declarator":              KindVariable,
	"return_statement":                 KindReturn,
	"await_expression":                 KindAwait,
	"import_statement":                 KindImport,
	"jsx_element":                      KindJSX,
	"jsx_self_closing_element":         KindJSX,
	"decorator":                        KindDecorator,
	"identifier":                       KindIdentifier,
	"number":                           KindNumber,
	"string":                           KindString,
	"template_string":                  KindString,
	"comment":                          KindComment,
	"statement_block":                  KindBlock,
	"class_body":                       KindBlock,
	"object":                           KindBlock,
}

// Node is a read-only view over one tree-sitter node plus the source it was
// parsed from. The zero value is "no node"; check IsZero before use.
type Node struct {
	ts  *tree_sitter.Node
	src []byte
}

// IsZero reports whether the node view is empty.
func (n Node) IsZero() bool { return n.ts == nil }

// Kind returns the typed kind for this node.
func (n Node) Kind() Kind {
	if n.ts == nil {
		return KindOther
	}
	return kindByRaw[n.ts.Kind()]
}

// RawKind returns the underlying grammar kind string.
func (n Node) RawKind() string {
	if n.ts == nil {
		return ""
	}
	return n.ts.Kind()
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	if n.ts == nil {
		return ""
	}
	return n.ts.Utf8Text(n.src)
}

// StartLine returns the 1-based start line.
func (n Node) StartLine() int {
	if n.ts == nil {
		return 0
	}
	return int(n.ts.StartPosition().Row) + 1
}

// EndLine returns the 1-based end line.
func (n Node) EndLine() int {
	if n.ts == nil {
		return 0
	}
	return int(n.ts.EndPosition().Row) + 1
}

// Field returns the child in the given grammar field, or a zero Node.
func (n Node) Field(name string) Node {
	if n.ts == nil {
		return Node{}
	}
	child := n.ts.ChildByFieldName(name)
	if child == nil {
		return Node{}
	}
	return Node{ts: child, src: n.src}
}

// NamedChildren returns all named children in order.
func (n Node) NamedChildren() []Node {
	if n.ts == nil {
		return nil
	}
	count := n.ts.NamedChildCount()
	out := make([]Node, 0, count)
	for i := uint(0); i < count; i++ {
		child := n.ts.NamedChild(i)
		if child != nil {
			out = append(out, Node{ts: child, src: n.src})
		}
	}
	return out
}

// Parent returns the parent node, or a zero Node at the root.
func (n Node) Parent() Node {
	if n.ts == nil {
		return Node{}
	}
	p := n.ts.Parent()
	if p == nil {
		return Node{}
	}
	return Node{ts: p, src: n.src}
}

// hasToken reports whether any direct child is the given anonymous token,
// e.g. the "async" keyword on a function.
func (n Node) hasToken(token string) bool {
	if n.ts == nil {
		return false
	}
	count := n.ts.ChildCount()
	for i := uint(0); i < count; i++ {
		child := n.ts.Child(i)
		if child != nil && !child.IsNamed() && child.Kind() == token {
			return true
		}
	}
	return false
}

// --- Typed node views ---

// FunctionNode views function declarations, function expressions, arrow
// functions, and class methods.
type FunctionNode struct{ Node }

// Name returns the declared function name. Arrow functions take the name of
// the variable they are assigned to; anonymous functions return "".
func (f FunctionNode) Name() string {
	if name := f.Field("name"); !name.IsZero() {
		return name.Text()
	}
	if f.Kind() == KindArrowFunction || f.Kind() == KindFunction {
		if parent := f.Parent(); parent.Kind() == KindVariable {
			if name := parent.Field("name"); !name.IsZero() {
				return name.Text()
			}
		}
	}
	return ""
}

// IsAsync reports whether the function carries the async keyword.
func (f FunctionNode) IsAsync() bool { return f.hasToken("async") }

// Body returns the function body block (or expression for arrow functions).
func (f FunctionNode) Body() Node { return f.Field("body") }

// Params returns the formal parameters in declaration order.
func (f FunctionNode) Params() []ParamNode {
	params := f.Field("parameters")
	if params.IsZero() {
		// Single-parameter arrow function without parentheses.
		if p := f.Field("parameter"); !p.IsZero() {
			return []ParamNode{{p}}
		}
		return nil
	}
	children := params.NamedChildren()
	out := make([]ParamNode, 0, len(children))
	for _, c := range children {
		out = append(out, ParamNode{c})
	}
	return out
}

// IsTopLevel reports whether the function is declared at module scope,
// either directly or behind an export statement. Arrow functions count when
// their enclosing declaration is at module scope.
func (f FunctionNode) IsTopLevel() bool {
	n := f.Node
	for {
		parent := n.Parent()
		if parent.IsZero() {
			return false
		}
		switch parent.Kind() {
		case KindProgram:
			return true
		case KindVariable:
			n = parent
		default:
			if parent.RawKind() == "export_statement" || parent.RawKind() == "lexical_declaration" ||
				parent.RawKind() == "variable_declaration" || parent.RawKind() == "expression_statement" {
				n = parent
				continue
			}
			return false
		}
	}
}

// ParamNode views a single formal parameter. The typescript grammar wraps
// parameters in required_parameter/optional_parameter; the javascript
// grammar uses bare identifiers and assignment_patterns.
type ParamNode struct{ Node }

// Name returns the parameter's binding name. Destructuring patterns return
// their full source text.
func (p ParamNode) Name() string {
	if p.Kind() == KindIdentifier {
		return p.Text()
	}
	if pattern := p.Field("pattern"); !pattern.IsZero() {
		return pattern.Text()
	}
	if left := p.Field("left"); !left.IsZero() {
		return left.Text()
	}
	return p.Text()
}

// TypeAnnotation returns the declared type without the leading colon, or "".
func (p ParamNode) TypeAnnotation() string {
	t := p.Field("type")
	if t.IsZero() {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(t.Text(), ":"))
}

// Default returns the parameter's default value expression, or a zero Node.
func (p ParamNode) Default() Node {
	if v := p.Field("value"); !v.IsZero() {
		return v
	}
	return p.Field("right")
}

// ClassNode views class declarations.
type ClassNode struct{ Node }

// Name returns the declared class name, or "" for anonymous classes.
func (c ClassNode) Name() string {
	if name := c.Field("name"); !name.IsZero() {
		return name.Text()
	}
	return ""
}

// Methods returns the method definitions in the class body, in order.
func (c ClassNode) Methods() []FunctionNode {
	body := c.Field("body")
	if body.IsZero() {
		return nil
	}
	var out []FunctionNode
	for _, child := range body.NamedChildren() {
		if child.Kind() == KindMethod {
			out = append(out, FunctionNode{child})
		}
	}
	return out
}

// CallNode views call expressions.
type CallNode struct{ Node }

// Callee returns the full callee text, e.g. "db.users.save" or "fetch".
func (c CallNode) Callee() string { return c.Field("function").Text() }

// Receiver returns the base object of a member call ("db" for
// db.users.save(...)), or "" for plain calls.
func (c CallNode) Receiver() string {
	fn := c.Field("function")
	if fn.Kind() != KindMember {
		return ""
	}
	obj := fn.Field("object")
	for obj.Kind() == KindMember {
		obj = obj.Field("object")
	}
	return obj.Text()
}

// Method returns the invoked name: the member property for member calls, the
// identifier for plain calls.
func (c CallNode) Method() string {
	fn := c.Field("function")
	if fn.Kind() == KindMember {
		return fn.Field("property").Text()
	}
	return fn.Text()
}

// Args returns the call's argument nodes.
func (c CallNode) Args() []Node {
	args := c.Field("arguments")
	if args.IsZero() {
		return nil
	}
	return args.NamedChildren()
}

// ArgsText returns the raw text of the argument list.
func (c CallNode) ArgsText() string { return c.Field("arguments").Text() }

// MemberNode views member expressions.
type MemberNode struct{ Node }

// Object returns the base object identifier of the member chain.
func (m MemberNode) Object() string {
	obj := m.Field("object")
	for obj.Kind() == KindMember {
		obj = obj.Field("object")
	}
	return obj.Text()
}

// Property returns the accessed property name.
func (m MemberNode) Property() string { return m.Field("property").Text() }

// AssignNode views assignment expressions.
type AssignNode struct{ Node }

// Target returns the full text of the assignment's left-hand side.
func (a AssignNode) Target() string { return a.Field("left").Text() }

// Value returns the right-hand side expression.
func (a AssignNode) Value() Node { return a.Field("right") }

// VariableNode views variable declarators.
type VariableNode struct{ Node }

// Name returns the declared binding name.
func (v VariableNode) Name() string { return v.Field("name").Text() }

// Value returns the initializer expression, or a zero Node.
func (v VariableNode) Value() Node { return v.Field("value") }

// BinaryNode views binary expressions.
type BinaryNode struct{ Node }

// Operator returns the operator token text, e.g. "&&" or "+".
func (b BinaryNode) Operator() string { return b.Field("operator").Text() }

// ImportNode views import statements.
type ImportNode struct{ Node }

// Specifier returns the imported module specifier without quotes.
func (i ImportNode) Specifier() string {
	source := i.Field("source")
	if source.IsZero() {
		// Fall back: look for a string child.
		for _, child := range i.NamedChildren() {
			if child.Kind() == KindString {
				source = child
				break
			}
		}
	}
	if source.IsZero() {
		return ""
	}
	return strings.Trim(source.Text(), "\"'`")
}

// DecoratorName returns the bare decorator name for a decorator node:
// "@Controller('users')" yields "Controller".
func DecoratorName(n Node) string {
	text := strings.TrimPrefix(n.Text(), "@")
	if idx := strings.IndexAny(text, "(."); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// InferLiteralType maps a literal expression to a loose type name. Used when
// no type annotation is present.
func InferLiteralType(n Node) string {
	if n.IsZero() {
		return "unknown"
	}
	switch n.RawKind() {
	case "number":
		return "number"
	case "string", "template_string":
		return "string"
	case "true", "false":
		return "boolean"
	case "array":
		return "array"
	case "object":
		return "object"
	case "arrow_function", "function_expression", "function_declaration":
		return "function"
	case "null":
		return "null"
	default:
		return "unknown"
	}
}
