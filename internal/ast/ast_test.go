package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionNode_ArrowFunctionTakesVariableName(t *testing.T) {
	file := mustParse(t, `const greet = async (name) => name.toUpperCase();`, DialectJavaScript)

	fns := Functions(file.Root())
	require.Len(t, fns, 1)
	assert.Equal(t, "greet", fns[0].Name())
	assert.True(t, fns[0].IsAsync())
	assert.True(t, fns[0].IsTopLevel())
}

func TestFunctionNode_ExportedFunctionIsTopLevel(t *testing.T) {
	file := mustParse(t, `export function handler(req, res) { res.send("ok"); }`, DialectTypeScript)

	fns := Functions(file.Root())
	require.Len(t, fns, 1)
	assert.True(t, fns[0].IsTopLevel())
}

func TestFunctionNode_NestedFunctionIsNotTopLevel(t *testing.T) {
	file := mustParse(t, `function outer() { function inner() {} }`, DialectJavaScript)

	fns := Functions(file.Root())
	require.Len(t, fns, 2)
	assert.True(t, fns[0].IsTopLevel())
	assert.False(t, fns[1].IsTopLevel())
}

func TestParamNode_DefaultValue(t *testing.T) {
	file := mustParse(t, `function page(limit = 20) { return limit; }`, DialectJavaScript)

	fns := Functions(file.Root())
	require.Len(t, fns, 1)
	params := fns[0].Params()
	require.Len(t, params, 1)
	assert.Equal(t, "limit", params[0].Name())
	require.False(t, params[0].Default().IsZero())
	assert.Equal(t, "number", InferLiteralType(params[0].Default()))
}

func TestClassNode_NameAndMethods(t *testing.T) {
	src := `class UserRepository {
  findById(id) { return this.db.find(id); }
  save(user) { return this.db.save(user); }
}`
	file := mustParse(t, src, DialectJavaScript)

	var classes []ClassNode
	collect := &classCollector{out: &classes}
	Walk(file.Root(), collect)

	require.Len(t, classes, 1)
	assert.Equal(t, "UserRepository", classes[0].Name())

	methods := classes[0].Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, "findById", methods[0].Name())
	assert.Equal(t, "save", methods[1].Name())
}

type classCollector struct {
	NoopVisitor
	out *[]ClassNode
}

func (c *classCollector) VisitClass(n ClassNode) { *c.out = append(*c.out, n) }

func TestCallNode_MemberChainReceiverAndMethod(t *testing.T) {
	file := mustParse(t, `db.users.save(user);`, DialectJavaScript)

	var calls []CallNode
	collect := &callCollector{out: &calls}
	Walk(file.Root(), collect)

	require.Len(t, calls, 1)
	assert.Equal(t, "db.users.save", calls[0].Callee())
	assert.Equal(t, "db", calls[0].Receiver())
	assert.Equal(t, "save", calls[0].Method())
	require.Len(t, calls[0].Args(), 1)
	assert.Contains(t, calls[0].ArgsText(), "user")
}

func TestCallNode_PlainCallHasNoReceiver(t *testing.T) {
	file := mustParse(t, `fetch("/api/users");`, DialectJavaScript)

	var calls []CallNode
	collect := &callCollector{out: &calls}
	Walk(file.Root(), collect)

	require.Len(t, calls, 1)
	assert.Equal(t, "fetch", calls[0].Callee())
	assert.Equal(t, "", calls[0].Receiver())
	assert.Equal(t, "fetch", calls[0].Method())
}

type callCollector struct {
	NoopVisitor
	out *[]CallNode
}

func (c *callCollector) VisitCall(n CallNode) { *c.out = append(*c.out, n) }

func TestImportNode_SpecifierStripsQuotes(t *testing.T) {
	file := mustParse(t, `import fs from "node:fs";`, DialectJavaScript)

	var specs []string
	collect := &importCollector{out: &specs}
	Walk(file.Root(), collect)

	require.Len(t, specs, 1)
	assert.Equal(t, "node:fs", specs[0])
}

type importCollector struct {
	NoopVisitor
	out *[]string
}

func (c *importCollector) VisitImport(n ImportNode) { *c.out = append(*c.out, n.Specifier()) }

func TestDecoratorName(t *testing.T) {
	src := `@Controller('users')
class UserController {}`
	file := mustParse(t, src, DialectTypeScript)

	var names []string
	collect := &decoratorCollector{out: &names}
	Walk(file.Root(), collect)

	require.Len(t, names, 1)
	assert.Equal(t, "Controller", names[0])
}

type decoratorCollector struct {
	NoopVisitor
	out *[]string
}

func (c *decoratorCollector) VisitDecorator(n Node) { *c.out = append(*c.out, DecoratorName(n)) }

func TestWalk_DeterministicOrder(t *testing.T) {
	src := `function a() {}
function b() {}
const c = () => {};`
	file := mustParse(t, src, DialectJavaScript)

	first := functionNames(file.Root())
	second := functionNames(file.Root())

	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func functionNames(root Node) []string {
	var names []string
	for _, fn := range Functions(root) {
		names = append(names, fn.Name())
	}
	return names
}

func TestKind_UnknownRawKindIsOther(t *testing.T) {
	assert.Equal(t, "other", KindOther.String())
	assert.Equal(t, KindOther, kindByRaw["no_such_grammar_kind"])
}
