package extract

import (
	"strings"

	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

// SideEffectResult is the SideEffectDetector output.
type SideEffectResult struct {
	Effects []intent.SideEffect

	// AwaitCount is the total number of await expressions. The effects list
	// carries at most one async marker regardless of this count.
	AwaitCount int
}

// SideEffectDetector recognizes externally observable actions in a single
// traversal. Read-style member calls (find, get, query) deliberately do not
// count as database writes; only the registry's write-method set does.
type SideEffectDetector struct {
	reg *registry.Registries
}

// NewSideEffectDetector creates a SideEffectDetector using the given
// registries.
func NewSideEffectDetector(reg *registry.Registries) *SideEffectDetector {
	return &SideEffectDetector{reg: reg}
}

// Detect walks the AST once and returns findings in visitation order, each
// carrying the fixed risk for its effect type.
func (d *SideEffectDetector) Detect(root ast.Node) SideEffectResult {
	v := &effectVisitor{reg: d.reg}
	ast.Walk(root, v)
	return SideEffectResult{Effects: v.effects, AwaitCount: v.awaits}
}

type effectVisitor struct {
	ast.NoopVisitor

	reg *registry.Registries

	effects    []intent.SideEffect
	awaits     int
	asyncNoted bool
}

func (v *effectVisitor) add(t intent.EffectType, action, target string) {
	v.effects = append(v.effects, intent.SideEffect{
		Type:   t,
		Action: action,
		Target: target,
		Risk:   intent.RiskFor(t),
	})
}

func (v *effectVisitor) VisitCall(c ast.CallNode) {
	receiver := c.Receiver()
	method := c.Method()

	switch {
	case receiver == "console" && inList(v.reg.ConsoleMethods, method):
		v.add(intent.EffectConsole, "console."+method, "")

	case receiver != "" && v.reg.IsWriteMethod(method):
		v.add(intent.EffectDatabase, method, receiver)

	case v.isNetworkCallee(receiver, method):
		v.add(intent.EffectNetwork, c.Callee(), "")
	}
}

// isNetworkCallee matches plain network identifiers (fetch(...)) and member
// calls on network clients (axios.get(...)).
func (v *effectVisitor) isNetworkCallee(receiver, method string) bool {
	if receiver == "" {
		return inList(v.reg.NetworkCalls, method)
	}
	return inList(v.reg.NetworkCalls, receiver)
}

// VisitMember flags filesystem-module member access. Both fs.readFileSync
// and a bare fs.promises reference count.
func (v *effectVisitor) VisitMember(m ast.MemberNode) {
	object := m.Object()
	if !inList(v.reg.FilesystemModules, object) {
		return
	}
	// Only the outermost member expression reports, so fs.promises.readFile
	// yields one finding instead of two.
	if parent := m.Parent(); parent.Kind() == ast.KindMember {
		return
	}
	v.add(intent.EffectFile, m.Property(), object)
}

// VisitAssignment flags writes to well-known global objects.
func (v *effectVisitor) VisitAssignment(a ast.AssignNode) {
	target := a.Target()
	for _, g := range v.reg.GlobalObjects {
		if strings.HasPrefix(target, g+".") || target == g {
			v.add(intent.EffectGlobal, "assign", target)
			return
		}
	}
}

// VisitAwait counts awaits and emits the single async marker on the first.
func (v *effectVisitor) VisitAwait(ast.Node) {
	v.awaits++
	if !v.asyncNoted {
		v.asyncNoted = true
		v.add(intent.EffectAsync, "await", "")
	}
}

func inList(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
