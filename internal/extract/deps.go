package extract

import (
	"strings"

	"github.com/dusk-indust/introspect/internal/ast"
	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

// DependencyExtractor collects import declarations and require() calls,
// deduplicated by module specifier in first-seen order.
type DependencyExtractor struct {
	reg *registry.Registries
}

// NewDependencyExtractor creates a DependencyExtractor using the given
// registries.
func NewDependencyExtractor(reg *registry.Registries) *DependencyExtractor {
	return &DependencyExtractor{reg: reg}
}

// Extract walks the AST once and classifies every referenced module.
func (d *DependencyExtractor) Extract(root ast.Node) []intent.Dependency {
	v := &depVisitor{reg: d.reg, seen: make(map[string]bool)}
	ast.Walk(root, v)
	return v.deps
}

type depVisitor struct {
	ast.NoopVisitor

	reg  *registry.Registries
	seen map[string]bool
	deps []intent.Dependency
}

func (v *depVisitor) VisitImport(n ast.ImportNode) {
	v.record(n.Specifier())
}

// VisitCall picks up CommonJS require("...") calls.
func (v *depVisitor) VisitCall(c ast.CallNode) {
	if c.Callee() != "require" {
		return
	}
	args := c.Args()
	if len(args) == 0 || args[0].Kind() != ast.KindString {
		return
	}
	v.record(strings.Trim(args[0].Text(), "\"'`"))
}

func (v *depVisitor) record(specifier string) {
	if specifier == "" || v.seen[specifier] {
		return
	}
	v.seen[specifier] = true

	v.deps = append(v.deps, intent.Dependency{
		Name:     specifier,
		Type:     v.classify(specifier),
		Purpose:  v.reg.PurposeOf(strings.TrimPrefix(specifier, "node:")),
		Critical: v.reg.IsCritical(specifier),
	})
}

func (v *depVisitor) classify(specifier string) intent.DepType {
	switch {
	case strings.HasPrefix(specifier, "."):
		return intent.DepInternal
	case v.reg.IsSystemModule(specifier):
		return intent.DepSystem
	default:
		return intent.DepExternal
	}
}
