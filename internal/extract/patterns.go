package extract

import (
	"regexp"
	"strings"

	"github.com/dusk-indust/introspect/internal/ast"
)

// Lexical pattern signatures. Compiled once at package init; the predicate
// table itself is built per detector so tests can observe ordering.
var (
	singletonRx  = regexp.MustCompile(`getInstance\s*\(|static\s+instance`)
	factoryRx    = regexp.MustCompile(`(?:function|const|let)\s+(?:create|make)[A-Z]\w*|class\s+\w*Factory`)
	observerRx   = regexp.MustCompile(`\.(?:subscribe|addEventListener|emit|on)\s*\(`)
	builderRx    = regexp.MustCompile(`\.build\s*\(\s*\)|class\s+\w*Builder`)
	middlewareRx = regexp.MustCompile(`\(\s*req\s*,\s*res\s*,\s*next\s*\)`)
)

// patternFacts carries the inputs shared by all pattern predicates.
type patternFacts struct {
	source  string
	classes []ast.ClassNode
}

// patternRule is one named predicate. Predicates are independent and never
// short-circuit each other.
type patternRule struct {
	name  string
	match func(*patternFacts) bool
}

// PatternDetector evaluates an ordered list of design-pattern predicates
// against the AST and raw source.
type PatternDetector struct {
	rules []patternRule
}

// NewPatternDetector creates a PatternDetector with the built-in rule order.
func NewPatternDetector() *PatternDetector {
	return &PatternDetector{
		rules: []patternRule{
			{"Singleton", func(f *patternFacts) bool { return singletonRx.MatchString(f.source) }},
			{"Factory", func(f *patternFacts) bool { return factoryRx.MatchString(f.source) }},
			{"Observer", func(f *patternFacts) bool { return observerRx.MatchString(f.source) }},
			{"Builder", func(f *patternFacts) bool { return builderRx.MatchString(f.source) }},
			{"Middleware", func(f *patternFacts) bool { return middlewareRx.MatchString(f.source) }},
			{"Repository", matchRepository},
			{"Dependency Injection", matchDependencyInjection},
		},
	}
}

// Detect returns the matched pattern labels in rule order. Every predicate
// runs regardless of earlier hits.
func (d *PatternDetector) Detect(root ast.Node, source []byte) []string {
	facts := &patternFacts{
		source:  string(source),
		classes: collectClasses(root),
	}

	var matched []string
	for _, rule := range d.rules {
		if rule.match(facts) {
			matched = append(matched, rule.name)
		}
	}
	return matched
}

// matchRepository is structural: any class named *Repository.
func matchRepository(f *patternFacts) bool {
	for _, c := range f.classes {
		if strings.HasSuffix(c.Name(), "Repository") {
			return true
		}
	}
	return false
}

// matchDependencyInjection is structural: a constructor that receives typed
// collaborators (or params named like services) rather than constructing
// them itself.
func matchDependencyInjection(f *patternFacts) bool {
	for _, c := range f.classes {
		for _, m := range c.Methods() {
			if m.Name() != "constructor" {
				continue
			}
			for _, p := range m.Params() {
				if p.TypeAnnotation() != "" {
					return true
				}
				name := p.Name()
				if strings.HasSuffix(name, "Service") || strings.HasSuffix(name, "Repository") ||
					strings.HasSuffix(name, "Client") {
					return true
				}
			}
		}
	}
	return false
}

// collectClasses gathers every class declaration in the subtree, in order.
func collectClasses(root ast.Node) []ast.ClassNode {
	v := &classCollector{}
	ast.Walk(root, v)
	return v.classes
}

type classCollector struct {
	ast.NoopVisitor
	classes []ast.ClassNode
}

func (c *classCollector) VisitClass(n ast.ClassNode) { c.classes = append(c.classes, n) }
