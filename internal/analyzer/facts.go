package analyzer

import "github.com/dusk-indust/introspect/internal/ast"

// sourceFacts are cheap whole-file observations used for confidence scoring.
type sourceFacts struct {
	comments        bool
	typeAnnotations bool
}

type factsVisitor struct {
	ast.NoopVisitor
	facts sourceFacts
}

func (v *factsVisitor) VisitComment(n ast.Node) {
	v.facts.comments = true
}

func (v *factsVisitor) VisitOther(n ast.Node) {
	if n.RawKind() == "type_annotation" {
		v.facts.typeAnnotations = true
	}
}

func collectFacts(root ast.Node) sourceFacts {
	v := &factsVisitor{}
	ast.Walk(root, v)
	return v.facts
}
