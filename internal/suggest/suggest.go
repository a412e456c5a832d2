// Package suggest turns extractor outputs into actionable suggestion
// strings via a fixed, ordered rule table.
package suggest

import (
	"strings"

	"github.com/dusk-indust/introspect/internal/intent"
)

// Thresholds for the built-in rules.
const (
	cyclomaticLimit = 10
	cognitiveLimit  = 15
	couplingLimit   = 20
	asyncLimit      = 3
)

// Evidence is the assembled extractor output a rule set evaluates against.
type Evidence struct {
	Purpose      string
	Inputs       []intent.DataFlow
	Outputs      []intent.DataFlow
	SideEffects  []intent.SideEffect
	Dependencies []intent.Dependency
	Complexity   intent.ComplexityAnalysis
	Patterns     []string
	AntiPatterns []string
	AwaitCount   int
}

type rule struct {
	when func(*Evidence) bool
	text string
}

// rules is the fixed evaluation order. Every rule runs; output is
// deduplicated while preserving this order, so results are deterministic.
var rules = []rule{
	{
		when: func(e *Evidence) bool { return e.Complexity.Cyclomatic > cyclomaticLimit },
		text: "Consider decomposing this code into smaller functions to reduce cyclomatic complexity",
	},
	{
		when: func(e *Evidence) bool { return e.Complexity.Cognitive > cognitiveLimit },
		text: "Simplify control flow to reduce cognitive load",
	},
	{
		when: func(e *Evidence) bool { return e.Complexity.Coupling > couplingLimit },
		text: "Reduce external dependencies to lower coupling",
	},
	{
		when: func(e *Evidence) bool {
			return strings.Contains(e.Purpose, "Database operation") && !hasPattern(e, "Repository")
		},
		text: "Consider the Repository pattern for database access",
	},
	{
		when: func(e *Evidence) bool { return e.AwaitCount > asyncLimit },
		text: "Use Promise.all to await independent operations in parallel",
	},
	{
		when: func(e *Evidence) bool {
			for _, se := range e.SideEffects {
				if se.Risk == intent.RiskHigh {
					return true
				}
			}
			return false
		},
		text: "Add error handling around high-risk operations",
	},
	{
		when: func(e *Evidence) bool {
			for _, in := range e.Inputs {
				if (in.Sensitivity == intent.SensitivitySensitive || in.Sensitivity == intent.SensitivityCritical) &&
					len(in.Validation) == 0 {
					return true
				}
			}
			return false
		},
		text: "Add validation for sensitive inputs",
	},
}

// Evaluate runs the rule table against the evidence and returns the
// deduplicated suggestions in rule order.
func Evaluate(e *Evidence) []string {
	var out []string
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if !r.when(e) || seen[r.text] {
			continue
		}
		seen[r.text] = true
		out = append(out, r.text)
	}
	return out
}

func hasPattern(e *Evidence, name string) bool {
	for _, p := range e.Patterns {
		if p == name {
			return true
		}
	}
	return false
}
