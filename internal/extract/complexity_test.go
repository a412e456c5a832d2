package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dusk-indust/introspect/internal/registry"
)

func TestComplexityAnalyzer_LinearCodeBaseline(t *testing.T) {
	res := NewComplexityAnalyzer(registry.Default()).Analyze(parseJS(t, `const x = 1;`))

	assert.Equal(t, 1, res.Cyclomatic)
	assert.Equal(t, 0, res.Cognitive)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 0, res.Coupling)
	// A unit with no functions is trivially cohesive.
	assert.Equal(t, 100, res.Cohesion)
}

func TestComplexityAnalyzer_NestedIfs(t *testing.T) {
	src := `function deep(a) {
  if (a > 1) {
    if (a > 2) {
      if (a > 3) {
        if (a > 4) {
          if (a > 5) {
            return a;
          }
        }
      }
    }
  }
}`
	res := NewComplexityAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	assert.Equal(t, 6, res.Cyclomatic)
	assert.Equal(t, 5, res.Cognitive)
	assert.GreaterOrEqual(t, res.Depth, 5)
}

func TestComplexityAnalyzer_IfElseCostsMore(t *testing.T) {
	src := `function pick(a) {
  if (a) { return 1; } else { return 2; }
}`
	res := NewComplexityAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	assert.Equal(t, 2, res.Cyclomatic)
	assert.Equal(t, 2, res.Cognitive)
}

func TestComplexityAnalyzer_SwitchDefaultAddsNoPath(t *testing.T) {
	src := `function route(x) {
  switch (x) {
    case 1: return "a";
    case 2: return "b";
    default: return "c";
  }
}`
	res := NewComplexityAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	// Base path plus one per non-default case.
	assert.Equal(t, 3, res.Cyclomatic)
	assert.Equal(t, 2, res.Cognitive)
}

func TestComplexityAnalyzer_LogicalOperatorsAddPaths(t *testing.T) {
	src := `function ok(a, b) { return a && b || a; }`
	res := NewComplexityAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	assert.Equal(t, 3, res.Cyclomatic)
}

func TestComplexityAnalyzer_CouplingSkipsBuiltins(t *testing.T) {
	src := `function run(repo, x) {
  repo.save(x);
  Math.max(1, 2);
  console.log(x);
  JSON.stringify(x);
}`
	res := NewComplexityAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	assert.Equal(t, 1, res.Coupling)
}

func TestComplexityAnalyzer_CohesionWithCustomRelatedness(t *testing.T) {
	src := `function alpha() {}
function beta() {}`
	analyzer := NewComplexityAnalyzer(registry.Default(),
		WithRelatedness(func(name string, _ []string) bool { return name == "alpha" }))

	res := analyzer.Analyze(parseJS(t, src))
	assert.Equal(t, 50, res.Cohesion)
}
