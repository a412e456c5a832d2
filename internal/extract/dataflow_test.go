package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

func TestDataFlowAnalyzer_TypedParamsAndSensitivity(t *testing.T) {
	src := `function register(password: string, email: string) {
  validateEmail(email);
  return password;
}`
	res := NewDataFlowAnalyzer(registry.Default()).Analyze(parseTS(t, src))

	require.Len(t, res.Inputs, 2)
	assert.True(t, res.HasTypeAnnotations)

	password := res.Inputs[0]
	assert.Equal(t, "password", password.Name)
	assert.Equal(t, "string", password.Type)
	assert.Equal(t, intent.SourceParameter, password.Source)
	assert.Equal(t, intent.SensitivitySensitive, password.Sensitivity)
	assert.Empty(t, password.Validation)

	email := res.Inputs[1]
	assert.Equal(t, intent.SensitivityPrivate, email.Sensitivity)
	assert.Equal(t, []string{"validateEmail"}, email.Validation)
}

func TestDataFlowAnalyzer_ReturnTransformationHistory(t *testing.T) {
	src := `function compute(a) {
  let result = normalize(a);
  result = result + 1;
  return result;
}`
	res := NewDataFlowAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	require.Len(t, res.Outputs, 1)
	out := res.Outputs[0]
	assert.Equal(t, "result", out.Name)
	assert.Equal(t, intent.SourceInternal, out.Source)
	assert.Equal(t, []string{"normalize", "computed"}, out.Transformations)
}

func TestDataFlowAnalyzer_AwaitedAssignment(t *testing.T) {
	src := `async function load(id) {
  const user = await db.users.findOne(id);
  return user;
}`
	res := NewDataFlowAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	require.Len(t, res.Outputs, 1)
	assert.Equal(t, "user", res.Outputs[0].Name)
	assert.Equal(t, []string{"db.users.findOne"}, res.Outputs[0].Transformations)
}

func TestDataFlowAnalyzer_DefaultValueInfersType(t *testing.T) {
	src := `function page(limit = 20) { return limit; }`
	res := NewDataFlowAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	require.Len(t, res.Inputs, 1)
	assert.Equal(t, "limit", res.Inputs[0].Name)
	assert.Equal(t, "number", res.Inputs[0].Type)
	assert.Equal(t, intent.SensitivityPublic, res.Inputs[0].Sensitivity)
	assert.False(t, res.HasTypeAnnotations)
}

func TestDataFlowAnalyzer_NonIdentifierReturnIsResult(t *testing.T) {
	src := `function pair(a, b) { return { a, b }; }`
	res := NewDataFlowAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	require.Len(t, res.Outputs, 1)
	assert.Equal(t, "result", res.Outputs[0].Name)
	assert.Equal(t, "object", res.Outputs[0].Type)
	assert.Empty(t, res.Outputs[0].Transformations)
}

func TestDataFlowAnalyzer_NestedFunctionsAreSkipped(t *testing.T) {
	src := `function outer(a) {
  const helper = (b) => b;
  return a;
}`
	res := NewDataFlowAnalyzer(registry.Default()).Analyze(parseJS(t, src))

	// Only the top-level function's parameter counts as an input.
	require.Len(t, res.Inputs, 1)
	assert.Equal(t, "a", res.Inputs[0].Name)
}
