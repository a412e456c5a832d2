package intent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskFor(t *testing.T) {
	assert.Equal(t, RiskHigh, RiskFor(EffectNetwork))
	assert.Equal(t, RiskHigh, RiskFor(EffectGlobal))
	assert.Equal(t, RiskMedium, RiskFor(EffectDatabase))
	assert.Equal(t, RiskMedium, RiskFor(EffectFile))
	assert.Equal(t, RiskLow, RiskFor(EffectConsole))
	assert.Equal(t, RiskLow, RiskFor(EffectAsync))
}

func TestCodeIntent_HasHighRiskEffect(t *testing.T) {
	ci := &CodeIntent{
		SideEffects: []SideEffect{
			{Type: EffectConsole, Risk: RiskLow},
			{Type: EffectDatabase, Risk: RiskMedium},
		},
	}
	assert.False(t, ci.HasHighRiskEffect())

	ci.SideEffects = append(ci.SideEffects, SideEffect{Type: EffectNetwork, Risk: RiskHigh})
	assert.True(t, ci.HasHighRiskEffect())
}

func TestCodeIntent_JSONRoundTrip(t *testing.T) {
	ci := CodeIntent{
		Purpose:  "API endpoint + Database operation",
		Category: CategoryBusiness,
		Actions:  []string{"app.get", "db.save"},
		Inputs: []DataFlow{
			{Name: "password", Type: "string", Source: SourceParameter, Sensitivity: SensitivitySensitive},
		},
		Outputs: []DataFlow{
			{Name: "result", Type: "object", Source: SourceInternal, Transformations: []string{"normalize"}},
		},
		SideEffects: []SideEffect{
			{Type: EffectDatabase, Action: "save", Target: "db", Risk: RiskMedium},
		},
		Dependencies: []Dependency{
			{Name: "express", Type: DepExternal, Purpose: "Web framework"},
		},
		Complexity:   ComplexityAnalysis{Cognitive: 3, Cyclomatic: 2, Depth: 2, Coupling: 1, Cohesion: 100},
		Patterns:     []string{"Repository"},
		AntiPatterns: []string{"Magic numbers"},
		Suggestions:  []string{"Add validation for sensitive inputs"},
		Confidence:   0.75,
		Diagnostics:  []Diagnostic{{Stage: "patterns", Message: "boom"}},
	}

	data, err := json.Marshal(ci)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sideEffects"`)
	assert.Contains(t, string(data), `"antiPatterns"`)

	var back CodeIntent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ci, back)
}
