// Package intent defines the result model of a single semantic analysis:
// the CodeIntent record and its constituent parts. Values are built once
// per analysis call and never mutated afterwards.
package intent

// --- Enums ---

// Category classifies the overall business role of a code unit.
type Category string

const (
	CategoryBusiness       Category = "business"
	CategoryInfrastructure Category = "infrastructure"
	CategoryUtility        Category = "utility"
	CategorySecurity       Category = "security"
	CategoryData           Category = "data"
)

// FlowSource identifies where a data value enters a code unit from.
type FlowSource string

const (
	SourceParameter FlowSource = "parameter"
	SourceDatabase  FlowSource = "database"
	SourceAPI       FlowSource = "api"
	SourceFile      FlowSource = "file"
	SourceUser      FlowSource = "user"
	SourceInternal  FlowSource = "internal"
)

// Sensitivity grades how carefully a data value must be handled.
// Tiers are ordered: critical > sensitive > private > public.
type Sensitivity string

const (
	SensitivityPublic    Sensitivity = "public"
	SensitivityPrivate   Sensitivity = "private"
	SensitivitySensitive Sensitivity = "sensitive"
	SensitivityCritical  Sensitivity = "critical"
)

// EffectType classifies an externally observable side effect.
type EffectType string

const (
	EffectDatabase EffectType = "database"
	EffectFile     EffectType = "file"
	EffectNetwork  EffectType = "network"
	EffectConsole  EffectType = "console"
	EffectGlobal   EffectType = "global"
	EffectAsync    EffectType = "async"
)

// Risk grades the blast radius of a side effect.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// RiskFor returns the fixed risk level for an effect type. Network calls and
// global mutation are high, persistent writes are medium, everything else low.
func RiskFor(t EffectType) Risk {
	switch t {
	case EffectNetwork, EffectGlobal:
		return RiskHigh
	case EffectDatabase, EffectFile:
		return RiskMedium
	default:
		return RiskLow
	}
}

// DepType classifies a module dependency.
type DepType string

const (
	DepInternal DepType = "internal"
	DepExternal DepType = "external"
	DepSystem   DepType = "system"
)

// --- Models ---

// DataFlow describes a named value entering or leaving a code unit.
type DataFlow struct {
	Name            string      `json:"name"`
	Type            string      `json:"type"`
	Source          FlowSource  `json:"source"`
	Validation      []string    `json:"validation,omitempty"`
	Transformations []string    `json:"transformations,omitempty"`
	Sensitivity     Sensitivity `json:"sensitivity"`
}

// SideEffect is an externally observable action detected structurally.
type SideEffect struct {
	Type   EffectType `json:"type"`
	Action string     `json:"action"`
	Target string     `json:"target,omitempty"`
	Risk   Risk       `json:"risk"`
}

// Dependency is a module referenced by the code unit, deduplicated by
// specifier in first-seen order.
type Dependency struct {
	Name     string  `json:"name"`
	Type     DepType `json:"type"`
	Purpose  string  `json:"purpose"`
	Critical bool    `json:"critical"`
}

// ComplexityAnalysis holds the heuristic complexity metrics for a code unit.
// Cognitive and Coupling are capped at 100. Cyclomatic starts at 1 for the
// single linear path. Cohesion is a 0-100 percentage.
type ComplexityAnalysis struct {
	Cognitive  int `json:"cognitive"`
	Cyclomatic int `json:"cyclomatic"`
	Depth      int `json:"depth"`
	Coupling   int `json:"coupling"`
	Cohesion   int `json:"cohesion"`
}

// Diagnostic records a non-fatal problem encountered during analysis,
// typically a single extractor degrading its facet to a zero value.
type Diagnostic struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// CodeIntent is the structured output of one analysis call. It has no cyclic
// references and round-trips through JSON without loss.
type CodeIntent struct {
	Purpose      string             `json:"purpose"`
	Category     Category           `json:"category"`
	Actions      []string           `json:"actions,omitempty"`
	Inputs       []DataFlow         `json:"inputs,omitempty"`
	Outputs      []DataFlow         `json:"outputs,omitempty"`
	SideEffects  []SideEffect       `json:"sideEffects,omitempty"`
	Dependencies []Dependency       `json:"dependencies,omitempty"`
	Complexity   ComplexityAnalysis `json:"complexity"`
	Patterns     []string           `json:"patterns,omitempty"`
	AntiPatterns []string           `json:"antiPatterns,omitempty"`
	Suggestions  []string           `json:"suggestions,omitempty"`
	Confidence   float64            `json:"confidence"`
	Diagnostics  []Diagnostic       `json:"diagnostics,omitempty"`
}

// HasHighRiskEffect reports whether any detected side effect is high risk.
func (ci *CodeIntent) HasHighRiskEffect() bool {
	for _, se := range ci.SideEffects {
		if se.Risk == RiskHigh {
			return true
		}
	}
	return false
}
