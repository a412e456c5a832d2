// Package confidence computes the bounded heuristic trust score for a
// derived intent record.
package confidence

// Scoring weights. The result never exceeds Max regardless of how many
// factors apply.
const (
	Base            = 0.50
	TypeAnnotations = 0.15
	Comments        = 0.10
	TestFile        = 0.10
	PatternsMax     = 0.10
	PerPattern      = 0.02
	PurposeResolved = 0.10
	Max             = 0.95
)

// Factors are the observations that raise confidence above the base.
type Factors struct {
	HasTypeAnnotations bool
	HasComments        bool
	IsTestFile         bool
	PatternCount       int
	PurposeResolved    bool
}

// Score aggregates the factors into a score clamped to [0, Max].
func Score(f Factors) float64 {
	score := Base
	if f.HasTypeAnnotations {
		score += TypeAnnotations
	}
	if f.HasComments {
		score += Comments
	}
	if f.IsTestFile {
		score += TestFile
	}

	patternBoost := float64(f.PatternCount) * PerPattern
	if patternBoost > PatternsMax {
		patternBoost = PatternsMax
	}
	score += patternBoost

	if f.PurposeResolved {
		score += PurposeResolved
	}

	return clamp(score, 0, Max)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
