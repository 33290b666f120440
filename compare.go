package bridgecalc

import "math"

// StabilityThreshold is the percent error below which a computed value counts
// as a match for a known particle. Fixed policy, not configurable.
const StabilityThreshold = 1.0

// Classification is the verdict of comparing a computed value to a known one.
type Classification string

const (
	Stable  Classification = "STABLE"  // within StabilityThreshold percent
	Unknown Classification = "UNKNOWN" // no match
)

// Verdict is the human-readable label used in logs.
func (c Classification) Verdict() string {
	if c == Stable {
		return "Stable particle found"
	}
	return "Unknown particle"
}

// ComparisonResult is the outcome of comparing a computed value to a known one.
type ComparisonResult struct {
	ErrorPercent   float64
	Classification Classification
}

// ErrorPercent returns 100·|calculated − known| / known.
//
// The divisor keeps its sign: a negative known value gives a negative percent,
// which Classify reports as Stable. Callers wanting a magnitude check must
// reject negative known values themselves.
func ErrorPercent(calculated, known float64) (float64, error) {
	if known == 0 {
		return 0, divisionf("ErrorPercent", "known value must not be zero")
	}
	return 100 * math.Abs(calculated-known) / known, nil
}

// Classify applies the <1% rule. NaN never classifies as Stable.
func Classify(errorPercent float64) Classification {
	if errorPercent < StabilityThreshold {
		return Stable
	}
	return Unknown
}

// Compare computes the error percent and its classification in one step.
func Compare(calculated, known float64) (ComparisonResult, error) {
	p, err := ErrorPercent(calculated, known)
	if err != nil {
		return ComparisonResult{}, reop("Compare", err)
	}
	return ComparisonResult{ErrorPercent: p, Classification: Classify(p)}, nil
}
