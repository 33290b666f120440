package bridgecalc

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig contains tolerances and sample points for model properties.
type AssertionConfig struct {
	// Relative tolerance for the solve/mass round trip
	RelTolerance float64

	// Absolute tolerance used when the expected index is zero
	AbsTolerance float64

	// Indices at which the properties are checked, in increasing order
	Indices []float64
}

// DefaultAssertionConfig samples negative, fractional and particle indices.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTolerance: 1e-6,
		AbsTolerance: 1e-9,
		Indices:      []float64{-120, -3.5, 0, 0.25, 1, 45, 220, 768.5, 1000},
	}
}

// AssertRoundTrip verifies SolveIndexFromMass inverts BridgeMass.
//
// Mathematical property:
//
//	solve(mass(m0, n)) ≈ n   (relative tolerance)
func AssertRoundTrip(t *testing.T, referenceMass float64, c ModelConstants, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, n := range cfg.Indices {
		m, err := BridgeMass(referenceMass, n, c)
		if err != nil {
			t.Fatalf("BridgeMass(%g, %g) failed: %v", referenceMass, n, err)
		}
		got, err := SolveIndexFromMass(m, referenceMass, c)
		if err != nil {
			t.Fatalf("SolveIndexFromMass(%g, %g) failed: %v", m, referenceMass, err)
		}
		if !withinTolerance(got, n, cfg) {
			failures = append(failures, fmt.Sprintf("  n=%g: recovered %.12g", n, got))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Round trip broken (rel tol %g):\n%s", cfg.RelTolerance, failures)
		return
	}
	t.Logf("✓ Round trip: %d indices recovered within %g", len(cfg.Indices), cfg.RelTolerance)
}

// AssertMassDecreasing verifies BridgeMass falls strictly as the index grows
// (requires LZ > 1).
func AssertMassDecreasing(t *testing.T, referenceMass float64, c ModelConstants, cfg AssertionConfig) {
	t.Helper()
	assertMonotonic(t, "BridgeMass", BridgeMass, referenceMass, c, cfg, -1)
}

// AssertRadiusIncreasing verifies BridgeRadius rises strictly as the index
// grows (requires LZ > 1).
func AssertRadiusIncreasing(t *testing.T, referenceLength float64, c ModelConstants, cfg AssertionConfig) {
	t.Helper()
	assertMonotonic(t, "BridgeRadius", BridgeRadius, referenceLength, c, cfg, +1)
}

// AssertSymmetry verifies the two forward formulas differ only by the sign of
// the index:
//
//	mass(a, n) == radius(a, -n)
func AssertSymmetry(t *testing.T, reference float64, c ModelConstants, cfg AssertionConfig) {
	t.Helper()

	for _, n := range cfg.Indices {
		m, err := BridgeMass(reference, n, c)
		if err != nil {
			t.Fatalf("BridgeMass(%g, %g) failed: %v", reference, n, err)
		}
		r, err := BridgeRadius(reference, -n, c)
		if err != nil {
			t.Fatalf("BridgeRadius(%g, %g) failed: %v", reference, -n, err)
		}
		if m != r {
			t.Errorf("Symmetry broken at n=%g: mass=%g radius(-n)=%g", n, m, r)
		}
	}
	t.Logf("✓ Symmetry: mass(a, n) == radius(a, -n) at %d indices", len(cfg.Indices))
}

// AssertClassification verifies an approximation's verdict follows the <1% rule.
func AssertClassification(t *testing.T, a Approximation) {
	t.Helper()

	want := Classify(a.ErrorPercent)
	if a.Classification != want {
		t.Errorf("%s: classification %s, but error %.3f%% implies %s",
			a.Particle.Name, a.Classification, a.ErrorPercent, want)
		return
	}
	t.Logf("✓ %s: n=%g, mass=%.3e kg, error=%.3f%% → %s",
		a.Particle.Name, a.Particle.Index, a.Mass, a.ErrorPercent, a.Classification)
}

type forwardFunc func(reference, index float64, c ModelConstants) (float64, error)

func assertMonotonic(t *testing.T, name string, f forwardFunc, reference float64, c ModelConstants, cfg AssertionConfig, direction float64) {
	t.Helper()

	if !(c.LZ > 1) {
		t.Fatalf("%s monotonicity needs LZ > 1, got %g", name, c.LZ)
	}

	var failures []string
	prev := math.NaN()
	for i, n := range cfg.Indices {
		v, err := f(reference, n, c)
		if err != nil {
			t.Fatalf("%s(%g, %g) failed: %v", name, reference, n, err)
		}
		if i > 0 && !((v-prev)*direction > 0) {
			failures = append(failures, fmt.Sprintf(
				"  n=%g→%g: %.6e → %.6e", cfg.Indices[i-1], n, prev, v))
		}
		prev = v
	}

	if len(failures) > 0 {
		t.Errorf("%s not strictly monotonic:\n%s", name, failures)
		return
	}
	t.Logf("✓ %s strictly monotonic over %d indices", name, len(cfg.Indices))
}

func withinTolerance(got, want float64, cfg AssertionConfig) bool {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff <= cfg.AbsTolerance
	}
	return diff <= cfg.RelTolerance*math.Abs(want)
}
