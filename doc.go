// Package bridgecalc evaluates the bridge scaling law and compares its output
// against known particle masses.
//
// # Overview
//
// The model relates a real index n (historically called the "octave") to a
// length or a mass through a single base LZ and a quantum correction factor:
//
//	qc   = (α / HQS)^(1/x)
//	r(n) = a  · LZ^( n/π) · qc
//	m(n) = m0 · LZ^(-n/π) · qc
//
// Radius grows with the index, mass shrinks; the two formulas differ only in the
// sign of the exponent. The inverse solve recovers n from a mass:
//
//	n = -π · ln(m / (m0 · qc)) / ln(LZ)
//
// # Components
//
//   - constants.go   - ModelConstants, defaults, per-call Overrides
//   - formulas.go    - QuantumCorrection, BridgeRadius, BridgeMass, SolveIndexFromMass
//   - compare.go     - ErrorPercent, Classify, Compare (the 1% rule)
//   - particles.go   - ReferenceTable of known particles, Approximate
//   - sweep.go       - Sweep a forward formula over an index range
//   - assertions.go  - Test helpers for round-trip, monotonicity and symmetry
//
// # Quick Start
//
//	c := bridgecalc.DefaultConstants()
//
//	m, err := bridgecalc.BridgeMass(bridgecalc.PlanckMass, 768.5, c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cmp, err := bridgecalc.Compare(m, 9.10938356e-31)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.3e kg, error %.3f%%, %s\n", m, cmp.ErrorPercent, cmp.Classification)
//
// # Known Particles
//
// The built-in table holds the electron, proton and muon with the index at which
// the model is meant to reproduce each mass. Tables are immutable values; tests
// and configuration files can build their own with NewReferenceTable:
//
//	table := bridgecalc.NewReferenceTable([]bridgecalc.KnownParticle{
//	    {Name: "Electron", Index: 763.85, Mass: 9.10938356e-31},
//	})
//	a, err := table.Approximate("Electron", bridgecalc.PlanckMass, c)
//
// # The 1% Rule
//
// A computed value matches a known one when
//
//	100 · |calculated - known| / known < 1.0
//
// The threshold is fixed. Classification is arithmetic only; the default
// constants are empirical and make no physical claim.
//
// # Errors
//
// Every failure is a *CalcError wrapping ErrDomain, ErrDivisionByZero or
// ErrNotFound:
//
//	n, err := bridgecalc.SolveIndexFromMass(m, m0, c)
//	switch {
//	case errors.Is(err, bridgecalc.ErrDomain):
//	    // non-positive mass, LZ ≤ 0, ...
//	case errors.Is(err, bridgecalc.ErrDivisionByZero):
//	    // LZ == 1
//	}
//
// No function keeps state between calls; all are safe for concurrent use.
package bridgecalc
