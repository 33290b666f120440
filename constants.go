package bridgecalc

import "math"

// Default model parameters. These are the tuned values the calculator has
// always shipped with; they carry no claim of physical validity.
const (
	DefaultLZ    = 1.23498228
	DefaultAlpha = 0.0072973525643 // fine-structure constant
	DefaultHQS   = 0.235
	DefaultX     = 16.450911914534554
)

// Reference inputs at index 0.
const (
	PlanckLength = 1.616e-35 // m, default reference length for BridgeRadius
	PlanckMass   = 2.176e-8  // kg, default reference mass for BridgeMass and Approximate
)

// ModelConstants parameterizes every formula of the bridge model.
//
// A usable set satisfies HQS ≠ 0, X ≠ 0 and LZ > 0. The formulas themselves only
// reject the combinations that are actually undefined, so Validate is the strict
// check and belongs at configuration boundaries.
type ModelConstants struct {
	LZ    float64 // base of the index scaling LZ^(±n/π)
	Alpha float64 // numerator of the quantum correction
	HQS   float64 // denominator of the quantum correction
	X     float64 // root taken by the quantum correction
}

// DefaultConstants returns the shipped parameter set.
func DefaultConstants() ModelConstants {
	return ModelConstants{
		LZ:    DefaultLZ,
		Alpha: DefaultAlpha,
		HQS:   DefaultHQS,
		X:     DefaultX,
	}
}

// Validate reports the first violated invariant as an ErrDomain.
func (c ModelConstants) Validate() error {
	const op = "ModelConstants.Validate"

	fields := []struct {
		name string
		v    float64
	}{{"LZ", c.LZ}, {"alpha", c.Alpha}, {"HQS", c.HQS}, {"x", c.X}}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return domainf(op, "%s must be finite, got %v", f.name, f.v)
		}
	}
	if c.HQS == 0 {
		return domainf(op, "HQS must be non-zero")
	}
	if c.X == 0 {
		return domainf(op, "x must be non-zero")
	}
	if c.LZ <= 0 {
		return domainf(op, "LZ must be positive, got %v", c.LZ)
	}
	return nil
}

// Overrides replaces selected constants for a single call. Nil fields keep the
// value they are applied to.
type Overrides struct {
	LZ    *float64 `toml:"lz" yaml:"lz"`
	Alpha *float64 `toml:"alpha" yaml:"alpha"`
	HQS   *float64 `toml:"hqs" yaml:"hqs"`
	X     *float64 `toml:"x" yaml:"x"`
}

// With returns a copy of c with the non-nil overrides applied.
func (c ModelConstants) With(o Overrides) ModelConstants {
	if o.LZ != nil {
		c.LZ = *o.LZ
	}
	if o.Alpha != nil {
		c.Alpha = *o.Alpha
	}
	if o.HQS != nil {
		c.HQS = *o.HQS
	}
	if o.X != nil {
		c.X = *o.X
	}
	return c
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return o.LZ == nil && o.Alpha == nil && o.HQS == nil && o.X == nil
}
