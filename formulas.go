package bridgecalc

import "math"

// ScaleInput is a forward-calculation request. ReferenceValue is a length for
// Radius and a mass for Mass.
type ScaleInput struct {
	ReferenceValue float64
	Index          float64 // the "octave" n; any real value
	Constants      ModelConstants
}

// InverseInput asks for the index that produces TargetMass.
type InverseInput struct {
	TargetMass    float64
	ReferenceMass float64
	Constants     ModelConstants
}

// QuantumCorrection returns the multiplicative factor (alpha/HQS)^(1/x) applied
// by both forward formulas.
func QuantumCorrection(c ModelConstants) (float64, error) {
	const op = "QuantumCorrection"

	if c.HQS == 0 {
		return 0, domainf(op, "HQS must be non-zero")
	}
	if c.X == 0 {
		return 0, domainf(op, "x must be non-zero")
	}

	qc, err := power(c.Alpha/c.HQS, 1/c.X)
	if err != nil {
		return 0, reop(op, err)
	}
	return qc, nil
}

// BridgeRadius scales a reference length up with the index:
//
//	r(n) = a · LZ^(n/π) · qc
func BridgeRadius(referenceLength, index float64, c ModelConstants) (float64, error) {
	r, err := scale(referenceLength, index/math.Pi, c)
	if err != nil {
		return 0, reop("BridgeRadius", err)
	}
	return r, nil
}

// BridgeMass scales a reference mass down with the index:
//
//	m(n) = m0 · LZ^(-n/π) · qc
//
// Only the sign of the exponent differs from BridgeRadius.
func BridgeMass(referenceMass, index float64, c ModelConstants) (float64, error) {
	m, err := scale(referenceMass, -index/math.Pi, c)
	if err != nil {
		return 0, reop("BridgeMass", err)
	}
	return m, nil
}

// SolveIndexFromMass inverts BridgeMass:
//
//	n = -π · ln(m / (m0 · qc)) / ln(LZ)
func SolveIndexFromMass(targetMass, referenceMass float64, c ModelConstants) (float64, error) {
	const op = "SolveIndexFromMass"

	if !(targetMass > 0) {
		return 0, domainf(op, "target mass must be positive, got %v", targetMass)
	}
	if !(referenceMass > 0) {
		return 0, domainf(op, "reference mass must be positive, got %v", referenceMass)
	}
	if !(c.LZ > 0) {
		return 0, domainf(op, "LZ must be positive, got %v", c.LZ)
	}

	qc, err := QuantumCorrection(c)
	if err != nil {
		return 0, reop(op, err)
	}

	denominator := referenceMass * qc
	if denominator == 0 {
		return 0, divisionf(op, "reference mass × quantum correction is zero")
	}
	ratio := targetMass / denominator
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 0, domainf(op, "logarithm of non-positive or infinite ratio %v", ratio)
	}

	lnLZ := math.Log(c.LZ)
	if lnLZ == 0 {
		return 0, divisionf(op, "ln(LZ) is zero for LZ = 1")
	}

	return -math.Pi * math.Log(ratio) / lnLZ, nil
}

// Radius evaluates BridgeRadius for the request.
func (in ScaleInput) Radius() (float64, error) {
	return BridgeRadius(in.ReferenceValue, in.Index, in.Constants)
}

// Mass evaluates BridgeMass for the request.
func (in ScaleInput) Mass() (float64, error) {
	return BridgeMass(in.ReferenceValue, in.Index, in.Constants)
}

// Solve evaluates SolveIndexFromMass for the request.
func (in InverseInput) Solve() (float64, error) {
	return SolveIndexFromMass(in.TargetMass, in.ReferenceMass, in.Constants)
}

// scale computes reference · LZ^exponent · qc.
func scale(reference, exponent float64, c ModelConstants) (float64, error) {
	factor, err := power(c.LZ, exponent)
	if err != nil {
		return 0, err
	}
	qc, err := QuantumCorrection(c)
	if err != nil {
		return 0, err
	}
	return reference * factor * qc, nil
}

// power is math.Pow restricted to the real domain: a negative base only takes
// integral exponents, zero only non-negative ones, and a finite input never
// yields an infinite result.
func power(base, exponent float64) (float64, error) {
	const op = "power"

	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, domainf(op, "negative base %v with fractional exponent %v", base, exponent)
	}
	if base == 0 && exponent < 0 {
		return 0, divisionf(op, "zero base with negative exponent %v", exponent)
	}

	v := math.Pow(base, exponent)
	if math.IsInf(v, 0) && !math.IsInf(base, 0) && !math.IsInf(exponent, 0) {
		return 0, domainf(op, "%v^%v out of range", base, exponent)
	}
	return v, nil
}
