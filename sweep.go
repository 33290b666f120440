package bridgecalc

import "math"

// Quantity selects the forward formula used by Sweep.
type Quantity string

const (
	Radius Quantity = "radius"
	Mass   Quantity = "mass"
)

// SweepPoint is one evaluation of a forward formula.
type SweepPoint struct {
	Index float64
	Value float64
}

// MaxSweepPoints caps the number of indices a single sweep may visit.
const MaxSweepPoints = 1_000_000

// SweepConfig controls an index sweep.
type SweepConfig struct {
	MinIndex float64 // first index evaluated
	MaxIndex float64 // last index evaluated (inclusive, up to rounding)
	Step     float64 // index increment
}

// DefaultSweepConfig covers the range of the built-in particles.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		MinIndex: 0,
		MaxIndex: 800,
		Step:     10,
	}
}

// Points returns how many indices the sweep visits, or 0 when the range is
// invalid or would exceed MaxSweepPoints.
func (cfg SweepConfig) Points() int {
	count, ok := cfg.count()
	if !ok {
		return 0
	}
	return count
}

// count computes the point count in float64 before converting, so huge or
// non-finite ranges never reach the int conversion.
func (cfg SweepConfig) count() (int, bool) {
	if !isFinite(cfg.MinIndex) || !isFinite(cfg.MaxIndex) || !isFinite(cfg.Step) {
		return 0, false
	}
	if !(cfg.Step > 0) || cfg.MaxIndex < cfg.MinIndex {
		return 0, false
	}
	// Tolerate a last step that lands a few ulps past MaxIndex.
	n := math.Floor((cfg.MaxIndex-cfg.MinIndex)/cfg.Step+1e-9) + 1
	if !isFinite(n) || n > MaxSweepPoints {
		return 0, false
	}
	return int(n), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Sweep evaluates the forward formula for q at every index of cfg.
// Indices are computed as MinIndex + i·Step so rounding does not accumulate.
func Sweep(q Quantity, reference float64, c ModelConstants, cfg SweepConfig) ([]SweepPoint, error) {
	const op = "Sweep"

	switch {
	case !isFinite(cfg.MinIndex), !isFinite(cfg.MaxIndex), !isFinite(cfg.Step):
		return nil, domainf(op, "range must be finite, got min %v max %v step %v", cfg.MinIndex, cfg.MaxIndex, cfg.Step)
	case !(cfg.Step > 0):
		return nil, domainf(op, "step must be positive, got %v", cfg.Step)
	case cfg.MaxIndex < cfg.MinIndex:
		return nil, domainf(op, "max index %v below min index %v", cfg.MaxIndex, cfg.MinIndex)
	}

	var f func(float64, float64, ModelConstants) (float64, error)
	switch q {
	case Radius:
		f = BridgeRadius
	case Mass:
		f = BridgeMass
	default:
		return nil, domainf(op, "unknown quantity %q", q)
	}

	n, ok := cfg.count()
	if !ok {
		return nil, domainf(op, "sweep of %v..%v step %v exceeds %d points", cfg.MinIndex, cfg.MaxIndex, cfg.Step, MaxSweepPoints)
	}
	points := make([]SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		index := cfg.MinIndex + float64(i)*cfg.Step
		v, err := f(reference, index, c)
		if err != nil {
			return nil, reop(op, err)
		}
		points = append(points, SweepPoint{Index: index, Value: v})
	}
	return points, nil
}
