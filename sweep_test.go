package bridgecalc

import (
	"errors"
	"math"
	"testing"
)

// TestSweep_DefaultMass walks the default range and checks the curve shape.
func TestSweep_DefaultMass(t *testing.T) {
	cfg := DefaultSweepConfig()
	points, err := Sweep(Mass, PlanckMass, DefaultConstants(), cfg)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(points) != 81 || cfg.Points() != 81 {
		t.Fatalf("got %d points (Points() = %d), expected 81", len(points), cfg.Points())
	}
	if points[0].Index != 0 || points[80].Index != 800 {
		t.Errorf("range = [%g, %g], expected [0, 800]", points[0].Index, points[80].Index)
	}
	if !relClose(points[0].Value, PlanckMass*qcDefault, 1e-12) {
		t.Errorf("mass at n=0 = %g, expected %g", points[0].Value, PlanckMass*qcDefault)
	}
	for i := 1; i < len(points); i++ {
		if !(points[i].Value < points[i-1].Value) {
			t.Fatalf("mass not decreasing at n=%g", points[i].Index)
		}
	}

	t.Logf("✓ Sweep: %d points, m(0)=%.3e kg → m(800)=%.3e kg",
		len(points), points[0].Value, points[80].Value)
}

// TestSweep_Radius agrees point by point with BridgeRadius.
func TestSweep_Radius(t *testing.T) {
	c := DefaultConstants()
	points, err := Sweep(Radius, PlanckLength, c, SweepConfig{MinIndex: -1, MaxIndex: 1, Step: 0.25})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(points) != 9 {
		t.Fatalf("got %d points, expected 9", len(points))
	}
	for _, p := range points {
		r, _ := BridgeRadius(PlanckLength, p.Index, c)
		if p.Value != r {
			t.Errorf("n=%g: sweep %g, BridgeRadius %g", p.Index, p.Value, r)
		}
	}
}

// TestSweep_FractionalStep does not drop the last index to rounding.
func TestSweep_FractionalStep(t *testing.T) {
	cfg := SweepConfig{MinIndex: 0, MaxIndex: 1, Step: 0.1}
	points, err := Sweep(Mass, 1, DefaultConstants(), cfg)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(points) != 11 {
		t.Errorf("got %d points, expected 11", len(points))
	}
}

// TestSweep_Invalid rejects empty or malformed ranges.
func TestSweep_Invalid(t *testing.T) {
	c := DefaultConstants()

	cases := []struct {
		name string
		q    Quantity
		cfg  SweepConfig
	}{
		{"zero step", Mass, SweepConfig{MinIndex: 0, MaxIndex: 10, Step: 0}},
		{"negative step", Mass, SweepConfig{MinIndex: 0, MaxIndex: 10, Step: -1}},
		{"inverted range", Mass, SweepConfig{MinIndex: 10, MaxIndex: 0, Step: 1}},
		{"unknown quantity", Quantity("charge"), DefaultSweepConfig()},
		{"infinite max", Mass, SweepConfig{MinIndex: 0, MaxIndex: math.Inf(1), Step: 1}},
		{"infinite min", Mass, SweepConfig{MinIndex: math.Inf(-1), MaxIndex: 10, Step: 1}},
		{"NaN min", Mass, SweepConfig{MinIndex: math.NaN(), MaxIndex: 10, Step: 1}},
		{"infinite step", Mass, SweepConfig{MinIndex: 0, MaxIndex: 10, Step: math.Inf(1)}},
		{"tiny step", Mass, SweepConfig{MinIndex: 0, MaxIndex: 800, Step: 1e-300}},
		{"too many points", Mass, SweepConfig{MinIndex: 0, MaxIndex: 800, Step: 1e-6}},
		{"overflowing span", Mass, SweepConfig{MinIndex: -math.MaxFloat64, MaxIndex: math.MaxFloat64, Step: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Sweep(tc.q, PlanckMass, c, tc.cfg)
			if !errors.Is(err, ErrDomain) {
				t.Errorf("expected ErrDomain, got %v", err)
			}
		})
	}

	for _, cfg := range []SweepConfig{
		{MinIndex: 0, MaxIndex: 10, Step: 0},
		{MinIndex: 0, MaxIndex: math.Inf(1), Step: 1},
		{MinIndex: math.NaN(), MaxIndex: 10, Step: 1},
		{MinIndex: 0, MaxIndex: 800, Step: 1e-300},
	} {
		if n := cfg.Points(); n != 0 {
			t.Errorf("Points() for %+v = %d, expected 0", cfg, n)
		}
	}
}

// TestSweep_AtPointCap accepts a range of exactly MaxSweepPoints indices.
func TestSweep_AtPointCap(t *testing.T) {
	cfg := SweepConfig{MinIndex: 0, MaxIndex: MaxSweepPoints - 1, Step: 1}
	if n := cfg.Points(); n != MaxSweepPoints {
		t.Fatalf("Points() = %d, expected %d", n, MaxSweepPoints)
	}

	over := SweepConfig{MinIndex: 0, MaxIndex: MaxSweepPoints, Step: 1}
	if _, err := Sweep(Mass, 1, DefaultConstants(), over); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain one past the cap, got %v", err)
	}
}

// TestSweep_PropagatesEngineErrors relabels formula failures.
func TestSweep_PropagatesEngineErrors(t *testing.T) {
	c := DefaultConstants().With(Overrides{LZ: ptr(-1.5)})

	_, err := Sweep(Mass, PlanckMass, c, SweepConfig{MinIndex: 1, MaxIndex: 2, Step: 1})
	var ce *CalcError
	if !errors.As(err, &ce) || ce.Op != "Sweep" || !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain from Sweep, got %#v", err)
	}
}
