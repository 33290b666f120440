package bridgecalc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestDefaultConstants verifies the shipped parameter set.
func TestDefaultConstants(t *testing.T) {
	c := DefaultConstants()

	if c.LZ != 1.23498228 || c.Alpha != 0.0072973525643 || c.HQS != 0.235 || c.X != 16.450911914534554 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}

	t.Logf("✓ LZ=%g α=%g HQS=%g x=%g", c.LZ, c.Alpha, c.HQS, c.X)
}

// TestModelConstants_Validate reports each violated invariant.
func TestModelConstants_Validate(t *testing.T) {
	base := DefaultConstants()

	cases := []struct {
		name    string
		c       ModelConstants
		message string
	}{
		{"zero HQS", base.With(Overrides{HQS: ptr(0)}), "HQS"},
		{"zero x", base.With(Overrides{X: ptr(0)}), "x must"},
		{"zero LZ", base.With(Overrides{LZ: ptr(0)}), "LZ"},
		{"negative LZ", base.With(Overrides{LZ: ptr(-1)}), "LZ"},
		{"NaN alpha", base.With(Overrides{Alpha: ptr(math.NaN())}), "alpha"},
		{"infinite LZ", base.With(Overrides{LZ: ptr(math.Inf(1))}), "LZ"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if !errors.Is(err, ErrDomain) {
				t.Fatalf("expected ErrDomain, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("message %q does not mention %q", err.Error(), tc.message)
			}
		})
	}
}

// TestModelConstants_With applies only the set overrides.
func TestModelConstants_With(t *testing.T) {
	base := DefaultConstants()

	if got := base.With(Overrides{}); got != base {
		t.Errorf("empty overrides changed constants: %+v", got)
	}
	if !(Overrides{}).Empty() {
		t.Error("zero Overrides should be empty")
	}

	o := Overrides{LZ: ptr(2), X: ptr(3)}
	if o.Empty() {
		t.Error("Overrides with LZ and X set reported empty")
	}
	got := base.With(o)
	want := ModelConstants{LZ: 2, Alpha: base.Alpha, HQS: base.HQS, X: 3}
	if got != want {
		t.Errorf("With = %+v, expected %+v", got, want)
	}
	if base != DefaultConstants() {
		t.Error("With mutated its receiver")
	}
}

// TestCalcError_Format checks messages and unwrapping.
func TestCalcError_Format(t *testing.T) {
	err := error(&CalcError{Op: "ErrorPercent", Kind: ErrDivisionByZero, Msg: "known value must not be zero"})
	if got := err.Error(); got != "ErrorPercent: division by zero: known value must not be zero" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrDomain) {
		t.Error("Unwrap must expose exactly the failure kind")
	}

	bare := &CalcError{Op: "Lookup", Kind: ErrNotFound}
	if got := bare.Error(); got != "Lookup: not found" {
		t.Errorf("Error() = %q", got)
	}

	var nilErr *CalcError
	if nilErr.Error() != "" {
		t.Error("nil CalcError should render empty")
	}
}
