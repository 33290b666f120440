package bridgecalc

import (
	"errors"
	"fmt"
)

// Failure kinds. Every engine error wraps exactly one of these, so callers
// branch with errors.Is and render a message instead of stopping.
var (
	// ErrDomain: non-positive logarithm argument, negative base raised to a
	// fractional power, zero HQS or x, result out of float64 range.
	ErrDomain = errors.New("math domain error")

	// ErrDivisionByZero: zero known value, zero denominator in the inverse solve,
	// zero base raised to a negative power.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotFound: particle name absent from the reference table.
	ErrNotFound = errors.New("not found")
)

// CalcError records which operation failed and why.
type CalcError struct {
	Op   string // engine operation, e.g. "SolveIndexFromMass"
	Kind error  // one of ErrDomain, ErrDivisionByZero, ErrNotFound
	Msg  string
}

func (e *CalcError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *CalcError) Unwrap() error { return e.Kind }

func domainf(op, format string, args ...any) error {
	return &CalcError{Op: op, Kind: ErrDomain, Msg: fmt.Sprintf(format, args...)}
}

func divisionf(op, format string, args ...any) error {
	return &CalcError{Op: op, Kind: ErrDivisionByZero, Msg: fmt.Sprintf(format, args...)}
}

func notFoundf(op, format string, args ...any) error {
	return &CalcError{Op: op, Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// reop relabels an engine error raised by a helper with the caller's operation.
func reop(op string, err error) error {
	var ce *CalcError
	if errors.As(err, &ce) {
		return &CalcError{Op: op, Kind: ce.Kind, Msg: ce.Msg}
	}
	return err
}
