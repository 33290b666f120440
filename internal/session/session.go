// Package session is the calculator's working state: it turns form requests
// into engine calls, keeps the log a user can export, and records the values
// the plot export draws.
//
// The engine in package bridgecalc stays stateless; everything mutable lives
// here, behind a mutex.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/alexshd/bridgecalc"
	"github.com/alexshd/bridgecalc/internal/export"
	"github.com/alexshd/bridgecalc/internal/logging"
)

// User-facing messages for rejected input.
const (
	MsgZeroKnown      = "Known value must not be zero."
	MsgSelectParticle = "Select a known particle."
	MsgLogCleared     = "Log cleared."
)

// UserError carries a message meant for display. The underlying engine error
// stays reachable through errors.Is.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Options configures a Session. Zero fields fall back to the built-in defaults.
type Options struct {
	Constants *bridgecalc.ModelConstants
	Table     *bridgecalc.ReferenceTable
	Logger    *slog.Logger
}

// Session accumulates log lines and plot samples across calculations.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	constants bridgecalc.ModelConstants
	table     bridgecalc.ReferenceTable
	logger    *slog.Logger

	lines   []string
	samples []export.Sample
}

// New creates an empty session.
func New(opts Options) *Session {
	s := &Session{
		id:        uuid.New(),
		constants: bridgecalc.DefaultConstants(),
		table:     bridgecalc.DefaultParticles(),
	}
	if opts.Constants != nil {
		s.constants = *opts.Constants
	}
	if opts.Table != nil {
		s.table = *opts.Table
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	s.logger = logger.With("session", s.id.String())
	return s
}

// ID identifies the session in logs and export metadata.
func (s *Session) ID() uuid.UUID { return s.id }

// Constants returns the session's base model constants.
func (s *Session) Constants() bridgecalc.ModelConstants { return s.constants }

// Table returns the session's reference particles.
func (s *Session) Table() bridgecalc.ReferenceTable { return s.table }

// RadiusRequest is the bridge-orbit form.
type RadiusRequest struct {
	ReferenceLength float64
	Index           float64
	Overrides       bridgecalc.Overrides
}

// RadiusResponse carries the computed radius and the correction applied.
type RadiusResponse struct {
	QuantumCorrection float64
	Radius            float64
}

// Radius evaluates BridgeRadius and logs the result.
func (s *Session) Radius(req RadiusRequest) (RadiusResponse, error) {
	c := s.constants.With(req.Overrides)

	qc, err := bridgecalc.QuantumCorrection(c)
	if err != nil {
		return RadiusResponse{}, s.fail("Error calculating radius", err)
	}
	r, err := bridgecalc.BridgeRadius(req.ReferenceLength, req.Index, c)
	if err != nil {
		return RadiusResponse{}, s.fail("Error calculating radius", err)
	}

	s.record(export.Sample{Quantity: bridgecalc.Radius, Index: req.Index, Value: r},
		fmt.Sprintf("Bridge Orbit: a0=%s, n=%s, Radius=%.3e m, QC=%.6f",
			formatInput(req.ReferenceLength), formatInput(req.Index), r, qc))
	s.logger.Debug("radius calculated", "a0", req.ReferenceLength, "n", req.Index, "radius", r)

	return RadiusResponse{QuantumCorrection: qc, Radius: r}, nil
}

// MassRequest is the mass form.
type MassRequest struct {
	ReferenceMass float64
	Index         float64
	Overrides     bridgecalc.Overrides
}

// MassResponse carries the computed mass and the correction applied.
type MassResponse struct {
	QuantumCorrection float64
	Mass              float64
}

// Mass evaluates BridgeMass and logs the result.
func (s *Session) Mass(req MassRequest) (MassResponse, error) {
	c := s.constants.With(req.Overrides)

	qc, err := bridgecalc.QuantumCorrection(c)
	if err != nil {
		return MassResponse{}, s.fail("Error calculating mass", err)
	}
	m, err := bridgecalc.BridgeMass(req.ReferenceMass, req.Index, c)
	if err != nil {
		return MassResponse{}, s.fail("Error calculating mass", err)
	}

	s.record(export.Sample{Quantity: bridgecalc.Mass, Index: req.Index, Value: m},
		fmt.Sprintf("Mass Calculation: n=%s, m0=%s, Mass=%.3e kg, QC=%.6f",
			formatInput(req.Index), formatInput(req.ReferenceMass), m, qc))
	s.logger.Debug("mass calculated", "m0", req.ReferenceMass, "n", req.Index, "mass", m)

	return MassResponse{QuantumCorrection: qc, Mass: m}, nil
}

// IndexRequest is the "find n from m" form.
type IndexRequest struct {
	TargetMass    float64
	ReferenceMass float64
	Overrides     bridgecalc.Overrides
}

// IndexResponse carries the solved index.
type IndexResponse struct {
	Index float64
}

// SolveIndex evaluates SolveIndexFromMass. Failures are logged and returned.
func (s *Session) SolveIndex(req IndexRequest) (IndexResponse, error) {
	c := s.constants.With(req.Overrides)

	n, err := bridgecalc.SolveIndexFromMass(req.TargetMass, req.ReferenceMass, c)
	if err != nil {
		return IndexResponse{}, s.fail("Error finding n", err)
	}

	s.record(export.Sample{Quantity: bridgecalc.Mass, Index: n, Value: req.TargetMass},
		fmt.Sprintf("Find n from m: m=%s, m0=%s, n=%.3f",
			formatInput(req.TargetMass), formatInput(req.ReferenceMass), n))
	s.logger.Debug("index solved", "m", req.TargetMass, "m0", req.ReferenceMass, "n", n)

	return IndexResponse{Index: n}, nil
}

// ErrorRequest is the error-percent form.
type ErrorRequest struct {
	Calculated float64
	Known      float64
}

// ErrorResponse carries the comparison.
type ErrorResponse struct {
	bridgecalc.ComparisonResult
}

// Compare evaluates the error percent and classification. A zero known value
// is rejected with MsgZeroKnown and not logged.
func (s *Session) Compare(req ErrorRequest) (ErrorResponse, error) {
	cmp, err := bridgecalc.Compare(req.Calculated, req.Known)
	if err != nil {
		if errors.Is(err, bridgecalc.ErrDivisionByZero) {
			return ErrorResponse{}, &UserError{Message: MsgZeroKnown, Err: err}
		}
		return ErrorResponse{}, s.fail("Error calculating error", err)
	}

	s.append(fmt.Sprintf("Error Calculation: calc=%s, known=%s, error=%.3f%%",
		formatInput(req.Calculated), formatInput(req.Known), cmp.ErrorPercent))
	s.logger.Debug("error calculated", "calc", req.Calculated, "known", req.Known,
		"error_percent", cmp.ErrorPercent, "classification", cmp.Classification)

	return ErrorResponse{ComparisonResult: cmp}, nil
}

// ApproxRequest is the approximation form.
type ApproxRequest struct {
	Name          string
	ReferenceMass float64
	Overrides     bridgecalc.Overrides
}

// ApproxResponse carries the approximation for one particle.
type ApproxResponse struct {
	bridgecalc.Approximation
}

// Approximate evaluates a known particle. Unknown names are rejected with
// MsgSelectParticle and not logged.
func (s *Session) Approximate(req ApproxRequest) (ApproxResponse, error) {
	c := s.constants.With(req.Overrides)

	a, err := s.table.Approximate(req.Name, req.ReferenceMass, c)
	if err != nil {
		if errors.Is(err, bridgecalc.ErrNotFound) {
			return ApproxResponse{}, &UserError{Message: MsgSelectParticle, Err: err}
		}
		return ApproxResponse{}, s.fail("Error approximating "+req.Name, err)
	}

	s.record(export.Sample{Quantity: bridgecalc.Mass, Index: a.Particle.Index, Value: a.Mass},
		fmt.Sprintf("Approximation: %s, n=%s, Mass: %.3e kg, Error: %.3f%%, %s",
			a.Particle.Name, formatIndex(a.Particle.Index), a.Mass, a.ErrorPercent,
			a.Classification.Verdict()))
	s.logger.Debug("particle approximated", "particle", a.Particle.Name,
		"error_percent", a.ErrorPercent, "classification", a.Classification)

	return ApproxResponse{Approximation: a}, nil
}

// ApproximateAll approximates every table particle in order, logging each.
// It stops at the first failure.
func (s *Session) ApproximateAll(referenceMass float64, o bridgecalc.Overrides) ([]ApproxResponse, error) {
	names := s.table.Names()
	out := make([]ApproxResponse, 0, len(names))
	for _, name := range names {
		resp, err := s.Approximate(ApproxRequest{Name: name, ReferenceMass: referenceMass, Overrides: o})
		if err != nil {
			return out, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// SweepRequest evaluates a forward formula over an index range.
type SweepRequest struct {
	Quantity  bridgecalc.Quantity
	Reference float64
	Config    bridgecalc.SweepConfig
	Overrides bridgecalc.Overrides
}

// SweepResponse carries the evaluated points.
type SweepResponse struct {
	Points []bridgecalc.SweepPoint
}

// Sweep evaluates the request and records every point as a plot sample.
func (s *Session) Sweep(req SweepRequest) (SweepResponse, error) {
	c := s.constants.With(req.Overrides)

	points, err := bridgecalc.Sweep(req.Quantity, req.Reference, c, req.Config)
	if err != nil {
		return SweepResponse{}, s.fail("Error sweeping "+string(req.Quantity), err)
	}

	samples := make([]export.Sample, len(points))
	for i, p := range points {
		samples[i] = export.Sample{Quantity: req.Quantity, Index: p.Index, Value: p.Value}
	}

	s.mu.Lock()
	s.samples = append(s.samples, samples...)
	s.lines = append(s.lines, fmt.Sprintf("Sweep: %s, reference=%s, n=%s..%s step %s, %d points",
		req.Quantity, formatInput(req.Reference), formatInput(req.Config.MinIndex),
		formatInput(req.Config.MaxIndex), formatInput(req.Config.Step), len(points)))
	s.mu.Unlock()
	s.logger.Debug("sweep evaluated", "quantity", req.Quantity, "points", len(points))

	return SweepResponse{Points: points}, nil
}

// Append adds a free-form line to the log.
func (s *Session) Append(line string) {
	s.append(line)
}

// Lines returns a copy of the log.
func (s *Session) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Samples returns a copy of the recorded plot samples.
func (s *Session) Samples() []export.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]export.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Clear empties the log and the samples, then notes the clear.
func (s *Session) Clear() {
	s.mu.Lock()
	s.lines = []string{MsgLogCleared}
	s.samples = nil
	s.mu.Unlock()
	s.logger.Debug("log cleared")
}

// Export writes the log (text, PDF) or the samples (PNG plot) to path, chosen
// by extension, then notes the export in the log.
func (s *Session) Export(path string) error {
	format, err := export.FormatFromPath(path)
	if err != nil {
		return err
	}

	doc := export.Document{
		Title:   "Bridge Formula Log",
		Subject: "session " + s.id.String(),
		Lines:   s.Lines(),
		Samples: s.Samples(),
	}
	if err := export.ToFile(path, format, doc); err != nil {
		s.logger.Warn("export failed", "path", path, "format", format, "err", err)
		return err
	}

	if format == export.FormatPlot {
		s.append("Plot exported to: " + path)
	} else {
		s.append("Log exported to: " + path)
	}
	s.logger.Info("log exported", "path", path, "format", format)
	return nil
}

func (s *Session) append(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
}

func (s *Session) record(sample export.Sample, line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.samples = append(s.samples, sample)
	s.mu.Unlock()
}

// fail logs an engine failure as a log line and returns it for display.
func (s *Session) fail(prefix string, err error) error {
	s.append(fmt.Sprintf("%s: %v", prefix, err))
	s.logger.Warn(prefix, "err", err)
	return err
}
