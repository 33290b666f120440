package bridgecalc

import "strings"

// KnownParticle is a reference entry: the index at which the model is expected
// to reproduce the measured mass.
type KnownParticle struct {
	Name  string  `toml:"name" yaml:"name"`
	Index float64 `toml:"index" yaml:"index"`
	Mass  float64 `toml:"mass" yaml:"mass"` // kg
}

// Approximation is the result of evaluating the model for a known particle.
type Approximation struct {
	Particle KnownParticle
	Mass     float64 // BridgeMass at the particle's stored index
	ComparisonResult
}

// ReferenceTable is an immutable set of known particles. The zero value is an
// empty table.
type ReferenceTable struct {
	particles []KnownParticle
}

// DefaultParticles returns the built-in reference data.
func DefaultParticles() ReferenceTable {
	return NewReferenceTable([]KnownParticle{
		{Name: "Electron", Index: 768.5, Mass: 9.10938356e-31},
		{Name: "Proton", Index: 220, Mass: 1.67262192369e-27},
		{Name: "Muon", Index: 45, Mass: 1.883531627e-28},
	})
}

// NewReferenceTable copies particles into a table. Later entries with an
// already-seen name are dropped, keeping the first.
func NewReferenceTable(particles []KnownParticle) ReferenceTable {
	seen := make(map[string]bool, len(particles))
	out := make([]KnownParticle, 0, len(particles))
	for _, p := range particles {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return ReferenceTable{particles: out}
}

// Len returns the number of particles.
func (t ReferenceTable) Len() int { return len(t.particles) }

// Names lists particle names in table order.
func (t ReferenceTable) Names() []string {
	names := make([]string, len(t.particles))
	for i, p := range t.particles {
		names[i] = p.Name
	}
	return names
}

// Particles returns a copy of the entries.
func (t ReferenceTable) Particles() []KnownParticle {
	out := make([]KnownParticle, len(t.particles))
	copy(out, t.particles)
	return out
}

// Lookup finds a particle by exact name.
func (t ReferenceTable) Lookup(name string) (KnownParticle, error) {
	for _, p := range t.particles {
		if p.Name == name {
			return p, nil
		}
	}
	if strings.TrimSpace(name) == "" {
		return KnownParticle{}, notFoundf("Lookup", "select a known particle")
	}
	return KnownParticle{}, notFoundf("Lookup", "no particle named %q", name)
}

// Approximate evaluates BridgeMass at the named particle's stored index and
// classifies the result against its known mass.
func (t ReferenceTable) Approximate(name string, referenceMass float64, c ModelConstants) (Approximation, error) {
	const op = "Approximate"

	p, err := t.Lookup(name)
	if err != nil {
		return Approximation{}, reop(op, err)
	}
	return approximate(p, referenceMass, c)
}

// ApproximateAll approximates every particle in table order. It stops at the
// first failure.
func (t ReferenceTable) ApproximateAll(referenceMass float64, c ModelConstants) ([]Approximation, error) {
	out := make([]Approximation, 0, len(t.particles))
	for _, p := range t.particles {
		a, err := approximate(p, referenceMass, c)
		if err != nil {
			return nil, reop("ApproximateAll", err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Approximate runs ReferenceTable.Approximate against the built-in particles.
func Approximate(name string, referenceMass float64, c ModelConstants) (Approximation, error) {
	return DefaultParticles().Approximate(name, referenceMass, c)
}

func approximate(p KnownParticle, referenceMass float64, c ModelConstants) (Approximation, error) {
	const op = "Approximate"

	mass, err := BridgeMass(referenceMass, p.Index, c)
	if err != nil {
		return Approximation{}, reop(op, err)
	}
	cmp, err := Compare(mass, p.Mass)
	if err != nil {
		return Approximation{}, reop(op, err)
	}
	return Approximation{Particle: p, Mass: mass, ComparisonResult: cmp}, nil
}
