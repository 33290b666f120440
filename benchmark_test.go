package bridgecalc

import "testing"

func BenchmarkQuantumCorrection(b *testing.B) {
	c := DefaultConstants()
	for i := 0; i < b.N; i++ {
		if _, err := QuantumCorrection(c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBridgeMass(b *testing.B) {
	c := DefaultConstants()
	for i := 0; i < b.N; i++ {
		if _, err := BridgeMass(PlanckMass, 768.5, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveIndexFromMass(b *testing.B) {
	c := DefaultConstants()
	for i := 0; i < b.N; i++ {
		if _, err := SolveIndexFromMass(9.10938356e-31, PlanckMass, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApproximateAll(b *testing.B) {
	c := DefaultConstants()
	table := DefaultParticles()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := table.ApproximateAll(PlanckMass, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSweep(b *testing.B) {
	c := DefaultConstants()
	cfg := DefaultSweepConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Sweep(Mass, PlanckMass, c, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// TestSweep_ParallelCallers runs the engine from many goroutines; pure
// functions must give every caller the same answer.
func TestSweep_ParallelCallers(t *testing.T) {
	c := DefaultConstants()
	cfg := SweepConfig{MinIndex: 0, MaxIndex: 100, Step: 1}
	want, err := Sweep(Radius, PlanckLength, c, cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		t.Run("worker", func(t *testing.T) {
			t.Parallel()
			got, err := Sweep(Radius, PlanckLength, c, cfg)
			if err != nil {
				t.Fatal(err)
			}
			for j := range want {
				if got[j] != want[j] {
					t.Fatalf("point %d differs: %v vs %v", j, got[j], want[j])
				}
			}
		})
	}
}
