package core

import (
	"testing"
)

// sequenceSampler replays fixed values, cycling when exhausted
type sequenceSampler struct {
	values []float64
	index  int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

func (s *sequenceSampler) Get3D() Vec3 {
	return NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomFloat(sampler)
		if v < 0 || v >= 1 {
			t.Fatalf("RandomFloat out of range: %f", v)
		}
		r := RandomRange(sampler, -2, 3)
		if r < -2 || r >= 3 {
			t.Fatalf("RandomRange out of range: %f", r)
		}
		p := RandomVec3Range(sampler, 5, 6)
		if p.X < 5 || p.X >= 6 || p.Y < 5 || p.Y >= 6 || p.Z < 5 || p.Z >= 6 {
			t.Fatalf("RandomVec3Range out of range: %v", p)
		}
	}
}

func TestNewSeededSampler_Reproducible(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Seeded samplers diverged at draw %d", i)
		}
	}
}

func TestRandomInUnitSphere_RejectsOutsideBall(t *testing.T) {
	// First candidate (0.9,0.9,0.9) has |p|^2 = 2.43 and must be rejected.
	// Second candidate (0.1,0.2,0.3) is inside.
	sampler := &sequenceSampler{values: []float64{0.9, 0.9, 0.9, 0.1, 0.2, 0.3}}

	p := RandomInUnitSphere(sampler)
	if !vecClose(p, NewVec3(0.1, 0.2, 0.3)) {
		t.Errorf("Expected (0.1,0.2,0.3), got %v", p)
	}
	if sampler.index != 6 {
		t.Errorf("Expected 6 draws, got %d", sampler.index)
	}
}

func TestRandomInUnitSphere_Domain(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point outside unit ball: %v", p)
		}
		if p.X < 0 || p.Y < 0 || p.Z < 0 {
			t.Fatalf("Point outside positive octant: %v", p)
		}
	}
}

func TestRandomUnitVector_IsUnit(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(sampler)
		if d := v.Length() - 1; d > 1e-9 || d < -1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}
