package mode0

import "testing"

func TestPrincipalDirectionDegenerateZeroVariance(t *testing.T) {
	var cov [3][3]float32
	_, degenerate := principalDirection(cov)
	if !degenerate {
		t.Fatalf("zero covariance matrix should be reported degenerate")
	}
}

func TestPrincipalDirectionAxisAligned(t *testing.T) {
	cov := [3][3]float32{
		{10, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	dir, degenerate := principalDirection(cov)
	if degenerate {
		t.Fatalf("axis-aligned covariance should not be degenerate")
	}
	if absf32(dir[0]) < 0.99 {
		t.Fatalf("principal direction = %v, want dominated by axis 0", dir)
	}
}

func TestSeedEndpointsEmptyRegion(t *testing.T) {
	a, b := seedEndpoints(nil)
	if a != ([3]float64{0, 0, 0}) || b != ([3]float64{0, 0, 0}) {
		t.Fatalf("empty region seed = (%v,%v), want zero", a, b)
	}
}

func TestSeedEndpointsTwoSamples(t *testing.T) {
	samples := []sample{
		{pos: 0, rgba: [4]float64{10, 20, 30, 255}},
		{pos: 1, rgba: [4]float64{200, 210, 220, 255}},
	}
	a, b := seedEndpoints(samples)
	if a != ([3]float64{10, 20, 30}) {
		t.Fatalf("two-sample seed a = %v, want (10,20,30)", a)
	}
	if b != ([3]float64{200, 210, 220}) {
		t.Fatalf("two-sample seed b = %v, want (200,210,220)", b)
	}
}
