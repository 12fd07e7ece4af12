package erlang

import (
	"math"
	"testing"
)

// TestErlangB_KnownValues checks the recurrence against hand-computed
// closed-form results.
//
// Direct formula for small cases:
//
//	B(1, 1) = (1/1!) / (1 + 1)         = 0.5
//	B(1, 2) = (1/2!) / (1 + 1 + 0.5)   = 0.2
//	B(2, 2) = (4/2!) / (1 + 2 + 2)     = 0.4
func TestErlangB_KnownValues(t *testing.T) {
	cases := []struct {
		traffic  float64
		channels int
		want     float64
	}{
		{1.0, 1, 0.5},
		{1.0, 2, 0.2},
		{2.0, 2, 0.4},
	}

	for _, c := range cases {
		got := ErlangB(c.traffic, c.channels)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ErlangB(%g, %d) = %.12f, want %.12f", c.traffic, c.channels, got, c.want)
		} else {
			t.Logf("✓ B(%g, %d) = %.4f", c.traffic, c.channels, got)
		}
	}
}

// TestErlangB_ZeroChannels verifies certainty of blocking with no capacity.
func TestErlangB_ZeroChannels(t *testing.T) {
	for _, traffic := range []float64{0.1, 1.0, 20.0, 500.0} {
		if b := ErlangB(traffic, 0); b != 1.0 {
			t.Errorf("ErlangB(%g, 0) = %v, want 1.0", traffic, b)
		}
	}
	t.Logf("✓ B(A, 0) = 1.0 for all tested A > 0")
}

// TestErlangB_ZeroTraffic documents the degenerate-input contract: the
// recurrence divides by traffic, the inverse blows up to +Inf, and the
// blocking collapses to 0 for any trunk with capacity.
func TestErlangB_ZeroTraffic(t *testing.T) {
	if b := ErlangB(0, 0); b != 1.0 {
		t.Errorf("ErlangB(0, 0) = %v, want 1.0", b)
	}
	for _, n := range []int{1, 5, 100} {
		if b := ErlangB(0, n); b != 0.0 {
			t.Errorf("ErlangB(0, %d) = %v, want 0.0", n, b)
		}
	}
	t.Logf("✓ Zero offered load never blocks on a non-empty trunk")
}

// TestErlangB_HeavyOverload: 20 Erlangs offered to 10 channels is a 2x
// overload; blocking must be substantial but still a probability.
func TestErlangB_HeavyOverload(t *testing.T) {
	b := ErlangB(20.0, 10)

	if b <= 0.0 || b >= 1.0 {
		t.Fatalf("ErlangB(20, 10) = %v, want strictly inside (0, 1)", b)
	}
	if b <= 0.5 {
		t.Errorf("ErlangB(20, 10) = %.4f, expected > 0.5 for a 2x overload", b)
	}

	t.Logf("✓ 20 Erlangs on 10 channels blocks %.1f%% of calls", b*100)
}

// TestErlangB_Monotone verifies blocking never increases as channels are
// added, across light, matched, and overloaded trunks.
func TestErlangB_Monotone(t *testing.T) {
	for _, traffic := range []float64{0.5, 15.0, 50.0, 400.0} {
		AssertBlockingMonotone(t, traffic, 600)
	}
}

// TestErlangB_Range verifies results stay finite probabilities.
func TestErlangB_Range(t *testing.T) {
	for _, traffic := range []float64{0.01, 1.0, 20.0, 150.0} {
		AssertBlockingRange(t, traffic, 300)
	}
}

// TestErlangB_NumericalStability exercises channel counts that would
// overflow the direct A^N/N! formulation long before completion.
// float64 overflows past ~1e308; 1000! alone is ~4e2567.
func TestErlangB_NumericalStability(t *testing.T) {
	cases := []struct {
		traffic  float64
		channels int
	}{
		{900.0, 1000},
		{1200.0, 1000},
		{2500.0, 3000},
		{100.0, 5000},
	}

	for _, c := range cases {
		b := ErlangB(c.traffic, c.channels)
		if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 || b > 1 {
			t.Errorf("ErlangB(%g, %d) = %v, want finite probability", c.traffic, c.channels, b)
		} else {
			t.Logf("✓ B(%g, %d) = %.6g (stable at trunk sizes where N! ≈ 1e2567+)", c.traffic, c.channels, b)
		}
	}
}

// TestErlangB_BlockingTable logs the capacity curve for a mid-size trunk.
func TestErlangB_BlockingTable(t *testing.T) {
	PrintBlockingTable(t, 15.0, []int{5, 10, 15, 18, 20, 25, 30, 40})
}
