package erlang

import (
	"math"
	"testing"
)

// AssertBlockingMonotone verifies that blocking probability never increases
// as channels are added for a fixed offered load.
//
// Mathematical property:
//
//	B(A, n+1) ≤ B(A, n) for all n ≥ 0, A > 0
//
// Adding a channel can only reduce (or leave unchanged) the chance that an
// arriving call finds the trunk full.
func AssertBlockingMonotone(t *testing.T, traffic float64, maxChannels int) {
	t.Helper()

	prev := ErlangB(traffic, 0)
	for n := 1; n <= maxChannels; n++ {
		b := ErlangB(traffic, n)
		if b > prev {
			t.Errorf("blocking increased when adding a channel: B(%g, %d)=%.9f > B(%g, %d)=%.9f",
				traffic, n, b, traffic, n-1, prev)
			return
		}
		prev = b
	}

	t.Logf("✓ Monotone: B(%g, n) non-increasing for n ≤ %d", traffic, maxChannels)
}

// AssertBlockingRange verifies every blocking value stays inside [0, 1]
// and is finite for the given traffic across all channel counts up to
// maxChannels.
func AssertBlockingRange(t *testing.T, traffic float64, maxChannels int) {
	t.Helper()

	for n := 0; n <= maxChannels; n++ {
		b := ErlangB(traffic, n)
		if math.IsNaN(b) || b < 0 || b > 1 {
			t.Errorf("blocking out of range: B(%g, %d) = %v", traffic, n, b)
			return
		}
	}

	t.Logf("✓ Range: 0 ≤ B(%g, n) ≤ 1 for n ≤ %d", traffic, maxChannels)
}

// AssertMinimalChannels verifies the search result is truly minimal: the
// returned count meets the target and every smaller count misses it.
func AssertMinimalChannels(t *testing.T, traffic, blocking float64, maxChannels int) {
	t.Helper()

	n, ok := ChannelsForBlocking(traffic, blocking, maxChannels)
	if !ok {
		// Exhaustion is legitimate; verify nothing in range satisfies.
		for k := 1; k <= maxChannels; k++ {
			if ErlangB(traffic, k) <= blocking {
				t.Errorf("search reported exhaustion but B(%g, %d)=%.9f ≤ %g",
					traffic, k, ErlangB(traffic, k), blocking)
				return
			}
		}
		t.Logf("✓ Exhaustion: no n ≤ %d meets B ≤ %g at %g Erlangs", maxChannels, blocking, traffic)
		return
	}

	if b := ErlangB(traffic, n); b > blocking {
		t.Errorf("search result does not meet target: B(%g, %d)=%.9f > %g", traffic, n, b, blocking)
		return
	}
	for k := 1; k < n; k++ {
		if b := ErlangB(traffic, k); b <= blocking {
			t.Errorf("search result not minimal: B(%g, %d)=%.9f ≤ %g but got n=%d",
				traffic, k, b, blocking, n)
			return
		}
	}

	t.Logf("✓ Minimal: n=%d is the smallest trunk with B(%g, n) ≤ %g", n, traffic, blocking)
}

// PrintBlockingTable logs blocking, carried load, and utilization for a
// range of trunk sizes at a fixed offered load. Useful for eyeballing how
// fast blocking collapses as capacity is added.
func PrintBlockingTable(t *testing.T, traffic float64, channelSteps []int) {
	t.Helper()

	t.Logf("\n=== Erlang B: %.2f Erlangs offered ===", traffic)
	t.Logf("  N     Blocking    Carried (E)  Utilization")
	t.Logf("  ----  ----------  -----------  -----------")
	for _, n := range channelSteps {
		r := AnalyzeTrunk(traffic, n)
		t.Logf("  %-4d  %10.6f  %11.3f  %10.1f%%", n, r.Blocking, r.CarriedTraffic, r.Utilization*100)
	}
}
