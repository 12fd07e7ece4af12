// Package erlang computes telecommunication trunk-sizing figures using the
// Erlang B traffic model (blocked-calls-cleared, no queuing).
//
// # Overview
//
// Given an offered traffic load, the package estimates the probability that
// an arriving call finds every channel busy; given a target blocking
// probability, it searches for the minimum number of channels that meets it.
// Everything is a pure function over numeric parameters: no state, no I/O,
// no goroutines, safe to call from any number of concurrent callers.
//
// # The Erlang B formula
//
// The classical form is a ratio of combinatorially growing terms:
//
//	B(A, N) = (A^N / N!) / Σ_{k=0..N} (A^k / k!)
//
// Where:
//   - A: offered traffic in Erlangs (dimensionless load)
//   - N: number of channels
//   - B: blocking probability
//
// Computing A^N and N! directly overflows float64 for realistic channel
// counts. This package instead iterates the mathematically equivalent
// inverse recurrence:
//
//	1/B(A, 0) = 1
//	1/B(A, n) = 1 + (1/B(A, n-1)) · n/A
//
// Every intermediate value stays bounded, so the computation is stable for
// channel counts in the thousands. See [ErlangB].
//
// # Quick Start
//
// Estimate blocking for 20 Erlangs offered to a 10-channel trunk:
//
//	b := erlang.ErlangB(20.0, 10)
//	fmt.Printf("blocking: %.1f%%\n", b*100) // heavy overload, > 50%
//
// Size a trunk for 15 Erlangs at 5% blocking:
//
//	n, ok := erlang.ChannelsForBlocking(15.0, 0.05, 100)
//	if !ok {
//	    // no channel count within the bound meets the target
//	}
//
// Size from user figures (100 users, 3-minute average calls, simultaneous
// call factor 10, 5% blocking):
//
//	n, ok := erlang.RequiredChannels(100, 3.0, 10, 0.05)
//
// # Derived figures
//
// [AnalyzeTrunk] reports carried traffic A(1-B), lost traffic A·B, and
// per-channel utilization for a given trunk. [MaxOfferedTraffic] solves the
// inverse problem: the largest load a trunk of a given size carries while
// staying at or below a blocking target. [RecommendTrunk] combines search,
// report, and a grade-of-service classification into a single
// recommendation.
//
// # E1 trunks
//
// An E1 carries 32 timeslots of which 30 are voice channels (one timeslot
// for synchronization, one for signaling). [E1Trunks] rounds a channel
// count up to whole E1 trunks; [RequiredE1Trunks] sizes directly from user
// figures.
//
// # Degenerate inputs
//
// The core performs no validation. Zero or negative traffic and
// out-of-range blocking targets propagate arithmetically: ErlangB(0, n) is
// 0.0 for n > 0 (zero offered load never blocks; this falls out of the
// IEEE arithmetic) and 1.0 for n == 0; negative traffic can leave [0, 1].
// "No channel count within the bound" is an expected outcome reported via
// the comma-ok form, never an error. Callers that want input checking at
// their boundary can use [SizingRequest.Validate].
//
// # Testing
//
// Exported helpers validate the model's properties in your own tests:
//
//	func TestTrunk(t *testing.T) {
//	    erlang.AssertBlockingMonotone(t, 15.0, 200)
//	    erlang.AssertBlockingRange(t, 15.0, 200)
//	    erlang.AssertMinimalChannels(t, 15.0, 0.05, 100)
//	}
//
// # Glossary
//
//   - Erlang: dimensionless unit of offered traffic intensity (average
//     number of simultaneous call-equivalents).
//   - Blocking probability: probability an arriving call finds all channels
//     occupied and is rejected ("lost calls cleared", no queuing).
//   - Channel: one unit of parallel call-carrying capacity (one voice
//     circuit in a fixed-capacity trunk).
//   - E1: fixed-capacity digital trunk standard, 30 voice channels.
package erlang
