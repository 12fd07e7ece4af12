package erlang

import "fmt"

// DefaultMaxChannels bounds the channel search when no explicit bound is
// given. 10,000 channels is far beyond any single trunk group and exists
// only to guarantee termination for unreachable targets.
const DefaultMaxChannels = 10_000

// ChannelsForBlocking returns the smallest channel count n in
// [1, maxChannels] for which ErlangB(traffic, n) <= blocking.
//
// Blocking probability is monotonically non-increasing in the channel count
// for fixed traffic, so a linear scan from n = 1 stops at the minimum as
// soon as the threshold is met. The second return value is false when no
// channel count within the bound satisfies the target. That is an expected
// outcome, not an error: blocking = 0 exactly, for example, is unreachable
// for any finite trunk carrying positive traffic.
//
// Cost is O(maxChannels) ErlangB evaluations, each itself O(n), so
// O(maxChannels²) arithmetic in the worst case. Trunk groups in this domain
// are tens to low thousands of channels, and maxChannels bounds the scan
// explicitly.
func ChannelsForBlocking(traffic, blocking float64, maxChannels int) (int, bool) {
	for n := 1; n <= maxChannels; n++ {
		if ErlangB(traffic, n) <= blocking {
			return n, true
		}
	}

	return 0, false
}

// OfferedTraffic converts user figures into offered load in Erlangs:
//
//	A = users · avgCallMinutes · concurrentCalls / 60
//
// The division by 60 normalizes minute-based call duration to the
// hour-based Erlang unit. No validation is performed; nonsensical inputs
// (negative durations, zero users) propagate arithmetically.
func OfferedTraffic(users int, avgCallMinutes float64, concurrentCalls int) float64 {
	return float64(users) * avgCallMinutes * float64(concurrentCalls) / 60.0
}

// RequiredChannels sizes a trunk directly from user figures: it derives the
// offered traffic via [OfferedTraffic] and searches for the minimum channel
// count meeting the blocking target, bounded by [DefaultMaxChannels].
//
// The second return value is false when the target is unreachable within
// the default bound.
func RequiredChannels(users int, avgCallMinutes float64, concurrentCalls int, blocking float64) (int, bool) {
	traffic := OfferedTraffic(users, avgCallMinutes, concurrentCalls)
	return ChannelsForBlocking(traffic, blocking, DefaultMaxChannels)
}

// SizingConfig controls the channel search bound.
type SizingConfig struct {
	MaxChannels int // Upper bound on the search space (termination guarantee)
}

// DefaultSizingConfig returns the standard search bound.
func DefaultSizingConfig() SizingConfig {
	return SizingConfig{
		MaxChannels: DefaultMaxChannels,
	}
}

// ChannelsFor runs the channel search under this configuration's bound.
func (c SizingConfig) ChannelsFor(traffic, blocking float64) (int, bool) {
	return ChannelsForBlocking(traffic, blocking, c.MaxChannels)
}

// SizingRequest carries the physical inputs of a trunk-sizing run for
// callers that want boundary validation before entering the pure core.
// The core functions themselves never validate; they propagate degenerate
// arithmetic by contract.
type SizingRequest struct {
	Users           int     // Number of users (> 0)
	AvgCallMinutes  float64 // Average call duration in minutes (> 0)
	ConcurrentCalls int     // Simultaneous-call factor (> 0)
	Blocking        float64 // Target blocking probability, strictly in (0, 1)
}

// Validate checks that the request is physically meaningful. A blocking
// target of 0 is rejected because no finite trunk reaches it with positive
// traffic; a target of 1 or more is trivially met by a single channel and
// indicates a unit mistake (per-cent given where a fraction was expected).
func (r SizingRequest) Validate() error {
	if r.Users <= 0 {
		return fmt.Errorf("users must be positive, got %d", r.Users)
	}
	if r.AvgCallMinutes <= 0 {
		return fmt.Errorf("average call duration must be positive minutes, got %g", r.AvgCallMinutes)
	}
	if r.ConcurrentCalls <= 0 {
		return fmt.Errorf("concurrent-call factor must be positive, got %d", r.ConcurrentCalls)
	}
	if r.Blocking <= 0 || r.Blocking >= 1 {
		return fmt.Errorf(
			"blocking target %g outside (0, 1)\n"+
				"  0 exactly is unreachable for any finite trunk\n"+
				"  values ≥ 1 usually mean a percentage was passed where a fraction was expected (use 0.05, not 5)",
			r.Blocking,
		)
	}

	return nil
}

// Traffic returns the offered load derived from the request.
func (r SizingRequest) Traffic() float64 {
	return OfferedTraffic(r.Users, r.AvgCallMinutes, r.ConcurrentCalls)
}
