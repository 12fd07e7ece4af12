package erlang

import "math"

// MaxOfferedTraffic solves the inverse sizing problem: the largest offered
// load (in Erlangs) a trunk of the given size carries while keeping
// blocking at or below the target.
//
// For fixed channels, blocking is monotonically increasing in traffic, so
// the answer is found by bisection: grow an upper bracket by doubling until
// it blocks above the target, then halve the interval to convergence.
//
// Returns 0 when channels <= 0 or blocking <= 0 (no positive load meets
// the target) and +Inf when blocking >= 1 (every load trivially meets it).
func MaxOfferedTraffic(channels int, blocking float64) float64 {
	if channels <= 0 || blocking <= 0 {
		return 0
	}
	if blocking >= 1 {
		return math.Inf(1)
	}

	// Bracket: a trunk of N channels carries on the order of N Erlangs,
	// so N is a natural starting guess for the upper bound.
	hi := float64(channels)
	for ErlangB(hi, channels) <= blocking {
		hi *= 2
		if hi > 1e12 {
			return hi // target effectively unreachable from above
		}
	}

	lo := 0.0
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if ErlangB(mid, channels) <= blocking {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// TrunkReport is a snapshot of the traffic figures for one trunk: the
// offered load, how much of it is carried versus lost, and how busy each
// channel is on average.
type TrunkReport struct {
	OfferedTraffic float64 // A: offered load in Erlangs
	Channels       int     // N: trunk size
	Blocking       float64 // B(A, N)
	CarriedTraffic float64 // A·(1-B): load actually served
	LostTraffic    float64 // A·B: load rejected
	Utilization    float64 // carried / N: mean per-channel occupancy
	E1Trunks       int     // whole E1 trunks needed for N channels
}

// AnalyzeTrunk computes the derived traffic figures for a trunk carrying
// the given offered load.
//
// Carried and lost traffic partition the offered load exactly:
// CarriedTraffic + LostTraffic == OfferedTraffic. Utilization is the mean
// occupancy of a single channel and stays in [0, 1] for meaningful inputs;
// it is 0 when channels == 0 (nothing is carried).
func AnalyzeTrunk(traffic float64, channels int) TrunkReport {
	b := ErlangB(traffic, channels)
	carried := traffic * (1 - b)

	utilization := 0.0
	if channels > 0 {
		utilization = carried / float64(channels)
	}

	return TrunkReport{
		OfferedTraffic: traffic,
		Channels:       channels,
		Blocking:       b,
		CarriedTraffic: carried,
		LostTraffic:    traffic * b,
		Utilization:    utilization,
		E1Trunks:       E1Trunks(channels),
	}
}
