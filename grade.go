package erlang

import "fmt"

// ServiceGrade classifies a blocking probability against conventional
// trunk-planning bands.
type ServiceGrade string

const (
	GradePremium      ServiceGrade = "PREMIUM"      // B ≤ 1%: toll-quality target
	GradeStandard     ServiceGrade = "STANDARD"     // B ≤ 5%: common enterprise target
	GradeDegraded     ServiceGrade = "DEGRADED"     // B ≤ 15%: noticeable busy signals
	GradeUnacceptable ServiceGrade = "UNACCEPTABLE" // B > 15%: trunk effectively saturated
)

// Planning band boundaries for ClassifyBlocking.
const (
	premiumBlocking  = 0.01
	standardBlocking = 0.05
	degradedBlocking = 0.15
)

// ClassifyBlocking maps a blocking probability onto a service grade.
func ClassifyBlocking(blocking float64) ServiceGrade {
	switch {
	case blocking <= premiumBlocking:
		return GradePremium
	case blocking <= standardBlocking:
		return GradeStandard
	case blocking <= degradedBlocking:
		return GradeDegraded
	default:
		return GradeUnacceptable
	}
}

// SizingRecommendation combines the channel search with the derived trunk
// figures and a grade classification, plus human-readable reasoning.
type SizingRecommendation struct {
	Found    bool         // False when no trunk within the bound meets the target
	Channels int          // Minimum channel count meeting the target (when Found)
	Report   TrunkReport  // Traffic figures at the recommended size
	Grade    ServiceGrade // Grade of the achieved blocking
	Reason   string       // Human-readable explanation
}

// RecommendTrunk sizes a trunk for the given offered load and blocking
// target, bounded by maxChannels, and explains the outcome.
//
// When the target is unreachable within the bound, Found is false, Report
// describes the trunk at maxChannels (the best the bound allows), and
// Reason states why the search was exhausted.
func RecommendTrunk(traffic, blocking float64, maxChannels int) SizingRecommendation {
	n, ok := ChannelsForBlocking(traffic, blocking, maxChannels)
	if !ok {
		report := AnalyzeTrunk(traffic, maxChannels)
		return SizingRecommendation{
			Found:  false,
			Report: report,
			Grade:  ClassifyBlocking(report.Blocking),
			Reason: fmt.Sprintf(
				"no trunk within %d channels meets blocking ≤ %g at %.2f Erlangs; "+
					"at the bound the trunk still blocks %.4f. "+
					"Raise the bound, relax the target, or reduce offered load.",
				maxChannels, blocking, traffic, report.Blocking,
			),
		}
	}

	report := AnalyzeTrunk(traffic, n)
	return SizingRecommendation{
		Found:    true,
		Channels: n,
		Report:   report,
		Grade:    ClassifyBlocking(report.Blocking),
		Reason: fmt.Sprintf(
			"%d channels (%d E1) carry %.2f Erlangs at %.4f blocking (target ≤ %g), "+
				"%.2f Erlangs carried, %.1f%% mean channel occupancy",
			n, report.E1Trunks, traffic, report.Blocking, blocking,
			report.CarriedTraffic, report.Utilization*100,
		),
	}
}
