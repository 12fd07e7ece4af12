package erlang

// ErlangB returns the probability that all channels of a trunk are
// simultaneously occupied under the Erlang B model (blocked-calls-cleared).
//
// traffic is the offered load in Erlangs and should be > 0 for a meaningful
// result; channels is the non-negative channel count.
//
// The implementation iterates the inverse recurrence
//
//	1/B(A, 0) = 1
//	1/B(A, n) = 1 + (1/B(A, n-1)) · n/A
//
// rather than evaluating the classical A^N/N! ratio, which overflows
// float64 long before realistic channel counts. The recurrence keeps every
// intermediate bounded and is stable for channels in the thousands.
//
// Edge cases:
//   - channels == 0: the loop never runs and the result is 1.0
//     (certainty of blocking with zero channels).
//   - traffic == 0: the division inside the recurrence produces +Inf
//     intermediates and the result collapses to 0.0 for channels > 0.
//   - Negative traffic: sign-alternating terms propagate and the result
//     may leave [0, 1].
//
// No error is ever returned; degenerate inputs yield degenerate
// floating-point values. Input validation belongs to the caller (see
// [SizingRequest.Validate]).
func ErlangB(traffic float64, channels int) float64 {
	inverseB := 1.0

	for n := 1; n <= channels; n++ {
		inverseB = 1.0 + inverseB*(float64(n)/traffic)
	}

	return 1.0 / inverseB
}
