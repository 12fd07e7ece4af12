package erlang

// E1VoiceChannels is the voice capacity of one E1 trunk: 32 timeslots minus
// one for frame synchronization (TS0) and one for signaling (TS16).
const E1VoiceChannels = 30

// E1Trunks returns the number of whole E1 trunks needed to provide the
// given channel count. Zero or negative channel counts need no trunk.
func E1Trunks(channels int) int {
	if channels <= 0 {
		return 0
	}
	return (channels + E1VoiceChannels - 1) / E1VoiceChannels
}

// RequiredE1Trunks sizes in whole E1 trunks directly from user figures.
// The channel search runs under [DefaultMaxChannels]; the second return
// value is false when the blocking target is unreachable within that bound.
func RequiredE1Trunks(users int, avgCallMinutes float64, concurrentCalls int, blocking float64) (int, bool) {
	channels, ok := RequiredChannels(users, avgCallMinutes, concurrentCalls, blocking)
	if !ok {
		return 0, false
	}
	return E1Trunks(channels), true
}
