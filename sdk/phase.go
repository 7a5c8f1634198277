package sdk

// Phase is where the agent is in the round lifecycle driven by the engine.
type Phase int

const (
	// PhaseNotStarted is the state between rounds
	PhaseNotStarted Phase = iota
	// PhaseNewRound follows the new-round notification
	PhaseNewRound
	// PhaseOngoingRound follows at least one decision
	PhaseOngoingRound
	// PhaseRoundOver is entered during the round-over notification
	PhaseRoundOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseNewRound:
		return "new_round"
	case PhaseOngoingRound:
		return "ongoing_round"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// canEnter reports whether the engine may move the agent from p to next.
func (p Phase) canEnter(next Phase) bool {
	switch next {
	case PhaseNewRound:
		return p == PhaseNotStarted
	case PhaseOngoingRound, PhaseRoundOver:
		return p == PhaseNewRound || p == PhaseOngoingRound
	default:
		return false
	}
}
