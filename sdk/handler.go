package sdk

import "github.com/lox/pokerbot-skeleton/protocol"

// Handler is the decision logic behind an Agent. Each method is called by
// the Agent at one point in the round lifecycle. Errors and panics are
// absorbed by the Agent and never reach the engine.
type Handler interface {
	// OnNewRound is called once per round before any decision, with street 0
	OnNewRound(game protocol.GameInfo, round protocol.RoundInfo) error

	// OnDecision is called every time the engine needs an action from the agent
	OnDecision(game protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error)

	// OnRoundOver is called once per round after the last decision
	OnRoundOver(game protocol.GameInfo, result protocol.RoundOverInfo) error
}

// NopLifecycle implements the informational Handler callbacks as no-ops.
// Embed it in handlers that only decide.
type NopLifecycle struct{}

func (NopLifecycle) OnNewRound(protocol.GameInfo, protocol.RoundInfo) error      { return nil }
func (NopLifecycle) OnRoundOver(protocol.GameInfo, protocol.RoundOverInfo) error { return nil }

// DecisionFunc adapts a function to a Handler that only decides.
type DecisionFunc func(game protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error)

func (f DecisionFunc) OnNewRound(protocol.GameInfo, protocol.RoundInfo) error      { return nil }
func (f DecisionFunc) OnRoundOver(protocol.GameInfo, protocol.RoundOverInfo) error { return nil }

func (f DecisionFunc) OnDecision(game protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error) {
	return f(game, round)
}

var _ Handler = DecisionFunc(nil)
