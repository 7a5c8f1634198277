package aggressive

import (
	rand "math/rand/v2"

	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

// RaiseFrequency is how often the handler raises when it is allowed to.
const RaiseFrequency = 0.7

// Handler implements an aggressive strategy that raises 70% of the time when possible
type Handler struct {
	sdk.NopLifecycle
	rng *rand.Rand
}

func NewHandler(rng *rand.Rand) *Handler {
	return &Handler{rng: rng}
}

func (h *Handler) OnDecision(_ protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error) {
	if lo, _, ok := round.RaiseRange(); ok && h.rng.Float64() < RaiseFrequency {
		return protocol.Raise(lo), nil
	}
	if round.IsLegal(protocol.ActionCheck) {
		return protocol.Check(), nil
	}
	if round.IsLegal(protocol.ActionCall) {
		return protocol.Call(), nil
	}
	return protocol.Fold(), nil
}

// Check it implements the sdk.Handler interface
var _ sdk.Handler = (*Handler)(nil)
