package random

import (
	rand "math/rand/v2"

	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

// Handler implements a random strategy that makes random valid actions
type Handler struct {
	sdk.NopLifecycle
	rng *rand.Rand
}

func NewHandler(rng *rand.Rand) *Handler {
	return &Handler{rng: rng}
}

func (h *Handler) OnDecision(_ protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error) {
	legal := round.LegalActions()
	if len(legal) == 0 {
		return protocol.Fold(), nil
	}
	t := legal[h.rng.IntN(len(legal))]
	if t != protocol.ActionRaise {
		return protocol.Action{Type: t}, nil
	}
	lo, hi, _ := round.RaiseRange()
	if hi <= lo {
		return protocol.Raise(lo), nil
	}
	return protocol.Raise(lo + h.rng.IntN(hi-lo+1)), nil
}

// Check it implements the sdk.Handler interface
var _ sdk.Handler = (*Handler)(nil)
