// Package skeleton is the placeholder strategy shipped with the engine's
// starter kit. It looks only at its own hole cards.
package skeleton

import (
	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

// Raise amounts proposed by the heuristic. They ignore the raise bounds; the
// agent clamps or replaces them.
const (
	PairRaise    = 10
	PremiumRaise = 300
)

// Handler raises on a pocket pair or two cards from {A, K, Q} and folds
// everything else.
type Handler struct {
	sdk.NopLifecycle
}

func (Handler) OnDecision(_ protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error) {
	cards := round.PlayerCards()
	first, second := cards[0].Rank(), cards[1].Rank()

	if first == second {
		return protocol.Raise(PairRaise), nil
	}
	if isPremium(first) && isPremium(second) {
		return protocol.Raise(PremiumRaise), nil
	}
	return protocol.Fold(), nil
}

func isPremium(r poker.Rank) bool {
	return r == poker.Ace || r == poker.King || r == poker.Queen
}

// Check it implements the sdk.Handler interface
var _ sdk.Handler = Handler{}
