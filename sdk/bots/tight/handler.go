// Package tight plays few hands: it opens with premium and strong holdings
// preflop and continues postflop only when Monte Carlo equity beats the price.
package tight

import (
	rand "math/rand/v2"

	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

// DefaultSamples is the number of Monte Carlo runouts per equity estimate.
const DefaultSamples = 500

// Heads-up preflop equity by hole card category.
var preflopEquity = map[poker.HoleCardCategory]float64{
	poker.CategoryPremium: 0.80,
	poker.CategoryStrong:  0.66,
	poker.CategoryMedium:  0.57,
	poker.CategoryWeak:    0.48,
	poker.CategoryTrash:   0.38,
	poker.CategoryUnknown: 0.30,
}

const (
	valueRaiseEquity = 0.70
	openEquity       = 0.60
)

type equitySnapshot struct {
	valid  bool
	street int
	equity float64
}

// Handler keeps one equity estimate per street and resets it each round.
type Handler struct {
	rng     *rand.Rand
	samples int
	cache   equitySnapshot
}

func NewHandler(rng *rand.Rand, samples int) *Handler {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return &Handler{rng: rng, samples: samples}
}

func (h *Handler) OnNewRound(protocol.GameInfo, protocol.RoundInfo) error {
	h.cache = equitySnapshot{}
	return nil
}

func (h *Handler) OnRoundOver(protocol.GameInfo, protocol.RoundOverInfo) error {
	h.cache = equitySnapshot{}
	return nil
}

func (h *Handler) OnDecision(_ protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error) {
	equity, err := h.equity(round)
	if err != nil {
		return protocol.Action{}, err
	}

	cost := round.ContinueCost()
	lo, hi, canRaise := round.RaiseRange()

	switch {
	case canRaise && equity >= valueRaiseEquity:
		return protocol.Raise(lo + (hi-lo)/4), nil
	case canRaise && cost == 0 && equity >= openEquity:
		return protocol.Raise(lo), nil
	case round.IsLegal(protocol.ActionCheck):
		return protocol.Check(), nil
	case round.IsLegal(protocol.ActionCall) && equity > potOdds(round):
		return protocol.Call(), nil
	default:
		return protocol.Fold(), nil
	}
}

// equity returns the cached estimate for the current street, computing it
// on first use.
func (h *Handler) equity(round protocol.RoundInfo) (float64, error) {
	street := round.BoardSize()
	if h.cache.valid && h.cache.street == street {
		return h.cache.equity, nil
	}

	hole := round.PlayerCards()
	board := round.CommunityCards()

	var equity float64
	switch {
	case street == 0:
		equity = preflopEquity[poker.CategorizeHoleCards(hole[0], hole[1])]
	case len(board) <= poker.HoldemBoardSize:
		var err error
		equity, err = poker.Equity(h.rng, hole, board, h.samples)
		if err != nil {
			return 0, err
		}
	default:
		var err error
		equity, err = improvement(hole, board)
		if err != nil {
			return 0, err
		}
	}

	h.cache = equitySnapshot{valid: true, street: street, equity: equity}
	return equity, nil
}

// improvement is a coarse stand-in for boards longer than a holdem runout,
// where no runout can be simulated: it only asks whether the hole cards
// improve on the board itself.
func improvement(hole [2]poker.Card, board []poker.Card) (float64, error) {
	mine, err := poker.EvaluateMadeHand(hole, board)
	if err != nil {
		return 0, err
	}
	shared, err := poker.Evaluate(board)
	if err != nil {
		return 0, err
	}
	if mine.Beats(shared) {
		return 0.6, nil
	}
	return 0.3, nil
}

// potOdds is the share of the final pot the call would contribute, using
// the chips committed this betting round as the pot.
func potOdds(round protocol.RoundInfo) float64 {
	cost := round.ContinueCost()
	if cost <= 0 {
		return 0
	}
	pot := int(round.MyPip) + int(round.OppPip)
	return float64(cost) / float64(pot+cost)
}

// Check it implements the sdk.Handler interface
var _ sdk.Handler = (*Handler)(nil)
