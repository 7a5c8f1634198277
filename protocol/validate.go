package protocol

import (
	"errors"
	"fmt"
)

// Reasons an action is not acceptable for a RoundInfo.
var (
	ErrNoLegalActions   = errors.New("no legal actions")
	ErrIllegalAction    = errors.New("action not in legal set")
	ErrRaiseOutOfBounds = errors.New("raise amount outside bounds")
)

// Validate checks that a is permitted by r: its type must be in the legal set
// and a raise must lie within the raise bounds inclusive. What the engine does
// with an action that fails these checks is up to the engine; the agent must
// not send one.
func Validate(r RoundInfo, a Action) error {
	legal := r.LegalActions()
	if len(legal) == 0 {
		return ErrNoLegalActions
	}
	if !r.IsLegal(a.Type) {
		return fmt.Errorf("%w: %s not in %v", ErrIllegalAction, a.Type, legal)
	}
	if a.Type != ActionRaise {
		return nil
	}
	lo, hi, _ := r.RaiseRange()
	if int(a.Amount) < lo || int(a.Amount) > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRaiseOutOfBounds, a.Amount, lo, hi)
	}
	return nil
}

// ClampRaise returns a raise of amount moved into the legal raise bounds.
// ok is false when raising is not legal.
func ClampRaise(r RoundInfo, amount int) (Action, bool) {
	lo, hi, ok := r.RaiseRange()
	if !ok {
		return Action{}, false
	}
	if hi < lo {
		hi = lo
	}
	return Raise(max(lo, min(amount, hi))), true
}

// safetyOrder ranks action types from least to most chips put at risk.
var safetyOrder = [...]ActionType{ActionCheck, ActionFold, ActionCall, ActionRaise}

// SafestAction returns the legal action that risks the fewest chips: check
// when it is free, otherwise fold. If the engine offers neither, the cheapest
// remaining option is used, and a minimum raise as a last resort. An empty
// legal set yields a fold.
func SafestAction(r RoundInfo) Action {
	for _, t := range safetyOrder {
		if !r.IsLegal(t) {
			continue
		}
		if t == ActionRaise {
			a, _ := ClampRaise(r, int(r.RaiseBounds[0]))
			return a
		}
		return Action{Type: t}
	}
	return Fold()
}

// Normalize zeroes the amount of any non-raise action.
func Normalize(a Action) Action {
	if a.Type != ActionRaise {
		a.Amount = 0
	}
	return a
}
