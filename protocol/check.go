package protocol

import (
	"errors"
	"fmt"
)

// Invariant violations reported by Check. Decoding never fails on them: the
// accessors clamp counts into range instead.
var (
	ErrStreetOutOfRange     = errors.New("street out of range")
	ErrLegalCountOutOfRange = errors.New("legal action count out of range")
	ErrUnknownActionType    = errors.New("unknown action type in legal set")
	ErrDuplicateLegalAction = errors.New("duplicate legal action")
	ErrInvertedRaiseBounds  = errors.New("raise bounds inverted")
	ErrMixedOpponentCards   = errors.New("opponent cards partly hidden")
	ErrInvalidCard          = errors.New("invalid card")
)

// Check reports every invariant the engine is expected to uphold but that r
// violates. A nil result means the record is well formed.
func (r RoundInfo) Check() error {
	var errs []error
	if r.Street < 0 || r.Street > MaxStreetSize {
		errs = append(errs, fmt.Errorf("%w: %d not in [0, %d]", ErrStreetOutOfRange, r.Street, MaxStreetSize))
	}
	if r.NumLegalActions < 0 || r.NumLegalActions > MaxLegalActions {
		errs = append(errs, fmt.Errorf("%w: %d not in [0, %d]", ErrLegalCountOutOfRange, r.NumLegalActions, MaxLegalActions))
	}
	for i, c := range r.MyCards {
		if !c.Card().Valid() {
			errs = append(errs, fmt.Errorf("%w: hole card %d is %q", ErrInvalidCard, i, c.Card()))
		}
	}
	for i, c := range r.CommunityCards() {
		if !c.Valid() {
			errs = append(errs, fmt.Errorf("%w: board card %d is %q", ErrInvalidCard, i, c))
		}
	}

	n := clampCount(r.NumLegalActions, MaxLegalActions)
	seen := make(map[ActionType]bool, n)
	for _, a := range r.Legal[:n] {
		if !a.Type.Valid() {
			errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownActionType, int32(a.Type)))
		}
		if seen[a.Type] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateLegalAction, a.Type))
		}
		seen[a.Type] = true
	}
	if lo, hi, ok := r.RaiseRange(); ok && lo > hi {
		errs = append(errs, fmt.Errorf("%w: min %d > max %d", ErrInvertedRaiseBounds, lo, hi))
	}
	return errors.Join(errs...)
}

// Check reports invariant violations in a round-over record.
func (r RoundOverInfo) Check() error {
	var errs []error
	if r.Street < 0 || r.Street > MaxStreetSize {
		errs = append(errs, fmt.Errorf("%w: %d not in [0, %d]", ErrStreetOutOfRange, r.Street, MaxStreetSize))
	}
	for i, c := range r.MyCards {
		if !c.Card().Valid() {
			errs = append(errs, fmt.Errorf("%w: hole card %d is %q", ErrInvalidCard, i, c.Card()))
		}
	}
	first, second := r.OppCards[0].Card(), r.OppCards[1].Card()
	switch {
	case first.IsHidden() != second.IsHidden():
		errs = append(errs, fmt.Errorf("%w: %s %s", ErrMixedOpponentCards, first, second))
	case !first.IsHidden() && (!first.Valid() || !second.Valid()):
		errs = append(errs, fmt.Errorf("%w: opponent cards %s %s", ErrInvalidCard, first, second))
	}
	return errors.Join(errs...)
}
