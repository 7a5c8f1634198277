package protocol

import (
	"fmt"

	"github.com/lox/pokerbot-skeleton/poker"
)

// RoundSpec describes a RoundInfo in natural, variable-length form.
type RoundSpec struct {
	MyCards  [2]poker.Card
	Board    []poker.Card
	MyPip    int
	OppPip   int
	MyStack  int
	OppStack int
	Legal    []ActionType
	RaiseMin int
	RaiseMax int
}

// NewRoundInfo flattens spec into the fixed-layout record. Street is set to
// the board length. Unused board slots are left zeroed.
func NewRoundInfo(spec RoundSpec) (RoundInfo, error) {
	if len(spec.Board) > MaxStreetSize {
		return RoundInfo{}, fmt.Errorf("%w: board has %d cards, max %d", ErrStreetOutOfRange, len(spec.Board), MaxStreetSize)
	}
	if len(spec.Legal) > MaxLegalActions {
		return RoundInfo{}, fmt.Errorf("%w: %d legal actions, max %d", ErrLegalCountOutOfRange, len(spec.Legal), MaxLegalActions)
	}

	r := RoundInfo{
		Street:          int32(len(spec.Board)),
		MyPip:           int32(spec.MyPip),
		OppPip:          int32(spec.OppPip),
		MyStack:         int32(spec.MyStack),
		OppStack:        int32(spec.OppStack),
		NumLegalActions: int32(len(spec.Legal)),
		RaiseBounds:     [2]int32{int32(spec.RaiseMin), int32(spec.RaiseMax)},
	}
	for i, c := range spec.MyCards {
		r.MyCards[i] = RawCardOf(c)
	}
	for i, c := range spec.Board {
		r.BoardCards[i] = RawCardOf(c)
	}
	for i, t := range spec.Legal {
		r.Legal[i] = Action{Type: t}
	}
	return r, nil
}

// NewRoundOverInfo builds a round-over record. A nil opp writes the hidden
// sentinel to both opponent slots, as the engine does for unrevealed hands.
func NewRoundOverInfo(delta, street int, mine [2]poker.Card, opp *[2]poker.Card) RoundOverInfo {
	r := RoundOverInfo{
		Delta:  int32(delta),
		Street: int32(street),
	}
	for i, c := range mine {
		r.MyCards[i] = RawCardOf(c)
	}
	for i := range r.OppCards {
		c := poker.Hidden
		if opp != nil {
			c = opp[i]
		}
		r.OppCards[i] = RawCardOf(c)
	}
	return r
}
