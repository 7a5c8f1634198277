// Package protocol defines the fixed-layout records passed by value between
// the game engine and the agent, and the accessors that decode them.
//
// Every record mirrors a C struct on the engine side field for field. There is
// no versioning: a change here must be made on both sides at once, otherwise
// values are silently corrupted rather than rejected.
package protocol

import (
	"fmt"
	"strings"

	"github.com/lox/pokerbot-skeleton/poker"
)

const (
	// MaxLegalActions is the capacity of the legal action array in RoundInfo.
	MaxLegalActions = 4
	// MaxStreetSize is the capacity of the board card array in RoundInfo.
	MaxStreetSize = 20
)

// Record sizes in bytes under the C ABI of 64-bit targets.
const (
	GameInfoSize      = 24
	ActionSize        = 8
	RoundInfoSize     = 108
	RoundOverInfoSize = 16
)

// RawCard is a card as two ASCII bytes: rank then suit.
type RawCard [2]byte

// Card converts the raw bytes to a poker.Card without validation.
func (c RawCard) Card() poker.Card {
	return poker.FromBytes(c)
}

// RawCardOf returns the wire encoding of c.
func RawCardOf(c poker.Card) RawCard {
	return RawCard(c.Bytes())
}

// GameInfo is the match-level snapshot sent with every callback.
type GameInfo struct {
	Bankroll  int32   // chips won or lost so far in the match
	GameClock float64 // seconds left on the agent's clock
	RoundNum  int32   // 1-based
}

func (g GameInfo) String() string {
	return fmt.Sprintf("GameInfo{bankroll:%d game_clock:%.3f round_num:%d}", g.Bankroll, g.GameClock, g.RoundNum)
}

// RoundInfo is the snapshot sent at the start of a round and at every
// decision point. Only the first Street entries of BoardCards and the first
// NumLegalActions entries of Legal are meaningful; read them through the
// accessor methods rather than indexing the arrays.
type RoundInfo struct {
	Street          int32 // community cards face up
	MyCards         [2]RawCard
	BoardCards      [MaxStreetSize]RawCard
	MyPip           int32 // chips committed this betting round
	OppPip          int32
	MyStack         int32 // chips behind
	OppStack        int32
	NumLegalActions int32
	Legal           [MaxLegalActions]Action
	RaiseBounds     [2]int32 // min and max raise, valid only when raising is legal
}

// ContinueCost returns the chips needed to stay in the pot.
func (r RoundInfo) ContinueCost() int {
	return int(r.OppPip - r.MyPip)
}

func (r RoundInfo) String() string {
	hole := r.PlayerCards()
	legal := r.LegalActions()
	names := make([]string, len(legal))
	for i, a := range legal {
		names[i] = a.String()
	}
	return fmt.Sprintf("RoundInfo{street:%d my_cards:[%s] board:[%s] my_pip:%d opp_pip:%d my_stack:%d opp_stack:%d legal:[%s] raise_bounds:[%d %d]}",
		r.Street, poker.FormatCards(hole[:]), poker.FormatCards(r.CommunityCards()),
		r.MyPip, r.OppPip, r.MyStack, r.OppStack,
		strings.Join(names, " "), r.RaiseBounds[0], r.RaiseBounds[1])
}

// RoundOverInfo is the snapshot sent once a round has finished.
type RoundOverInfo struct {
	Delta    int32 // chips won (positive) or lost this round
	Street   int32 // street at which the round ended
	MyCards  [2]RawCard
	OppCards [2]RawCard // both poker.HiddenByte pairs when never revealed
}

func (r RoundOverInfo) String() string {
	hole := r.PlayerCards()
	opp := "hidden"
	if cards, ok := r.OpponentCards(); ok {
		opp = poker.FormatCards(cards[:])
	}
	return fmt.Sprintf("RoundOverInfo{delta:%d street:%d my_cards:[%s] opp_cards:[%s]}",
		r.Delta, r.Street, poker.FormatCards(hole[:]), opp)
}
