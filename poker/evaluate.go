package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	ph "github.com/paulhankin/poker"
)

// HoldemBoardSize is the number of community cards in a complete hold'em board.
const HoldemBoardSize = 5

// ErrNotEnoughCards is returned when fewer than five cards are available to
// form a hand.
var ErrNotEnoughCards = errors.New("poker: need at least five cards")

// MadeHand is the best five-card hand available from a set of cards.
type MadeHand struct {
	Score       int16
	Description string
}

// Beats reports whether h is stronger than other.
func (h MadeHand) Beats(other MadeHand) bool {
	return stronger(h.Score, other.Score)
}

// stronger orders library scores. The direction is fixed once from a royal
// flush and a seven-high hand.
var stronger = func() func(a, b int16) bool {
	royal := mustHand("As", "Ks", "Qs", "Js", "Ts")
	low := mustHand("7c", "5d", "4h", "3s", "2c")
	if ph.Eval5(&royal) > ph.Eval5(&low) {
		return func(a, b int16) bool { return a > b }
	}
	return func(a, b int16) bool { return a < b }
}()

func mustHand(ss ...string) [5]ph.Card {
	var out [5]ph.Card
	for i, s := range ss {
		c, err := toLib(MustParseCard(s))
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

func toLib(c Card) (ph.Card, error) {
	if !c.Valid() {
		var zero ph.Card
		return zero, fmt.Errorf("poker: cannot evaluate card %s", c)
	}
	var s ph.Suit
	switch c.Suit() {
	case Clubs:
		s = ph.Club
	case Diamonds:
		s = ph.Diamond
	case Hearts:
		s = ph.Heart
	default:
		s = ph.Spade
	}
	// Library ranks run 1-13 with the ace as 1.
	r := ph.Rank(c.Value())
	if c.Rank() == Ace {
		r = ph.Rank(1)
	}
	return ph.MakeCard(s, r)
}

// EvaluateMadeHand scores the best five-card hand from hole and board cards.
func EvaluateMadeHand(hole [2]Card, board []Card) (MadeHand, error) {
	all := make([]Card, 0, len(board)+2)
	all = append(all, hole[:]...)
	all = append(all, board...)
	return Evaluate(all)
}

// Evaluate scores the best five-card hand among cards.
func Evaluate(cards []Card) (MadeHand, error) {
	if len(cards) < 5 {
		return MadeHand{}, ErrNotEnoughCards
	}
	lib := make([]ph.Card, len(cards))
	for i, c := range cards {
		lc, err := toLib(c)
		if err != nil {
			return MadeHand{}, err
		}
		lib[i] = lc
	}

	var score int16
	switch len(lib) {
	case 5:
		var a5 [5]ph.Card
		copy(a5[:], lib)
		score = ph.Eval5(&a5)
	case 7:
		var a7 [7]ph.Card
		copy(a7[:], lib)
		score = ph.Eval7(&a7)
	default:
		score = bestOfFives(lib)
	}

	best := bestFive(lib, score)
	desc, err := ph.Describe(best)
	if err != nil {
		desc = ""
	}
	return MadeHand{Score: score, Description: desc}, nil
}

// bestOfFives scores every five-card subset and keeps the strongest.
func bestOfFives(cards []ph.Card) int16 {
	var best int16
	first := true
	forEachFive(cards, func(five *[5]ph.Card) bool {
		s := ph.Eval5(five)
		if first || stronger(s, best) {
			best, first = s, false
		}
		return true
	})
	return best
}

// bestFive returns a five-card subset that achieves score.
func bestFive(cards []ph.Card, score int16) []ph.Card {
	var out []ph.Card
	forEachFive(cards, func(five *[5]ph.Card) bool {
		if ph.Eval5(five) == score {
			out = append([]ph.Card(nil), five[:]...)
			return false
		}
		return true
	})
	if out == nil {
		out = cards[:5]
	}
	return out
}

func forEachFive(cards []ph.Card, fn func(*[5]ph.Card) bool) {
	n := len(cards)
	var idx [5]int
	var five [5]ph.Card
	var rec func(start, k int) bool
	rec = func(start, k int) bool {
		if k == 5 {
			for i := range 5 {
				five[i] = cards[idx[i]]
			}
			return fn(&five)
		}
		for i := start; i <= n-(5-k); i++ {
			idx[k] = i
			if !rec(i+1, k+1) {
				return false
			}
		}
		return true
	}
	rec(0, 0)
}

// Equity estimates the share of pots hole wins against one random opponent
// hand, completing the board to HoldemBoardSize cards. Ties count half.
// Boards already longer than HoldemBoardSize are not supported.
func Equity(rng *rand.Rand, hole [2]Card, board []Card, samples int) (float64, error) {
	if len(board) > HoldemBoardSize {
		return 0, fmt.Errorf("poker: equity needs at most %d board cards, got %d", HoldemBoardSize, len(board))
	}
	if samples <= 0 {
		return 0, fmt.Errorf("poker: samples must be positive")
	}
	dead := append(append([]Card{}, hole[:]...), board...)
	for _, c := range dead {
		if !c.Valid() {
			return 0, fmt.Errorf("poker: cannot evaluate card %s", c)
		}
	}

	var won float64
	missing := HoldemBoardSize - len(board)
	full := make([]Card, 0, HoldemBoardSize)
	for range samples {
		deck := NewDeck(rng, dead...)
		full = append(full[:0], board...)
		full = append(full, deck.Deal(missing)...)
		opp := deck.Deal(2)

		mine, err := EvaluateMadeHand(hole, full)
		if err != nil {
			return 0, err
		}
		theirs, err := EvaluateMadeHand([2]Card{opp[0], opp[1]}, full)
		if err != nil {
			return 0, err
		}
		switch {
		case mine.Beats(theirs):
			won++
		case !theirs.Beats(mine):
			won += 0.5
		}
	}
	return won / float64(samples), nil
}
