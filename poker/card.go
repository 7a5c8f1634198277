package poker

import (
	"fmt"
	"strings"
)

// Rank is the ASCII rank character of a card.
type Rank byte

// Card ranks, lowest to highest.
const (
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Eight Rank = '8'
	Nine  Rank = '9'
	Ten   Rank = 'T'
	Jack  Rank = 'J'
	Queen Rank = 'Q'
	King  Rank = 'K'
	Ace   Rank = 'A'
)

// Suit is the ASCII suit character of a card.
type Suit byte

// Card suits.
const (
	Clubs    Suit = 'c'
	Diamonds Suit = 'd'
	Hearts   Suit = 'h'
	Spades   Suit = 's'
)

// HiddenByte is the rank and suit character the engine writes for a card
// that was never revealed.
const HiddenByte = 'X'

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// Card is a playing card in its two-character wire form.
type Card struct {
	rank Rank
	suit Suit
}

// Hidden is the sentinel card standing in for an unrevealed card.
var Hidden = Card{rank: HiddenByte, suit: HiddenByte}

// NewCard creates a card from a rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// FromBytes reinterprets a raw rank/suit pair without validating it.
func FromBytes(b [2]byte) Card {
	return Card{rank: Rank(b[0]), suit: Suit(b[1])}
}

// Bytes returns the raw rank/suit pair.
func (c Card) Bytes() [2]byte {
	return [2]byte{byte(c.rank), byte(c.suit)}
}

// Rank returns the rank character
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit character
func (c Card) Suit() Suit {
	return c.suit
}

// IsHidden reports whether c is the sentinel for an unrevealed card.
func (c Card) IsHidden() bool {
	return c == Hidden
}

// Valid reports whether c is a real card with a known rank and suit.
func (c Card) Valid() bool {
	return c.Value() != 0 && strings.IndexByte(suitChars, byte(c.suit)) >= 0
}

// Value returns the rank as 2-14 with aces high, or 0 if the rank is unknown.
func (c Card) Value() int {
	return c.rank.Value()
}

// Value returns the rank as 2-14 with aces high, or 0 if the rank is unknown.
func (r Rank) Value() int {
	i := strings.IndexByte(rankChars, byte(r))
	if i < 0 {
		return 0
	}
	return i + 2
}

// String returns the two character form, e.g. "As" or "XX".
func (c Card) String() string {
	return string([]byte{byte(c.rank), byte(c.suit)})
}

// ParseCard parses a card like "As", "Td" or "2c". The hidden sentinel "XX"
// is accepted and returned as Hidden.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want 2 characters", s)
	}
	if s[0] == HiddenByte && s[1] == HiddenByte {
		return Hidden, nil
	}
	c := NewCard(Rank(s[0]), Suit(s[1]))
	if c.Value() == 0 {
		return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", s, s[0])
	}
	if !c.Valid() {
		return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1])
	}
	return c, nil
}

// MustParseCard is ParseCard for literals known to be valid.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses each string with ParseCard.
func ParseCards(ss ...string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards joins cards with spaces, e.g. "As Kd 7h".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// AllCards returns the 52 real cards ordered by suit then rank.
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for i := range len(suitChars) {
		for j := range len(rankChars) {
			cards = append(cards, NewCard(Rank(rankChars[j]), Suit(suitChars[i])))
		}
	}
	return cards
}
