package poker

import (
	rand "math/rand/v2"
	"slices"
)

// Deck is a standard 52-card deck with some cards optionally held out.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck without the given dead cards.
func NewDeck(rng *rand.Rand, dead ...Card) *Deck {
	d := &Deck{rng: rng}
	for _, c := range AllCards() {
		if !slices.Contains(dead, c) {
			d.cards = append(d.cards, c)
		}
	}
	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
