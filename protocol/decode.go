package protocol

import "github.com/lox/pokerbot-skeleton/poker"

// clampCount bounds a counter read from the wire to [0, capacity] so the
// fixed arrays are never indexed out of range. Check reports the violation.
func clampCount(n int32, capacity int) int {
	switch {
	case n < 0:
		return 0
	case int(n) > capacity:
		return capacity
	default:
		return int(n)
	}
}

func decodePair(raw [2]RawCard) [2]poker.Card {
	return [2]poker.Card{raw[0].Card(), raw[1].Card()}
}

// PlayerCards returns the agent's two hole cards.
func (r RoundInfo) PlayerCards() [2]poker.Card {
	return decodePair(r.MyCards)
}

// BoardSize returns the number of valid community cards, clamped to
// MaxStreetSize.
func (r RoundInfo) BoardSize() int {
	return clampCount(r.Street, MaxStreetSize)
}

// CommunityCards returns the face-up community cards in deal order. The
// result is a fresh slice on every call.
func (r RoundInfo) CommunityCards() []poker.Card {
	n := r.BoardSize()
	cards := make([]poker.Card, n)
	for i := range n {
		cards[i] = r.BoardCards[i].Card()
	}
	return cards
}

// LegalActions returns the action types currently permitted, in the order
// the engine listed them with duplicates removed.
func (r RoundInfo) LegalActions() []ActionType {
	n := clampCount(r.NumLegalActions, MaxLegalActions)
	out := make([]ActionType, 0, n)
	for _, a := range r.Legal[:n] {
		if !containsType(out, a.Type) {
			out = append(out, a.Type)
		}
	}
	return out
}

// IsLegal reports whether t is in the legal action set.
func (r RoundInfo) IsLegal(t ActionType) bool {
	n := clampCount(r.NumLegalActions, MaxLegalActions)
	for _, a := range r.Legal[:n] {
		if a.Type == t {
			return true
		}
	}
	return false
}

// RaiseRange returns the inclusive raise bounds. ok is false when raising is
// not legal, in which case the bounds carry no meaning.
func (r RoundInfo) RaiseRange() (lo, hi int, ok bool) {
	if !r.IsLegal(ActionRaise) {
		return 0, 0, false
	}
	return int(r.RaiseBounds[0]), int(r.RaiseBounds[1]), true
}

func containsType(ts []ActionType, t ActionType) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// PlayerCards returns the agent's two hole cards.
func (r RoundOverInfo) PlayerCards() [2]poker.Card {
	return decodePair(r.MyCards)
}

// OpponentCards returns the opponent's hole cards, or false if they were
// never revealed. Only the first slot is inspected; the engine always writes
// the sentinel to both slots or to neither.
func (r RoundOverInfo) OpponentCards() ([2]poker.Card, bool) {
	if r.OppCards[0].Card().IsHidden() {
		return [2]poker.Card{}, false
	}
	return decodePair(r.OppCards), true
}
