package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbot-skeleton/poker"
)

func cards(t *testing.T, ss ...string) []poker.Card {
	t.Helper()
	cs, err := poker.ParseCards(ss...)
	require.NoError(t, err)
	return cs
}

func pair(t *testing.T, a, b string) [2]poker.Card {
	t.Helper()
	return [2]poker.Card{poker.MustParseCard(a), poker.MustParseCard(b)}
}

// deal returns n distinct board cards in a fixed order.
func deal(n int) []poker.Card {
	return poker.AllCards()[:n]
}

func TestCommunityCardsLength(t *testing.T) {
	t.Parallel()
	for s := 0; s <= MaxStreetSize; s++ {
		board := deal(s)
		r, err := NewRoundInfo(RoundSpec{MyCards: pair(t, "As", "Ad"), Board: board})
		require.NoError(t, err)
		require.EqualValues(t, s, r.Street)

		first := r.CommunityCards()
		second := r.CommunityCards()
		assert.Len(t, first, s)
		assert.Equal(t, first, second, "decoding must be idempotent")
		if s > 0 {
			assert.Equal(t, board, first, "cards keep deal order")
		}
	}
}

func TestCommunityCardsIsFreshSlice(t *testing.T) {
	t.Parallel()
	r, err := NewRoundInfo(RoundSpec{MyCards: pair(t, "As", "Ad"), Board: cards(t, "2c", "7d", "Kh")})
	require.NoError(t, err)

	got := r.CommunityCards()
	got[0] = poker.Hidden
	assert.Equal(t, cards(t, "2c", "7d", "Kh"), r.CommunityCards())
}

func TestCommunityCardsIgnoresPadding(t *testing.T) {
	t.Parallel()
	r, err := NewRoundInfo(RoundSpec{MyCards: pair(t, "As", "Ad"), Board: cards(t, "2c", "7d", "Kh")})
	require.NoError(t, err)
	r.BoardCards[3] = RawCard{'Q', 's'}
	r.BoardCards[MaxStreetSize-1] = RawCard{'?', '?'}

	assert.Equal(t, cards(t, "2c", "7d", "Kh"), r.CommunityCards())
}

func TestCommunityCardsClampsOutOfRangeStreet(t *testing.T) {
	t.Parallel()
	r, err := NewRoundInfo(RoundSpec{MyCards: pair(t, "As", "Ad"), Board: deal(MaxStreetSize)})
	require.NoError(t, err)

	r.Street = MaxStreetSize + 5
	assert.Len(t, r.CommunityCards(), MaxStreetSize)
	assert.ErrorIs(t, r.Check(), ErrStreetOutOfRange)

	r.Street = -1
	assert.Empty(t, r.CommunityCards())
	assert.ErrorIs(t, r.Check(), ErrStreetOutOfRange)
}

func TestLegalActions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		legal []ActionType
	}{
		{"none", nil},
		{"fold call", []ActionType{ActionFold, ActionCall}},
		{"check raise", []ActionType{ActionCheck, ActionRaise}},
		{"full set", []ActionType{ActionFold, ActionCall, ActionCheck, ActionRaise}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := NewRoundInfo(RoundSpec{MyCards: pair(t, "As", "Ad"), Legal: tt.legal})
			require.NoError(t, err)

			got := r.LegalActions()
			assert.Len(t, got, len(tt.legal))
			assert.ElementsMatch(t, tt.legal, got)
			for _, a := range got {
				assert.True(t, a.Valid())
				assert.True(t, r.IsLegal(a))
			}
			assert.NoError(t, r.Check())
		})
	}
}

func TestLegalActionsIgnoresUnusedSlots(t *testing.T) {
	t.Parallel()
	r, err := NewRoundInfo(RoundSpec{MyCards: pair(t, "As", "Ad"), Legal: []ActionType{ActionFold}})
	require.NoError(t, err)
	r.Legal[1] = Action{Type: ActionRaise, Amount: 50}

	assert.Equal(t, []ActionType{ActionFold}, r.LegalActions())
	assert.False(t, r.IsLegal(ActionRaise))
	_, _, ok := r.RaiseRange()
	assert.False(t, ok)
}

func TestLegalActionsDeduplicates(t *testing.T) {
	t.Parallel()
	r := RoundInfo{NumLegalActions: 3}
	r.Legal[0] = Call()
	r.Legal[1] = Fold()
	r.Legal[2] = Call()

	assert.Equal(t, []ActionType{ActionCall, ActionFold}, r.LegalActions())
	assert.ErrorIs(t, r.Check(), ErrDuplicateLegalAction)
}

func TestLegalActionsClampsCount(t *testing.T) {
	t.Parallel()
	r := RoundInfo{NumLegalActions: MaxLegalActions + 3}
	for i := range r.Legal {
		r.Legal[i] = Action{Type: ActionType(i)}
	}
	assert.Len(t, r.LegalActions(), MaxLegalActions)
	assert.ErrorIs(t, r.Check(), ErrLegalCountOutOfRange)

	r.NumLegalActions = -2
	assert.Empty(t, r.LegalActions())
}

func TestPlayerCardsRoundTrip(t *testing.T) {
	t.Parallel()
	for _, c := range poker.AllCards() {
		hole := [2]poker.Card{c, poker.MustParseCard("2c")}
		r, err := NewRoundInfo(RoundSpec{MyCards: hole})
		require.NoError(t, err)
		assert.Equal(t, hole, r.PlayerCards())

		over := NewRoundOverInfo(0, 0, hole, nil)
		assert.Equal(t, hole, over.PlayerCards())
	}
}

func TestRaiseRange(t *testing.T) {
	t.Parallel()
	r, err := NewRoundInfo(RoundSpec{
		MyCards:  pair(t, "As", "Ad"),
		Legal:    []ActionType{ActionFold, ActionCall, ActionRaise},
		RaiseMin: 2,
		RaiseMax: 200,
	})
	require.NoError(t, err)

	lo, hi, ok := r.RaiseRange()
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 200, hi)

	r.RaiseBounds = [2]int32{300, 100}
	assert.ErrorIs(t, r.Check(), ErrInvertedRaiseBounds)
}

func TestOpponentCards(t *testing.T) {
	t.Parallel()
	mine := pair(t, "Kh", "Qc")

	hidden := NewRoundOverInfo(-50, 0, mine, nil)
	_, ok := hidden.OpponentCards()
	assert.False(t, ok)
	assert.Equal(t, RawCard{'X', 'X'}, hidden.OppCards[0])
	assert.Equal(t, RawCard{'X', 'X'}, hidden.OppCards[1])
	assert.NoError(t, hidden.Check())
	assert.Contains(t, hidden.String(), "opp_cards:[hidden]")

	opp := pair(t, "9s", "9d")
	shown := NewRoundOverInfo(120, 5, mine, &opp)
	got, ok := shown.OpponentCards()
	require.True(t, ok)
	assert.Equal(t, opp, got)
	for _, c := range got {
		assert.True(t, c.Valid())
		assert.False(t, c.IsHidden())
	}
	assert.NoError(t, shown.Check())
}

func TestOpponentCardsInspectsFirstSlotOnly(t *testing.T) {
	t.Parallel()
	r := NewRoundOverInfo(0, 3, pair(t, "Kh", "Qc"), nil)
	r.OppCards[1] = RawCardOf(poker.MustParseCard("Ad"))

	_, ok := r.OpponentCards()
	assert.False(t, ok, "sentinel in slot 0 means absent")
	assert.ErrorIs(t, r.Check(), ErrMixedOpponentCards)

	r = NewRoundOverInfo(0, 3, pair(t, "Kh", "Qc"), nil)
	r.OppCards[0] = RawCardOf(poker.MustParseCard("Ad"))
	_, ok = r.OpponentCards()
	assert.True(t, ok, "real card in slot 0 means revealed")
	assert.ErrorIs(t, r.Check(), ErrMixedOpponentCards)
}

func TestNewRoundInfoRejectsOversizedInput(t *testing.T) {
	t.Parallel()
	_, err := NewRoundInfo(RoundSpec{Board: deal(MaxStreetSize + 1)})
	assert.ErrorIs(t, err, ErrStreetOutOfRange)

	_, err = NewRoundInfo(RoundSpec{Legal: make([]ActionType, MaxLegalActions+1)})
	assert.ErrorIs(t, err, ErrLegalCountOutOfRange)
}

func TestRoundInfoString(t *testing.T) {
	t.Parallel()
	r, err := NewRoundInfo(RoundSpec{
		MyCards:  pair(t, "As", "Ad"),
		Board:    cards(t, "2c", "7d", "Kh"),
		Legal:    []ActionType{ActionCheck, ActionRaise},
		RaiseMin: 2,
		RaiseMax: 200,
	})
	require.NoError(t, err)
	s := r.String()
	assert.Contains(t, s, "my_cards:[As Ad]")
	assert.Contains(t, s, "board:[2c 7d Kh]")
	assert.Contains(t, s, "legal:[check raise]")
}
