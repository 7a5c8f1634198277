package aggressive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbot-skeleton/internal/randutil"
	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
)

func TestRaisesMostOfTheTime(t *testing.T) {
	r, err := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  [2]poker.Card{poker.MustParseCard("5h"), poker.MustParseCard("6h")},
		Legal:    []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise},
		RaiseMin: 6,
		RaiseMax: 300,
	})
	require.NoError(t, err)

	h := NewHandler(randutil.New(11))
	raises := 0
	for range 1000 {
		a, err := h.OnDecision(protocol.GameInfo{}, r)
		require.NoError(t, err)
		switch a.Type {
		case protocol.ActionRaise:
			assert.Equal(t, int32(6), a.Amount)
			raises++
		default:
			assert.Equal(t, protocol.Call(), a)
		}
	}
	assert.InDelta(t, RaiseFrequency, float64(raises)/1000, 0.06)
}

func TestChecksWhenRaiseUnavailable(t *testing.T) {
	r, err := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards: [2]poker.Card{poker.MustParseCard("5h"), poker.MustParseCard("6h")},
		Legal:   []protocol.ActionType{protocol.ActionCheck, protocol.ActionFold},
	})
	require.NoError(t, err)

	a, err := NewHandler(randutil.New(1)).OnDecision(protocol.GameInfo{}, r)
	require.NoError(t, err)
	assert.Equal(t, protocol.Check(), a)
}
