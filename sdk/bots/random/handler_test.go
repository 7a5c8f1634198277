package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbot-skeleton/internal/randutil"
	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
)

func TestOnDecisionAlwaysLegal(t *testing.T) {
	r, err := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  [2]poker.Card{poker.MustParseCard("Td"), poker.MustParseCard("3s")},
		Legal:    []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise},
		RaiseMin: 4,
		RaiseMax: 40,
	})
	require.NoError(t, err)

	h := NewHandler(randutil.New(3))
	seen := map[protocol.ActionType]bool{}
	for range 500 {
		a, err := h.OnDecision(protocol.GameInfo{}, r)
		require.NoError(t, err)
		require.NoError(t, protocol.Validate(r, a), "action %s", a)
		seen[a.Type] = true
	}
	assert.Len(t, seen, 3)
}

func TestOnDecisionSeeded(t *testing.T) {
	r, err := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  [2]poker.Card{poker.MustParseCard("Td"), poker.MustParseCard("3s")},
		Legal:    []protocol.ActionType{protocol.ActionCheck, protocol.ActionRaise},
		RaiseMin: 2,
		RaiseMax: 400,
	})
	require.NoError(t, err)

	a, b := NewHandler(randutil.New(9)), NewHandler(randutil.New(9))
	for range 20 {
		x, _ := a.OnDecision(protocol.GameInfo{}, r)
		y, _ := b.OnDecision(protocol.GameInfo{}, r)
		assert.Equal(t, x, y)
	}
}

func TestOnDecisionNoLegalActions(t *testing.T) {
	a, err := NewHandler(randutil.New(1)).OnDecision(protocol.GameInfo{}, protocol.RoundInfo{})
	require.NoError(t, err)
	assert.Equal(t, protocol.Fold(), a)
}
