package skeleton

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

func round(t *testing.T, c1, c2 string, legal []protocol.ActionType, lo, hi int) protocol.RoundInfo {
	t.Helper()
	r, err := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  [2]poker.Card{poker.MustParseCard(c1), poker.MustParseCard(c2)},
		MyPip:    1,
		OppPip:   2,
		MyStack:  399,
		OppStack: 398,
		Legal:    legal,
		RaiseMin: lo,
		RaiseMax: hi,
	})
	require.NoError(t, err)
	return r
}

var game = protocol.GameInfo{Bankroll: 0, GameClock: 30, RoundNum: 1}

func TestOnDecision(t *testing.T) {
	all := []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise}

	tests := []struct {
		name   string
		c1, c2 string
		want   protocol.Action
	}{
		{"pocket aces", "As", "Ad", protocol.Raise(PairRaise)},
		{"pocket deuces", "2c", "2h", protocol.Raise(PairRaise)},
		{"king queen", "Kh", "Qc", protocol.Raise(PremiumRaise)},
		{"ace king suited", "As", "Ks", protocol.Raise(PremiumRaise)},
		{"ace jack", "Ah", "Jd", protocol.Fold()},
		{"seven deuce", "7c", "2d", protocol.Fold()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Handler{}.OnDecision(game, round(t, tt.c1, tt.c2, all, 2, 200))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPairRaiseIsLegal(t *testing.T) {
	r := round(t, "As", "Ad", []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise}, 2, 200)

	action, err := Handler{}.OnDecision(game, r)
	require.NoError(t, err)
	assert.Equal(t, protocol.Action{Type: protocol.ActionRaise, Amount: 10}, action)
	assert.NoError(t, protocol.Validate(r, action))
}

func TestRaiseWithoutRaiseRightsIsReplaced(t *testing.T) {
	r := round(t, "Kh", "Qc", []protocol.ActionType{protocol.ActionFold, protocol.ActionCall}, 0, 0)

	proposed, err := Handler{}.OnDecision(game, r)
	require.NoError(t, err)
	assert.ErrorIs(t, protocol.Validate(r, proposed), protocol.ErrIllegalAction)

	agent := sdk.New(Handler{}, sdk.WithLogger(zerolog.Nop()))
	agent.NewRound(game, r)
	sent := agent.Decide(game, r)
	assert.True(t, r.IsLegal(sent.Type), "sent %s", sent)
	assert.Equal(t, protocol.Fold(), sent)
	assert.Equal(t, 1, agent.Stats().Repairs)
}

func TestPremiumRaiseIsClamped(t *testing.T) {
	r := round(t, "Ac", "Qd", []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise}, 4, 120)

	agent := sdk.New(Handler{}, sdk.WithLogger(zerolog.Nop()))
	agent.NewRound(game, r)
	assert.Equal(t, protocol.Raise(120), agent.Decide(game, r))
}
