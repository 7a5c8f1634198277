package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk/config"
)

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.Seed = 5
	cfg.LogJSON = true

	a := build(cfg, &buf)
	require.NotNil(t, a)
	assert.Contains(t, buf.String(), `"strategy":"skeleton"`)
	assert.Contains(t, buf.String(), `"seed":5`)

	game := protocol.GameInfo{GameClock: 30, RoundNum: 1}
	round, err := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  [2]poker.Card{poker.MustParseCard("As"), poker.MustParseCard("Ad")},
		Legal:    []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise},
		RaiseMin: 2,
		RaiseMax: 200,
	})
	require.NoError(t, err)

	a.NewRound(game, round)
	assert.Equal(t, protocol.Raise(10), a.Decide(game, round))
	a.RoundOver(game, protocol.NewRoundOverInfo(-50, 0, round.PlayerCards(), nil))
	assert.Equal(t, 1, a.Stats().HiddenRounds)
}

func TestBuildUnknownStrategy(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.Strategy = "gto-solver"
	cfg.LogJSON = true

	a := build(cfg, &buf)
	require.NotNil(t, a)
	assert.Contains(t, buf.String(), "falling back to default strategy")
	assert.Contains(t, buf.String(), `"strategy":"skeleton"`)
}

func TestLogOutput(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogFile = t.TempDir() + "/agent.log"
	w := logOutput(cfg)
	_, err := w.Write([]byte("line\n"))
	assert.NoError(t, err)
}
