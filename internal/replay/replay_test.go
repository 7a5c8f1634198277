package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbot-skeleton/sdk"
	"github.com/lox/pokerbot-skeleton/sdk/bots/callingstation"
	"github.com/lox/pokerbot-skeleton/sdk/bots/skeleton"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"basic.hcl", "basic.toml"} {
		t.Run(name, func(t *testing.T) {
			sc, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			assert.Equal(t, "skeleton", sc.Strategy)
			assert.Equal(t, int64(1), sc.Seed)
			require.Len(t, sc.Rounds, 2)

			first := sc.Rounds[0]
			assert.Equal(t, []string{"As", "Ad"}, first.Hole)
			require.Len(t, first.Decisions, 1)
			assert.Equal(t, []string{"fold", "call", "raise"}, first.Decisions[0].Legal)
			assert.Equal(t, 200, first.Decisions[0].RaiseMax)
			assert.Equal(t, "raise 10", first.Decisions[0].Expect)
			require.NotNil(t, first.Result.Street)
			assert.Equal(t, 5, *first.Result.Street)
			assert.Equal(t, []string{"Kd", "Ks"}, first.Result.Opponent)

			second := sc.Rounds[1]
			assert.Equal(t, 27.5, second.GameClock)
			assert.Nil(t, second.Result.Street)
			assert.Empty(t, second.Result.Opponent)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	_, err := Load(write("s.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(write("empty.hcl", `strategy = "skeleton"`))
	assert.ErrorContains(t, err, "no rounds")

	_, err = Load(write("noresult.toml", "[[round]]\nhole = [\"As\", \"Ad\"]\n"))
	assert.ErrorContains(t, err, "missing result")

	_, err = Load(write("onecard.toml", "[[round]]\nhole = [\"As\"]\n[round.result]\ndelta = 1\n"))
	assert.ErrorContains(t, err, "2 hole cards")

	_, err = Load(filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "basic.hcl"))
	require.NoError(t, err)

	agent := sdk.New(skeleton.Handler{}, sdk.WithLogger(zerolog.Nop()), sdk.WithSessionID("replay-test"))
	tr, err := Run(agent, sc)
	require.NoError(t, err)

	assert.Equal(t, "replay-test", tr.Session)
	require.Len(t, tr.Rounds, 2)

	assert.Equal(t, "As Ad", tr.Rounds[0].Hole)
	assert.Equal(t, "raise 10", tr.Rounds[0].Decisions[0].Action)
	assert.False(t, tr.Rounds[0].Decisions[0].Mismatch)
	assert.Equal(t, "Kd Ks", tr.Rounds[0].Opponent)

	assert.Equal(t, "fold", tr.Rounds[1].Decisions[0].Action)
	assert.Empty(t, tr.Rounds[1].Opponent)

	assert.Equal(t, Summary{
		Rounds:     2,
		Decisions:  2,
		Repairs:    1,
		Violations: 0,
		Mismatches: 0,
		NetDelta:   150,
	}, tr.Summary)
}

func TestRunRecordsMismatches(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "basic.toml"))
	require.NoError(t, err)

	agent := sdk.New(callingstation.Handler{}, sdk.WithLogger(zerolog.Nop()))
	tr, err := Run(agent, sc)
	require.NoError(t, err)

	assert.Equal(t, 2, tr.Summary.Mismatches)
	assert.True(t, tr.Rounds[0].Decisions[0].Mismatch)
	assert.Equal(t, "call", tr.Rounds[0].Decisions[0].Action)
	assert.Equal(t, "raise 10", tr.Rounds[0].Decisions[0].Expected)
}

func TestRunBadCards(t *testing.T) {
	sc := &Scenario{Rounds: []Round{{
		Hole:      []string{"As", "Ad"},
		Decisions: []Decision{{Board: []string{"Zz"}, Legal: []string{"fold"}}},
		Result:    &Result{},
	}}}
	agent := sdk.New(skeleton.Handler{}, sdk.WithLogger(zerolog.Nop()))

	_, err := Run(agent, sc)
	assert.ErrorContains(t, err, "round 1: decision 1: board")
}

func TestEncode(t *testing.T) {
	tr := &Transcript{
		Session:  "abc",
		Strategy: "skeleton",
		Rounds: []RoundRecord{{
			Number: 1,
			Hole:   "As Ad",
			Decisions: []DecisionRecord{{
				Legal:  []string{"fold", "call", "raise"},
				Action: "raise 10",
			}},
			Delta: 200,
		}},
		Summary: Summary{Rounds: 1, Decisions: 1, NetDelta: 200},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tr))
	assert.Contains(t, buf.String(), `session = "abc"`)
	assert.Contains(t, buf.String(), "[[round]]")

	var decoded Transcript
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, tr.Rounds, decoded.Rounds)

	assert.Error(t, Encode(&buf, nil))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.toml")
	tr := &Transcript{Session: "first"}

	require.NoError(t, WriteFile(path, tr))
	tr.Session = "second"
	require.NoError(t, WriteFile(path, tr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `session = "second"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")

	assert.Error(t, WriteFile(filepath.Join(dir, "missing", "t.toml"), tr))
}
