package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbot-skeleton/internal/randutil"
	"github.com/lox/pokerbot-skeleton/internal/replay"
	"github.com/lox/pokerbot-skeleton/sdk"
	"github.com/lox/pokerbot-skeleton/sdk/bots"
)

type ReplayCmd struct {
	Scenario   string `arg:"" type:"existingfile" help:"Scenario file (.hcl or .toml)"`
	Strategy   string `help:"Override the scenario's strategy"`
	Seed       int64  `help:"Override the scenario's seed (0 keeps it)"`
	Transcript string `type:"path" help:"Write a TOML transcript to this file"`
	AgentLogs  string `default:"warn" enum:"debug,info,warn,error" help:"Agent log level (debug|info|warn|error)"`
	LogJSON    bool   `help:"Output agent logs as JSON"`
}

func (c *ReplayCmd) Run() error {
	logger := log.New(os.Stderr)

	sc, err := replay.Load(c.Scenario)
	if err != nil {
		return err
	}
	if c.Strategy != "" {
		sc.Strategy = c.Strategy
	}
	if sc.Strategy == "" {
		sc.Strategy = "skeleton"
	}
	if c.Seed != 0 {
		sc.Seed = c.Seed
	}

	rng, seed := randutil.FromConfig(sc.Seed)
	sc.Seed = seed
	handler, err := bots.New(sc.Strategy, rng)
	if err != nil {
		return err
	}

	agent := sdk.New(handler,
		sdk.WithLogger(sdk.NewLogger(os.Stderr, c.AgentLogs, c.LogJSON)),
	)
	logger.Info("Replaying scenario",
		"file", c.Scenario,
		"strategy", sc.Strategy,
		"seed", seed,
		"rounds", len(sc.Rounds))

	transcript, err := replay.Run(agent, sc)
	if err != nil {
		return err
	}

	printTranscript(os.Stdout, transcript)
	logger.Info("Replay complete", "stats", agent.Stats().Summary())

	if c.Transcript != "" {
		if err := replay.WriteFile(c.Transcript, transcript); err != nil {
			return err
		}
		logger.Info("Transcript written", "file", c.Transcript)
	}

	if n := transcript.Summary.Mismatches; n > 0 {
		return fmt.Errorf("%d decision(s) did not match the expected action", n)
	}
	return nil
}

func printTranscript(w io.Writer, t *replay.Transcript) {
	for _, r := range t.Rounds {
		fmt.Fprintf(w, "Round %d  hole %s\n", r.Number, r.Hole)
		for _, d := range r.Decisions {
			mark := ""
			if d.Mismatch {
				mark = fmt.Sprintf("  (expected %s)", d.Expected)
			}
			board := d.Board
			if board == "" {
				board = "-"
			}
			fmt.Fprintf(w, "  street %-2d board %-20s legal %v -> %s%s\n", d.Street, board, d.Legal, d.Action, mark)
		}
		opp := r.Opponent
		if opp == "" {
			opp = "hidden"
		}
		fmt.Fprintf(w, "  delta %+d  opponent %s\n", r.Delta, opp)
	}
	s := t.Summary
	fmt.Fprintf(w, "\n%d rounds, %d decisions, %d repaired, %d violations, net %+d\n",
		s.Rounds, s.Decisions, s.Repairs, s.Violations, s.NetDelta)
}
