package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lox/pokerbot-skeleton/internal/randutil"
	"github.com/lox/pokerbot-skeleton/sdk"
	"github.com/lox/pokerbot-skeleton/sdk/bots"
	"github.com/lox/pokerbot-skeleton/sdk/config"
)

var (
	agentOnce sync.Once
	agent     *sdk.Agent
)

// current returns the process-wide agent, building it on the first callback.
func current() *sdk.Agent {
	agentOnce.Do(func() {
		cfg, err := config.FromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "pokerbot: %v; using defaults\n", err)
			cfg = config.Defaults()
		}
		agent = build(cfg, logOutput(cfg))
	})
	return agent
}

func logOutput(cfg *config.AgentConfig) io.Writer {
	if cfg.LogFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pokerbot: cannot open log file: %v\n", err)
		return os.Stderr
	}
	return f
}

// build wires an agent from cfg. It never fails: an unknown strategy falls
// back to the default one.
func build(cfg *config.AgentConfig, w io.Writer) *sdk.Agent {
	logger := sdk.NewLogger(w, cfg.LogLevel, cfg.LogJSON)
	rng, seed := randutil.FromConfig(cfg.Seed)

	strategy := cfg.Strategy
	handler, err := bots.New(strategy, rng)
	if err != nil {
		logger.Error().Err(err).Msg("falling back to default strategy")
		strategy = config.Defaults().Strategy
		handler, _ = bots.New(strategy, rng)
	}

	a := sdk.New(handler,
		sdk.WithLogger(logger),
		sdk.WithDecisionBudget(cfg.DecisionBudget),
	)
	logger.Info().
		Str("session", a.SessionID()).
		Str("strategy", strategy).
		Int64("seed", seed).
		Msg("agent ready")
	return a
}
