// Package sdk drives a Handler through the engine's three-callback round
// lifecycle and guarantees that every decision sent back is legal.
package sdk

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/pokerbot-skeleton/internal/statistics"
	"github.com/lox/pokerbot-skeleton/protocol"
)

// DefaultDecisionBudget is the share of the remaining game clock a single
// decision may use before it is logged as slow.
const DefaultDecisionBudget = 0.05

// ErrHandlerPanic wraps a panic recovered from a Handler callback.
var ErrHandlerPanic = errors.New("handler panicked")

// Option configures an Agent
type Option func(*Agent)

// WithLogger sets a custom logger
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// WithClock sets the clock used to time decisions
func WithClock(clock quartz.Clock) Option {
	return func(a *Agent) {
		a.clock = clock
	}
}

// WithDecisionBudget sets the share of the remaining game clock a decision
// may use before a warning is logged. Values outside (0, 1] are ignored.
func WithDecisionBudget(fraction float64) Option {
	return func(a *Agent) {
		if fraction > 0 && fraction <= 1 {
			a.budget = fraction
		}
	}
}

// WithSessionID overrides the generated session identifier
func WithSessionID(id string) Option {
	return func(a *Agent) {
		a.session = id
	}
}

// Agent sits between the engine's callbacks and a Handler. None of its entry
// points can fail: handler errors and panics are logged and replaced with the
// safest legal action, and every action returned has been validated against
// the round it answers.
//
// An Agent is not safe for concurrent use. The engine invokes one callback at
// a time and waits for it to return.
type Agent struct {
	handler Handler
	logger  zerolog.Logger
	clock   quartz.Clock
	budget  float64
	session string

	phase    Phase
	roundNum int32
	stats    statistics.Statistics
}

// New creates an agent around handler
func New(handler Handler, opts ...Option) *Agent {
	a := &Agent{
		handler: handler,
		logger:  zerolog.New(os.Stderr).With().Timestamp().Logger(),
		clock:   quartz.NewReal(),
		budget:  DefaultDecisionBudget,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.session == "" {
		a.session = uuid.NewString()
	}
	a.logger = a.logger.With().Str("session", a.session).Logger()
	return a
}

// SessionID returns the identifier attached to every log line
func (a *Agent) SessionID() string {
	return a.session
}

// Phase returns the current lifecycle phase
func (a *Agent) Phase() Phase {
	return a.phase
}

// Stats returns the match tallies collected so far
func (a *Agent) Stats() *statistics.Statistics {
	return &a.stats
}

// NewRound handles the engine's new-round notification.
func (a *Agent) NewRound(game protocol.GameInfo, round protocol.RoundInfo) {
	log := a.roundLogger(game, round.Street)
	a.enter(log, PhaseNewRound, game.RoundNum)

	if round.Street != 0 {
		a.stats.AddViolation()
		log.Warn().Msg("new round started past pre-flop")
	}
	a.checkRecord(log, round.Check())
	log.Debug().Stringer("game", game).Stringer("round", round).Msg("new round")

	if err := guard(func() error { return a.handler.OnNewRound(game, round) }); err != nil {
		log.Error().Err(err).Msg("OnNewRound error")
	}
}

// Decide handles a decision request and returns an action that is legal for
// round.
func (a *Agent) Decide(game protocol.GameInfo, round protocol.RoundInfo) protocol.Action {
	log := a.roundLogger(game, round.Street)
	a.enter(log, PhaseOngoingRound, game.RoundNum)
	a.checkRecord(log, round.Check())
	log.Debug().Stringer("game", game).Stringer("round", round).Msg("decision requested")

	start := a.clock.Now()
	var proposed protocol.Action
	err := guard(func() error {
		var err error
		proposed, err = a.handler.OnDecision(game, round)
		return err
	})
	a.checkElapsed(log, game, a.clock.Now().Sub(start))

	action, repaired := a.settle(log, round, proposed, err)
	a.stats.AddDecision(action.Type, repaired)
	log.Info().Stringer("action", action.Type).Int32("amount", action.Amount).Msg("decision")
	return action
}

// RoundOver handles the engine's round-over notification.
func (a *Agent) RoundOver(game protocol.GameInfo, result protocol.RoundOverInfo) {
	log := a.roundLogger(game, result.Street)
	a.enter(log, PhaseRoundOver, game.RoundNum)
	a.checkRecord(log, result.Check())

	_, showdown := result.OpponentCards()
	a.stats.Add(statistics.RoundResult{
		Delta:    int(result.Delta),
		Street:   int(result.Street),
		Showdown: showdown,
	})
	log.Info().Int32("delta", result.Delta).Bool("showdown", showdown).Msg("round over")
	log.Debug().Stringer("result", result).Str("stats", a.stats.Summary()).Msg("match so far")

	if err := guard(func() error { return a.handler.OnRoundOver(game, result) }); err != nil {
		log.Error().Err(err).Msg("OnRoundOver error")
	}
	a.phase = PhaseNotStarted
}

// settle turns whatever the handler produced into an action the engine will
// accept. The second result reports whether the proposal was changed.
func (a *Agent) settle(log zerolog.Logger, round protocol.RoundInfo, proposed protocol.Action, err error) (protocol.Action, bool) {
	if err != nil {
		fallback := protocol.SafestAction(round)
		log.Error().Err(err).Stringer("fallback", fallback).Msg("OnDecision error")
		return fallback, true
	}

	proposed = protocol.Normalize(proposed)
	verr := protocol.Validate(round, proposed)
	switch {
	case verr == nil:
		return proposed, false
	case errors.Is(verr, protocol.ErrRaiseOutOfBounds):
		clamped, _ := protocol.ClampRaise(round, int(proposed.Amount))
		log.Warn().Err(verr).Stringer("proposed", proposed).Stringer("sent", clamped).Msg("raise clamped to bounds")
		return clamped, true
	default:
		fallback := protocol.SafestAction(round)
		log.Warn().Err(verr).Stringer("proposed", proposed).Stringer("sent", fallback).Msg("illegal action replaced")
		return fallback, true
	}
}

// enter moves to next, logging callbacks the engine delivered out of order.
// The transition always happens: the engine owns the lifecycle.
func (a *Agent) enter(log zerolog.Logger, next Phase, roundNum int32) {
	if !a.phase.canEnter(next) {
		a.stats.AddViolation()
		log.Warn().Stringer("from", a.phase).Stringer("to", next).Msg("callback out of order")
	} else if next != PhaseNewRound && roundNum != a.roundNum {
		a.stats.AddViolation()
		log.Warn().Int32("expected_round", a.roundNum).Msg("round number changed mid-round")
	}
	a.phase = next
	a.roundNum = roundNum
}

func (a *Agent) checkRecord(log zerolog.Logger, err error) {
	if err == nil {
		return
	}
	a.stats.AddViolation()
	log.Warn().Err(err).Msg("malformed record; decoding clamps out-of-range fields")
}

func (a *Agent) checkElapsed(log zerolog.Logger, game protocol.GameInfo, elapsed time.Duration) {
	if game.GameClock <= 0 {
		return
	}
	remaining := time.Duration(game.GameClock * float64(time.Second))
	switch {
	case elapsed >= remaining:
		log.Error().Dur("elapsed", elapsed).Float64("game_clock", game.GameClock).Msg("decision exceeded game clock")
	case elapsed.Seconds() > a.budget*game.GameClock:
		log.Warn().Dur("elapsed", elapsed).Float64("game_clock", game.GameClock).Msg("slow decision")
	}
}

func (a *Agent) roundLogger(game protocol.GameInfo, street int32) zerolog.Logger {
	return a.logger.With().Int32("round", game.RoundNum).Int32("street", street).Logger()
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return fn()
}
