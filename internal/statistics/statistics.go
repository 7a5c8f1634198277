// Package statistics keeps agent-private tallies across the rounds of a match.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokerbot-skeleton/protocol"
)

// RoundResult is the outcome of a single round from the agent's side
type RoundResult struct {
	Delta    int  // chips won or lost
	Street   int  // street at which the round ended
	Showdown bool // opponent cards were revealed
}

// Statistics tracks results and decisions over a match. It is not safe for
// concurrent use; the engine never overlaps callbacks.
type Statistics struct {
	Rounds int
	Won    int
	Lost   int
	Split  int

	SumDelta  int
	SumDelta2 float64 // Sum of squares for variance calculation
	Values    []float64

	ShowdownRounds int // Rounds where the opponent's cards were revealed
	HiddenRounds   int // Rounds that ended without a reveal
	ShowdownDelta  int
	HiddenDelta    int

	BiggestWin  int
	BiggestLoss int

	Actions    [protocol.ActionRaise + 1]int // Final actions sent, by type
	Decisions  int
	Repairs    int // Decisions replaced or clamped before sending
	Violations int // Out-of-order callbacks and malformed records
}

// Add incorporates a finished round
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++
	s.SumDelta += result.Delta
	d := float64(result.Delta)
	s.SumDelta2 += d * d
	s.Values = append(s.Values, d)

	switch {
	case result.Delta > 0:
		s.Won++
	case result.Delta < 0:
		s.Lost++
	default:
		s.Split++
	}

	if result.Showdown {
		s.ShowdownRounds++
		s.ShowdownDelta += result.Delta
	} else {
		s.HiddenRounds++
		s.HiddenDelta += result.Delta
	}

	if result.Delta > s.BiggestWin {
		s.BiggestWin = result.Delta
	}
	if result.Delta < s.BiggestLoss {
		s.BiggestLoss = result.Delta
	}
}

// AddDecision records the action that was sent to the engine
func (s *Statistics) AddDecision(t protocol.ActionType, repaired bool) {
	s.Decisions++
	if t.Valid() {
		s.Actions[t]++
	}
	if repaired {
		s.Repairs++
	}
}

// AddViolation records a protocol irregularity
func (s *Statistics) AddViolation() {
	s.Violations++
}

// Mean returns the mean chip delta per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.SumDelta) / float64(s.Rounds)
}

// Variance returns the sample variance of round deltas
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumDelta2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of round deltas
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median round delta
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// ShowdownRate returns the share of rounds in which the opponent's cards
// were revealed
func (s *Statistics) ShowdownRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.ShowdownRounds) / float64(s.Rounds)
}

// IsLedgerBalanced checks that showdown and hidden deltas add up to the total
func (s *Statistics) IsLedgerBalanced() bool {
	return s.ShowdownDelta+s.HiddenDelta == s.SumDelta
}

// Validate checks the internal consistency of the tallies
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: total=%d, showdown=%d, hidden=%d",
			s.SumDelta, s.ShowdownDelta, s.HiddenDelta)
	}
	if s.Won+s.Lost+s.Split != s.Rounds {
		return fmt.Errorf("outcomes (%d) do not match rounds (%d)", s.Won+s.Lost+s.Split, s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}
	total := 0
	for _, n := range s.Actions {
		total += n
	}
	if total != s.Decisions {
		return fmt.Errorf("actions by type (%d) do not match decisions (%d)", total, s.Decisions)
	}
	return nil
}

// Summary returns a one-line description of the match so far
func (s *Statistics) Summary() string {
	return fmt.Sprintf("rounds=%d won=%d lost=%d split=%d net=%+d mean=%.2f showdown=%.0f%% decisions=%d repairs=%d violations=%d",
		s.Rounds, s.Won, s.Lost, s.Split, s.SumDelta, s.Mean(), 100*s.ShowdownRate(),
		s.Decisions, s.Repairs, s.Violations)
}
