package replay

import (
	"fmt"

	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

// Run plays every round of sc through agent, in the order the engine would:
// new round, each decision, round over. Expectation mismatches are recorded
// in the transcript rather than returned as errors; an error means the
// scenario itself could not be turned into records.
func Run(agent *sdk.Agent, sc *Scenario) (*Transcript, error) {
	t := &Transcript{
		Session:  agent.SessionID(),
		Strategy: sc.Strategy,
		Seed:     sc.Seed,
	}

	bankroll := 0
	for i, sr := range sc.Rounds {
		game := protocol.GameInfo{
			Bankroll:  int32(bankroll),
			GameClock: sr.GameClock,
			RoundNum:  int32(i + 1),
		}
		if game.GameClock == 0 {
			game.GameClock = DefaultGameClock
		}

		rec, err := playRound(agent, game, sr, &t.Summary)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		rec.Number = i + 1
		t.Rounds = append(t.Rounds, rec)
		bankroll += sr.Result.Delta
	}

	stats := agent.Stats()
	t.Summary.Rounds = stats.Rounds
	t.Summary.Decisions = stats.Decisions
	t.Summary.Repairs = stats.Repairs
	t.Summary.Violations = stats.Violations
	t.Summary.NetDelta = stats.SumDelta
	return t, nil
}

func playRound(agent *sdk.Agent, game protocol.GameInfo, sr Round, summary *Summary) (RoundRecord, error) {
	hole, err := parsePair(sr.Hole)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("hole cards: %w", err)
	}
	rec := RoundRecord{Hole: poker.FormatCards(hole[:]), Delta: sr.Result.Delta}

	rounds := make([]protocol.RoundInfo, len(sr.Decisions))
	for j, d := range sr.Decisions {
		rounds[j], err = buildRound(hole, d)
		if err != nil {
			return RoundRecord{}, fmt.Errorf("decision %d: %w", j+1, err)
		}
	}

	// The new-round notification carries the pre-flop state.
	var opening protocol.RoundInfo
	if len(rounds) > 0 {
		opening = rounds[0]
	} else {
		opening, _ = protocol.NewRoundInfo(protocol.RoundSpec{MyCards: hole})
	}
	agent.NewRound(game, opening)

	street := 0
	for j, d := range sr.Decisions {
		round := rounds[j]
		action := agent.Decide(game, round)
		street = round.BoardSize()

		dr := DecisionRecord{
			Street: street,
			Board:  poker.FormatCards(round.CommunityCards()),
			Legal:  d.Legal,
			Action: action.String(),
		}
		if d.Expect != "" {
			want, err := protocol.ParseAction(d.Expect)
			if err != nil {
				return RoundRecord{}, fmt.Errorf("decision %d expect: %w", j+1, err)
			}
			dr.Expected = want.String()
			if want != action {
				dr.Mismatch = true
				summary.Mismatches++
			}
		}
		rec.Decisions = append(rec.Decisions, dr)
	}

	if sr.Result.Street != nil {
		street = *sr.Result.Street
	}
	var opp *[2]poker.Card
	if len(sr.Result.Opponent) == 2 {
		pair, err := parsePair(sr.Result.Opponent)
		if err != nil {
			return RoundRecord{}, fmt.Errorf("opponent cards: %w", err)
		}
		opp = &pair
		rec.Opponent = poker.FormatCards(pair[:])
	}
	agent.RoundOver(game, protocol.NewRoundOverInfo(sr.Result.Delta, street, hole, opp))
	return rec, nil
}

func buildRound(hole [2]poker.Card, d Decision) (protocol.RoundInfo, error) {
	board, err := poker.ParseCards(d.Board...)
	if err != nil {
		return protocol.RoundInfo{}, fmt.Errorf("board: %w", err)
	}
	legal := make([]protocol.ActionType, len(d.Legal))
	for i, name := range d.Legal {
		legal[i], err = protocol.ParseActionType(name)
		if err != nil {
			return protocol.RoundInfo{}, err
		}
	}
	return protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  hole,
		Board:    board,
		MyPip:    d.MyPip,
		OppPip:   d.OppPip,
		MyStack:  d.MyStack,
		OppStack: d.OppStack,
		Legal:    legal,
		RaiseMin: d.RaiseMin,
		RaiseMax: d.RaiseMax,
	})
}

func parsePair(ss []string) ([2]poker.Card, error) {
	if len(ss) != 2 {
		return [2]poker.Card{}, fmt.Errorf("need 2 cards, got %d", len(ss))
	}
	cards, err := poker.ParseCards(ss...)
	if err != nil {
		return [2]poker.Card{}, err
	}
	return [2]poker.Card{cards[0], cards[1]}, nil
}
