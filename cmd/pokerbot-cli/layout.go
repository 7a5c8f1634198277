package main

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lox/pokerbot-skeleton/poker"
	"github.com/lox/pokerbot-skeleton/protocol"
)

type LayoutCmd struct {
	Hex bool `help:"Also dump the wire bytes of a sample of each record"`
}

func (c *LayoutCmd) Run() error {
	return printLayouts(os.Stdout, c.Hex)
}

func printLayouts(w io.Writer, withHex bool) error {
	records := protocol.Records()
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintf(w, "MAX_LEGAL_ACTIONS = %d\nMAX_STREET_SIZE = %d\n", protocol.MaxLegalActions, protocol.MaxStreetSize)
	for _, name := range names {
		fields, size, err := protocol.Layout(records[name])
		if err != nil {
			return err
		}
		want, _ := protocol.ExpectedSize(name)
		status := "ok"
		if size != want {
			status = fmt.Sprintf("MISMATCH, engine expects %d", want)
		}
		fmt.Fprintf(w, "\n%s (%d bytes, %s)\n", name, size, status)
		for _, f := range fields {
			fmt.Fprintf(w, "  %-16s %-22s offset %3d  size %3d\n", f.Name, f.Type, f.Offset, f.Size)
		}

		if withHex {
			data, err := samples()[name].MarshalBinary()
			if err != nil {
				return err
			}
			fmt.Fprint(w, hex.Dump(data))
		}
	}
	return nil
}

// samples returns a representative value of each record for the hex dump.
func samples() map[string]encoding.BinaryMarshaler {
	hole := [2]poker.Card{poker.MustParseCard("As"), poker.MustParseCard("Ad")}
	round, _ := protocol.NewRoundInfo(protocol.RoundSpec{
		MyCards:  hole,
		Board:    []poker.Card{poker.MustParseCard("Kh"), poker.MustParseCard("7c"), poker.MustParseCard("2d")},
		MyPip:    10,
		OppPip:   30,
		MyStack:  390,
		OppStack: 370,
		Legal:    []protocol.ActionType{protocol.ActionFold, protocol.ActionCall, protocol.ActionRaise},
		RaiseMin: 50,
		RaiseMax: 400,
	})
	return map[string]encoding.BinaryMarshaler{
		"GameInfo":      protocol.GameInfo{Bankroll: -120, GameClock: 29.5, RoundNum: 42},
		"Action":        protocol.Raise(10),
		"RoundInfo":     round,
		"RoundOverInfo": protocol.NewRoundOverInfo(-50, 3, hole, nil),
	}
}
