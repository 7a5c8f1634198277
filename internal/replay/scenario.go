// Package replay drives an agent through scripted rounds, standing in for
// the engine during local testing, and records what the agent sent back.
package replay

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultGameClock is used for rounds that do not set game_clock.
const DefaultGameClock = 30.0

// ErrUnsupportedFormat is returned for scenario files that are neither HCL nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Scenario is a scripted match
type Scenario struct {
	Strategy string  `hcl:"strategy,optional" toml:"strategy"`
	Seed     int64   `hcl:"seed,optional" toml:"seed"`
	Rounds   []Round `hcl:"round,block" toml:"round"`
}

// Round is one scripted round: the hole cards, every decision point and the
// outcome.
type Round struct {
	GameClock float64    `hcl:"game_clock,optional" toml:"game_clock"`
	Hole      []string   `hcl:"hole" toml:"hole"`
	Decisions []Decision `hcl:"decision,block" toml:"decision"`
	Result    *Result    `hcl:"result,block" toml:"result"`
}

// Decision is the state the engine presents at one decision point.
type Decision struct {
	Board    []string `hcl:"board,optional" toml:"board"`
	MyPip    int      `hcl:"my_pip,optional" toml:"my_pip"`
	OppPip   int      `hcl:"opp_pip,optional" toml:"opp_pip"`
	MyStack  int      `hcl:"my_stack,optional" toml:"my_stack"`
	OppStack int      `hcl:"opp_stack,optional" toml:"opp_stack"`
	Legal    []string `hcl:"legal" toml:"legal"`
	RaiseMin int      `hcl:"raise_min,optional" toml:"raise_min"`
	RaiseMax int      `hcl:"raise_max,optional" toml:"raise_max"`

	// Expect is the action the agent should send, e.g. "raise 10".
	Expect string `hcl:"expect,optional" toml:"expect"`
}

// Result ends a round. Street defaults to the board size of the last
// decision. An empty Opponent means the cards stayed hidden.
type Result struct {
	Delta    int      `hcl:"delta" toml:"delta"`
	Street   *int     `hcl:"street,optional" toml:"street"`
	Opponent []string `hcl:"opponent,optional" toml:"opponent"`
}

// Load reads a scenario file. The format is chosen by extension.
func Load(filename string) (*Scenario, error) {
	var sc Scenario
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &sc)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	case ".toml":
		if _, err := toml.DecodeFile(filename, &sc); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the parts of a scenario that decoding cannot.
func (s *Scenario) Validate() error {
	if len(s.Rounds) == 0 {
		return fmt.Errorf("scenario has no rounds")
	}
	for i, r := range s.Rounds {
		if len(r.Hole) != 2 {
			return fmt.Errorf("round %d: need 2 hole cards, got %d", i+1, len(r.Hole))
		}
		if r.Result == nil {
			return fmt.Errorf("round %d: missing result block", i+1)
		}
		if n := len(r.Result.Opponent); n != 0 && n != 2 {
			return fmt.Errorf("round %d: opponent needs 0 or 2 cards, got %d", i+1, n)
		}
	}
	return nil
}
