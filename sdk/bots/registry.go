// Package bots registers the bundled strategies by name.
package bots

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/pokerbot-skeleton/sdk"
	"github.com/lox/pokerbot-skeleton/sdk/bots/aggressive"
	"github.com/lox/pokerbot-skeleton/sdk/bots/callingstation"
	"github.com/lox/pokerbot-skeleton/sdk/bots/random"
	"github.com/lox/pokerbot-skeleton/sdk/bots/skeleton"
	"github.com/lox/pokerbot-skeleton/sdk/bots/tight"
)

// ErrUnknownStrategy is returned by New for unregistered names.
var ErrUnknownStrategy = errors.New("unknown strategy")

type factory struct {
	description string
	build       func(rng *rand.Rand) sdk.Handler
}

var registry = map[string]factory{
	"skeleton": {
		description: "raise on pairs and A/K/Q combos, fold the rest",
		build:       func(*rand.Rand) sdk.Handler { return skeleton.Handler{} },
	},
	"callingstation": {
		description: "check or call, never raise",
		build:       func(*rand.Rand) sdk.Handler { return callingstation.Handler{} },
	},
	"random": {
		description: "uniform over legal actions and raise sizes",
		build:       func(rng *rand.Rand) sdk.Handler { return random.NewHandler(rng) },
	},
	"aggressive": {
		description: "min-raise 70% of the time, otherwise check or call",
		build:       func(rng *rand.Rand) sdk.Handler { return aggressive.NewHandler(rng) },
	},
	"tight": {
		description: "preflop categories, Monte Carlo equity postflop",
		build:       func(rng *rand.Rand) sdk.Handler { return tight.NewHandler(rng, tight.DefaultSamples) },
	},
}

// New builds the named strategy. rng seeds the strategies that use one.
func New(name string, rng *rand.Rand) (sdk.Handler, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return f.build(rng), nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the one-line description of a registered strategy.
func Describe(name string) (string, bool) {
	f, ok := registry[name]
	return f.description, ok
}
