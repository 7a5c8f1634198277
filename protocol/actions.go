package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionType is the kind of action a player takes. The values match the C
// enum on the engine side.
type ActionType int32

const (
	// ActionFold gives up the pot
	ActionFold ActionType = iota
	// ActionCall matches the opponent's pip
	ActionCall
	// ActionCheck passes when there is nothing to call
	ActionCheck
	// ActionRaise puts in more chips; the only type that carries an amount
	ActionRaise
)

// String returns the string representation of an action type
func (t ActionType) String() string {
	switch t {
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionCheck:
		return "check"
	case ActionRaise:
		return "raise"
	default:
		return fmt.Sprintf("unknown(%d)", int32(t))
	}
}

// Valid reports whether t is one of the four known action types.
func (t ActionType) Valid() bool {
	return t >= ActionFold && t <= ActionRaise
}

// ParseActionType converts a name produced by String back to an ActionType.
func ParseActionType(s string) (ActionType, error) {
	switch s {
	case "fold":
		return ActionFold, nil
	case "call":
		return ActionCall, nil
	case "check":
		return ActionCheck, nil
	case "raise":
		return ActionRaise, nil
	default:
		return ActionFold, fmt.Errorf("unknown action type %q", s)
	}
}

// Action is the record the agent returns from a decision. Amount is only
// meaningful for ActionRaise and is zero otherwise.
type Action struct {
	Type   ActionType
	Amount int32
}

func (a Action) String() string {
	if a.Type == ActionRaise {
		return fmt.Sprintf("raise %d", a.Amount)
	}
	return a.Type.String()
}

// ParseAction is the inverse of Action.String: "fold", "call", "check" or
// "raise <amount>".
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}
	t, err := ParseActionType(fields[0])
	if err != nil {
		return Action{}, err
	}
	switch {
	case t == ActionRaise && len(fields) == 2:
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return Action{}, fmt.Errorf("invalid raise amount %q: %w", fields[1], err)
		}
		return Raise(amount), nil
	case t == ActionRaise:
		return Action{}, fmt.Errorf("raise needs an amount: %q", s)
	case len(fields) != 1:
		return Action{}, fmt.Errorf("%s takes no amount: %q", t, s)
	}
	return Action{Type: t}, nil
}

// Fold returns a fold action
func Fold() Action { return Action{Type: ActionFold} }

// Call returns a call action
func Call() Action { return Action{Type: ActionCall} }

// Check returns a check action
func Check() Action { return Action{Type: ActionCheck} }

// Raise returns a raise of amount chips
func Raise(amount int) Action { return Action{Type: ActionRaise, Amount: int32(amount)} }
