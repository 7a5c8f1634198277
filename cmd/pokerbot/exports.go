// Command pokerbot builds the agent as a C shared library for the engine:
//
//	go build -buildmode=c-shared -o libpokerbot.so ./cmd/pokerbot
//
// The engine calls handle_new_round, handle_ongoing_round and
// handle_round_over with records passed by value. The strategy and logging
// are configured through POKERBOT_* environment variables.
package main

/*
#define MAX_LEGAL_ACTIONS 4
#define MAX_STREET_SIZE 20

typedef struct {
	int bankroll;
	double game_clock;
	int round_num;
} GameInfo;

typedef enum { Fold, Call, Check, Raise } ActionType;

typedef struct {
	ActionType action_type;
	int amount;
} Action;

typedef struct {
	int street;
	char my_cards[2][2];
	char board_cards[MAX_STREET_SIZE][2];
	int my_pip;
	int opp_pip;
	int my_stack;
	int opp_stack;
	int num_legal_actions;
	Action legal_actions[MAX_LEGAL_ACTIONS];
	int raise_bounds[2];
} RoundInfo;

typedef struct {
	int delta;
	int street;
	char my_cards[2][2];
	char opp_cards[2][2];
} RoundOverInfo;
*/
import "C"

import (
	"unsafe"

	"github.com/lox/pokerbot-skeleton/protocol"
)

func init() {
	if C.MAX_LEGAL_ACTIONS != protocol.MaxLegalActions || C.MAX_STREET_SIZE != protocol.MaxStreetSize {
		panic("pokerbot: C array bounds differ from protocol constants")
	}
	var (
		g  C.GameInfo
		a  C.Action
		r  C.RoundInfo
		ro C.RoundOverInfo
	)
	mustMatch("GameInfo", uintptr(C.sizeof_GameInfo),
		unsafe.Offsetof(g.bankroll), unsafe.Offsetof(g.game_clock), unsafe.Offsetof(g.round_num))
	mustMatch("Action", uintptr(C.sizeof_Action),
		unsafe.Offsetof(a.action_type), unsafe.Offsetof(a.amount))
	mustMatch("RoundInfo", uintptr(C.sizeof_RoundInfo),
		unsafe.Offsetof(r.street), unsafe.Offsetof(r.my_cards), unsafe.Offsetof(r.board_cards),
		unsafe.Offsetof(r.my_pip), unsafe.Offsetof(r.opp_pip), unsafe.Offsetof(r.my_stack),
		unsafe.Offsetof(r.opp_stack), unsafe.Offsetof(r.num_legal_actions),
		unsafe.Offsetof(r.legal_actions), unsafe.Offsetof(r.raise_bounds))
	mustMatch("RoundOverInfo", uintptr(C.sizeof_RoundOverInfo),
		unsafe.Offsetof(ro.delta), unsafe.Offsetof(ro.street),
		unsafe.Offsetof(ro.my_cards), unsafe.Offsetof(ro.opp_cards))
}

func mustMatch(name string, size uintptr, offsets ...uintptr) {
	if err := verifyLayout(name, size, offsets); err != nil {
		panic("pokerbot: " + err.Error())
	}
}

// The casts below are valid because init proved the C and Go layouts equal.

//export handle_new_round
func handle_new_round(game C.GameInfo, round C.RoundInfo) {
	current().NewRound(
		*(*protocol.GameInfo)(unsafe.Pointer(&game)),
		*(*protocol.RoundInfo)(unsafe.Pointer(&round)),
	)
}

//export handle_ongoing_round
func handle_ongoing_round(game C.GameInfo, round C.RoundInfo) C.Action {
	action := current().Decide(
		*(*protocol.GameInfo)(unsafe.Pointer(&game)),
		*(*protocol.RoundInfo)(unsafe.Pointer(&round)),
	)
	return *(*C.Action)(unsafe.Pointer(&action))
}

//export handle_round_over
func handle_round_over(game C.GameInfo, result C.RoundOverInfo) {
	current().RoundOver(
		*(*protocol.GameInfo)(unsafe.Pointer(&game)),
		*(*protocol.RoundOverInfo)(unsafe.Pointer(&result)),
	)
}

func main() {}
