package callingstation

import (
	"github.com/lox/pokerbot-skeleton/protocol"
	"github.com/lox/pokerbot-skeleton/sdk"
)

// Handler implements a calling station strategy that always calls or checks
type Handler struct {
	sdk.NopLifecycle
}

func (Handler) OnDecision(_ protocol.GameInfo, round protocol.RoundInfo) (protocol.Action, error) {
	// Calling station strategy: always check or call, never raise
	if round.IsLegal(protocol.ActionCheck) {
		return protocol.Check(), nil
	}
	if round.IsLegal(protocol.ActionCall) {
		return protocol.Call(), nil
	}
	return protocol.Fold(), nil
}

// Check it implements the sdk.Handler interface
var _ sdk.Handler = Handler{}
