package node

import (
	"quorumwallet/internal/event"
	walletpb "quorumwallet/internal/gen/api"
	"quorumwallet/internal/ledger"
)

// actionToProto converts a ledger action to its wire form. The confirming
// owners are listed in roster order.
func (s *Server) actionToProto(a *ledger.Action) *walletpb.Action {
	confirmed := make([]string, 0, len(a.ConfirmedBy))
	for _, owner := range s.wallet.Owners() {
		if a.Confirmed(owner) {
			confirmed = append(confirmed, owner.String())
		}
	}

	met, err := s.wallet.IsConfirmed(a.ID)
	if err != nil {
		met = false
	}

	return &walletpb.Action{
		Id:            a.ID,
		Target:        a.Target,
		Value:         a.Value,
		Payload:       append([]byte(nil), a.Payload...),
		Executed:      a.Executed,
		ConfirmedBy:   confirmed,
		QuorumMet:     met,
		Confirmations: uint32(a.Confirmations()),
	}
}

// eventToProto converts an audit log event to its wire form.
func eventToProto(e event.Event) *walletpb.Event {
	return &walletpb.Event{
		Seq:      e.Seq,
		Type:     eventTypeToProto(e.Type),
		ActionId: e.ActionID,
		Owner:    e.Owner.String(),
		AtUnixMs: e.At.UnixMilli(),
	}
}

func eventTypeToProto(t event.Type) walletpb.EventType {
	switch t {
	case event.Proposed:
		return walletpb.EventType_EVENT_TYPE_PROPOSED
	case event.Confirmed:
		return walletpb.EventType_EVENT_TYPE_CONFIRMED
	case event.Revoked:
		return walletpb.EventType_EVENT_TYPE_REVOKED
	case event.Executed:
		return walletpb.EventType_EVENT_TYPE_EXECUTED
	case event.ExecutionFailed:
		return walletpb.EventType_EVENT_TYPE_EXECUTION_FAILED
	default:
		return walletpb.EventType_EVENT_TYPE_UNSPECIFIED
	}
}
