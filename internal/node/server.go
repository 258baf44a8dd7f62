package node

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	walletpb "quorumwallet/internal/gen/api"
	"quorumwallet/internal/identity"
	"quorumwallet/internal/wallet"
)

// Server implements the QuorumWallet gRPC service. Domain rejections are
// carried in the response status, not as transport errors; only malformed
// requests fail the RPC itself.
type Server struct {
	walletpb.UnimplementedQuorumWalletServer
	wallet *wallet.Wallet
	log    *zap.Logger
}

// NewServer creates a new gRPC server instance.
func NewServer(w *wallet.Wallet, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		wallet: w,
		log:    log,
	}
}

// statusOf maps a wallet rejection to the wire status.
func statusOf(err error) walletpb.OpStatus {
	switch {
	case err == nil:
		return walletpb.OpStatus_OP_STATUS_OK
	case errors.Is(err, wallet.ErrUnauthorized):
		return walletpb.OpStatus_OP_STATUS_UNAUTHORIZED
	case errors.Is(err, wallet.ErrUnknownAction):
		return walletpb.OpStatus_OP_STATUS_UNKNOWN_ACTION
	case errors.Is(err, wallet.ErrAlreadyConfirmed):
		return walletpb.OpStatus_OP_STATUS_ALREADY_CONFIRMED
	case errors.Is(err, wallet.ErrNotConfirmed):
		return walletpb.OpStatus_OP_STATUS_NOT_CONFIRMED
	case errors.Is(err, wallet.ErrAlreadyExecuted):
		return walletpb.OpStatus_OP_STATUS_ALREADY_EXECUTED
	case errors.Is(err, wallet.ErrInvalidConfig):
		return walletpb.OpStatus_OP_STATUS_INVALID_CONFIGURATION
	default:
		return walletpb.OpStatus_OP_STATUS_UNSPECIFIED
	}
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Propose handles Propose requests.
func (s *Server) Propose(ctx context.Context, req *walletpb.ProposeRequest) (*walletpb.ProposeResponse, error) {
	s.log.Debug("propose request",
		zap.String("caller", req.Caller),
		zap.String("target", req.Target),
		zap.Uint64("value", req.Value),
	)

	if req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller cannot be empty")
	}
	if req.Target == "" {
		return nil, status.Error(codes.InvalidArgument, "target cannot be empty")
	}

	id, err := s.wallet.Propose(ctx, identity.Address(req.Caller), req.Target, req.Value, req.Payload)
	if err != nil {
		return &walletpb.ProposeResponse{
			Status:       statusOf(err),
			ErrorMessage: errorMessage(err),
		}, nil
	}
	return &walletpb.ProposeResponse{
		Status:   walletpb.OpStatus_OP_STATUS_OK,
		ActionId: id,
	}, nil
}

// Confirm handles Confirm requests.
func (s *Server) Confirm(ctx context.Context, req *walletpb.ConfirmRequest) (*walletpb.ConfirmResponse, error) {
	s.log.Debug("confirm request",
		zap.String("caller", req.Caller),
		zap.Uint64("action_id", req.ActionId),
	)

	if req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller cannot be empty")
	}

	err := s.wallet.Confirm(ctx, identity.Address(req.Caller), req.ActionId)
	return &walletpb.ConfirmResponse{
		Status:       statusOf(err),
		ErrorMessage: errorMessage(err),
	}, nil
}

// Revoke handles Revoke requests.
func (s *Server) Revoke(ctx context.Context, req *walletpb.RevokeRequest) (*walletpb.RevokeResponse, error) {
	s.log.Debug("revoke request",
		zap.String("caller", req.Caller),
		zap.Uint64("action_id", req.ActionId),
	)

	if req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller cannot be empty")
	}

	err := s.wallet.Revoke(identity.Address(req.Caller), req.ActionId)
	return &walletpb.RevokeResponse{
		Status:       statusOf(err),
		ErrorMessage: errorMessage(err),
	}, nil
}

// Execute handles Execute requests. Anyone may call it; below quorum it is
// a successful no-op.
func (s *Server) Execute(ctx context.Context, req *walletpb.ExecuteRequest) (*walletpb.ExecuteResponse, error) {
	s.log.Debug("execute request", zap.Uint64("action_id", req.ActionId))

	if err := s.wallet.Execute(ctx, req.ActionId); err != nil {
		return &walletpb.ExecuteResponse{
			Status:       statusOf(err),
			ErrorMessage: errorMessage(err),
		}, nil
	}

	a, err := s.wallet.Action(req.ActionId)
	if err != nil {
		return &walletpb.ExecuteResponse{
			Status:       statusOf(err),
			ErrorMessage: errorMessage(err),
		}, nil
	}
	return &walletpb.ExecuteResponse{
		Status:   walletpb.OpStatus_OP_STATUS_OK,
		Executed: a.Executed,
	}, nil
}

// Deposit handles the receive-funds entry point.
func (s *Server) Deposit(ctx context.Context, req *walletpb.DepositRequest) (*walletpb.DepositResponse, error) {
	s.log.Debug("deposit request",
		zap.String("from", req.From),
		zap.Uint64("amount", req.Amount),
	)

	balance := s.wallet.Deposit(req.Amount)
	return &walletpb.DepositResponse{
		Status:  walletpb.OpStatus_OP_STATUS_OK,
		Balance: balance,
	}, nil
}

// GetAction handles GetAction requests.
func (s *Server) GetAction(ctx context.Context, req *walletpb.GetActionRequest) (*walletpb.GetActionResponse, error) {
	a, err := s.wallet.Action(req.ActionId)
	if err != nil {
		return &walletpb.GetActionResponse{
			Status:       statusOf(err),
			ErrorMessage: errorMessage(err),
		}, nil
	}
	return &walletpb.GetActionResponse{
		Status: walletpb.OpStatus_OP_STATUS_OK,
		Action: s.actionToProto(a),
	}, nil
}

// ListActions handles ListActions requests.
func (s *Server) ListActions(ctx context.Context, req *walletpb.ListActionsRequest) (*walletpb.ListActionsResponse, error) {
	actions := s.wallet.Actions()
	out := make([]*walletpb.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, s.actionToProto(a))
	}
	return &walletpb.ListActionsResponse{Actions: out}, nil
}

// GetWallet handles GetWallet requests.
func (s *Server) GetWallet(ctx context.Context, req *walletpb.GetWalletRequest) (*walletpb.GetWalletResponse, error) {
	owners := s.wallet.Owners()
	out := make([]string, len(owners))
	for i, o := range owners {
		out[i] = o.String()
	}

	return &walletpb.GetWalletResponse{
		Owners:       out,
		Threshold:    uint32(s.wallet.Threshold()),
		Balance:      s.wallet.Balance(),
		NextActionId: s.wallet.NextActionID(),
	}, nil
}

// WatchEvents replays events after req.AfterSeq, then streams live events
// until the client goes away.
func (s *Server) WatchEvents(req *walletpb.WatchEventsRequest, stream walletpb.QuorumWallet_WatchEventsServer) error {
	backlog, live, cancel := s.wallet.Events().SubscribeFrom(req.AfterSeq, 128)
	defer cancel()

	for _, e := range backlog {
		if err := stream.Send(eventToProto(e)); err != nil {
			return err
		}
	}

	for {
		select {
		case e, ok := <-live:
			if !ok {
				return nil
			}
			if err := stream.Send(eventToProto(e)); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}
