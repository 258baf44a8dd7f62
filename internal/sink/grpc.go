package sink

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	walletpb "quorumwallet/internal/gen/api"
)

const (
	// dialTimeout bounds connection establishment to a target.
	dialTimeout = 5 * time.Second
)

// GRPCSink delivers transfers over gRPC: the action's target is the address
// of a Beneficiary service. Connections are cached per target address.
type GRPCSink struct {
	mu      sync.RWMutex
	conns   map[string]*grpc.ClientConn
	clients map[string]walletpb.BeneficiaryClient
	log     *zap.Logger
}

// NewGRPCSink creates a gRPC sink.
func NewGRPCSink(log *zap.Logger) *GRPCSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &GRPCSink{
		conns:   make(map[string]*grpc.ClientConn),
		clients: make(map[string]walletpb.BeneficiaryClient),
		log:     log,
	}
}

// Call sends value and payload to the Beneficiary service at target.
func (s *GRPCSink) Call(ctx context.Context, target string, value uint64, payload []byte) error {
	client, err := s.getClient(ctx, target)
	if err != nil {
		return errors.Wrapf(err, "connect to target %s", target)
	}

	resp, err := client.Transfer(ctx, &walletpb.TransferRequest{
		Value:   value,
		Payload: payload,
	})
	if err != nil {
		return errors.Wrapf(err, "transfer to target %s", target)
	}
	if !resp.Accepted {
		return errors.Errorf("target %s rejected transfer: %s", target, resp.Message)
	}

	s.log.Debug("transfer delivered",
		zap.String("target", target),
		zap.Uint64("value", value),
	)
	return nil
}

// getClient returns a cached client for the target address, dialing a new
// connection if none exists.
func (s *GRPCSink) getClient(ctx context.Context, target string) (walletpb.BeneficiaryClient, error) {
	s.mu.RLock()
	client, exists := s.clients[target]
	s.mu.RUnlock()

	if exists {
		return client, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if client, exists := s.clients[target]; exists {
		return client, nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", target)
	}

	client = walletpb.NewBeneficiaryClient(conn)
	s.conns[target] = conn
	s.clients[target] = client
	return client, nil
}

// Close closes all cached connections.
func (s *GRPCSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for target, conn := range s.conns {
		if err := conn.Close(); err != nil {
			s.log.Warn("close connection", zap.String("target", target), zap.Error(err))
		}
	}
	s.conns = make(map[string]*grpc.ClientConn)
	s.clients = make(map[string]walletpb.BeneficiaryClient)
}
